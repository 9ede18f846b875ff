package adt

import "github.com/blaster151/adt/i18n"

// Match dispatches v to the handler registered for its tag, passing the whole
// tagged value through. It fails with undefined_required when v or handlers
// is nil, and with unhandled_tag when no handler covers v's tag.
func Match[T any](v Value, handlers map[string]func(Value) T) (T, error) {
	var zero T
	if v == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeUndefinedRequired, Message: i18n.T(CodeUndefinedRequired, nil), Hint: "value is nil"}}
	}
	if handlers == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeUndefinedRequired, Message: i18n.T(CodeUndefinedRequired, nil), Hint: "handler table is nil"}}
	}
	h, ok := handlers[v.Tag()]
	if !ok {
		return zero, Issues{Issue{Path: "/" + TagKey, Code: CodeUnhandledTag, Message: i18n.T(CodeUnhandledTag, nil), Hint: "tag: '" + v.Tag() + "'", Params: map[string]any{"tag": v.Tag()}}}
	}
	return h(v), nil
}

// MatchValues is the value-oriented form of Match: before calling the
// handler it unwraps the payload for the common single-field shapes.
//
//   - zero payload fields: the handler receives nil
//   - exactly one field named "value" or "error": the handler receives that
//     field's value, unwrapped
//   - anything else (including a single field under any other name): the
//     handler receives the payload Fields, tag excluded
func MatchValues[T any](v Value, handlers map[string]func(any) T) (T, error) {
	var zero T
	if v == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeUndefinedRequired, Message: i18n.T(CodeUndefinedRequired, nil), Hint: "value is nil"}}
	}
	if handlers == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeUndefinedRequired, Message: i18n.T(CodeUndefinedRequired, nil), Hint: "handler table is nil"}}
	}
	h, ok := handlers[v.Tag()]
	if !ok {
		return zero, Issues{Issue{Path: "/" + TagKey, Code: CodeUnhandledTag, Message: i18n.T(CodeUnhandledTag, nil), Hint: "tag: '" + v.Tag() + "'", Params: map[string]any{"tag": v.Tag()}}}
	}
	return h(unwrapPayload(v)), nil
}

// MatchPartial dispatches to the handler for v's tag when present and to
// fallback otherwise. It never fails; fallback must be total.
func MatchPartial[T any](v Value, handlers map[string]func(Value) T, fallback func(Value) T) T {
	if h, ok := handlers[v.Tag()]; ok {
		return h(v)
	}
	return fallback(v)
}

// Matcher returns the curried unary form of Match over a fixed handler
// table, for use in pipelines.
func Matcher[T any](handlers map[string]func(Value) T) func(Value) (T, error) {
	return func(v Value) (T, error) { return Match(v, handlers) }
}

// MatcherValues returns the curried unary form of MatchValues.
func MatcherValues[T any](handlers map[string]func(any) T) func(Value) (T, error) {
	return func(v Value) (T, error) { return MatchValues(v, handlers) }
}

// unwrapPayload applies the MatchValues unwrap rule. The "value"/"error"
// special case takes priority over the single-arbitrary-key case: a lone
// field under any other name still yields the whole payload.
func unwrapPayload(v Value) any {
	fields := v.Fields()
	switch len(fields) {
	case 0:
		return nil
	case 1:
		if x, ok := fields["value"]; ok {
			return x
		}
		if x, ok := fields["error"]; ok {
			return x
		}
	}
	return fields
}
