package adt

import "github.com/blaster151/adt/effect"

// TagKey is the reserved discriminant key stamped by generated constructors.
const TagKey = "tag"

// Fields is a variant payload: field name -> value. Payload constructors
// return Fields; the constructor factory merges the tag in afterwards.
type Fields map[string]any

// Value is a tagged variant instance: the payload fields plus the TagKey
// entry, all at the same level. Values are created by generated constructors
// and treated as immutable; updates copy.
type Value map[string]any

// Payload builds a variant payload from constructor arguments. A nil Payload
// declares a payload-free variant.
type Payload func(args ...any) Fields

// Constructor builds a tagged Value for one variant.
type Constructor func(args ...any) Value

// AnnotatedConstructor builds a tagged Value and hands it back inside its
// effect envelope instead of bare.
type AnnotatedConstructor func(args ...any) effect.Annotated[Value]

// Tag returns the discriminant, or "" when the value carries none.
func (v Value) Tag() string {
	t, _ := v[TagKey].(string)
	return t
}

// Is reports whether the value instantiates the given variant.
func (v Value) Is(tag string) bool { return v.Tag() == tag }

// Fields returns a copy of the payload with the tag excluded.
func (v Value) Fields() Fields {
	out := make(Fields, len(v))
	for k, val := range v {
		if k == TagKey {
			continue
		}
		out[k] = val
	}
	return out
}

// Arity returns the number of payload fields (tag excluded).
func (v Value) Arity() int {
	n := len(v)
	if _, ok := v[TagKey]; ok {
		n--
	}
	return n
}

// Clone returns a shallow copy. Nested values are shared.
func (v Value) Clone() Value {
	out := make(Value, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
