package adt

import (
	j "github.com/goccy/go-json"

	"github.com/blaster151/adt/effect"
	"github.com/blaster151/adt/i18n"
	js "github.com/blaster151/adt/jsonschema"
)

// ProductType is the descriptor for a fixed-shape record type. The field
// manifest is explicit and declared up front, so Keys never has to guess the
// shape from an instance.
type ProductType struct {
	Name   string
	Effect effect.Effect

	Eq   Equatable
	Ord  Orderable
	Show Showable

	fields []string // declaration order
	set    map[string]struct{}
}

// NewProduct declares a product type from an ordered field manifest. Field
// names must be unique and non-empty.
func NewProduct(name string, fields []string, cfg Config) (*ProductType, error) {
	var iss Issues
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == "" {
			iss = AppendIssues(iss, Issue{Path: "/fields", Code: CodeEmptyVariantName, Message: i18n.T(CodeEmptyVariantName, nil)})
			continue
		}
		if _, dup := set[f]; dup {
			iss = AppendIssues(iss, Issue{Path: "/fields/" + f, Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil), Hint: "field: '" + f + "'"})
			continue
		}
		set[f] = struct{}{}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	t := &ProductType{
		Name:   name,
		Effect: cfg.Effect,
		fields: append([]string(nil), fields...),
		set:    set,
	}
	if t.Effect == "" {
		t.Effect = effect.Pure
	}
	eq, ord, show, err := deriveAndPublish(name, cfg, true, t)
	if err != nil {
		return nil, err
	}
	t.Eq, t.Ord, t.Show = eq, ord, show
	return t, nil
}

// Of constructs an instance from the given fields. Every declared field must
// be present and no undeclared field may appear.
func (t *ProductType) Of(fields Fields) (Value, error) {
	var iss Issues
	for _, f := range t.fields {
		if _, ok := fields[f]; !ok {
			iss = AppendIssues(iss, Issue{Path: "/" + f, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "field: '" + f + "'"})
		}
	}
	for k := range fields {
		if _, ok := t.set[k]; !ok {
			iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil), Hint: "key: '" + k + "'"})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	v := make(Value, len(fields))
	for k, val := range fields {
		v[k] = val
	}
	return v, nil
}

// MustOf is Of for statically known field sets; it panics on error.
func (t *ProductType) MustOf(fields Fields) Value {
	v, err := t.Of(fields)
	if err != nil {
		panic(err)
	}
	return v
}

// Get reads one field, failing with missing_field when the field is not part
// of the manifest or absent on the instance.
func (t *ProductType) Get(v Value, name string) (any, error) {
	if _, ok := t.set[name]; !ok {
		return nil, Issues{Issue{Path: "/" + name, Code: CodeMissingField, Message: i18n.T(CodeMissingField, nil), Hint: "field: '" + name + "'"}}
	}
	x, ok := v[name]
	if !ok {
		return nil, Issues{Issue{Path: "/" + name, Code: CodeMissingField, Message: i18n.T(CodeMissingField, nil), Hint: "field: '" + name + "'"}}
	}
	return x, nil
}

// Set returns a copy of v with one field replaced. The original is never
// mutated.
func (t *ProductType) Set(v Value, name string, x any) (Value, error) {
	if _, ok := t.set[name]; !ok {
		return nil, Issues{Issue{Path: "/" + name, Code: CodeMissingField, Message: i18n.T(CodeMissingField, nil), Hint: "field: '" + name + "'"}}
	}
	out := v.Clone()
	out[name] = x
	return out, nil
}

// Update returns a copy of v with one field transformed through f.
func (t *ProductType) Update(v Value, name string, f func(any) any) (Value, error) {
	cur, err := t.Get(v, name)
	if err != nil {
		return nil, err
	}
	out := v.Clone()
	out[name] = f(cur)
	return out, nil
}

// Keys lists the declared field names in declaration order.
func (t *ProductType) Keys() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// Values lists an instance's field values in declaration order.
func (t *ProductType) Values(v Value) []any {
	out := make([]any, 0, len(t.fields))
	for _, f := range t.fields {
		out = append(out, v[f])
	}
	return out
}

// Entry pairs a field name with its value.
type Entry struct {
	Key   string
	Value any
}

// Entries lists an instance's fields in declaration order.
func (t *ProductType) Entries(v Value) []Entry {
	out := make([]Entry, 0, len(t.fields))
	for _, f := range t.fields {
		out = append(out, Entry{Key: f, Value: v[f]})
	}
	return out
}

// Parse accepts an untyped object and checks it against the field manifest:
// all declared fields required, unknown keys rejected.
func (t *ProductType) Parse(v any) (Value, error) {
	m, ok := asStringMap(v)
	if !ok {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return t.Of(Fields(m))
}

// ParseJSON decodes data and delegates to Parse.
func (t *ProductType) ParseJSON(data []byte) (Value, error) {
	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return t.Parse(m)
}

// EncodeJSON emits the canonical JSON form of an instance.
func (t *ProductType) EncodeJSON(v Value) ([]byte, error) {
	b, err := j.Marshal(map[string]any(v))
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeEncodeError, Message: i18n.T(CodeEncodeError, nil), Cause: err}}
	}
	return b, nil
}

// JSONSchema projects the field manifest into an object schema. Field value
// shapes are opaque to the descriptor, so properties are unconstrained.
func (t *ProductType) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(t.fields))
	for _, f := range t.fields {
		props[f] = &js.Schema{}
	}
	return &js.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             t.Keys(),
		AdditionalProperties: false,
	}, nil
}
