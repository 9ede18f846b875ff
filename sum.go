package adt

import (
	j "github.com/goccy/go-json"

	"github.com/blaster151/adt/effect"
	"github.com/blaster151/adt/i18n"
	js "github.com/blaster151/adt/jsonschema"
)

// DeriveName selects an instance to derive.
type DeriveName string

const (
	DeriveEq   DeriveName = "Eq"
	DeriveOrd  DeriveName = "Ord"
	DeriveShow DeriveName = "Show"
)

// Variant declares one case of a sum type. A nil Payload declares a
// payload-free variant.
type Variant struct {
	Name    string
	Payload Payload
}

// Config carries the recognized builder options. The zero Config is not the
// default; use DefaultConfig and override.
type Config struct {
	Effect             effect.Effect
	RuntimeMarkers     bool         // expose annotated constructors alongside the plain ones
	HKT                bool         // publish the type descriptor under "<Name>Type"
	DerivableInstances bool         // publish derived instances in the registry
	Derive             []DeriveName // subset of Eq/Ord/Show
	CustomEq           Equatable    // replaces the structural algorithm when set
	CustomOrd          Orderable
	CustomShow         Showable
	Registry           *Registry // nil means DefaultRegistry
}

// DefaultConfig mirrors the observed call-site defaults: Pure effect, no
// runtime markers, HKT and registry publication on, nothing derived.
func DefaultConfig() Config {
	return Config{Effect: effect.Pure, HKT: true, DerivableInstances: true}
}

// SumType is the descriptor produced for a declared sum type. It owns the
// constructor table, the matching entry points, and any derived instances.
// Values do not point back at it; they are plain tagged maps consulted
// through the functions closed over here.
type SumType struct {
	Name         string
	Effect       effect.Effect
	Constructors map[string]Constructor

	// Annotated holds one constructor per variant that returns the value
	// inside its effect envelope. Callers keep the envelope themselves; the
	// descriptor retains nothing. Nil unless RuntimeMarkers was set.
	Annotated map[string]AnnotatedConstructor

	// Derived instances; nil when not derived.
	Eq   Equatable
	Ord  Orderable
	Show Showable

	// Type exists purely as a type-level marker. Calling it always panics.
	Type func() Value

	tags []string // declaration order
}

// NewSum declares a sum type from an ordered variant list. Variant names must
// be unique and non-empty; nothing else about payloads is validated — a
// payload constructor returning extra or odd fields silently becomes part of
// the value.
func NewSum(name string, variants []Variant, cfg Config) (*SumType, error) {
	var iss Issues
	seen := map[string]struct{}{}
	for _, vr := range variants {
		if vr.Name == "" {
			iss = AppendIssues(iss, Issue{Path: "/variants", Code: CodeEmptyVariantName, Message: i18n.T(CodeEmptyVariantName, nil)})
			continue
		}
		if _, dup := seen[vr.Name]; dup {
			iss = AppendIssues(iss, Issue{Path: "/variants/" + vr.Name, Code: CodeDuplicateVariant, Message: i18n.T(CodeDuplicateVariant, nil), Hint: "variant: '" + vr.Name + "'"})
			continue
		}
		seen[vr.Name] = struct{}{}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	t := &SumType{
		Name:         name,
		Effect:       cfg.Effect,
		Constructors: make(map[string]Constructor, len(variants)),
	}
	if t.Effect == "" {
		t.Effect = effect.Pure
	}
	if cfg.RuntimeMarkers {
		t.Annotated = make(map[string]AnnotatedConstructor, len(variants))
	}
	t.Type = func() Value {
		panic(Issues{Issue{Path: "/", Code: CodeTypeMarkerCall, Message: i18n.T(CodeTypeMarkerCall, nil), Hint: "type: '" + name + "'"}})
	}
	for _, vr := range variants {
		t.tags = append(t.tags, vr.Name)
		ctor := newConstructor(vr.Name, vr.Payload)
		t.Constructors[vr.Name] = ctor
		if t.Annotated != nil {
			t.Annotated[vr.Name] = func(args ...any) effect.Annotated[Value] {
				return effect.Annotate(ctor(args...), t.Effect)
			}
		}
	}

	eq, ord, show, err := deriveAndPublish(name, cfg, false, t)
	if err != nil {
		return nil, err
	}
	t.Eq, t.Ord, t.Show = eq, ord, show
	return t, nil
}

// newConstructor wraps a payload constructor so that invoking it also stamps
// the tag. The tag is merged last: a payload field named "tag" is overwritten
// by the variant name.
func newConstructor(tag string, payload Payload) Constructor {
	return func(args ...any) Value {
		var fields Fields
		if payload != nil {
			fields = payload(args...)
		}
		v := make(Value, len(fields)+1)
		for k, val := range fields {
			v[k] = val
		}
		v[TagKey] = tag
		return v
	}
}

// Tags lists the declared variant names in declaration order.
func (t *SumType) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// Constructor looks up the constructor for a variant.
func (t *SumType) Constructor(tag string) (Constructor, bool) {
	c, ok := t.Constructors[tag]
	return c, ok
}

// New invokes the constructor for tag, failing with tag_unknown when the
// variant was never declared.
func (t *SumType) New(tag string, args ...any) (Value, error) {
	c, ok := t.Constructors[tag]
	if !ok {
		return nil, Issues{Issue{Path: "/" + TagKey, Code: CodeTagUnknown, Message: i18n.T(CodeTagUnknown, nil), Hint: "unknown variant: '" + tag + "'"}}
	}
	return c(args...), nil
}

// Match is the descriptor-level convenience form of the package-level Match.
func (t *SumType) Match(v Value, handlers map[string]func(Value) any) (any, error) {
	return Match(v, handlers)
}

// MatchValues is the descriptor-level convenience form of the package-level
// MatchValues.
func (t *SumType) MatchValues(v Value, handlers map[string]func(any) any) (any, error) {
	return MatchValues(v, handlers)
}

// MatchPartial is the descriptor-level convenience form of the package-level
// MatchPartial.
func (t *SumType) MatchPartial(v Value, handlers map[string]func(Value) any, fallback func(Value) any) any {
	return MatchPartial(v, handlers, fallback)
}

// Parse accepts an untyped object (typically decoded JSON) and checks it
// against the declared tag set: the tag key must be present and must name a
// declared variant. The payload is passed through untouched.
func (t *SumType) Parse(v any) (Value, error) {
	m, ok := asStringMap(v)
	if !ok {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	tag, _ := m[TagKey].(string)
	if tag == "" {
		return nil, Issues{Issue{Path: "/" + TagKey, Code: CodeTagMissing, Message: i18n.T(CodeTagMissing, nil), Hint: "tag missing"}}
	}
	if _, ok := t.Constructors[tag]; !ok {
		return nil, Issues{Issue{Path: "/" + TagKey, Code: CodeTagUnknown, Message: i18n.T(CodeTagUnknown, nil), Hint: "unknown variant: '" + tag + "'"}}
	}
	out := make(Value, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out, nil
}

// ParseJSON decodes data and delegates to Parse.
func (t *SumType) ParseJSON(data []byte) (Value, error) {
	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return t.Parse(m)
}

// EncodeJSON emits the canonical JSON form of a tagged value.
func (t *SumType) EncodeJSON(v Value) ([]byte, error) {
	b, err := j.Marshal(map[string]any(v))
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeEncodeError, Message: i18n.T(CodeEncodeError, nil), Cause: err}}
	}
	return b, nil
}

// JSONSchema projects the declared tag set into a oneOf schema. Payload
// shapes are opaque to the descriptor, so each branch constrains the tag
// only.
func (t *SumType) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{}
	out.OneOf = make([]*js.Schema, 0, len(t.tags))
	for _, tag := range t.tags {
		out.OneOf = append(out.OneOf, &js.Schema{
			Type: "object",
			Properties: map[string]*js.Schema{
				TagKey: {Type: "string", Enum: []any{tag}},
			},
			Required: []string{TagKey},
		})
	}
	return out, nil
}

// deriveAndPublish wires the derivation engine per cfg and publishes the
// results under "<name>Eq"/"<name>Ord"/"<name>Show". Custom instances count
// as derived and replace the structural algorithm wholesale. The descriptor
// itself is published under "<name>Type" when HKT lookup is enabled. Shared
// by the sum and product builders through the product flag.
func deriveAndPublish(name string, cfg Config, product bool, descriptor any) (Equatable, Orderable, Showable, error) {
	var iss Issues
	want := map[DeriveName]bool{}
	for _, d := range cfg.Derive {
		switch d {
		case DeriveEq, DeriveOrd, DeriveShow:
			want[d] = true
		default:
			iss = AppendIssues(iss, Issue{Path: "/derive", Code: CodeUnknownDerive, Message: i18n.T(CodeUnknownDerive, nil), Hint: "derive: '" + string(d) + "'"})
		}
	}
	if len(iss) > 0 {
		return nil, nil, nil, iss
	}

	var eq Equatable
	var ord Orderable
	var show Showable
	if cfg.CustomEq != nil {
		eq = cfg.CustomEq
	} else if want[DeriveEq] {
		if product {
			eq = productEq{}
		} else {
			eq = structuralEq{}
		}
	}
	if cfg.CustomOrd != nil {
		ord = cfg.CustomOrd
	} else if want[DeriveOrd] {
		if product {
			ord = productOrd{}
		} else {
			ord = structuralOrd{}
		}
	}
	if cfg.CustomShow != nil {
		show = cfg.CustomShow
	} else if want[DeriveShow] {
		if product {
			show = productShow{}
		} else {
			show = structuralShow{}
		}
	}

	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	if cfg.DerivableInstances {
		if eq != nil {
			reg.Register(name+"Eq", eq)
		}
		if ord != nil {
			reg.Register(name+"Ord", ord)
		}
		if show != nil {
			reg.Register(name+"Show", show)
		}
	}
	if cfg.HKT {
		reg.Register(name+"Type", descriptor)
	}
	return eq, ord, show, nil
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Value:
		return map[string]any(m), true
	case Fields:
		return map[string]any(m), true
	}
	return nil, false
}
