package dsl

import (
	adt "github.com/blaster151/adt"
	"github.com/blaster151/adt/effect"
)

// SumBuilder collects a sum-type declaration. Mistakes (duplicate or empty
// variant names, unknown derive names) surface at Build, not at first use.
type SumBuilder struct {
	name     string
	variants []adt.Variant
	cfg      adt.Config
}

// Sum creates a new sum-type builder with the observed defaults: Pure
// effect, no runtime markers, HKT and registry publication on, nothing
// derived.
func Sum(name string) *SumBuilder {
	return &SumBuilder{name: name, cfg: adt.DefaultConfig()}
}

// Variant declares one case. A nil payload declares a payload-free variant.
// Declaration order is preserved; it fixes Tags() and the JSON Schema branch
// order.
func (b *SumBuilder) Variant(name string, payload adt.Payload) *SumBuilder {
	b.variants = append(b.variants, adt.Variant{Name: name, Payload: payload})
	return b
}

// Effect records how values of this type are produced.
func (b *SumBuilder) Effect(e effect.Effect) *SumBuilder {
	b.cfg.Effect = e
	return b
}

// RuntimeMarkers exposes annotated constructors on the built type, one per
// variant, returning values inside their effect envelope.
func (b *SumBuilder) RuntimeMarkers() *SumBuilder {
	b.cfg.RuntimeMarkers = true
	return b
}

// Derive selects instances to derive structurally.
func (b *SumBuilder) Derive(names ...adt.DeriveName) *SumBuilder {
	b.cfg.Derive = append(b.cfg.Derive, names...)
	return b
}

// CustomEq replaces the structural equality algorithm wholesale.
func (b *SumBuilder) CustomEq(eq adt.Equatable) *SumBuilder {
	b.cfg.CustomEq = eq
	return b
}

// CustomOrd replaces the structural ordering algorithm wholesale.
func (b *SumBuilder) CustomOrd(ord adt.Orderable) *SumBuilder {
	b.cfg.CustomOrd = ord
	return b
}

// CustomShow replaces the structural rendering algorithm wholesale.
func (b *SumBuilder) CustomShow(show adt.Showable) *SumBuilder {
	b.cfg.CustomShow = show
	return b
}

// Registry injects the registry instances publish to.
func (b *SumBuilder) Registry(r *adt.Registry) *SumBuilder {
	b.cfg.Registry = r
	return b
}

// NoRegister suppresses registry publication of derived instances.
func (b *SumBuilder) NoRegister() *SumBuilder {
	b.cfg.DerivableInstances = false
	return b
}

// NoHKT suppresses publication of the type descriptor under "<Name>Type".
func (b *SumBuilder) NoHKT() *SumBuilder {
	b.cfg.HKT = false
	return b
}

// Build declares the type.
func (b *SumBuilder) Build() (*adt.SumType, error) {
	return adt.NewSum(b.name, b.variants, b.cfg)
}

// MustBuild is Build for statically known declarations; it panics on error.
func (b *SumBuilder) MustBuild() *adt.SumType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
