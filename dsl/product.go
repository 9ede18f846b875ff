package dsl

import (
	adt "github.com/blaster151/adt"
	"github.com/blaster151/adt/effect"
)

// ProductBuilder collects a product-type declaration with an explicit field
// manifest.
type ProductBuilder struct {
	name   string
	fields []string
	cfg    adt.Config
}

// Product creates a new product-type builder with the same defaults as Sum.
func Product(name string) *ProductBuilder {
	return &ProductBuilder{name: name, cfg: adt.DefaultConfig()}
}

// Field declares one field. Declaration order is preserved; it fixes Keys(),
// Values(), and Entries().
func (b *ProductBuilder) Field(name string) *ProductBuilder {
	b.fields = append(b.fields, name)
	return b
}

// Fields declares several fields at once.
func (b *ProductBuilder) Fields(names ...string) *ProductBuilder {
	b.fields = append(b.fields, names...)
	return b
}

// Effect records how values of this type are produced.
func (b *ProductBuilder) Effect(e effect.Effect) *ProductBuilder {
	b.cfg.Effect = e
	return b
}

// Derive selects instances to derive structurally.
func (b *ProductBuilder) Derive(names ...adt.DeriveName) *ProductBuilder {
	b.cfg.Derive = append(b.cfg.Derive, names...)
	return b
}

// CustomEq replaces the structural equality algorithm wholesale.
func (b *ProductBuilder) CustomEq(eq adt.Equatable) *ProductBuilder {
	b.cfg.CustomEq = eq
	return b
}

// CustomOrd replaces the structural ordering algorithm wholesale.
func (b *ProductBuilder) CustomOrd(ord adt.Orderable) *ProductBuilder {
	b.cfg.CustomOrd = ord
	return b
}

// CustomShow replaces the structural rendering algorithm wholesale.
func (b *ProductBuilder) CustomShow(show adt.Showable) *ProductBuilder {
	b.cfg.CustomShow = show
	return b
}

// Registry injects the registry instances publish to.
func (b *ProductBuilder) Registry(r *adt.Registry) *ProductBuilder {
	b.cfg.Registry = r
	return b
}

// NoRegister suppresses registry publication of derived instances.
func (b *ProductBuilder) NoRegister() *ProductBuilder {
	b.cfg.DerivableInstances = false
	return b
}

// NoHKT suppresses publication of the type descriptor under "<Name>Type".
func (b *ProductBuilder) NoHKT() *ProductBuilder {
	b.cfg.HKT = false
	return b
}

// Build declares the type.
func (b *ProductBuilder) Build() (*adt.ProductType, error) {
	return adt.NewProduct(b.name, b.fields, b.cfg)
}

// MustBuild is Build for statically known declarations; it panics on error.
func (b *ProductBuilder) MustBuild() *adt.ProductType {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
