package dsl

import (
	"sort"

	adt "github.com/blaster151/adt"
)

// SumOf is the declaration-map entry point: one call with a variant table.
// Variant names are visited in sorted order so registry publication stays
// deterministic across runs.
func SumOf(name string, variants map[string]adt.Payload, cfg adt.Config) (*adt.SumType, error) {
	names := make([]string, 0, len(variants))
	for n := range variants {
		names = append(names, n)
	}
	sort.Strings(names)
	ordered := make([]adt.Variant, 0, len(names))
	for _, n := range names {
		ordered = append(ordered, adt.Variant{Name: n, Payload: variants[n]})
	}
	return adt.NewSum(name, ordered, cfg)
}

// MustSumOf is SumOf for statically known declarations; it panics on error.
func MustSumOf(name string, variants map[string]adt.Payload, cfg adt.Config) *adt.SumType {
	t, err := SumOf(name, variants, cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// ProductOf is the one-shot product declaration form.
func ProductOf(name string, fields []string, cfg adt.Config) (*adt.ProductType, error) {
	return adt.NewProduct(name, fields, cfg)
}
