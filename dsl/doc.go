// Package dsl provides the fluent declaration layer for adt.
//
// Overview
//   - Builder API: declare sum types with Sum()/Variant()/Derive()/MustBuild()
//     and product types with Product()/Field()/Fields().
//   - One-shot forms: SumOf(name, variants, cfg) mirrors the declaration-map
//     entry point; variant names are visited in sorted order so registry
//     publication stays deterministic.
//   - Effects: Effect(e) records how constructed values are produced;
//     RuntimeMarkers() exposes annotated constructors returning values
//     inside their effect envelope.
//   - Derivation: Derive(adt.DeriveEq, ...) selects structural instances;
//     CustomEq/CustomOrd/CustomShow replace the structural algorithm wholesale
//     (use adt.ReferenceEq/adt.IdentityOrd for effectful types).
//   - Registry: instances publish to adt.DefaultRegistry() unless Registry(r)
//     injects another one; NoRegister() suppresses publication.
//
// Entry points
//   - Sum(name): create a sum builder; chain Variant then MustBuild()/Build.
//   - Product(name): create a product builder; chain Field/Fields.
//   - SumOf/ProductOf: declaration-map forms over the same machinery.
//
// Design guidelines
//   - Keep public APIs minimal; builders collect, adt.NewSum/NewProduct decide.
//   - Surface declaration mistakes (duplicate or empty names, unknown derive
//     names) at Build as Issues, never at first use.
//
// Example (quickstart)
//
//	maybe := dsl.Sum("Maybe").
//	    Variant("Just", func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }).
//	    Variant("Nothing", nil).
//	    Derive(adt.DeriveEq, adt.DeriveOrd, adt.DeriveShow).
//	    MustBuild()
//
//	just5 := maybe.Constructors["Just"](5)
//	_ = maybe.Show.Show(just5) // Just({"value":5})
package dsl
