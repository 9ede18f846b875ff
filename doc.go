// Package adt provides runtime algebraic data types:
//
// - Sum types declared from a variant table, with generated tagging constructors
// - A matching engine (full, value-unwrapping, and partial-with-fallback modes)
// - Structural derivation of Eq/Ord/Show instances with registry publication
// - Product types with an explicit field manifest and copy-on-write updates
// - A stable error model via Issues (path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put traversal algorithms under internal/.
// - Place fluent builders under dsl/ and the manifest compiler under cmd/adt.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	maybe := dsl.Sum("Maybe").
//	    Variant("Just", func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }).
//	    Variant("Nothing", nil).
//	    Derive(adt.DeriveEq, adt.DeriveOrd, adt.DeriveShow).
//	    MustBuild()
//
//	v := maybe.Constructors["Just"](5)
//	n, err := adt.MatchValues(v, map[string]func(any) int{
//	    "Just":    func(x any) int { return x.(int) + 1 },
//	    "Nothing": func(any) int { return 0 },
//	})
package adt
