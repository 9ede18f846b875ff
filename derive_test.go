package adt_test

import (
	"testing"

	adt "github.com/blaster151/adt"
)

func declMaybeDerived(t *testing.T, reg *adt.Registry) *adt.SumType {
	t.Helper()
	cfg := adt.DefaultConfig()
	cfg.Registry = reg
	cfg.Derive = []adt.DeriveName{adt.DeriveEq, adt.DeriveOrd, adt.DeriveShow}
	m, err := adt.NewSum("Maybe", []adt.Variant{
		{Name: "Just", Payload: func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }},
		{Name: "Nothing"},
	}, cfg)
	if err != nil {
		t.Fatalf("declare Maybe: %v", err)
	}
	return m
}

func TestDerivedEq_ReflexiveAndTagSensitive(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	just5 := maybe.Constructors["Just"](5)
	nothing := maybe.Constructors["Nothing"]()

	if !maybe.Eq.Equals(just5, just5) {
		t.Fatalf("Eq must be reflexive")
	}
	if !maybe.Eq.Equals(just5, maybe.Constructors["Just"](5)) {
		t.Fatalf("structurally equal values must be equal")
	}
	if maybe.Eq.Equals(just5, maybe.Constructors["Just"](6)) {
		t.Fatalf("differing payloads must be unequal")
	}
	if maybe.Eq.Equals(just5, nothing) {
		t.Fatalf("differing tags must be unequal")
	}
}

func TestDerivedEq_NestedValuesCompareStructurally(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	a := maybe.Constructors["Just"](map[string]any{"k": []any{1, 2}})
	b := maybe.Constructors["Just"](map[string]any{"k": []any{1, 2}})
	if !maybe.Eq.Equals(a, b) {
		t.Fatalf("nested structures must compare by structure, not reference")
	}
}

func TestDerivedEq_MismatchedMapKeyTypesInPayload(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	a := maybe.Constructors["Just"](map[string]any{"x": 1})
	b := maybe.Constructors["Just"](map[int]any{1: 1})
	if maybe.Eq.Equals(a, b) {
		t.Fatalf("payload maps with different key types must be unequal")
	}
	if maybe.Eq.Equals(b, a) {
		t.Fatalf("key-type inequality must hold both ways")
	}
}

func TestDerivedOrd_AntisymmetricAndConsistent(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	values := []adt.Value{
		maybe.Constructors["Nothing"](),
		maybe.Constructors["Just"](1),
		maybe.Constructors["Just"](2),
		maybe.Constructors["Just"]("a"),
	}
	for _, a := range values {
		if maybe.Ord.Compare(a, a) != 0 {
			t.Fatalf("Compare(a,a) must be 0 for %v", a)
		}
		for _, b := range values {
			if maybe.Ord.Compare(a, b) != -maybe.Ord.Compare(b, a) {
				t.Fatalf("antisymmetry violated for %v vs %v", a, b)
			}
		}
	}
}

func TestDerivedOrd_TagLexicographicFirst(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	just5 := maybe.Constructors["Just"](5)
	nothing := maybe.Constructors["Nothing"]()

	// literal tag strings decide: "Just" < "Nothing"
	if c := maybe.Ord.Compare(nothing, just5); c != 1 {
		t.Fatalf("expected Nothing > Just by tag string, got %d", c)
	}
	if c := maybe.Ord.Compare(just5, nothing); c != -1 {
		t.Fatalf("expected Just < Nothing by tag string, got %d", c)
	}
	// same tag: payload values decide in sorted-key order
	if c := maybe.Ord.Compare(maybe.Constructors["Just"](1), maybe.Constructors["Just"](2)); c != -1 {
		t.Fatalf("expected Just(1) < Just(2), got %d", c)
	}
}

func TestDerivedShow_DeterministicRendering(t *testing.T) {
	maybe := declMaybeDerived(t, adt.NewRegistry())
	just5 := maybe.Constructors["Just"](5)
	nothing := maybe.Constructors["Nothing"]()

	if got := maybe.Show.Show(just5); got != `Just({"value":5})` {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := maybe.Show.Show(nothing); got != "Nothing" {
		t.Fatalf("payload-free variant renders bare tag, got %q", got)
	}
	if maybe.Show.Show(just5) != maybe.Show.Show(maybe.Constructors["Just"](5)) {
		t.Fatalf("Show must be a pure function of tag and fields")
	}
}

func TestDerive_RegistryPublication(t *testing.T) {
	reg := adt.NewRegistry()
	maybe := declMaybeDerived(t, reg)

	for _, key := range []string{"MaybeEq", "MaybeOrd", "MaybeShow", "MaybeType"} {
		if _, ok := reg.Lookup(key); !ok {
			t.Fatalf("expected %s in registry, have %v", key, reg.Keys())
		}
	}
	if got, _ := reg.Lookup("MaybeType"); got != maybe {
		t.Fatalf("MaybeType should hold the descriptor")
	}
}

func TestDerive_UnknownNameFails(t *testing.T) {
	cfg := adt.DefaultConfig()
	cfg.Registry = adt.NewRegistry()
	cfg.Derive = []adt.DeriveName{"Hash"}
	_, err := adt.NewSum("X", []adt.Variant{{Name: "A"}}, cfg)
	iss, ok := adt.AsIssues(err)
	if !ok || iss[0].Code != adt.CodeUnknownDerive {
		t.Fatalf("expected unknown_derive, got %v", err)
	}
}

func TestDerive_CustomInstancesReplaceStructural(t *testing.T) {
	reg := adt.NewRegistry()
	cfg := adt.DefaultConfig()
	cfg.Registry = reg
	cfg.Derive = []adt.DeriveName{adt.DeriveEq}
	cfg.CustomEq = adt.ReferenceEq()
	cfg.CustomOrd = adt.IdentityOrd()
	io, err := adt.NewSum("IO", []adt.Variant{
		{Name: "Thunk", Payload: func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }},
	}, cfg)
	if err != nil {
		t.Fatalf("declare IO: %v", err)
	}

	run := func() {}
	a := io.Constructors["Thunk"](run)
	b := io.Constructors["Thunk"](run)

	// reference equality: structurally identical but distinct values differ
	if io.Eq.Equals(a, b) {
		t.Fatalf("ReferenceEq must distinguish distinct instances")
	}
	if !io.Eq.Equals(a, a) {
		t.Fatalf("ReferenceEq must be reflexive")
	}

	// identity order: consistent and antisymmetric
	if io.Ord.Compare(a, a) != 0 {
		t.Fatalf("IdentityOrd must report same reference equal")
	}
	if io.Ord.Compare(a, b) != -io.Ord.Compare(b, a) {
		t.Fatalf("IdentityOrd must be antisymmetric")
	}

	// custom instances publish under the same keys
	if inst, _ := reg.Lookup("IOEq"); inst == nil {
		t.Fatalf("custom Eq should publish as IOEq")
	}
}
