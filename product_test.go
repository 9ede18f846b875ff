package adt_test

import (
	"testing"

	adt "github.com/blaster151/adt"
)

func declPoint(t *testing.T) *adt.ProductType {
	t.Helper()
	cfg := adt.DefaultConfig()
	cfg.Registry = adt.NewRegistry()
	cfg.Derive = []adt.DeriveName{adt.DeriveEq, adt.DeriveOrd, adt.DeriveShow}
	p, err := adt.NewProduct("Point", []string{"x", "y"}, cfg)
	if err != nil {
		t.Fatalf("declare Point: %v", err)
	}
	return p
}

func TestProduct_OfRequiresExactFieldSet(t *testing.T) {
	point := declPoint(t)

	if _, err := point.Of(adt.Fields{"x": 1}); err == nil {
		t.Fatalf("expected required error for missing y")
	}
	_, err := point.Of(adt.Fields{"x": 1, "y": 2, "z": 3})
	iss, ok := adt.AsIssues(err)
	if !ok || iss[0].Code != adt.CodeUnknownKey {
		t.Fatalf("expected unknown_key, got %v", err)
	}

	v, err := point.Of(adt.Fields{"x": 1, "y": 2})
	if err != nil || v["x"] != 1 || v["y"] != 2 {
		t.Fatalf("construction broken: %v %v", v, err)
	}
}

func TestProduct_GetSetUpdateCopyOnWrite(t *testing.T) {
	point := declPoint(t)
	v := point.MustOf(adt.Fields{"x": 1, "y": 2})

	x, err := point.Get(v, "x")
	if err != nil || x != 1 {
		t.Fatalf("Get broken: %v %v", x, err)
	}
	if _, err := point.Get(v, "z"); err == nil {
		t.Fatalf("expected missing_field for undeclared field")
	}

	moved, err := point.Set(v, "x", 10)
	if err != nil || moved["x"] != 10 {
		t.Fatalf("Set broken: %v %v", moved, err)
	}
	if v["x"] != 1 {
		t.Fatalf("Set must not mutate the original, got %v", v)
	}

	bumped, err := point.Update(v, "y", func(cur any) any { return cur.(int) + 1 })
	if err != nil || bumped["y"] != 3 || v["y"] != 2 {
		t.Fatalf("Update must copy, got %v / original %v err=%v", bumped, v, err)
	}
}

func TestProduct_ManifestEnumeration(t *testing.T) {
	point := declPoint(t)
	v := point.MustOf(adt.Fields{"x": 1, "y": 2})

	keys := point.Keys()
	if len(keys) != 2 || keys[0] != "x" || keys[1] != "y" {
		t.Fatalf("Keys must follow declaration order, got %v", keys)
	}
	vals := point.Values(v)
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Fatalf("Values out of order: %v", vals)
	}
	entries := point.Entries(v)
	if entries[0] != (adt.Entry{Key: "x", Value: 1}) || entries[1] != (adt.Entry{Key: "y", Value: 2}) {
		t.Fatalf("Entries out of order: %v", entries)
	}
}

func TestProduct_DerivedInstancesHaveNoTagStep(t *testing.T) {
	point := declPoint(t)
	a := point.MustOf(adt.Fields{"x": 1, "y": 2})
	b := point.MustOf(adt.Fields{"x": 1, "y": 2})
	c := point.MustOf(adt.Fields{"x": 1, "y": 3})

	if !point.Eq.Equals(a, b) || point.Eq.Equals(a, c) {
		t.Fatalf("product equality broken")
	}
	if point.Ord.Compare(a, c) != -1 || point.Ord.Compare(c, a) != 1 || point.Ord.Compare(a, b) != 0 {
		t.Fatalf("product ordering broken")
	}
	if got := point.Show.Show(a); got != `{{"x":1,"y":2}}` {
		t.Fatalf("unexpected product rendering: %q", got)
	}
}

func TestProduct_RejectsBadManifest(t *testing.T) {
	cfg := adt.DefaultConfig()
	cfg.Registry = adt.NewRegistry()
	_, err := adt.NewProduct("Bad", []string{"x", "x", ""}, cfg)
	iss, ok := adt.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected duplicate and empty field issues, got %v", err)
	}
}

func TestProduct_ParseAndJSONSchema(t *testing.T) {
	point := declPoint(t)

	v, err := point.ParseJSON([]byte(`{"x":1,"y":2}`))
	if err != nil || v["x"] != float64(1) {
		t.Fatalf("ParseJSON broken: %v %v", v, err)
	}
	if _, err := point.ParseJSON([]byte(`{"x":1}`)); err == nil {
		t.Fatalf("expected required error")
	}

	s, err := point.JSONSchema()
	if err != nil || s.Type != "object" || len(s.Required) != 2 {
		t.Fatalf("unexpected schema: %+v err=%v", s, err)
	}
	if s.AdditionalProperties != false {
		t.Fatalf("product schema must reject unknown keys")
	}
}
