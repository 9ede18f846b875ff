package adt_test

import (
	"testing"

	adt "github.com/blaster151/adt"
)

func declMaybe(t *testing.T) *adt.SumType {
	t.Helper()
	cfg := adt.DefaultConfig()
	cfg.Registry = adt.NewRegistry()
	m, err := adt.NewSum("Maybe", []adt.Variant{
		{Name: "Just", Payload: func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }},
		{Name: "Nothing"},
	}, cfg)
	if err != nil {
		t.Fatalf("declare Maybe: %v", err)
	}
	return m
}

func TestMatch_DispatchesFullValue(t *testing.T) {
	maybe := declMaybe(t)
	v := maybe.Constructors["Just"](5)

	out, err := adt.Match(v, map[string]func(adt.Value) string{
		"Just":    func(v adt.Value) string { return "just:" + v.Tag() },
		"Nothing": func(adt.Value) string { return "nothing" },
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "just:Just" {
		t.Fatalf("handler should see the whole tagged value, got %q", out)
	}
}

func TestMatch_UnhandledTagFails(t *testing.T) {
	maybe := declMaybe(t)
	v := maybe.Constructors["Nothing"]()

	_, err := adt.Match(v, map[string]func(adt.Value) int{
		"Just": func(adt.Value) int { return 1 },
	})
	iss, ok := adt.AsIssues(err)
	if !ok || iss[0].Code != adt.CodeUnhandledTag {
		t.Fatalf("expected unhandled_tag, got %v", err)
	}
	if iss[0].Params["tag"] != "Nothing" {
		t.Fatalf("issue should name the tag, got %+v", iss[0])
	}
}

func TestMatch_NilValueOrHandlersFails(t *testing.T) {
	maybe := declMaybe(t)
	handlers := map[string]func(adt.Value) int{"Just": func(adt.Value) int { return 1 }}

	if _, err := adt.Match(nil, handlers); err == nil {
		t.Fatalf("expected undefined_required for nil value")
	}
	if _, err := adt.Match[int](maybe.Constructors["Just"](1), nil); err == nil {
		t.Fatalf("expected undefined_required for nil handlers")
	}
}

func TestMatchValues_UnwrapRules(t *testing.T) {
	cfg := adt.DefaultConfig()
	cfg.Registry = adt.NewRegistry()
	shape, err := adt.NewSum("Shape", []adt.Variant{
		{Name: "Empty"},
		{Name: "Wrapped", Payload: func(args ...any) adt.Fields { return adt.Fields{"value": args[0]} }},
		{Name: "Failed", Payload: func(args ...any) adt.Fields { return adt.Fields{"error": args[0]} }},
		{Name: "Named", Payload: func(args ...any) adt.Fields { return adt.Fields{"width": args[0]} }},
		{Name: "Pair", Payload: func(args ...any) adt.Fields { return adt.Fields{"a": args[0], "b": args[1]} }},
	}, cfg)
	if err != nil {
		t.Fatalf("declare Shape: %v", err)
	}

	echo := map[string]func(any) any{
		"Empty":   func(x any) any { return x },
		"Wrapped": func(x any) any { return x },
		"Failed":  func(x any) any { return x },
		"Named":   func(x any) any { return x },
		"Pair":    func(x any) any { return x },
	}

	// zero fields: handler receives nil
	got, err := adt.MatchValues(shape.Constructors["Empty"](), echo)
	if err != nil || got != nil {
		t.Fatalf("empty payload should unwrap to nil, got %v err=%v", got, err)
	}

	// single "value" field: unwrapped
	got, _ = adt.MatchValues(shape.Constructors["Wrapped"](42), echo)
	if got != 42 {
		t.Fatalf(`single "value" field should unwrap, got %v`, got)
	}

	// single "error" field: unwrapped
	got, _ = adt.MatchValues(shape.Constructors["Failed"]("boom"), echo)
	if got != "boom" {
		t.Fatalf(`single "error" field should unwrap, got %v`, got)
	}

	// single field under any other name: whole payload, tag excluded
	got, _ = adt.MatchValues(shape.Constructors["Named"](7), echo)
	fields, ok := got.(adt.Fields)
	if !ok || fields["width"] != 7 {
		t.Fatalf("lone arbitrary key must not unwrap, got %#v", got)
	}
	if _, hasTag := fields["tag"]; hasTag {
		t.Fatalf("payload must exclude the tag, got %#v", fields)
	}

	// two fields: whole payload
	got, _ = adt.MatchValues(shape.Constructors["Pair"](1, 2), echo)
	fields, ok = got.(adt.Fields)
	if !ok || fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("multi-field payload should pass whole, got %#v", got)
	}
}

func TestMatchPartial_NeverFails(t *testing.T) {
	maybe := declMaybe(t)
	fallback := func(v adt.Value) string { return "fallback:" + v.Tag() }

	// empty handler table: fallback handles everything
	out := adt.MatchPartial(maybe.Constructors["Just"](1), map[string]func(adt.Value) string{}, fallback)
	if out != "fallback:Just" {
		t.Fatalf("expected fallback result, got %q", out)
	}

	// covered tag: handler wins
	out = adt.MatchPartial(maybe.Constructors["Just"](1), map[string]func(adt.Value) string{
		"Just": func(adt.Value) string { return "hit" },
	}, fallback)
	if out != "hit" {
		t.Fatalf("expected handler result, got %q", out)
	}
}

func TestMatcher_CurriedFormsAgreeWithDirect(t *testing.T) {
	maybe := declMaybe(t)
	handlers := map[string]func(adt.Value) int{
		"Just":    func(adt.Value) int { return 1 },
		"Nothing": func(adt.Value) int { return 0 },
	}
	match := adt.Matcher(handlers)

	for _, tag := range maybe.Tags() {
		v, err := maybe.New(tag, "x")
		if err != nil {
			t.Fatalf("construct %s: %v", tag, err)
		}
		direct, err1 := adt.Match(v, handlers)
		curried, err2 := match(v)
		if err1 != nil || err2 != nil || direct != curried {
			t.Fatalf("curried form diverged for %s: %v/%v %v/%v", tag, direct, curried, err1, err2)
		}
	}

	values := adt.MatcherValues(map[string]func(any) string{
		"Just":    func(x any) string { return "just" },
		"Nothing": func(any) string { return "nothing" },
	})
	if out, err := values(maybe.Constructors["Nothing"]()); err != nil || out != "nothing" {
		t.Fatalf("curried MatchValues diverged: %v %v", out, err)
	}
}
