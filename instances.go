package adt

import (
	"reflect"

	eng "github.com/blaster151/adt/internal/engine"
)

// Equatable decides equality of two values of one declared type.
type Equatable interface {
	Equals(a, b Value) bool
}

// Orderable totally orders values of one declared type. Compare returns -1,
// 0, or 1.
type Orderable interface {
	Compare(a, b Value) int
}

// Showable renders a value of one declared type as a string.
type Showable interface {
	Show(v Value) string
}

// EqFunc adapts a function to Equatable.
type EqFunc func(a, b Value) bool

func (f EqFunc) Equals(a, b Value) bool { return f(a, b) }

// OrdFunc adapts a function to Orderable.
type OrdFunc func(a, b Value) int

func (f OrdFunc) Compare(a, b Value) int { return f(a, b) }

// ShowFunc adapts a function to Showable.
type ShowFunc func(v Value) string

func (f ShowFunc) Show(v Value) string { return f(v) }

// structuralEq derives sum-type equality: tags first, then the non-tag field
// sets structurally.
type structuralEq struct{}

func (structuralEq) Equals(a, b Value) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	return eng.EqualFieldMaps(a, b, TagKey)
}

// structuralOrd derives the full lexicographic order: tag, then sorted key
// lists, then values in sorted-key order.
type structuralOrd struct{}

func (structuralOrd) Compare(a, b Value) int {
	at, bt := a.Tag(), b.Tag()
	switch {
	case at < bt:
		return -1
	case at > bt:
		return 1
	}
	return eng.CompareFieldMaps(a, b, TagKey)
}

// structuralShow renders "<tag>" for payload-free variants and
// "<tag>(<canonical JSON of the payload>)" otherwise.
type structuralShow struct{}

func (structuralShow) Show(v Value) string {
	tag := v.Tag()
	fields := v.Fields()
	if len(fields) == 0 {
		return tag
	}
	return tag + "(" + eng.CanonicalJSON(map[string]any(fields)) + ")"
}

// productEq derives product equality: the field sets structurally, no tag
// step.
type productEq struct{}

func (productEq) Equals(a, b Value) bool { return eng.EqualFieldMaps(a, b, TagKey) }

// productOrd derives product ordering: sorted key lists then values.
type productOrd struct{}

func (productOrd) Compare(a, b Value) int { return eng.CompareFieldMaps(a, b, TagKey) }

// productShow renders "{<canonical JSON of the fields>}".
type productShow struct{}

func (productShow) Show(v Value) string {
	return "{" + eng.CanonicalJSON(map[string]any(v.Fields())) + "}"
}

// ReferenceEq returns identity equality for types whose structure carries no
// meaning (IO, Task, and other effectful values): two Values are equal only
// when they are the same underlying map.
func ReferenceEq() Equatable {
	return EqFunc(func(a, b Value) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	})
}

// IdentityOrd returns an identity-based order companion to ReferenceEq: equal
// references order as 0, distinct references by their identity handles. The
// order is arbitrary but consistent within a process.
func IdentityOrd() Orderable {
	return OrdFunc(func(a, b Value) int {
		pa := valuePointer(a)
		pb := valuePointer(b)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})
}

func valuePointer(v Value) uintptr {
	if v == nil {
		return 0
	}
	return reflect.ValueOf(v).Pointer()
}
