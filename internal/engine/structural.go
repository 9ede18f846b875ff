// Package engine implements the structural traversal shared by the Eq/Ord/Show
// derivation: recursive equality, a total deterministic order, and canonical
// rendering over the map[string]any value representation. This package is
// internal and not part of the public API.
package engine

import (
	"reflect"
	"sort"
	"strings"

	j "github.com/goccy/go-json"
)

// Equal reports recursive structural equality.
//
// Primitives compare by ==. Maps and slices recurse. Funcs, channels, and
// pointers compare by reference identity. There is no serialization round
// trip; unequal dynamic kinds are simply unequal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	ak, bk := normalKind(av.Kind()), normalKind(bv.Kind())
	if ak != bk {
		// numbers of different widths still compare by value
		if ak == kindNumber && bk == kindNumber {
			return numeric(av) == numeric(bv)
		}
		return false
	}
	switch ak {
	case kindNumber:
		return numeric(av) == numeric(bv)
	case kindString:
		return av.String() == bv.String()
	case kindBool:
		return av.Bool() == bv.Bool()
	case kindMap:
		if av.Len() != bv.Len() {
			return false
		}
		// differing key types never compare equal; also keeps MapIndex safe
		if av.Type().Key() != bv.Type().Key() {
			return false
		}
		iter := av.MapRange()
		for iter.Next() {
			bval := bv.MapIndex(iter.Key())
			if !bval.IsValid() {
				return false
			}
			if !Equal(iter.Value().Interface(), bval.Interface()) {
				return false
			}
		}
		return true
	case kindSlice:
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !Equal(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case kindRef:
		return av.Pointer() == bv.Pointer()
	}
	// structs and anything else left: fall back to interface equality when
	// comparable, reference-unequal otherwise
	if av.Comparable() && bv.Comparable() {
		return a == b
	}
	return false
}

// Compare returns -1, 0, or 1 under a total deterministic order:
// nil < bool < number < string < composite. Numbers compare cross-type as
// float64; composites recurse (maps by sorted key list then values, slices
// lexicographically); anything still unordered compares by canonical JSON so
// the order stays total.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return sign(ra - rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		ab := reflect.ValueOf(a).Bool()
		bb := reflect.ValueOf(b).Bool()
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		}
		return 1
	case rankNumber:
		af := numeric(reflect.ValueOf(a))
		bf := numeric(reflect.ValueOf(b))
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case rankString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Kind() == reflect.Map && bv.Kind() == reflect.Map {
		return compareMaps(av, bv)
	}
	if (av.Kind() == reflect.Slice || av.Kind() == reflect.Array) &&
		(bv.Kind() == reflect.Slice || bv.Kind() == reflect.Array) {
		return compareSlices(av, bv)
	}
	return strings.Compare(CanonicalJSON(a), CanonicalJSON(b))
}

// CompareFieldMaps orders two field maps, skipping the given key: first the
// sorted key lists lexicographically (shorter prefix first, then by name),
// then the values for each key in sorted-key order.
func CompareFieldMaps(a, b map[string]any, skip string) int {
	return compareFieldMaps(a, b, skip, true)
}

// CompareMaps orders two maps with no key excluded. The empty string is a
// legitimate map key here, not a skip marker.
func CompareMaps(a, b map[string]any) int {
	return compareFieldMaps(a, b, "", false)
}

func compareFieldMaps(a, b map[string]any, skip string, hasSkip bool) int {
	ak := sortedKeys(a, skip, hasSkip)
	bk := sortedKeys(b, skip, hasSkip)
	if c := compareKeyLists(ak, bk); c != 0 {
		return c
	}
	for _, k := range ak {
		if c := Compare(a[k], b[k]); c != 0 {
			return c
		}
	}
	return 0
}

// EqualFieldMaps reports structural equality of two field maps, skipping the
// given key: equal key-set size, then per-key recursive equality.
func EqualFieldMaps(a, b map[string]any, skip string) bool {
	na, nb := len(a), len(b)
	if _, ok := a[skip]; ok {
		na--
	}
	if _, ok := b[skip]; ok {
		nb--
	}
	if na != nb {
		return false
	}
	for k, av := range a {
		if k == skip {
			continue
		}
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}

// sortedKeys lists the map's keys, sorted, minus skip when hasSkip is set.
func sortedKeys(m map[string]any, skip string, hasSkip bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if hasSkip && k == skip {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalJSON renders v deterministically: go-json sorts map keys, so equal
// structures always render identically. Unencodable values degrade to their
// Go-syntax representation rather than failing.
func CanonicalJSON(v any) string {
	b, err := j.Marshal(v)
	if err != nil {
		return reflect.TypeOf(v).String()
	}
	return string(b)
}

func compareKeyLists(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return sign(len(a) - len(b))
}

func compareMaps(av, bv reflect.Value) int {
	a := toStringMap(av)
	b := toStringMap(bv)
	if a == nil || b == nil {
		return strings.Compare(CanonicalJSON(av.Interface()), CanonicalJSON(bv.Interface()))
	}
	return CompareMaps(a, b)
}

func compareSlices(av, bv reflect.Value) int {
	n := av.Len()
	if bv.Len() < n {
		n = bv.Len()
	}
	for i := 0; i < n; i++ {
		if c := Compare(av.Index(i).Interface(), bv.Index(i).Interface()); c != 0 {
			return c
		}
	}
	return sign(av.Len() - bv.Len())
}

func toStringMap(v reflect.Value) map[string]any {
	if m, ok := v.Interface().(map[string]any); ok {
		return m
	}
	if v.Type().Key().Kind() != reflect.String {
		return nil
	}
	out := make(map[string]any, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

type kind int

const (
	kindOther kind = iota
	kindBool
	kindNumber
	kindString
	kindMap
	kindSlice
	kindRef
)

func normalKind(k reflect.Kind) kind {
	switch k {
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	case reflect.Map:
		return kindMap
	case reflect.Slice, reflect.Array:
		return kindSlice
	case reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return kindRef
	}
	return kindOther
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankComposite
)

func rank(v any) int {
	if v == nil {
		return rankNil
	}
	switch normalKind(reflect.ValueOf(v).Kind()) {
	case kindBool:
		return rankBool
	case kindNumber:
		return rankNumber
	case kindString:
		return rankString
	}
	return rankComposite
}

func numeric(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
