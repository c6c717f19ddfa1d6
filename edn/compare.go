package edn

import "cmp"

// Equal reports deep value equality. Values of different kinds are unequal,
// and two Data values wrapping different concrete types are unequal, never
// fatal.
func Equal(a, b Edn) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Nil:
		return true
	case Bool:
		return x == b.(Bool)
	case Int:
		return x == b.(Int)
	case Float:
		return x == b.(Float)
	case Char:
		return x == b.(Char)
	case Str:
		return x == b.(Str)
	case Symbol:
		return x == b.(Symbol)
	case Keyword:
		return x == b.(Keyword)
	case List:
		return seqEqual(x, b.(List))
	case Vector:
		return seqEqual(x, b.(Vector))
	case Map:
		y := b.(Map)
		if len(x.entries) != len(y.entries) {
			return false
		}
		// Entries are held in canonical order, so pairwise comparison is exact.
		for i := range x.entries {
			if !Equal(x.entries[i].Key, y.entries[i].Key) || !Equal(x.entries[i].Val, y.entries[i].Val) {
				return false
			}
		}
		return true
	case Set:
		y := b.(Set)
		return seqEqual(x.elems, y.elems)
	case Tagged:
		y := b.(Tagged)
		return x.Tag == y.Tag && Equal(x.Value, y.Value)
	case Data:
		return x.Datum.Equal(b.(Data).Datum)
	}
	return false
}

// Compare totally orders values: by kind rank across kinds, natively within
// a kind. Comparing two Data values wrapping different concrete types is a
// programming error and panics; see data.Datum.Compare.
func Compare(a, b Edn) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch x := a.(type) {
	case Nil:
		return 0
	case Bool:
		y := b.(Bool)
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	case Int:
		return cmp.Compare(x, b.(Int))
	case Float:
		return cmp.Compare(x, b.(Float))
	case Char:
		return cmp.Compare(x, b.(Char))
	case Str:
		return cmp.Compare(x, b.(Str))
	case Symbol:
		return cmp.Compare(x, b.(Symbol))
	case Keyword:
		return cmp.Compare(x, b.(Keyword))
	case List:
		return seqCompare(x, b.(List))
	case Vector:
		return seqCompare(x, b.(Vector))
	case Map:
		y := b.(Map)
		n := min(len(x.entries), len(y.entries))
		for i := 0; i < n; i++ {
			if c := Compare(x.entries[i].Key, y.entries[i].Key); c != 0 {
				return c
			}
			if c := Compare(x.entries[i].Val, y.entries[i].Val); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(x.entries), len(y.entries))
	case Set:
		return seqCompare(x.elems, b.(Set).elems)
	case Tagged:
		y := b.(Tagged)
		if c := cmp.Compare(x.Tag, y.Tag); c != 0 {
			return c
		}
		return Compare(x.Value, y.Value)
	case Data:
		return x.Datum.Compare(b.(Data).Datum)
	}
	return 0
}

func seqEqual(a, b []Edn) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func seqCompare(a, b []Edn) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
