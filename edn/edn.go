// Package edn implements the EDN value model and an extensible reader.
//
// The kind set is closed: every value is one of the kinds below. Custom
// concrete types enter the model through the Data kind, which wraps a
// type-erased data.Datum produced by a registered tag reader. All kinds,
// Data included, satisfy the model-wide invariants: cloneable, comparable,
// hashable, renderable.
package edn

import (
	"fmt"
	"sort"

	"xdao.co/edn/data"
)

// Kind identifies a value's place in the closed kind set. The declaration
// order is the cross-kind total order used by Compare.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindChar
	KindStr
	KindSymbol
	KindKeyword
	KindList
	KindVector
	KindMap
	KindSet
	KindTagged
	KindData
)

var kindNames = map[Kind]string{
	KindNil:     "nil",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindChar:    "char",
	KindStr:     "string",
	KindSymbol:  "symbol",
	KindKeyword: "keyword",
	KindList:    "list",
	KindVector:  "vector",
	KindMap:     "map",
	KindSet:     "set",
	KindTagged:  "tagged",
	KindData:    "data",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edn is one value of the model.
type Edn interface {
	fmt.Stringer
	Kind() Kind
}

type (
	// Nil is the nil value.
	Nil struct{}
	// Bool is a boolean.
	Bool bool
	// Int is a 64-bit signed integer.
	Int int64
	// Float is a 64-bit float. Int and Float never compare equal.
	Float float64
	// Char is a single character.
	Char rune
	// Str is a string.
	Str string
	// Symbol is a symbol such as foo/bar.
	Symbol string
	// Keyword is a keyword; the text excludes the leading colon.
	Keyword string
	// List is an ordered sequence read from (...).
	List []Edn
	// Vector is an ordered sequence read from [...].
	Vector []Edn
	// Tagged is a tagged element no reader was registered for.
	Tagged struct {
		Tag   string
		Value Edn
	}
	// Data wraps a type-erased custom value. See package data.
	Data struct {
		Datum data.Datum
	}
)

// Map is an association with unique keys held in canonical (Compare) order.
// Construct with NewMap; the zero Map is empty and usable.
type Map struct {
	entries []MapEntry
}

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key Edn
	Val Edn
}

// Set holds unique elements in canonical (Compare) order.
// Construct with NewSet; the zero Set is empty and usable.
type Set struct {
	elems []Edn
}

func (Nil) Kind() Kind     { return KindNil }
func (Bool) Kind() Kind    { return KindBool }
func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (Char) Kind() Kind    { return KindChar }
func (Str) Kind() Kind     { return KindStr }
func (Symbol) Kind() Kind  { return KindSymbol }
func (Keyword) Kind() Kind { return KindKeyword }
func (List) Kind() Kind    { return KindList }
func (Vector) Kind() Kind  { return KindVector }
func (Map) Kind() Kind     { return KindMap }
func (Set) Kind() Kind     { return KindSet }
func (Tagged) Kind() Kind  { return KindTagged }
func (Data) Kind() Kind    { return KindData }

// NewData erases v and wraps it as a model value.
func NewData[T data.Data[T]](v T) Data {
	return Data{Datum: data.New(v)}
}

// NewMap builds a Map from entries. Duplicate keys resolve last-wins;
// entries are stored deduplicated and sorted in canonical order.
func NewMap(entries ...MapEntry) Map {
	var out []MapEntry
	for _, e := range entries {
		replaced := false
		for i := range out {
			if Equal(out[i].Key, e.Key) {
				out[i].Val = e.Val
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i].Key, out[j].Key) < 0
	})
	return Map{entries: out}
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m.entries)
}

// Entries returns the entries in canonical order. The slice is shared;
// callers must not mutate it.
func (m Map) Entries() []MapEntry {
	return m.entries
}

// Get returns the value associated with key.
func (m Map) Get(key Edn) (Edn, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
	if i < len(m.entries) && Equal(m.entries[i].Key, key) {
		return m.entries[i].Val, true
	}
	return nil, false
}

// Assoc returns a copy of m with key set to val.
func (m Map) Assoc(key, val Edn) Map {
	entries := make([]MapEntry, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	return NewMap(append(entries, MapEntry{Key: key, Val: val})...)
}

// NewSet builds a Set from elems, deduplicated by Equal and sorted in
// canonical order.
func NewSet(elems ...Edn) Set {
	var out []Edn
	for _, e := range elems {
		dup := false
		for _, have := range out {
			if Equal(have, e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return Set{elems: out}
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s.elems)
}

// Elems returns the elements in canonical order. The slice is shared;
// callers must not mutate it.
func (s Set) Elems() []Edn {
	return s.elems
}

// Contains reports whether s holds an element equal to v.
func (s Set) Contains(v Edn) bool {
	i := sort.Search(len(s.elems), func(i int) bool {
		return Compare(s.elems[i], v) >= 0
	})
	return i < len(s.elems) && Equal(s.elems[i], v)
}

// Conj returns a copy of s including v.
func (s Set) Conj(v Edn) Set {
	elems := make([]Edn, len(s.elems), len(s.elems)+1)
	copy(elems, s.elems)
	return NewSet(append(elems, v)...)
}
