package data

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
	"testing"
)

type person struct {
	Name string
	Age  int
	Tags []string
}

func (p person) String() string {
	return fmt.Sprintf("Person(%s, %d)", p.Name, p.Age)
}

func (p person) Clone() person {
	return person{Name: p.Name, Age: p.Age, Tags: slices.Clone(p.Tags)}
}

func (p person) Equal(o person) bool {
	return p.Name == o.Name && p.Age == o.Age && slices.Equal(p.Tags, o.Tags)
}

func (p person) Compare(o person) int {
	if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	}
	if p.Age != o.Age {
		if p.Age < o.Age {
			return -1
		}
		return 1
	}
	return slices.Compare(p.Tags, o.Tags)
}

func (p person) Hash(s *Sink) {
	s.WriteString(p.Name)
	s.WriteInt64(int64(p.Age))
	s.WriteUint64(uint64(len(p.Tags)))
	for _, t := range p.Tags {
		s.WriteString(t)
	}
}

type label string

func (l label) String() string      { return string(l) }
func (l label) Clone() label        { return l }
func (l label) Equal(o label) bool  { return l == o }
func (l label) Compare(o label) int { return strings.Compare(string(l), string(o)) }
func (l label) Hash(s *Sink)        { s.WriteString(string(l)) }

func hashOf(t *testing.T, d Datum) uint64 {
	t.Helper()
	h := fnv.New64a()
	d.Hash(NewSink(h))
	return h.Sum64()
}

func TestCloneEqualsOriginal(t *testing.T) {
	d := New(person{Name: "John", Age: 34, Tags: []string{"a"}})
	c := d.Clone()
	if !c.Equal(d) {
		t.Fatalf("clone not equal to original: %s vs %s", c, d)
	}
	if !d.Equal(c) {
		t.Fatalf("equality not symmetric")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := New(person{Name: "John", Age: 34, Tags: []string{"a", "b"}})
	c := d.Clone()

	// Mutate shared state reachable through the original payload.
	p, ok := Downcast[person](d)
	if !ok {
		t.Fatalf("downcast failed")
	}
	p.Tags[0] = "mutated"

	cp, ok := Downcast[person](c)
	if !ok {
		t.Fatalf("downcast of clone failed")
	}
	if cp.Tags[0] != "a" {
		t.Fatalf("mutation through original visible in clone: %v", cp.Tags)
	}
}

func TestDowncastSameType(t *testing.T) {
	want := person{Name: "John", Age: 34}
	d := New(want)
	got, ok := Downcast[person](d)
	if !ok {
		t.Fatalf("expected downcast to succeed")
	}
	if !got.Equal(want) {
		t.Fatalf("downcast value mismatch: got %v want %v", got, want)
	}
}

func TestDowncastWrongTypeLosesNothing(t *testing.T) {
	orig := New(person{Name: "John", Age: 34})
	if _, ok := Downcast[label](orig); ok {
		t.Fatalf("expected downcast to wrong type to fail")
	}
	// The handle is untouched by the failed downcast.
	if !orig.Equal(New(person{Name: "John", Age: 34})) {
		t.Fatalf("failed downcast corrupted the handle")
	}
	got, ok := Downcast[person](orig)
	if !ok || got.Name != "John" || got.Age != 34 {
		t.Fatalf("round-trip after failed downcast lost data: %v ok=%v", got, ok)
	}
}

func TestEqualAcrossTypesIsFalse(t *testing.T) {
	a := New(person{Name: "x"})
	b := New(label("x"))
	if a.Equal(b) {
		t.Fatalf("cross-type equality must be false")
	}
	if b.Equal(a) {
		t.Fatalf("cross-type equality must be false (reversed)")
	}
}

func TestCompareSameType(t *testing.T) {
	v1 := New(person{Name: "Ann", Age: 1})
	v2 := New(person{Name: "Bob", Age: 1})
	if c := v1.Compare(v2); c >= 0 {
		t.Fatalf("expected v1 < v2, got %d", c)
	}
	if c := v2.Compare(v1); c <= 0 {
		t.Fatalf("expected v2 > v1, got %d", c)
	}
	if c := v1.Compare(v1.Clone()); c != 0 {
		t.Fatalf("expected equal ordering, got %d", c)
	}
}

func TestCompareAcrossTypesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected cross-type Compare to panic")
		}
	}()
	New(person{}).Compare(New(label("x")))
}

func TestPartialCompare(t *testing.T) {
	a := New(label("a"))
	b := New(label("b"))
	if ord, ok := a.PartialCompare(b); !ok || ord >= 0 {
		t.Fatalf("expected a < b, got ord=%d ok=%v", ord, ok)
	}
	if _, ok := a.PartialCompare(New(person{})); ok {
		t.Fatalf("cross-type PartialCompare must report not-ok")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := New(person{Name: "John", Age: 34, Tags: []string{"a"}})
	b := New(person{Name: "John", Age: 34, Tags: []string{"a"}})
	if !a.Equal(b) {
		t.Fatalf("fixture: expected equal values")
	}
	if ha, hb := hashOf(t, a), hashOf(t, b); ha != hb {
		t.Fatalf("equal datums hashed differently: %x vs %x", ha, hb)
	}
	if ha, hc := hashOf(t, a), hashOf(t, a.Clone()); ha != hc {
		t.Fatalf("clone hashed differently: %x vs %x", ha, hc)
	}
}

func TestDisplayAndDebug(t *testing.T) {
	d := New(person{Name: "John", Age: 34})
	if got := d.String(); got != "Person(John, 34)" {
		t.Fatalf("display mismatch: %q", got)
	}
	if got := d.Debug(); !strings.Contains(got, "Name") || !strings.Contains(got, "John") {
		t.Fatalf("debug form should expose fields: %q", got)
	}
}

func TestTypeIdentity(t *testing.T) {
	a := New(person{})
	b := New(label(""))
	if a.Type() == b.Type() {
		t.Fatalf("distinct concrete types share an identity tag")
	}
	if a.Type() != a.Clone().Type() {
		t.Fatalf("clone changed the identity tag")
	}
}
