package edn_test

import (
	"errors"
	"fmt"
	"testing"

	"xdao.co/edn/data"
	"xdao.co/edn/edn"
	"xdao.co/edn/parse"
)

// personReader parses #person [Name Age] into an erased Person.
func personReader(node *parse.Node) (edn.Edn, error) {
	if node.Kind != parse.KindVector || len(node.Children) != 2 {
		return nil, fmt.Errorf("expected [name age]")
	}
	name, age := node.Children[0], node.Children[1]
	if name.Kind != parse.KindSymbol || age.Kind != parse.KindInt {
		return nil, fmt.Errorf("expected a symbol and an integer")
	}
	return edn.NewData(Person{Name: name.Text, Age: int(age.Int)}), nil
}

func TestReadCustomTaggedData(t *testing.T) {
	r := edn.NewReader()
	r.AddReader("person", personReader)

	v, err := r.ReadString(` #person [John 34] `)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	d, ok := v.(edn.Data)
	if !ok {
		t.Fatalf("expected Data value, got %T", v)
	}
	person, ok := data.Downcast[Person](d.Datum)
	if !ok {
		t.Fatalf("downcast to Person failed")
	}
	if person.Name != "John" {
		t.Errorf("Name = %q, want John", person.Name)
	}
	if person.Age != 34 {
		t.Errorf("Age = %d, want 34", person.Age)
	}
}

func TestReadDataInsideCollection(t *testing.T) {
	r := edn.NewReader()
	r.AddReader("person", personReader)

	v, err := r.ReadString(`{:who #person [John 34]}`)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	m := v.(edn.Map)
	got, ok := m.Get(edn.Keyword("who"))
	if !ok {
		t.Fatalf("map lost the data value")
	}
	if !edn.Equal(got, edn.NewData(Person{Name: "John", Age: 34})) {
		t.Fatalf("data value mismatch: %s", got)
	}
}

func TestReadUnregisteredTag(t *testing.T) {
	v, err := edn.ReadString(`#inst "1985-04-12"`)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	tagged, ok := v.(edn.Tagged)
	if !ok {
		t.Fatalf("expected Tagged, got %T", v)
	}
	if tagged.Tag != "inst" || !edn.Equal(tagged.Value, edn.Str("1985-04-12")) {
		t.Fatalf("tagged mismatch: %+v", tagged)
	}
}

func TestReadScalarsAndCollections(t *testing.T) {
	v, err := edn.ReadString(`{:name "x" :scores [1 2.5] :opts #{:a :b} :meta (nil true \c)}`)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	m := v.(edn.Map)
	if m.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", m.Len())
	}
	scores, _ := m.Get(edn.Keyword("scores"))
	if !edn.Equal(scores, edn.Vector{edn.Int(1), edn.Float(2.5)}) {
		t.Fatalf("scores mismatch: %s", scores)
	}
	opts, _ := m.Get(edn.Keyword("opts"))
	if !edn.Equal(opts, edn.NewSet(edn.Keyword("a"), edn.Keyword("b"))) {
		t.Fatalf("opts mismatch: %s", opts)
	}
	meta, _ := m.Get(edn.Keyword("meta"))
	if !edn.Equal(meta, edn.List{edn.Nil{}, edn.Bool(true), edn.Char('c')}) {
		t.Fatalf("meta mismatch: %s", meta)
	}
}

func TestReadTagReaderFailure(t *testing.T) {
	r := edn.NewReader()
	r.AddReader("person", personReader)

	_, err := r.ReadString(`#person "not a vector"`)
	if err == nil {
		t.Fatalf("expected tag reader failure")
	}
	if !edn.IsKind(err, edn.ErrTag) {
		t.Fatalf("expected ErrTag, got %v", err)
	}
	var e *edn.Error
	if !errors.As(err, &e) || e.Cause == nil {
		t.Fatalf("tag error must carry the reader's cause: %v", err)
	}
}

func TestReadParseError(t *testing.T) {
	_, err := edn.ReadString("[1 2")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !edn.IsKind(err, edn.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var e *edn.Error
	if !errors.As(err, &e) || e.Pos.Line == 0 {
		t.Fatalf("parse error must carry a position: %v", err)
	}
}

func TestReadDuplicateMapKey(t *testing.T) {
	_, err := edn.ReadString(`{:a 1 :a 2}`)
	if !edn.IsKind(err, edn.ErrSyntax) {
		t.Fatalf("expected ErrSyntax for duplicate map key, got %v", err)
	}
}

func TestReadDuplicateSetElement(t *testing.T) {
	_, err := edn.ReadString(`#{1 2 1}`)
	if !edn.IsKind(err, edn.ErrSyntax) {
		t.Fatalf("expected ErrSyntax for duplicate set element, got %v", err)
	}
}
