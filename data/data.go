// Package data implements type-erased values embedded in EDN documents.
//
// Any concrete type carrying the full capability set (display, deep clone,
// equality, total order, hashing) can be wrapped in a Datum and flow through
// the value model without the model knowing its concrete type. Downcast is
// the only way back to the concrete type and fails without data loss.
package data

import (
	"fmt"
	"reflect"
)

// Data is the capability set a concrete type needs to be erased behind a
// Datum. Satisfying it requires no adapter code: New accepts any qualifying
// type directly.
//
// Contract:
//   - Clone MUST return a deep copy; mutating the copy must not be
//     observable through the original.
//   - Compare MUST be a total order consistent with Equal.
//   - Hash MUST feed identical bytes for values that compare Equal.
type Data[T any] interface {
	fmt.Stringer
	Clone() T
	Equal(T) bool
	Compare(T) int
	Hash(*Sink)
}

// Value is the erased contract a Datum stores its payload behind.
//
// Same-type identity checking is the caller's responsibility. EqualValue
// answers false for a foreign concrete type, but CompareValue treats a
// foreign type as an internal invariant violation and panics; callers that
// cannot guarantee a shared type must go through PartialCompareValue.
type Value interface {
	fmt.Stringer

	// CloneValue returns an independent copy of the payload. Never fails.
	CloneValue() Value
	// EqualValue reports whether other holds the same concrete type and an
	// equal value. A foreign type is unequal, never fatal.
	EqualValue(other Value) bool
	// CompareValue totally orders payloads of the same concrete type.
	// It panics when other holds a different concrete type.
	CompareValue(other Value) int
	// PartialCompareValue is CompareValue with cross-type tolerance:
	// ok is false when other holds a different concrete type.
	PartialCompareValue(other Value) (ord int, ok bool)
	// HashValue feeds the payload's hash contribution into sink.
	HashValue(sink *Sink)
	// Type is the payload's runtime identity tag.
	Type() reflect.Type
	// Unwrap returns the payload itself.
	Unwrap() any
	// Debug returns the payload's %#v form.
	Debug() string
}

// box is the blanket Value implementation. Any T satisfying Data[T]
// qualifies through it with zero glue written by T's author.
type box[T Data[T]] struct {
	v T
}

func (b box[T]) CloneValue() Value {
	return box[T]{v: b.v.Clone()}
}

func (b box[T]) EqualValue(other Value) bool {
	o, ok := other.Unwrap().(T)
	if !ok {
		return false
	}
	return b.v.Equal(o)
}

func (b box[T]) CompareValue(other Value) int {
	o, ok := other.Unwrap().(T)
	if !ok {
		panic(fmt.Sprintf("data: cannot order %v against %v", b.Type(), other.Type()))
	}
	return b.v.Compare(o)
}

func (b box[T]) PartialCompareValue(other Value) (int, bool) {
	o, ok := other.Unwrap().(T)
	if !ok {
		return 0, false
	}
	return b.v.Compare(o), true
}

func (b box[T]) HashValue(sink *Sink) {
	b.v.Hash(sink)
}

func (b box[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (b box[T]) Unwrap() any {
	return b.v
}

func (b box[T]) String() string {
	return b.v.String()
}

func (b box[T]) Debug() string {
	return fmt.Sprintf("%#v", b.v)
}

// Datum owns one erased value and presents standard value semantics (clone,
// equality, ordering, hashing, display) without exposing the concrete type.
//
// The zero Datum is not valid; construct with New or Wrap.
type Datum struct {
	v Value
}

// New erases v behind a Datum.
func New[T Data[T]](v T) Datum {
	return Datum{v: box[T]{v: v}}
}

// Wrap erases a hand-implemented Value. Most callers want New; Wrap exists
// for types that need custom erased behavior.
func Wrap(v Value) Datum {
	if v == nil {
		panic("data: Wrap(nil)")
	}
	return Datum{v: v}
}

// Clone returns an independent copy. Mutations reachable through the copy
// are never observable through the original.
func (d Datum) Clone() Datum {
	return Datum{v: d.v.CloneValue()}
}

// Equal reports whether other wraps the same concrete type and an equal
// value. Mismatched concrete types are unequal, never fatal.
func (d Datum) Equal(other Datum) bool {
	return d.v.Type() == other.v.Type() && d.v.EqualValue(other.v)
}

// Compare totally orders two datums of the same concrete type.
//
// Ordering datums of different concrete types is a programming error and
// panics. Unlike Equal, no identity pre-check softens the call: a mismatch
// reaching Compare means the surrounding system tried to order two logically
// incomparable values, and a silently wrong ordering would corrupt any
// sorted structure built on it.
func (d Datum) Compare(other Datum) int {
	return d.v.CompareValue(other.v)
}

// PartialCompare orders two datums when their concrete types match;
// ok is false otherwise.
func (d Datum) PartialCompare(other Datum) (ord int, ok bool) {
	return d.v.PartialCompareValue(other.v)
}

// Hash feeds the datum's hash contribution into sink. Datums that compare
// Equal feed identical bytes.
func (d Datum) Hash(sink *Sink) {
	d.v.HashValue(sink)
}

// Type returns the identity tag of the wrapped concrete type.
func (d Datum) Type() reflect.Type {
	return d.v.Type()
}

func (d Datum) String() string {
	return d.v.String()
}

// Debug returns the wrapped value's %#v form.
func (d Datum) Debug() string {
	return d.v.Debug()
}

// Downcast recovers the concrete value wrapped by d as type T. ok is false
// when d wraps a different concrete type; d itself is a plain value and
// remains intact in the caller's hands, so a failed downcast loses nothing.
func Downcast[T Data[T]](d Datum) (T, bool) {
	v, ok := d.v.Unwrap().(T)
	return v, ok
}
