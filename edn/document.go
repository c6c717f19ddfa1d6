package edn

import (
	"math"

	"github.com/ipfs/go-cid"

	"xdao.co/edn/cidutil"
	"xdao.co/edn/parse"
	"xdao.co/edn/storage"
)

// CanonicalBytes returns v's canonical rendering as bytes.
//
// Values without a wire form are rejected with an ErrRender error: erased
// data has no canonical byte identity, and non-finite floats (Inf, NaN)
// have no EDN literal.
func CanonicalBytes(v Edn) ([]byte, error) {
	if msg, ok := unrenderable(v); ok {
		return nil, newError(ErrRender, parse.Pos{}, msg)
	}
	return []byte(Render(v)), nil
}

// DocCID returns the CIDv1 (raw + sha2-256) of v's canonical rendering.
// Equal values always share one CID.
func DocCID(v Edn) (string, error) {
	b, err := CanonicalBytes(v)
	if err != nil {
		return "", err
	}
	return cidutil.CIDv1RawSHA256(b), nil
}

// PutCanonical stores v's canonical rendering in cas and returns its CID.
// Storing an equal value again is a no-op by CAS idempotence, which is the
// model's document-level deduplication path.
func PutCanonical(cas storage.CAS, v Edn) (cid.Cid, error) {
	b, err := CanonicalBytes(v)
	if err != nil {
		return cid.Undef, err
	}
	return cas.Put(b)
}

// GetCanonical fetches canonical bytes by CID and reads them back through r.
// A nil r reads with no tag readers registered.
func GetCanonical(cas storage.CAS, id cid.Cid, r *Reader) (Edn, error) {
	b, err := cas.Get(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = NewReader()
	}
	return r.Read(b)
}

// unrenderable reports the first value in v with no wire form.
func unrenderable(v Edn) (string, bool) {
	switch x := v.(type) {
	case Data:
		return "value embeds erased data (" + x.Datum.Type().String() + ") and has no wire form", true
	case Float:
		if math.IsInf(float64(x), 0) || math.IsNaN(float64(x)) {
			return "value embeds a non-finite float and has no wire form", true
		}
	case List:
		return seqUnrenderable(x)
	case Vector:
		return seqUnrenderable(x)
	case Map:
		for _, e := range x.entries {
			if msg, ok := unrenderable(e.Key); ok {
				return msg, ok
			}
			if msg, ok := unrenderable(e.Val); ok {
				return msg, ok
			}
		}
	case Set:
		return seqUnrenderable(x.elems)
	case Tagged:
		return unrenderable(x.Value)
	}
	return "", false
}

func seqUnrenderable(elems []Edn) (string, bool) {
	for _, e := range elems {
		if msg, ok := unrenderable(e); ok {
			return msg, ok
		}
	}
	return "", false
}
