package cidutil

import (
	"strings"
	"testing"
)

func TestCIDv1RawSHA256Deterministic(t *testing.T) {
	doc := []byte("[1 2 3]")
	a := CIDv1RawSHA256(doc)
	b := CIDv1RawSHA256(doc)
	if a == "" {
		t.Fatal("empty CID")
	}
	if a != b {
		t.Fatalf("same bytes produced different CIDs: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "b") {
		t.Fatalf("expected base32 CIDv1 (b...), got %s", a)
	}
	if c := CIDv1RawSHA256([]byte("[1 2 4]")); c == a {
		t.Fatalf("different bytes share a CID: %s", c)
	}
}

func TestCIDv1RawSHA256CIDMatchesString(t *testing.T) {
	doc := []byte(`{:a 1}`)
	id, err := CIDv1RawSHA256CID(doc)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID failed: %v", err)
	}
	if id.String() != CIDv1RawSHA256(doc) {
		t.Fatalf("CID forms disagree: %s vs %s", id, CIDv1RawSHA256(doc))
	}
}

func TestDigestAlgorithms(t *testing.T) {
	data := []byte("#{1 2 3}")
	sizes := map[string]int{
		"sha256":   32,
		"sha512":   64,
		"sha3-256": 32,
	}
	for alg, size := range sizes {
		sum, err := Digest(alg, data)
		if err != nil {
			t.Errorf("Digest(%s) failed: %v", alg, err)
			continue
		}
		if len(sum) != size {
			t.Errorf("Digest(%s): got %d bytes, want %d", alg, len(sum), size)
		}
	}
	if s256, _ := Digest("sha256", data); len(s256) > 0 {
		s3, _ := Digest("sha3-256", data)
		if string(s256) == string(s3) {
			t.Fatal("sha256 and sha3-256 must not collide on the same input")
		}
	}
}

func TestDigestUnsupportedAlgorithm(t *testing.T) {
	if _, err := Digest("md5", []byte("x")); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}
