package storage_test

import (
	"bytes"
	"testing"

	"xdao.co/edn/cidutil"
	"xdao.co/edn/storage"
	"xdao.co/edn/storage/testkit"
)

func TestMemoryCAS_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		t.Helper()
		return storage.NewMemoryCAS()
	})
}

func TestMemoryCAS_GetReturnsCopy(t *testing.T) {
	cas := storage.NewMemoryCAS()
	id, err := cas.Put([]byte("immutable"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got[0] = 'X'
	again, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get(2) failed: %v", err)
	}
	if !bytes.Equal(again, []byte("immutable")) {
		t.Fatalf("mutating a Get result corrupted the store: %q", again)
	}
}

func TestMultiCAS_OrderedFallback(t *testing.T) {
	primary := storage.NewMemoryCAS()
	secondary := storage.NewMemoryCAS()
	m := storage.MultiCAS{Backends: []storage.CAS{primary, secondary}}

	b := []byte("only in secondary")
	id, err := secondary.Put(b)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get via fallback failed: %v", err)
	}
	if !bytes.Equal(got, b) {
		t.Fatalf("fallback bytes mismatch")
	}
	if !m.Has(id) {
		t.Fatalf("Has should see the secondary backend")
	}

	// Put writes only to the first backend.
	id2, err := m.Put([]byte("write path"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !primary.Has(id2) || secondary.Has(id2) {
		t.Fatalf("MultiCAS.Put must write only to the first backend")
	}
}

func TestReplicatingCAS_PutAll(t *testing.T) {
	a := storage.NewMemoryCAS()
	b := storage.NewMemoryCAS()
	r := storage.ReplicatingCAS{Backends: []storage.NamedCAS{
		{Name: "a", CAS: a},
		{Name: "b", CAS: b},
	}}

	doc := []byte(`[1 2 3]`)
	want, err := cidutil.CIDv1RawSHA256CID(doc)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID failed: %v", err)
	}

	id, perBackend, err := r.PutAll(doc)
	if err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}
	if id != want {
		t.Fatalf("canonical CID mismatch: got %s want %s", id, want)
	}
	if perBackend["a"] != want || perBackend["b"] != want {
		t.Fatalf("per-backend CIDs mismatch: %v", perBackend)
	}
	if !a.Has(id) || !b.Has(id) {
		t.Fatalf("replication did not reach all backends")
	}
}

func TestReplicatingCAS_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		t.Helper()
		return storage.ReplicatingCAS{Backends: []storage.NamedCAS{
			{Name: "a", CAS: storage.NewMemoryCAS()},
			{Name: "b", CAS: storage.NewMemoryCAS()},
		}}
	})
}
