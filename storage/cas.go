// Package storage provides content-addressable storage for canonical EDN
// document bytes. Equal values render to equal canonical bytes and therefore
// share one CID, which is the model's document-level deduplication path.
package storage

import "github.com/ipfs/go-cid"

// CAS is a minimal content-addressable storage interface.
//
// Contract:
// - Put MUST be idempotent: storing equal bytes yields the same CID.
// - Stored objects MUST be immutable.
// - CIDs MUST be derived from the bytes written (callers are responsible for
//   supplying canonical bytes; see edn.CanonicalBytes).
// - Get MUST return ErrNotFound when the CID is absent.
type CAS interface {
	Put(bytes []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
