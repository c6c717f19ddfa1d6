// Package cidutil derives content identifiers and digests for canonical
// EDN document bytes.
package cidutil

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Digest returns the raw digest of data under the named algorithm.
// Supported algorithms: sha256, sha512, sha3-256.
func Digest(alg string, data []byte) ([]byte, error) {
	switch alg {
	case "sha256":
		s := sha256.Sum256(data)
		return s[:], nil
	case "sha512":
		s := sha512.Sum512(data)
		return s[:], nil
	case "sha3-256":
		s := sha3.Sum256(data)
		return s[:], nil
	default:
		return nil, fmt.Errorf("cidutil: unsupported digest algorithm %q", alg)
	}
}
