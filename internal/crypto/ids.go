package crypto

import (
	"github.com/decred/dcrd/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// PublicKeyHashSize is the length of the hash embedded in an address.
const PublicKeyHashSize = 20

// PublicKeyHash computes RIPEMD160(SHA3-256(publicKey)), the account part of an address.
func PublicKeyHash(publicKey types.Key) [PublicKeyHashSize]byte {
	digest := sha3.Sum256(publicKey[:])

	h := ripemd160.New()
	h.Write(digest[:])

	var out [PublicKeyHashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
