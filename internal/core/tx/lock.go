package tx

import (
	"crypto/sha256"
	"fmt"
	"math"

	"github.com/decred/dcrd/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// HashLock locks funds as a deposit for an aggregate bonded transaction.
type HashLock struct {
	BaseTx

	Mosaic   Mosaic        `json:"mosaic"`
	Duration uint64        `json:"duration"`
	Hash     types.Hash256 `json:"hash"`
}

// NewHashLock creates a new HashLock transaction for the aggregate with the given hash
func NewHashLock(network NetworkType, mosaic Mosaic, duration uint64, hash types.Hash256) *HashLock {
	return &HashLock{
		BaseTx:   *NewBaseTx(TypeHashLock, network),
		Mosaic:   mosaic,
		Duration: duration,
		Hash:     hash,
	}
}

func (h *HashLock) Validate() error {
	if err := h.BaseTx.Validate(); err != nil {
		return err
	}
	if h.Hash.IsZero() {
		return required("hash")
	}
	return nil
}

// SecretLock locks funds until a proof for Secret is revealed.
type SecretLock struct {
	BaseTx

	Secret        types.Hash256           `json:"secret"`
	Mosaic        Mosaic                  `json:"mosaic"`
	Duration      uint64                  `json:"duration"`
	HashAlgorithm HashAlgorithm           `json:"hashAlgorithm"`
	Recipient     types.UnresolvedAddress `json:"recipient"`
}

// NewSecretLock creates a new SecretLock transaction
func NewSecretLock(network NetworkType, mosaic Mosaic, duration uint64, alg HashAlgorithm, secret types.Hash256, recipient types.UnresolvedAddress) *SecretLock {
	return &SecretLock{
		BaseTx:        *NewBaseTx(TypeSecretLock, network),
		Secret:        secret,
		Mosaic:        mosaic,
		Duration:      duration,
		HashAlgorithm: alg,
		Recipient:     recipient,
	}
}

func (s *SecretLock) Validate() error {
	if err := s.BaseTx.Validate(); err != nil {
		return err
	}
	if _, err := HashAlgorithmFromRaw(uint8(s.HashAlgorithm)); err != nil {
		return err
	}
	if s.Recipient.IsZero() {
		return required("recipient")
	}
	return nil
}

// SecretProof reveals the proof unlocking a SecretLock.
type SecretProof struct {
	BaseTx

	Secret        types.Hash256           `json:"secret"`
	HashAlgorithm HashAlgorithm           `json:"hashAlgorithm"`
	Recipient     types.UnresolvedAddress `json:"recipient"`
	Proof         []byte                  `json:"proof"`
}

// NewSecretProof creates a new SecretProof transaction
func NewSecretProof(network NetworkType, alg HashAlgorithm, secret types.Hash256, recipient types.UnresolvedAddress, proof []byte) *SecretProof {
	return &SecretProof{
		BaseTx:        *NewBaseTx(TypeSecretProof, network),
		Secret:        secret,
		HashAlgorithm: alg,
		Recipient:     recipient,
		Proof:         proof,
	}
}

// Validate checks the proof size and that the proof hashes to the secret
func (s *SecretProof) Validate() error {
	if err := s.BaseTx.Validate(); err != nil {
		return err
	}
	if len(s.Proof) == 0 {
		return required("proof")
	}
	if err := checkCount("proof size", len(s.Proof), math.MaxUint16); err != nil {
		return err
	}
	secret, err := ComputeSecret(s.HashAlgorithm, s.Proof)
	if err != nil {
		return err
	}
	if secret != s.Secret {
		return fmt.Errorf("%w: %s proof does not hash to secret", ErrInvalidProof, s.HashAlgorithm)
	}
	return nil
}

// ComputeSecret hashes proof with alg. 20-byte digests are right-padded with zeros.
func ComputeSecret(alg HashAlgorithm, proof []byte) (types.Hash256, error) {
	var out types.Hash256
	switch alg {
	case HashSha3_256:
		out = sha3.Sum256(proof)
	case HashKeccak_256:
		h := sha3.NewLegacyKeccak256()
		h.Write(proof)
		copy(out[:], h.Sum(nil))
	case HashHash_160:
		inner := sha256.Sum256(proof)
		h := ripemd160.New()
		h.Write(inner[:])
		copy(out[:], h.Sum(nil))
	case HashHash_256:
		inner := sha256.Sum256(proof)
		out = sha256.Sum256(inner[:])
	default:
		return out, types.UnknownEnum("HashAlgorithm", uint64(alg))
	}
	return out, nil
}
