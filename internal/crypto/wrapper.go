package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// ErrInvalidPrivateKey is returned for private keys that are not a hex encoded seed.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// KeyPair signs with one private key.
type KeyPair interface {
	PublicKey() types.Key
	Sign(message []byte) (types.Signature, error)
	// Close erases the private key; Sign fails afterwards.
	Close()
}

// SignatureProvider implements one signature scheme.
type SignatureProvider interface {
	KeyPairFromSeed(seed *SecretKey) (KeyPair, error)
	Verify(publicKey types.Key, message []byte, signature types.Signature) bool
}

// CryptoWrapper adds key parsing and generation on top of a SignatureProvider.
type CryptoWrapper struct {
	provider SignatureProvider
}

func NewCryptoWrapper(provider SignatureProvider) *CryptoWrapper {
	return &CryptoWrapper{provider: provider}
}

// KeyPairFromHex parses a 64 character hex seed.
func (w *CryptoWrapper) KeyPairFromHex(privateKey string) (KeyPair, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(privateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	seed := NewSecretKey(raw)
	defer seed.Close()
	if seed.Len() != SeedSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidPrivateKey, seed.Len(), SeedSize)
	}
	return w.provider.KeyPairFromSeed(seed)
}

// GenerateKeyPair creates a key pair from a random seed.
func (w *CryptoWrapper) GenerateKeyPair() (KeyPair, error) {
	seed, err := RandomSeed()
	if err != nil {
		return nil, err
	}
	defer seed.Close()
	return w.provider.KeyPairFromSeed(seed)
}

func (w *CryptoWrapper) Verify(publicKey types.Key, message []byte, signature types.Signature) bool {
	return w.provider.Verify(publicKey, message, signature)
}
