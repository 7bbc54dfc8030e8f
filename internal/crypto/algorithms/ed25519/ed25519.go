// Package ed25519 signs transactions with the standard SHA-512 Ed25519 scheme.
package ed25519

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
)

// ErrKeyPairClosed is returned when signing with an erased key pair.
var ErrKeyPairClosed = errors.New("key pair is closed")

// ED25519SignatureProvider implements crypto.SignatureProvider.
type ED25519SignatureProvider struct{}

func NewED25519Provider() *ED25519SignatureProvider {
	return &ED25519SignatureProvider{}
}

// KeyPairFromSeed derives a key pair. The seed is copied, so the caller may close it.
func (p *ED25519SignatureProvider) KeyPairFromSeed(seed *crypto.SecretKey) (crypto.KeyPair, error) {
	return NewKeyPair(seed.Data())
}

func (p *ED25519SignatureProvider) Verify(publicKey types.Key, message []byte, signature types.Signature) bool {
	return ed25519.Verify(publicKey[:], message, signature[:])
}

// KeyPair holds an expanded private key.
type KeyPair struct {
	private *crypto.SecretKey
	public  types.Key
}

// NewKeyPair derives a key pair from a 32 byte seed.
func NewKeyPair(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes, want %d", crypto.ErrInvalidPrivateKey, len(seed), ed25519.SeedSize)
	}
	private := ed25519.NewKeyFromSeed(seed)
	kp := &KeyPair{private: crypto.NewSecretKey(private)}
	copy(kp.public[:], private.Public().(ed25519.PublicKey))
	return kp, nil
}

func (k *KeyPair) PublicKey() types.Key {
	return k.public
}

func (k *KeyPair) Sign(message []byte) (types.Signature, error) {
	private := k.private.Data()
	if private == nil {
		return types.Signature{}, ErrKeyPairClosed
	}
	var sig types.Signature
	copy(sig[:], ed25519.Sign(private, message))
	return sig, nil
}

func (k *KeyPair) Close() {
	k.private.Close()
}
