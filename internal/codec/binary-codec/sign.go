package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

//go:generate mockgen -destination=mocks/mock_signer.go -package=mocks . Signer

// Signer produces signatures for one key pair.
type Signer interface {
	PublicKey() types.Key
	Sign(message []byte) (types.Signature, error)
}

// Verifier checks a signature against a public key.
type Verifier interface {
	Verify(publicKey types.Key, message []byte, signature types.Signature) bool
}

// SignedTransaction is a signed payload ready to announce.
type SignedTransaction struct {
	Payload []byte
	Hash    types.Hash256
	Type    tx.Type
	Signer  types.Key
	Network tx.NetworkType
}

// Sign serializes t with signer's key and signature in place. The model is not modified.
func (b *BinarySerialization) Sign(t tx.Transaction, signer Signer, generationHash types.Hash256) (*SignedTransaction, error) {
	payload, err := b.Serialize(t)
	if err != nil {
		return nil, err
	}
	pub := signer.PublicKey()
	copy(payload[signerOffset:bodyOffset], pub[:])

	message, err := SigningBytes(payload, generationHash)
	if err != nil {
		return nil, err
	}
	signature, err := signer.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", t.TxType(), err)
	}
	copy(payload[:signerOffset], signature[:])

	hash, err := TransactionHash(payload, generationHash)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Payload: payload,
		Hash:    hash,
		Type:    t.TxType(),
		Signer:  pub,
		Network: t.GetCommon().NetworkType,
	}, nil
}

// Cosign signs an aggregate hash.
func Cosign(hash types.Hash256, signer Signer) (tx.Cosignature, error) {
	signature, err := signer.Sign(hash[:])
	if err != nil {
		return tx.Cosignature{}, fmt.Errorf("cosign: %w", err)
	}
	return tx.Cosignature{Signer: signer.PublicKey(), Signature: signature}, nil
}

// VerifySignature checks the signature in payload against its signer field.
func VerifySignature(payload []byte, generationHash types.Hash256, v Verifier) (bool, error) {
	message, err := SigningBytes(payload, generationHash)
	if err != nil {
		return false, err
	}
	var signer types.Key
	var signature types.Signature
	copy(signature[:], payload[:signerOffset])
	copy(signer[:], payload[signerOffset:bodyOffset])
	return v.Verify(signer, message, signature), nil
}

// VerifyCosignatures checks every cosignature of an aggregate against hash.
func VerifyCosignatures(a *tx.Aggregate, hash types.Hash256, v Verifier) bool {
	for _, c := range a.Cosignatures {
		if !v.Verify(c.Signer, hash[:], c.Signature) {
			return false
		}
	}
	return true
}
