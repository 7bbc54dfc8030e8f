package binarycodec

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// signedRange returns the end of the bytes covered by the signature.
// Aggregates stop before their cosignatures; every other type runs to the end.
func signedRange(payload []byte) (int, error) {
	if len(payload) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrPayloadTooShort, len(payload), HeaderSize)
	}
	t := tx.Type(binary.LittleEndian.Uint16(payload[typeOffset:]))
	if !t.IsAggregate() {
		return len(payload), nil
	}
	sizeOffset := HeaderSize + types.Hash256Size
	if len(payload) < HeaderSize+aggregateHeadSize {
		return 0, fmt.Errorf("%w: aggregate header truncated", ErrPayloadTooShort)
	}
	end := HeaderSize + aggregateHeadSize + int(binary.LittleEndian.Uint32(payload[sizeOffset:]))
	if end > len(payload) {
		return 0, fmt.Errorf("%w: aggregate payload runs past end", ErrPayloadTooShort)
	}
	return end, nil
}

// SigningBytes returns the message a signer signs: the generation hash
// followed by everything after the signer field.
func SigningBytes(payload []byte, generationHash types.Hash256) ([]byte, error) {
	end, err := signedRange(payload)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, types.Hash256Size+end-bodyOffset)
	out = append(out, generationHash[:]...)
	return append(out, payload[bodyOffset:end]...), nil
}

// TransactionHash computes the entity hash of a serialized top-level transaction.
func TransactionHash(payload []byte, generationHash types.Hash256) (types.Hash256, error) {
	end, err := signedRange(payload)
	if err != nil {
		return types.Hash256{}, err
	}
	h := sha3.New256()
	h.Write(payload[:types.SignatureSize/2])
	h.Write(payload[signerOffset:bodyOffset])
	h.Write(generationHash[:])
	h.Write(payload[bodyOffset:end])

	var out types.Hash256
	copy(out[:], h.Sum(nil))
	return out, nil
}

// MerkleRoot folds hashes pairwise with SHA3-256, duplicating the last
// node of odd levels. No hashes yield the zero hash.
func MerkleRoot(hashes []types.Hash256) types.Hash256 {
	if len(hashes) == 0 {
		return types.Hash256{}
	}
	level := append([]types.Hash256(nil), hashes...)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := level[:0:0]
		for i := 0; i < len(level); i += 2 {
			h := sha3.New256()
			h.Write(level[i][:])
			h.Write(level[i+1][:])
			var node types.Hash256
			copy(node[:], h.Sum(nil))
			next = append(next, node)
		}
		level = next
	}
	return level[0]
}

// TransactionsHash computes the aggregate transactions hash for txs.
func (b *BinarySerialization) TransactionsHash(txs []tx.Transaction) (types.Hash256, error) {
	hashes := make([]types.Hash256, 0, len(txs))
	for i, t := range txs {
		payload, err := b.SerializeEmbedded(t)
		if err != nil {
			return types.Hash256{}, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		hashes = append(hashes, sha3.Sum256(payload))
	}
	return MerkleRoot(hashes), nil
}
