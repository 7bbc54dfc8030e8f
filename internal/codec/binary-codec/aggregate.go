package binarycodec

import (
	"fmt"
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/serdes"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// EmbeddedAlignment is the boundary every embedded transaction is padded to.
const EmbeddedAlignment = 8

const (
	aggregateHeadSize = types.Hash256Size + 4 + 4
	cosignatureSize   = types.KeySize + types.SignatureSize
)

// PaddingSize returns the number of zero bytes that bring size up to a multiple of alignment.
func PaddingSize(size, alignment int) int {
	if alignment <= 0 || size%alignment == 0 {
		return 0
	}
	return alignment - size%alignment
}

// aggregateSerializer: transactionsHash[32] payloadSize u32 reserved u32 embedded(padded)
// cosignatures(signer[32] signature[64])*
//
// It needs the codec itself to frame the embedded transactions.
type aggregateSerializer struct {
	txType tx.Type
	codec  *BinarySerialization
}

// NewAggregateSerializer returns the serializer for one of the two aggregate types.
func NewAggregateSerializer(t tx.Type, codec *BinarySerialization) TransactionSerializer {
	return &aggregateSerializer{txType: t, codec: codec}
}

func (s *aggregateSerializer) TransactionType() tx.Type { return s.txType }

// payloadSize returns the padded length of all embedded transactions.
func (s *aggregateSerializer) payloadSize(m *tx.Aggregate) (int, error) {
	total := 0
	for i, inner := range m.Transactions {
		if inner == nil {
			return 0, fmt.Errorf("transactions[%d]: %w", i, tx.ErrMissingRequiredField)
		}
		size, err := s.codec.EmbeddedSize(inner)
		if err != nil {
			return 0, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		total += size + PaddingSize(size, EmbeddedAlignment)
	}
	if err := checkWidth("aggregate payload size", total, math.MaxUint32); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *aggregateSerializer) aggregate(t tx.Transaction) (*tx.Aggregate, error) {
	m, err := model[*tx.Aggregate](t, s.txType)
	if err != nil {
		return nil, err
	}
	if m.Type != s.txType {
		return nil, fmt.Errorf("%w: %s serializer got %s", ErrTransactionModelMismatch, s.txType, m.Type)
	}
	return m, nil
}

func (s *aggregateSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := s.aggregate(t)
	if err != nil {
		return 0, err
	}
	payload, err := s.payloadSize(m)
	if err != nil {
		return 0, err
	}
	return aggregateHeadSize + payload + cosignatureSize*len(m.Cosignatures), nil
}

func (s *aggregateSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := s.aggregate(t)
	if err != nil {
		return err
	}
	payload, err := s.payloadSize(m)
	if err != nil {
		return err
	}

	m.TransactionsHash.Write(w)
	w.WriteUint32(uint32(payload))
	w.WriteUint32(0)
	for i, inner := range m.Transactions {
		start := w.Len()
		if err := s.codec.writeEmbedded(inner, w); err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
		w.WritePadding(PaddingSize(w.Len()-start, EmbeddedAlignment))
	}
	for _, c := range m.Cosignatures {
		c.Signer.Write(w)
		c.Signature.Write(w)
	}
	return nil
}

func (s *aggregateSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	hash, err := types.ReadHash256(r)
	if err != nil {
		return nil, err
	}
	payloadSize, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("payload size: %w", err)
	}
	reserved, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reserved: %w", err)
	}
	if reserved != 0 {
		return nil, fmt.Errorf("%w: reserved field is 0x%08X", ErrNonZeroPadding, reserved)
	}
	if int64(payloadSize) > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: payload size %d, have %d", serdes.ErrUnexpectedEndOfStream, payloadSize, r.Remaining())
	}
	sub, err := r.Sub(int(payloadSize))
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}

	var inner []tx.Transaction
	for sub.HasMore() {
		start := sub.Offset()
		t, err := s.codec.DeserializeEmbedded(sub)
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", len(inner), err)
		}
		padding, err := sub.ReadBytes(PaddingSize(sub.Offset()-start, EmbeddedAlignment))
		if err != nil {
			return nil, fmt.Errorf("transactions[%d] padding: %w", len(inner), err)
		}
		for _, b := range padding {
			if b != 0 {
				return nil, fmt.Errorf("%w: after transactions[%d]", ErrNonZeroPadding, len(inner))
			}
		}
		inner = append(inner, t)
	}

	var cosignatures []tx.Cosignature
	for r.HasMore() {
		signer, err := types.ReadKey(r)
		if err != nil {
			return nil, fmt.Errorf("cosignatures[%d]: %w", len(cosignatures), err)
		}
		signature, err := types.ReadSignature(r)
		if err != nil {
			return nil, fmt.Errorf("cosignatures[%d]: %w", len(cosignatures), err)
		}
		cosignatures = append(cosignatures, tx.Cosignature{Signer: signer, Signature: signature})
	}

	m := tx.NewAggregateComplete(network, hash, inner, cosignatures)
	m.Type = s.txType
	return m, nil
}
