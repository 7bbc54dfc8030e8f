package binarycodec

import (
	"fmt"
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// Header sizes in bytes.
const (
	// HeaderSize is signature, signer, version byte, type, max fee and deadline.
	HeaderSize = types.SignatureSize + types.KeySize + 1 + 2 + 8 + 8
	// EmbeddedHeaderSize is signer, version byte and type.
	EmbeddedHeaderSize = types.KeySize + 1 + 2

	signerOffset = types.SignatureSize
	bodyOffset   = types.SignatureSize + types.KeySize
	typeOffset   = bodyOffset + 1

	mosaicSize = 16
)

// TransactionSerializer encodes and decodes the body of one transaction type.
// BodySize validates everything SerializeBody relies on, so SerializeBody
// is only called on a model that fits its wire widths.
type TransactionSerializer interface {
	TransactionType() tx.Type
	BodySize(t tx.Transaction) (int, error)
	SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error
	ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error)
}

// model asserts that t is the concrete model a serializer expects.
func model[T tx.Transaction](t tx.Transaction, want tx.Type) (T, error) {
	v, ok := t.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s serializer cannot encode %T", ErrTransactionModelMismatch, want, t)
	}
	return v, nil
}

func checkWidth(field string, n, max int) error {
	if n > max {
		return types.Overflow(field, n, max)
	}
	return nil
}

func checkUint8(field string, n int) error  { return checkWidth(field, n, math.MaxUint8) }
func checkUint16(field string, n int) error { return checkWidth(field, n, math.MaxUint16) }

func writeMosaic(w interfaces.BinarySerializer, m tx.Mosaic) {
	w.WriteUint64(uint64(m.ID))
	w.WriteUint64(m.Amount)
}

func readMosaic(r interfaces.BinaryParser) (tx.Mosaic, error) {
	id, err := r.ReadUint64()
	if err != nil {
		return tx.Mosaic{}, fmt.Errorf("mosaic id: %w", err)
	}
	amount, err := r.ReadUint64()
	if err != nil {
		return tx.Mosaic{}, fmt.Errorf("mosaic amount: %w", err)
	}
	return tx.NewMosaic(types.UnresolvedMosaicID(id), amount), nil
}

// readList reads n items with read, returning nil for n == 0.
func readList[T any](n int, field string, read func() (T, error)) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := read()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
