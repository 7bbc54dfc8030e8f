package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/serdes"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// notNil rejects a nil model before any method is called on it.
func notNil(t tx.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", tx.ErrMissingRequiredField)
	}
	return nil
}

// Size returns the length of the top-level payload for t.
func (b *BinarySerialization) Size(t tx.Transaction) (int, error) {
	if err := notNil(t); err != nil {
		return 0, err
	}
	s, err := b.Resolve(t.TxType())
	if err != nil {
		return 0, err
	}
	body, err := s.BodySize(t)
	if err != nil {
		return 0, err
	}
	return HeaderSize + body, nil
}

// Serialize encodes a top-level transaction.
// A nil signature or signer is written as zeros.
func (b *BinarySerialization) Serialize(t tx.Transaction) ([]byte, error) {
	if err := notNil(t); err != nil {
		return nil, err
	}
	s, err := b.Resolve(t.TxType())
	if err != nil {
		return nil, err
	}
	c := t.GetCommon()
	versionByte, err := tx.PackVersion(c.NetworkType, c.Version)
	if err != nil {
		return nil, err
	}
	body, err := s.BodySize(t)
	if err != nil {
		return nil, err
	}

	w := serdes.NewBinarySerializer(HeaderSize + body)
	if c.Signature != nil {
		c.Signature.Write(w)
	} else {
		w.WritePadding(types.SignatureSize)
	}
	if c.Signer != nil {
		c.Signer.Write(w)
	} else {
		w.WritePadding(types.KeySize)
	}
	_ = w.WriteByte(versionByte)
	w.WriteUint16(uint16(t.TxType()))
	w.WriteUint64(c.MaxFee)
	w.WriteUint64(c.Deadline)

	if err := s.SerializeBody(t, w); err != nil {
		return nil, err
	}
	if w.Len() != HeaderSize+body {
		return nil, fmt.Errorf("%s: wrote %d bytes, expected %d", t.TxType(), w.Len(), HeaderSize+body)
	}
	return w.GetSink(), nil
}

// Deserialize decodes a top-level transaction. All-zero signature and
// signer fields come back as nil.
func (b *BinarySerialization) Deserialize(payload []byte) (tx.Transaction, error) {
	r := serdes.NewBinaryParser(payload)

	signature, err := types.ReadSignature(r)
	if err != nil {
		return nil, err
	}
	signer, err := types.ReadKey(r)
	if err != nil {
		return nil, err
	}
	network, version, txType, err := readTypeHeader(r)
	if err != nil {
		return nil, err
	}
	maxFee, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("max fee: %w", err)
	}
	deadline, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("deadline: %w", err)
	}

	s, err := b.Resolve(txType)
	if err != nil {
		return nil, err
	}
	t, err := s.ParseBody(network, r)
	if err != nil {
		return nil, fmt.Errorf("%s body: %w", txType, err)
	}
	if r.HasMore() {
		return nil, fmt.Errorf("%w: %d bytes after %s", ErrTrailingBytes, r.Remaining(), txType)
	}

	c := t.GetCommon()
	c.Type = txType
	c.NetworkType = network
	c.Version = version
	c.MaxFee = maxFee
	c.Deadline = deadline
	c.Signature = nil
	if !signature.IsZero() {
		c.Signature = &signature
	}
	c.Signer = nil
	if !signer.IsZero() {
		c.Signer = &signer
	}
	return t, nil
}

// EmbeddedSize returns the unpadded length of t as an embedded transaction.
func (b *BinarySerialization) EmbeddedSize(t tx.Transaction) (int, error) {
	if err := notNil(t); err != nil {
		return 0, err
	}
	if t.TxType().IsAggregate() {
		return 0, fmt.Errorf("%w: %s cannot be embedded", ErrUnsupportedTransactionType, t.TxType())
	}
	if t.GetCommon().Signer == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingSigner, t.TxType())
	}
	s, err := b.Resolve(t.TxType())
	if err != nil {
		return 0, err
	}
	body, err := s.BodySize(t)
	if err != nil {
		return 0, err
	}
	return EmbeddedHeaderSize + body, nil
}

// SerializeEmbedded encodes t with the embedded header and no padding.
func (b *BinarySerialization) SerializeEmbedded(t tx.Transaction) ([]byte, error) {
	size, err := b.EmbeddedSize(t)
	if err != nil {
		return nil, err
	}
	w := serdes.NewBinarySerializer(size)
	if err := b.writeEmbedded(t, w); err != nil {
		return nil, err
	}
	return w.GetSink(), nil
}

// writeEmbedded assumes EmbeddedSize has already accepted t.
func (b *BinarySerialization) writeEmbedded(t tx.Transaction, w interfaces.BinarySerializer) error {
	s, err := b.Resolve(t.TxType())
	if err != nil {
		return err
	}
	c := t.GetCommon()
	versionByte, err := tx.PackVersion(c.NetworkType, c.Version)
	if err != nil {
		return err
	}
	c.Signer.Write(w)
	_ = w.WriteByte(versionByte)
	w.WriteUint16(uint16(t.TxType()))
	return s.SerializeBody(t, w)
}

// DeserializeEmbedded decodes one embedded transaction from r, leaving r
// positioned right after its body. Padding is not consumed.
func (b *BinarySerialization) DeserializeEmbedded(r interfaces.BinaryParser) (tx.Transaction, error) {
	signer, err := types.ReadKey(r)
	if err != nil {
		return nil, err
	}
	network, version, txType, err := readTypeHeader(r)
	if err != nil {
		return nil, err
	}
	if txType.IsAggregate() {
		return nil, fmt.Errorf("%w: %s cannot be embedded", ErrUnsupportedTransactionType, txType)
	}
	s, err := b.Resolve(txType)
	if err != nil {
		return nil, err
	}
	t, err := s.ParseBody(network, r)
	if err != nil {
		return nil, fmt.Errorf("embedded %s body: %w", txType, err)
	}

	c := t.GetCommon()
	c.Type = txType
	c.NetworkType = network
	c.Version = version
	// The zero signer is a real key inside an aggregate, unlike at top level.
	c.Signer = &signer
	return t, nil
}

func readTypeHeader(r interfaces.BinaryParser) (tx.NetworkType, uint8, tx.Type, error) {
	vb, err := r.ReadByte()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("version: %w", err)
	}
	network, version, err := tx.UnpackVersion(vb)
	if err != nil {
		return 0, 0, 0, err
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("type: %w", err)
	}
	return network, version, tx.Type(rawType), nil
}
