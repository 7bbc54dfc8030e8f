package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// mosaicDefinitionSerializer: id u64 duration u64 nonce u32 flags u8 divisibility u8
type mosaicDefinitionSerializer struct{}

func (mosaicDefinitionSerializer) TransactionType() tx.Type { return tx.TypeMosaicDefinition }

func (mosaicDefinitionSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.MosaicDefinition](t, tx.TypeMosaicDefinition)
	if err != nil {
		return 0, err
	}
	if err := m.Flags.Check(); err != nil {
		return 0, err
	}
	return 8 + 8 + 4 + 1 + 1, nil
}

func (mosaicDefinitionSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicDefinition](t, tx.TypeMosaicDefinition)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.ID))
	w.WriteUint64(m.Duration)
	w.WriteUint32(m.Nonce)
	_ = w.WriteByte(uint8(m.Flags))
	return w.WriteByte(m.Divisibility)
}

func (mosaicDefinitionSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	id, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("mosaic id: %w", err)
	}
	duration, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	nonce, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	rawFlags, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	flags, err := tx.MosaicFlagsFromRaw(rawFlags)
	if err != nil {
		return nil, err
	}
	divisibility, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("divisibility: %w", err)
	}
	return &tx.MosaicDefinition{
		BaseTx:       *tx.NewBaseTx(tx.TypeMosaicDefinition, network),
		ID:           types.MosaicID(id),
		Duration:     duration,
		Nonce:        nonce,
		Flags:        flags,
		Divisibility: divisibility,
	}, nil
}

// mosaicSupplyChangeSerializer: mosaicId u64 delta u64 action u8
type mosaicSupplyChangeSerializer struct{}

func (mosaicSupplyChangeSerializer) TransactionType() tx.Type { return tx.TypeMosaicSupplyChange }

func (mosaicSupplyChangeSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.MosaicSupplyChange](t, tx.TypeMosaicSupplyChange)
	if err != nil {
		return 0, err
	}
	if _, err := tx.MosaicSupplyChangeActionFromRaw(uint8(m.Action)); err != nil {
		return 0, err
	}
	return 8 + 8 + 1, nil
}

func (mosaicSupplyChangeSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicSupplyChange](t, tx.TypeMosaicSupplyChange)
	if err != nil {
		return err
	}
	w.WriteUint64(uint64(m.MosaicID))
	w.WriteUint64(m.Delta)
	return w.WriteByte(uint8(m.Action))
}

func (mosaicSupplyChangeSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	id, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("mosaic id: %w", err)
	}
	delta, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("delta: %w", err)
	}
	raw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("action: %w", err)
	}
	action, err := tx.MosaicSupplyChangeActionFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return tx.NewMosaicSupplyChange(network, types.UnresolvedMosaicID(id), action, delta), nil
}
