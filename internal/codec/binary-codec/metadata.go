package binarycodec

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// Metadata bodies share targetPublicKey[32] scopedMetadataKey u64, an optional
// target id u64, then valueSizeDelta i16 valueSize u16 value.

func metadataSize(e *tx.MetadataEntry, hasTarget bool) (int, error) {
	if err := checkUint16("metadata value size", len(e.Value)); err != nil {
		return 0, err
	}
	size := types.KeySize + 8 + 2 + 2 + len(e.Value)
	if hasTarget {
		size += 8
	}
	return size, nil
}

func writeMetadataHead(w interfaces.BinarySerializer, e *tx.MetadataEntry) {
	e.TargetPublicKey.Write(w)
	w.WriteUint64(e.ScopedMetadataKey)
}

func writeMetadataValue(w interfaces.BinarySerializer, e *tx.MetadataEntry) {
	w.WriteUint16(uint16(e.ValueSizeDelta))
	w.WriteUint16(uint16(len(e.Value)))
	w.WriteBytes(e.Value)
}

func readMetadataHead(r interfaces.BinaryParser) (tx.MetadataEntry, error) {
	var e tx.MetadataEntry
	var err error
	if e.TargetPublicKey, err = types.ReadKey(r); err != nil {
		return e, err
	}
	if e.ScopedMetadataKey, err = r.ReadUint64(); err != nil {
		return e, fmt.Errorf("scoped metadata key: %w", err)
	}
	return e, nil
}

func readMetadataValue(r interfaces.BinaryParser, e *tx.MetadataEntry) error {
	delta, err := r.ReadUint16()
	if err != nil {
		return fmt.Errorf("value size delta: %w", err)
	}
	size, err := r.ReadUint16()
	if err != nil {
		return fmt.Errorf("value size: %w", err)
	}
	value, err := r.ReadBytes(int(size))
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	e.ValueSizeDelta = int16(delta)
	e.Value = value
	return nil
}

type accountMetadataSerializer struct{}

func (accountMetadataSerializer) TransactionType() tx.Type { return tx.TypeAccountMetadata }

func (accountMetadataSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.AccountMetadata](t, tx.TypeAccountMetadata)
	if err != nil {
		return 0, err
	}
	return metadataSize(&m.MetadataEntry, false)
}

func (accountMetadataSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.AccountMetadata](t, tx.TypeAccountMetadata)
	if err != nil {
		return err
	}
	writeMetadataHead(w, &m.MetadataEntry)
	writeMetadataValue(w, &m.MetadataEntry)
	return nil
}

func (accountMetadataSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	e, err := readMetadataHead(r)
	if err != nil {
		return nil, err
	}
	if err := readMetadataValue(r, &e); err != nil {
		return nil, err
	}
	return tx.NewAccountMetadata(network, e), nil
}

type mosaicMetadataSerializer struct{}

func (mosaicMetadataSerializer) TransactionType() tx.Type { return tx.TypeMosaicMetadata }

func (mosaicMetadataSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.MosaicMetadata](t, tx.TypeMosaicMetadata)
	if err != nil {
		return 0, err
	}
	return metadataSize(&m.MetadataEntry, true)
}

func (mosaicMetadataSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.MosaicMetadata](t, tx.TypeMosaicMetadata)
	if err != nil {
		return err
	}
	writeMetadataHead(w, &m.MetadataEntry)
	w.WriteUint64(uint64(m.TargetMosaicID))
	writeMetadataValue(w, &m.MetadataEntry)
	return nil
}

func (mosaicMetadataSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	e, err := readMetadataHead(r)
	if err != nil {
		return nil, err
	}
	target, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("target mosaic id: %w", err)
	}
	if err := readMetadataValue(r, &e); err != nil {
		return nil, err
	}
	return tx.NewMosaicMetadata(network, e, types.UnresolvedMosaicID(target)), nil
}

type namespaceMetadataSerializer struct{}

func (namespaceMetadataSerializer) TransactionType() tx.Type { return tx.TypeNamespaceMetadata }

func (namespaceMetadataSerializer) BodySize(t tx.Transaction) (int, error) {
	m, err := model[*tx.NamespaceMetadata](t, tx.TypeNamespaceMetadata)
	if err != nil {
		return 0, err
	}
	return metadataSize(&m.MetadataEntry, true)
}

func (namespaceMetadataSerializer) SerializeBody(t tx.Transaction, w interfaces.BinarySerializer) error {
	m, err := model[*tx.NamespaceMetadata](t, tx.TypeNamespaceMetadata)
	if err != nil {
		return err
	}
	writeMetadataHead(w, &m.MetadataEntry)
	w.WriteUint64(uint64(m.TargetNamespaceID))
	writeMetadataValue(w, &m.MetadataEntry)
	return nil
}

func (namespaceMetadataSerializer) ParseBody(network tx.NetworkType, r interfaces.BinaryParser) (tx.Transaction, error) {
	e, err := readMetadataHead(r)
	if err != nil {
		return nil, err
	}
	target, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("target namespace id: %w", err)
	}
	if err := readMetadataValue(r, &e); err != nil {
		return nil, err
	}
	return tx.NewNamespaceMetadata(network, e, types.NamespaceID(target)), nil
}
