package tx

import (
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// MetadataEntry holds the fields shared by the three metadata transactions.
// ValueSizeDelta is the signed change against the previously stored value.
type MetadataEntry struct {
	TargetPublicKey   types.Key `json:"targetPublicKey"`
	ScopedMetadataKey uint64    `json:"scopedMetadataKey"`
	ValueSizeDelta    int16     `json:"valueSizeDelta"`
	Value             []byte    `json:"value,omitempty"`
}

func (e *MetadataEntry) validate() error {
	if e.TargetPublicKey.IsZero() {
		return required("targetPublicKey")
	}
	return checkCount("value size", len(e.Value), math.MaxUint16)
}

// NewMetadataEntry builds an entry whose delta is computed from the previous value size.
func NewMetadataEntry(target types.Key, key uint64, value []byte, previousSize int) MetadataEntry {
	return MetadataEntry{
		TargetPublicKey:   target,
		ScopedMetadataKey: key,
		ValueSizeDelta:    int16(len(value) - previousSize),
		Value:             value,
	}
}

// AccountMetadata attaches a value to an account.
type AccountMetadata struct {
	BaseTx
	MetadataEntry
}

// NewAccountMetadata creates a new AccountMetadata transaction
func NewAccountMetadata(network NetworkType, entry MetadataEntry) *AccountMetadata {
	return &AccountMetadata{
		BaseTx:        *NewBaseTx(TypeAccountMetadata, network),
		MetadataEntry: entry,
	}
}

func (m *AccountMetadata) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	return m.MetadataEntry.validate()
}

// MosaicMetadata attaches a value to a mosaic.
type MosaicMetadata struct {
	BaseTx
	MetadataEntry

	TargetMosaicID types.UnresolvedMosaicID `json:"targetMosaicId"`
}

// NewMosaicMetadata creates a new MosaicMetadata transaction
func NewMosaicMetadata(network NetworkType, entry MetadataEntry, mosaicID types.UnresolvedMosaicID) *MosaicMetadata {
	return &MosaicMetadata{
		BaseTx:         *NewBaseTx(TypeMosaicMetadata, network),
		MetadataEntry:  entry,
		TargetMosaicID: mosaicID,
	}
}

func (m *MosaicMetadata) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	return m.MetadataEntry.validate()
}

// NamespaceMetadata attaches a value to a namespace.
type NamespaceMetadata struct {
	BaseTx
	MetadataEntry

	TargetNamespaceID types.NamespaceID `json:"targetNamespaceId"`
}

// NewNamespaceMetadata creates a new NamespaceMetadata transaction
func NewNamespaceMetadata(network NetworkType, entry MetadataEntry, namespaceID types.NamespaceID) *NamespaceMetadata {
	return &NamespaceMetadata{
		BaseTx:            *NewBaseTx(TypeNamespaceMetadata, network),
		MetadataEntry:     entry,
		TargetNamespaceID: namespaceID,
	}
}

func (m *NamespaceMetadata) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	return m.MetadataEntry.validate()
}
