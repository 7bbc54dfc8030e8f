package tx

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// MaxDivisibility is the largest number of decimal places a mosaic may have.
const MaxDivisibility = 6

// MosaicDefinition creates a mosaic. A zero Duration means the mosaic never expires.
type MosaicDefinition struct {
	BaseTx

	ID           types.MosaicID `json:"id"`
	Duration     uint64         `json:"duration"`
	Nonce        uint32         `json:"nonce"`
	Flags        MosaicFlags    `json:"flags"`
	Divisibility uint8          `json:"divisibility"`
}

// NewMosaicDefinition creates a new MosaicDefinition transaction, deriving the id from owner and nonce.
func NewMosaicDefinition(network NetworkType, owner types.Key, nonce uint32, flags MosaicFlags, divisibility uint8, duration uint64) *MosaicDefinition {
	return &MosaicDefinition{
		BaseTx:       *NewBaseTx(TypeMosaicDefinition, network),
		ID:           MosaicIDFromNonce(nonce, owner),
		Duration:     duration,
		Nonce:        nonce,
		Flags:        flags,
		Divisibility: divisibility,
	}
}

func (m *MosaicDefinition) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	if types.UnresolvedMosaicID(m.ID).IsAlias() {
		return fmt.Errorf("%w: mosaic id %s has the namespace bit set", ErrInvalidMosaicID, m.ID)
	}
	if err := m.Flags.Check(); err != nil {
		return err
	}
	if m.Divisibility > MaxDivisibility {
		return fmt.Errorf("%w: %d, max %d", ErrInvalidDivisibility, m.Divisibility, MaxDivisibility)
	}
	return nil
}

// MosaicSupplyChange mints or burns units of a mosaic.
type MosaicSupplyChange struct {
	BaseTx

	MosaicID types.UnresolvedMosaicID `json:"mosaicId"`
	Delta    uint64                   `json:"delta"`
	Action   MosaicSupplyChangeAction `json:"action"`
}

// NewMosaicSupplyChange creates a new MosaicSupplyChange transaction
func NewMosaicSupplyChange(network NetworkType, mosaicID types.UnresolvedMosaicID, action MosaicSupplyChangeAction, delta uint64) *MosaicSupplyChange {
	return &MosaicSupplyChange{
		BaseTx:   *NewBaseTx(TypeMosaicSupplyChange, network),
		MosaicID: mosaicID,
		Delta:    delta,
		Action:   action,
	}
}

func (m *MosaicSupplyChange) Validate() error {
	if err := m.BaseTx.Validate(); err != nil {
		return err
	}
	_, err := MosaicSupplyChangeActionFromRaw(uint8(m.Action))
	return err
}
