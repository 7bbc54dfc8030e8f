package tx

import "github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"

// MosaicFlags are the properties of a mosaic definition.
type MosaicFlags uint8

// Mosaic definition flags
const (
	MosaicFlagNone MosaicFlags = 0x00

	// MosaicFlagSupplyMutable allows the owner to change supply
	MosaicFlagSupplyMutable MosaicFlags = 0x01

	// MosaicFlagTransferable allows transfers between non-owner accounts
	MosaicFlagTransferable MosaicFlags = 0x02

	// MosaicFlagRestrictable allows mosaic restrictions
	MosaicFlagRestrictable MosaicFlags = 0x04

	// MosaicFlagsMask is the set of all known mosaic flags
	MosaicFlagsMask = MosaicFlagSupplyMutable | MosaicFlagTransferable | MosaicFlagRestrictable
)

// Has reports whether every bit of f is set.
func (m MosaicFlags) Has(f MosaicFlags) bool { return m&f == f }

// Check rejects bits outside MosaicFlagsMask.
func (m MosaicFlags) Check() error {
	if unknown := m &^ MosaicFlagsMask; unknown != 0 {
		return types.UnknownFlags("MosaicFlags", uint64(m), uint64(unknown))
	}
	return nil
}

// MosaicFlagsFromRaw decodes a flags byte, rejecting unknown bits.
func MosaicFlagsFromRaw(raw uint8) (MosaicFlags, error) {
	f := MosaicFlags(raw)
	if err := f.Check(); err != nil {
		return 0, err
	}
	return f, nil
}

// AccountRestrictionFlags select the target and direction of an account restriction.
type AccountRestrictionFlags uint16

// Account restriction flags
const (
	RestrictionFlagAddress         AccountRestrictionFlags = 0x0001
	RestrictionFlagMosaicID        AccountRestrictionFlags = 0x0002
	RestrictionFlagTransactionType AccountRestrictionFlags = 0x0004
	RestrictionFlagOutgoing        AccountRestrictionFlags = 0x4000
	RestrictionFlagBlock           AccountRestrictionFlags = 0x8000

	restrictionTargetMask = RestrictionFlagAddress | RestrictionFlagMosaicID | RestrictionFlagTransactionType

	// AccountRestrictionFlagsMask is the set of all known account restriction flags
	AccountRestrictionFlagsMask = restrictionTargetMask | RestrictionFlagOutgoing | RestrictionFlagBlock
)

// Has reports whether every bit of f is set.
func (a AccountRestrictionFlags) Has(f AccountRestrictionFlags) bool { return a&f == f }

// Target returns only the target bits (address, mosaic id or transaction type).
func (a AccountRestrictionFlags) Target() AccountRestrictionFlags { return a & restrictionTargetMask }

// Check rejects bits outside AccountRestrictionFlagsMask.
func (a AccountRestrictionFlags) Check() error {
	if unknown := a &^ AccountRestrictionFlagsMask; unknown != 0 {
		return types.UnknownFlags("AccountRestrictionFlags", uint64(a), uint64(unknown))
	}
	return nil
}

// AccountRestrictionFlagsFromRaw decodes a flags word, rejecting unknown bits.
func AccountRestrictionFlagsFromRaw(raw uint16) (AccountRestrictionFlags, error) {
	f := AccountRestrictionFlags(raw)
	if err := f.Check(); err != nil {
		return 0, err
	}
	return f, nil
}
