package tx

import (
	"fmt"
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

func validateRestrictionFlags(flags, target AccountRestrictionFlags, additions, deletions int) error {
	if err := flags.Check(); err != nil {
		return err
	}
	if flags.Target() != target {
		return fmt.Errorf("%w: restriction flags 0x%04X must target 0x%04X", ErrInvalidFlags, uint16(flags), uint16(target))
	}
	if err := checkCount("additions count", additions, math.MaxUint8); err != nil {
		return err
	}
	if err := checkCount("deletions count", deletions, math.MaxUint8); err != nil {
		return err
	}
	if additions+deletions == 0 {
		return required("restriction additions or deletions")
	}
	return nil
}

// AccountAddressRestriction allows or blocks traffic with the listed addresses.
type AccountAddressRestriction struct {
	BaseTx

	Flags     AccountRestrictionFlags   `json:"restrictionFlags"`
	Additions []types.UnresolvedAddress `json:"restrictionAdditions,omitempty"`
	Deletions []types.UnresolvedAddress `json:"restrictionDeletions,omitempty"`
}

// NewAccountAddressRestriction creates a new AccountAddressRestriction transaction
func NewAccountAddressRestriction(network NetworkType, flags AccountRestrictionFlags, additions, deletions []types.UnresolvedAddress) *AccountAddressRestriction {
	return &AccountAddressRestriction{
		BaseTx:    *NewBaseTx(TypeAccountAddressRestriction, network),
		Flags:     flags,
		Additions: additions,
		Deletions: deletions,
	}
}

func (r *AccountAddressRestriction) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	return validateRestrictionFlags(r.Flags, RestrictionFlagAddress, len(r.Additions), len(r.Deletions))
}

// AccountMosaicRestriction allows or blocks incoming mosaics.
type AccountMosaicRestriction struct {
	BaseTx

	Flags     AccountRestrictionFlags    `json:"restrictionFlags"`
	Additions []types.UnresolvedMosaicID `json:"restrictionAdditions,omitempty"`
	Deletions []types.UnresolvedMosaicID `json:"restrictionDeletions,omitempty"`
}

// NewAccountMosaicRestriction creates a new AccountMosaicRestriction transaction
func NewAccountMosaicRestriction(network NetworkType, flags AccountRestrictionFlags, additions, deletions []types.UnresolvedMosaicID) *AccountMosaicRestriction {
	return &AccountMosaicRestriction{
		BaseTx:    *NewBaseTx(TypeAccountMosaicRestriction, network),
		Flags:     flags,
		Additions: additions,
		Deletions: deletions,
	}
}

func (r *AccountMosaicRestriction) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	return validateRestrictionFlags(r.Flags, RestrictionFlagMosaicID, len(r.Additions), len(r.Deletions))
}

// AccountOperationRestriction allows or blocks outgoing transaction types.
type AccountOperationRestriction struct {
	BaseTx

	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []Type                  `json:"restrictionAdditions,omitempty"`
	Deletions []Type                  `json:"restrictionDeletions,omitempty"`
}

// NewAccountOperationRestriction creates a new AccountOperationRestriction transaction
func NewAccountOperationRestriction(network NetworkType, flags AccountRestrictionFlags, additions, deletions []Type) *AccountOperationRestriction {
	return &AccountOperationRestriction{
		BaseTx:    *NewBaseTx(TypeAccountOperationRestriction, network),
		Flags:     flags,
		Additions: additions,
		Deletions: deletions,
	}
}

func (r *AccountOperationRestriction) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	return validateRestrictionFlags(r.Flags, RestrictionFlagTransactionType, len(r.Additions), len(r.Deletions))
}

// MosaicAddressRestriction sets a restriction value for one address on a mosaic.
type MosaicAddressRestriction struct {
	BaseTx

	MosaicID       types.UnresolvedMosaicID `json:"mosaicId"`
	RestrictionKey uint64                   `json:"restrictionKey"`
	PreviousValue  uint64                   `json:"previousRestrictionValue"`
	NewValue       uint64                   `json:"newRestrictionValue"`
	TargetAddress  types.UnresolvedAddress  `json:"targetAddress"`
}

// NewMosaicAddressRestriction creates a new MosaicAddressRestriction transaction
func NewMosaicAddressRestriction(network NetworkType, mosaicID types.UnresolvedMosaicID, key uint64, target types.UnresolvedAddress, previous, next uint64) *MosaicAddressRestriction {
	return &MosaicAddressRestriction{
		BaseTx:         *NewBaseTx(TypeMosaicAddressRestriction, network),
		MosaicID:       mosaicID,
		RestrictionKey: key,
		PreviousValue:  previous,
		NewValue:       next,
		TargetAddress:  target,
	}
}

func (r *MosaicAddressRestriction) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	if r.TargetAddress.IsZero() {
		return required("targetAddress")
	}
	return nil
}

// MosaicGlobalRestriction sets the network-wide restriction rule for a mosaic.
type MosaicGlobalRestriction struct {
	BaseTx

	MosaicID          types.UnresolvedMosaicID `json:"mosaicId"`
	ReferenceMosaicID types.UnresolvedMosaicID `json:"referenceMosaicId"`
	RestrictionKey    uint64                   `json:"restrictionKey"`
	PreviousValue     uint64                   `json:"previousRestrictionValue"`
	NewValue          uint64                   `json:"newRestrictionValue"`
	PreviousType      MosaicRestrictionType    `json:"previousRestrictionType"`
	NewType           MosaicRestrictionType    `json:"newRestrictionType"`
}

// NewMosaicGlobalRestriction creates a new MosaicGlobalRestriction transaction
func NewMosaicGlobalRestriction(network NetworkType, mosaicID, reference types.UnresolvedMosaicID, key uint64, previous uint64, previousType MosaicRestrictionType, next uint64, nextType MosaicRestrictionType) *MosaicGlobalRestriction {
	return &MosaicGlobalRestriction{
		BaseTx:            *NewBaseTx(TypeMosaicGlobalRestriction, network),
		MosaicID:          mosaicID,
		ReferenceMosaicID: reference,
		RestrictionKey:    key,
		PreviousValue:     previous,
		NewValue:          next,
		PreviousType:      previousType,
		NewType:           nextType,
	}
}

func (r *MosaicGlobalRestriction) Validate() error {
	if err := r.BaseTx.Validate(); err != nil {
		return err
	}
	if _, err := MosaicRestrictionTypeFromRaw(uint8(r.PreviousType)); err != nil {
		return err
	}
	_, err := MosaicRestrictionTypeFromRaw(uint8(r.NewType))
	return err
}
