package tx

import (
	"errors"
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// Common errors
var (
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidNetwork         = errors.New("invalid network type")
	ErrInvalidVersion         = errors.New("invalid transaction version")
	ErrInvalidFlags           = errors.New("invalid flags")
	ErrInvalidNamespaceName   = errors.New("invalid namespace name")
	ErrInvalidDivisibility    = errors.New("invalid divisibility")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidMosaicID        = errors.New("invalid mosaic id")
	ErrInvalidProof           = errors.New("invalid secret proof")
	ErrDuplicateEntry         = errors.New("duplicate entry")
)

// DefaultVersion is the version stamped by every New* constructor.
const DefaultVersion uint8 = 1

// Transaction is the interface that all transaction types must implement
type Transaction interface {
	// TxType returns the transaction type
	TxType() Type

	// GetCommon returns the common transaction fields
	GetCommon() *Common

	// Validate checks if the transaction is valid
	Validate() error
}

// Common contains the header fields shared by every transaction.
// Signature and Signer are nil when absent. Embedded transactions
// only use Type, NetworkType, Version and Signer.
type Common struct {
	Type        Type             `json:"type"`
	NetworkType NetworkType      `json:"network"`
	Version     uint8            `json:"version"`
	MaxFee      uint64           `json:"maxFee,omitempty"`
	Deadline    uint64           `json:"deadline,omitempty"`
	Signature   *types.Signature `json:"signature,omitempty"`
	Signer      *types.Key       `json:"signer,omitempty"`
}

// Validate validates the common fields
func (c *Common) Validate() error {
	if !c.Type.IsKnown() {
		return fmt.Errorf("%w: 0x%04X", ErrInvalidTransactionType, uint16(c.Type))
	}
	if !c.NetworkType.IsKnown() {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidNetwork, uint8(c.NetworkType))
	}
	if c.Version > MaxVersion {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, c.Version)
	}
	return nil
}

// BaseTx carries Common and the trivial Transaction methods.
// Kind-specific structs embed it.
type BaseTx struct {
	Common
}

// TxType returns the transaction type
func (b *BaseTx) TxType() Type {
	return b.Common.Type
}

// GetCommon returns the common transaction fields
func (b *BaseTx) GetCommon() *Common {
	return &b.Common
}

// Validate validates the base transaction
func (b *BaseTx) Validate() error {
	return b.Common.Validate()
}

// NewBaseTx creates a new BaseTx with the default version
func NewBaseTx(txType Type, network NetworkType) *BaseTx {
	return &BaseTx{
		Common: Common{
			Type:        txType,
			NetworkType: network,
			Version:     DefaultVersion,
		},
	}
}

// WithSigner sets the signer public key.
func (b *BaseTx) WithSigner(signer types.Key) {
	b.Signer = &signer
}

// WithFee sets the maximum fee and deadline.
func (b *BaseTx) WithFee(maxFee, deadline uint64) {
	b.MaxFee = maxFee
	b.Deadline = deadline
}

func required(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
}

func checkCount(field string, n, max int) error {
	if n > max {
		return types.Overflow(field, n, max)
	}
	return nil
}
