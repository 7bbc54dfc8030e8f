package tx

import (
	"math"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// Transfer sends mosaics and an optional message to a recipient.
type Transfer struct {
	BaseTx

	// Recipient may be a literal address or a namespace alias
	Recipient types.UnresolvedAddress `json:"recipient"`

	// Mosaics are serialized in ascending id order
	Mosaics []Mosaic `json:"mosaics,omitempty"`

	Message Message `json:"message"`
}

// NewTransfer creates a new Transfer transaction
func NewTransfer(network NetworkType, recipient types.UnresolvedAddress, mosaics []Mosaic, message Message) *Transfer {
	return &Transfer{
		BaseTx:    *NewBaseTx(TypeTransfer, network),
		Recipient: recipient,
		Mosaics:   mosaics,
		Message:   message,
	}
}

// Validate checks the recipient and the wire limits of the variable sections
func (t *Transfer) Validate() error {
	if err := t.BaseTx.Validate(); err != nil {
		return err
	}
	if t.Recipient.IsZero() {
		return required("recipient")
	}
	if err := checkCount("mosaics count", len(t.Mosaics), math.MaxUint8); err != nil {
		return err
	}
	if _, err := MessageTypeFromRaw(uint8(t.Message.Type)); err != nil {
		return err
	}
	return checkCount("message size", t.Message.Size(), math.MaxUint16)
}
