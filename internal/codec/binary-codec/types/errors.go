//revive:disable:var-naming
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldLength is returned when a fixed-size field is given a buffer of the wrong size.
	ErrInvalidFieldLength = errors.New("invalid field length")
	// ErrUnknownEnumValue is returned when a raw value does not map to any enum variant.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrUnknownFlagBits is returned when a bitmask carries bits outside the known flag set.
	ErrUnknownFlagBits = errors.New("unknown flag bits")
	// ErrFieldOverflow is returned when a value does not fit its wire width.
	ErrFieldOverflow = errors.New("field value overflows wire width")
	// ErrInvalidHex is returned when a hex string field cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex string")
)

// UnknownEnum builds an ErrUnknownEnumValue error for the named enum.
func UnknownEnum(name string, raw uint64) error {
	return fmt.Errorf("%w: %s 0x%X", ErrUnknownEnumValue, name, raw)
}

// UnknownFlags builds an ErrUnknownFlagBits error for the named flag set.
func UnknownFlags(name string, raw, unknown uint64) error {
	return fmt.Errorf("%w: %s 0x%X (unknown bits 0x%X)", ErrUnknownFlagBits, name, raw, unknown)
}

// Overflow builds an ErrFieldOverflow error for the named field.
func Overflow(field string, value, max int) error {
	return fmt.Errorf("%w: %s is %d, max %d", ErrFieldOverflow, field, value, max)
}

func invalidLength(field string, want, got int) error {
	return fmt.Errorf("%w: %s should be %d bytes, got %d", ErrInvalidFieldLength, field, want, got)
}
