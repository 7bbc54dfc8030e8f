//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// aliasBit marks an UnresolvedMosaicID that refers to a namespace.
const aliasBit = uint64(1) << 63

// MosaicID identifies a mosaic definition.
type MosaicID uint64

// NamespaceID identifies a namespace.
type NamespaceID uint64

// UnresolvedMosaicID is either a MosaicID or a NamespaceID aliasing one.
type UnresolvedMosaicID uint64

// IsAlias reports whether the id refers to a namespace rather than a mosaic.
func (id UnresolvedMosaicID) IsAlias() bool { return uint64(id)&aliasBit != 0 }

// String returns the id as 16 upper-case hex digits.
func (id MosaicID) String() string { return uint64Hex(uint64(id)) }

// String returns the id as 16 upper-case hex digits.
func (id NamespaceID) String() string { return uint64Hex(uint64(id)) }

// String returns the id as 16 upper-case hex digits.
func (id UnresolvedMosaicID) String() string { return uint64Hex(uint64(id)) }

// MarshalText implements encoding.TextMarshaler.
func (id MosaicID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *MosaicID) UnmarshalText(text []byte) error {
	v, err := ParseUint64Hex(string(text))
	if err != nil {
		return err
	}
	*id = MosaicID(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (id NamespaceID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *NamespaceID) UnmarshalText(text []byte) error {
	v, err := ParseUint64Hex(string(text))
	if err != nil {
		return err
	}
	*id = NamespaceID(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (id UnresolvedMosaicID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UnresolvedMosaicID) UnmarshalText(text []byte) error {
	v, err := ParseUint64Hex(string(text))
	if err != nil {
		return err
	}
	*id = UnresolvedMosaicID(v)
	return nil
}

// ParseUint64Hex parses a big-endian hex string of at most 16 digits.
// Short strings are left-padded with zeros, so "a" is 10.
func ParseUint64Hex(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, fmt.Errorf("%w: uint64 hex %q", ErrInvalidHex, s)
	}
	s = strings.Repeat("0", 16-len(s)) + s
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return binary.BigEndian.Uint64(b), nil
}

func uint64Hex(v uint64) string {
	return fmt.Sprintf("%016X", v)
}

// AliasNamespaceID extracts the namespace id carried by an alias address.
// ok is false when the address is a literal address.
func (a UnresolvedAddress) AliasNamespaceID() (id NamespaceID, ok bool) {
	if !a.IsAlias() {
		return 0, false
	}
	return NamespaceID(binary.LittleEndian.Uint64(a[1:9])), true
}

// IsAlias reports whether the address encodes a namespace alias.
func (a UnresolvedAddress) IsAlias() bool { return a[0]&0x01 == 0x01 }

// IsAlias reports whether the address has the alias marker set.
// A literal Address should never have it.
func (a Address) IsAlias() bool { return a[0]&0x01 == 0x01 }

// Unresolved widens a literal address.
func (a Address) Unresolved() UnresolvedAddress { return UnresolvedAddress(a) }
