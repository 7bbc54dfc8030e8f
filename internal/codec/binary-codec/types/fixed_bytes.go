//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
)

// Fixed field widths in bytes.
const (
	KeySize       = 32
	SignatureSize = 64
	Hash256Size   = 32
	AddressSize   = 25
)

// Key is a 32-byte public key.
type Key [KeySize]byte

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// Hash256 is a 32-byte hash.
type Hash256 [Hash256Size]byte

// Address is a literal 25-byte account address.
type Address [AddressSize]byte

// UnresolvedAddress is a 25-byte address that may be a namespace alias.
type UnresolvedAddress [AddressSize]byte

// KeyFromBytes copies b into a Key. b must be exactly 32 bytes.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, invalidLength("key", KeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// SignatureFromBytes copies b into a Signature. b must be exactly 64 bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, invalidLength("signature", SignatureSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// Hash256FromBytes copies b into a Hash256. b must be exactly 32 bytes.
func Hash256FromBytes(b []byte) (Hash256, error) {
	var h Hash256
	if len(b) != Hash256Size {
		return h, invalidLength("hash256", Hash256Size, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// AddressFromBytes copies b into an Address. b must be exactly 25 bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, invalidLength("address", AddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// UnresolvedAddressFromBytes copies b into an UnresolvedAddress. b must be exactly 25 bytes.
func UnresolvedAddressFromBytes(b []byte) (UnresolvedAddress, error) {
	var a UnresolvedAddress
	if len(b) != AddressSize {
		return a, invalidLength("unresolved address", AddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// KeyFromHex decodes a 64 character hex string into a Key.
func KeyFromHex(s string) (Key, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Key{}, err
	}
	return KeyFromBytes(b)
}

// SignatureFromHex decodes a 128 character hex string into a Signature.
func SignatureFromHex(s string) (Signature, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(b)
}

// Hash256FromHex decodes a 64 character hex string into a Hash256.
func Hash256FromHex(s string) (Hash256, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Hash256{}, err
	}
	return Hash256FromBytes(b)
}

// AddressFromHex decodes a 50 character hex string into an Address.
func AddressFromHex(s string) (Address, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromBytes(b)
}

// UnresolvedAddressFromHex decodes a 50 character hex string into an UnresolvedAddress.
func UnresolvedAddressFromHex(s string) (UnresolvedAddress, error) {
	b, err := decodeHex(s)
	if err != nil {
		return UnresolvedAddress{}, err
	}
	return UnresolvedAddressFromBytes(b)
}

// ReadKey reads a 32-byte key.
func ReadKey(p interfaces.BinaryParser) (Key, error) {
	b, err := p.ReadBytes(KeySize)
	if err != nil {
		return Key{}, fmt.Errorf("key: %w", err)
	}
	return KeyFromBytes(b)
}

// ReadSignature reads a 64-byte signature.
func ReadSignature(p interfaces.BinaryParser) (Signature, error) {
	b, err := p.ReadBytes(SignatureSize)
	if err != nil {
		return Signature{}, fmt.Errorf("signature: %w", err)
	}
	return SignatureFromBytes(b)
}

// ReadHash256 reads a 32-byte hash.
func ReadHash256(p interfaces.BinaryParser) (Hash256, error) {
	b, err := p.ReadBytes(Hash256Size)
	if err != nil {
		return Hash256{}, fmt.Errorf("hash256: %w", err)
	}
	return Hash256FromBytes(b)
}

// ReadAddress reads a 25-byte literal address.
func ReadAddress(p interfaces.BinaryParser) (Address, error) {
	b, err := p.ReadBytes(AddressSize)
	if err != nil {
		return Address{}, fmt.Errorf("address: %w", err)
	}
	return AddressFromBytes(b)
}

// ReadUnresolvedAddress reads a 25-byte unresolved address.
func ReadUnresolvedAddress(p interfaces.BinaryParser) (UnresolvedAddress, error) {
	b, err := p.ReadBytes(AddressSize)
	if err != nil {
		return UnresolvedAddress{}, fmt.Errorf("unresolved address: %w", err)
	}
	return UnresolvedAddressFromBytes(b)
}

// Write appends the key to s.
func (k Key) Write(s interfaces.BinarySerializer) { s.WriteBytes(k[:]) }

// Write appends the signature to s.
func (sig Signature) Write(s interfaces.BinarySerializer) { s.WriteBytes(sig[:]) }

// Write appends the hash to s.
func (h Hash256) Write(s interfaces.BinarySerializer) { s.WriteBytes(h[:]) }

// Write appends the address to s.
func (a Address) Write(s interfaces.BinarySerializer) { s.WriteBytes(a[:]) }

// Write appends the unresolved address to s.
func (a UnresolvedAddress) Write(s interfaces.BinarySerializer) { s.WriteBytes(a[:]) }

// IsZero reports whether every byte is zero.
func (k Key) IsZero() bool { return allZero(k[:]) }

// IsZero reports whether every byte is zero.
func (sig Signature) IsZero() bool { return allZero(sig[:]) }

// IsZero reports whether every byte is zero.
func (h Hash256) IsZero() bool { return allZero(h[:]) }

// IsZero reports whether every byte is zero.
func (a Address) IsZero() bool { return allZero(a[:]) }

// IsZero reports whether every byte is zero.
func (a UnresolvedAddress) IsZero() bool { return allZero(a[:]) }

// String returns the key as upper-case hex.
func (k Key) String() string { return upperHex(k[:]) }

// String returns the signature as upper-case hex.
func (sig Signature) String() string { return upperHex(sig[:]) }

// String returns the hash as upper-case hex.
func (h Hash256) String() string { return upperHex(h[:]) }

// String returns the address as upper-case hex.
func (a Address) String() string { return upperHex(a[:]) }

// String returns the unresolved address as upper-case hex.
func (a UnresolvedAddress) String() string { return upperHex(a[:]) }

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := KeyFromHex(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (sig Signature) MarshalText() ([]byte, error) { return []byte(sig.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (sig *Signature) UnmarshalText(text []byte) error {
	v, err := SignatureFromHex(string(text))
	if err != nil {
		return err
	}
	*sig = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash256) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash256) UnmarshalText(text []byte) error {
	v, err := Hash256FromHex(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	v, err := AddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a UnresolvedAddress) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *UnresolvedAddress) UnmarshalText(text []byte) error {
	v, err := UnresolvedAddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
