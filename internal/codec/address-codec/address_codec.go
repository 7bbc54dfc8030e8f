// Package addresscodec derives account addresses from public keys and converts
// them to and from their 40 character base32 form.
package addresscodec

import (
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
)

const (
	// EncodedLength is the length of an encoded address without separators.
	EncodedLength = 40

	checksumSize   = 4
	checksumOffset = types.AddressSize - checksumSize

	prettyGroup = 6
)

var (
	ErrInvalidEncodedLength = errors.New("invalid encoded address length")
	ErrInvalidEncoding      = errors.New("invalid base32 address")
	ErrInvalidChecksum      = errors.New("invalid address checksum")
	ErrNetworkMismatch      = errors.New("address belongs to another network")
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// AddressFromPublicKey builds network | RIPEMD160(SHA3-256(pk)) | checksum.
func AddressFromPublicKey(publicKey types.Key, network tx.NetworkType) (types.Address, error) {
	if !network.IsKnown() {
		return types.Address{}, types.UnknownEnum("NetworkType", uint64(network))
	}
	var a types.Address
	a[0] = byte(network)
	h := crypto.PublicKeyHash(publicKey)
	copy(a[1:checksumOffset], h[:])
	sum := checksum(a[:checksumOffset])
	copy(a[checksumOffset:], sum[:])
	return a, nil
}

func checksum(b []byte) [checksumSize]byte {
	digest := sha3.Sum256(b)
	var out [checksumSize]byte
	copy(out[:], digest[:checksumSize])
	return out
}

// Network returns the network encoded in the first byte of a.
func Network(a types.Address) (tx.NetworkType, error) {
	n := tx.NetworkType(a[0])
	if !n.IsKnown() {
		return 0, types.UnknownEnum("NetworkType", uint64(a[0]))
	}
	return n, nil
}

// IsValidChecksum reports whether the last four bytes of a match its checksum.
func IsValidChecksum(a types.Address) bool {
	return checksum(a[:checksumOffset]) == [checksumSize]byte(a[checksumOffset:])
}

// EncodeAddress returns the 40 character base32 form of a.
func EncodeAddress(a types.Address) string {
	return encoding.EncodeToString(a[:])
}

// PrettyAddress returns the encoded address split into groups of six by hyphens.
func PrettyAddress(a types.Address) string {
	plain := EncodeAddress(a)
	var sb strings.Builder
	for i := 0; i < len(plain); i += prettyGroup {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(plain[i:min(i+prettyGroup, len(plain))])
	}
	return sb.String()
}

// DecodeAddress parses an encoded address in plain or pretty form and checks
// its network byte and checksum.
func DecodeAddress(s string) (types.Address, error) {
	plain := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if len(plain) != EncodedLength {
		return types.Address{}, fmt.Errorf("%w: %d characters, want %d", ErrInvalidEncodedLength, len(plain), EncodedLength)
	}
	raw, err := encoding.DecodeString(plain)
	if err != nil {
		return types.Address{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	a, err := types.AddressFromBytes(raw)
	if err != nil {
		return types.Address{}, err
	}
	if _, err := Network(a); err != nil {
		return types.Address{}, err
	}
	if !IsValidChecksum(a) {
		return types.Address{}, ErrInvalidChecksum
	}
	return a, nil
}

// DecodeAddressForNetwork is DecodeAddress plus a check that the address belongs to network.
func DecodeAddressForNetwork(s string, network tx.NetworkType) (types.Address, error) {
	a, err := DecodeAddress(s)
	if err != nil {
		return types.Address{}, err
	}
	if n, _ := Network(a); n != network {
		return types.Address{}, fmt.Errorf("%w: %s, want %s", ErrNetworkMismatch, n, network)
	}
	return a, nil
}

// IsValidAddress reports whether s decodes to a well formed address.
func IsValidAddress(s string) bool {
	_, err := DecodeAddress(s)
	return err == nil
}

// AliasAddress returns the unresolved address that points at a namespace:
// network byte with the low bit set, then the namespace id little-endian, then zeros.
func AliasAddress(id types.NamespaceID, network tx.NetworkType) (types.UnresolvedAddress, error) {
	if !network.IsKnown() {
		return types.UnresolvedAddress{}, types.UnknownEnum("NetworkType", uint64(network))
	}
	var a types.UnresolvedAddress
	a[0] = byte(network) | 0x01
	binary.LittleEndian.PutUint64(a[1:9], uint64(id))
	return a, nil
}
