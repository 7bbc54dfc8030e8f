package tx

import (
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

// NetworkType is the high five bits of the version byte.
type NetworkType uint8

const (
	NetworkMainNet     NetworkType = 0x68
	NetworkTestNet     NetworkType = 0x98
	NetworkMijin       NetworkType = 0x60
	NetworkMijinTest   NetworkType = 0x90
	NetworkPrivate     NetworkType = 0x78
	NetworkPrivateTest NetworkType = 0xA8
)

const (
	networkMask = 0xF8
	versionMask = 0x07

	// MaxVersion is the largest version that fits the version byte.
	MaxVersion = versionMask
)

var networkNames = map[NetworkType]string{
	NetworkMainNet:     "MainNet",
	NetworkTestNet:     "TestNet",
	NetworkMijin:       "Mijin",
	NetworkMijinTest:   "MijinTest",
	NetworkPrivate:     "Private",
	NetworkPrivateTest: "PrivateTest",
}

func (n NetworkType) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", uint8(n))
}

// IsKnown reports whether n is a defined network.
func (n NetworkType) IsKnown() bool {
	_, ok := networkNames[n]
	return ok
}

// NetworkTypeFromName looks up a network by its name, e.g. "TestNet".
func NetworkTypeFromName(name string) (NetworkType, error) {
	for n, s := range networkNames {
		if s == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: network %q", types.ErrUnknownEnumValue, name)
}

// MarshalText encodes the network by name.
func (n NetworkType) MarshalText() ([]byte, error) {
	if !n.IsKnown() {
		return nil, types.UnknownEnum("NetworkType", uint64(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText accepts a network name.
func (n *NetworkType) UnmarshalText(text []byte) error {
	v, err := NetworkTypeFromName(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// PackVersion combines network and version into the wire byte.
func PackVersion(network NetworkType, version uint8) (byte, error) {
	if !network.IsKnown() {
		return 0, types.UnknownEnum("NetworkType", uint64(network))
	}
	if version > MaxVersion {
		return 0, fmt.Errorf("%w: version %d, max %d", ErrInvalidVersion, version, MaxVersion)
	}
	return byte(network) | version, nil
}

// UnpackVersion splits the wire byte into network and version.
func UnpackVersion(b byte) (NetworkType, uint8, error) {
	network := NetworkType(b & networkMask)
	if !network.IsKnown() {
		return 0, 0, types.UnknownEnum("NetworkType", uint64(network))
	}
	return network, b & versionMask, nil
}
