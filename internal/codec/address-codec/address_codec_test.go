package addresscodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
)

var testKey = types.Key{0xC5, 0xFB, 0x65, 0xCB, 0x90, 0x26, 0x23, 0xD9, 31: 0xA0}

func TestAddressFromPublicKey(t *testing.T) {
	tests := []struct {
		network   tx.NetworkType
		firstChar byte
	}{
		{tx.NetworkMainNet, 'N'},
		{tx.NetworkTestNet, 'T'},
		{tx.NetworkMijin, 'M'},
		{tx.NetworkMijinTest, 'S'},
	}

	for _, tc := range tests {
		t.Run(tc.network.String(), func(t *testing.T) {
			a, err := AddressFromPublicKey(testKey, tc.network)
			require.NoError(t, err)

			assert.Equal(t, byte(tc.network), a[0])
			h := crypto.PublicKeyHash(testKey)
			assert.Equal(t, h[:], a[1:21])
			assert.True(t, IsValidChecksum(a))
			assert.False(t, a.IsAlias())

			encoded := EncodeAddress(a)
			assert.Len(t, encoded, EncodedLength)
			assert.Equal(t, tc.firstChar, encoded[0])

			decoded, err := DecodeAddress(encoded)
			require.NoError(t, err)
			assert.Equal(t, a, decoded)
		})
	}

	_, err := AddressFromPublicKey(testKey, tx.NetworkType(0x10))
	require.ErrorIs(t, err, types.ErrUnknownEnumValue)
}

func TestPrettyAddress(t *testing.T) {
	a, err := AddressFromPublicKey(testKey, tx.NetworkTestNet)
	require.NoError(t, err)

	pretty := PrettyAddress(a)
	groups := strings.Split(pretty, "-")
	require.Len(t, groups, 7)
	for _, g := range groups[:6] {
		assert.Len(t, g, 6)
	}
	assert.Len(t, groups[6], 4)

	decoded, err := DecodeAddress(pretty)
	require.NoError(t, err)
	assert.Equal(t, a, decoded)

	decoded, err = DecodeAddress("  " + strings.ToLower(pretty) + "\n")
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
}

func TestDecodeAddressErrors(t *testing.T) {
	a, err := AddressFromPublicKey(testKey, tx.NetworkTestNet)
	require.NoError(t, err)
	good := EncodeAddress(a)

	tampered := a
	tampered[10] ^= 0x01

	unknownNetwork := a
	unknownNetwork[0] = 0x10

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidEncodedLength},
		{"too short", good[:39], ErrInvalidEncodedLength},
		{"too long", good + "A", ErrInvalidEncodedLength},
		{"not base32", "1" + good[1:], ErrInvalidEncoding},
		{"bad checksum", EncodeAddress(tampered), ErrInvalidChecksum},
		{"unknown network", EncodeAddress(unknownNetwork), types.ErrUnknownEnumValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAddress(tc.input)
			require.ErrorIs(t, err, tc.wantErr)
			assert.False(t, IsValidAddress(tc.input))
		})
	}
	assert.True(t, IsValidAddress(good))
}

func TestDecodeAddressForNetwork(t *testing.T) {
	a, err := AddressFromPublicKey(testKey, tx.NetworkMijinTest)
	require.NoError(t, err)

	_, err = DecodeAddressForNetwork(EncodeAddress(a), tx.NetworkMijinTest)
	require.NoError(t, err)

	_, err = DecodeAddressForNetwork(EncodeAddress(a), tx.NetworkMainNet)
	require.ErrorIs(t, err, ErrNetworkMismatch)
}

func TestAliasAddress(t *testing.T) {
	id := tx.NamespaceIDFromName("foo", 0)
	alias, err := AliasAddress(id, tx.NetworkTestNet)
	require.NoError(t, err)

	assert.Equal(t, byte(0x99), alias[0])
	assert.True(t, alias.IsAlias())
	got, ok := alias.AliasNamespaceID()
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, make([]byte, 16), alias[9:])

	_, err = AliasAddress(id, tx.NetworkType(0x01))
	require.ErrorIs(t, err, types.ErrUnknownEnumValue)
}
