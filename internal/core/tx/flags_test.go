package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

func TestMosaicFlagsFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		raw     uint8
		want    MosaicFlags
		wantErr bool
	}{
		{"none", 0x00, MosaicFlagNone, false},
		{"supply mutable", 0x01, MosaicFlagSupplyMutable, false},
		{"all known", 0x07, MosaicFlagsMask, false},
		{"unknown bit", 0x08, 0, true},
		{"known plus unknown", 0x83, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MosaicFlagsFromRaw(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, types.ErrUnknownFlagBits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.raw, uint8(got))
		})
	}
}

func TestMosaicFlagsHas(t *testing.T) {
	f := MosaicFlagSupplyMutable | MosaicFlagRestrictable
	assert.True(t, f.Has(MosaicFlagSupplyMutable))
	assert.True(t, f.Has(MosaicFlagRestrictable))
	assert.False(t, f.Has(MosaicFlagTransferable))
}

func TestAccountRestrictionFlagsFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		raw     uint16
		target  AccountRestrictionFlags
		wantErr bool
	}{
		{"allow incoming address", 0x0001, RestrictionFlagAddress, false},
		{"block outgoing address", 0xC001, RestrictionFlagAddress, false},
		{"block mosaic", 0x8002, RestrictionFlagMosaicID, false},
		{"outgoing transaction type", 0x4004, RestrictionFlagTransactionType, false},
		{"unknown bit", 0x0008, 0, true},
		{"unknown high bit", 0x2001, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AccountRestrictionFlagsFromRaw(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, types.ErrUnknownFlagBits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, uint16(got))
			assert.Equal(t, tc.target, got.Target())
		})
	}
}

func TestEnumsFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		decode  func() error
		wantErr bool
	}{
		{"message plain", func() error { _, err := MessageTypeFromRaw(0x00); return err }, false},
		{"message delegation", func() error { _, err := MessageTypeFromRaw(0xFE); return err }, false},
		{"message unknown", func() error { _, err := MessageTypeFromRaw(0x02); return err }, true},
		{"hash algorithm hash_256", func() error { _, err := HashAlgorithmFromRaw(3); return err }, false},
		{"hash algorithm unknown", func() error { _, err := HashAlgorithmFromRaw(4); return err }, true},
		{"restriction GE", func() error { _, err := MosaicRestrictionTypeFromRaw(6); return err }, false},
		{"restriction unknown", func() error { _, err := MosaicRestrictionTypeFromRaw(7); return err }, true},
		{"alias link", func() error { _, err := AliasActionFromRaw(1); return err }, false},
		{"alias unknown", func() error { _, err := AliasActionFromRaw(2); return err }, true},
		{"link unknown", func() error { _, err := LinkActionFromRaw(9); return err }, true},
		{"supply increase", func() error { _, err := MosaicSupplyChangeActionFromRaw(1); return err }, false},
		{"supply unknown", func() error { _, err := MosaicSupplyChangeActionFromRaw(2); return err }, true},
		{"namespace child", func() error { _, err := NamespaceRegistrationTypeFromRaw(1); return err }, false},
		{"namespace unknown", func() error { _, err := NamespaceRegistrationTypeFromRaw(2); return err }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.decode()
			if tc.wantErr {
				require.ErrorIs(t, err, types.ErrUnknownEnumValue)
				return
			}
			require.NoError(t, err)
		})
	}
}
