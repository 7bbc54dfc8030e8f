package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

func TestNewFromTypeCoversAllTypes(t *testing.T) {
	for _, typ := range AllTypes {
		t.Run(typ.String(), func(t *testing.T) {
			model, err := NewFromType(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, model.TxType())
		})
	}

	_, err := NewFromType(Type(0x1234))
	require.ErrorIs(t, err, ErrUnknownTransactionType)
}

func TestJSONRoundTrip(t *testing.T) {
	signer := types.Key{0x11, 0x22}
	sig := types.Signature{0x33}

	transfer := NewTransfer(NetworkTestNet, testRecipient(),
		[]Mosaic{NewMosaic(0x2CF403E85507F39E, 1000000)}, NewPlainMessage("hello"))
	transfer.WithSigner(signer)
	transfer.WithFee(100, 12345)
	transfer.Signature = &sig

	inner := NewAccountLink(NetworkTestNet, types.Key{0x44}, LinkLink)
	inner.WithSigner(signer)
	aggregate := NewAggregateBonded(NetworkTestNet, types.Hash256{0x55}, []Transaction{inner},
		[]Cosignature{{Signer: types.Key{0x66}, Signature: types.Signature{0x77}}})

	tests := []struct {
		name string
		tx   Transaction
	}{
		{"transfer", transfer},
		{"operation restriction", NewAccountOperationRestriction(NetworkMijin, RestrictionFlagTransactionType|RestrictionFlagBlock,
			[]Type{TypeTransfer}, []Type{TypeHashLock})},
		{"namespace metadata", NewNamespaceMetadata(NetworkPrivate, NewMetadataEntry(signer, 9, []byte{1, 2}, 0), 0x85BBEA6CC462B244)},
		{"aggregate", aggregate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := ToJSON(tc.tx)
			require.NoError(t, err)

			back, err := FromJSON(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.tx, back)
		})
	}
}

func TestFromJSONUnknownType(t *testing.T) {
	_, err := FromJSON([]byte(`{"type":"Payment"}`))
	require.ErrorIs(t, err, ErrUnknownTransactionType)

	_, err = FromJSON([]byte(`not json`))
	require.Error(t, err)
}
