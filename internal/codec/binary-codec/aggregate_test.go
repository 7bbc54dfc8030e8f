package binarycodec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/serdes"
	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

func TestPaddingSize(t *testing.T) {
	for size := 0; size <= 64; size++ {
		p := PaddingSize(size, EmbeddedAlignment)
		assert.True(t, p >= 0 && p < EmbeddedAlignment, "size %d", size)
		assert.Zero(t, (size+p)%EmbeddedAlignment, "size %d", size)
	}
	assert.Equal(t, 3, PaddingSize(85, 8))
	assert.Equal(t, 0, PaddingSize(88, 8))
	assert.Equal(t, 0, PaddingSize(5, 0))
}

// oneTransferAggregate has a single embedded transfer of 85 bytes and one cosignature.
func oneTransferAggregate() *tx.Aggregate {
	inner := signedBy(tx.NewTransfer(tx.NetworkTestNet, testRecipient,
		[]tx.Mosaic{tx.NewMosaic(0x2CF403E85507F39E, 1)}, tx.NewPlainMessage("hello")), testSigner)
	return tx.NewAggregateComplete(tx.NetworkTestNet, testHash, []tx.Transaction{inner},
		[]tx.Cosignature{{Signer: testRemote, Signature: testSignature}})
}

func TestAggregateLayout(t *testing.T) {
	codec := newTestCodec(t)
	agg := oneTransferAggregate()

	embedded, err := codec.EmbeddedSize(agg.Transactions[0])
	require.NoError(t, err)
	assert.Equal(t, 85, embedded)

	size, err := codec.Size(agg)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize+40+88+96, size)

	payload, err := codec.Serialize(agg)
	require.NoError(t, err)
	require.Len(t, payload, size)

	assert.Equal(t, testHash[:], payload[HeaderSize:HeaderSize+32])
	assert.Equal(t, uint32(88), binary.LittleEndian.Uint32(payload[HeaderSize+32:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(payload[HeaderSize+36:]))
	assert.Equal(t, make([]byte, 3), payload[HeaderSize+40+85:HeaderSize+40+88])
	assert.Equal(t, testRemote[:], payload[HeaderSize+40+88:HeaderSize+40+88+32])
}

func TestAggregateDecodeErrors(t *testing.T) {
	codec := newTestCodec(t)
	good, err := codec.Serialize(oneTransferAggregate())
	require.NoError(t, err)

	corrupt := func(f func(p []byte) []byte) []byte {
		return f(append([]byte(nil), good...))
	}
	innerStart := HeaderSize + aggregateHeadSize

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{"nonzero padding", corrupt(func(p []byte) []byte {
			p[innerStart+86] = 0x01
			return p
		}), ErrNonZeroPadding},
		{"nonzero reserved", corrupt(func(p []byte) []byte {
			p[HeaderSize+36] = 0x01
			return p
		}), ErrNonZeroPadding},
		{"payload size past end", corrupt(func(p []byte) []byte {
			binary.LittleEndian.PutUint32(p[HeaderSize+32:], 10000)
			return p
		}), serdes.ErrUnexpectedEndOfStream},
		{"partial cosignature", corrupt(func(p []byte) []byte {
			return p[:len(p)-10]
		}), serdes.ErrUnexpectedEndOfStream},
		{"embedded body runs past payload", corrupt(func(p []byte) []byte {
			binary.LittleEndian.PutUint32(p[HeaderSize+32:], 40)
			return p
		}), serdes.ErrUnexpectedEndOfStream},
		{"malformed embedded transaction", corrupt(func(p []byte) []byte {
			// embedded message type byte
			p[innerStart+EmbeddedHeaderSize+25+1+2+16] = 0x7F
			return p
		}), types.ErrUnknownEnumValue},
		{"nested aggregate", corrupt(func(p []byte) []byte {
			binary.LittleEndian.PutUint16(p[innerStart+types.KeySize+1:], uint16(tx.TypeAggregateBonded))
			return p
		}), ErrUnsupportedTransactionType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model, err := codec.Deserialize(tc.payload)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, model)
		})
	}
}

func TestAggregateCosignaturesOnlyAfterPayload(t *testing.T) {
	codec := newTestCodec(t)
	agg := oneTransferAggregate()
	agg.Cosignatures = append(agg.Cosignatures, tx.Cosignature{Signer: testSigner, Signature: types.Signature{0x01}})

	payload, err := codec.Serialize(agg)
	require.NoError(t, err)

	back, err := codec.Deserialize(payload)
	require.NoError(t, err)
	decoded := back.(*tx.Aggregate)
	require.Len(t, decoded.Transactions, 1)
	assert.Equal(t, agg.Cosignatures, decoded.Cosignatures)
}

func TestAggregateRejectsInvalidInner(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name    string
		inner   tx.Transaction
		wantErr error
	}{
		{"missing signer", tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkLink), ErrMissingSigner},
		{"nested aggregate", signedBy(tx.NewAggregateBonded(tx.NetworkTestNet, testHash, nil, nil), testSigner), ErrUnsupportedTransactionType},
		{"nil transaction", nil, tx.ErrMissingRequiredField},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg := tx.NewAggregateComplete(tx.NetworkTestNet, testHash, []tx.Transaction{tc.inner}, nil)
			payload, err := codec.Serialize(agg)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, payload)

			_, err = codec.Size(agg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAggregateTypeMismatch(t *testing.T) {
	codec := newTestCodec(t)
	s, err := codec.Resolve(tx.TypeAggregateComplete)
	require.NoError(t, err)

	_, err = s.BodySize(tx.NewAggregateBonded(tx.NetworkTestNet, testHash, nil, nil))
	require.ErrorIs(t, err, ErrTransactionModelMismatch)
}

func TestEmptyAggregate(t *testing.T) {
	codec := newTestCodec(t)
	agg := tx.NewAggregateBonded(tx.NetworkMijinTest, types.Hash256{}, nil, nil)

	payload, err := codec.Serialize(agg)
	require.NoError(t, err)
	assert.Len(t, payload, HeaderSize+aggregateHeadSize)

	back, err := codec.Deserialize(payload)
	require.NoError(t, err)
	assert.Equal(t, agg, back)
}

// twoTransferAggregate embeds transfers of 85 and 67 bytes, padded to 88 and 72.
func twoTransferAggregate() *tx.Aggregate {
	first := signedBy(tx.NewTransfer(tx.NetworkTestNet, testRecipient,
		[]tx.Mosaic{tx.NewMosaic(0x2CF403E85507F39E, 1)}, tx.NewPlainMessage("hello")), testSigner)
	second := signedBy(tx.NewTransfer(tx.NetworkTestNet, testAlias, nil, tx.NewPlainMessage("hi!")), testRemote)
	return tx.NewAggregateComplete(tx.NetworkTestNet, testHash, []tx.Transaction{first, second},
		[]tx.Cosignature{{Signer: testRemote, Signature: testSignature}})
}

func TestAggregateTwoTransfersLayout(t *testing.T) {
	codec := newTestCodec(t)
	agg := twoTransferAggregate()

	second, err := codec.EmbeddedSize(agg.Transactions[1])
	require.NoError(t, err)
	assert.Equal(t, 67, second)

	payload, err := codec.Serialize(agg)
	require.NoError(t, err)
	require.Len(t, payload, HeaderSize+40+88+72+96)
	assert.Equal(t, uint32(88+72), binary.LittleEndian.Uint32(payload[HeaderSize+32:]))

	innerStart := HeaderSize + aggregateHeadSize
	secondStart := innerStart + 88
	assert.Equal(t, make([]byte, 3), payload[innerStart+85:secondStart])
	assert.Equal(t, testRemote[:], payload[secondStart:secondStart+32])
	assert.Equal(t, make([]byte, 5), payload[secondStart+67:secondStart+72])
	assert.Equal(t, testRemote[:], payload[secondStart+72:secondStart+72+32])

	back, err := codec.Deserialize(payload)
	require.NoError(t, err)
	assert.Equal(t, agg, back)
}

func TestAggregateZeroEmbeddedSignerRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	payload, err := codec.Serialize(oneTransferAggregate())
	require.NoError(t, err)

	innerStart := HeaderSize + aggregateHeadSize
	copy(payload[innerStart:innerStart+types.KeySize], make([]byte, types.KeySize))

	back, err := codec.Deserialize(payload)
	require.NoError(t, err)
	inner := back.(*tx.Aggregate).Transactions[0]
	require.NotNil(t, inner.GetCommon().Signer)
	assert.True(t, inner.GetCommon().Signer.IsZero())

	again, err := codec.Serialize(back)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}
