package binarycodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

var testGenerationHash = types.Hash256{0x57, 0xF7, 0xDA, 31: 0x05}

func pair(a, b types.Hash256) types.Hash256 {
	return sha3.Sum256(append(append([]byte(nil), a[:]...), b[:]...))
}

func TestMerkleRoot(t *testing.T) {
	a, b, c := types.Hash256{0x01}, types.Hash256{0x02}, types.Hash256{0x03}

	tests := []struct {
		name   string
		hashes []types.Hash256
		want   types.Hash256
	}{
		{"empty", nil, types.Hash256{}},
		{"single", []types.Hash256{a}, a},
		{"pair", []types.Hash256{a, b}, pair(a, b)},
		{"odd duplicates last", []types.Hash256{a, b, c}, pair(pair(a, b), pair(c, c))},
		{"four", []types.Hash256{a, b, c, a}, pair(pair(a, b), pair(c, a))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MerkleRoot(tc.hashes))
		})
	}
}

func TestMerkleRootDoesNotMutateInput(t *testing.T) {
	hashes := make([]types.Hash256, 3, 8)
	hashes[0], hashes[1], hashes[2] = types.Hash256{0x01}, types.Hash256{0x02}, types.Hash256{0x03}
	before := append([]types.Hash256(nil), hashes...)

	MerkleRoot(hashes)
	assert.Equal(t, before, hashes)
	assert.Equal(t, types.Hash256{}, hashes[:4][3])
}

func TestTransactionHash(t *testing.T) {
	codec := newTestCodec(t)
	payload, err := codec.Serialize(withEnvelope(tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkLink)))
	require.NoError(t, err)

	h := sha3.New256()
	h.Write(payload[:32])
	h.Write(payload[64:96])
	h.Write(testGenerationHash[:])
	h.Write(payload[96:])
	var want types.Hash256
	copy(want[:], h.Sum(nil))

	got, err := TransactionHash(payload, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	other, err := TransactionHash(payload, types.Hash256{0x01})
	require.NoError(t, err)
	assert.NotEqual(t, got, other)

	// the second half of the signature is not hashed
	payload[40] ^= 0xFF
	same, err := TransactionHash(payload, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, got, same)

	payload[bodyOffset+5] ^= 0xFF
	changed, err := TransactionHash(payload, testGenerationHash)
	require.NoError(t, err)
	assert.NotEqual(t, got, changed)
}

func TestAggregateHashExcludesCosignatures(t *testing.T) {
	codec := newTestCodec(t)
	agg := oneTransferAggregate()
	agg.Cosignatures = nil

	bare, err := codec.Serialize(agg)
	require.NoError(t, err)
	agg.Cosignatures = []tx.Cosignature{{Signer: testRemote, Signature: testSignature}}
	cosigned, err := codec.Serialize(agg)
	require.NoError(t, err)
	require.Greater(t, len(cosigned), len(bare))

	h1, err := TransactionHash(bare, testGenerationHash)
	require.NoError(t, err)
	h2, err := TransactionHash(cosigned, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	m1, err := SigningBytes(bare, testGenerationHash)
	require.NoError(t, err)
	m2, err := SigningBytes(cosigned, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestSigningBytes(t *testing.T) {
	codec := newTestCodec(t)
	payload, err := codec.Serialize(withEnvelope(tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkLink)))
	require.NoError(t, err)

	msg, err := SigningBytes(payload, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, testGenerationHash[:], msg[:32])
	assert.Equal(t, payload[bodyOffset:], msg[32:])
}

func TestHashRejectsShortPayload(t *testing.T) {
	codec := newTestCodec(t)
	agg, err := codec.Serialize(oneTransferAggregate())
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"partial header", make([]byte, HeaderSize-1)},
		{"aggregate without head", agg[:HeaderSize+10]},
		{"aggregate payload cut", agg[:HeaderSize+aggregateHeadSize+20]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TransactionHash(tc.payload, testGenerationHash)
			require.ErrorIs(t, err, ErrPayloadTooShort)
			_, err = SigningBytes(tc.payload, testGenerationHash)
			require.ErrorIs(t, err, ErrPayloadTooShort)
		})
	}
}

func TestTransactionsHash(t *testing.T) {
	codec := newTestCodec(t)
	agg := aggregateSamples()[0].tx.(*tx.Aggregate)

	var leaves []types.Hash256
	for _, inner := range agg.Transactions {
		payload, err := codec.SerializeEmbedded(inner)
		require.NoError(t, err)
		leaves = append(leaves, sha3.Sum256(payload))
	}

	got, err := codec.TransactionsHash(agg.Transactions)
	require.NoError(t, err)
	assert.Equal(t, MerkleRoot(leaves), got)

	empty, err := codec.TransactionsHash(nil)
	require.NoError(t, err)
	assert.Equal(t, types.Hash256{}, empty)

	_, err = codec.TransactionsHash([]tx.Transaction{tx.NewAccountLink(tx.NetworkTestNet, testRemote, tx.LinkLink)})
	require.ErrorIs(t, err, ErrMissingSigner)
}
