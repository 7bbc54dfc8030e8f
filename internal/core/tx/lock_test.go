package tx

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

func TestComputeSecret(t *testing.T) {
	tests := []struct {
		alg  HashAlgorithm
		want string
	}{
		{HashSha3_256, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{HashKeccak_256, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{HashHash_160, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb000000000000000000000000"},
		{HashHash_256, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"},
	}
	for _, tc := range tests {
		t.Run(tc.alg.String(), func(t *testing.T) {
			got, err := ComputeSecret(tc.alg, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(got[:]))
		})
	}

	_, err := ComputeSecret(HashAlgorithm(9), nil)
	require.ErrorIs(t, err, types.ErrUnknownEnumValue)
}

func TestSecretProofValidate(t *testing.T) {
	recipient := types.UnresolvedAddress{0x98}
	proof := []byte("open sesame")
	secret, err := ComputeSecret(HashSha3_256, proof)
	require.NoError(t, err)

	ok := NewSecretProof(NetworkTestNet, HashSha3_256, secret, recipient, proof)
	require.NoError(t, ok.Validate())

	wrong := NewSecretProof(NetworkTestNet, HashKeccak_256, secret, recipient, proof)
	require.ErrorIs(t, wrong.Validate(), ErrInvalidProof)

	empty := NewSecretProof(NetworkTestNet, HashSha3_256, secret, recipient, nil)
	require.ErrorIs(t, empty.Validate(), ErrMissingRequiredField)
}
