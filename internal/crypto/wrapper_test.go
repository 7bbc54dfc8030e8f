package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
	"github.com/nemtech/nem2-e2e-tests/internal/crypto/algorithms/ed25519"
)

const rfc8032Seed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"

func TestKeyPairFromHex(t *testing.T) {
	w := crypto.NewCryptoWrapper(ed25519.NewED25519Provider())

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"lower hex", rfc8032Seed, false},
		{"upper hex with whitespace", " " + strings.ToUpper(rfc8032Seed) + "\n", false},
		{"not hex", "zz", true},
		{"too short", rfc8032Seed[:62], true},
		{"too long", rfc8032Seed + "00", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kp, err := w.KeyPairFromHex(tc.key)
			if tc.wantErr {
				require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
				return
			}
			require.NoError(t, err)
			defer kp.Close()
			assert.Equal(t, "D75A980182B10AB7D54BFED3C964073A0EE172F3DAA62325AF021A68F707511A", kp.PublicKey().String())
		})
	}
}

func TestGenerateKeyPairSignsAndVerifies(t *testing.T) {
	w := crypto.NewCryptoWrapper(ed25519.NewED25519Provider())
	kp, err := w.GenerateKeyPair()
	require.NoError(t, err)
	defer kp.Close()

	msg := []byte("announce")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.True(t, w.Verify(kp.PublicKey(), msg, sig))
	assert.False(t, w.Verify(kp.PublicKey(), []byte("announcE"), sig))
}
