package ed25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemtech/nem2-e2e-tests/internal/crypto"
)

// RFC 8032 section 7.1, test 1.
const (
	testSeed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testPublicKey = "D75A980182B10AB7D54BFED3C964073A0EE172F3DAA62325AF021A68F707511A"
	testSignature = "E5564300C360AC729086E2CC806E828A84877F1EB8E5D974D873E065224901555FB8821590A33BACC61E39701CF9B46BD25BF5F0595BBE24655141438E7A100B"
)

func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	seed, err := hex.DecodeString(testSeed)
	require.NoError(t, err)
	kp, err := NewKeyPair(seed)
	require.NoError(t, err)
	return kp
}

func TestKeyPairVector(t *testing.T) {
	kp := testKeyPair(t)
	assert.Equal(t, testPublicKey, kp.PublicKey().String())

	sig, err := kp.Sign(nil)
	require.NoError(t, err)
	assert.Equal(t, testSignature, sig.String())

	p := NewED25519Provider()
	assert.True(t, p.Verify(kp.PublicKey(), nil, sig))

	sig[0] ^= 0x01
	assert.False(t, p.Verify(kp.PublicKey(), nil, sig))
}

func TestNewKeyPairRejectsBadSeed(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := NewKeyPair(make([]byte, n))
		require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey, "seed length %d", n)
	}
}

func TestKeyPairClose(t *testing.T) {
	kp := testKeyPair(t)
	kp.Close()

	_, err := kp.Sign([]byte("late"))
	require.ErrorIs(t, err, ErrKeyPairClosed)
	assert.Equal(t, testPublicKey, kp.PublicKey().String())
}

func TestProviderKeyPairFromSeed(t *testing.T) {
	raw, err := hex.DecodeString(testSeed)
	require.NoError(t, err)
	seed := crypto.NewSecretKey(raw)

	kp, err := NewED25519Provider().KeyPairFromSeed(seed)
	require.NoError(t, err)
	seed.Close()

	sig, err := kp.Sign(nil)
	require.NoError(t, err)
	assert.Equal(t, testSignature, sig.String())
}
