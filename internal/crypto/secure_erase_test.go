package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureErase(t *testing.T) {
	t.Run("zeroes data", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
		SecureErase(data)
		assert.Equal(t, make([]byte, 5), data)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.NotPanics(t, func() {
			SecureErase(nil)
			SecureErase([]byte{})
		})
	})
}

func TestSecretKey(t *testing.T) {
	t.Run("close erases owned data", func(t *testing.T) {
		raw := []byte{0xAA, 0xBB, 0xCC}
		sk := NewSecretKey(raw)
		assert.Equal(t, 3, sk.Len())

		sk.Close()
		assert.Equal(t, []byte{0, 0, 0}, raw)
		assert.True(t, sk.IsClosed())
		assert.Nil(t, sk.Data())
		assert.Zero(t, sk.Len())

		assert.NotPanics(t, sk.Close)
	})

	t.Run("copy leaves caller data alone", func(t *testing.T) {
		raw := []byte{0xAA, 0xBB}
		sk := NewSecretKeyWithCopy(raw)
		sk.Close()
		assert.Equal(t, []byte{0xAA, 0xBB}, raw)
	})

	t.Run("nil key is closed", func(t *testing.T) {
		var sk *SecretKey
		assert.True(t, sk.IsClosed())
		assert.Nil(t, sk.Data())
	})
}
