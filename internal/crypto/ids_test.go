package crypto

import (
	"testing"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types"
)

func TestPublicKeyHash(t *testing.T) {
	tests := []struct {
		name string
		key  types.Key
	}{
		{"zero key", types.Key{}},
		{"patterned key", types.Key{0xC5, 0xFB, 0x65, 0xCB, 31: 0xA0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			digest := sha3.Sum256(tc.key[:])
			h := ripemd160.New()
			h.Write(digest[:])

			got := PublicKeyHash(tc.key)
			assert.Equal(t, h.Sum(nil), got[:])
			assert.Equal(t, got, PublicKeyHash(tc.key))
		})
	}

	assert.NotEqual(t, PublicKeyHash(types.Key{0x01}), PublicKeyHash(types.Key{0x02}))
}
