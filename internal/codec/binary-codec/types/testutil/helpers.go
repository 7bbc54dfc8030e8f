package testutil

import (
	"encoding/hex"
	"strings"
	"testing"
)

// MustDecodeHex decodes s, ignoring spaces, and fails the test on error.
func MustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("failed to decode hex %q: %v", s, err)
	}
	return b
}

// Repeat returns n copies of b.
func Repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
