package crypto

import (
	"crypto/rand"
	"errors"
	"io"
)

// ErrRandomGeneration is returned when the system CSPRNG fails.
var ErrRandomGeneration = errors.New("failed to generate random bytes")

// RandomBytes returns n bytes from crypto/rand. Non-positive n yields nil.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSeed returns a fresh private key seed. Close it when done.
func RandomSeed() (*SecretKey, error) {
	seed, err := RandomBytes(SeedSize)
	if err != nil {
		return nil, err
	}
	return NewSecretKey(seed), nil
}
