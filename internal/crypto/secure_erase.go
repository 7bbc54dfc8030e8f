package crypto

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// SeedSize is the length of an ed25519 private key seed.
const SeedSize = 32

// eraseSink keeps the zeroing loop in SecureErase observable to the compiler.
var eraseSink atomic.Uint64

// SecureErase overwrites b with zeros.
// Copies made by the runtime (stack growth, swap) are not reached.
func SecureErase(b []byte) {
	if len(b) == 0 {
		return
	}
	base := unsafe.Pointer(&b[0])
	for i := range b {
		*(*byte)(unsafe.Add(base, i)) = 0
	}
	runtime.KeepAlive(b)

	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	eraseSink.Add(sum)
}

// SecretKey owns private key material and zeroes it on Close.
type SecretKey struct {
	data   []byte
	closed bool
}

// NewSecretKey takes ownership of data.
func NewSecretKey(data []byte) *SecretKey {
	return &SecretKey{data: data}
}

// NewSecretKeyWithCopy copies data, leaving the caller's slice untouched.
func NewSecretKeyWithCopy(data []byte) *SecretKey {
	return NewSecretKey(append([]byte(nil), data...))
}

// Data returns the key bytes, or nil once closed.
func (sk *SecretKey) Data() []byte {
	if sk.IsClosed() {
		return nil
	}
	return sk.data
}

// Len returns the key length, or 0 once closed.
func (sk *SecretKey) Len() int {
	return len(sk.Data())
}

// Close erases the key. Repeated calls are no-ops.
func (sk *SecretKey) Close() {
	if sk.IsClosed() {
		return
	}
	SecureErase(sk.data)
	sk.data = nil
	sk.closed = true
}

func (sk *SecretKey) IsClosed() bool {
	return sk == nil || sk.closed
}
