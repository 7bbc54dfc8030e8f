// Package interfaces defines the BinarySerializer interface for binary codec serialization operations.
//
//revive:disable:var-naming
package interfaces

// BinarySerializer is an interface that defines the methods for a binary serializer.
// All multi-byte writes are little-endian.
type BinarySerializer interface {
	WriteByte(b byte) error
	WriteBytes(b []byte)
	WriteUint16(v uint16)
	WriteUint32(v uint32)
	WriteUint64(v uint64)
	WritePadding(n int)
	Len() int
	GetSink() []byte
}
