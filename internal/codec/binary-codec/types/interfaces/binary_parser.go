// Package interfaces defines the BinaryParser interface for binary codec parsing operations.
//
//revive:disable:var-naming
package interfaces

// BinaryParser is an interface that defines the methods for a binary parser.
// All multi-byte reads are little-endian. A read that would run past the end
// of the underlying buffer fails without consuming anything.
type BinaryParser interface {
	ReadByte() (byte, error)
	ReadBytes(n int) ([]byte, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	HasMore() bool
	Remaining() int
	Offset() int
	// Sub consumes the next n bytes and returns a parser bounded to them.
	Sub(n int) (BinaryParser, error)
}
