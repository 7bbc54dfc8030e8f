// Package serdes implements the little-endian stream parser and serializer
// that every catbuffer field codec reads from and writes to.
package serdes

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec/types/interfaces"
)

var (
	// ErrUnexpectedEndOfStream is returned when a read needs more bytes than remain.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
	// ErrNegativeLength is returned when a read is requested with a negative length.
	ErrNegativeLength = errors.New("negative read length")
)

// BinaryParser reads little-endian fields from an in-memory buffer.
type BinaryParser struct {
	data   []byte
	offset int
}

// NewBinaryParser returns a parser positioned at the start of data.
// The parser does not copy data; callers must not modify it while parsing.
func NewBinaryParser(data []byte) *BinaryParser {
	return &BinaryParser{data: data}
}

// ReadByte reads a single byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if p.offset >= len(p.data) {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrUnexpectedEndOfStream, p.offset)
	}
	b := p.data[p.offset]
	p.offset++
	return b, nil
}

// ReadBytes reads exactly n bytes and returns a copy of them.
// A zero-length read returns nil.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > p.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEndOfStream, n, p.offset, p.Remaining())
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	copy(out, p.data[p.offset:p.offset+n])
	p.offset += n
	return out, nil
}

// ReadUint16 reads a little-endian uint16.
func (p *BinaryParser) ReadUint16() (uint16, error) {
	b, err := p.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (p *BinaryParser) ReadUint32() (uint32, error) {
	b, err := p.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64.
func (p *BinaryParser) ReadUint64() (uint64, error) {
	b, err := p.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// HasMore reports whether unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.offset < len(p.data)
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.offset
}

// Offset returns the number of bytes consumed so far.
func (p *BinaryParser) Offset() int {
	return p.offset
}

// Sub carves the next n bytes into an independent parser and advances past them.
func (p *BinaryParser) Sub(n int) (interfaces.BinaryParser, error) {
	b, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewBinaryParser(b), nil
}

var _ interfaces.BinaryParser = (*BinaryParser)(nil)

// next returns a view of the next n bytes and advances past them.
func (p *BinaryParser) next(n int) ([]byte, error) {
	if n > p.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEndOfStream, n, p.offset, p.Remaining())
	}
	b := p.data[p.offset : p.offset+n]
	p.offset += n
	return b, nil
}
