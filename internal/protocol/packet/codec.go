package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize is size u32 followed by type u32, both little-endian.
	// The size counts the header itself.
	HeaderSize = 8

	// DefaultMaxPacketSize bounds packets when no limit is configured.
	DefaultMaxPacketSize = 16 * 1024 * 1024

	entrySizeField = 4
)

var (
	// ErrPacketTooLarge is returned when a packet exceeds the configured limit.
	ErrPacketTooLarge = errors.New("packet too large")
	// ErrInvalidHeader is returned when the size field is smaller than the header.
	ErrInvalidHeader = errors.New("invalid packet header")
	// ErrTruncatedPacket is returned when a buffer ends before the data it announces.
	ErrTruncatedPacket = errors.New("truncated packet")
	// ErrUnexpectedPacketType is returned when a packet is not of the requested type.
	ErrUnexpectedPacketType = errors.New("unexpected packet type")
)

// Header is a parsed packet header.
type Header struct {
	// Size is the total packet size including the header.
	Size uint32
	Type Type
}

// PayloadSize returns the number of bytes following the header.
func (h Header) PayloadSize() int {
	return int(h.Size) - HeaderSize
}

// EncodeHeader writes h into buf, which must hold at least HeaderSize bytes.
func EncodeHeader(buf []byte, h Header) error {
	if len(buf) < HeaderSize {
		return fmt.Errorf("buffer too small: need %d, got %d", HeaderSize, len(buf))
	}
	if h.Size < HeaderSize {
		return fmt.Errorf("%w: size %d", ErrInvalidHeader, h.Size)
	}
	binary.LittleEndian.PutUint32(buf[0:4], h.Size)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.Type))
	return nil
}

// DecodeHeader parses the first HeaderSize bytes of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrTruncatedPacket
	}
	h := Header{
		Size: binary.LittleEndian.Uint32(buf[0:4]),
		Type: Type(binary.LittleEndian.Uint32(buf[4:8])),
	}
	if h.Size < HeaderSize {
		return Header{}, fmt.Errorf("%w: size %d", ErrInvalidHeader, h.Size)
	}
	return h, nil
}

// Codec reads and writes packets no larger than its limit.
type Codec struct {
	maxSize uint32
}

// NewCodec returns a codec limited to maxSize bytes per packet.
// A zero limit means DefaultMaxPacketSize.
func NewCodec(maxSize uint32) *Codec {
	if maxSize == 0 {
		maxSize = DefaultMaxPacketSize
	}
	return &Codec{maxSize: maxSize}
}

// MaxSize returns the packet size limit.
func (c *Codec) MaxSize() uint32 {
	return c.maxSize
}

func (c *Codec) checkSize(size uint64) error {
	if size > uint64(c.maxSize) {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrPacketTooLarge, size, c.maxSize)
	}
	return nil
}

// Encode returns the framed packet for payload.
func (c *Codec) Encode(t Type, payload []byte) ([]byte, error) {
	size := uint64(HeaderSize) + uint64(len(payload))
	if err := c.checkSize(size); err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := EncodeHeader(buf, Header{Size: uint32(size), Type: t}); err != nil {
		return nil, err
	}
	copy(buf[HeaderSize:], payload)
	return buf, nil
}

// Decode parses one complete packet held in buf. Trailing bytes are an error.
func (c *Codec) Decode(buf []byte) (Header, []byte, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return Header{}, nil, err
	}
	if err := c.checkSize(uint64(h.Size)); err != nil {
		return Header{}, nil, err
	}
	if len(buf) != int(h.Size) {
		return Header{}, nil, fmt.Errorf("%w: header announces %d bytes, have %d", ErrTruncatedPacket, h.Size, len(buf))
	}
	return h, buf[HeaderSize:], nil
}

// WritePacket frames payload and writes it to w in one call.
func (c *Codec) WritePacket(w io.Writer, t Type, payload []byte) error {
	buf, err := c.Encode(t, payload)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadPacket reads one packet from r. The size is checked before the payload is allocated.
func (c *Codec) ReadPacket(r io.Reader) (Header, []byte, error) {
	var headerBuf [HeaderSize]byte
	if _, err := io.ReadFull(r, headerBuf[:]); err != nil {
		return Header{}, nil, fmt.Errorf("failed to read header: %w", err)
	}
	h, err := DecodeHeader(headerBuf[:])
	if err != nil {
		return Header{}, nil, err
	}
	if err := c.checkSize(uint64(h.Size)); err != nil {
		return Header{}, nil, err
	}

	payload := make([]byte, h.PayloadSize())
	if len(payload) > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Header{}, nil, fmt.Errorf("failed to read payload: %w", err)
		}
	}
	return h, payload, nil
}

// EncodeTransactions builds a push transactions payload: each transaction is
// preceded by a u32 size that includes the size field itself.
func EncodeTransactions(payloads [][]byte) ([]byte, error) {
	total := 0
	for i, p := range payloads {
		if uint64(len(p))+entrySizeField > math.MaxUint32 {
			return nil, fmt.Errorf("%w: transaction %d is %d bytes", ErrPacketTooLarge, i, len(p))
		}
		total += entrySizeField + len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range payloads {
		out = binary.LittleEndian.AppendUint32(out, uint32(entrySizeField+len(p)))
		out = append(out, p...)
	}
	return out, nil
}

// DecodeTransactions splits a push transactions payload. The returned slices alias data.
func DecodeTransactions(data []byte) ([][]byte, error) {
	var out [][]byte
	for off := 0; off < len(data); {
		if len(data)-off < entrySizeField {
			return nil, fmt.Errorf("%w: transaction %d size field", ErrTruncatedPacket, len(out))
		}
		size := int(binary.LittleEndian.Uint32(data[off:]))
		if size < entrySizeField {
			return nil, fmt.Errorf("%w: transaction %d size %d", ErrInvalidHeader, len(out), size)
		}
		if size > len(data)-off {
			return nil, fmt.Errorf("%w: transaction %d needs %d bytes, have %d", ErrTruncatedPacket, len(out), size, len(data)-off)
		}
		out = append(out, data[off+entrySizeField:off+size])
		off += size
	}
	return out, nil
}

// PushTransactions frames signed transaction payloads as one push transactions packet.
func (c *Codec) PushTransactions(payloads ...[]byte) ([]byte, error) {
	body, err := EncodeTransactions(payloads)
	if err != nil {
		return nil, err
	}
	return c.Encode(TypePushTransactions, body)
}

// Transactions decodes a complete push transactions packet.
func (c *Codec) Transactions(buf []byte) ([][]byte, error) {
	h, body, err := c.Decode(buf)
	if err != nil {
		return nil, err
	}
	if h.Type != TypePushTransactions && h.Type != TypePushPartialTransactions {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedPacketType, h.Type)
	}
	return DecodeTransactions(body)
}
