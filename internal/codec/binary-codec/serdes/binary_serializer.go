package serdes

import "encoding/binary"

// BinarySerializer accumulates little-endian fields into a byte sink.
type BinarySerializer struct {
	sink []byte
}

// NewBinarySerializer returns a serializer whose sink is pre-sized for sizeHint bytes.
func NewBinarySerializer(sizeHint int) *BinarySerializer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &BinarySerializer{sink: make([]byte, 0, sizeHint)}
}

// WriteByte appends a single byte. It never fails; the error return satisfies io.ByteWriter.
func (s *BinarySerializer) WriteByte(b byte) error {
	s.sink = append(s.sink, b)
	return nil
}

// WriteBytes appends b verbatim.
func (s *BinarySerializer) WriteBytes(b []byte) {
	s.sink = append(s.sink, b...)
}

// WriteUint16 appends v as little-endian.
func (s *BinarySerializer) WriteUint16(v uint16) {
	s.sink = binary.LittleEndian.AppendUint16(s.sink, v)
}

// WriteUint32 appends v as little-endian.
func (s *BinarySerializer) WriteUint32(v uint32) {
	s.sink = binary.LittleEndian.AppendUint32(s.sink, v)
}

// WriteUint64 appends v as little-endian.
func (s *BinarySerializer) WriteUint64(v uint64) {
	s.sink = binary.LittleEndian.AppendUint64(s.sink, v)
}

// WritePadding appends n zero bytes.
func (s *BinarySerializer) WritePadding(n int) {
	for i := 0; i < n; i++ {
		s.sink = append(s.sink, 0)
	}
}

// Len returns the number of bytes written so far.
func (s *BinarySerializer) Len() int {
	return len(s.sink)
}

// GetSink returns the accumulated bytes.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}
