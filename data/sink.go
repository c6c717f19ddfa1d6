package data

import (
	"encoding/binary"
	"io"
)

// Sink adapts an externally supplied hash accumulator to the write
// primitives erasable types hash with. Any accumulator exposing io.Writer
// serves: hash.Hash, hash.Hash64, *maphash.Hash.
//
// Sink forwards byte-writes unmodified, so a value feeds the same bytes into
// whatever accumulator the hosting system routes through it. Multi-byte
// integers are written little-endian. Hash accumulators never fail; write
// errors are discarded.
type Sink struct {
	w   io.Writer
	buf [8]byte
}

// NewSink wraps an accumulator.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *Sink) WriteString(str string) {
	_, _ = io.WriteString(s.w, str)
}

func (s *Sink) WriteByte(b byte) error {
	s.buf[0] = b
	_, _ = s.w.Write(s.buf[:1])
	return nil
}

func (s *Sink) WriteUint64(x uint64) {
	binary.LittleEndian.PutUint64(s.buf[:], x)
	_, _ = s.w.Write(s.buf[:])
}

func (s *Sink) WriteInt64(x int64) {
	s.WriteUint64(uint64(x))
}
