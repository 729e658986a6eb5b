// seehuhn.de/go/vcgt - read and write ICC video card gamma tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vcgt

import (
	"fmt"
	"io"
)

// Reader reads big-endian integers from a stream.
type Reader interface {
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)

	// ReadUint16s fills dst and returns the number of values read.
	// If fewer than len(dst) values are read, the error explains why.
	ReadUint16s(dst []uint16) (int, error)
}

// Writer writes big-endian integers to a stream.
type Writer interface {
	WriteUint16(v uint16) error
	WriteUint32(v uint32) error

	// WriteUint16s writes all of src and returns the number of values
	// written.
	WriteUint16s(src []uint16) (int, error)
}

// bulkSize is the number of bytes transferred per call to the underlying
// reader or writer in the bulk methods.
const bulkSize = 1024

// StreamReader implements [Reader] on top of an [io.Reader].
type StreamReader struct {
	r   io.Reader
	buf [bulkSize]byte
}

// NewStreamReader returns a new StreamReader which reads from r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// ReadUint16 reads a big-endian 16-bit integer.
func (s *StreamReader) ReadUint16() (uint16, error) {
	_, err := io.ReadFull(s.r, s.buf[:2])
	if err != nil {
		return 0, err
	}
	return getUint16(s.buf[:], 0), nil
}

// ReadUint32 reads a big-endian 32-bit integer.
func (s *StreamReader) ReadUint32() (uint32, error) {
	_, err := io.ReadFull(s.r, s.buf[:4])
	if err != nil {
		return 0, err
	}
	return getUint32(s.buf[:], 0), nil
}

// ReadUint16s implements the [Reader] interface.
// A trailing odd byte at the end of the stream is discarded.
func (s *StreamReader) ReadUint16s(dst []uint16) (int, error) {
	n := 0
	for n < len(dst) {
		k := min(len(dst)-n, bulkSize/2)
		m, err := io.ReadFull(s.r, s.buf[:2*k])
		for i := range m / 2 {
			dst[n+i] = getUint16(s.buf[:], 2*i)
		}
		n += m / 2
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// StreamWriter implements [Writer] on top of an [io.Writer].
type StreamWriter struct {
	w   io.Writer
	buf [bulkSize]byte
}

// NewStreamWriter returns a new StreamWriter which writes to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteUint16 writes a big-endian 16-bit integer.
func (s *StreamWriter) WriteUint16(v uint16) error {
	putUint16(s.buf[:], 0, v)
	_, err := s.w.Write(s.buf[:2])
	return err
}

// WriteUint32 writes a big-endian 32-bit integer.
func (s *StreamWriter) WriteUint32(v uint32) error {
	putUint32(s.buf[:], 0, v)
	_, err := s.w.Write(s.buf[:4])
	return err
}

// WriteUint16s implements the [Writer] interface.
func (s *StreamWriter) WriteUint16s(src []uint16) (int, error) {
	n := 0
	for n < len(src) {
		k := min(len(src)-n, bulkSize/2)
		for i, v := range src[n : n+k] {
			putUint16(s.buf[:], 2*i, v)
		}
		m, err := s.w.Write(s.buf[:2*k])
		n += m / 2
		if err != nil {
			return n, err
		}
		if m < 2*k {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// StreamError indicates that a field of a vcgt tag could not be
// transferred to or from the underlying stream.
type StreamError struct {
	Op    string // "read" or "write"
	Field string
	Err   error
}

func readError(field string, err error) error {
	return &StreamError{Op: "read", Field: field, Err: err}
}

func writeError(field string, err error) error {
	return &StreamError{Op: "write", Field: field, Err: err}
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("vcgt: cannot %s %s: %v", e.Op, e.Field, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func getUint16(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}

func getUint32(data []byte, offset int) uint32 {
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 | uint32(data[offset+2])<<8 | uint32(data[offset+3])
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}

func putUint32(data []byte, offset int, value uint32) {
	data[offset] = byte(value >> 24)
	data[offset+1] = byte(value >> 16)
	data[offset+2] = byte(value >> 8)
	data[offset+3] = byte(value)
}
