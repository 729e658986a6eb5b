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

// Package vcgt reads and writes the video card gamma table ("vcgt") tag
// found in ICC display profiles.
//
// A vcgt tag stores one lookup curve per display channel, normally red,
// green and blue.  Calibration software loads these curves into the
// hardware gamma ramp of the graphics card.  This package only stores the
// raw 16-bit samples; it does not interpret them.
//
// # Reading and Writing Tables
//
// Use [Decode] to read a table from the binary tag data, and [Table.Encode]
// to convert a table back to binary form:
//
//	tab, err := vcgt.Decode(data)
//	if err != nil {
//	    // handle error
//	}
//	red, _ := tab.Channel(0)
//
//	encoded, err := tab.Encode()
//
// For stream based I/O, [Table.Read] and [Table.Write] operate on the
// [Reader] and [Writer] interfaces.  [NewStreamReader] and [NewStreamWriter]
// provide implementations on top of the io package.
package vcgt

import (
	"errors"
	"fmt"
	"slices"
)

// Signature is the tag type signature of a video card gamma table.
const Signature uint32 = 0x76636774 // "vcgt"

const (
	// gammaTableFormat is the only vcgt sub-format supported by this package.
	// The gamma formula format (1) is rejected.
	gammaTableFormat uint32 = 0

	// entrySize is the size of a table entry in bytes.
	entrySize = 2

	// headerSize is the size of the fixed part of a vcgt tag:
	// signature, reserved, format, channels, entries, entry size.
	headerSize = 4 + 4 + 4 + 2 + 2 + 2
)

// Table is a video card gamma table.
//
// The table holds Channels() curves with EntryCount() samples each.
// The zero value is an empty table, ready to use.
//
// A Table is not safe for concurrent use.
type Table struct {
	// Reserved holds the reserved field of the tag header.  The field has no
	// meaning and is preserved verbatim between Read and Write.
	Reserved uint32

	channels uint16
	entries  uint16

	// data is channel-major: all samples of channel 0, then channel 1, ...
	// It is nil if and only if the table is empty.
	data []uint16
}

// Identity returns a table where every channel is a linear ramp from 0 to
// 65535.  If entries is 1, the single sample of each channel is 0.
func Identity(channels, entries uint16) *Table {
	t := &Table{}
	t.Resize(channels, entries)

	n := int(t.entries)
	if n < 2 {
		return t
	}
	for c := range int(t.channels) {
		curve := t.data[c*n : (c+1)*n]
		for i := range curve {
			curve[i] = uint16((uint64(i)*0xFFFF + uint64(n-1)/2) / uint64(n-1))
		}
	}
	return t
}

// Resize sets the dimensions of the table.
//
// If the dimensions are unchanged, the call has no effect and the samples
// are preserved.  If either dimension is zero, the table becomes empty.
// Otherwise a new buffer is allocated and all samples are set to zero.
func (t *Table) Resize(channels, entries uint16) {
	if channels == t.channels && entries == t.entries {
		return
	}
	if channels == 0 || entries == 0 {
		t.channels = 0
		t.entries = 0
		t.data = nil
		return
	}
	t.channels = channels
	t.entries = entries
	t.data = make([]uint16, int(channels)*int(entries))
}

// Channels returns the number of channels in the table.
func (t *Table) Channels() int {
	return int(t.channels)
}

// EntryCount returns the number of samples per channel.
func (t *Table) EntryCount() int {
	return int(t.entries)
}

// IsEmpty reports whether the table contains no samples.
func (t *Table) IsEmpty() bool {
	return len(t.data) == 0
}

// Channel returns the samples of channel i.
//
// The returned slice shares memory with the table, so that modifying the
// slice modifies the table.  The slice becomes detached from the table
// after the next call to Resize with different dimensions, or after Read.
func (t *Table) Channel(i int) ([]uint16, error) {
	if i < 0 || i >= int(t.channels) {
		return nil, fmt.Errorf("%w: channel %d, table has %d",
			ErrIndexOutOfRange, i, t.channels)
	}
	n := int(t.entries)
	return t.data[i*n : (i+1)*n : (i+1)*n], nil
}

// Type returns the tag type signature used when the table is written.
func (t *Table) Type() uint32 {
	return Signature
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		Reserved: t.Reserved,
		channels: t.channels,
		entries:  t.entries,
		data:     slices.Clone(t.data),
	}
}

// Equal reports whether the two tables have the same dimensions, samples
// and reserved field.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Reserved == other.Reserved &&
		t.channels == other.channels &&
		t.entries == other.entries &&
		slices.Equal(t.data, other.data)
}

// Size returns the number of bytes written by [Table.Write].
func (t *Table) Size() int {
	return headerSize + entrySize*len(t.data)
}

// These errors are returned (possibly wrapped) by the functions in this
// package.  Use [errors.Is] to test for them.
var (
	ErrTooShort             = errors.New("vcgt: tag data too short")
	ErrNoStream             = errors.New("vcgt: no stream")
	ErrUnsupportedFormat    = errors.New("vcgt: unsupported table format")
	ErrUnsupportedEntrySize = errors.New("vcgt: unsupported entry size")
	ErrTruncatedSamples     = errors.New("vcgt: truncated sample data")
	ErrIndexOutOfRange      = errors.New("vcgt: channel index out of range")
)
