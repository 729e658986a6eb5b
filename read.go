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
	"bytes"
	"fmt"
	"math"
)

// Decode decodes a video card gamma table from the binary tag data.
// The data must start with the tag type signature.
func Decode(data []byte) (*Table, error) {
	size := uint32(math.MaxUint32)
	if uint64(len(data)) < math.MaxUint32 {
		size = uint32(len(data))
	}

	t := &Table{}
	err := t.Read(size, NewStreamReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Read decodes a vcgt tag of the given size from r and stores the result
// in t.  The stream must be positioned at the start of the tag, i.e. at the
// tag type signature.  The signature itself is not checked.
//
// The size bounds the number of samples: a header which announces more
// samples than fit into size bytes is rejected with [ErrTruncatedSamples]
// before any sample memory is allocated.
//
// If an error is returned, t is left unchanged.
func (t *Table) Read(size uint32, r Reader) error {
	if size < headerSize {
		return ErrTooShort
	}
	if r == nil {
		return ErrNoStream
	}

	_, err := r.ReadUint32()
	if err != nil {
		return readError("type signature", err)
	}
	reserved, err := r.ReadUint32()
	if err != nil {
		return readError("reserved field", err)
	}
	format, err := r.ReadUint32()
	if err != nil {
		return readError("table format", err)
	}
	if format != gammaTableFormat {
		return fmt.Errorf("%w %d", ErrUnsupportedFormat, format)
	}

	channels, err := r.ReadUint16()
	if err != nil {
		return readError("channel count", err)
	}
	entries, err := r.ReadUint16()
	if err != nil {
		return readError("entry count", err)
	}
	esz, err := r.ReadUint16()
	if err != nil {
		return readError("entry size", err)
	}
	if esz != entrySize {
		return fmt.Errorf("%w (%d bytes)", ErrUnsupportedEntrySize, esz)
	}

	want := int(channels) * int(entries)
	if uint64(size) < headerSize+entrySize*uint64(want) {
		return fmt.Errorf("%w: %d samples do not fit into %d bytes",
			ErrTruncatedSamples, want, size)
	}

	res := &Table{Reserved: reserved}
	res.Resize(channels, entries)
	if want > 0 {
		n, err := r.ReadUint16s(res.data)
		if n != want {
			return fmt.Errorf("%w: got %d of %d samples (%v)",
				ErrTruncatedSamples, n, want, err)
		}
		// An error reported together with a complete read (for example
		// io.EOF right after the last sample) does not affect the table.
	}

	*t = *res
	return nil
}
