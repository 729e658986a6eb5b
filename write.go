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
	"io"
)

// Encode converts the table to binary tag data.
func (t *Table) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(t.Size())
	err := t.Write(NewStreamWriter(buf))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the table and writes it to w.
//
// An empty table is written as a header with zero channels and zero
// entries, followed by no samples.
func (t *Table) Write(w Writer) error {
	if w == nil {
		return ErrNoStream
	}

	err := w.WriteUint32(t.Type())
	if err != nil {
		return writeError("type signature", err)
	}
	err = w.WriteUint32(t.Reserved)
	if err != nil {
		return writeError("reserved field", err)
	}
	err = w.WriteUint32(gammaTableFormat)
	if err != nil {
		return writeError("table format", err)
	}
	err = w.WriteUint16(t.channels)
	if err != nil {
		return writeError("channel count", err)
	}
	err = w.WriteUint16(t.entries)
	if err != nil {
		return writeError("entry count", err)
	}
	err = w.WriteUint16(entrySize)
	if err != nil {
		return writeError("entry size", err)
	}

	if len(t.data) > 0 {
		n, err := w.WriteUint16s(t.data)
		if err == nil && n != len(t.data) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return writeError("samples", err)
		}
	}
	return nil
}
