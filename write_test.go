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
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// quotaWriter accepts at most n bytes.
type quotaWriter struct {
	n int
}

var errQuota = errors.New("quota exceeded")

func (w *quotaWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errQuota
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteLayout(t *testing.T) {
	tab := &Table{Reserved: 0x11223344}
	tab.Resize(2, 2)
	red, _ := tab.Channel(0)
	green, _ := tab.Channel(1)
	copy(red, []uint16{0x0102, 0x0304})
	copy(green, []uint16{0x0506, 0x0708})

	buf := &bytes.Buffer{}
	err := tab.Write(NewStreamWriter(buf))
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		'v', 'c', 'g', 't',
		0x11, 0x22, 0x33, 0x44,
		0, 0, 0, 0,
		0, 2,
		0, 2,
		0, 2,
		1, 2, 3, 4, 5, 6, 7, 8,
	}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("encoded data differs (-want +got):\n%s", d)
	}
}

func TestWriteFailure(t *testing.T) {
	tab := Identity(3, 256)
	size := tab.Size()

	for _, quota := range []int{0, 3, 4, 11, 12, 17, headerSize, headerSize + 1, size - 2} {
		err := tab.Write(NewStreamWriter(&quotaWriter{n: quota}))
		var streamErr *StreamError
		if !errors.As(err, &streamErr) {
			t.Fatalf("quota %d: got error %v, want StreamError", quota, err)
		}
		if streamErr.Op != "write" {
			t.Errorf("quota %d: Op = %q", quota, streamErr.Op)
		}
		if !errors.Is(err, errQuota) {
			t.Errorf("quota %d: underlying error lost: %v", quota, err)
		}
	}

	err := tab.Write(NewStreamWriter(&quotaWriter{n: size}))
	if err != nil {
		t.Errorf("exact quota: %v", err)
	}
}

// shortWriter claims to write fewer samples than requested.
type shortWriter struct {
	*StreamWriter
}

func (w shortWriter) WriteUint16s(src []uint16) (int, error) {
	n, err := w.StreamWriter.WriteUint16s(src[:len(src)-1])
	return n, err
}

func TestWriteShortCount(t *testing.T) {
	tab := Identity(1, 4)
	err := tab.Write(shortWriter{NewStreamWriter(io.Discard)})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("got error %v, want io.ErrShortWrite", err)
	}
}

func TestWriteNoStream(t *testing.T) {
	tab := &Table{}
	if err := tab.Write(nil); !errors.Is(err, ErrNoStream) {
		t.Errorf("got error %v, want ErrNoStream", err)
	}
}

func TestStreamBulk(t *testing.T) {
	// more values than fit into one bulk transfer
	in := make([]uint16, 3*bulkSize/2+7)
	for i := range in {
		in[i] = uint16(i * 31)
	}

	buf := &bytes.Buffer{}
	n, err := NewStreamWriter(buf).WriteUint16s(in)
	if err != nil || n != len(in) {
		t.Fatalf("wrote %d of %d values: %v", n, len(in), err)
	}

	out := make([]uint16, len(in)+1)
	n, err = NewStreamReader(buf).ReadUint16s(out)
	if n != len(in) {
		t.Errorf("read %d values, want %d", n, len(in))
	}
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got error %v, want EOF", err)
	}
	if d := cmp.Diff(in, out[:n]); d != "" {
		t.Errorf("values differ (-want +got):\n%s", d)
	}
}
