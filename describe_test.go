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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	tab := &Table{}
	tab.Resize(2, 2)
	red, _ := tab.Channel(0)
	green, _ := tab.Channel(1)
	copy(red, []uint16{1, 2})
	copy(green, []uint16{3, 4})

	buf := &strings.Builder{}
	buf.WriteString("previous content\n")
	tab.Describe(buf)

	want := "previous content\n" +
		"Video Card Gamma Table: 2 channels, 2 entries\n" +
		"Channel#0\n1\n2\n\n" +
		"Channel#1\n3\n4\n\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("dump differs (-want +got):\n%s", d)
	}
}

func TestDescribeEmpty(t *testing.T) {
	buf := &strings.Builder{}
	(&Table{}).Describe(buf)
	want := "Video Card Gamma Table: 0 channels, 0 entries\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	for _, tab := range []*Table{{}, Identity(3, 256), {Reserved: 0xFFFFFFFF}} {
		report := &strings.Builder{}
		if status := tab.Validate(report); status != ValidateOK {
			t.Errorf("got status %s, want OK", status)
		}
		if report.Len() != 0 {
			t.Errorf("unexpected report %q", report.String())
		}
	}
}
