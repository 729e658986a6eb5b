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
	"strconv"
	"strings"
)

// Describe appends a textual dump of the table to buf.
//
// The dump starts with a header line.  For every channel it then contains
// a "Channel#N" line, one line per sample value, and a blank line.
func (t *Table) Describe(buf *strings.Builder) {
	fmt.Fprintf(buf, "Video Card Gamma Table: %d channels, %d entries\n",
		t.channels, t.entries)

	n := int(t.entries)
	for c := range int(t.channels) {
		fmt.Fprintf(buf, "Channel#%d\n", c)
		for _, v := range t.data[c*n : (c+1)*n] {
			buf.WriteString(strconv.Itoa(int(v)))
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
}

// ValidateStatus is the result of a tag validation.
type ValidateStatus int

// Validation results, in order of increasing severity.
const (
	ValidateOK ValidateStatus = iota
	ValidateWarning
	ValidateNonCompliant
	ValidateCritical
)

func (s ValidateStatus) String() string {
	switch s {
	case ValidateOK:
		return "OK"
	case ValidateWarning:
		return "Warning"
	case ValidateNonCompliant:
		return "Non-Compliant"
	case ValidateCritical:
		return "Critical"
	default:
		return fmt.Sprintf("ValidateStatus(%d)", int(s))
	}
}

// Validate checks the content of the table and appends any findings to
// report.
//
// No checks are implemented at the moment.  Any table, including the
// empty table, is reported as valid.
func (t *Table) Validate(report *strings.Builder) ValidateStatus {
	return ValidateOK
}
