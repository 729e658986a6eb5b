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

package icc

import (
	"errors"
	"testing"
	"time"

	"seehuhn.de/go/vcgt"
)

func TestVideoCardGammaRoundTrip(t *testing.T) {
	p := &Profile{
		Version:      Version4_3_0,
		Class:        DisplayDeviceProfile,
		ColorSpace:   RGBSpace,
		PCS:          PCSXYZSpace,
		CreationDate: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
	tab := vcgt.Identity(3, 256)
	tab.Reserved = 0x01020304
	err := p.SetVideoCardGamma(tab)
	if err != nil {
		t.Fatal(err)
	}

	data, err := p.Encode()
	if err != nil {
		t.Fatal(err)
	}
	q, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if q.CheckSum != CheckSumValid {
		t.Errorf("checksum is %s", q.CheckSum)
	}

	got, err := q.VideoCardGamma()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(tab) {
		t.Error("vcgt table changed during round trip")
	}
}

func TestVideoCardGammaMissing(t *testing.T) {
	p := &Profile{}
	_, err := p.VideoCardGamma()
	if !errors.Is(err, ErrMissingTag) {
		t.Errorf("got error %v, want ErrMissingTag", err)
	}

	err = p.SetVideoCardGamma(vcgt.Identity(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.TagData[VideoCardGamma]; !ok {
		t.Fatal("tag not stored")
	}

	err = p.SetVideoCardGamma(nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.VideoCardGamma()
	if !errors.Is(err, ErrMissingTag) {
		t.Errorf("after removal: got error %v, want ErrMissingTag", err)
	}
}

func TestVideoCardGammaInvalid(t *testing.T) {
	valid, err := vcgt.Identity(3, 4).Encode()
	if err != nil {
		t.Fatal(err)
	}

	formula := append([]byte(nil), valid...)
	formula[11] = 1

	wrongType := append([]byte(nil), valid...)
	copy(wrongType, "curv")

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"too short", valid[:17], vcgt.ErrTooShort},
		{"formula", formula, vcgt.ErrUnsupportedFormat},
		{"truncated", valid[:len(valid)-2], vcgt.ErrTruncatedSamples},
		{"wrong type", wrongType, errUnexpectedType},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Profile{TagData: map[TagType][]byte{VideoCardGamma: c.data}}
			_, err := p.VideoCardGamma()
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}
