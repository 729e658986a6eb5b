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
	"fmt"

	"seehuhn.de/go/vcgt"
)

// VideoCardGamma decodes the video card gamma table of the profile.
//
// If the profile has no "vcgt" tag, [ErrMissingTag] is returned.  Errors
// from the tag decoder are wrapped and can be inspected using errors.Is.
func (p *Profile) VideoCardGamma() (*vcgt.Table, error) {
	data, ok := p.TagData[VideoCardGamma]
	if !ok {
		return nil, ErrMissingTag
	}
	err := checkType("vcgt", data)
	if err != nil {
		return nil, fmt.Errorf("%s tag: %w", VideoCardGamma, err)
	}

	tab, err := vcgt.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s tag: %w", VideoCardGamma, err)
	}
	return tab, nil
}

// SetVideoCardGamma stores tab as the video card gamma table of the
// profile, replacing any existing table.  If tab is nil, the tag is
// removed.
func (p *Profile) SetVideoCardGamma(tab *vcgt.Table) error {
	if tab == nil {
		delete(p.TagData, VideoCardGamma)
		return nil
	}

	data, err := tab.Encode()
	if err != nil {
		return err
	}
	if p.TagData == nil {
		p.TagData = make(map[TagType][]byte)
	}
	p.TagData[VideoCardGamma] = data
	return nil
}
