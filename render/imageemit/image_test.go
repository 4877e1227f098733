// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
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

package imageemit

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePNGRGBA(t *testing.T) {
	p := PixelData{
		Width: 2, Height: 1, Kind: RGBA32BPP,
		Data: []byte{255, 0, 0, 255, 0, 255, 0, 255},
	}
	url, err := EncodePNG(p, true, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestEncodePNGMaskReducesToGray(t *testing.T) {
	p := PixelData{
		Width: 1, Height: 1, Kind: Gray1BPP,
		Data: []byte{0x80},
	}
	url, err := EncodePNG(p, false, true)
	require.NoError(t, err)
	require.Contains(t, url, "data:image/png;base64,")

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.IsType(t, &image.Gray{}, img)
}

func TestToImageUnsupportedKind(t *testing.T) {
	p := PixelData{Width: 1, Height: 1, Kind: 99}
	_, err := p.ToImage()
	require.Error(t, err)
}
