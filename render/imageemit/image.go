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

// Package imageemit is the PNG-encoder collaborator spec.md §1
// describes as external: it decodes raw pixel data and encodes it as a
// PNG data: URI. The <image>/<mask> nodes are built by package render,
// not here. Unlike a live-DOM
// renderer, this backend has no blob-URL store to hand the browser, so
// it always embeds image data as a base64 data: URI; ForceDataSchema is
// kept on the signature for API fidelity with spec.md §6 and because a
// future streaming writer could use it to choose an external file
// instead.
package imageemit

import (
	"bytes"
	"encoding/base64"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// Kind enumerates the three supported pixel layouts. Bitmap-backed
// (off-screen-canvas) images are not representable here and must be
// rejected by the caller before EncodePNG is reached.
type Kind int

const (
	Gray1BPP Kind = 1
	RGB24BPP Kind = 2
	RGBA32BPP Kind = 3
)

// PixelData is the raw image payload resolved from an object store.
type PixelData struct {
	Width, Height int
	Kind          Kind
	Data          []byte
}

// ToImage decodes PixelData into a standard library image.Image,
// expanding 1bpp-packed rows and building the per-kind color model.
func (p PixelData) ToImage() (goimage.Image, error) {
	switch p.Kind {
	case Gray1BPP:
		img := goimage.NewGray(goimage.Rect(0, 0, p.Width, p.Height))
		stride := (p.Width + 7) / 8
		for y := 0; y < p.Height; y++ {
			row := p.Data[y*stride:]
			for x := 0; x < p.Width; x++ {
				byteIdx := x / 8
				if byteIdx >= len(row) {
					break
				}
				bit := (row[byteIdx] >> (7 - uint(x%8))) & 1
				v := uint8(0)
				if bit != 0 {
					v = 255
				}
				img.SetGray(x, y, color.Gray{Y: v})
			}
		}
		return img, nil
	case RGB24BPP:
		img := goimage.NewRGBA(goimage.Rect(0, 0, p.Width, p.Height))
		stride := p.Width * 3
		for y := 0; y < p.Height; y++ {
			row := p.Data[y*stride:]
			for x := 0; x < p.Width; x++ {
				i := x * 3
				if i+2 >= len(row) {
					break
				}
				img.SetRGBA(x, y, color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: 255})
			}
		}
		return img, nil
	case RGBA32BPP:
		img := &goimage.RGBA{
			Pix:    p.Data,
			Stride: p.Width * 4,
			Rect:   goimage.Rect(0, 0, p.Width, p.Height),
		}
		return img, nil
	default:
		return nil, fmt.Errorf("imageemit: unsupported pixel kind %d", p.Kind)
	}
}

// EncodePNG encodes the pixel data as a PNG and returns a data: URI
// href suitable for an <image> element. When isMask is true, the image
// is first reduced to an 8-bit grayscale raster (mask luminance),
// mirroring how paintImageMaskXObject uses the resulting href purely as
// mask alpha, not as color.
//
// ForceDataSchema has no effect in this backend (see package doc) but
// is kept so callers matching spec.md §6's encode_png signature compile
// unchanged.
func EncodePNG(p PixelData, forceDataSchema bool, isMask bool) (string, error) {
	img, err := p.ToImage()
	if err != nil {
		return "", err
	}

	if isMask {
		gray := goimage.NewGray(img.Bounds())
		draw.Draw(gray, gray.Bounds(), img, goimage.Point{}, draw.Src)
		img = gray
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "data:image/png;base64," + encoded, nil
}
