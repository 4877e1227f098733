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

package render

import "fmt"

// makeHexColor converts three 0..1 RGB components (as carried by
// setFillRGBColor/setStrokeRGBColor/setFillGray/setStrokeGray) to a
// "#rrggbb" string, per the naive-RGB color model of spec.md §1.
func makeHexColor(args []any) string {
	r := clamp255(argF(args, 0))
	g := clamp255(argF(args, 1))
	b := clamp255(argF(args, 2))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// cmykHexColor converts four 0..1 CMYK components to "#rrggbb" using
// the naive subtractive conversion: channel = 1 - min(1, ink+black).
func cmykHexColor(args []any) string {
	c := argF(args, 0)
	m := argF(args, 1)
	y := argF(args, 2)
	k := argF(args, 3)
	r := clamp255(1 - min1(c+k))
	g := clamp255(1 - min1(m+k))
	b := clamp255(1 - min1(y+k))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int(v*255 + 0.5)
}
