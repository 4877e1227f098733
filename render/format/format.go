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

// Package format turns floats and matrices into short, deterministic
// SVG attribute strings (non-integers are rounded to 10 decimal
// places), so repeated rendering of the same page produces
// byte-identical output.
package format

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pdfsvg/render/matrix"
)

// Number formats v as a decimal string: an exact integer representation
// when v has no fractional part, otherwise a fixed 10-digit expansion
// with trailing zeros (and a trailing dot) trimmed.
func Number(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// Matrix renders m as an SVG transform attribute value, recognizing the
// identity/scale/rotate/translate special cases so that plain
// transforms don't pay the full matrix(...) syntax.
func Matrix(m matrix.Matrix) string {
	switch {
	case m.IsIdentity():
		return ""
	case m.E == 0 && m.F == 0 && m.B == 0 && m.C == 0:
		return "scale(" + Number(m.A) + " " + Number(m.D) + ")"
	case m.A == m.D && m.B == -m.C && m.E == 0 && m.F == 0:
		angle := math.Acos(clamp(m.A)) * 180 / math.Pi
		if m.B < 0 {
			angle = -angle
		}
		return "rotate(" + Number(angle) + ")"
	case m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1:
		return "translate(" + Number(m.E) + " " + Number(m.F) + ")"
	default:
		return "matrix(" + Number(m.A) + " " + Number(m.B) + " " + Number(m.C) + " " +
			Number(m.D) + " " + Number(m.E) + " " + Number(m.F) + ")"
	}
}

// clamp keeps acos's argument inside [-1,1] to avoid NaN from rounding
// error on near-unit matrix entries.
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
