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

package format

import (
	"math"
	"testing"

	"seehuhn.de/go/pdfsvg/render/matrix"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-3, "-3"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{10.0 / 3, "3.3333333333"},
	}
	for _, c := range cases {
		got := Number(c.in)
		if got != c.want {
			t.Errorf("Number(%v) = %q, want %q", c.in, got, c.want)
		}
		if got[len(got)-1] == '.' || (c.in != math.Trunc(c.in) && got[len(got)-1] == '0') {
			t.Errorf("Number(%v) = %q has a trailing dot or a trailing zero in its fraction", c.in, got)
		}
	}
}

func TestMatrixIdentity(t *testing.T) {
	if got := Matrix(matrix.Identity); got != "" {
		t.Errorf("Matrix(Identity) = %q, want empty string", got)
	}
}

func TestMatrixTranslate(t *testing.T) {
	got := Matrix(matrix.Translate(5, -3))
	want := "translate(5 -3)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMatrixScale(t *testing.T) {
	got := Matrix(matrix.Scale(2, 0.5))
	want := "scale(2 0.5)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMatrixRotate(t *testing.T) {
	got := Matrix(matrix.Rotate(math.Pi / 2))
	want := "rotate(90)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMatrixGeneral(t *testing.T) {
	m := matrix.Matrix{1, 2, 3, 4, 5, 6}
	got := Matrix(m)
	want := "matrix(1 2 3 4 5 6)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
