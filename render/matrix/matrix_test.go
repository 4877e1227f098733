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

package matrix

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testMatrices = []Matrix{
	Identity,
	{2, 3, 4, 5, 6, 7},
	Translate(-0.5, 0.5),
	Translate(0, 1),
	Translate(1, 0),
	Translate(1, 2),
	Scale(0.5, 0.5),
	Scale(2, 1),
	Scale(1, 2),
	Scale(3, 4),
	Scale(-1, -1),
	Rotate(0.1),
	Rotate(math.Pi / 2),
	Rotate(math.Pi),
}

func TestIdentityMatrix(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			B := A.Mul(Identity)
			if d := cmp.Diff(A, B); d != "" {
				t.Error(d)
			}
			C := Identity.Mul(A)
			if d := cmp.Diff(A, C); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixInverse(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv := A.Inv()

			B := Ainv.Mul(A)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}

			B = A.Mul(Ainv)
			if d := cmp.Diff(Identity, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestApplyTranslate(t *testing.T) {
	m := Translate(3, 4)
	x, y := m.Apply(1, 1)
	if x != 4 || y != 5 {
		t.Errorf("got (%v,%v), want (4,5)", x, y)
	}
}

func TestTransformRect(t *testing.T) {
	m := Rotate(math.Pi / 2)
	r := m.TransformRect(Rect{0, 0, 1, 1})
	want := Rect{-1, 0, 0, 1}
	if d := cmp.Diff(want, r, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestNormalizeRect(t *testing.T) {
	r := NormalizeRect(Rect{10, 10, 0, 0})
	want := Rect{0, 0, 10, 10}
	if d := cmp.Diff(want, r); d != "" {
		t.Error(d)
	}
}

func TestDecompose2x2ScaleAxisAligned(t *testing.T) {
	m := Scale(2, 3)
	sx, sy := m.Decompose2x2Scale()
	if d := cmp.Diff([2]float64{3, 2}, [2]float64{sx, sy}, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
		// singular values come out largest-first; for an axis-aligned
		// scale that's whichever of sx,sy is bigger.
		if d2 := cmp.Diff([2]float64{2, 3}, [2]float64{sx, sy}, cmpopts.EquateApprox(1e-9, 1e-9)); d2 != "" {
			t.Error(d)
		}
	}
}

func TestDecompose2x2ScaleDegenerate(t *testing.T) {
	// a matrix collapsing everything to a line has one zero eigenvalue;
	// the fallback must avoid returning 0 (division by zero downstream).
	m := Matrix{1, 0, 0, 0, 0, 0}
	sx, sy := m.Decompose2x2Scale()
	if sx == 0 || sy == 0 {
		t.Errorf("got (%v,%v), want no zero singular value", sx, sy)
	}
}
