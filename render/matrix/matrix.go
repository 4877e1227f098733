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

// Package matrix implements the 2x3 affine matrix algebra needed to place
// SVG nodes: composition, inversion, point transforms, axial bounding
// boxes and the 2D scale decomposition used by tiling patterns.
package matrix

import "math"

// Matrix is a row-major affine transform [a b c d e f], mapping
// (x,y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// FontIdentity is the default font-unit-to-text-space scale,
// [0.001 0 0 0.001 0 0].
var FontIdentity = Matrix{0.001, 0, 0, 0.001, 0, 0}

// Translate returns a pure translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a pure scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a pure rotation matrix, angle in radians.
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Mul returns the composition m∘other, i.e. applying m first and then
// other: (m.Mul(other)).Apply(p) == other.Apply(m.Apply(p)).
//
// This is the "right-compose" convention used throughout the
// interpreter: transformMatrix = transformMatrix.Mul(cmArgs).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Inv returns the inverse of m. For a singular m (determinant exactly
// zero) it returns Identity.
func (m Matrix) Inv() Matrix {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(m.E*a + m.F*c)
	f := -(m.E*b + m.F*d)
	return Matrix{a, b, c, d, e, f}
}

// Apply transforms the point (x,y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// IsIdentity reports whether m is (numerically) the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Rect is an axis-aligned rectangle. Its corners may come in any order;
// NormalizeRect and TransformRect return it with X0<=X1 and Y0<=Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NormalizeRect returns r with its corners reordered so that
// (X0,Y0) is the lower-left and (X1,Y1) the upper-right corner.
func NormalizeRect(r Rect) Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// TransformRect transforms the four corners of r by m and returns the
// axis-aligned bounding box of the result.
func (m Matrix) TransformRect(r Rect) Rect {
	xs := [4]float64{}
	ys := [4]float64{}
	corners := [4][2]float64{{r.X0, r.Y0}, {r.X1, r.Y0}, {r.X1, r.Y1}, {r.X0, r.Y1}}
	for i, p := range corners {
		xs[i], ys[i] = m.Apply(p[0], p[1])
	}
	out := Rect{X0: xs[0], X1: xs[0], Y0: ys[0], Y1: ys[0]}
	for i := 1; i < 4; i++ {
		out.X0 = math.Min(out.X0, xs[i])
		out.X1 = math.Max(out.X1, xs[i])
		out.Y0 = math.Min(out.Y0, ys[i])
		out.Y1 = math.Max(out.Y1, ys[i])
	}
	return out
}

// Decompose2x2Scale computes the singular values of the linear part
// [A B; C D] of m, by solving the characteristic quadratic of M^T*M. It
// is used to turn a tiling pattern's matrix into an axis scale factor
// for xstep/ystep. Falls back to 1 when an eigenvalue rounds to zero,
// to avoid division by zero on degenerate matrices.
func (m Matrix) Decompose2x2Scale() (sx, sy float64) {
	a, b, c, d := m.A, m.B, m.C, m.D

	// M^T*M = [a c; b d]^T... compute tr and det of M^T*M directly.
	e11 := a*a + b*b
	e12 := a*c + b*d
	e22 := c*c + d*d

	tr := e11 + e22
	det := e11*e22 - e12*e12

	disc := tr*tr - 4*det
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	lambda1 := (tr + sq) / 2
	lambda2 := (tr - sq) / 2

	sx = sqrtOrOne(lambda1)
	sy = sqrtOrOne(lambda2)
	return sx, sy
}

func sqrtOrOne(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	v := math.Sqrt(lambda)
	if v == 0 {
		return 1
	}
	return v
}
