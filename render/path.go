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

import (
	"math"
	"strings"

	"seehuhn.de/go/pdfsvg/render/format"
	"seehuhn.de/go/pdfsvg/render/gstate"
	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

// re-exported so callers building operator-list instructions don't need
// to import the gstate package just to name a sub-opcode.
const (
	SubOpRectangle = gstate.SubOpRectangle
	SubOpMoveTo    = gstate.SubOpMoveTo
	SubOpLineTo    = gstate.SubOpLineTo
	SubOpCurveTo   = gstate.SubOpCurveTo
	SubOpCurveTo2  = gstate.SubOpCurveTo2
	SubOpCurveTo3  = gstate.SubOpCurveTo3
	SubOpClosePath = gstate.SubOpClosePath
)

// PathSubOp identifies one path-construction primitive inside a single
// constructPath instruction, per spec.md §4.5.
type PathSubOp = gstate.PathSubOp

func (ip *Interpreter) opConstructPath(args []any) error {
	if len(args) < 2 {
		return nil
	}
	subops, _ := args[0].([]PathSubOp)
	flat, _ := args[1].([]float64)

	fresh := ip.state.Path == nil || len(subops) == 0 ||
		subops[0] == SubOpRectangle || subops[0] == SubOpMoveTo

	var d strings.Builder
	if fresh {
		ip.state.Path = svgdom.NewElement(svgdom.NSSVG, "path")
		ip.state.Element = ip.state.Path
		ip.state.PathSegments = nil
	} else {
		prev, _ := ip.state.Path.Attr("", "d")
		d.WriteString(prev)
	}

	pos := 0
	next := func(n int) []float64 {
		if pos+n > len(flat) {
			pos = len(flat)
			return make([]float64, n)
		}
		v := flat[pos : pos+n]
		pos += n
		return v
	}

	for _, op := range subops {
		switch op {
		case SubOpRectangle:
			v := next(4)
			x, y, w, h := v[0], v[1], v[2], v[3]
			d.WriteString(" M ")
			d.WriteString(format.Number(x))
			d.WriteByte(' ')
			d.WriteString(format.Number(y))
			d.WriteString(" L ")
			d.WriteString(format.Number(x + w))
			d.WriteByte(' ')
			d.WriteString(format.Number(y))
			d.WriteString(" L ")
			d.WriteString(format.Number(x + w))
			d.WriteByte(' ')
			d.WriteString(format.Number(y + h))
			d.WriteString(" L ")
			d.WriteString(format.Number(x))
			d.WriteByte(' ')
			d.WriteString(format.Number(y + h))
			d.WriteString(" Z")
			ip.state.PathSegments = append(ip.state.PathSegments,
				gstate.PathSegment{Kind: SubOpMoveTo, X1: x, Y1: y},
				gstate.PathSegment{Kind: SubOpLineTo, X1: x + w, Y1: y},
				gstate.PathSegment{Kind: SubOpLineTo, X1: x + w, Y1: y + h},
				gstate.PathSegment{Kind: SubOpLineTo, X1: x, Y1: y + h},
				gstate.PathSegment{Kind: SubOpClosePath},
			)
			ip.state.X, ip.state.Y = x, y
		case SubOpMoveTo:
			v := next(2)
			d.WriteString(" M ")
			d.WriteString(format.Number(v[0]))
			d.WriteByte(' ')
			d.WriteString(format.Number(v[1]))
			ip.state.PathSegments = append(ip.state.PathSegments, gstate.PathSegment{Kind: SubOpMoveTo, X1: v[0], Y1: v[1]})
			ip.state.X, ip.state.Y = v[0], v[1]
		case SubOpLineTo:
			v := next(2)
			d.WriteString(" L ")
			d.WriteString(format.Number(v[0]))
			d.WriteByte(' ')
			d.WriteString(format.Number(v[1]))
			ip.state.PathSegments = append(ip.state.PathSegments, gstate.PathSegment{Kind: SubOpLineTo, X1: v[0], Y1: v[1]})
			ip.state.X, ip.state.Y = v[0], v[1]
		case SubOpCurveTo:
			v := next(6)
			writeCurve(&d, v[0], v[1], v[2], v[3], v[4], v[5])
			ip.state.PathSegments = append(ip.state.PathSegments,
				gstate.PathSegment{Kind: SubOpCurveTo, X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[4], Y3: v[5]})
			ip.state.X, ip.state.Y = v[4], v[5]
		case SubOpCurveTo2:
			v := next(4)
			x1, y1 := ip.state.X, ip.state.Y
			writeCurve(&d, x1, y1, v[0], v[1], v[2], v[3])
			ip.state.PathSegments = append(ip.state.PathSegments,
				gstate.PathSegment{Kind: SubOpCurveTo, X1: x1, Y1: y1, X2: v[0], Y2: v[1], X3: v[2], Y3: v[3]})
			ip.state.X, ip.state.Y = v[2], v[3]
		case SubOpCurveTo3:
			v := next(4)
			writeCurve(&d, v[0], v[1], v[2], v[3], v[2], v[3])
			ip.state.PathSegments = append(ip.state.PathSegments,
				gstate.PathSegment{Kind: SubOpCurveTo, X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[2], Y3: v[3]})
			ip.state.X, ip.state.Y = v[2], v[3]
		case SubOpClosePath:
			d.WriteString(" Z")
			ip.state.PathSegments = append(ip.state.PathSegments, gstate.PathSegment{Kind: SubOpClosePath})
		}
	}

	ip.state.Path.SetAttr("", "d", strings.TrimSpace(d.String()))
	return nil
}

func writeCurve(d *strings.Builder, x1, y1, x2, y2, x3, y3 float64) {
	d.WriteString(" C ")
	d.WriteString(format.Number(x1))
	d.WriteByte(' ')
	d.WriteString(format.Number(y1))
	d.WriteByte(' ')
	d.WriteString(format.Number(x2))
	d.WriteByte(' ')
	d.WriteString(format.Number(y2))
	d.WriteByte(' ')
	d.WriteString(format.Number(x3))
	d.WriteByte(' ')
	d.WriteString(format.Number(y3))
}

// opPaint applies fill and/or stroke attributes to state.Element and
// commits it via endPath. fillStroke calls stroke first then fill,
// because stroke forces fill=none which fill then overwrites --
// order matters, per spec.md §4.5.
func (ip *Interpreter) opPaint(both, stroke, evenOdd bool) error {
	el := ip.state.Element
	if el == nil {
		return nil
	}
	if evenOdd {
		el.SetAttr("", "fill-rule", "evenodd")
	}
	if stroke {
		ip.applyStroke(el)
	}
	if !stroke || both {
		el.SetAttr("", "fill", ip.state.FillColor)
		el.SetAttr("", "fill-opacity", format.Number(ip.state.FillAlpha))
	}
	return ip.endPath()
}

func (ip *Interpreter) applyStroke(el *svgdom.Node) {
	el.SetAttr("", "fill", "none")
	el.SetAttr("", "stroke", ip.state.StrokeColor)
	el.SetAttr("", "stroke-opacity", format.Number(ip.state.StrokeAlpha))
	el.SetAttr("", "stroke-width", format.Number(ip.state.LineWidth))
	el.SetAttr("", "stroke-miterlimit", format.Number(ip.state.MiterLimit))
	el.SetAttr("", "stroke-linecap", string(ip.state.LineCap))
	el.SetAttr("", "stroke-linejoin", string(ip.state.LineJoin))
	if len(ip.state.DashArray) > 0 {
		parts := make([]string, len(ip.state.DashArray))
		for i, v := range ip.state.DashArray {
			parts[i] = format.Number(v)
		}
		el.SetAttr("", "stroke-dasharray", strings.Join(parts, " "))
		el.SetAttr("", "stroke-dashoffset", format.Number(ip.state.DashPhase))
	}
}

// endPath computes the path's bounding box in device space and drops
// it if it covers the whole viewport within one unit on every side --
// the "overlay path" heuristic of spec.md §4.5 -- otherwise appends it
// to the current transform group.
func (ip *Interpreter) endPath() error {
	el := ip.state.Element
	defer func() {
		ip.state.Path = nil
		ip.state.Element = nil
	}()
	if el == nil {
		return nil
	}

	fullCTM := ip.transformMatrix.Mul(ip.viewport.Transform)
	box := pathBoundingBox(ip.state.PathSegments, fullCTM)

	fillVal, hasFill := el.Attr("", "fill")
	_, hasStroke := el.Attr("", "stroke")
	painted := (hasFill && fillVal != "none") || hasStroke

	if painted && coversViewport(box, ip.viewport.Width, ip.viewport.Height) {
		return nil // dropped: page-sized background rectangle
	}

	ip.ensureTransformGroup().AppendChild(el)
	return nil
}

func coversViewport(box rect, width, height float64) bool {
	const tol = 1.0
	return box.x0 <= tol && box.y0 <= tol && box.x1 >= width-tol && box.y1 >= height-tol
}

type rect struct{ x0, y0, x1, y1 float64 }

// pathBoundingBox walks the recorded segments and transforms by m every
// on-curve point and, for cubic Bézier segments, the points where the
// curve's x or y derivative is zero in user space. Control points are
// not included, so the box is tighter than the control-point hull; it
// is exact when m has no rotation or skew.
func pathBoundingBox(segs []gstate.PathSegment, m matrix.Matrix) rect {
	var box rect
	first := true
	var cx, cy float64

	extend := func(x, y float64) {
		tx, ty := m.Apply(x, y)
		if first {
			box = rect{tx, ty, tx, ty}
			first = false
			return
		}
		if tx < box.x0 {
			box.x0 = tx
		}
		if tx > box.x1 {
			box.x1 = tx
		}
		if ty < box.y0 {
			box.y0 = ty
		}
		if ty > box.y1 {
			box.y1 = ty
		}
	}

	for _, s := range segs {
		switch s.Kind {
		case SubOpMoveTo, SubOpLineTo:
			extend(s.X1, s.Y1)
			cx, cy = s.X1, s.Y1
		case SubOpCurveTo:
			extend(s.X3, s.Y3)
			for _, t := range cubicExtrema(cx, s.X1, s.X2, s.X3) {
				x, y := cubicPoint(cx, s.X1, s.X2, s.X3, cy, s.Y1, s.Y2, s.Y3, t)
				extend(x, y)
			}
			for _, t := range cubicExtrema(cy, s.Y1, s.Y2, s.Y3) {
				x, y := cubicPoint(cx, s.X1, s.X2, s.X3, cy, s.Y1, s.Y2, s.Y3, t)
				extend(x, y)
			}
			cx, cy = s.X3, s.Y3
		case SubOpClosePath:
			// no new extremum; closing back to the sub-path start.
		}
	}
	return box
}

// cubicExtrema returns the t in (0,1) where d/dt of the cubic Bézier
// with the given single-axis control values is zero.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var ts []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			t := -c / b
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
		return ts
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

func cubicPoint(x0, x1, x2, x3, y0, y1, y2, y3, t float64) (float64, float64) {
	u := 1 - t
	bx := u*u*u*x0 + 3*u*u*t*x1 + 3*u*t*t*x2 + t*t*t*x3
	by := u*u*u*y0 + 3*u*u*t*y1 + 3*u*t*t*y2 + t*t*t*y3
	return bx, by
}
