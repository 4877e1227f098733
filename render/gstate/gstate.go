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

// Package gstate holds the per-save-level graphics state the
// interpreter pushes and pops on "save"/"restore", following the
// shallow-clone-then-replace discipline of spec.md's design notes:
// a save shares arrays and DOM node references with its parent. Slice
// fields are reassigned rather than edited element by element; the
// shared DOM nodes (the current <path>, the pending <tspan>) are edited
// in place by whichever level holds them.
package gstate

import (
	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

// LineCap mirrors the SVG stroke-linecap values.
type LineCap string

const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin mirrors the SVG stroke-linejoin values.
type LineJoin string

const (
	LineJoinMiter LineJoin = "miter"
	LineJoinRound LineJoin = "round"
	LineJoinBevel LineJoin = "bevel"
)

// FontWeight mirrors the three weight strings the spec recognizes.
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
	FontWeightBlack  FontWeight = "900"
)

// FontStyle mirrors the two style strings the spec recognizes.
type FontStyle string

const (
	FontStyleNormal FontStyle = "normal"
	FontStyleItalic FontStyle = "italic"
)

// TextRenderingMode is the bitfield from PDF's Tr operator: bits 0-1
// select fill/stroke/both/invisible, bit 2 adds to the clip path.
type TextRenderingMode int

const (
	TextRenderModeFill TextRenderingMode = iota
	TextRenderModeStroke
	TextRenderModeFillStroke
	TextRenderModeInvisible
	TextRenderModeFillAddToPath
	TextRenderModeStrokeAddToPath
	TextRenderModeFillStrokeAddToPath
	TextRenderModeAddToPath
)

// FillStrokeMask isolates the fill/stroke bits of a TextRenderingMode.
const FillStrokeMask = 3

// PathSubOp identifies one path-construction primitive inside a single
// constructPath instruction, per spec.md §4.5.
type PathSubOp int

const (
	SubOpRectangle PathSubOp = iota
	SubOpMoveTo
	SubOpLineTo
	SubOpCurveTo  // both control points given
	SubOpCurveTo2 // first control point == current point
	SubOpCurveTo3 // second control point == endpoint
	SubOpClosePath
)

// PathSegment is the renderer's own record of a path primitive in user
// space, kept alongside the SVG "d" string so the overlay-suppression
// bounding-box walk (including Bézier extrema) doesn't need to
// re-parse SVG path syntax. It lives on State (not the render
// package) so it survives save/restore cloning with everything else.
type PathSegment struct {
	Kind                   PathSubOp
	X1, Y1, X2, Y2, X3, Y3 float64 // meaning depends on Kind
}

// Font is the opaque font object resolved from an object store; this
// renderer never decodes its glyph program, only passes Data/Mimetype
// through to an optional @font-face rule.
type Font struct {
	LoadedName      string
	FontMatrix      matrix.Matrix
	Vertical        bool
	Bold            bool
	Black           bool
	Italic          bool
	DefaultVMetrics [3]float64
	MissingFile     bool
	Data            []byte
	Mimetype        string
}

// State is one graphics-state save level, per spec.md §3.
type State struct {
	// Current user-space point.
	X, Y float64

	// Text state.
	TextMatrix      matrix.Matrix
	LineMatrix      matrix.Matrix
	TextMatrixScale float64
	FontMatrix      matrix.Matrix
	FontSize        float64
	FontSizeScale   float64
	FontFamily      string
	FontWeight      FontWeight
	FontStyle       FontStyle
	FontDirection   int // +1 horizontal, -1 flipped (negative font size)
	Font            *Font

	Leading         float64
	CharSpacing     float64
	WordSpacing     float64
	TextHScale      float64 // decimal, e.g. 1.0 for 100%
	TextRise        float64
	TextRenderMode  TextRenderingMode

	LineX, LineY float64 // text line origin

	// In-progress text block.
	PendingTspan   *svgdom.Node
	XCoords        []float64
	YCoords        []float64
	TextParent     *svgdom.Node // the current <text>
	TextGroup      *svgdom.Node // the <g> the <text> will be appended to

	// Paint style.
	FillColor   string // hex or url(#...)
	StrokeColor string
	FillAlpha   float64
	StrokeAlpha float64
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	DashArray   []float64
	DashPhase   float64

	// Path state.
	Path         *svgdom.Node // the <path> under construction
	Element      *svgdom.Node // the node the next fill/stroke will decorate
	PathSegments []PathSegment
	MaskID       string

	// Dependencies pending from the preload barrier that this state
	// level still references (object ids).
	Dependencies []string
}

// New returns the default initial graphics state.
func New() *State {
	return &State{
		TextMatrix:      matrix.Identity,
		LineMatrix:      matrix.Identity,
		TextMatrixScale: 1,
		FontMatrix:      matrix.FontIdentity,
		FontDirection:   1,
		TextHScale:      1,
		FillColor:       "#000000",
		StrokeColor:     "#000000",
		FillAlpha:       1,
		StrokeAlpha:     1,
		LineWidth:       1,
		LineCap:         LineCapButt,
		LineJoin:        LineJoinMiter,
		MiterLimit:      10,
	}
}

// Clone returns a shallow copy of s: slices and DOM node pointers are
// shared with the original until a later Set-style mutation replaces
// the field on the copy. This is cheap (no deep copy) and correct
// because no method on State mutates a shared slice/node in place --
// it always assigns a new value to the field instead.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}
