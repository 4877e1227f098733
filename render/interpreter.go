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

// Package render is the graphics interpreter: the stateful machine
// that walks a flattened operator list and emits the SVG tree, per
// spec.md §4.
package render

import (
	"seehuhn.de/go/pdfsvg/render/format"
	"seehuhn.de/go/pdfsvg/render/gstate"
	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/oplist"
	"seehuhn.de/go/pdfsvg/render/opcode"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

// Options configures a single page render, mirroring the plain
// exported-struct configuration style of converter.Converter.
type Options struct {
	// ForceDataSchema is threaded through to imageemit.EncodePNG.
	ForceDataSchema bool
	// EmbedFonts controls whether setFont emits a @font-face rule for
	// fonts carrying embedded program data.
	EmbedFonts bool
	// Warnf reports a non-fatal diagnostic (unknown opcode, missing
	// dependency, unimplemented gstate key). Defaults to a no-op.
	Warnf func(format string, args ...any)
}

func (o Options) warn(f string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(f, args...)
	}
}

// Interpreter is the per-page graphics-state machine. It is not safe
// for concurrent use: spec.md §5 scopes execution to a single
// goroutine per page, after the dependency barrier has completed.
type Interpreter struct {
	transformMatrix matrix.Matrix
	transformStack  []matrix.Matrix
	extraStack      []*gstate.State
	state           *gstate.State

	svg  *svgdom.Node // current output parent
	defs *svgdom.Node
	tgrp *svgdom.Node // current transform group, or nil

	viewport Viewport
	counters *Counters
	opts     Options

	common, page ObjectStore
	dependencies map[string]any // resolved by the preload barrier

	fontFaces map[string]bool // loadedName -> @font-face already emitted
}

// New creates an Interpreter ready to render one page's operator list:
// content goes into root (the page's root <g>, see RenderPage) and
// referenced resources into defs.
func New(root, defs *svgdom.Node, vp Viewport, counters *Counters, common, page ObjectStore, deps map[string]any, opts Options) *Interpreter {
	return &Interpreter{
		transformMatrix: matrix.Identity,
		state:           gstate.New(),
		svg:             root,
		defs:            defs,
		viewport:        vp,
		counters:        counters,
		opts:            opts,
		common:          common,
		page:            page,
		dependencies:    deps,
		fontFaces:       make(map[string]bool),
	}
}

// Run executes a flattened operator tree against the interpreter's
// current state. Top-level callers pass the tree returned by
// oplist.Flatten; "group" nodes recurse depth-first via the Group
// opcode's own handler.
func (ip *Interpreter) Run(nodes []*oplist.Node) error {
	for _, n := range nodes {
		if err := ip.exec(n); err != nil {
			return err
		}
	}
	// invariant 1: the stacks must come back into lock-step.
	if len(ip.transformStack) != len(ip.extraStack) {
		return &StackError{Op: "end-of-stream"}
	}
	return nil
}

func (ip *Interpreter) exec(n *oplist.Node) error {
	if n.Op == opcode.Group {
		ip.doSave()
		if err := ip.Run(n.Children); err != nil {
			return err
		}
		return ip.doRestore()
	}
	return ip.dispatch(n.Instr)
}

func (ip *Interpreter) dispatch(instr oplist.Instr) error {
	switch instr.Op {
	case opcode.Dependency:
		// accepted no-op: dependencies are preloaded by the barrier.
		return nil

	case opcode.Save:
		ip.doSave()
		return nil
	case opcode.Restore:
		return ip.doRestore()
	case opcode.Transform:
		return ip.opTransform(instr.Args)

	case opcode.SetLineWidth:
		ip.state.LineWidth = argF(instr.Args, 0)
	case opcode.SetLineCap:
		ip.state.LineCap = lineCapFromInt(int(argF(instr.Args, 0)))
	case opcode.SetLineJoin:
		ip.state.LineJoin = lineJoinFromInt(int(argF(instr.Args, 0)))
	case opcode.SetMiterLimit:
		ip.state.MiterLimit = argF(instr.Args, 0)
	case opcode.SetDash:
		ip.opSetDash(instr.Args)
	case opcode.SetRenderingIntent, opcode.SetFlatness:
		// accepted no-op: not representable in SVG.
		return nil
	case opcode.SetGState:
		return ip.opSetGState(instr.Args)

	case opcode.ConstructPath:
		return ip.opConstructPath(instr.Args)
	case opcode.Fill:
		return ip.opPaint(false, false, false)
	case opcode.EOFill:
		return ip.opPaint(false, false, true)
	case opcode.Stroke:
		return ip.opPaint(false, true, false)
	case opcode.FillStroke:
		return ip.opPaint(true, true, false)
	case opcode.EOFillStroke:
		return ip.opPaint(true, true, true)
	case opcode.CloseFillStroke:
		ip.closeCurrentSubpath()
		return ip.opPaint(true, true, false)
	case opcode.CloseEOFillStroke:
		ip.closeCurrentSubpath()
		return ip.opPaint(true, true, true)
	case opcode.CloseStroke:
		ip.closeCurrentSubpath()
		return ip.opPaint(false, true, false)
	case opcode.ClosePath:
		ip.closeCurrentSubpath()
		return nil
	case opcode.EndPath:
		return nil
	case opcode.Clip, opcode.EOClip:
		// accepted no-op: soft clipping is out of scope (spec.md §1).
		return nil

	case opcode.BeginText:
		ip.opBeginText()
	case opcode.EndText:
		// accepted no-op.
	case opcode.MoveText:
		ip.opMoveText(argF(instr.Args, 0), argF(instr.Args, 1))
	case opcode.SetLeadingMoveText:
		ip.opSetLeadingMoveText(argF(instr.Args, 0), argF(instr.Args, 1))
	case opcode.SetTextMatrix:
		ip.opSetTextMatrix(instr.Args)
	case opcode.NextLine:
		ip.opMoveText(0, ip.state.Leading)
	case opcode.ShowText, opcode.ShowSpacedText:
		return ip.opShowText(instr.Args)
	case opcode.SetFont:
		return ip.opSetFont(instr.Args)
	case opcode.SetCharSpacing:
		ip.state.CharSpacing = argF(instr.Args, 0)
	case opcode.SetWordSpacing:
		ip.state.WordSpacing = argF(instr.Args, 0)
	case opcode.SetHScale:
		ip.state.TextHScale = argF(instr.Args, 0) / 100
	case opcode.SetLeading:
		ip.state.Leading = -argF(instr.Args, 0)
	case opcode.SetTextRise:
		ip.state.TextRise = argF(instr.Args, 0)
	case opcode.SetTextRenderingMode:
		ip.state.TextRenderMode = gstate.TextRenderingMode(int(argF(instr.Args, 0)))

	case opcode.SetFillRGBColor:
		ip.state.FillColor = makeHexColor(instr.Args)
		ip.resetPendingText()
	case opcode.SetStrokeRGBColor:
		ip.state.StrokeColor = makeHexColor(instr.Args)
	case opcode.SetFillGray:
		g := argF(instr.Args, 0)
		ip.state.FillColor = makeHexColor([]any{g, g, g})
		ip.resetPendingText()
	case opcode.SetStrokeGray:
		g := argF(instr.Args, 0)
		ip.state.StrokeColor = makeHexColor([]any{g, g, g})
	case opcode.SetFillCMYKColor:
		ip.state.FillColor = cmykHexColor(instr.Args)
		ip.resetPendingText()
	case opcode.SetStrokeCMYKColor:
		ip.state.StrokeColor = cmykHexColor(instr.Args)
	case opcode.SetFillColorN, opcode.SetStrokeColorN, opcode.SetFillColorSpace, opcode.SetStrokeColorSpace:
		// naive-RGB-only color model (spec.md §1 Non-goals): anything
		// beyond DeviceRGB/DeviceGray/DeviceCMYK keeps the prior color.
		return nil

	case opcode.ShadingFill:
		return ip.opShadingFill(instr.Args)

	case opcode.PaintInlineImageXObject:
		return ip.opPaintInlineImage(instr.Args, nil)
	case opcode.PaintImageXObject:
		return ip.opPaintImageXObject(instr.Args)
	case opcode.PaintImageMaskXObject:
		return ip.opPaintImageMaskXObject(instr.Args)
	case opcode.PaintSolidColorImageMask:
		ip.opPaintSolidColorImageMask()

	case opcode.PaintFormXObjectBegin:
		return ip.opFormXObjectBegin(instr.Args)
	case opcode.PaintFormXObjectEnd:
		// no-op.

	case opcode.BeginMarkedContent, opcode.EndMarkedContent, opcode.BeginCompat, opcode.EndCompat:
		// accepted no-op: marked content and compatibility sections
		// carry no visual meaning for this renderer.

	default:
		ip.opts.warn("pdfsvg: unknown opcode %v, skipping", instr.Op)
	}
	return nil
}

// doSave pushes the CTM and a clone of the current graphics state.
func (ip *Interpreter) doSave() {
	ip.transformStack = append(ip.transformStack, ip.transformMatrix)
	ip.extraStack = append(ip.extraStack, ip.state)
	ip.state = ip.state.Clone()
}

// doRestore pops both stacks and ends the current transform group, so
// the next emission after a restore starts a fresh <g> at the restored
// CTM rather than reusing one built under the saved CTM.
func (ip *Interpreter) doRestore() error {
	if len(ip.transformStack) == 0 {
		return &StackError{Op: "restore"}
	}
	n := len(ip.transformStack) - 1
	ip.transformMatrix = ip.transformStack[n]
	ip.transformStack = ip.transformStack[:n]
	ip.state = ip.extraStack[n]
	ip.extraStack = ip.extraStack[:n]
	ip.endTransformGroup()
	return nil
}

func (ip *Interpreter) opTransform(args []any) error {
	if len(args) < 6 {
		return nil
	}
	m := matrix.Matrix{A: toF(args[0]), B: toF(args[1]), C: toF(args[2]), D: toF(args[3]), E: toF(args[4]), F: toF(args[5])}
	ip.transformMatrix = ip.transformMatrix.Mul(m)
	ip.endTransformGroup()
	return nil
}

// ensureTransformGroup returns the current transform group, creating
// and appending it to svg if it doesn't exist yet.
func (ip *Interpreter) ensureTransformGroup() *svgdom.Node {
	if ip.tgrp != nil {
		return ip.tgrp
	}
	g := svgdom.NewElement(svgdom.NSSVG, "g")
	if s := format.Matrix(ip.transformMatrix); s != "" {
		g.SetAttr("", "transform", s)
	} else {
		g.SetAttr("", "transform", "")
	}
	ip.svg.AppendChild(g)
	ip.tgrp = g
	return g
}

// endTransformGroup removes the cached transform group from its parent
// if it ended up with no children, so empty decorative groups never
// pollute the output (invariant 3), then clears the cache.
func (ip *Interpreter) endTransformGroup() {
	if ip.tgrp == nil {
		return
	}
	if len(ip.tgrp.Children) == 0 {
		ip.svg.RemoveChild(ip.tgrp)
	}
	ip.tgrp = nil
}

func lineCapFromInt(v int) gstate.LineCap {
	switch v {
	case 1:
		return gstate.LineCapRound
	case 2:
		return gstate.LineCapSquare
	default:
		return gstate.LineCapButt
	}
}

func lineJoinFromInt(v int) gstate.LineJoin {
	switch v {
	case 1:
		return gstate.LineJoinRound
	case 2:
		return gstate.LineJoinBevel
	default:
		return gstate.LineJoinMiter
	}
}

func (ip *Interpreter) opSetDash(args []any) {
	if len(args) < 2 {
		return
	}
	arr, _ := args[0].([]float64)
	dash := make([]float64, len(arr))
	copy(dash, arr)
	ip.state.DashArray = dash
	ip.state.DashPhase = toF(args[1])
}

func (ip *Interpreter) closeCurrentSubpath() {
	if ip.state.Path == nil {
		return
	}
	d, _ := ip.state.Path.Attr("", "d")
	ip.state.Path.SetAttr("", "d", d+" Z")
	ip.state.PathSegments = append(ip.state.PathSegments, gstate.PathSegment{Kind: gstate.SubOpClosePath})
}

// resetPendingText clears the pending tspan/glyph buffers. Preserved
// per spec.md's open question: a plain color operator resetting
// in-progress text state looks like a bug, but downstream behavior
// depends on it, so it is kept intentionally.
func (ip *Interpreter) resetPendingText() {
	ip.state.PendingTspan = nil
	ip.state.XCoords = nil
	ip.state.YCoords = nil
}

func argF(args []any, i int) float64 {
	if i >= len(args) {
		return 0
	}
	return toF(args[i])
}

func toF(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		return 0
	}
}
