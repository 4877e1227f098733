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
	"strings"
	"testing"

	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/opcode"
	"seehuhn.de/go/pdfsvg/render/oplist"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

type nullStore struct{}

func (nullStore) Get(id string, cb func(obj any)) { cb(nil) }

func TestRenderPageFilledRectangle(t *testing.T) {
	instrs := []oplist.Instr{
		{Op: opcode.ConstructPath, Args: []any{
			[]PathSubOp{SubOpRectangle},
			[]float64{10, 10, 20, 30},
		}},
		{Op: opcode.SetFillRGBColor, Args: []any{1.0, 0.0, 0.0}},
		{Op: opcode.Fill},
	}

	vp := Viewport{Width: 100, Height: 100, Transform: matrix.Identity}
	root, err := RenderPage(instrs, vp, nullStore{}, nullStore{}, NewCounters(), Options{})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	out := svgdom.String(root)
	if !strings.Contains(out, "<path") {
		t.Fatalf("expected a <path> element, got:\n%s", out)
	}
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Fatalf("expected fill color #ff0000, got:\n%s", out)
	}
}

func TestRenderPageStrokedPathUsesLineState(t *testing.T) {
	instrs := []oplist.Instr{
		{Op: opcode.SetLineWidth, Args: []any{2.5}},
		{Op: opcode.ConstructPath, Args: []any{
			[]PathSubOp{SubOpMoveTo, SubOpLineTo},
			[]float64{0, 0, 10, 10},
		}},
		{Op: opcode.SetStrokeRGBColor, Args: []any{0.0, 0.0, 1.0}},
		{Op: opcode.Stroke},
	}

	vp := Viewport{Width: 50, Height: 50, Transform: matrix.Identity}
	root, err := RenderPage(instrs, vp, nullStore{}, nullStore{}, NewCounters(), Options{})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	out := svgdom.String(root)
	if !strings.Contains(out, `stroke="#0000ff"`) {
		t.Fatalf("expected stroke color #0000ff, got:\n%s", out)
	}
	if !strings.Contains(out, `stroke-width="2.5"`) {
		t.Fatalf("expected stroke-width 2.5, got:\n%s", out)
	}
}

func TestRenderPageSaveRestoreIsolatesTransform(t *testing.T) {
	instrs := []oplist.Instr{
		{Op: opcode.Save},
		{Op: opcode.Transform, Args: []any{2.0, 0.0, 0.0, 2.0, 0.0, 0.0}},
		{Op: opcode.ConstructPath, Args: []any{
			[]PathSubOp{SubOpRectangle},
			[]float64{0, 0, 1, 1},
		}},
		{Op: opcode.Fill},
		{Op: opcode.Restore},
		{Op: opcode.ConstructPath, Args: []any{
			[]PathSubOp{SubOpRectangle},
			[]float64{5, 5, 1, 1},
		}},
		{Op: opcode.Fill},
	}

	vp := Viewport{Width: 50, Height: 50, Transform: matrix.Identity}
	root, err := RenderPage(instrs, vp, nullStore{}, nullStore{}, NewCounters(), Options{})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	out := svgdom.String(root)
	if strings.Count(out, "<path") != 2 {
		t.Fatalf("expected exactly two paths, got:\n%s", out)
	}
	if strings.Count(out, `transform="scale(2 2)"`) != 1 {
		t.Fatalf("expected the scaled transform on exactly one group, got:\n%s", out)
	}
	if !strings.Contains(out, `<g transform=""><path d="M 5 5 L 6 5 L 6 6 L 5 6 Z"`) {
		t.Fatalf("expected the second path under an untransformed group, got:\n%s", out)
	}
}
