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

package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"seehuhn.de/go/pdfsvg/render"
	"seehuhn.de/go/pdfsvg/render/gstate"
	"seehuhn.de/go/pdfsvg/render/imageemit"
	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/oplist"
	"seehuhn.de/go/pdfsvg/render/opcode"
)

// document is the wire format this driver reads in place of a raw PDF
// content stream. The retrieval snapshot this renderer was built
// against never included seehuhn.de/go/pdf's object-model and reader
// sources (objects.go, types.go, writer.go are all absent, and every
// root-level file that calls pdf.NewReader or constructs a pdf.Dict
// fails to compile against it), so this driver cannot tokenize PDF
// bytes the way cmd/pdf2img does. Instead it takes the already-decoded
// form spec.md §6 hands to the driver layer: "a page's operator list,"
// here serialized as JSON. See DESIGN.md for the full decision record.
type document struct {
	Resources resourcesDoc `json:"resources"`
	Pages     []pageDoc    `json:"pages"`
}

type resourcesDoc struct {
	Fonts  map[string]fontDoc  `json:"fonts"`
	Images map[string]imageDoc `json:"images"`
}

type fontDoc struct {
	LoadedName  string     `json:"loadedName"`
	FontMatrix  [6]float64 `json:"fontMatrix"`
	Vertical    bool       `json:"vertical"`
	Bold        bool       `json:"bold"`
	Black       bool       `json:"black"`
	Italic      bool       `json:"italic"`
	MissingFile bool       `json:"missingFile"`
	DataBase64  string     `json:"dataBase64"`
	Mimetype    string     `json:"mimetype"`
}

func (f fontDoc) toFont() (*gstate.Font, error) {
	var data []byte
	if f.DataBase64 != "" {
		var err error
		data, err = base64.StdEncoding.DecodeString(f.DataBase64)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", f.LoadedName, err)
		}
	}
	m := f.FontMatrix
	return &gstate.Font{
		LoadedName:  f.LoadedName,
		FontMatrix:  matrix.Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]},
		Vertical:    f.Vertical,
		Bold:        f.Bold,
		Black:       f.Black,
		Italic:      f.Italic,
		MissingFile: f.MissingFile,
		Data:        data,
		Mimetype:    f.Mimetype,
	}, nil
}

type imageDoc struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Kind       string `json:"kind"` // "gray1", "rgb24", or "rgba32"
	DataBase64 string `json:"dataBase64"`
}

func (img imageDoc) toPixelData() (imageemit.PixelData, error) {
	data, err := base64.StdEncoding.DecodeString(img.DataBase64)
	if err != nil {
		return imageemit.PixelData{}, err
	}
	var kind imageemit.Kind
	switch img.Kind {
	case "gray1":
		kind = imageemit.Gray1BPP
	case "rgb24":
		kind = imageemit.RGB24BPP
	case "rgba32":
		kind = imageemit.RGBA32BPP
	default:
		return imageemit.PixelData{}, fmt.Errorf("unknown image kind %q", img.Kind)
	}
	return imageemit.PixelData{Width: img.Width, Height: img.Height, Kind: kind, Data: data}, nil
}

type pageDoc struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Transform [6]float64   `json:"transform"`
	Instrs    []instrDoc   `json:"instrs"`
}

type instrDoc struct {
	Op   string            `json:"op"`
	Args []json.RawMessage `json:"args"`
}

var opByName = func() map[string]opcode.Op {
	m := make(map[string]opcode.Op, len(opcode.Names))
	for op, name := range opcode.Names {
		m[name] = op
	}
	return m
}()

// toInstrs converts every instrDoc on a page into an oplist.Instr,
// decoding each opcode's argument shape the way render's dispatch
// table expects it (see render/interpreter.go's switch).
func toInstrs(docs []instrDoc) ([]oplist.Instr, error) {
	out := make([]oplist.Instr, 0, len(docs))
	for i, d := range docs {
		op, ok := opByName[d.Op]
		if !ok {
			return nil, fmt.Errorf("instr %d: unknown opcode %q", i, d.Op)
		}
		args, err := decodeArgs(op, d.Args)
		if err != nil {
			return nil, fmt.Errorf("instr %d (%s): %w", i, d.Op, err)
		}
		out = append(out, oplist.Instr{Op: op, Args: args})
	}
	return out, nil
}

func decodeArgs(op opcode.Op, raw []json.RawMessage) ([]any, error) {
	switch op {
	case opcode.ConstructPath:
		return decodeConstructPath(raw)
	case opcode.ShowText, opcode.ShowSpacedText:
		return decodeShowText(raw)
	case opcode.SetDash:
		return decodeSetDash(raw)
	case opcode.SetGState:
		return decodeFlatPairs(raw)
	case opcode.Dependency, opcode.SetFont:
		return decodeIDAndRest(raw)
	case opcode.ShadingFill:
		return decodeShadingFill(raw)
	default:
		return decodeFloats(raw)
	}
}

// decodeFloats treats every argument as a number, the common case for
// transform/color/text-state opcodes.
func decodeFloats(raw []json.RawMessage) ([]any, error) {
	out := make([]any, len(raw))
	for i, r := range raw {
		var f float64
		if err := json.Unmarshal(r, &f); err != nil {
			return nil, fmt.Errorf("arg %d: expected number: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// decodeIDAndRest decodes args[0] as a string id and any remaining
// arguments as numbers, matching setFont(id, size) and dependency(id).
func decodeIDAndRest(raw []json.RawMessage) ([]any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing id argument")
	}
	var id string
	if err := json.Unmarshal(raw[0], &id); err != nil {
		return nil, fmt.Errorf("arg 0: expected string id: %w", err)
	}
	out := []any{id}
	rest, err := decodeFloats(raw[1:])
	if err != nil {
		return nil, err
	}
	return append(out, rest...), nil
}

// decodeConstructPath decodes {"op":"constructPath","args":[["moveTo","lineTo"],[0,0,10,10]]}.
func decodeConstructPath(raw []json.RawMessage) ([]any, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("constructPath needs [subops, flatArgs]")
	}
	var names []string
	if err := json.Unmarshal(raw[0], &names); err != nil {
		return nil, fmt.Errorf("subops: %w", err)
	}
	subops := make([]render.PathSubOp, len(names))
	for i, n := range names {
		op, ok := pathSubOpByName[n]
		if !ok {
			return nil, fmt.Errorf("unknown path sub-op %q", n)
		}
		subops[i] = op
	}
	var flat []float64
	if err := json.Unmarshal(raw[1], &flat); err != nil {
		return nil, fmt.Errorf("flat args: %w", err)
	}
	return []any{subops, flat}, nil
}

var pathSubOpByName = map[string]render.PathSubOp{
	"rect":      render.SubOpRectangle,
	"moveTo":    render.SubOpMoveTo,
	"lineTo":    render.SubOpLineTo,
	"curveTo":   render.SubOpCurveTo,
	"curveTo2":  render.SubOpCurveTo2,
	"curveTo3":  render.SubOpCurveTo3,
	"closePath": render.SubOpClosePath,
}

// decodeSetDash decodes {"args":[[2,2],0]}.
func decodeSetDash(raw []json.RawMessage) ([]any, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("setDash needs [array, phase]")
	}
	var arr []float64
	if err := json.Unmarshal(raw[0], &arr); err != nil {
		return nil, fmt.Errorf("dash array: %w", err)
	}
	var phase float64
	if err := json.Unmarshal(raw[1], &phase); err != nil {
		return nil, fmt.Errorf("dash phase: %w", err)
	}
	return []any{arr, phase}, nil
}

// decodeFlatPairs decodes setGState's (key, value, key, value, ...)
// layout: string keys; values are numbers for most keys, but "D" and
// "Font" carry a two-element array ([dashArray, phase] / [id, size]),
// so values decode generically rather than as bare floats.
func decodeFlatPairs(raw []json.RawMessage) ([]any, error) {
	out := make([]any, len(raw))
	for i, r := range raw {
		if i%2 == 0 {
			var s string
			if err := json.Unmarshal(r, &s); err == nil {
				out[i] = s
				continue
			}
		}
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		out[i] = normalizeJSONValue(v)
	}
	return out, nil
}

// showTextItem mirrors one element of the showText items array: a word
// break (null), a positioning adjustment (a bare number), or a glyph.
type showTextItem struct {
	Adjustment *float64      `json:"adjustment,omitempty"`
	Glyph      *glyphItemDoc `json:"glyph,omitempty"`
}

type glyphItemDoc struct {
	IsSpace  bool       `json:"isSpace"`
	IsInFont bool       `json:"isInFont"`
	Char     string     `json:"char"`
	Width    float64    `json:"width"`
	VMetric  *[3]float64 `json:"vmetric,omitempty"`
}

func decodeShowText(raw []json.RawMessage) ([]any, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("showText needs a single items array")
	}
	var items []showTextItem
	if err := json.Unmarshal(raw[0], &items); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	converted := make([]any, len(items))
	for i, it := range items {
		switch {
		case it.Glyph != nil:
			converted[i] = render.Glyph{
				IsSpace:  it.Glyph.IsSpace,
				IsInFont: it.Glyph.IsInFont,
				FontChar: it.Glyph.Char,
				Width:    it.Glyph.Width,
				VMetric:  it.Glyph.VMetric,
			}
		case it.Adjustment != nil:
			converted[i] = *it.Adjustment
		default:
			converted[i] = nil
		}
	}
	return []any{converted}, nil
}

// decodeShadingFill decodes either a gradient ({"args":["RadialAxial", "axial", ...]})
// or a tiling pattern ({"args":[null, color, nestedInstrs, matrix, bbox, xstep, ystep, paintType]}).
func decodeShadingFill(raw []json.RawMessage) ([]any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("shadingFill needs at least one argument")
	}
	var kind *string
	if err := json.Unmarshal(raw[0], &kind); err != nil {
		return nil, fmt.Errorf("kind: %w", err)
	}
	if kind != nil {
		out := []any{*kind}
		switch *kind {
		case "RadialAxial":
			// args: kind, subtype, stops, p1, p2
			if len(raw) < 5 {
				return nil, fmt.Errorf("RadialAxial needs [kind, subtype, stops, p1, p2]")
			}
		}
		rest, err := decodeGenericJSON(raw[1:])
		if err != nil {
			return nil, err
		}
		return append(out, rest...), nil
	}

	// Tiling pattern: [null, color, nestedInstrs, matrix, bbox, xstep, ystep, paintType?]
	if len(raw) < 7 {
		return nil, fmt.Errorf("tiling pattern needs at least 7 arguments")
	}
	var color []float64
	if err := json.Unmarshal(raw[1], &color); err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	var nestedDocs []instrDoc
	if err := json.Unmarshal(raw[2], &nestedDocs); err != nil {
		return nil, fmt.Errorf("nested instrs: %w", err)
	}
	nested, err := toInstrs(nestedDocs)
	if err != nil {
		return nil, fmt.Errorf("nested instrs: %w", err)
	}
	var mat, bbox []float64
	if err := json.Unmarshal(raw[3], &mat); err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	if err := json.Unmarshal(raw[4], &bbox); err != nil {
		return nil, fmt.Errorf("bbox: %w", err)
	}
	var xstep, ystep float64
	if err := json.Unmarshal(raw[5], &xstep); err != nil {
		return nil, fmt.Errorf("xstep: %w", err)
	}
	if err := json.Unmarshal(raw[6], &ystep); err != nil {
		return nil, fmt.Errorf("ystep: %w", err)
	}
	out := []any{nil, color, nested, mat, bbox, xstep, ystep}
	if len(raw) > 7 {
		var paintType float64
		if err := json.Unmarshal(raw[7], &paintType); err != nil {
			return nil, fmt.Errorf("paintType: %w", err)
		}
		out = append(out, paintType)
	}
	return out, nil
}

// decodeGenericJSON decodes each raw message into the nearest []any
// shape the gradient helpers in render/pattern.go expect (strings,
// numbers, and nested arrays-of-[value,color] pairs for stops).
func decodeGenericJSON(raw []json.RawMessage) ([]any, error) {
	out := make([]any, len(raw))
	for i, r := range raw {
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		out[i] = normalizeJSONValue(v)
	}
	return out, nil
}

// normalizeJSONValue converts encoding/json's generic decode result
// ([]interface{} of float64/string/...) into the []float64 shape
// render/pattern.go expects for coordinate pairs, when every element
// of a slice is a number.
func normalizeJSONValue(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	floats := make([]float64, len(arr))
	allNumbers := true
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			allNumbers = false
			break
		}
		floats[i] = f
	}
	if allNumbers {
		return floats
	}
	out := make([]any, len(arr))
	for i, e := range arr {
		out[i] = normalizeJSONValue(e)
	}
	return out
}
