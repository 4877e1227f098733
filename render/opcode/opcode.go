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

// Package opcode enumerates the operator-list opcode ids shared between
// the flattener, the interpreter's dispatch table and anything that
// produces an operator list. The ids are stable across versions and
// must never be renumbered: id 1 is reserved for dependency and id 92
// for the synthetic group node emitted by the flattener.
package opcode

// Op identifies one entry of a flattened operator list.
type Op int

const (
	Dependency Op = 1 // pinned; the ids from Save on follow declaration order, starting at 101

	Save Op = iota + 100
	Restore
	Transform

	SetLineWidth
	SetLineCap
	SetLineJoin
	SetMiterLimit
	SetDash
	SetRenderingIntent
	SetFlatness
	SetGState

	ConstructPath
	Fill
	EOFill
	Stroke
	FillStroke
	EOFillStroke
	CloseFillStroke
	CloseEOFillStroke
	CloseStroke
	ClosePath
	EndPath
	Clip
	EOClip

	BeginText
	EndText
	MoveText
	SetLeadingMoveText
	SetTextMatrix
	NextLine
	ShowText
	ShowSpacedText
	SetFont
	SetCharSpacing
	SetWordSpacing
	SetHScale
	SetLeading
	SetTextRise
	SetTextRenderingMode

	SetFillColorN
	SetStrokeColorN
	SetFillRGBColor
	SetStrokeRGBColor
	SetFillGray
	SetStrokeGray
	SetFillCMYKColor
	SetStrokeCMYKColor
	SetFillColorSpace
	SetStrokeColorSpace

	ShadingFill

	PaintInlineImageXObject
	PaintImageXObject
	PaintImageMaskXObject
	PaintSolidColorImageMask

	PaintFormXObjectBegin
	PaintFormXObjectEnd

	BeginMarkedContent
	EndMarkedContent
	BeginCompat
	EndCompat

	Group Op = 92
)

// Names maps every known opcode to its mnemonic, for warning messages.
var Names = map[Op]string{
	Dependency:               "dependency",
	Save:                     "save",
	Restore:                  "restore",
	Transform:                "transform",
	SetLineWidth:             "setLineWidth",
	SetLineCap:               "setLineCap",
	SetLineJoin:              "setLineJoin",
	SetMiterLimit:            "setMiterLimit",
	SetDash:                  "setDash",
	SetRenderingIntent:       "setRenderingIntent",
	SetFlatness:              "setFlatness",
	SetGState:                "setGState",
	ConstructPath:            "constructPath",
	Fill:                     "fill",
	EOFill:                   "eoFill",
	Stroke:                   "stroke",
	FillStroke:               "fillStroke",
	EOFillStroke:             "eoFillStroke",
	CloseFillStroke:          "closeFillStroke",
	CloseEOFillStroke:        "closeEOFillStroke",
	CloseStroke:              "closeStroke",
	ClosePath:                "closePath",
	EndPath:                  "endPath",
	Clip:                     "clip",
	EOClip:                   "eoClip",
	BeginText:                "beginText",
	EndText:                  "endText",
	MoveText:                 "moveText",
	SetLeadingMoveText:       "setLeadingMoveText",
	SetTextMatrix:            "setTextMatrix",
	NextLine:                 "nextLine",
	ShowText:                 "showText",
	ShowSpacedText:           "showSpacedText",
	SetFont:                  "setFont",
	SetCharSpacing:           "setCharSpacing",
	SetWordSpacing:           "setWordSpacing",
	SetHScale:                "setHScale",
	SetLeading:               "setLeading",
	SetTextRise:              "setTextRise",
	SetTextRenderingMode:     "setTextRenderingMode",
	SetFillColorN:            "setFillColorN",
	SetStrokeColorN:          "setStrokeColorN",
	SetFillRGBColor:          "setFillRGBColor",
	SetStrokeRGBColor:        "setStrokeRGBColor",
	SetFillGray:              "setFillGray",
	SetStrokeGray:            "setStrokeGray",
	SetFillCMYKColor:         "setFillCMYKColor",
	SetStrokeCMYKColor:       "setStrokeCMYKColor",
	SetFillColorSpace:        "setFillColorSpace",
	SetStrokeColorSpace:      "setStrokeColorSpace",
	ShadingFill:              "shadingFill",
	PaintInlineImageXObject:  "paintInlineImageXObject",
	PaintImageXObject:        "paintImageXObject",
	PaintImageMaskXObject:    "paintImageMaskXObject",
	PaintSolidColorImageMask: "paintSolidColorImageMask",
	PaintFormXObjectBegin:    "paintFormXObjectBegin",
	PaintFormXObjectEnd:      "paintFormXObjectEnd",
	BeginMarkedContent:       "beginMarkedContent",
	EndMarkedContent:         "endMarkedContent",
	BeginCompat:              "beginCompat",
	EndCompat:                "endCompat",
	Group:                    "group",
}

func (op Op) String() string {
	if name, ok := Names[op]; ok {
		return name
	}
	return "unknown"
}
