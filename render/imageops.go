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
	"seehuhn.de/go/pdfsvg/render/format"
	"seehuhn.de/go/pdfsvg/render/imageemit"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

// opPaintSolidColorImageMask emits a 1x1 rect filled with fillColor,
// per spec.md §4.9.
func (ip *Interpreter) opPaintSolidColorImageMask() {
	rect := svgdom.NewElement(svgdom.NSSVG, "rect")
	rect.SetAttr("", "width", "1")
	rect.SetAttr("", "height", "1")
	rect.SetAttr("", "fill", ip.state.FillColor)
	ip.ensureTransformGroup().AppendChild(rect)
}

// opPaintInlineImage encodes imgData and appends an <image>, either
// into mask (when building a mask's child) or the current transform
// group, per spec.md §4.9.
func (ip *Interpreter) opPaintInlineImage(args []any, mask *svgdom.Node) error {
	if len(args) == 0 {
		return &UnsupportedError{Kind: "image", Detail: "missing pixel data"}
	}
	px, ok := args[0].(imageemit.PixelData)
	if !ok {
		return &UnsupportedError{Kind: "image", Detail: "pixel data has an unrecognized type"}
	}
	href, err := imageemit.EncodePNG(px, ip.opts.ForceDataSchema, mask != nil)
	if err != nil {
		return err
	}

	img := svgdom.NewElement(svgdom.NSSVG, "image")
	img.SetAttr(svgdom.NSXLink, "href", href)
	img.SetAttr("", "x", "0")
	img.SetAttr("", "y", format.Number(-float64(px.Height)))
	img.SetAttr("", "width", format.Number(float64(px.Width)))
	img.SetAttr("", "height", format.Number(float64(px.Height)))
	img.SetAttr("", "transform", "scale("+format.Number(1/float64(px.Width))+" "+format.Number(-1/float64(px.Height))+")")

	if mask != nil {
		mask.AppendChild(img)
	} else {
		ip.ensureTransformGroup().AppendChild(img)
	}
	return nil
}

// opPaintImageXObject resolves objId through the object store and
// delegates to opPaintInlineImage, per spec.md §4.9. A missing
// dependency (one the preload barrier should already have resolved)
// warns and is skipped rather than failing the page.
func (ip *Interpreter) opPaintImageXObject(args []any) error {
	if len(args) == 0 {
		return &UnsupportedError{Kind: "image", Detail: "missing object id"}
	}
	id, _ := args[0].(string)
	obj, ok := ip.lookupDependency(id)
	if !ok || obj == nil {
		ip.opts.warn("pdfsvg: image object %q not resolved, skipping", id)
		return nil
	}
	px, ok := obj.(imageemit.PixelData)
	if !ok {
		return &UnsupportedError{Kind: "image", Detail: "bitmap-backed image sources are unsupported"}
	}
	return ip.opPaintInlineImage([]any{px}, nil)
}

// opPaintImageMaskXObject builds a <mask> containing the resolved
// image, then a filled <rect mask=url(#...)> into the transform group,
// per spec.md §4.9. Bitmap-backed (off-screen-canvas) sources are
// rejected, matching the object model's Non-goal.
func (ip *Interpreter) opPaintImageMaskXObject(args []any) error {
	if len(args) == 0 {
		return &UnsupportedError{Kind: "image mask", Detail: "missing image"}
	}
	px, ok := args[0].(imageemit.PixelData)
	if !ok {
		return &UnsupportedError{Kind: "image mask", Detail: "bitmap-backed image sources are unsupported"}
	}

	id := ip.counters.NextMaskID()
	mask := svgdom.NewElement(svgdom.NSSVG, "mask")
	mask.SetAttr("", "id", id)
	if err := ip.opPaintInlineImage([]any{px}, mask); err != nil {
		return err
	}
	ip.defs.AppendChild(mask)

	// The mask's <image> is normalized into the unit square by
	// opPaintInlineImage's scale(1/width, -1/height) transform, so the
	// masked rect covering it is unit-sized too, same as
	// opPaintSolidColorImageMask's plain 1x1 rect.
	rect := svgdom.NewElement(svgdom.NSSVG, "rect")
	rect.SetAttr("", "width", "1")
	rect.SetAttr("", "height", "1")
	rect.SetAttr("", "fill", ip.state.FillColor)
	rect.SetAttr("", "mask", "url(#"+id+")")
	ip.ensureTransformGroup().AppendChild(rect)
	return nil
}
