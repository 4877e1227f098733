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
	"seehuhn.de/go/pdfsvg/render/oplist"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

// RenderPage is the driver-facade entry point of spec.md §6:
//
//	render_page(operator_list, viewport, common_objs, page_objs,
//	            force_data_schema, embed_fonts) -> future<svg_root>
//
// It builds the root <svg>/<defs>/root-<g> skeleton (§6), blocks on the
// dependency barrier, then runs the interpreter over the flattened
// operator tree. The returned node is ready to serialize with
// svgdom.Write.
func RenderPage(instrs []oplist.Instr, vp Viewport, common, page ObjectStore, counters *Counters, opts Options) (*svgdom.Node, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, &UnsupportedError{Kind: "viewport", Detail: "non-positive width or height"}
	}
	tree := oplist.Flatten(instrs)
	deps := PreloadDependencies(tree, common, page)

	root := svgdom.NewSVGRoot(vp.Width, vp.Height, vp.Width, vp.Height)
	defs := svgdom.NewElement(svgdom.NSSVG, "defs")
	root.AppendChild(defs)

	rootGroup := svgdom.NewElement(svgdom.NSSVG, "g")
	rootGroup.SetAttr("", "transform", format.Matrix(vp.Transform))
	root.AppendChild(rootGroup)

	ip := New(rootGroup, defs, vp, counters, common, page, deps, opts)
	if err := ip.Run(tree); err != nil {
		return nil, err
	}
	return root, nil
}
