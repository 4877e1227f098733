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

// Command pdf2svg is the driver layer of spec.md §1: it reads a page's
// operator list, constructs the interpreter, awaits its dependencies,
// obtains the root SVG, and writes it to a sink.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdfsvg/render"
	"seehuhn.de/go/pdfsvg/render/matrix"
	"seehuhn.de/go/pdfsvg/render/svgdom"
)

func main() {
	outDir := flag.String("o", "out", "output directory for the rendered SVG files")
	forceDataSchema := flag.Bool("force-data-uri", false, "always embed images as data: URIs")
	embedFonts := flag.Bool("embed-fonts", true, "emit @font-face rules for fonts carrying program data")
	flag.Parse()

	inputFile := "./test3.pdf"
	if flag.NArg() >= 1 {
		inputFile = flag.Arg(0)
	}
	// The operator-list document is the same basename with a .json
	// extension: see DESIGN.md for why this driver reads pre-decoded
	// operator lists instead of raw PDF bytes.
	jsonPath := swapExt(inputFile, ".json")

	f, err := os.Open(jsonPath)
	if err != nil {
		log.Fatalf("pdf2svg: opening operator list: %v", err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		log.Fatalf("pdf2svg: decoding %s: %v", jsonPath, err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("pdf2svg: creating output directory: %v", err)
	}

	common, err := buildCommonStore(doc.Resources)
	if err != nil {
		log.Fatalf("pdf2svg: building resource store: %v", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	counters := render.NewCounters()
	opts := render.Options{
		ForceDataSchema: *forceDataSchema,
		EmbedFonts:      *embedFonts,
		Warnf:           func(format string, args ...any) { log.Printf(format, args...) },
	}

	for i, page := range doc.Pages {
		pageNum := i + 1
		instrs, err := toInstrs(page.Instrs)
		if err != nil {
			log.Fatalf("pdf2svg: page %d: %v", pageNum, err)
		}

		m := page.Transform
		vp := render.Viewport{
			Width:     page.Width,
			Height:    page.Height,
			Transform: matrix.Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]},
		}

		pageStore := mapStore{}
		root, err := render.RenderPage(instrs, vp, common, pageStore, counters, opts)
		if err != nil {
			log.Printf("pdf2svg: rendering page %d: %v", pageNum, err)
			continue
		}

		outPath := filepath.Join(*outDir, fmt.Sprintf("%s-%d.svg", base, pageNum))
		out, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("pdf2svg: creating %s: %v", outPath, err)
		}
		err = svgdom.Write(out, root)
		closeErr := out.Close()
		if err != nil {
			log.Fatalf("pdf2svg: writing %s: %v", outPath, err)
		}
		if closeErr != nil {
			log.Fatalf("pdf2svg: closing %s: %v", outPath, closeErr)
		}

		fmt.Printf("wrote %s\n", outPath)
	}
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// buildCommonStore decodes every font and image resource up front and
// keys them with the "g_" prefix render.storeFor expects for
// document-wide (as opposed to page-local) dependencies.
func buildCommonStore(res resourcesDoc) (mapStore, error) {
	store := mapStore{}
	for name, fd := range res.Fonts {
		font, err := fd.toFont()
		if err != nil {
			return nil, err
		}
		store["g_"+name] = font
	}
	for name, id := range res.Images {
		px, err := id.toPixelData()
		if err != nil {
			return nil, err
		}
		store["g_"+name] = px
	}
	return store, nil
}
