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

// opSetGState applies the ExtGState dictionary entries named in
// spec.md §4.8. Args is a flat (key, value) sequence; RI and FL are
// recognized but ignored, unknown keys warn and are skipped.
func (ip *Interpreter) opSetGState(args []any) error {
	for i := 0; i+1 < len(args); i += 2 {
		key, _ := args[i].(string)
		val := args[i+1]
		switch key {
		case "LW":
			ip.state.LineWidth = toF(val)
		case "LC":
			ip.state.LineCap = lineCapFromInt(int(toF(val)))
		case "LJ":
			ip.state.LineJoin = lineJoinFromInt(int(toF(val)))
		case "ML":
			ip.state.MiterLimit = toF(val)
		case "D":
			if pair, ok := val.([]any); ok && len(pair) == 2 {
				ip.opSetDash(pair)
			}
		case "RI", "FL":
			// ignored: rendering intent and flatness have no SVG analog.
		case "Font":
			if pair, ok := val.([]any); ok && len(pair) == 2 {
				if err := ip.opSetFont(pair); err != nil {
					return err
				}
			}
		case "CA":
			ip.state.StrokeAlpha = toF(val)
		case "ca":
			ip.state.FillAlpha = toF(val)
		default:
			ip.opts.warn("pdfsvg: unimplemented gstate key %q, skipping", key)
		}
	}
	return nil
}
