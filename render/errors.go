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

import "fmt"

// UnsupportedError reports an input-shape error (spec.md §7): an
// invalid viewport, an unknown gradient/pattern subtype, or an
// unsupported bitmap-backed image mask. Rendering the current page
// halts when this is returned.
type UnsupportedError struct {
	Kind   string
	Detail string
}

func (err *UnsupportedError) Error() string {
	if err.Detail == "" {
		return "unsupported " + err.Kind
	}
	return fmt.Sprintf("unsupported %s: %s", err.Kind, err.Detail)
}

// StackError reports a balanced-stack violation (a "restore" with
// nothing to pop, or save/restore stacks out of step at the end of a
// run). This is a programmer
// error in the operator-list producer and is always fatal.
type StackError struct {
	Op string
}

func (err *StackError) Error() string {
	return "pdfsvg: unbalanced graphics state stack at " + err.Op
}
