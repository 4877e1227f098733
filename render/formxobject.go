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

// opFormXObjectBegin composes a 6-element matrix into the CTM via the
// same path as the transform opcode, per spec.md §4.10. It deliberately
// does not call doSave: the operator-list producer is expected to have
// already emitted a save, per spec.md §9's open question.
func (ip *Interpreter) opFormXObjectBegin(args []any) error {
	if len(args) < 6 {
		return nil
	}
	return ip.opTransform(args[:6])
}
