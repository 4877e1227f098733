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

// Package oplist turns the flat (fnArray, argsArray) operator list into
// a tree in which every balanced save/restore range becomes a synthetic
// "group" node (opcode.Group), per spec.md §4.1.
package oplist

import "seehuhn.de/go/pdfsvg/render/opcode"

// Instr is one operator-list entry: an opcode plus its arguments. Args
// layouts are opcode-specific; the interpreter knows how to unpack them.
type Instr struct {
	Op   opcode.Op
	Args []any
}

// Node is either a leaf Instr (Children == nil) or a synthetic group
// (Op == opcode.Group) wrapping a save/restore range.
type Node struct {
	Instr
	Children []*Node
}

// Flatten converts a flat instruction list into a tree. save/restore
// tokens themselves do not appear in the output; a Group node wraps
// their range instead.
//
// Trailing unmatched "save"s are tolerated: each becomes an open group
// that implicitly closes at the end of input, matching the policy
// described in spec.md §4.1 for a producer that is expected to emit
// balanced streams but whose tail may be truncated.
func Flatten(instrs []Instr) []*Node {
	type frame struct {
		out *[]*Node
	}

	var root []*Node
	stack := []frame{{out: &root}}

	for _, instr := range instrs {
		switch instr.Op {
		case opcode.Save:
			group := &Node{Instr: Instr{Op: opcode.Group}}
			*stack[len(stack)-1].out = append(*stack[len(stack)-1].out, group)
			stack = append(stack, frame{out: &group.Children})
		case opcode.Restore:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			// An unmatched restore (pop on the root frame) is a
			// balanced-stack violation elsewhere in the pipeline; the
			// flattener itself stays tolerant and simply drops it,
			// since the interpreter is the layer that treats stack
			// underflow as fatal (spec.md §7).
		default:
			top := stack[len(stack)-1]
			node := &Node{Instr: instr}
			*top.out = append(*top.out, node)
		}
	}

	return root
}
