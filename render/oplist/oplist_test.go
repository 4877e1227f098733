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

package oplist

import (
	"testing"

	"seehuhn.de/go/pdfsvg/render/opcode"
)

func opInstr(op opcode.Op) Instr { return Instr{Op: op} }

func TestFlattenTwoSiblingGroups(t *testing.T) {
	// save A restore save B restore -> [group[A], group[B]]
	instrs := []Instr{
		opInstr(opcode.Save),
		opInstr(opcode.Fill), // stand-in for "A"
		opInstr(opcode.Restore),
		opInstr(opcode.Save),
		opInstr(opcode.Stroke), // stand-in for "B"
		opInstr(opcode.Restore),
	}

	tree := Flatten(instrs)
	if len(tree) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(tree))
	}
	for i, want := range []opcode.Op{opcode.Fill, opcode.Stroke} {
		g := tree[i]
		if g.Op != opcode.Group {
			t.Fatalf("node %d: op = %v, want Group", i, g.Op)
		}
		if len(g.Children) != 1 || g.Children[0].Op != want {
			t.Fatalf("node %d children = %+v, want single %v", i, g.Children, want)
		}
	}
}

func TestFlattenNesting(t *testing.T) {
	instrs := []Instr{
		opInstr(opcode.Save),
		opInstr(opcode.Fill),
		opInstr(opcode.Save),
		opInstr(opcode.Stroke),
		opInstr(opcode.Restore),
		opInstr(opcode.Restore),
	}
	tree := Flatten(instrs)
	if len(tree) != 1 || tree[0].Op != opcode.Group {
		t.Fatalf("top level = %+v, want single group", tree)
	}
	inner := tree[0].Children
	if len(inner) != 2 || inner[0].Op != opcode.Fill || inner[1].Op != opcode.Group {
		t.Fatalf("inner children = %+v", inner)
	}
	if len(inner[1].Children) != 1 || inner[1].Children[0].Op != opcode.Stroke {
		t.Fatalf("innermost children = %+v", inner[1].Children)
	}
}

func TestFlattenNoSaveRestore(t *testing.T) {
	instrs := []Instr{opInstr(opcode.Fill), opInstr(opcode.Stroke)}
	tree := Flatten(instrs)
	if len(tree) != 2 {
		t.Fatalf("got %d nodes, want 2", len(tree))
	}
}

func TestFlattenTrailingOpenSave(t *testing.T) {
	// a trailing unmatched save is tolerated: it becomes an open group.
	instrs := []Instr{
		opInstr(opcode.Fill),
		opInstr(opcode.Save),
		opInstr(opcode.Stroke),
	}
	tree := Flatten(instrs)
	if len(tree) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(tree))
	}
	if tree[1].Op != opcode.Group || len(tree[1].Children) != 1 {
		t.Fatalf("trailing group = %+v", tree[1])
	}
}

func TestFlattenUnmatchedRestoreIgnored(t *testing.T) {
	instrs := []Instr{
		opInstr(opcode.Restore),
		opInstr(opcode.Fill),
	}
	tree := Flatten(instrs)
	if len(tree) != 1 || tree[0].Op != opcode.Fill {
		t.Fatalf("got %+v", tree)
	}
}
