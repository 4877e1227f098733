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

package gstate

import "testing"

func TestCloneIsolatesFieldWrites(t *testing.T) {
	s := New()
	s.FillColor = "#ff0000"
	s.DashArray = []float64{1, 2, 3}

	clone := s.Clone()
	clone.FillColor = "#00ff00" // a plain field write must not leak back

	if s.FillColor != "#ff0000" {
		t.Errorf("original FillColor mutated: got %q", s.FillColor)
	}
	if clone.FillColor != "#00ff00" {
		t.Errorf("clone FillColor not set: got %q", clone.FillColor)
	}

	// Slices are shared until replaced wholesale (copy-on-write, not
	// copy-on-clone); replacing the whole slice on the clone must not
	// affect the parent.
	clone.DashArray = []float64{9}
	if len(s.DashArray) != 3 {
		t.Errorf("original DashArray mutated by clone field replacement: %v", s.DashArray)
	}
}

func TestDefaultState(t *testing.T) {
	s := New()
	if s.FontDirection != 1 {
		t.Errorf("FontDirection = %d, want 1", s.FontDirection)
	}
	if s.TextHScale != 1 {
		t.Errorf("TextHScale = %v, want 1", s.TextHScale)
	}
	if s.FillColor != "#000000" || s.StrokeColor != "#000000" {
		t.Errorf("default colors = %q/%q, want black/black", s.FillColor, s.StrokeColor)
	}
}
