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

package main

// mapStore is the simplest possible render.ObjectStore: every value it
// will ever hold is already known (decoded from the JSON document up
// front), so Get always calls back immediately on the caller's
// goroutine. Real drivers that stream fonts/images off disk or over
// the network would resolve asynchronously instead; spec.md §1 only
// requires that Get invoke cb exactly once, eventually.
type mapStore map[string]any

func (s mapStore) Get(id string, cb func(obj any)) {
	cb(s[id])
}
