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
	"fmt"
	"sync/atomic"
)

// Counters holds the process-wide monotonic mask/shading id counters
// spec.md §3 and §5 describe: shared across every page rendered with
// the same *Counters, so that concatenating several pages' SVGs into
// one document never collides their <defs> ids. A single page's
// Interpreter touches these only from the goroutine that runs it;
// sharing one *Counters across pages rendered concurrently requires
// nothing extra because the increments are atomic.
type Counters struct {
	mask    atomic.Int64
	shading atomic.Int64
}

// NewCounters returns a fresh, zeroed counter set for a new document.
func NewCounters() *Counters {
	return &Counters{}
}

// NextMaskID returns the next unique "maskN" id.
func (c *Counters) NextMaskID() string {
	return fmt.Sprintf("mask%d", c.mask.Add(1)-1)
}

// NextShadingID returns the next unique "shadingN" id.
func (c *Counters) NextShadingID() string {
	return fmt.Sprintf("shading%d", c.shading.Add(1)-1)
}
