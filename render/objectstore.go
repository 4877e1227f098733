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
	"strings"
	"sync"

	"seehuhn.de/go/pdfsvg/render/opcode"
	"seehuhn.de/go/pdfsvg/render/oplist"
)

// ObjectStore is the external collaborator spec.md §1 calls "two
// asynchronous key->value dictionaries": Get resolves id and invokes cb
// exactly once, possibly on another goroutine, possibly later.
type ObjectStore interface {
	Get(id string, cb func(obj any))
}

// storeFor picks the common (document-wide) store for ids prefixed
// "g_", the page-local store otherwise, per spec.md §6.
func storeFor(id string, common, page ObjectStore) ObjectStore {
	if strings.HasPrefix(id, "g_") {
		return common
	}
	return page
}

// resolveSync blocks until the store's callback for id has run and
// returns the value it received; the bool is false when that value is
// nil. PreloadDependencies calls it for every "dependency" id, and
// Interpreter.lookupDependency for ids the barrier did not preload.
func resolveSync(id string, common, page ObjectStore) (any, bool) {
	store := storeFor(id, common, page)
	var (
		result any
		found  bool
	)
	var wg sync.WaitGroup
	wg.Add(1)
	store.Get(id, func(obj any) {
		result, found = obj, obj != nil
		wg.Done()
	})
	wg.Wait()
	return result, found
}

// CollectDependencyIDs walks the flattened operator tree (including
// nested groups) and returns every object id referenced by a
// "dependency" opcode, for the preload barrier.
func CollectDependencyIDs(nodes []*oplist.Node) []string {
	var ids []string
	var walk func([]*oplist.Node)
	walk = func(ns []*oplist.Node) {
		for _, n := range ns {
			if len(n.Children) > 0 {
				walk(n.Children)
				continue
			}
			if id, ok := dependencyID(n.Instr); ok {
				ids = append(ids, id)
			}
		}
	}
	walk(nodes)
	return ids
}

func dependencyID(instr oplist.Instr) (string, bool) {
	if instr.Op != opcode.Dependency || len(instr.Args) == 0 {
		return "", false
	}
	id, ok := instr.Args[0].(string)
	return id, ok
}

// PreloadDependencies blocks until every object referenced by a
// "dependency" opcode in nodes has resolved, returning the resolved
// values keyed by id. This is the join described in spec.md §5: the
// interpreter only starts once this barrier completes.
func PreloadDependencies(nodes []*oplist.Node, common, page ObjectStore) map[string]any {
	ids := CollectDependencyIDs(nodes)
	results := make(map[string]any, len(ids))
	if len(ids) == 0 {
		return results
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			obj, _ := resolveSync(id, common, page)
			mu.Lock()
			results[id] = obj
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return results
}
