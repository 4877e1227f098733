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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pdfsvg/render"
	"seehuhn.de/go/pdfsvg/render/opcode"
)

func rawJSON(t *testing.T, v string) json.RawMessage {
	t.Helper()
	return json.RawMessage(v)
}

func TestDecodeConstructPath(t *testing.T) {
	args, err := decodeArgs(opcode.ConstructPath, []json.RawMessage{
		rawJSON(t, `["rect"]`),
		rawJSON(t, `[0, 0, 10, 20]`),
	})
	require.NoError(t, err)
	require.Len(t, args, 2)

	subops, ok := args[0].([]render.PathSubOp)
	require.True(t, ok)
	require.Equal(t, []render.PathSubOp{render.SubOpRectangle}, subops)

	flat, ok := args[1].([]float64)
	require.True(t, ok)
	require.Equal(t, []float64{0, 0, 10, 20}, flat)
}

func TestDecodeConstructPathUnknownSubOp(t *testing.T) {
	_, err := decodeArgs(opcode.ConstructPath, []json.RawMessage{
		rawJSON(t, `["spiral"]`),
		rawJSON(t, `[]`),
	})
	require.Error(t, err)
}

func TestDecodeShowTextMixedItems(t *testing.T) {
	args, err := decodeArgs(opcode.ShowText, []json.RawMessage{
		rawJSON(t, `[
			{"glyph": {"isSpace": false, "isInFont": true, "char": "A", "width": 500}},
			{"adjustment": -120.5},
			null
		]`),
	})
	require.NoError(t, err)
	require.Len(t, args, 1)

	items, ok := args[0].([]any)
	require.True(t, ok)
	require.Len(t, items, 3)

	glyph, ok := items[0].(render.Glyph)
	require.True(t, ok)
	require.Equal(t, "A", glyph.FontChar)
	require.InDelta(t, 500, glyph.Width, 1e-9)

	adj, ok := items[1].(float64)
	require.True(t, ok)
	require.InDelta(t, -120.5, adj, 1e-9)

	require.Nil(t, items[2])
}

func TestDecodeSetDash(t *testing.T) {
	args, err := decodeArgs(opcode.SetDash, []json.RawMessage{
		rawJSON(t, `[2, 2]`),
		rawJSON(t, `1.5`),
	})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2}, args[0])
	require.InDelta(t, 1.5, args[1].(float64), 1e-9)
}

func TestDecodeSetGStateDashPair(t *testing.T) {
	args, err := decodeArgs(opcode.SetGState, []json.RawMessage{
		rawJSON(t, `"D"`),
		rawJSON(t, `[[3, 1], 0]`),
	})
	require.NoError(t, err)
	require.Equal(t, "D", args[0])

	pair, ok := args[1].([]any)
	require.True(t, ok)
	require.Equal(t, []float64{3, 1}, pair[0])
	require.InDelta(t, 0, pair[1].(float64), 1e-9)
}

func TestDecodeIDAndRestSetFont(t *testing.T) {
	args, err := decodeArgs(opcode.SetFont, []json.RawMessage{
		rawJSON(t, `"g_F1"`),
		rawJSON(t, `12`),
	})
	require.NoError(t, err)
	require.Equal(t, "g_F1", args[0])
	require.InDelta(t, 12, args[1].(float64), 1e-9)
}

func TestToInstrsUnknownOpcode(t *testing.T) {
	_, err := toInstrs([]instrDoc{{Op: "notAnOpcode"}})
	require.Error(t, err)
}

func TestMapStoreGetCallsBackWithStoredValue(t *testing.T) {
	store := mapStore{"g_F1": 42}
	var got any
	store.Get("g_F1", func(obj any) { got = obj })
	require.Equal(t, 42, got)

	var missing any
	called := false
	store.Get("missing", func(obj any) { called = true; missing = obj })
	require.True(t, called)
	require.Nil(t, missing)
}
