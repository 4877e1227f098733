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

// Package svgdom is the minimal in-memory DOM the interpreter emits
// into: namespaced element creation, namespaced attribute setting, and
// child appending, plus a streaming serializer. It deliberately knows
// nothing about SVG semantics — the interpreter decides which elements
// and attributes to create.
package svgdom

import (
	"fmt"
	"io"
	"strings"
)

// Namespace URIs used by the renderer's output.
const (
	NSSVG   = "http://www.w3.org/2000/svg"
	NSXML   = "http://www.w3.org/XML/1998/namespace"
	NSXLink = "http://www.w3.org/1999/xlink"
)

// Attr is one namespaced attribute.
type Attr struct {
	NS    string // empty for an unprefixed attribute
	Name  string
	Value string
}

// prefixFor returns the conventional prefix for a well-known namespace,
// or "" for the default (unprefixed) namespace.
func prefixFor(ns string) string {
	switch ns {
	case NSXML:
		return "xml"
	case NSXLink:
		return "xlink"
	default:
		return ""
	}
}

// Node is an SVG element with namespaced attributes, text content and
// element children, in document order.
type Node struct {
	NS       string
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string // leaf text content, e.g. a <tspan>'s glyph run

	parent *Node
}

// NewElement creates a detached element in the given namespace. Callers
// append it into the tree with AppendChild.
func NewElement(ns, name string) *Node {
	return &Node{NS: ns, Name: name}
}

// SetAttr sets (or replaces) a namespaced attribute.
func (n *Node) SetAttr(ns, name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].NS == ns && n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{NS: ns, Name: name, Value: value})
}

// Attr returns the value of a namespaced attribute and whether it was set.
func (n *Node) Attr(ns, name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.NS == ns && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild appends child to n's children, in document order.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild removes child from n's children, if present.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns n's parent, or nil if n is detached or the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// NewSVGRoot creates the root <svg> element with the given pixel size
// and viewBox, per §6: version 1.1, preserveAspectRatio=none.
func NewSVGRoot(width, height float64, viewBoxW, viewBoxH float64) *Node {
	root := NewElement(NSSVG, "svg")
	root.SetAttr("", "version", "1.1")
	root.SetAttr("", "width", fmt.Sprintf("%gpx", width))
	root.SetAttr("", "height", fmt.Sprintf("%gpx", height))
	root.SetAttr("", "preserveAspectRatio", "none")
	root.SetAttr("", "viewBox", fmt.Sprintf("0 0 %g %g", viewBoxW, viewBoxH))
	return root
}

// Write serializes the tree rooted at n to w as XML text. Namespace
// declarations are emitted once, on the root element only, matching
// the single root <svg> this renderer ever produces.
func Write(w io.Writer, root *Node) error {
	buf := &strings.Builder{}
	writeNode(buf, root, true)
	_, err := io.WriteString(w, buf.String())
	return err
}

// String serializes the tree rooted at n and returns it, for tests.
func String(n *Node) string {
	buf := &strings.Builder{}
	writeNode(buf, n, n.Name == "svg")
	return buf.String()
}

func writeNode(buf *strings.Builder, n *Node, isRoot bool) {
	buf.WriteByte('<')
	buf.WriteString(n.Name)

	if isRoot {
		buf.WriteString(` xmlns="`)
		buf.WriteString(NSSVG)
		buf.WriteString(`" xmlns:xml="`)
		buf.WriteString(NSXML)
		buf.WriteString(`" xmlns:xlink="`)
		buf.WriteString(NSXLink)
		buf.WriteByte('"')
	}

	for _, a := range n.Attrs {
		buf.WriteByte(' ')
		if p := prefixFor(a.NS); p != "" {
			buf.WriteString(p)
			buf.WriteByte(':')
		}
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(a.Value))
		buf.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>")
		return
	}

	buf.WriteByte('>')
	if n.Text != "" {
		buf.WriteString(escapeText(n.Text))
	}
	for _, c := range n.Children {
		writeNode(buf, c, false)
	}
	buf.WriteString("</")
	buf.WriteString(n.Name)
	buf.WriteByte('>')
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
