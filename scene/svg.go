// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"encoding/xml"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

// SVGString returns the SVG markup for n and its descendants.
func (n *Node) SVGString() string {
	var b strings.Builder
	n.WriteSVG(&b)
	return b.String()
}

// WriteSVG writes the SVG markup for n and its descendants.
// Attributes and style properties are written in sorted order,
// so that identical trees produce identical output.
func (n *Node) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.writeSVG(bw)
	return bw.Flush()
}

// SaveSVG writes the SVG markup for n to the given file.
func (n *Node) SaveSVG(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := n.WriteSVG(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func (n *Node) writeSVG(w *bufio.Writer) {
	w.WriteByte('<')
	w.WriteString(n.Tag)
	if n.Tag == "svg" && !n.HasAttr("xmlns") {
		w.WriteString(` xmlns="http://www.w3.org/2000/svg"`)
	}
	for _, k := range slices.Sorted(maps.Keys(n.attrs)) {
		writeAttr(w, k, n.attrs[k])
	}
	if len(n.styles) > 0 {
		var sb strings.Builder
		for _, k := range slices.Sorted(maps.Keys(n.styles)) {
			sb.WriteString(k)
			sb.WriteByte(':')
			sb.WriteString(n.styles[k])
			sb.WriteByte(';')
		}
		writeAttr(w, "style", sb.String())
	}
	if len(n.Children) == 0 && n.Text == "" {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	xml.EscapeText(w, []byte(n.Text))
	for _, c := range n.Children {
		c.writeSVG(w)
	}
	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteByte('>')
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}
