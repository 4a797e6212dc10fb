// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a retained tree of drawing elements
// (groups, paths, lines and text) whose attributes and styles are
// updated in place by marks, and which can be written out as SVG.
package scene

import (
	"slices"
	"strings"
)

// Node is a single element within a scene tree.
type Node struct {
	// Tag is the SVG element name, such as g, path, line or text.
	Tag string

	// Key is the identity of the datum bound to this node,
	// used for keyed updates of node lists.
	Key string

	// Text is the text content, for text elements.
	Text string

	// Parent is the node containing this one; nil for the root
	// and for detached nodes.
	Parent *Node

	// Children are the child nodes, in drawing order.
	Children []*Node

	attrs  map[string]string
	styles map[string]string
}

// New returns a new detached node with the given tag and class.
func New(tag, class string) *Node {
	n := &Node{Tag: tag}
	if class != "" {
		n.SetAttr("class", class)
	}
	return n
}

// PlanName returns the node key, so that node lists can be
// updated with plan.Update.
func (n *Node) PlanName() string {
	return n.Key
}

// Append adds a new child with the given tag and class.
func (n *Node) Append(tag, class string) *Node {
	c := New(tag, class)
	n.AppendChild(c)
	return c
}

// AppendChild adds the given node as the last child,
// detaching it from any previous parent.
func (n *Node) AppendChild(c *Node) {
	c.Remove()
	c.Parent = n
	n.Children = append(n.Children, c)
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.Parent == nil {
		return
	}
	p := n.Parent
	if i := slices.Index(p.Children, n); i >= 0 {
		p.Children = slices.Delete(p.Children, i, i+1)
	}
	n.Parent = nil
}

// Attached returns whether the node is part of a tree rooted at root.
func (n *Node) Attached(root *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, returning the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	return n
}

// Attr returns the value of an attribute, "" if unset.
func (n *Node) Attr(name string) string {
	return n.attrs[name]
}

// HasAttr returns whether the attribute is set.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// SetStyle sets an inline style property, returning the node for chaining.
func (n *Node) SetStyle(name, value string) *Node {
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[name] = value
	return n
}

// Style returns the value of an inline style property, "" if unset.
func (n *Node) Style(name string) string {
	return n.styles[name]
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return n.Attr("id")
}

// HasClass returns whether the class attribute contains the given class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(strings.Fields(n.Attr("class")), class)
}

// Hidden returns whether the display attribute is none.
func (n *Node) Hidden() bool {
	return n.Attr("display") == "none"
}

// SetDisplay sets the display attribute to inline or none.
func (n *Node) SetDisplay(visible bool) *Node {
	if visible {
		return n.SetAttr("display", "inline")
	}
	return n.SetAttr("display", "none")
}

// Walk calls fun for n and all its descendants in depth first order,
// not descending below nodes for which fun returns false.
func (n *Node) Walk(fun func(c *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fun)
	}
}

// SelectAll returns all descendants of n (excluding n) having the given class.
func (n *Node) SelectAll(class string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		c.Walk(func(d *Node) bool {
			if d.HasClass(class) {
				res = append(res, d)
			}
			return true
		})
	}
	return res
}

// Select returns the first descendant of n with the given class, or nil.
func (n *Node) Select(class string) *Node {
	var res *Node
	for _, c := range n.Children {
		c.Walk(func(d *Node) bool {
			if res != nil {
				return false
			}
			if d.HasClass(class) {
				res = d
				return false
			}
			return true
		})
		if res != nil {
			break
		}
	}
	return res
}

// SelectTag returns the first direct child of n with the given tag, or nil.
func (n *Node) SelectTag(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindID returns the node with the given id at or below n, or nil.
func (n *Node) FindID(id string) *Node {
	var res *Node
	n.Walk(func(d *Node) bool {
		if res != nil {
			return false
		}
		if d.ID() == id {
			res = d
			return false
		}
		return true
	})
	return res
}
