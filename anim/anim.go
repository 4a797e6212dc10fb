// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides animation drivers for scene nodes.
// A mark issues declarative requests ("animate attribute A of node N
// to value V over duration D", "remove node N after D") and the driver
// decides how to realize them. A newer request for the same node and
// attribute always replaces the older one, so rapid redraws never
// stack transitions.
package anim

import (
	"time"

	"cogentcore.org/lines/scene"
)

// Driver realizes animation requests on scene nodes.
type Driver interface {
	// Animate interpolates the given attribute of n from its current
	// value to the given value over dur, replacing any in-flight
	// animation of the same attribute.
	Animate(n *scene.Node, attr, to string, dur time.Duration)

	// Remove detaches n from its parent once dur has elapsed,
	// cancelling any other in-flight animations of n.
	Remove(n *scene.Node, dur time.Duration)

	// Cancel stops all in-flight animations of n, leaving the
	// node attributes where they are.
	Cancel(n *scene.Node)
}

// Immediate is a [Driver] that applies every request at once,
// as if all durations were zero.
type Immediate struct{}

func (Immediate) Animate(n *scene.Node, attr, to string, dur time.Duration) {
	n.SetAttr(attr, to)
}

func (Immediate) Remove(n *scene.Node, dur time.Duration) {
	n.Remove()
}

func (Immediate) Cancel(n *scene.Node) {}
