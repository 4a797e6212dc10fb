// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"slices"
	"time"

	"cogentcore.org/lines/scene"
)

// Task is one in-flight animation.
type Task struct {
	// Node is the animated node.
	Node *scene.Node

	// Attr is the animated attribute; "" for a removal.
	Attr string

	// From and To are the start and end attribute values.
	From, To string

	// Start is when the task was requested.
	Start time.Time

	// Duration is how long the task runs.
	Duration time.Duration

	interp func(t float64) string
}

func (tk *Task) isRemove() bool {
	return tk.Attr == ""
}

// step applies the task at the given time, returning true when done.
func (tk *Task) step(now time.Time) bool {
	t := 1.0
	if tk.Duration > 0 {
		t = min(1, float64(now.Sub(tk.Start))/float64(tk.Duration))
	}
	if t < 1 {
		if !tk.isRemove() {
			tk.Node.SetAttr(tk.Attr, tk.interp(CubicInOut(t)))
		}
		return false
	}
	if tk.isRemove() {
		tk.Node.Remove()
	} else {
		tk.Node.SetAttr(tk.Attr, tk.To)
	}
	return true
}

// Scheduler is a [Driver] that time slices animations: the host
// calls [Scheduler.Step] from its frame loop. It is not safe for
// concurrent use; it runs on the same goroutine as the marks using it.
type Scheduler struct {
	// Now returns the current time; [time.Now] if nil.
	Now func() time.Time

	tasks []*Task
}

// NewScheduler returns a new scheduler using [time.Now].
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (sc *Scheduler) now() time.Time {
	if sc.Now != nil {
		return sc.Now()
	}
	return time.Now()
}

func (sc *Scheduler) cancel(match func(tk *Task) bool) {
	sc.tasks = slices.DeleteFunc(sc.tasks, match)
}

func (sc *Scheduler) Animate(n *scene.Node, attr, to string, dur time.Duration) {
	sc.cancel(func(tk *Task) bool { return tk.Node == n && tk.Attr == attr })
	from := n.Attr(attr)
	if dur <= 0 || from == to {
		n.SetAttr(attr, to)
		return
	}
	sc.tasks = append(sc.tasks, &Task{Node: n, Attr: attr, From: from, To: to, Start: sc.now(), Duration: dur, interp: Strings(from, to)})
}

func (sc *Scheduler) Remove(n *scene.Node, dur time.Duration) {
	sc.Cancel(n)
	if dur <= 0 {
		n.Remove()
		return
	}
	sc.tasks = append(sc.tasks, &Task{Node: n, Start: sc.now(), Duration: dur})
}

func (sc *Scheduler) Cancel(n *scene.Node) {
	sc.cancel(func(tk *Task) bool { return tk.Node == n })
}

// Step advances all tasks to the given time, returning the number
// of tasks still in flight.
func (sc *Scheduler) Step(now time.Time) int {
	sc.tasks = slices.DeleteFunc(sc.tasks, func(tk *Task) bool { return tk.step(now) })
	return len(sc.tasks)
}

// Finish runs all tasks to completion.
func (sc *Scheduler) Finish() {
	for _, tk := range sc.tasks {
		tk.Duration = 0
		tk.step(tk.Start)
	}
	sc.tasks = nil
}

// Pending returns the tasks in flight, in request order.
func (sc *Scheduler) Pending() []*Task {
	return slices.Clone(sc.tasks)
}
