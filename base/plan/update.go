// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// The mechanism depends on the use of unique name string identifiers
// to determine whether an element is already present, so that
// elements that survive an update are kept as-is rather than recreated.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Edits records the edits made by [Update].
type Edits struct {
	// Added is the number of elements created.
	Added int

	// Removed is the number of elements destroyed.
	Removed int

	// Moved is the number of surviving elements that changed position.
	Moved int
}

// Changed returns true if any edit was made.
func (ed Edits) Changed() bool {
	return ed.Added+ed.Removed+ed.Moved > 0
}

// Update ensures that the elements of the slice contain
// the elements according to the plan, specified by unique
// element names, with n = total number of items in the target slice.
// If a new item is needed then newFunc is called to create it,
// for given name at given index position.
// If destroy is non-nil, then it is called on any element
// that is being deleted from the slice.
// It returns the updated slice and the edits that were made.
// Duplicate target names are logged and only the first is used.
func Update[T Namer](s []T, n int, name func(i int) string, newFunc func(name string, i int) T, destroy func(e T)) ([]T, Edits) {
	var ed Edits
	names := make([]string, 0, n)
	want := make(map[string]bool, n)
	for i := range n {
		nm := name(i)
		if want[nm] {
			slog.Error("plan.Update: duplicate name", "name", nm)
			continue
		}
		want[nm] = true
		names = append(names, nm)
	}

	r := s
	for i := len(r) - 1; i >= 0; i-- {
		if want[r[i].PlanName()] {
			continue
		}
		ed.Removed++
		if destroy != nil {
			destroy(r[i])
		}
		r = slices.Delete(r, i, i+1)
	}

	// in target order, so everything before i is already in place
	for i, nm := range names {
		ci := -1
		for j := i; j < len(r); j++ {
			if r[j].PlanName() == nm {
				ci = j
				break
			}
		}
		switch {
		case ci < 0:
			ed.Added++
			r = slices.Insert(r, i, newFunc(nm, i))
		case ci != i:
			ed.Moved++
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	return r, ed
}
