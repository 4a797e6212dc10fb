// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the property change notifications exchanged
// between a data model, its scales, and the views that render them.
package events

// Event is a single change notification.
type Event struct {
	// Change is the kind of change.
	Change Changes

	// Source is the object whose state changed.
	Source any

	handled bool
}

// NewEvent returns a new event of the given kind for the given source.
func NewEvent(ch Changes, src any) *Event {
	return &Event{Change: ch, Source: src}
}

// SetHandled marks the event as handled, stopping further listeners.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}
