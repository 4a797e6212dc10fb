// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

type listener struct {
	id  uint64
	fun func(ev *Event)
}

// Listeners registers lists of listener functions
// to receive different change kinds.
// Listeners are closures with all context captured,
// registered on specific objects.
// The zero value is ready to use.
type Listeners struct {
	funcs  map[Changes][]listener
	nextID uint64
}

// Add adds a function for the given change kind, returning a function
// that removes it again.
func (ls *Listeners) Add(ch Changes, fun func(ev *Event)) (remove func()) {
	if ls.funcs == nil {
		ls.funcs = make(map[Changes][]listener)
	}
	ls.nextID++
	id := ls.nextID
	ls.funcs[ch] = append(ls.funcs[ch], listener{id: id, fun: fun})
	return func() { ls.remove(ch, id) }
}

func (ls *Listeners) remove(ch Changes, id uint64) {
	lst := ls.funcs[ch]
	for i, l := range lst {
		if l.id == id {
			ls.funcs[ch] = append(lst[:i:i], lst[i+1:]...)
			return
		}
	}
}

// Len returns the number of functions registered for the given change.
func (ls *Listeners) Len(ch Changes) int {
	return len(ls.funcs[ch])
}

// Call calls all functions for given event.
// It goes in _reverse_ order so the last functions added are the first called
// and it stops when the event is marked as Handled. This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev *Event) {
	if ev.IsHandled() {
		return
	}
	lst := ls.funcs[ev.Change]
	// copy so that listeners may remove themselves while being called
	lst = append([]listener(nil), lst...)
	for i := len(lst) - 1; i >= 0; i-- {
		lst[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Send is a convenience for calling a new event of the given kind
// and source.
func (ls *Listeners) Send(ch Changes, src any) {
	ls.Call(NewEvent(ch, src))
}
