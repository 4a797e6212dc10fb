// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"log/slog"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/events"
)

// handlers are the visual updates for each kind of model change.
var handlers = map[events.Changes]func(mk *Mark){
	events.Interpolation:    (*Mark).UpdatePathStyle,
	events.ClosePath:        (*Mark).UpdatePathStyle,
	events.Colors:           (*Mark).ApplyColors,
	events.Fill:             (*Mark).ApplyColors,
	events.Opacity:          (*Mark).ApplyColors,
	events.DataUpdated:      (*Mark).Draw,
	events.StrokeWidth:      (*Mark).ApplyStrokeWidth,
	events.LabelsVisibility: (*Mark).UpdateLegendLabels,
	events.LineStyle:        (*Mark).ApplyLineStyle,
	events.CurvesSubset:     (*Mark).ApplySubset,
	events.Labels:           (*Mark).updateLabelText,
}

// listenModel registers the handlers with the model.
func (mk *Mark) listenModel() {
	for ch, h := range handlers {
		mk.removes = append(mk.removes, mk.Model.OnChange(ch, func(ev *events.Event) {
			mk.recoverFrame(ch.String(), h)
		}))
	}
}

// recoverFrame runs the visual update fun, if the mark has been
// rendered. A panic in fun is logged and the update is skipped.
func (mk *Mark) recoverFrame(name string, fun func(mk *Mark)) {
	if mk.el == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("lines: update skipped", "mark", mk.ID, "update", name, "err", errors.Recovered(r))
		}
	}()
	fun(mk)
}
