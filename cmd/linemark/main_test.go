// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
curves:
  - name: a
    x: [0, 1, 2, 3, 4]
    y: [0, 1, null, 3, 4]
  - name: b
    x: [0, 1, 2, 3, 4]
    y: [4, 3, 2, 1, 0]
labels: [up, down]
`

func writeModel(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(testModel), 0o666))
	return fn
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"-q", "--width", "100", "--height", "100"}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRender(t *testing.T) {
	fn := writeModel(t)
	run(t, "render", fn)
	b, err := os.ReadFile(svgName(fn))
	require.NoError(t, err)
	svg := string(b)
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, svg, `id="curve1"`)
	assert.Contains(t, svg, `id="curve2"`)
	assert.Contains(t, svg, `class="legendtext"`)
	assert.Contains(t, svg, ">down</text>")
	assert.Equal(t, 2, strings.Count(svg, `class="line"`))
}

func TestRenderStdout(t *testing.T) {
	fn := writeModel(t)
	out := run(t, "render", "-o", "-", fn)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, ">up</text>")
	assert.NoFileExists(t, svgName(fn))
}

func TestWatch(t *testing.T) {
	fn := writeModel(t)
	out := svgName(fn)
	o := &options{q: true, width: 100, height: 100}
	require.NoError(t, o.setup())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- o.watch(ctx, fn, out, &bytes.Buffer{}) }()

	updated := strings.Replace(testModel, "labels: [up, down]", "labels: [rise, fall]", 1)
	assert.Eventually(t, func() bool {
		// rewrite until the watcher is running and picks the change up
		if err := os.WriteFile(fn, []byte(updated), 0o666); err != nil {
			return false
		}
		b, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(b), ">fall</text>")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestSelect(t *testing.T) {
	fn := writeModel(t)
	out := run(t, "select", "point", fn, "50")
	assert.Contains(t, out, "indices: [2]")

	out = run(t, "select", "point", fn, "-20")
	assert.Contains(t, out, "indices: [0]")

	out = run(t, "select", "range", fn, "-10", "500")
	assert.Contains(t, out, "indices: [0, 4]")

	out = run(t, "select", "lasso", fn, "l1", "-5,-5", "105,-5", "105,105", "-5,105")
	assert.Contains(t, out, "inside: true")
	assert.Contains(t, out, "lasso: l1")

	out = run(t, "select", "brush", fn, "1", "3")
	assert.Contains(t, out, "indices: [1, 3]")
	assert.Contains(t, out, "value: 3")
}

func TestBadModel(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("line_style: wavy\n"), 0o666))
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-q", "render", fn})
	assert.Error(t, cmd.Execute())
}
