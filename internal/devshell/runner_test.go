// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Exercises the shell loop against a tcell simulation screen.
// Usage: Executed during `go test` to guard against regressions.

package devshell_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelpad/apps/scratchpad"
	"github.com/framegrace/texelpad/internal/devshell"
	"github.com/framegrace/texelpad/registry"
	"github.com/framegrace/texelpad/texel"
)

type harness struct {
	sim    tcell.SimulationScreen
	shell  *devshell.Shell
	done   chan error
	cancel context.CancelFunc
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.RegisterBuiltIn(scratchpad.Manifest(), func() texel.PaneContent {
		return scratchpad.New()
	}))
	return reg
}

func start(t *testing.T, opts devshell.Options) *harness {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) { return sim, nil })
	t.Cleanup(func() { devshell.SetScreenFactory(nil) })

	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		sim:    sim,
		shell:  devshell.New(newRegistry(t), opts),
		done:   make(chan error, 1),
		cancel: cancel,
	}
	go func() { h.done <- h.shell.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-h.done:
		case <-time.After(2 * time.Second):
		}
	})

	h.waitFor(t, "pane title", func() bool { return strings.Contains(h.row(t, 0), "Scratchpad") })
	return h
}

// row reads screen row y on the event loop, so it never overlaps Init or Show.
func (h *harness) row(t *testing.T, y int) string {
	t.Helper()
	var b strings.Builder
	h.onLoop(t, func() {
		w, _ := h.sim.Size()
		for x := 0; x < w; x++ {
			r, _, _, _ := h.sim.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
	})
	return b.String()
}

func (h *harness) waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func (h *harness) waitExit(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not exit")
		return nil
	}
}

// onLoop runs fn on the shell's event loop and waits for it.
func (h *harness) onLoop(t *testing.T, fn func()) {
	t.Helper()
	ran := make(chan struct{})
	h.shell.Post(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("posted func did not run")
	}
}

func TestShellTypingReachesScratchpad(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad", Panes: 1})

	h.sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	h.sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)

	// border row, margin row, then text
	h.waitFor(t, "typed text", func() bool { return strings.HasPrefix(h.row(t, 2), "│ hi") })
}

func TestShellOpensConfiguredPaneCount(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad", Panes: 2})

	var count int
	h.onLoop(t, func() { count = len(h.shell.Tab().Panes()) })
	require.Equal(t, 2, count)
	h.waitFor(t, "two titles", func() bool { return strings.Count(h.row(t, 0), "Scratchpad") == 2 })
}

func TestShellCtrlNAddsPane(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad", Panes: 1})

	h.sim.InjectKey(tcell.KeyCtrlN, 0, tcell.ModCtrl)
	h.waitFor(t, "second pane", func() bool { return strings.Count(h.row(t, 0), "Scratchpad") == 2 })
}

func TestShellClosingLastPaneExits(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad", Panes: 2})

	h.sim.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)
	h.sim.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)

	require.NoError(t, h.waitExit(t))
}

func TestShellCtrlQQuits(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad"})

	h.sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	require.NoError(t, h.waitExit(t))
}

func TestShellStopsWhenContextDone(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad"})

	h.cancel()

	require.NoError(t, h.waitExit(t))
}

func TestShellAltArrowsCycleFocus(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad", Panes: 2})

	var before int
	h.onLoop(t, func() { before = h.shell.Tab().ActivePane().Rect().X })
	h.sim.InjectKey(tcell.KeyLeft, 0, tcell.ModAlt)

	h.waitFor(t, "focus move", func() bool {
		var now int
		h.onLoop(t, func() { now = h.shell.Tab().ActivePane().Rect().X })
		return now != before
	})
}

func TestShellRecoversFromPanic(t *testing.T) {
	h := start(t, devshell.Options{DefaultApp: "scratchpad"})

	h.shell.Post(func() { panic("boom") })

	err := h.waitExit(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestShellUnknownAppFails(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) { return sim, nil })
	t.Cleanup(func() { devshell.SetScreenFactory(nil) })

	shell := devshell.New(newRegistry(t), devshell.Options{DefaultApp: "nope"})
	err := shell.Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")
}
