// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/content.go
// Summary: Capability interface every pane content kind implements.
// Usage: Panes host a PaneContent; the registry builds them by name.

package texel

import (
	"sync"

	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/texelui/core"
)

// Size is a width/height pair in cells.
type Size struct {
	Cols, Rows int
}

// TerminalArgs describes how to launch (or relaunch) a terminal session.
type TerminalArgs struct {
	Commandline       string
	StartingDirectory string
	Title             string
	Profile           string
}

// PaneContent is what a pane displays: a terminal, a scratchpad, a settings
// page. The host calls every method on its event loop.
type PaneContent interface {
	// UpdateSettings is called after the settings file changes.
	UpdateSettings(settings *config.Settings)
	// Root is the widget the host places in the pane.
	Root() core.Widget
	// MinSize is the smallest interior the content accepts.
	MinSize() Size
	// Focus moves keyboard focus into the content.
	Focus(reason core.FocusReason)
	// Close asks the owner to close the pane; the owner decides.
	Close()
	// NewTerminalArgs returns the arguments to recreate this content as a
	// terminal, or nil if the content cannot be restored as one.
	NewTerminalArgs(asClone bool) *TerminalArgs
	// Icon is a glyph shown in pane and tab chrome.
	Icon() string
	Title() string
	// OnCloseRequested subscribes fn to close requests. The returned func
	// removes the subscription.
	OnCloseRequested(fn func()) (cancel func())
}

// CloseEvent is a multicast "close requested" notification. The zero value is
// ready to use.
type CloseEvent struct {
	mu       sync.Mutex
	next     uint64
	handlers []closeHandler
}

type closeHandler struct {
	token uint64
	fn    func()
}

// Add registers fn and returns a func that removes it again.
func (e *CloseEvent) Add(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	e.next++
	token := e.next
	e.handlers = append(e.handlers, closeHandler{token: token, fn: fn})
	e.mu.Unlock()
	return func() { e.remove(token) }
}

func (e *CloseEvent) remove(token uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, h := range e.handlers {
		if h.token == token {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Raise invokes every handler once, in subscription order. Handlers may
// unsubscribe while being raised.
func (e *CloseEvent) Raise() {
	e.mu.Lock()
	handlers := append([]closeHandler(nil), e.handlers...)
	e.mu.Unlock()
	for _, h := range handlers {
		h.fn()
	}
}

// Len reports the number of subscribed handlers.
func (e *CloseEvent) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
