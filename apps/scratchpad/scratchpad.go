// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/scratchpad/scratchpad.go
// Summary: A blank writable text area that can sit next to terminal panes.

package scratchpad

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/internal/theming"
	"github.com/framegrace/texelpad/texel"
	"github.com/framegrace/texelpad/texelui/core"
	"github.com/framegrace/texelpad/texelui/widgets"
)

// Glyph is the "quick note" icon shown in pane chrome.
const Glyph = "\ue70b"

// Scratchpad is pane content made of a container holding one text box.
type Scratchpad struct {
	root           *widgets.Pane
	box            *widgets.TextArea
	closeRequested texel.CloseEvent
}

var _ texel.PaneContent = (*Scratchpad)(nil)

// clip is shared by every scratchpad so text moves between panes even
// without a desktop clipboard.
var clip widgets.Clipboard = &widgets.SystemClipboard{}

// New builds the widget tree. The container takes the theme's unfocused
// border color as its background; without that resource it stays unset.
func New() *Scratchpad {
	root := widgets.NewPane(0, 0, 0, 0, tcell.StyleDefault)
	if bg, ok := theming.ForApp("scratchpad").Lookup("pane", "unfocused_border"); ok {
		root.SetBackground(bg)
	}

	box := widgets.NewTextArea(0, 0, 0, 0)
	box.WordWrap = true
	box.Margin = core.UniformInsets(1)
	box.ScrollIndicators = true
	box.Clipboard = clip
	root.SetChild(box)

	return &Scratchpad{root: root, box: box}
}

// UpdateSettings ignores settings changes; the scratchpad has none of its own.
func (s *Scratchpad) UpdateSettings(*config.Settings) {}

// Root returns the container holding the text box.
func (s *Scratchpad) Root() core.Widget { return s.root }

// MinSize is one cell.
func (s *Scratchpad) MinSize() texel.Size { return texel.Size{Cols: 1, Rows: 1} }

// Focus hands focus to the text box with reason. FocusUnfocused blurs it.
func (s *Scratchpad) Focus(reason core.FocusReason) { s.box.FocusWithReason(reason) }

// Close asks the host to close the pane. It raises the event on every call.
func (s *Scratchpad) Close() { s.closeRequested.Raise() }

// OnCloseRequested subscribes fn to close requests and returns the unsubscribe func.
func (s *Scratchpad) OnCloseRequested(fn func()) func() { return s.closeRequested.Add(fn) }

// NewTerminalArgs returns nil: no terminal is spawned next to a scratchpad.
func (s *Scratchpad) NewTerminalArgs(asClone bool) *texel.TerminalArgs { return nil }

// Icon returns Glyph.
func (s *Scratchpad) Icon() string { return Glyph }

// Title is always "Scratchpad".
func (s *Scratchpad) Title() string { return "Scratchpad" }
