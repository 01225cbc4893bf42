// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/tab.go
// Summary: A tab tiles its panes side by side and routes input to the active one.
// Notes: Not safe for concurrent use; drive it from the event loop.

package texel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/internal/logging"
	"github.com/framegrace/texelpad/texelui/core"
)

// Tab owns an ordered row of panes sharing one rectangle.
type Tab struct {
	panes   []*Pane
	active  int
	w, h    int
	events  *EventDispatcher
	refresh chan<- bool
	capture *Pane
	log     *zap.Logger
}

func NewTab() *Tab {
	return &Tab{
		active: -1,
		events: NewEventDispatcher(),
		log:    logging.Named("tab"),
	}
}

// Events exposes the tab's dispatcher for pane lifecycle notifications.
func (t *Tab) Events() *EventDispatcher { return t.events }

// SetRefreshNotifier forwards ch to every pane's UI manager.
func (t *Tab) SetRefreshNotifier(ch chan<- bool) {
	t.refresh = ch
	for _, p := range t.panes {
		p.setRefresh(ch)
	}
}

func (t *Tab) Panes() []*Pane {
	return append([]*Pane(nil), t.panes...)
}

func (t *Tab) Empty() bool { return len(t.panes) == 0 }

// ActivePane returns the focused pane, or nil when the tab is empty.
func (t *Tab) ActivePane() *Pane {
	if t.active < 0 || t.active >= len(t.panes) {
		return nil
	}
	return t.panes[t.active]
}

// AddPane inserts content to the right of the active pane and focuses it.
func (t *Tab) AddPane(content PaneContent) *Pane {
	p := newPane(content, t.onCloseRequested)
	p.setRefresh(t.refresh)

	at := t.active + 1
	t.panes = append(t.panes, nil)
	copy(t.panes[at+1:], t.panes[at:])
	t.panes[at] = p

	t.log.Debug("pane added", zap.String("pane", p.id.String()), zap.String("title", content.Title()))
	t.events.Broadcast(Event{Type: EventPaneAdded, Payload: t.payload(p)})
	t.layout()
	t.activate(at, core.FocusProgrammatic)
	return p
}

func (t *Tab) onCloseRequested(p *Pane) {
	t.log.Debug("close requested", zap.String("pane", p.id.String()))
	t.events.Broadcast(Event{Type: EventPaneCloseRequested, Payload: t.payload(p)})
	t.ClosePane(p.id)
}

// ClosePane removes the pane with id and focuses its neighbour.
func (t *Tab) ClosePane(id uuid.UUID) bool {
	idx := t.indexOf(id)
	if idx < 0 {
		return false
	}
	p := t.panes[idx]
	p.detach()
	if t.capture == p {
		t.capture = nil
	}
	t.panes = append(t.panes[:idx], t.panes[idx+1:]...)

	t.log.Debug("pane closed", zap.String("pane", id.String()), zap.Int("remaining", len(t.panes)))
	t.events.Broadcast(Event{Type: EventPaneClosed, Payload: t.payload(p)})

	wasActive := idx == t.active
	switch {
	case len(t.panes) == 0:
		t.active = -1
	case idx < t.active:
		t.active--
	case wasActive:
		t.active = -1
		t.layout()
		t.activate(min(idx, len(t.panes)-1), core.FocusProgrammatic)
		return true
	}
	t.layout()
	t.requestRefresh()
	return true
}

// Activate focuses the pane with id for reason.
func (t *Tab) Activate(id uuid.UUID, reason core.FocusReason) bool {
	idx := t.indexOf(id)
	if idx < 0 {
		return false
	}
	t.activate(idx, reason)
	return true
}

func (t *Tab) FocusNext() { t.cycle(1) }
func (t *Tab) FocusPrev() { t.cycle(-1) }

func (t *Tab) cycle(step int) {
	n := len(t.panes)
	if n < 2 {
		return
	}
	t.activate(((t.active+step)%n+n)%n, core.FocusKeyboard)
}

// FocusAt activates the pane under (x, y).
func (t *Tab) FocusAt(x, y int) bool {
	p := t.paneAt(x, y)
	if p == nil {
		return false
	}
	if !p.active {
		t.Activate(p.id, core.FocusPointer)
	}
	return true
}

func (t *Tab) activate(idx int, reason core.FocusReason) {
	if idx < 0 || idx >= len(t.panes) {
		return
	}
	if prev := t.ActivePane(); prev != nil && idx != t.active {
		prev.setActive(false, core.FocusUnfocused)
	}
	t.active = idx
	p := t.panes[idx]
	p.setActive(true, reason)
	t.events.Broadcast(Event{Type: EventPaneActiveChanged, Payload: t.payload(p)})
	t.requestRefresh()
}

// UpdateSettings fans new settings out to every pane content.
func (t *Tab) UpdateSettings(s *config.Settings) {
	for _, p := range t.panes {
		p.content.UpdateSettings(s)
		p.applyFrameStyle()
		p.ui.InvalidateAll()
	}
	t.events.Broadcast(Event{Type: EventSettingsChanged, Payload: s})
	t.requestRefresh()
}

func (t *Tab) Resize(w, h int) {
	t.w, t.h = max(w, 0), max(h, 0)
	t.layout()
}

func (t *Tab) Size() (int, int) { return t.w, t.h }

func (t *Tab) layout() {
	mins := make([]int, len(t.panes))
	for i, p := range t.panes {
		mins[i] = p.MinWidth()
	}
	x := 0
	for i, w := range distribute(t.w, mins) {
		t.panes[i].setRect(core.Rect{X: x, Y: 0, W: w, H: t.h})
		x += w
	}
}

// distribute splits total columns across panes as evenly as possible, giving
// any pane whose minimum exceeds its share exactly its minimum first.
// Leftover columns go to the leftmost flexible panes.
func distribute(total int, mins []int) []int {
	n := len(mins)
	widths := make([]int, n)
	fixed := make([]bool, n)
	remaining, free := total, n
	for changed := true; changed && free > 0; {
		changed = false
		share := max(remaining, 0) / free
		for i, m := range mins {
			if !fixed[i] && m > share {
				widths[i] = m
				fixed[i] = true
				remaining -= m
				free--
				changed = true
			}
		}
	}
	if free == 0 {
		return widths
	}
	remaining = max(remaining, 0)
	share, extra := remaining/free, remaining%free
	for i := range widths {
		if fixed[i] {
			continue
		}
		widths[i] = share
		if extra > 0 {
			widths[i]++
			extra--
		}
	}
	return widths
}

// Render composes every pane into a w×h buffer.
func (t *Tab) Render() [][]core.Cell {
	buf := core.NewBuffer(t.w, t.h, tcell.StyleDefault)
	painter := core.NewPainter(buf, core.Rect{W: t.w, H: t.h})
	for _, p := range t.panes {
		p.draw(painter)
	}
	return buf
}

func (t *Tab) HandleKey(ev *tcell.EventKey) bool {
	p := t.ActivePane()
	if p == nil {
		return false
	}
	return p.ui.HandleKey(ev)
}

func (t *Tab) HandlePaste(text string) bool {
	p := t.ActivePane()
	if p == nil {
		return false
	}
	return p.ui.HandlePaste(text)
}

// HandleMouse activates the clicked pane and forwards the event in pane
// coordinates. A drag stays with the pane it started in.
func (t *Tab) HandleMouse(ev *tcell.EventMouse) bool {
	down := ev.Buttons()&tcell.Button1 != 0
	if t.capture != nil {
		p := t.capture
		if !down {
			t.capture = nil
		}
		return p.ui.HandleMouse(p.local(ev))
	}

	x, y := ev.Position()
	p := t.paneAt(x, y)
	if p == nil {
		return false
	}
	if down {
		t.FocusAt(x, y)
		t.capture = p
	}
	return p.ui.HandleMouse(p.local(ev))
}

func (t *Tab) paneAt(x, y int) *Pane {
	for _, p := range t.panes {
		if p.rect.Contains(x, y) {
			return p
		}
	}
	return nil
}

func (t *Tab) indexOf(id uuid.UUID) int {
	for i, p := range t.panes {
		if p.id == id {
			return i
		}
	}
	return -1
}

func (t *Tab) payload(p *Pane) PanePayload {
	return PanePayload{ID: p.id, Title: p.content.Title()}
}

func (t *Tab) requestRefresh() {
	if t.refresh == nil {
		return
	}
	select {
	case t.refresh <- true:
	default:
	}
}
