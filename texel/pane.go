// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/pane.go
// Summary: A rectangle of the tab hosting one PaneContent inside a titled frame.

package texel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/framegrace/texelpad/texel/theme"
	"github.com/framegrace/texelpad/texelui/core"
	"github.com/framegrace/texelpad/texelui/widgets"
)

// Pane represents a rectangular area on the screen that hosts a PaneContent.
type Pane struct {
	id          uuid.UUID
	content     PaneContent
	ui          *core.UIManager
	frame       *widgets.Border
	rect        core.Rect
	active      bool
	cancelClose func()
}

func newPane(content PaneContent, onCloseRequested func(*Pane)) *Pane {
	p := &Pane{
		id:      uuid.New(),
		content: content,
		ui:      core.NewUIManager(),
		frame:   widgets.NewBorder(0, 0, 0, 0, tcell.StyleDefault),
	}
	minSize := content.MinSize()
	p.frame.MinClient = core.Rect{W: minSize.Cols, H: minSize.Rows}
	p.frame.Title = paneTitle(content)
	p.frame.SetChild(content.Root())
	p.ui.AddWidget(p.frame)
	p.cancelClose = content.OnCloseRequested(func() { onCloseRequested(p) })
	p.applyFrameStyle()
	return p
}

func paneTitle(c PaneContent) string {
	if icon := c.Icon(); icon != "" {
		return icon + " " + c.Title()
	}
	return c.Title()
}

func (p *Pane) ID() uuid.UUID        { return p.id }
func (p *Pane) Content() PaneContent { return p.content }
func (p *Pane) Rect() core.Rect      { return p.rect }
func (p *Pane) IsActive() bool       { return p.active }
func (p *Pane) UI() *core.UIManager  { return p.ui }
func (p *Pane) Title() string        { return p.frame.Title }
func (p *Pane) MinWidth() int        { return p.content.MinSize().Cols + 2 }

func (p *Pane) setRefresh(ch chan<- bool) { p.ui.SetRefreshNotifier(ch) }

func (p *Pane) setRect(r core.Rect) {
	p.rect = r
	p.ui.Resize(r.W, r.H)
	p.frame.SetPosition(0, 0)
	p.frame.Resize(r.W, r.H)
}

// setActive marks the pane active and moves focus into (or out of) its content.
func (p *Pane) setActive(active bool, reason core.FocusReason) {
	p.active = active
	p.applyFrameStyle()
	if active {
		p.content.Focus(reason)
	} else {
		p.content.Focus(core.FocusUnfocused)
	}
	p.ui.InvalidateAll()
}

func (p *Pane) applyFrameStyle() {
	tm := theme.Get()
	col := tm.GetColor("pane", "inactive_border", tcell.ColorGray)
	if p.active {
		col = tm.GetColor("pane", "active_border", tcell.ColorWhite)
	}
	p.frame.Style = tcell.StyleDefault.Foreground(col)
}

// detach drops the close subscription; the pane must not be used afterwards.
func (p *Pane) detach() {
	if p.cancelClose != nil {
		p.cancelClose()
		p.cancelClose = nil
	}
}

// draw blits the pane's frame and content into the tab buffer.
func (p *Pane) draw(painter *core.Painter) {
	buf := p.ui.Render()
	painter.WithClip(p.rect).Blit(p.rect.X, p.rect.Y, buf)
}

// local translates a tab-space mouse event into pane space.
func (p *Pane) local(ev *tcell.EventMouse) *tcell.EventMouse {
	x, y := ev.Position()
	return tcell.NewEventMouse(x-p.rect.X, y-p.rect.Y, ev.Buttons(), ev.Modifiers())
}
