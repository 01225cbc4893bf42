package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texelui/core"
)

// Pane is a stretch-filling container that paints an optional background and
// lays a single child out over its whole rect.
type Pane struct {
	core.BaseWidget
	Style tcell.Style
	child core.Widget
	bgSet bool
}

func NewPane(x, y, w, h int, style tcell.Style) *Pane {
	p := &Pane{Style: style}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

// SetBackground paints the pane with bg.
func (p *Pane) SetBackground(bg tcell.Color) {
	p.Style = p.Style.Background(bg)
	p.bgSet = true
}

// ClearBackground leaves the background to whatever is beneath the pane.
func (p *Pane) ClearBackground() {
	p.Style = p.Style.Background(tcell.ColorDefault)
	p.bgSet = false
}

// Background reports the background color and whether one was set.
func (p *Pane) Background() (tcell.Color, bool) {
	_, bg, _ := p.Style.Decompose()
	return bg, p.bgSet
}

// SetChild replaces the pane's only child and stretches it to fill the pane.
func (p *Pane) SetChild(w core.Widget) {
	p.child = w
	p.layout()
}

func (p *Pane) Child() core.Widget { return p.child }

func (p *Pane) SetPosition(x, y int) {
	p.BaseWidget.SetPosition(x, y)
	p.layout()
}

func (p *Pane) Resize(w, h int) {
	p.BaseWidget.Resize(w, h)
	p.layout()
}

func (p *Pane) layout() {
	if p.child == nil {
		return
	}
	p.child.SetPosition(p.Rect.X, p.Rect.Y)
	p.child.Resize(p.Rect.W, p.Rect.H)
}

func (p *Pane) VisitChildren(fn func(core.Widget)) {
	if p.child != nil {
		fn(p.child)
	}
}

func (p *Pane) Draw(painter *core.Painter) {
	painter.Fill(p.Rect, ' ', p.Style)
	if p.child != nil {
		p.child.Draw(painter)
	}
}
