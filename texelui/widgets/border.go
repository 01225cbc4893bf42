package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texelui/core"
)

// Border draws a border around its Rect and can optionally have a child rendered inside.
type Border struct {
	core.BaseWidget
	Style   tcell.Style
	Charset [6]rune // h, v, tl, tr, bl, br
	Child   core.Widget
	// Title is drawn into the top edge, left aligned after the corner.
	Title string
	// MinClient is the smallest client area handed to the child; a child
	// larger than the border is clipped when drawn.
	MinClient core.Rect
}

func NewBorder(x, y, w, h int, style tcell.Style) *Border {
	b := &Border{Style: style}
	b.Charset = [6]rune{'─', '│', '┌', '┐', '└', '┘'}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	cr := core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
	if cr.W < b.MinClient.W {
		cr.W = b.MinClient.W
	}
	if cr.H < b.MinClient.H {
		cr.H = b.MinClient.H
	}
	if cr.W < 0 {
		cr.W = 0
	}
	if cr.H < 0 {
		cr.H = 0
	}
	return cr
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layout()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layout()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layout()
}

func (b *Border) layout() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

func (b *Border) VisitChildren(fn func(core.Widget)) {
	if b.Child != nil {
		fn(b.Child)
	}
}

func (b *Border) Draw(p *core.Painter) {
	p.DrawBorder(b.Rect, b.Style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		title := p.WithClip(core.Rect{X: b.Rect.X + 1, Y: b.Rect.Y, W: b.Rect.W - 2, H: 1})
		title.DrawText(b.Rect.X+2, b.Rect.Y, " "+b.Title+" ", b.Style)
	}
	if b.Child != nil {
		inner := p
		if b.Rect.W >= 2 && b.Rect.H >= 2 {
			inner = p.WithClip(core.Rect{X: b.Rect.X + 1, Y: b.Rect.Y + 1, W: b.Rect.W - 2, H: b.Rect.H - 2})
		}
		b.Child.Draw(inner)
	}
}
