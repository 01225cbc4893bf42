package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/framegrace/texelpad/texelui/core"
)

func TestPaneStretchesChild(t *testing.T) {
	p := NewPane(0, 0, 0, 0, tcell.StyleDefault)
	ta := NewTextArea(0, 0, 0, 0)
	p.SetChild(ta)

	p.SetPosition(3, 2)
	p.Resize(12, 6)

	x, y := ta.Position()
	w, h := ta.Size()
	assert.Equal(t, [4]int{3, 2, 12, 6}, [4]int{x, y, w, h})

	var seen []core.Widget
	p.VisitChildren(func(w core.Widget) { seen = append(seen, w) })
	assert.Equal(t, []core.Widget{ta}, seen)
}

func TestPaneBackground(t *testing.T) {
	p := NewPane(0, 0, 3, 1, tcell.StyleDefault)
	_, ok := p.Background()
	assert.False(t, ok)

	p.SetBackground(tcell.ColorOlive)
	bg, ok := p.Background()
	assert.True(t, ok)
	assert.Equal(t, tcell.ColorOlive, bg)

	buf := core.NewBuffer(3, 1, tcell.StyleDefault)
	p.Draw(core.NewPainter(buf, core.Rect{W: 3, H: 1}))
	_, cellBg, _ := buf[0][1].Style.Decompose()
	assert.Equal(t, tcell.ColorOlive, cellBg)

	p.ClearBackground()
	_, ok = p.Background()
	assert.False(t, ok)
}

func TestBorderClampsClientToMinimum(t *testing.T) {
	b := NewBorder(0, 0, 2, 2, tcell.StyleDefault)
	b.MinClient = core.Rect{W: 1, H: 1}
	ta := NewTextArea(0, 0, 0, 0)
	b.SetChild(ta)

	w, h := ta.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestBorderDrawsTitle(t *testing.T) {
	b := NewBorder(0, 0, 12, 3, tcell.StyleDefault)
	b.Title = "pad"
	buf := core.NewBuffer(12, 3, tcell.StyleDefault)
	b.Draw(core.NewPainter(buf, core.Rect{W: 12, H: 3}))

	assert.Equal(t, "┌─ pad ────┐", rowText(buf[0]))
	assert.Equal(t, "└──────────┘", rowText(buf[2]))
}
