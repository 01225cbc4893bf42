package core_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texelui/core"
	"github.com/framegrace/texelpad/texelui/widgets"
)

func TestUIManagerRendersPaneAndTextArea(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(20, 5)

	pane := widgets.NewPane(0, 0, 20, 5, tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	ta := widgets.NewTextArea(0, 0, 0, 0)
	pane.SetChild(ta)
	ui.AddWidget(pane)
	ui.Focus(ta)

	buf := ui.Render()
	if len(buf) != 5 || len(buf[0]) != 20 {
		t.Fatalf("unexpected buffer size %dx%d", len(buf[0]), len(buf))
	}
}

type miniWidget struct {
	core.BaseWidget
	toggled bool
}

func (m *miniWidget) Draw(p *core.Painter) {
	x, y := m.Position()
	w, h := m.Size()
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			ch := 'X'
			if m.toggled {
				ch = 'Y'
			}
			p.SetCell(x+xx, y+yy, ch, tcell.StyleDefault)
		}
	}
}

func (m *miniWidget) HandleKey(ev *tcell.EventKey) bool { return true }

func TestUIManagerTypingReachesFocusedWidget(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 4)
	b := widgets.NewBorder(0, 0, 10, 4, tcell.StyleDefault)
	ta := widgets.NewTextArea(0, 0, 0, 0)
	b.SetChild(ta)
	ui.AddWidget(b)

	ui.Focus(ta)
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', 0))
	buf := ui.Render()
	if got := buf[1][1].Ch; got != 'a' {
		t.Fatalf("expected 'a' at (1,1), got %q", string(got))
	}
}

// Clicking should focus the inner TextArea, not the border, and allow typing.
func TestClickToFocusInnerWidget(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 4)
	b := widgets.NewBorder(0, 0, 10, 4, tcell.StyleDefault)
	ta := widgets.NewTextArea(0, 0, 0, 0)
	b.SetChild(ta)
	ui.AddWidget(b)

	ui.HandleMouse(tcell.NewEventMouse(1, 1, tcell.Button1, 0))
	ui.HandleMouse(tcell.NewEventMouse(1, 1, tcell.ButtonNone, 0))
	if got := ta.LastFocusReason(); got != core.FocusPointer {
		t.Fatalf("expected pointer focus, got %v", got)
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', 0))
	buf := ui.Render()
	if got := buf[1][1].Ch; got != 'a' {
		t.Fatalf("expected 'a' at (1,1), got %q", string(got))
	}
}

// Widgets focused directly by their owner are still found by key routing.
func TestUIManagerFindsFocusSetOutsideManager(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 2)
	pane := widgets.NewPane(0, 0, 10, 2, tcell.StyleDefault)
	ta := widgets.NewTextArea(0, 0, 0, 0)
	pane.SetChild(ta)
	ui.AddWidget(pane)

	ta.FocusWithReason(core.FocusKeyboard)
	if ui.Focused() != core.Widget(ta) {
		t.Fatalf("expected text area to be reported as focused")
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	if ta.Text() != "z" {
		t.Fatalf("expected key to reach text area, got %q", ta.Text())
	}

	ui.Blur()
	if ui.Focused() != nil {
		t.Fatalf("expected no focused widget after Blur")
	}
}

// If a widget consumes keys but doesn't invalidate, UIManager falls back to full redraw.
func TestUIManagerKeyFallbackRedraw(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(6, 3)
	mw := &miniWidget{}
	mw.SetFocusable(true)
	mw.SetPosition(1, 1)
	mw.Resize(1, 1)
	ui.AddWidget(mw)

	buf := ui.Render()
	if got := buf[1][1].Ch; got != 'X' {
		t.Fatalf("expected 'X', got %q", string(got))
	}

	ui.Focus(mw)
	ui.Render()
	mw.toggled = true
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	buf = ui.Render()
	if got := buf[1][1].Ch; got != 'Y' {
		t.Fatalf("expected 'Y' after fallback redraw, got %q", string(got))
	}
}

func TestUIManagerRefreshNotifier(t *testing.T) {
	ui := core.NewUIManager()
	ch := make(chan bool, 1)
	ui.SetRefreshNotifier(ch)
	ui.Invalidate(core.Rect{W: 1, H: 1})
	select {
	case <-ch:
	default:
		t.Fatal("expected refresh notification after Invalidate")
	}
}
