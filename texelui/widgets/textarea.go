package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texel/theme"
	"github.com/framegrace/texelpad/texelui/core"
	"github.com/framegrace/texelpad/texelui/scroll"
)

// TextArea is a multiline editor with a vertical viewport and optional word wrap.
type TextArea struct {
	core.BaseWidget
	Lines    []string
	CaretX   int // rune index within Lines[CaretY]
	CaretY   int
	OffX     int // horizontal scroll, only used without WordWrap
	OffY     int // first visible visual row
	Margin   core.Insets
	WordWrap bool
	// ScrollIndicators marks hidden rows with ▲/▼ in the right margin.
	ScrollIndicators bool
	Style            tcell.Style
	SelStyle         tcell.Style
	// Clipboard receives copies and cuts; NewTextArea uses a LocalClipboard.
	Clipboard Clipboard
	// invalidation callback
	inv       func(core.Rect)
	reason    core.FocusReason
	mouseDown bool
	// selection anchor; the caret is the moving end
	selActive    bool
	selSX, selSY int
	// display column kept across vertical moves
	wantCol int
}

func NewTextArea(x, y, w, h int) *TextArea {
	tm := theme.Get()
	bg := tm.GetColor("ui", "text_bg", tcell.ColorDefault)
	fg := tm.GetColor("ui", "text_fg", tcell.ColorDefault)
	selBg := tm.GetColor("selection", "bg", tcell.ColorNavy)
	selFg := tm.GetColor("selection", "fg", tcell.ColorWhite)
	ta := &TextArea{
		Lines:    []string{""},
		Style:    tcell.StyleDefault.Background(bg).Foreground(fg),
		SelStyle: tcell.StyleDefault.Background(selBg).Foreground(selFg),
		wantCol:  -1,
	}
	ta.Clipboard = &LocalClipboard{}
	ta.SetPosition(x, y)
	ta.Resize(w, h)
	ta.SetFocusable(true)
	return ta
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (t *TextArea) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

// FocusWithReason focuses the text area and records why.
func (t *TextArea) FocusWithReason(reason core.FocusReason) {
	t.reason = reason
	if reason == core.FocusUnfocused {
		t.Blur()
	} else {
		t.Focus()
	}
	t.invalidateViewport()
}

// LastFocusReason returns the reason passed to the most recent FocusWithReason.
func (t *TextArea) LastFocusReason() core.FocusReason { return t.reason }

// Text returns the buffer contents joined with newlines.
func (t *TextArea) Text() string { return strings.Join(t.Lines, "\n") }

// SetText replaces the buffer and moves the caret to the start.
func (t *TextArea) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	t.Lines = strings.Split(s, "\n")
	t.CaretX, t.CaretY, t.OffX, t.OffY = 0, 0, 0, 0
	t.clearSelection()
	t.invalidateViewport()
}

// HandlePaste inserts pasted text at the caret, replacing any selection.
func (t *TextArea) HandlePaste(text string) bool {
	if text == "" {
		return false
	}
	if t.hasSelection() {
		t.deleteSelection()
	}
	t.insertText(strings.ReplaceAll(text, "\r\n", "\n"))
	return true
}

// content is the editable rect, inside the margins.
func (t *TextArea) content() core.Rect { return t.Rect.Inset(t.Margin) }

func (t *TextArea) wrapWidth() int {
	if !t.WordWrap {
		return 0
	}
	w := t.content().W
	if w < 1 {
		w = 1
	}
	return w
}

func (t *TextArea) rows() []visualRow { return layoutRows(t.Lines, t.wrapWidth()) }

func (t *TextArea) scrollState(rows []visualRow) scroll.State {
	return scroll.State{Offset: t.OffY, Viewport: t.content().H, Content: len(rows)}
}

func (t *TextArea) clampCaret() {
	if len(t.Lines) == 0 {
		t.Lines = []string{""}
	}
	if t.CaretY < 0 {
		t.CaretY = 0
	}
	if t.CaretY >= len(t.Lines) {
		t.CaretY = len(t.Lines) - 1
	}
	maxX := len([]rune(t.Lines[t.CaretY]))
	if t.CaretX < 0 {
		t.CaretX = 0
	}
	if t.CaretX > maxX {
		t.CaretX = maxX
	}
	t.selSY = min(max(t.selSY, 0), len(t.Lines)-1)
	t.selSX = min(max(t.selSX, 0), len([]rune(t.Lines[t.selSY])))
}

func (t *TextArea) ensureVisible() {
	cr := t.content()
	row, col := rowOf(t.rows(), t.Lines, t.CaretY, t.CaretX)
	if row < t.OffY {
		t.OffY = row
	}
	if cr.H > 0 && row >= t.OffY+cr.H {
		t.OffY = row - cr.H + 1
	}
	if t.OffY < 0 {
		t.OffY = 0
	}
	if t.WordWrap {
		t.OffX = 0
		return
	}
	if col < t.OffX {
		t.OffX = col
	}
	if cr.W > 0 && col >= t.OffX+cr.W {
		t.OffX = col - cr.W + 1
	}
	if t.OffX < 0 {
		t.OffX = 0
	}
}

func (t *TextArea) Draw(p *core.Painter) {
	cr := t.content()
	if cr.Empty() {
		return
	}
	cp := p.WithClip(cr)
	cp.Fill(cr, ' ', t.Style)

	rows := t.rows()
	for r := 0; r < cr.H; r++ {
		vi := t.OffY + r
		if vi >= len(rows) {
			break
		}
		vr := rows[vi]
		runes := []rune(t.Lines[vr.line])
		col := -t.OffX
		for x := vr.start; x < vr.end; x++ {
			style := t.Style
			if t.inSelection(vr.line, x) {
				style = t.SelStyle
			}
			col += cp.DrawText(cr.X+col, cr.Y+r, string(runes[x]), style)
		}
	}

	if t.ScrollIndicators && t.Margin.Right > 0 {
		scroll.Indicators{Style: t.Style}.Draw(p, cr.X+cr.W, cr.Y, t.scrollState(rows))
	}

	if !t.IsFocused() {
		return
	}
	row, col := rowOf(rows, t.Lines, t.CaretY, t.CaretX)
	cx := col - t.OffX
	cy := row - t.OffY
	if cx >= cr.W {
		cx = cr.W - 1
	}
	if cx < 0 || cy < 0 || cy >= cr.H {
		return
	}
	ch := ' '
	line := []rune(t.Lines[t.CaretY])
	if t.CaretX < len(line) && line[t.CaretX] != '\t' {
		ch = line[t.CaretX]
	}
	// caret: underlying rune with fg/bg swapped
	fg, bg, _ := t.Style.Decompose()
	if fg == tcell.ColorDefault && bg == tcell.ColorDefault {
		cp.SetCell(cr.X+cx, cr.Y+cy, ch, tcell.StyleDefault.Reverse(true))
		return
	}
	cp.SetCell(cr.X+cx, cr.Y+cy, ch, tcell.StyleDefault.Background(fg).Foreground(bg))
}

func (t *TextArea) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	cr := t.content()
	btn := ev.Buttons()

	if btn&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if !t.Rect.Contains(x, y) {
			return false
		}
		st := t.scrollState(t.rows())
		if btn&tcell.WheelUp != 0 {
			st = st.ScrollBy(-1)
		}
		if btn&tcell.WheelDown != 0 {
			st = st.ScrollBy(1)
		}
		t.OffY = st.Offset
		t.invalidateViewport()
		return true
	}

	if btn&tcell.Button1 == 0 {
		if t.mouseDown {
			t.mouseDown = false
			return true
		}
		return false
	}
	if !t.mouseDown && !t.Rect.Contains(x, y) {
		return false
	}

	lx := min(max(x-cr.X, 0), max(cr.W-1, 0))
	ly := max(y-cr.Y, 0)
	t.CaretY, t.CaretX = positionIn(t.rows(), t.Lines, t.OffY+ly, t.OffX+lx)
	t.wantCol = -1
	if !t.mouseDown {
		t.mouseDown = true
		t.clearSelection()
		t.selSX, t.selSY = t.CaretX, t.CaretY
	} else {
		t.selActive = t.CaretX != t.selSX || t.CaretY != t.selSY
	}
	t.clampCaret()
	t.ensureVisible()
	t.invalidateViewport()
	return true
}

func (t *TextArea) insertText(s string) {
	t.clearSelection()
	t.clampCaret()
	for _, r := range s {
		if r == '\n' {
			t.splitLine()
			continue
		}
		line := []rune(t.Lines[t.CaretY])
		line = append(line[:t.CaretX], append([]rune{r}, line[t.CaretX:]...)...)
		t.Lines[t.CaretY] = string(line)
		t.CaretX++
	}
	t.wantCol = -1
	t.clampCaret()
	t.ensureVisible()
	t.invalidateViewport()
}

func (t *TextArea) splitLine() {
	line := []rune(t.Lines[t.CaretY])
	head := string(line[:t.CaretX])
	tail := string(line[t.CaretX:])
	t.Lines[t.CaretY] = head
	t.Lines = append(t.Lines[:t.CaretY+1], append([]string{tail}, t.Lines[t.CaretY+1:]...)...)
	t.CaretY++
	t.CaretX = 0
}

func (t *TextArea) hasSelection() bool {
	return t.selActive && (t.selSX != t.CaretX || t.selSY != t.CaretY)
}

func (t *TextArea) clearSelection() {
	t.selActive = false
}

// selectionBounds returns the ordered selection endpoints.
func (t *TextArea) selectionBounds() (sx, sy, ex, ey int) {
	sx, sy, ex, ey = t.selSX, t.selSY, t.CaretX, t.CaretY
	if ey < sy || (ey == sy && ex < sx) {
		sx, sy, ex, ey = ex, ey, sx, sy
	}
	return
}

func (t *TextArea) inSelection(y, x int) bool {
	if !t.hasSelection() {
		return false
	}
	sx, sy, ex, ey := t.selectionBounds()
	if y < sy || y > ey {
		return false
	}
	if y == sy && x < sx {
		return false
	}
	if y == ey && x >= ex {
		return false
	}
	return true
}

func (t *TextArea) getSelectedText() string {
	if !t.hasSelection() {
		return ""
	}
	sx, sy, ex, ey := t.selectionBounds()
	if sy == ey {
		return string([]rune(t.Lines[sy])[sx:ex])
	}
	var b strings.Builder
	b.WriteString(string([]rune(t.Lines[sy])[sx:]))
	for y := sy + 1; y < ey; y++ {
		b.WriteByte('\n')
		b.WriteString(t.Lines[y])
	}
	b.WriteByte('\n')
	b.WriteString(string([]rune(t.Lines[ey])[:ex]))
	return b.String()
}

func (t *TextArea) deleteSelection() {
	if !t.hasSelection() {
		t.clearSelection()
		return
	}
	sx, sy, ex, ey := t.selectionBounds()
	head := []rune(t.Lines[sy])[:sx]
	tail := []rune(t.Lines[ey])[ex:]
	t.Lines[sy] = string(head) + string(tail)
	t.Lines = append(t.Lines[:sy+1], t.Lines[ey+1:]...)
	t.CaretX, t.CaretY = sx, sy
	t.clearSelection()
}

func (t *TextArea) invalidateViewport() {
	if t.inv == nil {
		return
	}
	t.inv(t.Rect)
}
