package widgets

import (
	"github.com/gdamore/tcell/v2"
)

func isCtrl(ev *tcell.EventKey, key tcell.Key, r rune) bool {
	if ev.Key() == key {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == r
}

// HandleKey implements keyboard editing, selection, and clipboard operations.
func (t *TextArea) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEsc {
		if t.hasSelection() {
			t.clearSelection()
			t.invalidateViewport()
			return true
		}
		return false
	}

	t.clampCaret()
	prevCX, prevCY := t.CaretX, t.CaretY

	switch {
	case isCtrl(ev, tcell.KeyCtrlC, 'c'):
		if t.hasSelection() {
			_ = t.Clipboard.WriteAll(t.getSelectedText())
		}
		return true
	case isCtrl(ev, tcell.KeyCtrlX, 'x'):
		if t.hasSelection() {
			_ = t.Clipboard.WriteAll(t.getSelectedText())
			t.deleteSelection()
			t.clampCaret()
			t.ensureVisible()
			t.invalidateViewport()
		}
		return true
	case isCtrl(ev, tcell.KeyCtrlV, 'v'):
		text, err := t.Clipboard.ReadAll()
		if err != nil || text == "" {
			return false
		}
		if t.hasSelection() {
			t.deleteSelection()
		}
		t.insertText(text)
		return true
	case isCtrl(ev, tcell.KeyCtrlA, 'a'):
		last := len(t.Lines) - 1
		t.selActive = true
		t.selSX, t.selSY = 0, 0
		t.CaretY, t.CaretX = last, len([]rune(t.Lines[last]))
		t.ensureVisible()
		t.invalidateViewport()
		return true
	}

	vertical := false
	switch ev.Key() {
	case tcell.KeyLeft:
		if t.CaretX > 0 {
			t.CaretX--
		} else if t.CaretY > 0 {
			t.CaretY--
			t.CaretX = len([]rune(t.Lines[t.CaretY]))
		}
	case tcell.KeyRight:
		if t.CaretX < len([]rune(t.Lines[t.CaretY])) {
			t.CaretX++
		} else if t.CaretY < len(t.Lines)-1 {
			t.CaretY++
			t.CaretX = 0
		}
	case tcell.KeyUp:
		t.moveVertical(-1)
		vertical = true
	case tcell.KeyDown:
		t.moveVertical(1)
		vertical = true
	case tcell.KeyPgUp:
		t.moveVertical(-max(t.content().H-1, 1))
		vertical = true
	case tcell.KeyPgDn:
		t.moveVertical(max(t.content().H-1, 1))
		vertical = true
	case tcell.KeyHome:
		t.CaretX = 0
	case tcell.KeyEnd:
		t.CaretX = len([]rune(t.Lines[t.CaretY]))
	case tcell.KeyEnter:
		if t.hasSelection() {
			t.deleteSelection()
		}
		t.insertText("\n")
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.hasSelection() {
			t.deleteSelection()
		} else if t.CaretX > 0 {
			line := []rune(t.Lines[t.CaretY])
			t.Lines[t.CaretY] = string(append(line[:t.CaretX-1], line[t.CaretX:]...))
			t.CaretX--
		} else if t.CaretY > 0 {
			prev := t.Lines[t.CaretY-1]
			t.CaretX = len([]rune(prev))
			t.Lines[t.CaretY-1] = prev + t.Lines[t.CaretY]
			t.Lines = append(t.Lines[:t.CaretY], t.Lines[t.CaretY+1:]...)
			t.CaretY--
		} else {
			return false
		}
		t.afterEdit()
		return true
	case tcell.KeyDelete:
		line := []rune(t.Lines[t.CaretY])
		if t.hasSelection() {
			t.deleteSelection()
		} else if t.CaretX < len(line) {
			t.Lines[t.CaretY] = string(append(line[:t.CaretX], line[t.CaretX+1:]...))
		} else if t.CaretY < len(t.Lines)-1 {
			t.Lines[t.CaretY] += t.Lines[t.CaretY+1]
			t.Lines = append(t.Lines[:t.CaretY+1], t.Lines[t.CaretY+2:]...)
		} else {
			return false
		}
		t.afterEdit()
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		if t.hasSelection() {
			t.deleteSelection()
		}
		t.insertText(string(ev.Rune()))
		return true
	default:
		return false
	}

	// movement keys only from here on
	if !vertical {
		t.wantCol = -1
	}
	t.clampCaret()
	if ev.Modifiers()&tcell.ModShift != 0 {
		if !t.selActive {
			t.selActive = true
			t.selSX, t.selSY = prevCX, prevCY
		}
		// a selection shrunk back onto its anchor is no selection
		if t.CaretX == t.selSX && t.CaretY == t.selSY {
			t.clearSelection()
		}
	} else {
		t.clearSelection()
	}
	t.ensureVisible()
	t.invalidateViewport()
	return true
}

// moveVertical moves the caret by n visual rows, keeping its display column.
func (t *TextArea) moveVertical(n int) {
	rows := t.rows()
	row, col := rowOf(rows, t.Lines, t.CaretY, t.CaretX)
	if t.wantCol < 0 {
		t.wantCol = col
	}
	target := row + n
	switch {
	case target < 0:
		t.CaretY, t.CaretX = 0, 0
		return
	case target >= len(rows):
		last := len(t.Lines) - 1
		t.CaretY, t.CaretX = last, len([]rune(t.Lines[last]))
		return
	}
	t.CaretY, t.CaretX = positionIn(rows, t.Lines, target, t.wantCol)
}

func (t *TextArea) afterEdit() {
	t.clearSelection()
	t.wantCol = -1
	t.clampCaret()
	t.ensureVisible()
	t.invalidateViewport()
}
