package core

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texel/theme"
)

// UIManager owns a small widget tree and composes it into a cell buffer.
type UIManager struct {
	mu       sync.Mutex // protects widgets, capture, buffer
	dirtyMu  sync.Mutex // protects dirty list and notifier
	W, H     int
	widgets  []Widget // z-ordered: later entries draw on top
	bgStyle  tcell.Style
	notifier chan<- bool
	buf      [][]Cell
	dirty    []Rect
	capture  Widget
}

func NewUIManager() *UIManager {
	tm := theme.Get()
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorDefault)
	fg := tm.GetColor("ui", "surface_fg", tcell.ColorDefault)
	return &UIManager{
		bgStyle: tcell.StyleDefault.Background(bg).Foreground(fg),
	}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.invalidateAllLocked()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	u.propagateInvalidator(w)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func (u *UIManager) propagateInvalidator(w Widget) {
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(u.Invalidate)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateInvalidator(child) })
	}
}

// Focus gives w programmatic focus.
func (u *UIManager) Focus(w Widget) {
	u.FocusWithReason(w, FocusProgrammatic)
}

// FocusWithReason moves focus to w, blurring whichever widget held it.
func (u *UIManager) FocusWithReason(w Widget, reason FocusReason) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w, reason)
}

// Blur removes focus from every widget in the tree.
func (u *UIManager) Blur() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.blurAllLocked(nil)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

// Focused returns the focused widget, or nil.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focusedLocked()
}

func (u *UIManager) focusLocked(w Widget, reason FocusReason) {
	if w == nil || !w.Focusable() {
		return
	}
	u.blurAllLocked(w)
	applyFocus(w, reason)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func applyFocus(w Widget, reason FocusReason) {
	if rf, ok := w.(ReasonFocuser); ok {
		rf.FocusWithReason(reason)
		return
	}
	if reason == FocusUnfocused {
		w.Blur()
		return
	}
	w.Focus()
}

func (u *UIManager) blurAllLocked(except Widget) {
	for _, w := range u.widgets {
		walk(w, func(x Widget) {
			if x == except {
				return
			}
			if fr, ok := x.(FocusReporter); ok && fr.IsFocused() {
				x.Blur()
			}
		})
	}
}

// focusedLocked walks the tree; widgets may be focused by their owner
// without going through the manager.
func (u *UIManager) focusedLocked() Widget {
	var found Widget
	for i := len(u.widgets) - 1; i >= 0 && found == nil; i-- {
		walk(u.widgets[i], func(x Widget) {
			if found != nil {
				return
			}
			if fr, ok := x.(FocusReporter); ok && fr.IsFocused() {
				found = x
			}
		})
	}
	return found
}

func walk(w Widget, fn func(Widget)) {
	fn(w)
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { walk(child, fn) })
	}
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	focused := u.focusedLocked()
	if focused != nil && focused.HandleKey(ev) {
		u.dirtyMu.Lock()
		if len(u.dirty) == 0 {
			u.invalidateAllLocked()
		} else {
			u.requestRefreshLocked()
		}
		u.dirtyMu.Unlock()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		return u.cycleFocusLocked(focused, forward)
	}
	return false
}

// HandlePaste hands pasted text to the focused widget.
func (u *UIManager) HandlePaste(text string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	focused := u.focusedLocked()
	if focused == nil {
		return false
	}
	pa, ok := focused.(PasteAware)
	if !ok || !pa.HandlePaste(text) {
		return false
	}
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
	return true
}

// cycleFocusLocked moves keyboard focus through the focusable widgets in
// tree order.
func (u *UIManager) cycleFocusLocked(current Widget, forward bool) bool {
	var order []Widget
	for _, w := range u.widgets {
		walk(w, func(x Widget) {
			if x.Focusable() {
				order = append(order, x)
			}
		})
	}
	if len(order) < 2 {
		return false
	}
	idx := -1
	for i, w := range order {
		if w == current {
			idx = i
			break
		}
	}
	n := len(order)
	next := 0
	if forward {
		next = (idx + 1) % n
	} else if idx <= 0 {
		next = n - 1
	} else {
		next = idx - 1
	}
	u.focusLocked(order[next], FocusKeyboard)
	return true
}

// HandleMouse routes mouse events for click-to-focus and capture drags.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	x, y := ev.Position()
	buttons := ev.Buttons()
	prevIsDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0

	if !prevIsDown && nowDown {
		w := u.topmostAtLocked(x, y)
		if w == nil {
			return false
		}
		u.focusLocked(w, FocusPointer)
		u.capture = w
		if mw, ok := w.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		if prevIsDown && !nowDown {
			u.capture = nil
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if w := u.topmostAtLocked(x, y); w != nil {
			if mw, ok := w.(MouseAware); ok && mw.HandleMouse(ev) {
				u.dirtyMu.Lock()
				u.invalidateAllLocked()
				u.dirtyMu.Unlock()
				return true
			}
		}
	}
	return false
}

// topmostAtLocked returns the deepest focusable widget under the point,
// falling back to the deepest widget of any kind.
func (u *UIManager) topmostAtLocked(x, y int) Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		if w := deepHit(u.widgets[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

func deepHit(w Widget, x, y int) Widget {
	if !w.HitTest(x, y) {
		return nil
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			res = deepHit(child, x, y)
		})
		if res != nil {
			return res
		}
	}
	return w
}

// Invalidate marks a region for redraw. Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if r.Empty() {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

// assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

// Render redraws dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	fresh := false
	if u.buf == nil || len(u.buf) != u.H || (u.H > 0 && len(u.buf[0]) != u.W) {
		u.buf = NewBuffer(u.W, u.H, u.bgStyle)
		fresh = true
	}

	u.dirtyMu.Lock()
	dirty := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	full := Rect{W: u.W, H: u.H}
	if fresh {
		dirty = []Rect{full}
	}
	for _, clip := range mergeRects(dirty) {
		clip = clip.Intersect(full)
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range u.widgets {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if rectsOverlap(Rect{X: wx, Y: wy, W: ww, H: wh}, clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}

func rectsOverlap(a, b Rect) bool {
	return !a.Intersect(b).Empty()
}

// mergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func mergeRects(in []Rect) []Rect {
	out := make([]Rect, 0, len(in))
	for _, r := range in {
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if rectsTouchOrOverlap(out[i], out[j]) {
					out[i] = union(out[i], out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

func rectsTouchOrOverlap(a, b Rect) bool {
	if rectsOverlap(a, b) {
		return true
	}
	ax1, ay1 := a.X+a.W, a.Y+a.H
	bx1, by1 := b.X+b.W, b.Y+b.H
	horizontallyAdjacent := (ax1 == b.X || bx1 == a.X) && !(a.Y >= by1 || ay1 <= b.Y)
	verticallyAdjacent := (ay1 == b.Y || by1 == a.Y) && !(a.X >= bx1 || ax1 <= b.X)
	return horizontallyAdjacent || verticallyAdjacent
}

func union(a, b Rect) Rect {
	x0, y0 := min(a.X, b.X), min(a.Y, b.Y)
	x1, y1 := max(a.X+a.W, b.X+b.W), max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
