// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Vertical scroll position of a viewport over taller content.

package scroll

// State describes a viewport of Viewport rows showing content of Content
// rows, starting at row Offset.
type State struct {
	Offset   int
	Viewport int
	Content  int
}

// CanScrollUp reports whether rows are hidden above the viewport.
func (s State) CanScrollUp() bool { return s.Offset > 0 }

// CanScrollDown reports whether rows are hidden below the viewport.
func (s State) CanScrollDown() bool { return s.Offset+s.Viewport < s.Content }

// MaxOffset is the largest offset that still fills the viewport.
func (s State) MaxOffset() int { return max(s.Content-s.Viewport, 0) }

// Clamp returns s with Offset inside [0, MaxOffset].
func (s State) Clamp() State {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset())
	return s
}

// ScrollBy returns s moved by delta rows and clamped.
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.Clamp()
}
