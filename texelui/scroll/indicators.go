// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: ▲/▼ markers for widgets whose content overflows the viewport.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texelui/core"
)

const (
	UpGlyph   = '▲'
	DownGlyph = '▼'
)

// Indicators draws overflow markers in one column: UpGlyph on the first row
// of the viewport and DownGlyph on the last.
type Indicators struct {
	Style tcell.Style
}

// Draw paints the markers for state in column x over rows [top, top+state.Viewport).
func (ind Indicators) Draw(p *core.Painter, x, top int, state State) {
	if state.Viewport <= 0 {
		return
	}
	if state.CanScrollUp() {
		p.SetCell(x, top, UpGlyph, ind.Style)
	}
	if state.CanScrollDown() {
		p.SetCell(x, top+state.Viewport-1, DownGlyph, ind.Style)
	}
}
