// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/runtime_interfaces.go
// Summary: Narrow interfaces between the tab and the surface it is drawn on.

package texel

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpad/texelui/core"
)

// ScreenDriver abstracts the rendering surface used by the shell. It mirrors the
// subset of tcell.Screen functionality required today, so a tcell.Screen (real
// or simulated) satisfies it directly.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	Clear()
	Show()
	HideCursor()
	SetStyle(style tcell.Style)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	EnableMouse(flags ...tcell.MouseFlags)
	DisableMouse()
	EnablePaste()
	DisablePaste()
}

var _ ScreenDriver = tcell.Screen(nil)

// Present copies a rendered tab buffer onto screen. Cells with a zero rune are
// the trailing half of a wide rune and are left to the terminal.
func Present(screen ScreenDriver, buf [][]core.Cell) {
	for y, row := range buf {
		for x, cell := range row {
			if cell.Ch == 0 {
				continue
			}
			screen.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
}
