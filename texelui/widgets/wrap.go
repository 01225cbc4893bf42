package widgets

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// span is a half-open rune range [start, end) of one logical line.
type span struct {
	start, end int
}

// wrapLine splits line into display rows no wider than width columns.
// Rows break after the last whitespace; a word longer than the row is broken
// at the column limit. width <= 0 disables wrapping.
func wrapLine(line []rune, width int) []span {
	if width <= 0 || len(line) == 0 {
		return []span{{0, len(line)}}
	}
	var spans []span
	start, used, brk := 0, 0, -1
	for i := 0; i < len(line); i++ {
		rw := runewidth.RuneWidth(line[i])
		if unicode.IsSpace(line[i]) {
			// whitespace may hang past the edge instead of starting a row
			used += rw
			brk = i + 1
			continue
		}
		for used+rw > width && i > start {
			end := i
			if brk > start {
				end = brk
			}
			spans = append(spans, span{start, end})
			start = end
			used = runewidth.StringWidth(string(line[start:i]))
			brk = -1
		}
		used += rw
	}
	return append(spans, span{start, len(line)})
}

// visualRow is one on-screen row of a TextArea.
type visualRow struct {
	line       int
	start, end int
	last       bool // last row of its logical line
}

func layoutRows(lines []string, width int) []visualRow {
	rows := make([]visualRow, 0, len(lines))
	for i, l := range lines {
		spans := wrapLine([]rune(l), width)
		for j, sp := range spans {
			rows = append(rows, visualRow{line: i, start: sp.start, end: sp.end, last: j == len(spans)-1})
		}
	}
	return rows
}

// rowOf returns the visual row holding rune x of line y and the display
// column of x within that row. A position on a soft break belongs to the
// following row.
func rowOf(rows []visualRow, lines []string, y, x int) (int, int) {
	for i, r := range rows {
		if r.line != y {
			continue
		}
		if x < r.end || r.last || (x == r.end && r.start == r.end) {
			if x < r.start {
				x = r.start
			}
			runes := []rune(lines[y])
			return i, runewidth.StringWidth(string(runes[r.start:x]))
		}
	}
	return 0, 0
}

// positionIn maps a display column on visual row idx back to a rune index.
func positionIn(rows []visualRow, lines []string, idx, col int) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	r := rows[idx]
	runes := []rune(lines[r.line])
	x, used := r.start, 0
	for x < r.end {
		rw := runewidth.RuneWidth(runes[x])
		if used+rw > col {
			break
		}
		used += rw
		x++
	}
	if !r.last && x == r.end && r.end > r.start {
		x = r.end - 1
	}
	return r.line, x
}
