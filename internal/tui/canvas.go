package tui

import (
	"strings"

	"github.com/1broseidon/winfit/internal/constraints"
	"github.com/1broseidon/winfit/internal/desktop"
	"github.com/1broseidon/winfit/internal/geom"
)

type boxRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	monitorRunes = boxRunes{'─', '│', '┌', '┐', '└', '┘'}
	windowRunes  = boxRunes{'━', '┃', '┏', '┓', '┗', '┛'}
)

const strutRune = '░'

// canvasMap scales root coordinates onto the inside of the canvas border.
type canvasMap struct {
	bounds        geom.Rect
	width, height int
}

func (m canvasMap) x(v int) int {
	return 1 + (v-m.bounds.X)*(m.width-2)/m.bounds.Width
}

func (m canvasMap) y(v int) int {
	return 1 + (v-m.bounds.Y)*(m.height-2)/m.bounds.Height
}

// renderCanvas draws the monitors, struts and the window's outer rectangle
// onto a width x height character canvas.
func renderCanvas(layout *desktop.Layout, w *constraints.Window, width, height int) []string {
	if layout == nil || width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m := canvasMap{bounds: layout.Bounds(), width: width, height: height}

	for _, mon := range layout.Monitors() {
		drawBox(canvas, m, mon, monitorRunes, "", false)
	}
	for _, s := range layout.Struts() {
		fillRect(canvas, m, s.Rect, strutRune)
	}
	if w != nil {
		outer := w.Rect
		if w.Frame != nil {
			outer = w.Frame.Rect
		}
		drawBox(canvas, m, outer, windowRunes, w.Desc, true)
	}

	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func clampCell(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func drawBox(canvas [][]rune, m canvasMap, r geom.Rect, runes boxRunes, label string, opaque bool) {
	canvasW, canvasH := m.width, m.height
	x1 := clampCell(m.x(r.X), 1, canvasW-2)
	y1 := clampCell(m.y(r.Y), 1, canvasH-2)
	x2 := clampCell(m.x(r.Right()), 1, canvasW-2)
	y2 := clampCell(m.y(r.Bottom()), 1, canvasH-2)

	// Need at least 2x2 for a box
	if x2 <= x1 || y2 <= y1 {
		return
	}

	if opaque {
		for y := y1 + 1; y < y2; y++ {
			for x := x1 + 1; x < x2; x++ {
				canvas[y][x] = ' '
			}
		}
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = runes.h
		canvas[y2][x] = runes.h
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = runes.v
		canvas[y][x2] = runes.v
	}
	canvas[y1][x1] = runes.tl
	canvas[y1][x2] = runes.tr
	canvas[y2][x1] = runes.bl
	canvas[y2][x2] = runes.br

	centerY := (y1 + y2) / 2
	if label == "" || centerY <= y1 || centerY >= y2 {
		return
	}
	text := []rune(label)
	if room := x2 - x1 - 1; len(text) > room {
		text = text[:room]
	}
	startX := (x1+x2)/2 - len(text)/2
	for i, r := range text {
		if startX+i > x1 && startX+i < x2 {
			canvas[centerY][startX+i] = r
		}
	}
}

func fillRect(canvas [][]rune, m canvasMap, r geom.Rect, fill rune) {
	x1 := clampCell(m.x(r.X), 1, m.width-2)
	y1 := clampCell(m.y(r.Y), 1, m.height-2)
	x2 := clampCell(m.x(r.Right())-1, 1, m.width-2)
	y2 := clampCell(m.y(r.Bottom())-1, 1, m.height-2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			canvas[y][x] = fill
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
