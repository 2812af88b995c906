// Package termui draws engine snapshots on a terminal with tcell and maps
// key presses to engine commands.
package termui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/gokyotris/puzzle"
)

const (
	cellWidth = 2
	blockRune = '█'
	originX   = 1
	originY   = 1
	panelGap  = 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer paints snapshots onto a screen.
type Renderer struct {
	screen  tcell.Screen
	catalog *puzzle.Catalog
}

func NewRenderer(screen tcell.Screen, catalog *puzzle.Catalog) *Renderer {
	return &Renderer{screen: screen, catalog: catalog}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// BoardOrigin is the screen position of the top-left board cell.
func BoardOrigin() (x, y int) {
	return originX + 1, originY + 1
}

// Draw clears the screen, paints snap and shows the result.
func (r *Renderer) Draw(snap puzzle.Snapshot) {
	r.screen.Clear()

	grid := snap.Composite()
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	r.drawBorder(originX, originY, cols*cellWidth+2, rows+2)

	bx, by := BoardOrigin()
	for y, row := range grid {
		for x, cell := range row {
			if cell == puzzle.Empty {
				r.put(bx+x*cellWidth, by+y, "·", dimStyle)
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(r.catalog.ColorOf(cell)))
			for i := range cellWidth {
				r.screen.SetContent(bx+x*cellWidth+i, by+y, blockRune, nil, style)
			}
		}
	}

	px := originX + cols*cellWidth + 2 + panelGap
	r.drawPanel(px, originY, snap)
	r.screen.Show()
}

func (r *Renderer) drawPanel(x, y int, snap puzzle.Snapshot) {
	line := y
	text := func(style tcell.Style, format string, args ...any) {
		r.put(x, line, fmt.Sprintf(format, args...), style)
		line++
	}

	text(textStyle, "GOKYO-TRIS")
	line++

	text(textStyle, "Next")
	if snap.Next != nil {
		style := tcell.StyleDefault.Foreground(tcellColor(snap.Next.Color))
		for dr, dc := range snap.Next.Matrix.Cells() {
			for i := range cellWidth {
				r.screen.SetContent(x+dc*cellWidth+i, line+dr, blockRune, nil, style)
			}
		}
		line += snap.Next.Matrix.Size()
		text(dimStyle, "%s", r.catalog.GroupOf(snap.Next.Kind).Name)
	}
	line++

	text(textStyle, "Ippon %3d", snap.Score.Ippon)
	text(textStyle, "Waza  %3d", snap.Score.Waza)
	text(textStyle, "Yuko  %3d", snap.Score.Yuko)
	text(textStyle, "Level %3d", snap.Level)
	text(textStyle, "Lines %3d", snap.Lines)
	line++

	if snap.Active != nil && snap.State == puzzle.StatePlaying {
		group := r.catalog.GroupOf(snap.Active.Kind)
		text(tcell.StyleDefault.Foreground(tcellColor(group.Color)), "%s", group.Name)
		if snap.Label != nil {
			text(textStyle, "%s", snap.Label.Name)
			if snap.Label.Kanji != "" {
				text(dimStyle, "%s", snap.Label.Kanji)
			}
		}
		line++
	}

	switch snap.State {
	case puzzle.StateIdle:
		text(textStyle, "Enter: start")
	case puzzle.StateGameOver:
		text(alertStyle, "GAME OVER")
		text(textStyle, "r: restart")
	}
	text(dimStyle, "←/→ move  ↑ rotate  ↓ drop  q quit")
}

func (r *Renderer) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, '─', nil, borderStyle)
		r.screen.SetContent(x+i, y+h-1, '─', nil, borderStyle)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, '│', nil, borderStyle)
		r.screen.SetContent(x+w-1, y+j, '│', nil, borderStyle)
	}
	r.screen.SetContent(x, y, '┌', nil, borderStyle)
	r.screen.SetContent(x+w-1, y, '┐', nil, borderStyle)
	r.screen.SetContent(x, y+h-1, '└', nil, borderStyle)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, borderStyle)
}

func (r *Renderer) put(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
