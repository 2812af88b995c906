package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/gokyotris/debugui"
	debugui_ebiten "github.com/plus3/gokyotris/debugui/ebiten"
	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
	"github.com/plus3/gokyotris/termui"
)

const panelWidth = 200

var (
	backgroundColor = color.RGBA{0x11, 0x18, 0x27, 0xff}
	emptyCellColor  = color.RGBA{0x1f, 0x29, 0x37, 0xff}
)

type keyBinding struct {
	key ebiten.Key
	cmd termui.Command
}

var windowKeys = []keyBinding{
	{ebiten.KeyArrowLeft, termui.CmdLeft},
	{ebiten.KeyA, termui.CmdLeft},
	{ebiten.KeyArrowRight, termui.CmdRight},
	{ebiten.KeyD, termui.CmdRight},
	{ebiten.KeyArrowUp, termui.CmdRotate},
	{ebiten.KeyW, termui.CmdRotate},
	{ebiten.KeySpace, termui.CmdRotate},
	{ebiten.KeyArrowDown, termui.CmdDrop},
	{ebiten.KeyS, termui.CmdDrop},
	{ebiten.KeyEnter, termui.CmdStart},
	{ebiten.KeyR, termui.CmdRestart},
	{ebiten.KeyEscape, termui.CmdQuit},
	{ebiten.KeyQ, termui.CmdQuit},
}

// windowSize is the logical screen size for a board of rows x cols cells.
func windowSize(rows, cols, cellSize int) (w, h int) {
	return (cols+2)*cellSize + panelWidth, (rows + 2) * cellSize
}

// game runs one engine per ebiten update. Gravity is measured in updates, so
// the ebiten TPS sets the game speed.
type game struct {
	engine    *puzzle.Engine
	scheduler *loop.Scheduler
	cellSize  int
	tps       int

	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

func newGame(engine *puzzle.Engine, cellSize, tps int, debug bool) *game {
	g := &game{
		engine:    engine,
		scheduler: loop.NewScheduler(),
		cellSize:  cellSize,
		tps:       tps,
	}
	g.scheduler.RegisterNamed("engine", engine)

	rows, cols := len(engine.Snapshot().Grid), 0
	if rows > 0 {
		cols = len(engine.Snapshot().Grid[0])
	}
	w, h := windowSize(rows, cols, cellSize)

	if debug {
		g.backend = debugui_ebiten.NewImguiBackend("Gokyo-Tris (debug)", w*2, h)
		perf := debugui.NewPerformanceStats(g.scheduler, 120)
		g.overlay = debugui.NewOverlay()
		g.overlay.Add("inspector", debugui.NewInspector(engine).Render)
		g.overlay.Add("performance", func() { perf.Render(1 / float32(tps)) })
		g.scheduler.RegisterNamed("overlay", g.overlay)
	} else {
		ebiten.SetWindowTitle("Gokyo-Tris")
		ebiten.SetWindowSize(w, h)
	}
	return g
}

func (g *game) Update() error {
	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
	}

	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}
	if g.overlay == nil || !g.overlay.Input.WantCaptureKeyboard {
		for _, b := range windowKeys {
			if inpututil.IsKeyJustPressed(b.key) && !termui.Apply(g.engine, b.cmd) {
				return ebiten.Termination
			}
		}
	}

	g.scheduler.Once(1 / float64(g.tps))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.engine.Snapshot()
	catalog := g.engine.Catalog()
	cs := float32(g.cellSize)
	grid := snap.Composite()
	for r, row := range grid {
		for c, cell := range row {
			x := float32(c+1) * cs
			y := float32(r+1) * cs
			clr := emptyCellColor
			if cell != puzzle.Empty {
				clr = catalog.ColorOf(cell)
			}
			vector.DrawFilledRect(screen, x+1, y+1, cs-2, cs-2, clr, false)
		}
	}

	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	g.drawPanel(screen, (cols+2)*g.cellSize, g.cellSize, snap)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *game) drawPanel(screen *ebiten.Image, x, y int, snap puzzle.Snapshot) {
	catalog := g.engine.Catalog()
	line := y
	text := func(format string, args ...any) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, args...), x, line)
		line += 16
	}

	text("GOKYO-TRIS")
	line += 8

	if snap.Next != nil {
		text("Next: %s", catalog.GroupOf(snap.Next.Kind).Name)
		preview := float32(g.cellSize) / 2
		for dr, dc := range snap.Next.Matrix.Cells() {
			px := float32(x) + float32(dc)*preview
			py := float32(line) + float32(dr)*preview
			vector.DrawFilledRect(screen, px, py, preview-1, preview-1, snap.Next.Color, false)
		}
		line += int(preview)*snap.Next.Matrix.Size() + 8
	}

	text("Ippon %3d", snap.Score.Ippon)
	text("Waza  %3d", snap.Score.Waza)
	text("Yuko  %3d", snap.Score.Yuko)
	text("Level %3d", snap.Level)
	text("Lines %3d", snap.Lines)
	line += 8

	if snap.Active != nil && snap.State == puzzle.StatePlaying {
		text("%s", catalog.GroupOf(snap.Active.Kind).Name)
		if snap.Label != nil {
			text("%s", snap.Label.Name)
		}
		line += 8
	}

	switch snap.State {
	case puzzle.StateIdle:
		text("Enter: start")
	case puzzle.StateGameOver:
		text("GAME OVER")
		text("R: restart")
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	rows := len(g.engine.Snapshot().Grid)
	cols := 0
	if rows > 0 {
		cols = len(g.engine.Snapshot().Grid[0])
	}
	return windowSize(rows, cols, g.cellSize)
}
