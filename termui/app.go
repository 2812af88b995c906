package termui

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
)

// App runs an engine on a terminal: key presses become commands and every
// tick advances the scheduler and redraws.
type App struct {
	screen    tcell.Screen
	engine    *puzzle.Engine
	scheduler *loop.Scheduler
	renderer  *Renderer
	logger    *log.Logger
}

// NewApp registers the engine with a fresh scheduler. The screen must already
// be initialised.
func NewApp(screen tcell.Screen, engine *puzzle.Engine, logger *log.Logger) *App {
	scheduler := loop.NewScheduler()
	scheduler.Register(engine)
	return &App{
		screen:    screen,
		engine:    engine,
		scheduler: scheduler,
		renderer:  NewRenderer(screen, engine.Catalog()),
		logger:    logger,
	}
}

func (a *App) Scheduler() *loop.Scheduler {
	return a.scheduler
}

// Run blocks until the player quits, the context is cancelled or the tick
// source closes. Input and ticks are handled on the calling goroutine.
func (a *App) Run(ctx context.Context, source loop.TickSource) error {
	defer source.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	a.renderer.Draw(a.engine.Snapshot())
	ticks := source.Ticks()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handle(ev) {
				a.logger.Info("quit", "session", a.engine.SessionID(), "score", a.engine.Score())
				return nil
			}
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			a.scheduler.Tick(now)
			a.renderer.Draw(a.engine.Snapshot())
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !Apply(a.engine, KeyCommand(ev)) {
			return false
		}
		a.renderer.Draw(a.engine.Snapshot())
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Draw(a.engine.Snapshot())
	}
	return true
}
