// Package puzzle implements the Gokyo-Tris falling-block engine: the board,
// piece generation, collision, line clearing, scoring and the session state
// machine. An Engine has no goroutines of its own; callers drive it from a
// single goroutine through commands and Frame.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plus3/gokyotris/loop"
)

// State is the session phase.
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ErrInvalidRules is returned by New for inconsistent gravity settings.
var ErrInvalidRules = errors.New("puzzle: invalid rules")

func errInvalidRules(r Rules) error {
	return fmt.Errorf("%w: %+v", ErrInvalidRules, r)
}

const (
	DefaultRows = 16
	DefaultCols = 8
)

// Option configures an Engine.
type Option func(*Engine)

// WithSize sets the board dimensions.
func WithSize(rows, cols int) Option {
	return func(e *Engine) { e.rows, e.cols = rows, cols }
}

func WithRules(r Rules) Option {
	return func(e *Engine) { e.rules = r }
}

func WithCatalog(c *Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithLabels supplies the curriculum labels attached to pieces. Malformed
// labels are dropped when the engine is built.
func WithLabels(labels []Label) Option {
	return func(e *Engine) { e.rawLabels = labels }
}

// WithSeed makes piece order and label choice reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)) }
}

// WithKindSource replaces the shuffled bag, for replays and tests.
func WithKindSource(src KindSource) Option {
	return func(e *Engine) { e.source = src }
}

func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine is one independent game instance.
type Engine struct {
	rows, cols int
	rules      Rules
	catalog    *Catalog
	rawLabels  []Label
	labels     *LabelPool
	rng        *rand.Rand
	source     KindSource
	gen        *Generator
	listeners  []Listener
	logger     *log.Logger

	grid         *Grid
	current      *Piece
	next         *Piece
	state        State
	session      uuid.UUID
	score        Score
	level        int
	lines        int
	ticksPerDrop int
	frames       int
	frameTotal   uint64

	events eventQueue
	stats  statsInternal
}

// New builds an idle engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		rows:  DefaultRows,
		cols:  DefaultCols,
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.rules.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(e.rows, e.cols)
	if err != nil {
		return nil, err
	}
	e.grid = grid

	if e.catalog == nil {
		e.catalog = DefaultCatalog()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.source == nil {
		e.source = NewBag(e.rng)
	}

	var skipped int
	e.labels, skipped = NewLabelPool(e.rawLabels, e.catalog)
	e.rawLabels = nil
	if skipped > 0 {
		e.logger.Debug("skipped malformed labels", "skipped", skipped, "kept", e.labels.Len())
	}

	e.gen = newGenerator(e.source, e.catalog, e.labels, e.rng, e.cols, e.logger)
	e.level = e.rules.StartLevel
	e.ticksPerDrop = e.rules.BaseTicks
	e.stats = newStats()
	return e, nil
}

// AddListener registers a listener for subsequent events.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) State() State         { return e.state }
func (e *Engine) Score() Score         { return e.score }
func (e *Engine) Level() int           { return e.level }
func (e *Engine) TicksPerDrop() int    { return e.ticksPerDrop }
func (e *Engine) Rules() Rules         { return e.rules }
func (e *Engine) Catalog() *Catalog    { return e.catalog }
func (e *Engine) Labels() *LabelPool   { return e.labels }
func (e *Engine) SessionID() uuid.UUID { return e.session }

// Stats returns counters accumulated over every session.
func (e *Engine) Stats() Stats {
	s := e.stats.snapshot()
	s.SkippedKinds = e.gen.Invalid()
	return s
}

// Start begins the first session. It does nothing once a session has been
// played; a finished game only accepts Restart.
func (e *Engine) Start() {
	if e.state != StateIdle {
		return
	}
	e.begin()
	e.flush()
}

// Restart abandons any session in progress and begins a fresh one.
func (e *Engine) Restart() {
	e.begin()
	e.flush()
}

func (e *Engine) begin() {
	e.grid.Reset()
	e.score = Score{}
	e.level = e.rules.StartLevel
	e.lines = 0
	e.ticksPerDrop = e.rules.BaseTicks
	e.frames = 0
	e.session = uuid.New()
	e.state = StatePlaying
	e.stats.sessions++

	e.current = e.spawn()
	e.next = e.spawn()
	e.logger.Debug("session started", "session", e.session, "first", e.current.Kind, "next", e.next.Kind)

	if !e.grid.Fits(e.current.Matrix, e.current.Row, e.current.Col) {
		e.gameOver("spawn blocked")
	}
}

func (e *Engine) spawn() *Piece {
	p := e.gen.Next()
	e.stats.piece(p.Kind)
	return p
}

func (e *Engine) MoveLeft() {
	e.shift(0, -1)
	e.flush()
}

func (e *Engine) MoveRight() {
	e.shift(0, 1)
	e.flush()
}

// SoftDrop moves the piece one row down. It never locks the piece; a blocked
// drop is ignored and gravity will lock it.
func (e *Engine) SoftDrop() {
	e.shift(1, 0)
	e.flush()
}

// Rotate turns the active piece clockwise in place if the result fits.
func (e *Engine) Rotate() {
	if e.state != StatePlaying {
		return
	}
	rotated := e.current.Matrix.Rotate()
	if e.grid.Fits(rotated, e.current.Row, e.current.Col) {
		e.current.Matrix = rotated
		e.events.push(Event{Type: EventRotate})
	}
	e.flush()
}

func (e *Engine) shift(dr, dc int) {
	if e.state != StatePlaying {
		return
	}
	row, col := e.current.Row+dr, e.current.Col+dc
	if !e.grid.Fits(e.current.Matrix, row, col) {
		return
	}
	e.current.Row, e.current.Col = row, col
	e.events.push(Event{Type: EventMove})
}

// Frame advances the frame counter and applies gravity every TicksPerDrop
// frames. Call it once per display or loop tick.
func (e *Engine) Frame() {
	e.frameTotal++
	if e.state != StatePlaying {
		return
	}
	e.frames++
	if e.frames >= e.ticksPerDrop {
		e.frames = 0
		e.gravity()
	}
	e.flush()
}

// Tick applies one gravity step immediately, regardless of the frame counter.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.gravity()
	e.flush()
}

// Execute runs the engine as a loop.System: one Frame per scheduler update.
func (e *Engine) Execute(_ *loop.Frame) {
	e.Frame()
}

func (e *Engine) gravity() {
	p := e.current
	if e.grid.Fits(p.Matrix, p.Row+1, p.Col) {
		p.Row++
		return
	}
	e.settle()
}

func (e *Engine) settle() {
	if err := e.grid.Lock(e.current); err != nil {
		e.gameOver("topped out")
		return
	}
	e.stats.locks++
	e.events.push(Event{Type: EventLock})

	if n := e.grid.ClearLines(); n > 0 {
		e.score, e.level = ApplyClear(n, e.score, e.level, e.rules)
		e.ticksPerDrop = e.rules.TicksPerDrop(e.level)
		e.lines += n
		e.stats.clear(n)
		e.events.push(Event{Type: EventLineClear, Lines: n})
		e.logger.Debug("lines cleared", "lines", n, "tier", TierFor(n), "level", e.level, "ticksPerDrop", e.ticksPerDrop)
	}

	e.current, e.next = e.next, e.spawn()
	if !e.grid.Fits(e.current.Matrix, e.current.Row, e.current.Col) {
		e.gameOver("spawn blocked")
	}
}

func (e *Engine) gameOver(reason string) {
	if e.state == StateGameOver {
		return
	}
	e.state = StateGameOver
	e.stats.gamesOver++
	e.events.push(Event{Type: EventGameOver})
	e.logger.Info("game over", "session", e.session, "reason", reason, "score", e.score, "level", e.level, "lines", e.lines)
}

func (e *Engine) flush() {
	e.events.flush(e.listeners)
}
