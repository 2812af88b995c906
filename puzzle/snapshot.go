package puzzle

import "github.com/google/uuid"

// Snapshot is a read-only copy of the engine state for presentation layers.
// Mutating it never affects the engine.
type Snapshot struct {
	SessionID    uuid.UUID
	State        State
	Grid         [][]Cell
	Active       *Piece
	Next         *Piece
	Label        *Label
	Score        Score
	Level        int
	Lines        int
	TicksPerDrop int
	Frame        uint64
}

// Snapshot copies the current state. Active and Next are nil before the
// first session starts.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:    e.session,
		State:        e.state,
		Grid:         e.grid.Cells(),
		Active:       e.current.Clone(),
		Next:         e.next.Clone(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		TicksPerDrop: e.ticksPerDrop,
		Frame:        e.frameTotal,
	}
	if s.Active != nil {
		s.Label = s.Active.Label
	}
	return s
}

// Composite returns the settled grid with the active piece drawn over it.
// Cells of the piece above the board are omitted.
func (s Snapshot) Composite() [][]Cell {
	out := make([][]Cell, len(s.Grid))
	for r, row := range s.Grid {
		out[r] = append([]Cell(nil), row...)
	}
	if s.Active == nil || s.State == StateIdle {
		return out
	}
	for r, c := range s.Active.Occupied() {
		if r >= 0 && r < len(out) && c >= 0 && c < len(out[r]) {
			out[r][c] = s.Active.Cell()
		}
	}
	return out
}
