package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is one square of the board: Empty or the tag of the group that settled there.
type Cell uint8

const Empty Cell = 0

var (
	// ErrToppedOut is returned by Lock when part of the piece is still above the board.
	ErrToppedOut = errors.New("puzzle: piece locked above the board")
	// ErrInvalidSize is returned for boards too small to hold a piece.
	ErrInvalidSize = errors.New("puzzle: invalid board size")
)

const minBoardSide = 4

// Grid is the fixed-size playfield. Row 0 is the top.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// NewGrid creates an empty rows x cols board.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < minBoardSide || cols < minBoardSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col); out-of-range positions read as Empty.
func (g *Grid) At(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// Set writes a cell, ignoring out-of-range positions.
func (g *Grid) Set(row, col int, c Cell) {
	if g.inBounds(row, col) {
		g.cells[row][col] = c
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		clear(row)
	}
}

func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// Cells returns a deep copy of the board contents.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r, row := range g.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// Fits reports whether m placed with its top-left corner at (row, col) stays
// inside the side and bottom walls and overlaps no settled cell. Cells above
// the top edge are allowed.
func (g *Grid) Fits(m Matrix, row, col int) bool {
	for dr, dc := range m.Cells() {
		r, c := row+dr, col+dc
		if c < 0 || c >= g.cols || r >= g.rows {
			return false
		}
		if r >= 0 && g.cells[r][c] != Empty {
			return false
		}
	}
	return true
}

// Lock writes the piece's tag into the board. If any occupied cell is above
// row 0 the board is left untouched and ErrToppedOut is returned.
func (g *Grid) Lock(p *Piece) error {
	for dr := range p.Matrix.Cells() {
		if p.Row+dr < 0 {
			return ErrToppedOut
		}
	}
	for dr, dc := range p.Matrix.Cells() {
		g.Set(p.Row+dr, p.Col+dc, p.Cell())
	}
	return nil
}

func (g *Grid) rowFull(r int) bool {
	for _, c := range g.cells[r] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above down, and
// returns how many were removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	for r := g.rows - 1; r >= 0; {
		if !g.rowFull(r) {
			r--
			continue
		}
		removed := g.cells[r]
		copy(g.cells[1:r+1], g.cells[:r])
		clear(removed)
		g.cells[0] = removed
		cleared++
	}
	return cleared
}

// String renders the board with '.' for empty cells and the tag digit otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c%10))
			}
		}
	}
	return sb.String()
}

// ParseGrid reads a board in the String format. Blank lines are ignored and
// every row must have the same width.
func ParseGrid(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSize)
	}
	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d: width %d, want %d", r, len(line), g.cols)
		}
		for c, ch := range []byte(line) {
			switch {
			case ch == '.':
			case ch >= '1' && ch <= '9':
				g.cells[r][c] = Cell(ch - '0')
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return g, nil
}
