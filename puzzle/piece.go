package puzzle

import (
	"image/color"
	"iter"
)

// Piece is a falling tetromino. Row and Col locate the top-left corner of its
// bounding box; Row may be negative while the piece is entering the board.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	Row    int
	Col    int
	Group  Group
	Color  color.RGBA
	Label  *Label
}

// Cell is the tag the piece leaves in the grid.
func (p *Piece) Cell() Cell {
	return Cell(p.Group)
}

// Clone returns a deep copy.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	out := *p
	out.Matrix = p.Matrix.Clone()
	if p.Label != nil {
		l := *p.Label
		out.Label = &l
	}
	return &out
}

// Occupied yields the absolute board coordinates the piece covers.
func (p *Piece) Occupied() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dr, dc := range p.Matrix.Cells() {
			if !yield(p.Row+dr, p.Col+dc) {
				return
			}
		}
	}
}
