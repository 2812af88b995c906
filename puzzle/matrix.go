package puzzle

import (
	"iter"
	"strings"
)

// Matrix is a square occupancy mask describing a piece in its bounding box.
type Matrix [][]bool

// NewMatrix copies rows into a square matrix, padding short or missing rows
// with empty cells up to the larger of the height and the widest row.
func NewMatrix(rows [][]bool) Matrix {
	size := len(rows)
	for _, r := range rows {
		size = max(size, len(r))
	}
	m := make(Matrix, size)
	for i := range m {
		m[i] = make([]bool, size)
		if i < len(rows) {
			copy(m[i], rows[i])
		}
	}
	return m
}

// mustMatrix builds a matrix from rows of '0'/'1' runes.
func mustMatrix(rows ...string) Matrix {
	bits := make([][]bool, len(rows))
	for i, r := range rows {
		bits[i] = make([]bool, len(r))
		for j, c := range r {
			switch c {
			case '1':
				bits[i][j] = true
			case '0':
			default:
				panic("puzzle: bad matrix rune " + string(c))
			}
		}
	}
	return NewMatrix(bits)
}

// Size returns the side length of the bounding box.
func (m Matrix) Size() int {
	return len(m)
}

// Rotate returns a new matrix turned 90 degrees clockwise.
func (m Matrix) Rotate() Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = m[n-1-j][i]
		}
	}
	return out
}

// RotateCounter returns a new matrix turned 90 degrees counter-clockwise.
func (m Matrix) RotateCounter() Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = m[j][n-1-i]
		}
	}
	return out
}

func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Cells yields the (row, col) offset of every occupied cell in row-major order.
func (m Matrix) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range m {
			for c, filled := range row {
				if filled && !yield(r, c) {
					return
				}
			}
		}
	}
}

// Bounds returns the inclusive extent of occupied cells. ok is false for an
// empty matrix.
func (m Matrix) Bounds() (minRow, minCol, maxRow, maxCol int, ok bool) {
	minRow, minCol = len(m), len(m)
	maxRow, maxCol = -1, -1
	for r, c := range m.Cells() {
		minRow = min(minRow, r)
		minCol = min(minCol, c)
		maxRow = max(maxRow, r)
		maxCol = max(maxCol, c)
	}
	return minRow, minCol, maxRow, maxCol, maxRow >= 0
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
