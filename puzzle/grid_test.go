package puzzle_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/plus3/gokyotris/puzzle"
)

func TestNewGrid(t *testing.T) {
	g, err := puzzle.NewGrid(16, 8)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Rows())
	assert.Equal(t, 8, g.Cols())

	cells := g.Cells()
	require.Len(t, cells, 16)
	for r, row := range cells {
		require.Len(t, row, 8, "row %d", r)
		for c, cell := range row {
			if cell != puzzle.Empty {
				t.Errorf("cell (%d,%d) expected empty, got %d", r, c, cell)
			}
		}
	}

	_, err = puzzle.NewGrid(2, 8)
	assert.ErrorIs(t, err, puzzle.ErrInvalidSize)
}

func TestParseGrid(t *testing.T) {
	g, err := puzzle.ParseGrid(`
		....
		.1..
		2345
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, puzzle.Cell(1), g.At(1, 1))
	assert.Equal(t, puzzle.Cell(5), g.At(2, 3))
	assert.Equal(t, "....\n.1..\n2345", g.String())

	_, err = puzzle.ParseGrid("....\n...\n....\n....")
	assert.Error(t, err)
	_, err = puzzle.ParseGrid("....\n.x..\n....\n....")
	assert.Error(t, err)
}

func TestClearLinesFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/clear/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			var wantLines int
			for _, line := range strings.Split(string(ar.Comment), "\n") {
				if _, err := fmt.Sscanf(line, "lines: %d", &wantLines); err == nil {
					break
				}
			}

			sections := map[string]string{}
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}

			board, err := puzzle.ParseGrid(sections["board"])
			require.NoError(t, err)
			want, err := puzzle.ParseGrid(sections["want"])
			require.NoError(t, err)

			got := board.ClearLines()
			assert.Equal(t, wantLines, got)
			assert.Equal(t, want.String(), board.String())
			assert.Equal(t, want.Rows(), board.Rows())
		})
	}
}

func TestClearLinesEveryRowFull(t *testing.T) {
	g, err := puzzle.NewGrid(4, 4)
	require.NoError(t, err)
	for r := range 4 {
		for c := range 4 {
			g.Set(r, c, 3)
		}
	}

	assert.Equal(t, 4, g.ClearLines())
	assert.Equal(t, "....\n....\n....\n....", g.String())
	assert.Equal(t, 0, g.ClearLines())
}

func TestFits(t *testing.T) {
	g, err := puzzle.ParseGrid(`
		........
		........
		........
		........
		...1....
		11111111
	`)
	require.NoError(t, err)

	o := puzzle.KindO.Shape()
	i := puzzle.KindI.Shape()

	tests := []struct {
		name     string
		m        puzzle.Matrix
		row, col int
		want     bool
	}{
		{"open space", o, 0, 0, true},
		{"against right wall", o, 0, 6, true},
		{"through right wall", o, 0, 7, false},
		{"through left wall", o, 0, -1, false},
		{"above the board", o, -2, 3, true},
		{"straddling the top edge", o, -1, 3, true},
		{"resting on stack", o, 2, 0, true},
		{"overlapping settled cell", o, 3, 3, false},
		{"below the floor", o, 5, 0, false},
		{"empty rows of the bounding box may hang below", i, 4, 4, true},
		{"empty columns of the bounding box may hang outside", puzzle.KindI.Shape().Rotate(), 0, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Fits(tt.m, tt.row, tt.col); got != tt.want {
				t.Errorf("Fits(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestLock(t *testing.T) {
	t.Run("writes group tag", func(t *testing.T) {
		g, err := puzzle.NewGrid(4, 4)
		require.NoError(t, err)

		p := &puzzle.Piece{Kind: puzzle.KindO, Matrix: puzzle.KindO.Shape(), Row: 2, Col: 1, Group: 1}
		require.NoError(t, g.Lock(p))
		assert.Equal(t, "....\n....\n.11.\n.11.", g.String())
	})

	t.Run("topped out piece leaves the grid untouched", func(t *testing.T) {
		g, err := puzzle.NewGrid(4, 4)
		require.NoError(t, err)

		p := &puzzle.Piece{Kind: puzzle.KindJ, Matrix: puzzle.KindJ.Shape(), Row: -1, Col: 0, Group: 4}
		err = g.Lock(p)
		assert.ErrorIs(t, err, puzzle.ErrToppedOut)
		assert.Equal(t, "....\n....\n....\n....", g.String())
	})

	t.Run("empty rows above the board do not top out", func(t *testing.T) {
		g, err := puzzle.NewGrid(4, 4)
		require.NoError(t, err)

		m := puzzle.NewMatrix([][]bool{{false, false}, {true, true}})
		p := &puzzle.Piece{Matrix: m, Row: -1, Col: 0, Group: 2}
		require.NoError(t, g.Lock(p))
		assert.Equal(t, puzzle.Cell(2), g.At(0, 0))
	})
}
