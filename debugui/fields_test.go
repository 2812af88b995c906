package debugui

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gokyotris/puzzle"
)

func findNode(nodes []Node, name string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

func TestDescribeSnapshot(t *testing.T) {
	engine, err := puzzle.New(puzzle.WithKindSource(puzzle.NewSequence(puzzle.KindT, puzzle.KindI)))
	require.NoError(t, err)
	engine.Start()

	nodes := Describe(engine.Snapshot())

	state, ok := findNode(nodes, "State")
	require.True(t, ok)
	assert.Equal(t, "playing", state.Value)

	grid, ok := findNode(nodes, "Grid")
	require.True(t, ok)
	assert.Equal(t, "[16 items]", grid.Value)

	score, ok := findNode(nodes, "Score")
	require.True(t, ok)
	require.Len(t, score.Children, 3)
	assert.Equal(t, Node{Name: "Ippon", Value: "0"}, score.Children[0])

	label, ok := findNode(nodes, "Label")
	require.True(t, ok)
	assert.Equal(t, "nil", label.Value)

	active, ok := findNode(nodes, "Active")
	require.True(t, ok)
	kind, ok := findNode(active.Children, "Kind")
	require.True(t, ok)
	assert.Equal(t, "T", kind.Value)
	matrix, ok := findNode(active.Children, "Matrix")
	require.True(t, ok)
	assert.Equal(t, ".#.\n###\n...", matrix.Value)
}

func TestDescribeNonStruct(t *testing.T) {
	assert.Equal(t, []Node{{Name: "value", Value: "42"}}, Describe(42))
	assert.Nil(t, Describe((*puzzle.Snapshot)(nil)))
}

func TestReflectionCacheSkipsUnexported(t *testing.T) {
	type sample struct {
		Visible int
		hidden  int
		Ptr     *int
	}
	_ = sample{hidden: 1}

	fields := NewReflectionCache().GetFields(reflect.TypeOf(sample{}))
	require.Len(t, fields, 2)
	assert.Equal(t, "Visible", fields[0].Name)
	assert.Equal(t, "Ptr", fields[1].Name)
	assert.True(t, fields[1].IsPointer)
	assert.Equal(t, 2, fields[1].Index)
}

func TestGridRows(t *testing.T) {
	grid, err := puzzle.ParseGrid("....\n.1..\n3355\n....")
	require.NoError(t, err)

	assert.Equal(t, []string{"....", ".1..", "3355", "...."}, GridRows(grid.Cells()))
}
