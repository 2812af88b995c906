package puzzle_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gokyotris/puzzle"
)

func TestDefaultCatalog(t *testing.T) {
	c := puzzle.DefaultCatalog()

	want := map[puzzle.Kind]string{
		puzzle.KindO: "Dai Ikkyo",
		puzzle.KindZ: "Dai Ikkyo",
		puzzle.KindL: "Dai Nikyo",
		puzzle.KindS: "Dai Nikyo",
		puzzle.KindI: "Dai Sankyo",
		puzzle.KindJ: "Dai Yonkyo",
		puzzle.KindT: "Dai Gokyo",
	}
	for k, name := range want {
		assert.Equal(t, name, c.GroupOf(k).Name, k.String())
	}

	assert.Len(t, c.Groups(), 5)
	assert.Equal(t, color.RGBA{0x4a, 0xde, 0x80, 0xff}, c.ColorOf(puzzle.Cell(3)))
	assert.Equal(t, color.RGBA{}, c.ColorOf(puzzle.Empty))
	assert.Equal(t, puzzle.GroupInfo{}, c.GroupOf(puzzle.Kind(9)))

	g, ok := c.LookupName("Dai Gokyo")
	require.True(t, ok)
	assert.Equal(t, puzzle.Group(5), g.ID)
}

func TestNewCatalogValidation(t *testing.T) {
	groups := []puzzle.GroupInfo{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	all := func(g puzzle.Group) map[puzzle.Kind]puzzle.Group {
		m := map[puzzle.Kind]puzzle.Group{}
		for _, k := range puzzle.Kinds {
			m[k] = g
		}
		return m
	}

	t.Run("every kind mapped", func(t *testing.T) {
		c, err := puzzle.NewCatalog(groups, all(2))
		require.NoError(t, err)
		assert.Equal(t, "b", c.GroupOf(puzzle.KindT).Name)
	})

	t.Run("missing kind", func(t *testing.T) {
		m := all(1)
		delete(m, puzzle.KindJ)
		_, err := puzzle.NewCatalog(groups, m)
		assert.ErrorIs(t, err, puzzle.ErrInvalidMapping)
	})

	t.Run("undefined group", func(t *testing.T) {
		m := all(1)
		m[puzzle.KindS] = 7
		_, err := puzzle.NewCatalog(groups, m)
		assert.ErrorIs(t, err, puzzle.ErrInvalidMapping)
	})

	t.Run("duplicate group id", func(t *testing.T) {
		_, err := puzzle.NewCatalog([]puzzle.GroupInfo{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}, all(1))
		assert.ErrorIs(t, err, puzzle.ErrInvalidMapping)
	})

	t.Run("group id zero is reserved for empty cells", func(t *testing.T) {
		_, err := puzzle.NewCatalog([]puzzle.GroupInfo{{ID: 0, Name: "a"}}, all(0))
		assert.ErrorIs(t, err, puzzle.ErrInvalidMapping)
	})

	t.Run("no groups", func(t *testing.T) {
		_, err := puzzle.NewCatalog(nil, all(1))
		assert.ErrorIs(t, err, puzzle.ErrInvalidMapping)
	})
}
