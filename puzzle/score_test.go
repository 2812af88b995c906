package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/gokyotris/puzzle"
)

func TestApplyClear(t *testing.T) {
	rules := puzzle.DefaultRules()

	tests := []struct {
		lines     int
		level     int
		wantScore puzzle.Score
		wantLevel int
	}{
		{lines: 0, level: 3, wantScore: puzzle.Score{}, wantLevel: 3},
		{lines: 1, level: 1, wantScore: puzzle.Score{Yuko: 1}, wantLevel: 2},
		{lines: 2, level: 1, wantScore: puzzle.Score{Waza: 1}, wantLevel: 2},
		{lines: 3, level: 5, wantScore: puzzle.Score{Waza: 1}, wantLevel: 6},
		{lines: 4, level: 9, wantScore: puzzle.Score{Ippon: 1}, wantLevel: 10},
		{lines: 5, level: 10, wantScore: puzzle.Score{Ippon: 1}, wantLevel: 10},
	}

	for _, tt := range tests {
		score, level := puzzle.ApplyClear(tt.lines, puzzle.Score{}, tt.level, rules)
		if score != tt.wantScore {
			t.Errorf("lines=%d: score %+v, want %+v", tt.lines, score, tt.wantScore)
		}
		if level != tt.wantLevel {
			t.Errorf("lines=%d: level %d, want %d", tt.lines, level, tt.wantLevel)
		}
	}
}

func TestApplyClearAccumulates(t *testing.T) {
	rules := puzzle.DefaultRules()
	score, level := puzzle.Score{}, rules.StartLevel

	for _, lines := range []int{1, 1, 2, 4, 3, 1, 4, 4, 2, 1, 1, 4} {
		score, level = puzzle.ApplyClear(lines, score, level, rules)
	}

	assert.Equal(t, puzzle.Score{Ippon: 4, Waza: 3, Yuko: 5}, score)
	assert.Equal(t, rules.MaxLevel, level)
}

func TestTicksPerDrop(t *testing.T) {
	rules := puzzle.DefaultRules()

	assert.Equal(t, 33, rules.TicksPerDrop(1))
	assert.Equal(t, 31, rules.TicksPerDrop(2))
	assert.Equal(t, 15, rules.TicksPerDrop(10))

	steep := puzzle.Rules{BaseTicks: 35, MinTicks: 5, StepTicks: 5, StartLevel: 1, MaxLevel: 10}
	assert.Equal(t, 5, steep.TicksPerDrop(7))
	assert.Equal(t, 5, steep.TicksPerDrop(10))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, puzzle.TierNone, puzzle.TierFor(0))
	assert.Equal(t, puzzle.TierYuko, puzzle.TierFor(1))
	assert.Equal(t, puzzle.TierWaza, puzzle.TierFor(2))
	assert.Equal(t, puzzle.TierWaza, puzzle.TierFor(3))
	assert.Equal(t, puzzle.TierIppon, puzzle.TierFor(4))
	assert.Equal(t, "ippon", puzzle.TierIppon.String())
}
