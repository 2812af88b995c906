package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog []Event

func (l *eventLog) OnMove()           { *l = append(*l, Event{Type: EventMove}) }
func (l *eventLog) OnRotate()         { *l = append(*l, Event{Type: EventRotate}) }
func (l *eventLog) OnLock()           { *l = append(*l, Event{Type: EventLock}) }
func (l *eventLog) OnLineClear(n int) { *l = append(*l, Event{Type: EventLineClear, Lines: n}) }
func (l *eventLog) OnGameOver()       { *l = append(*l, Event{Type: EventGameOver}) }

func TestSingleLineClear(t *testing.T) {
	var events eventLog
	e, err := New(WithKindSource(NewSequence(KindI, KindT)), WithListener(&events))
	require.NoError(t, err)
	e.Start()

	// Bottom row full except column 0.
	for c := 1; c < e.cols; c++ {
		e.grid.Set(e.rows-1, c, 2)
	}
	e.grid.Set(e.rows-2, 5, 4)

	e.Rotate()
	for range 8 {
		e.MoveLeft()
	}
	require.Equal(t, -3, e.current.Col, "vertical I should sit in column 0")
	for range 20 {
		e.SoftDrop()
	}
	events = nil
	e.Tick()

	assert.Equal(t, eventLog{{Type: EventLock}, {Type: EventLineClear, Lines: 1}}, events)
	assert.Equal(t, Score{Yuko: 1}, e.Score())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 31, e.TicksPerDrop())

	// The three upper cells of the I and the stray cell shift down one row.
	for r := e.rows - 3; r < e.rows; r++ {
		assert.Equal(t, Cell(3), e.grid.At(r, 0), "row %d", r)
	}
	assert.Equal(t, Cell(4), e.grid.At(e.rows-1, 5))
	assert.Equal(t, Empty, e.grid.At(e.rows-1, 1))
	assert.Equal(t, Empty, e.grid.At(e.rows-4, 0))
}

func TestToppedOutLockEndsGame(t *testing.T) {
	var events eventLog
	e, err := New(WithKindSource(NewSequence(KindI)), WithListener(&events))
	require.NoError(t, err)
	e.Start()

	// Fill everything but the last column so no row clears.
	for r := range e.rows {
		for c := 0; c < e.cols-1; c++ {
			e.grid.Set(r, c, 5)
		}
	}
	before := e.grid.String()

	require.Equal(t, -1, e.current.Row)
	e.Tick()

	assert.Equal(t, StateGameOver, e.State())
	assert.Equal(t, eventLog{{Type: EventGameOver}}, events)
	assert.Equal(t, before, e.grid.String(), "a topped-out piece must not be written")
}

func TestEventsFlushAfterStep(t *testing.T) {
	e, err := New(WithKindSource(NewSequence(KindO)))
	require.NoError(t, err)

	var rowsSeen []int
	e.AddListener(ListenerFuncs{Lock: func() {
		// By the time listeners run the next piece is already active.
		rowsSeen = append(rowsSeen, e.Snapshot().Active.Row)
		assert.Empty(t, e.events.pending)
	}})
	e.Start()
	for range 20 {
		e.Tick()
	}

	require.Len(t, rowsSeen, 1)
	assert.Equal(t, 0, rowsSeen[0])
}
