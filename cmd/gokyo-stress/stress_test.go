package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
)

func TestBotKeepsEnginesPlaying(t *testing.T) {
	engines, err := newEngines(4, 7)
	require.NoError(t, err)

	scheduler := loop.NewScheduler()
	b := newBot(engines, 7, 1.0)
	scheduler.RegisterNamed("bot", b)
	scheduler.RegisterNamed("engines", engineSystem(engines))
	scheduler.Advance(20000, 1.0/60)

	b.Execute(nil)
	for i, e := range engines {
		st := e.Stats()
		assert.Greater(t, st.Pieces, 1, "engine %d", i)
		assert.GreaterOrEqual(t, st.Sessions, 1, "engine %d", i)
		assert.Equal(t, puzzle.StatePlaying, e.State(), "engine %d", i)
	}
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	engines, err := newEngines(2, 1)
	require.NoError(t, err)
	scheduler := loop.NewScheduler()
	scheduler.RegisterNamed("bot", newBot(engines, 1, 0.5))
	scheduler.RegisterNamed("engines", engineSystem(engines))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := &Report{Duration: 20 * time.Millisecond, Sessions: 2, Seed: 1}
	r.run(ctx, scheduler)
	r.collect(engines, scheduler)

	assert.Positive(t, r.TotalUpdates)
	assert.Equal(t, r.TotalUpdates, int64(len(r.UpdateTime.Samples)))
	assert.GreaterOrEqual(t, r.Games, 2)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Engine Stress Test Report")
	assert.Contains(t, out, "**Sessions:** 2")
	assert.Contains(t, out, "**bot:**")
	assert.Contains(t, out, "**engines:**")
	assert.NotContains(t, out, "GC Pause Durations")
}
