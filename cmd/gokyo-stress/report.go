package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []loop.SystemStats
	Games          int
	Pieces         int
	Lines          int
	Score          puzzle.Score
	BestLevel      int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// run drives the scheduler as fast as possible until ctx is done.
func (r *Report) run(ctx context.Context, scheduler *loop.Scheduler) {
	start := time.Now()
	last := start
	for ctx.Err() == nil {
		now := time.Now()
		dt := now.Sub(last)
		last = now

		scheduler.Once(dt.Seconds())
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, time.Since(now))
		r.TotalUpdates++
	}
	r.TotalTime = time.Since(start)
	r.UpdateTime.Finalize()
}

// collect sums the session counters of every engine.
func (r *Report) collect(engines []*puzzle.Engine, scheduler *loop.Scheduler) {
	for _, e := range engines {
		st := e.Stats()
		r.Games += st.Sessions
		r.Pieces += st.Pieces
		r.Lines += st.Lines
		r.Score.Ippon += st.PerTier[puzzle.TierIppon]
		r.Score.Waza += st.PerTier[puzzle.TierWaza]
		r.Score.Yuko += st.PerTier[puzzle.TierYuko]
		r.BestLevel = max(r.BestLevel, e.Level())
	}
	r.Systems = scheduler.GetStats().Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Engine Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Play
- **Games:** {{.Games}}
- **Pieces:** {{.Pieces}}
- **Lines:** {{.Lines}}
- **Ippon / Waza / Yuko:** {{.Score.Ippon}} / {{.Score.Waza}} / {{.Score.Yuko}}
- **Best Level:** {{.BestLevel}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
