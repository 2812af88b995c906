package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/gokyotris/logging"
	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 1000, "The number of engines played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for piece generation and bot input.")
	rate := flag.Float64("rate", 0.2, "Chance per frame that the bot presses a key on an engine.")
	logLevel := flag.String("log-level", "info", "Log level.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := logging.New(os.Stderr, "stress", *logLevel)
	logger.Info("starting engine stress test", "sessions", *sessions, "duration", *duration)

	engines, err := newEngines(*sessions, *seed)
	if err != nil {
		logger.Fatal("create engines", "err", err)
	}

	scheduler := loop.NewScheduler()
	scheduler.RegisterNamed("bot", newBot(engines, *seed, *rate))
	scheduler.RegisterNamed("engines", engineSystem(engines))

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	report.run(ctx, scheduler)
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.collect(engines, scheduler)
	logger.Info("simulation finished", "updates", report.TotalUpdates, "games", report.Games)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

func newEngines(n int, seed uint64) ([]*puzzle.Engine, error) {
	engines := make([]*puzzle.Engine, 0, n)
	for i := range n {
		e, err := puzzle.New(puzzle.WithSeed(seed + uint64(i)))
		if err != nil {
			return nil, err
		}
		e.Start()
		engines = append(engines, e)
	}
	return engines, nil
}
