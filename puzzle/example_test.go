package puzzle_test

import (
	"fmt"

	"github.com/plus3/gokyotris/puzzle"
)

// ExampleEngine plays a scripted sequence: four O pieces side by side fill
// the two bottom rows of the default 16x8 board.
func ExampleEngine() {
	engine, err := puzzle.New(
		puzzle.WithKindSource(puzzle.NewSequence(puzzle.KindO)),
		puzzle.WithListener(puzzle.ListenerFuncs{
			LineClear: func(lines int) { fmt.Println("cleared", lines, "lines") },
		}),
	)
	if err != nil {
		panic(err)
	}

	engine.Start()
	for _, col := range []int{0, 2, 4, 6} {
		for engine.Snapshot().Active.Col > col {
			engine.MoveLeft()
		}
		for engine.Snapshot().Active.Col < col {
			engine.MoveRight()
		}
		for engine.Snapshot().Active.Row < 14 {
			engine.SoftDrop()
		}
		engine.Tick()
	}

	snap := engine.Snapshot()
	fmt.Printf("score=%+v level=%d ticks=%d\n", snap.Score, snap.Level, snap.TicksPerDrop)
	// Output:
	// cleared 2 lines
	// score={Ippon:0 Waza:1 Yuko:0} level=2 ticks=31
}
