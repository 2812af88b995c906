package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/gokyotris/loop"
)

type dropCounter struct {
	every  int
	frames int
	drops  int
}

func (d *dropCounter) Execute(frame *loop.Frame) {
	d.frames++
	if d.frames >= d.every {
		d.frames = 0
		d.drops++
	}
}

// ExampleScheduler drives a frame-counting system from a synthetic tick
// source, the same way a game engine counts frames between gravity steps.
func ExampleScheduler() {
	scheduler := loop.NewScheduler()
	gravity := &dropCounter{every: 35}
	scheduler.Register(gravity)

	source := loop.NewManualSource(time.Unix(0, 0), time.Second/60, 128)
	for range 105 {
		source.Tick()
	}
	source.Stop()

	_ = scheduler.Run(context.Background(), source)

	fmt.Printf("frames=%d drops=%d\n", scheduler.Frames(), gravity.drops)
	// Output: frames=105 drops=3
}
