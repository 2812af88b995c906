package main

import (
	"math/rand/v2"

	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/puzzle"
)

// bot presses random keys on every engine. Finished sessions are restarted so
// each engine keeps playing for the whole run.
type bot struct {
	engines []*puzzle.Engine
	rng     *rand.Rand
	// rate is the chance per frame and engine of issuing a command.
	rate float64
}

func newBot(engines []*puzzle.Engine, seed uint64, rate float64) *bot {
	return &bot{
		engines: engines,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rate:    rate,
	}
}

func (b *bot) Execute(_ *loop.Frame) {
	for _, e := range b.engines {
		if e.State() != puzzle.StatePlaying {
			e.Restart()
			continue
		}
		if b.rng.Float64() >= b.rate {
			continue
		}
		switch b.rng.IntN(4) {
		case 0:
			e.MoveLeft()
		case 1:
			e.MoveRight()
		case 2:
			e.Rotate()
		case 3:
			e.SoftDrop()
		}
	}
}

// engineSystem advances every engine by one frame.
type engineSystem []*puzzle.Engine

func (s engineSystem) Execute(_ *loop.Frame) {
	for _, e := range s {
		e.Frame()
	}
}
