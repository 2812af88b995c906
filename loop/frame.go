package loop

// Frame is passed to every system during one scheduler update.
type Frame struct {
	// Number counts updates since the scheduler was created, starting at 1.
	Number    uint64
	DeltaTime float64
	Commands  *Commands
}

func newFrame(number uint64, dt float64) *Frame {
	return &Frame{
		Number:    number,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
