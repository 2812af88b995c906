package loop

// Commands buffers work that must run after every system has executed for
// the current frame, such as drawing overlays that read the final state.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len reports how many callbacks are queued.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs queued callbacks in order and resets the buffer. Callbacks
// deferred during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
