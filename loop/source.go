package loop

import (
	"sync"
	"time"
)

// TickSource delivers the timestamps that drive a Scheduler. Implementations
// close the channel, or stop sending, once Stop is called.
type TickSource interface {
	Ticks() <-chan time.Time
	Stop()
}

type tickerSource struct {
	ticker *time.Ticker
}

// NewTicker returns a wall-clock tick source firing every interval.
func NewTicker(interval time.Duration) TickSource {
	return &tickerSource{ticker: time.NewTicker(interval)}
}

func (t *tickerSource) Ticks() <-chan time.Time { return t.ticker.C }
func (t *tickerSource) Stop()                   { t.ticker.Stop() }

// ManualSource is a synthetic tick source whose clock only moves when Tick is
// called. It lets tests and headless runs drive a scheduler deterministically.
type ManualSource struct {
	mu      sync.Mutex
	ch      chan time.Time
	done    chan struct{}
	sending sync.WaitGroup
	now     time.Time
	step    time.Duration
	closed  bool
}

// NewManualSource creates a source starting at start and advancing by step on
// every Tick. buffer is the channel capacity.
func NewManualSource(start time.Time, step time.Duration, buffer int) *ManualSource {
	return &ManualSource{
		ch:   make(chan time.Time, buffer),
		done: make(chan struct{}),
		now:  start,
		step: step,
	}
}

func (m *ManualSource) Ticks() <-chan time.Time { return m.ch }

// Tick advances the clock by one step and delivers the new time. It blocks
// while the buffer is full and returns false once the source is stopped.
func (m *ManualSource) Tick() bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.now = m.now.Add(m.step)
	now := m.now
	m.sending.Add(1)
	m.mu.Unlock()
	defer m.sending.Done()

	select {
	case m.ch <- now:
		return true
	case <-m.done:
		return false
	}
}

// Now is the time of the most recent tick.
func (m *ManualSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Stop releases any blocked Tick, then closes the tick channel. Ticks already
// buffered stay readable. Further calls are no-ops.
func (m *ManualSource) Stop() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.done)
	m.mu.Unlock()

	// no sender can start after closed is set
	m.sending.Wait()
	close(m.ch)
}
