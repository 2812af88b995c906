package puzzle

// EventType identifies a notification raised by the engine.
type EventType uint8

const (
	EventMove EventType = iota + 1
	EventRotate
	EventLock
	EventLineClear
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line-clear"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a single queued notification. Lines is set for EventLineClear.
type Event struct {
	Type  EventType
	Lines int
}

// Listener receives engine notifications. Callbacks run after the step that
// raised them has completed, so reading a Snapshot from inside one is safe.
type Listener interface {
	OnMove()
	OnRotate()
	OnLock()
	OnLineClear(lines int)
	OnGameOver()
}

// ListenerFuncs adapts optional callbacks to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Move      func()
	Rotate    func()
	Lock      func()
	LineClear func(lines int)
	GameOver  func()
}

func (l ListenerFuncs) OnMove() {
	if l.Move != nil {
		l.Move()
	}
}

func (l ListenerFuncs) OnRotate() {
	if l.Rotate != nil {
		l.Rotate()
	}
}

func (l ListenerFuncs) OnLock() {
	if l.Lock != nil {
		l.Lock()
	}
}

func (l ListenerFuncs) OnLineClear(lines int) {
	if l.LineClear != nil {
		l.LineClear(lines)
	}
}

func (l ListenerFuncs) OnGameOver() {
	if l.GameOver != nil {
		l.GameOver()
	}
}

// eventQueue buffers events raised during a step until it completes.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) push(e Event) {
	q.pending = append(q.pending, e)
}

// flush delivers every pending event to every listener, then resets the
// buffer. Events raised by listeners while flushing are delivered by the
// command that raised them.
func (q *eventQueue) flush(listeners []Listener) {
	if len(q.pending) == 0 {
		return
	}
	events := q.pending
	q.pending = nil
	for _, ev := range events {
		for _, l := range listeners {
			dispatch(l, ev)
		}
	}
}

func dispatch(l Listener, ev Event) {
	switch ev.Type {
	case EventMove:
		l.OnMove()
	case EventRotate:
		l.OnRotate()
	case EventLock:
		l.OnLock()
	case EventLineClear:
		l.OnLineClear(ev.Lines)
	case EventGameOver:
		l.OnGameOver()
	}
}
