// Package loop drives frame-based systems from a pluggable tick source.
package loop

// System is a unit of per-frame behaviour. Systems keep their own state
// between frames and run in registration order.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
