package termui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/gokyotris/puzzle"
)

// Command is a player intent decoded from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdRotate
	CmdDrop
	CmdStart
	CmdRestart
	CmdQuit
)

// KeyCommand decodes arrow keys, vi-style hjkl and the control keys.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyUp:
		return CmdRotate
	case tcell.KeyDown:
		return CmdDrop
	case tcell.KeyEnter:
		return CmdStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return CmdLeft
		case 'l':
			return CmdRight
		case 'k', ' ':
			return CmdRotate
		case 'j':
			return CmdDrop
		case 'r':
			return CmdRestart
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}

// Apply forwards a command to the engine. It reports false for CmdQuit.
func Apply(e *puzzle.Engine, cmd Command) bool {
	switch cmd {
	case CmdLeft:
		e.MoveLeft()
	case CmdRight:
		e.MoveRight()
	case CmdRotate:
		e.Rotate()
	case CmdDrop:
		e.SoftDrop()
	case CmdStart:
		e.Start()
	case CmdRestart:
		e.Restart()
	case CmdQuit:
		return false
	}
	return true
}
