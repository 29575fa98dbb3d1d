package model

import "fmt"

type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

type Event struct {
	Kind EventKind
	Note Note
}

// ReducedEvent is a note event positioned in absolute ticks.
type ReducedEvent struct {
	Tick      int64
	IsNoteOff bool
	Note      Note
}
