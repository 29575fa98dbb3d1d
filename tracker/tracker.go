package tracker

import (
	"github.com/jsphweid/chordwatch/model"
	"github.com/jsphweid/chordwatch/util"
)

type State uint8

const (
	// Idle means at most one note is held and no chord is looked up.
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Tracker holds the notes currently down. It is not safe for concurrent use;
// readers on another goroutine must work from Sorted copies.
type Tracker struct {
	held model.Notes
}

func New() *Tracker {
	return &Tracker{}
}

// NoteOn adds note unless it is already held, in which case it reports false.
func (t *Tracker) NoteOn(note model.Note) bool {
	if util.IndexOf(t.held, note) >= 0 {
		return false
	}
	t.held = append(t.held, note)
	return true
}

// NoteOff removes note and reports whether it was held.
func (t *Tracker) NoteOff(note model.Note) bool {
	before := len(t.held)
	t.held = util.RemoveAll(t.held, note)
	return len(t.held) != before
}

func (t *Tracker) Apply(e model.Event) bool {
	switch e.Kind {
	case model.NoteOn:
		return t.NoteOn(e.Note)
	case model.NoteOff:
		return t.NoteOff(e.Note)
	}
	return false
}

// Sorted returns the held notes in ascending order as a fresh slice.
func (t *Tracker) Sorted() model.Notes {
	return util.SortedCopy(t.held)
}

func (t *Tracker) Len() int {
	return len(t.held)
}

func (t *Tracker) State() State {
	if len(t.held) >= 2 {
		return Active
	}
	return Idle
}

func (t *Tracker) Reset() {
	t.held = t.held[:0]
}
