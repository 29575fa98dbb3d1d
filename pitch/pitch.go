package pitch

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordwatch/model"
)

// MaxNote is the highest note a midi key message can carry.
const MaxNote = 127

var ErrOutOfRange = errors.New("note out of range")

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Class returns the pitch-class name of a note. Only sharps are used.
func Class(note model.Note) string {
	return names[note%12]
}

// Name names a note, optionally with its octave (60 is C4). Notes above 127
// are rejected, and so are notes below 12 when the octave is requested since
// they would fall in octave -1.
func Name(note model.Note, includeOctave bool) (string, error) {
	if note > MaxNote {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, note)
	}
	if !includeOctave {
		return Class(note), nil
	}
	if note < 12 {
		return "", fmt.Errorf("%w: %d has no octave", ErrOutOfRange, note)
	}
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", Class(note), octave), nil
}

func MustName(note model.Note, includeOctave bool) string {
	name, err := Name(note, includeOctave)
	if err != nil {
		panic(err)
	}
	return name
}
