package chord

import (
	"fmt"

	"github.com/jsphweid/chordwatch/model"
	"github.com/jsphweid/chordwatch/pitch"
	"github.com/jsphweid/chordwatch/util"
)

// Unmatched is shown in place of a label when nothing in the table matches.
const Unmatched = "???"

// Match names the chord formed by notes, which must be sorted ascending.
// Intervals are taken from the lowest note and compared exactly, so
// inversions and extra tones do not match their base chord.
func Match(notes model.Notes) (string, bool) {
	if len(notes) == 0 {
		return "", false
	}
	root := notes[0]
	p, ok := find(intervals(notes))
	if !ok {
		return "", false
	}
	return pitch.Class(root) + p.Suffix, true
}

func intervals(notes model.Notes) []uint8 {
	root := notes[0]
	diffs := make([]uint8, len(notes))
	for i, n := range notes {
		diffs[i] = n - root
	}
	return diffs
}

func find(diffs []uint8) (model.Pattern, bool) {
	for _, p := range table {
		if equal(p.Intervals, diffs) {
			return p, true
		}
	}
	return model.Pattern{}, false
}

func equal(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CreateChordKey joins sorted notes into a key such as "60-64-67".
// notes is sorted in place.
func CreateChordKey(notes model.Notes) string {
	util.SortAsc(notes)
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}
