package chord

import (
	"fmt"

	"github.com/jsphweid/chordwatch/model"
)

// Order matters: the first matching entry wins, and the sparser voicing of a
// quality is listed before the one with the fifth.
var table = []model.Pattern{
	{Suffix: "M", Intervals: []uint8{0, 4, 7}},
	{Suffix: "maj7", Intervals: []uint8{0, 4, 11}},
	{Suffix: "maj7", Intervals: []uint8{0, 4, 7, 11}},
	{Suffix: "maj9", Intervals: []uint8{0, 4, 11, 14}},
	{Suffix: "maj9", Intervals: []uint8{0, 4, 7, 11, 14}},
	{Suffix: "maj11", Intervals: []uint8{0, 4, 11, 17}},
	{Suffix: "maj11", Intervals: []uint8{0, 4, 7, 11, 14, 17}},
	{Suffix: "6", Intervals: []uint8{0, 4, 9}},
	{Suffix: "6", Intervals: []uint8{0, 4, 7, 9}},
	{Suffix: "7", Intervals: []uint8{0, 4, 10}},
	{Suffix: "7", Intervals: []uint8{0, 4, 7, 10}},
	{Suffix: "sus4", Intervals: []uint8{0, 5}},
	{Suffix: "sus4", Intervals: []uint8{0, 5, 7}},
	{Suffix: "sus2", Intervals: []uint8{0, 2}},
	{Suffix: "sus2", Intervals: []uint8{0, 2, 7}},
	{Suffix: "m", Intervals: []uint8{0, 3, 7}},
	{Suffix: "m7", Intervals: []uint8{0, 3, 10}},
	{Suffix: "m7", Intervals: []uint8{0, 3, 7, 10}},
	{Suffix: "m6", Intervals: []uint8{0, 3, 8}},
	{Suffix: "m6", Intervals: []uint8{0, 3, 7, 8}},
	{Suffix: "m9", Intervals: []uint8{0, 3, 10, 14}},
	{Suffix: "m9", Intervals: []uint8{0, 3, 7, 10, 14}},
	{Suffix: "dim", Intervals: []uint8{0, 3, 6}},
	{Suffix: "dim7", Intervals: []uint8{0, 3, 6, 9}},
	{Suffix: "m7b5", Intervals: []uint8{0, 3, 6, 10}},
	{Suffix: "5", Intervals: []uint8{0, 7}},
	{Suffix: "aug", Intervals: []uint8{0, 4, 8}},
	{Suffix: "aug7", Intervals: []uint8{0, 4, 8, 10}},
	{Suffix: "maj7#5", Intervals: []uint8{0, 4, 8, 11}},
}

func init() {
	if err := validate(table); err != nil {
		panic(err)
	}
}

func validate(patterns []model.Pattern) error {
	for i, p := range patterns {
		if len(p.Intervals) == 0 || p.Intervals[0] != 0 {
			return fmt.Errorf("chord table entry %d (%s) must start at 0", i, p.Suffix)
		}
		for j := 1; j < len(p.Intervals); j++ {
			if p.Intervals[j] <= p.Intervals[j-1] {
				return fmt.Errorf("chord table entry %d (%s) is not strictly ascending", i, p.Suffix)
			}
		}
	}
	return nil
}

// Table returns a copy of the chord table in matching order.
func Table() []model.Pattern {
	res := make([]model.Pattern, len(table))
	for i, p := range table {
		res[i] = model.Pattern{
			Suffix:    p.Suffix,
			Intervals: append([]uint8(nil), p.Intervals...),
		}
	}
	return res
}
