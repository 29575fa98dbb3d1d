package model

// Note is an absolute pitch, 60 being middle C.
type Note = uint8

type Notes = []Note

// Pattern is one entry of the chord table. Intervals are semitones above the
// lowest note, strictly ascending and starting at 0.
type Pattern struct {
	Suffix    string
	Intervals []uint8
}

// Update is reported after every event the listener applies.
type Update struct {
	Notes   Notes
	Active  bool
	Label   string
	Matched bool
}

// ChordAt is a chord change found while replaying a midi file.
type ChordAt struct {
	Tick    int64
	Notes   Notes
	Label   string
	Matched bool
}
