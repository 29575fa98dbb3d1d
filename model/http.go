package model

// Notes and intervals are sent as number arrays; a []uint8 would be
// marshalled as base64.

type StatusResponse struct {
	Session string `json:"session"`
	Device  string `json:"device"`
	Notes   []int  `json:"notes"`
	Active  bool   `json:"active"`
	Label   string `json:"label,omitempty"`
	Matched bool   `json:"matched"`
}

type ChordEntry struct {
	Suffix    string `json:"suffix"`
	Intervals []int  `json:"intervals"`
}

type ChordsResponse struct {
	Chords []ChordEntry `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func Ints(notes []uint8) []int {
	res := make([]int, len(notes))
	for i, n := range notes {
		res[i] = int(n)
	}
	return res
}
