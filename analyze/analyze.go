package analyze

import (
	"sort"

	"github.com/jsphweid/chordwatch/chord"
	"github.com/jsphweid/chordwatch/model"
	"github.com/jsphweid/chordwatch/tracker"
	"gitlab.com/gomidi/midi/v2/smf"
)

func reduce(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Tick:      absTicks,
					IsNoteOff: false,
					Note:      key,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Tick:      absTicks,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	sort.SliceStable(reducedEvents, func(i, j int) bool {
		return reducedEvents[i].Tick < reducedEvents[j].Tick
	})

	for start := 0; start < len(reducedEvents); {
		end := start + 1
		for end < len(reducedEvents) && reducedEvents[end].Tick == reducedEvents[start].Tick {
			end++
		}
		releasesFirst(reducedEvents[start:end])
		start = end
	}
	return reducedEvents
}

// releasesFirst reorders events sharing a tick so note offs come before note
// ons, except a note off that follows a note on for the same key in the
// group. That pair is a zero-length note and must stay pressed then released.
func releasesFirst(group []model.ReducedEvent) {
	pressed := make(map[model.Note]bool)
	var early, rest []model.ReducedEvent
	for _, evt := range group {
		switch {
		case !evt.IsNoteOff:
			pressed[evt.Note] = true
			rest = append(rest, evt)
		case pressed[evt.Note]:
			rest = append(rest, evt)
		default:
			early = append(early, evt)
		}
	}
	copy(group, append(early, rest...))
}

// Progression replays every track of s through the same tracker and matcher
// used for live input and returns each change of held notes while a chord is
// sounding. Events sharing a tick are applied together so a chord struck at
// once yields one entry; a retriggered chord with the same notes is not
// repeated.
func Progression(s *smf.SMF) []model.ChordAt {
	var res []model.ChordAt
	events := reduce(s)
	t := tracker.New()

	var last string
	var lastNotes model.Notes
	for i, evt := range events {
		kind := model.NoteOn
		if evt.IsNoteOff {
			kind = model.NoteOff
		}
		t.Apply(model.Event{Kind: kind, Note: evt.Note})

		if i+1 < len(events) && events[i+1].Tick == evt.Tick {
			continue
		}
		if t.State() != tracker.Active {
			last = ""
			lastNotes = nil
			continue
		}

		notes := t.Sorted()
		label, ok := chord.Match(notes)
		if !ok {
			label = chord.Unmatched
		}
		if label == last && sameNotes(notes, lastNotes) {
			continue
		}
		last = label
		lastNotes = notes
		res = append(res, model.ChordAt{Tick: evt.Tick, Notes: notes, Label: label, Matched: ok})
	}
	return res
}

func sameNotes(a, b model.Notes) bool {
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
