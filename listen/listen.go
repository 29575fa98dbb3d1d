package listen

import (
	"sync"

	"github.com/jsphweid/chordwatch/chord"
	"github.com/jsphweid/chordwatch/model"
	"github.com/jsphweid/chordwatch/pitch"
	"github.com/jsphweid/chordwatch/tracker"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

type Reporter func(model.Update)

// Listener turns note events into chord updates. Events must arrive from a
// single goroutine in the order they were played. Current may be called from
// anywhere.
type Listener struct {
	tracker *tracker.Tracker
	report  Reporter

	mu      sync.Mutex
	current model.Update
}

func New(report Reporter) *Listener {
	if report == nil {
		report = func(model.Update) {}
	}
	return &Listener{
		tracker: tracker.New(),
		report:  report,
	}
}

// FromMessage converts a midi message to a note event. A note on with zero
// velocity counts as a note off.
func FromMessage(msg midi.Message) (model.Event, bool) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return model.Event{Kind: model.NoteOn, Note: key}, true
	case msg.GetNoteEnd(&ch, &key):
		return model.Event{Kind: model.NoteOff, Note: key}, true
	}
	return model.Event{}, false
}

// HandleMessage has the signature midi.ListenTo expects.
func (l *Listener) HandleMessage(msg midi.Message, timestampms int32) {
	e, ok := FromMessage(msg)
	if !ok {
		return
	}
	l.Handle(e)
}

func (l *Listener) Handle(e model.Event) {
	wasActive := l.tracker.State() == tracker.Active
	if !l.tracker.Apply(e) {
		l.logIgnored(e)
		return
	}

	if l.tracker.State() != tracker.Active {
		if wasActive {
			l.publish(model.Update{Notes: l.tracker.Sorted()})
		} else {
			l.store(model.Update{Notes: l.tracker.Sorted()})
		}
		return
	}

	notes := l.tracker.Sorted()
	label, ok := chord.Match(notes)
	if !ok {
		label = chord.Unmatched
	}
	log.WithFields(log.Fields{
		"notes": chord.CreateChordKey(append(model.Notes(nil), notes...)),
		"label": label,
	}).Debug("chord lookup")
	l.publish(model.Update{Notes: notes, Active: true, Label: label, Matched: ok})
}

// Reset forgets all held notes, reporting a cleared update if a chord was
// showing.
func (l *Listener) Reset() {
	wasActive := l.tracker.State() == tracker.Active
	l.tracker.Reset()
	if wasActive {
		l.publish(model.Update{Notes: model.Notes{}})
	} else {
		l.store(model.Update{Notes: model.Notes{}})
	}
}

// Current returns a copy of the last update.
func (l *Listener) Current() model.Update {
	l.mu.Lock()
	defer l.mu.Unlock()
	u := l.current
	u.Notes = append(model.Notes{}, u.Notes...)
	return u
}

func (l *Listener) store(u model.Update) {
	l.mu.Lock()
	l.current = u
	l.mu.Unlock()
}

func (l *Listener) publish(u model.Update) {
	l.store(u)
	l.report(u)
}

func (l *Listener) logIgnored(e model.Event) {
	name := pitch.Class(e.Note)
	if e.Kind == model.NoteOn {
		log.Debugf("note double pressed: %s (%d)", name, e.Note)
		return
	}
	log.Debugf("note off for unpressed note: %s (%d)", name, e.Note)
}
