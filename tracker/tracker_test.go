package tracker

import (
	"testing"

	"github.com/jsphweid/chordwatch/model"
	"github.com/stretchr/testify/assert"
)

func TestNoteOnTwiceIsIdempotent(t *testing.T) {
	once := New()
	once.NoteOn(60)

	twice := New()
	assert := assert.New(t)
	assert.True(twice.NoteOn(60))
	assert.False(twice.NoteOn(60))

	assert.Equal(once.Sorted(), twice.Sorted())
	assert.Equal(1, twice.Len())
}

func TestSortedIgnoresInsertionOrder(t *testing.T) {
	a := New()
	for _, n := range []model.Note{67, 60, 64} {
		a.NoteOn(n)
	}
	b := New()
	for _, n := range []model.Note{60, 64, 67} {
		b.NoteOn(n)
	}

	assert := assert.New(t)
	assert.Equal(model.Notes{60, 64, 67}, a.Sorted())
	assert.Equal(a.Sorted(), b.Sorted())
}

func TestNoteOffRemovesAndGoesIdle(t *testing.T) {
	tr := New()
	tr.NoteOn(60)
	tr.NoteOn(64)

	assert := assert.New(t)
	assert.Equal(Active, tr.State())
	assert.True(tr.NoteOff(60))
	assert.Equal(model.Notes{64}, tr.Sorted())
	assert.Equal(Idle, tr.State())
}

func TestNoteOffForUnheldNoteIsNoop(t *testing.T) {
	tr := New()
	tr.NoteOn(60)

	assert := assert.New(t)
	assert.False(tr.NoteOff(61))
	assert.Equal(model.Notes{60}, tr.Sorted())
}

func TestStateTransitions(t *testing.T) {
	tr := New()
	steps := []struct {
		event model.Event
		want  State
	}{
		{model.Event{Kind: model.NoteOn, Note: 60}, Idle},
		{model.Event{Kind: model.NoteOn, Note: 64}, Active},
		{model.Event{Kind: model.NoteOn, Note: 67}, Active},
		{model.Event{Kind: model.NoteOff, Note: 64}, Active},
		{model.Event{Kind: model.NoteOff, Note: 60}, Idle},
		{model.Event{Kind: model.NoteOff, Note: 67}, Idle},
	}

	assert := assert.New(t)
	for _, s := range steps {
		tr.Apply(s.event)
		assert.Equal(s.want, tr.State(), "after %v %d", s.event.Kind, s.event.Note)
	}
	assert.Equal(0, tr.Len())
}

func TestSortedIsACopy(t *testing.T) {
	tr := New()
	tr.NoteOn(64)
	tr.NoteOn(60)
	snap := tr.Sorted()
	snap[0] = 1

	assert.Equal(t, model.Notes{60, 64}, tr.Sorted())
}

func TestReset(t *testing.T) {
	tr := New()
	tr.NoteOn(60)
	tr.NoteOn(64)
	tr.Reset()

	assert := assert.New(t)
	assert.Equal(0, tr.Len())
	assert.Equal(Idle, tr.State())
	assert.True(tr.NoteOn(60))
}
