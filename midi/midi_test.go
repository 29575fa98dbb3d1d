package midi

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noPorts struct{}

func (noPorts) Ins() []drivers.In { return nil }

func TestFirstInputWithoutDevices(t *testing.T) {
	in, err := FirstInput(noPorts{})
	assert.Nil(t, in)
	assert.ErrorIs(t, err, ErrNoInputSource)
}

func TestConnectionErrorUnwraps(t *testing.T) {
	cause := errors.New("device busy")
	var err error = &ConnectionError{Device: "Keystation", Err: cause}

	assert := assert.New(t)
	assert.ErrorIs(err, cause)
	assert.Equal("could not connect to Keystation: device busy", err.Error())

	var ce *ConnectionError
	assert.True(errors.As(err, &ce))
	assert.Equal("Keystation", ce.Device)
}

func writeSMF(t *testing.T) string {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(0, gomidi.NoteOn(0, 64, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Add(0, gomidi.NoteOff(0, 64))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "two.mid")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestReadMidiFile(t *testing.T) {
	s, err := ReadMidiFile(writeSMF(t))
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(garbage, []byte("not midi at all"), 0644))
	s, err := ReadMidiFile(garbage)
	assert.Error(t, err)
	assert.NotNil(t, s)
}
