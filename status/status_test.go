package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordwatch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed model.Update

func (f fixed) Current() model.Update { return model.Update(f) }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestStatus(t *testing.T) {
	src := fixed{Notes: model.Notes{60, 63, 67}, Active: true, Label: "Cm", Matched: true}
	s := New(src, "Keystation 49")
	w := get(t, s.Handler(), "/status")

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal("Cm", res["label"])
	assert.Equal(true, res["active"])
	assert.Equal("Keystation 49", res["device"])
	assert.Len(res["session"], 36)
	assert.Equal([]any{60.0, 63.0, 67.0}, res["notes"])
}

func TestStatusWhenIdle(t *testing.T) {
	s := New(fixed{Notes: model.Notes{}}, "dev")
	w := get(t, s.Handler(), "/status")

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, false, res["active"])
	assert.NotContains(t, res, "label")
}

func TestChords(t *testing.T) {
	w := get(t, New(fixed{}, "").Handler(), "/chords")

	var res model.ChordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert := assert.New(t)
	assert.Len(res.Chords, 29)
	assert.Equal(model.ChordEntry{Suffix: "M", Intervals: []int{0, 4, 7}}, res.Chords[0])
}

func TestUnknownRoute(t *testing.T) {
	w := get(t, New(fixed{}, "").Handler(), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
