package status

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordwatch/chord"
	"github.com/jsphweid/chordwatch/model"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Source supplies copies of the latest update. listen.Listener satisfies it.
type Source interface {
	Current() model.Update
}

type Server struct {
	session string
	device  string
	source  Source
}

func New(source Source, device string) *Server {
	return &Server{
		session: uuid.New().String(),
		device:  device,
		source:  source,
	}
}

func (s *Server) HandleStatus(w http.ResponseWriter, r *http.Request) {
	u := s.source.Current()
	writeJSON(w, http.StatusOK, model.StatusResponse{
		Session: s.session,
		Device:  s.device,
		Notes:   model.Ints(u.Notes),
		Active:  u.Active,
		Label:   u.Label,
		Matched: u.Matched,
	})
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	var res model.ChordsResponse
	for _, p := range chord.Table() {
		res.Chords = append(res.Chords, model.ChordEntry{Suffix: p.Suffix, Intervals: model.Ints(p.Intervals)})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/status", s.HandleStatus).Methods(http.MethodGet)
	router.HandleFunc("/chords", HandleChords).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	})
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("could not write response")
	}
}
