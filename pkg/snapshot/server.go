package snapshot

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abstractlayout/laf/pkg/laf"
)

// Server exposes stored phase snapshots over HTTP: GET /runs/{id}/phases/{n}
// returns the raw JSON Record for run id's phase n, or 404 if absent.
type Server struct {
	store Store
}

// NewServer returns a Server reading snapshots from store.
func NewServer(store Store) *Server {
	return &Server{store: store}
}

// Routes returns the chi router exposing this Server's endpoints, ready to
// be mounted standalone or nested under a larger router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/runs/{id}/phases/{n}", s.getPhase)
	return r
}

func (s *Server) getPhase(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		http.Error(w, "invalid phase number", http.StatusBadRequest)
		return
	}

	data, ok, err := s.store.Get(r.Context(), runID, laf.PhaseID(n))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
