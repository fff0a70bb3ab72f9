package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
	"eplotdb/internal/logging"
)

func (s *Server) handleListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := s.reader.ListSeries(r.Context())
	if err != nil {
		s.internalError(w, "list series", err)
		return
	}
	writeJSON(w, http.StatusOK, FromSeriesList(series))
}

func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	series, ok := s.lookupSeries(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, FromSeries(*series))
}

func (s *Server) handleSeriesEpisodes(w http.ResponseWriter, r *http.Request) {
	series, ok := s.lookupSeries(w, r)
	if !ok {
		return
	}
	episodes, err := s.reader.EpisodesForSeries(r.Context(), series.ID)
	if err != nil {
		s.internalError(w, "list series episodes", err)
		return
	}
	writeJSON(w, http.StatusOK, FromEpisodes(episodes))
}

func (s *Server) handleListEpisodes(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("series"))
	if name == "" {
		episodes, err := s.reader.ListEpisodes(r.Context())
		if err != nil {
			s.internalError(w, "list episodes", err)
			return
		}
		writeJSON(w, http.StatusOK, FromEpisodes(episodes))
		return
	}

	series, err := s.reader.SeriesByName(r.Context(), name)
	if err != nil {
		s.internalError(w, "find series", err)
		return
	}
	if series == nil {
		writeJSON(w, http.StatusOK, []Episode{})
		return
	}
	episodes, err := s.reader.EpisodesForSeries(r.Context(), series.ID)
	if err != nil {
		s.internalError(w, "list series episodes", err)
		return
	}
	writeJSON(w, http.StatusOK, FromEpisodes(episodes))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	health, err := s.reader.CheckHealth(r.Context())
	if err != nil {
		s.internalError(w, "check health", err)
		return
	}
	writeJSON(w, http.StatusOK, FromHealth(health, deps.CheckBinaries(s.deps)))
}

func (s *Server) lookupSeries(w http.ResponseWriter, r *http.Request) (*catalog.Series, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "series id must be a positive integer")
		return nil, false
	}
	series, err := s.reader.SeriesByID(r.Context(), id)
	if err != nil {
		s.internalError(w, "get series", err)
		return nil, false
	}
	if series == nil {
		writeError(w, http.StatusNotFound, "series not found")
		return nil, false
	}
	return series, true
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	logging.ErrorWithContext(s.logger, "api request failed", "api_read_failed",
		logging.String("operation", op),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check the catalog database"),
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
