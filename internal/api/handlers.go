// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"globalmind/internal/common/errors"
	"globalmind/internal/models"
)

type queryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

type errorResponse struct {
	Error *errors.StandardError `json:"error"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		s.writeError(w, errors.NewInvalidQueryError("request body is not valid JSON"))
		return
	}

	query := models.Query{
		RawText:    req.Query,
		ReceivedAt: time.Now().UTC(),
	}
	if req.Language != "" {
		lang := models.Language(req.Language)
		query.RequestedLanguage = &lang
	}

	envelope, err := s.coordinator.Process(r.Context(), requestIDFrom(r.Context()), query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope)
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": languageCatalog,
	})
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"examples": exampleQueries,
	})
}

func (s *Server) handleFederationStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":         "active",
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"languages":      len(languageCatalog),
	}

	if s.store != nil {
		agg, err := s.store.Aggregates(r.Context())
		if err != nil {
			s.logger.Error("federation aggregates unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			status["metrics"] = agg
		}
	}

	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"app":     s.cfg.App.Name,
		"version": s.cfg.App.Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	stdErr, ok := errors.AsStandardError(err)
	if !ok {
		s.logger.Error("unclassified error", map[string]interface{}{
			"error": err.Error(),
		})
		stdErr = &errors.StandardError{
			Code:      "INTERNAL",
			Message:   "internal error",
			Timestamp: time.Now().UTC(),
		}
	}
	s.writeJSON(w, errors.HTTPStatus(stdErr.Code), errorResponse{Error: stdErr})
}
