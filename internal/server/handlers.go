package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/json-validator-api/internal/types"
	"github.com/jonathan/json-validator-api/internal/validator"
)

// handleValidate runs the submitted text through the external validator and
// returns the structured verdict. The HTTP status is 200 for any completed
// run regardless of validity; the verdict is carried in the body.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.missingInputResponse(w)
		return
	}
	if err := req.Validate(); err != nil {
		s.missingInputResponse(w)
		return
	}

	result, err := s.validator.Validate(r.Context(), *req.JSON)
	if err != nil {
		var timeoutErr *validator.TimeoutError
		if errors.As(err, &timeoutErr) {
			s.metrics.Timeouts.Inc()
			s.jsonResponse(w, http.StatusInternalServerError, types.ValidationResult{
				Valid:   false,
				Message: "Validation timeout",
				Errors:  []string{"Validation process took too long"},
			})
			return
		}

		log.Printf("validator run failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, types.ValidationResult{
			Valid:   false,
			Message: "Server error",
			Errors:  []string{err.Error()},
		})
		return
	}

	s.metrics.Verdicts.WithLabelValues(verdictLabel(result.Valid)).Inc()
	s.jsonResponse(w, http.StatusOK, result)
}

// missingInputResponse is the fixed 400 body for an absent or unreadable
// "json" field. No external process is invoked on this path.
func (s *Server) missingInputResponse(w http.ResponseWriter) {
	s.jsonResponse(w, http.StatusBadRequest, types.ValidationResult{
		Valid:   false,
		Message: "No JSON input provided",
		Errors:  []string{`Request must include "json" field`},
	})
}

func verdictLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// handleExamples returns the fixed example sets.
func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.Examples())
}

// handleHealth probes the Java runtime. The endpoint never fails: an
// unreachable runtime is reported as "degraded" with status 200.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	javaAvailable := s.validator.Probe(r.Context())

	status := "healthy"
	if !javaAvailable {
		status = "degraded"
	}

	s.jsonResponse(w, http.StatusOK, types.HealthStatus{
		Status:        status,
		JavaAvailable: javaAvailable,
		ValidatorPath: s.classpath,
	})
}

// handleVisitorCount returns the current count without mutating it.
func (s *Server) handleVisitorCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.visitors.Get(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Counter error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, types.VisitorCount{Count: count})
}

// handleVisitorIncrement applies one increment and returns the new count.
func (s *Server) handleVisitorIncrement(w http.ResponseWriter, r *http.Request) {
	count, err := s.visitors.Increment(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Counter error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, types.VisitorCount{Count: count})
}
