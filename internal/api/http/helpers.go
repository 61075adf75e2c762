package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto HTTP statuses. Unknown ids surface as
// 404, never as silent defaults.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, assessment.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, assessment.ErrAttemptCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
