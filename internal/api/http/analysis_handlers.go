package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
)

// POST /analysis/answers/{answerAttemptID}
func AnalyzeAnswerHandler(engine *analysis.Engine, store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		answerID := chi.URLParam(r, "answerAttemptID")
		answer, err := store.GetAnswer(r.Context(), answerID)
		if err != nil {
			writeErr(w, err)
			return
		}
		attempt, err := store.GetAttempt(r.Context(), answer.AssessmentID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ownAttempt(r, attempt) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		result, err := engine.AnalyzeAnswer(r.Context(), answerID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// GET /feedback/{answerAttemptID}
func GetFeedbackHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		answerID := chi.URLParam(r, "answerAttemptID")
		answer, err := store.GetAnswer(r.Context(), answerID)
		if err != nil {
			writeErr(w, err)
			return
		}
		attempt, err := store.GetAttempt(r.Context(), answer.AssessmentID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ownAttempt(r, attempt) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		fb, err := store.GetFeedback(r.Context(), answerID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fb)
	}
}
