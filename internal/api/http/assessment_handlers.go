package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
	"github.com/mithra-tejvarma/GradientIQ/internal/rbac"
)

// ownAttempt enforces view-own semantics: students only see their own
// attempts, faculty and admin see everything.
func ownAttempt(r *http.Request, a assessment.Attempt) bool {
	role := rbac.RoleFromContext(r.Context())
	if role != "student" {
		return true
	}
	return a.UserID == rbac.SubjectFromContext(r.Context())
}

// POST /assessment/start  { "subject_id": "..." }
func StartAttemptHandler(svc *assessment.Service) http.HandlerFunc {
	type response struct {
		Attempt       assessment.Attempt `json:"assessment"`
		FirstQuestion *catalog.Question  `json:"first_question,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SubjectID string `json:"subject_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SubjectID == "" {
			http.Error(w, "subject_id required", http.StatusBadRequest)
			return
		}
		userID := rbac.SubjectFromContext(r.Context())
		attempt, first, err := svc.StartAttempt(r.Context(), userID, req.SubjectID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, response{Attempt: attempt, FirstQuestion: first})
	}
}

// POST /assessment/answer
func SubmitAnswerHandler(svc *assessment.Service, store assessment.Store) http.HandlerFunc {
	type response struct {
		Answer       assessment.AnswerAttempt `json:"answer"`
		NextQuestion *catalog.Question        `json:"next_question,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AssessmentID  string  `json:"assessment_id"`
			QuestionID    string  `json:"question_id"`
			AnswerText    *string `json:"answer_text"`
			Progress      *int    `json:"progress_percentage"`
			StoppedAtStep *int    `json:"stopped_at_step"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.AssessmentID == "" || req.QuestionID == "" {
			http.Error(w, "assessment_id and question_id required", http.StatusBadRequest)
			return
		}
		attempt, err := store.GetAttempt(r.Context(), req.AssessmentID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ownAttempt(r, attempt) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		answer, next, err := svc.SubmitAnswer(r.Context(), req.AssessmentID, req.QuestionID, req.AnswerText, req.Progress, req.StoppedAtStep)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response{Answer: answer, NextQuestion: next})
	}
}

// GET /assessment/status/{attemptID}
func AttemptStatusHandler(svc *assessment.Service, store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attemptID := chi.URLParam(r, "attemptID")
		attempt, err := store.GetAttempt(r.Context(), attemptID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ownAttempt(r, attempt) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		status, err := svc.Status(r.Context(), attemptID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// POST /assessment/{attemptID}/complete
func CompleteAttemptHandler(svc *assessment.Service, store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attemptID := chi.URLParam(r, "attemptID")
		attempt, err := store.GetAttempt(r.Context(), attemptID)
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ownAttempt(r, attempt) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		attempt, err = svc.CompleteAttempt(r.Context(), attemptID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, attempt)
	}
}

// GET /capability/subjects/{subjectID}?user_id=...
//
// Students always get their own scores; faculty and admin may name another
// user via the query parameter.
func CapabilityHandler(svc *assessment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjectID := chi.URLParam(r, "subjectID")
		userID := rbac.SubjectFromContext(r.Context())
		if rbac.RoleFromContext(r.Context()) != "student" {
			if q := r.URL.Query().Get("user_id"); q != "" {
				userID = q
			}
		}
		scores, err := svc.CapabilityBySubject(r.Context(), userID, subjectID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, scores)
	}
}
