package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
)

// GET /subjects
func ListSubjectsHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjects, err := cat.ListSubjects(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, subjects)
	}
}

// POST /subjects  { "name": "..." }
func CreateSubjectHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		subject, err := cat.CreateSubject(r.Context(), req.Name)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, subject)
	}
}

// GET /subjects/{subjectID}/topics
func ListTopicsHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjectID := chi.URLParam(r, "subjectID")
		if _, err := cat.GetSubject(r.Context(), subjectID); err != nil {
			writeErr(w, err)
			return
		}
		topics, err := cat.ListTopics(r.Context(), subjectID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, topics)
	}
}

// POST /topics  { "subject_id": "...", "name": "...", "difficulty_range": "easy|medium|hard" }
func CreateTopicHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SubjectID       string `json:"subject_id"`
			Name            string `json:"name"`
			DifficultyRange string `json:"difficulty_range"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.SubjectID == "" || req.Name == "" {
			http.Error(w, "subject_id and name required", http.StatusBadRequest)
			return
		}
		if _, err := cat.GetSubject(r.Context(), req.SubjectID); err != nil {
			writeErr(w, err)
			return
		}
		topic, err := cat.CreateTopic(r.Context(), req.SubjectID, req.Name, req.DifficultyRange)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, topic)
	}
}

// GET /topics/{topicID}/questions
func ListQuestionsHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID := chi.URLParam(r, "topicID")
		if _, err := cat.GetTopic(r.Context(), topicID); err != nil {
			writeErr(w, err)
			return
		}
		questions, err := cat.ListQuestions(r.Context(), topicID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, questions)
	}
}

// POST /questions
func CreateQuestionHandler(cat catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catalog.Question
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.TopicID == "" || req.Text == "" {
			http.Error(w, "topic_id and question_text required", http.StatusBadRequest)
			return
		}
		if req.DifficultyLevel < 1 || req.DifficultyLevel > 10 {
			http.Error(w, "difficulty_level must be 1..10", http.StatusBadRequest)
			return
		}
		switch req.CognitiveType {
		case catalog.Conceptual, catalog.Procedural:
		default:
			http.Error(w, "cognitive_type must be conceptual or procedural", http.StatusBadRequest)
			return
		}
		if _, err := cat.GetTopic(r.Context(), req.TopicID); err != nil {
			writeErr(w, err)
			return
		}
		question, err := cat.CreateQuestion(r.Context(), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, question)
	}
}
