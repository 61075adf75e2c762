package assessment

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type GapType string

const (
	GapConceptual GapType = "conceptual"
	GapProcedural GapType = "procedural"
	GapLogic      GapType = "logic"
)

type Attempt struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	SubjectID   string `json:"subject_id"`
	Status      Status `json:"status"`
	StartedAt   int64  `json:"started_at"`
	CompletedAt *int64 `json:"completed_at,omitempty"`
}

// AnswerAttempt is append-only: rows are never mutated after creation
// except for correctness grading at insert time.
type AnswerAttempt struct {
	ID            string `json:"id"`
	AssessmentID  string `json:"assessment_id"`
	QuestionID    string `json:"question_id"`
	AnswerText    string `json:"answer_text"`
	Progress      *int   `json:"progress_percentage,omitempty"` // 0..100
	StoppedAtStep *int   `json:"stopped_at_step,omitempty"`
	IsCorrect     *bool  `json:"is_correct,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

type CapabilityScore struct {
	UserID      string `json:"user_id"`
	TopicID     string `json:"topic_id"`
	Level       int    `json:"level"` // 0..100
	Streak      int    `json:"streak"`
	LastUpdated int64  `json:"last_updated"`
}

// Feedback is keyed by answer attempt: at most one row, replaced on re-analysis.
type Feedback struct {
	AnswerAttemptID    string  `json:"answer_attempt_id"`
	GapType            GapType `json:"gap_type"`
	Text               string  `json:"feedback_text"`
	SuggestedNextTopic *string `json:"suggested_next_topic,omitempty"`
	CreatedAt          int64   `json:"created_at"`
	UpdatedAt          int64   `json:"updated_at"`
}
