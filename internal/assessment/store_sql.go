package assessment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLStore struct {
	db     *sql.DB
	q      dbtx
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, q: db, driver: driver}
}

// InTx serializes writes per attempt: postgres takes a row lock on the
// attempt inside fn (see GetAttempt), sqlite serializes at the database
// level via its write lock.
func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	txStore := &SQLStore{db: s.db, q: tx, driver: s.driver}
	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) inTx() bool {
	_, ok := s.q.(*sql.Tx)
	return ok
}

func (s *SQLStore) CreateAttempt(ctx context.Context, userID, subjectID string) (Attempt, error) {
	a := Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		SubjectID: subjectID,
		Status:    StatusInProgress,
		StartedAt: time.Now().Unix(),
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO assessment_attempts (id, user_id, subject_id, status, started_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.UserID, a.SubjectID, string(a.Status), a.StartedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	query := `SELECT id, user_id, subject_id, status, started_at, completed_at
	          FROM assessment_attempts WHERE id=$1`
	if s.driver == "postgres" && s.inTx() {
		query += ` FOR UPDATE`
	}
	var a Attempt
	var status string
	var completed sql.NullInt64
	err := s.q.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.UserID, &a.SubjectID, &status, &a.StartedAt, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrNotFound
	}
	if err != nil {
		return Attempt{}, err
	}
	a.Status = Status(status)
	if completed.Valid {
		v := completed.Int64
		a.CompletedAt = &v
	}
	return a, nil
}

func (s *SQLStore) CompleteAttempt(ctx context.Context, id string) (Attempt, error) {
	a, err := s.GetAttempt(ctx, id)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == StatusCompleted {
		return a, nil
	}
	now := time.Now().Unix()
	_, err = s.q.ExecContext(ctx,
		`UPDATE assessment_attempts SET status=$1, completed_at=$2 WHERE id=$3`,
		string(StatusCompleted), now, id)
	if err != nil {
		return Attempt{}, err
	}
	a.Status = StatusCompleted
	a.CompletedAt = &now
	return a, nil
}

func (s *SQLStore) AppendAnswer(ctx context.Context, a AnswerAttempt) (AnswerAttempt, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().Unix()
	var progress, stopped sql.NullInt64
	if a.Progress != nil {
		progress = sql.NullInt64{Int64: int64(*a.Progress), Valid: true}
	}
	if a.StoppedAtStep != nil {
		stopped = sql.NullInt64{Int64: int64(*a.StoppedAtStep), Valid: true}
	}
	var correct sql.NullBool
	if a.IsCorrect != nil {
		correct = sql.NullBool{Bool: *a.IsCorrect, Valid: true}
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO answer_attempts (id, assessment_id, question_id, answer_text, progress_percentage, stopped_at_step, is_correct, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.AssessmentID, a.QuestionID, a.AnswerText, progress, stopped, correct, a.CreatedAt)
	if err != nil {
		return AnswerAttempt{}, err
	}
	return a, nil
}

func (s *SQLStore) GetAnswer(ctx context.Context, id string) (AnswerAttempt, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT id, assessment_id, question_id, answer_text, progress_percentage, stopped_at_step, is_correct, created_at
		 FROM answer_attempts WHERE id=$1`, id)
	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return AnswerAttempt{}, ErrNotFound
	}
	return a, err
}

func (s *SQLStore) ListAnswers(ctx context.Context, attemptID string) ([]AnswerAttempt, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, assessment_id, question_id, answer_text, progress_percentage, stopped_at_step, is_correct, created_at
		 FROM answer_attempts WHERE assessment_id=$1 ORDER BY created_at, id`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AnswerAttempt
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListAnsweredQuestionIDs(ctx context.Context, attemptID string) (map[string]bool, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT question_id FROM answer_attempts WHERE assessment_id=$1`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (s *SQLStore) ListCapabilities(ctx context.Context, userID string, topicIDs []string) ([]CapabilityScore, error) {
	var out []CapabilityScore
	for _, topicID := range topicIDs {
		var c CapabilityScore
		err := s.q.QueryRowContext(ctx,
			`SELECT user_id, topic_id, level, streak, last_updated
			 FROM capability_scores WHERE user_id=$1 AND topic_id=$2`, userID, topicID).
			Scan(&c.UserID, &c.TopicID, &c.Level, &c.Streak, &c.LastUpdated)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *SQLStore) UpsertCapability(ctx context.Context, c CapabilityScore) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO capability_scores (user_id, topic_id, level, streak, last_updated)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id, topic_id) DO UPDATE SET
		   level=EXCLUDED.level, streak=EXCLUDED.streak, last_updated=EXCLUDED.last_updated`,
		c.UserID, c.TopicID, c.Level, c.Streak, time.Now().Unix())
	return err
}

func (s *SQLStore) UpsertFeedback(ctx context.Context, answerAttemptID string, gap GapType, text string, suggested *string) (Feedback, error) {
	now := time.Now().Unix()
	var topic sql.NullString
	if suggested != nil {
		topic = sql.NullString{String: *suggested, Valid: true}
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO feedback (answer_attempt_id, gap_type, feedback_text, suggested_next_topic, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (answer_attempt_id) DO UPDATE SET
		   gap_type=EXCLUDED.gap_type, feedback_text=EXCLUDED.feedback_text,
		   suggested_next_topic=EXCLUDED.suggested_next_topic, updated_at=EXCLUDED.updated_at`,
		answerAttemptID, string(gap), text, topic, now, now)
	if err != nil {
		return Feedback{}, err
	}
	return s.GetFeedback(ctx, answerAttemptID)
}

func (s *SQLStore) GetFeedback(ctx context.Context, answerAttemptID string) (Feedback, error) {
	var f Feedback
	var gap string
	var topic sql.NullString
	err := s.q.QueryRowContext(ctx,
		`SELECT answer_attempt_id, gap_type, feedback_text, suggested_next_topic, created_at, updated_at
		 FROM feedback WHERE answer_attempt_id=$1`, answerAttemptID).
		Scan(&f.AnswerAttemptID, &gap, &f.Text, &topic, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Feedback{}, ErrNotFound
	}
	if err != nil {
		return Feedback{}, err
	}
	f.GapType = GapType(gap)
	if topic.Valid {
		v := topic.String
		f.SuggestedNextTopic = &v
	}
	return f, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnswer(r rowScanner) (AnswerAttempt, error) {
	var a AnswerAttempt
	var progress, stopped sql.NullInt64
	var correct sql.NullBool
	if err := r.Scan(&a.ID, &a.AssessmentID, &a.QuestionID, &a.AnswerText, &progress, &stopped, &correct, &a.CreatedAt); err != nil {
		return AnswerAttempt{}, err
	}
	if progress.Valid {
		v := int(progress.Int64)
		a.Progress = &v
	}
	if stopped.Valid {
		v := int(stopped.Int64)
		a.StoppedAtStep = &v
	}
	if correct.Valid {
		v := correct.Bool
		a.IsCorrect = &v
	}
	return a, nil
}
