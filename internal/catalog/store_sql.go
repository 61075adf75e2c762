package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, position FROM subjects ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Subject
	for rows.Next() {
		var sub Subject
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Position); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetSubject(ctx context.Context, id string) (Subject, error) {
	var sub Subject
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, position FROM subjects WHERE id=$1`, id).
		Scan(&sub.ID, &sub.Name, &sub.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return Subject{}, ErrNotFound
	}
	return sub, err
}

func (s *SQLStore) CreateSubject(ctx context.Context, name string) (Subject, error) {
	sub := Subject{ID: uuid.NewString(), Name: name}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subjects`).Scan(&sub.Position)
	if err != nil {
		return Subject{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO subjects (id, name, position, created_at) VALUES ($1,$2,$3,$4)`,
		sub.ID, sub.Name, sub.Position, time.Now().Unix())
	if err != nil {
		return Subject{}, err
	}
	return sub, nil
}

func (s *SQLStore) ListTopics(ctx context.Context, subjectID string) ([]Topic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject_id, name, difficulty_range, position
		 FROM topics WHERE subject_id=$1 ORDER BY position, id`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Topic
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.ID, &t.SubjectID, &t.Name, &t.DifficultyRange, &t.Position); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetTopic(ctx context.Context, id string) (Topic, error) {
	var t Topic
	err := s.db.QueryRowContext(ctx,
		`SELECT id, subject_id, name, difficulty_range, position FROM topics WHERE id=$1`, id).
		Scan(&t.ID, &t.SubjectID, &t.Name, &t.DifficultyRange, &t.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return Topic{}, ErrNotFound
	}
	return t, err
}

func (s *SQLStore) CreateTopic(ctx context.Context, subjectID, name, difficultyRange string) (Topic, error) {
	if _, err := s.GetSubject(ctx, subjectID); err != nil {
		return Topic{}, err
	}
	t := Topic{ID: uuid.NewString(), SubjectID: subjectID, Name: name, DifficultyRange: difficultyRange}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM topics WHERE subject_id=$1`, subjectID).Scan(&t.Position)
	if err != nil {
		return Topic{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO topics (id, subject_id, name, difficulty_range, position, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.SubjectID, t.Name, t.DifficultyRange, t.Position, time.Now().Unix())
	if err != nil {
		return Topic{}, err
	}
	return t, nil
}

func (s *SQLStore) ListQuestions(ctx context.Context, topicID string) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic_id, question_text, difficulty_level, cognitive_type, expected_concepts, position
		 FROM questions WHERE topic_id=$1 ORDER BY position, id`, topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetQuestion(ctx context.Context, id string) (Question, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, topic_id, question_text, difficulty_level, cognitive_type, expected_concepts, position
		 FROM questions WHERE id=$1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrNotFound
	}
	return q, err
}

func (s *SQLStore) CreateQuestion(ctx context.Context, q Question) (Question, error) {
	if _, err := s.GetTopic(ctx, q.TopicID); err != nil {
		return Question{}, err
	}
	q.ID = uuid.NewString()
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE topic_id=$1`, q.TopicID).Scan(&q.Position)
	if err != nil {
		return Question{}, err
	}
	concepts, err := json.Marshal(q.ExpectedConcepts)
	if err != nil {
		return Question{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO questions (id, topic_id, question_text, difficulty_level, cognitive_type, expected_concepts, position, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		q.ID, q.TopicID, q.Text, q.DifficultyLevel, string(q.CognitiveType), string(concepts), q.Position, time.Now().Unix())
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(r rowScanner) (Question, error) {
	var q Question
	var ctype, concepts string
	if err := r.Scan(&q.ID, &q.TopicID, &q.Text, &q.DifficultyLevel, &ctype, &concepts, &q.Position); err != nil {
		return Question{}, err
	}
	q.CognitiveType = CognitiveType(ctype)
	if err := json.Unmarshal([]byte(concepts), &q.ExpectedConcepts); err != nil {
		return Question{}, err
	}
	return q, nil
}
