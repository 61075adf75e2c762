package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStore backs tests and demo runs without a database file.
type memoryStore struct {
	mu        sync.RWMutex
	subjects  []Subject
	topics    []Topic
	questions []Question
}

func NewInMemoryStore() Provider {
	return &memoryStore{}
}

func (m *memoryStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Subject(nil), m.subjects...), nil
}

func (m *memoryStore) GetSubject(ctx context.Context, id string) (Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return Subject{}, ErrNotFound
}

func (m *memoryStore) CreateSubject(ctx context.Context, name string) (Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Subject{ID: uuid.NewString(), Name: name, Position: len(m.subjects)}
	m.subjects = append(m.subjects, s)
	return s, nil
}

func (m *memoryStore) ListTopics(ctx context.Context, subjectID string) ([]Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Topic
	for _, t := range m.topics {
		if t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryStore) GetTopic(ctx context.Context, id string) (Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.topics {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, ErrNotFound
}

func (m *memoryStore) CreateTopic(ctx context.Context, subjectID, name, difficultyRange string) (Topic, error) {
	if _, err := m.GetSubject(ctx, subjectID); err != nil {
		return Topic{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	pos := 0
	for _, t := range m.topics {
		if t.SubjectID == subjectID {
			pos++
		}
	}
	t := Topic{ID: uuid.NewString(), SubjectID: subjectID, Name: name, DifficultyRange: difficultyRange, Position: pos}
	m.topics = append(m.topics, t)
	return t, nil
}

func (m *memoryStore) ListQuestions(ctx context.Context, topicID string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.questions {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) GetQuestion(ctx context.Context, id string) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrNotFound
}

func (m *memoryStore) CreateQuestion(ctx context.Context, q Question) (Question, error) {
	if _, err := m.GetTopic(ctx, q.TopicID); err != nil {
		return Question{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	q.ID = uuid.NewString()
	q.Position = 0
	for _, existing := range m.questions {
		if existing.TopicID == q.TopicID {
			q.Position++
		}
	}
	m.questions = append(m.questions, q)
	return q, nil
}
