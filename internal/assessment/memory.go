package assessment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore keeps everything in process. Used by tests and demo runs;
// InTx serializes submissions with a coarse lock instead of row locks.
type memoryStore struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	attempts map[string]Attempt
	answers  []AnswerAttempt
	caps     map[string]CapabilityScore // userID|topicID
	feedback map[string]Feedback        // answerAttemptID
}

func NewInMemoryStore() Store {
	return &memoryStore{
		attempts: map[string]Attempt{},
		caps:     map[string]CapabilityScore{},
		feedback: map[string]Feedback{},
	}
}

func capKey(userID, topicID string) string { return userID + "|" + topicID }

func (m *memoryStore) InTx(ctx context.Context, fn func(Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

func (m *memoryStore) CreateAttempt(ctx context.Context, userID, subjectID string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := Attempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		SubjectID: subjectID,
		Status:    StatusInProgress,
		StartedAt: time.Now().Unix(),
	}
	m.attempts[a.ID] = a
	return a, nil
}

func (m *memoryStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) CompleteAttempt(ctx context.Context, id string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	if a.Status != StatusCompleted {
		now := time.Now().Unix()
		a.Status = StatusCompleted
		a.CompletedAt = &now
		m.attempts[id] = a
	}
	return a, nil
}

func (m *memoryStore) AppendAnswer(ctx context.Context, a AnswerAttempt) (AnswerAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[a.AssessmentID]; !ok {
		return AnswerAttempt{}, ErrNotFound
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().Unix()
	m.answers = append(m.answers, a)
	return a, nil
}

func (m *memoryStore) GetAnswer(ctx context.Context, id string) (AnswerAttempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.answers {
		if a.ID == id {
			return a, nil
		}
	}
	return AnswerAttempt{}, ErrNotFound
}

func (m *memoryStore) ListAnswers(ctx context.Context, attemptID string) ([]AnswerAttempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []AnswerAttempt
	for _, a := range m.answers {
		if a.AssessmentID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListAnsweredQuestionIDs(ctx context.Context, attemptID string) (map[string]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[string]bool{}
	for _, a := range m.answers {
		if a.AssessmentID == attemptID {
			out[a.QuestionID] = true
		}
	}
	return out, nil
}

func (m *memoryStore) ListCapabilities(ctx context.Context, userID string, topicIDs []string) ([]CapabilityScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []CapabilityScore
	for _, topicID := range topicIDs {
		if c, ok := m.caps[capKey(userID, topicID)]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) UpsertCapability(ctx context.Context, c CapabilityScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.LastUpdated = time.Now().Unix()
	m.caps[capKey(c.UserID, c.TopicID)] = c
	return nil
}

func (m *memoryStore) UpsertFeedback(ctx context.Context, answerAttemptID string, gap GapType, text string, suggested *string) (Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().Unix()
	f, ok := m.feedback[answerAttemptID]
	if !ok {
		f = Feedback{AnswerAttemptID: answerAttemptID, CreatedAt: now}
	}
	f.GapType = gap
	f.Text = text
	f.SuggestedNextTopic = suggested
	f.UpdatedAt = now
	m.feedback[answerAttemptID] = f
	return f, nil
}

func (m *memoryStore) GetFeedback(ctx context.Context, answerAttemptID string) (Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.feedback[answerAttemptID]
	if !ok {
		return Feedback{}, ErrNotFound
	}
	return f, nil
}
