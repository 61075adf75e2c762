package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog: not found")

// Provider serves immutable reference data for the selector and the HTTP
// layer. Topics and questions come back in canonical order (position, then
// id): the adaptive policy depends on a stable enumeration, never on
// storage iteration order.
type Provider interface {
	ListSubjects(ctx context.Context) ([]Subject, error)
	GetSubject(ctx context.Context, id string) (Subject, error)
	CreateSubject(ctx context.Context, name string) (Subject, error)

	ListTopics(ctx context.Context, subjectID string) ([]Topic, error)
	GetTopic(ctx context.Context, id string) (Topic, error)
	CreateTopic(ctx context.Context, subjectID, name, difficultyRange string) (Topic, error)

	ListQuestions(ctx context.Context, topicID string) ([]Question, error)
	GetQuestion(ctx context.Context, id string) (Question, error)
	CreateQuestion(ctx context.Context, q Question) (Question, error)
}
