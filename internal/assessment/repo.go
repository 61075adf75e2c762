package assessment

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("assessment: not found")
	ErrAttemptCompleted = errors.New("assessment: attempt already completed")
)

type Store interface {
	CreateAttempt(ctx context.Context, userID, subjectID string) (Attempt, error)
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	// CompleteAttempt is the only legal status transition (in_progress -> completed).
	CompleteAttempt(ctx context.Context, id string) (Attempt, error)

	AppendAnswer(ctx context.Context, a AnswerAttempt) (AnswerAttempt, error)
	GetAnswer(ctx context.Context, id string) (AnswerAttempt, error)
	ListAnswers(ctx context.Context, attemptID string) ([]AnswerAttempt, error)
	ListAnsweredQuestionIDs(ctx context.Context, attemptID string) (map[string]bool, error)

	ListCapabilities(ctx context.Context, userID string, topicIDs []string) ([]CapabilityScore, error)
	UpsertCapability(ctx context.Context, c CapabilityScore) error

	// UpsertFeedback replaces the row keyed by answerAttemptID; it never duplicates.
	UpsertFeedback(ctx context.Context, answerAttemptID string, gap GapType, text string, suggested *string) (Feedback, error)
	GetFeedback(ctx context.Context, answerAttemptID string) (Feedback, error)

	// InTx runs fn against a store view whose writes commit or roll back as a
	// unit. Implementations must serialize concurrent submissions to the same
	// attempt so the no-repeat invariant holds under race.
	InTx(ctx context.Context, fn func(Store) error) error
}
