package analysis_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
)

func seedAnswer(t *testing.T, store assessment.Store, a assessment.AnswerAttempt) assessment.AnswerAttempt {
	t.Helper()
	recorded, err := store.AppendAnswer(context.Background(), a)
	require.NoError(t, err)
	return recorded
}

func TestAnalyzeAnswerHighRisk(t *testing.T) {
	ctx := context.Background()
	store := assessment.NewInMemoryStore()
	engine := analysis.NewEngine(store, nil)

	attempt, err := store.CreateAttempt(ctx, "u1", "s1")
	require.NoError(t, err)

	// Long, heavily repeated text with a stop and barely any progress:
	// low originality, copy behavior and a low-knowledge signal at once.
	text := strings.TrimSpace(strings.Repeat("the quick brown fox jumps over the lazy dog again ", 12))
	answer := seedAnswer(t, store, assessment.AnswerAttempt{
		AssessmentID:  attempt.ID,
		QuestionID:    "q1",
		AnswerText:    text,
		Progress:      intp(10),
		StoppedAtStep: intp(2),
	})

	res, err := engine.AnalyzeAnswer(ctx, answer.ID)
	require.NoError(t, err)
	require.Equal(t, analysis.RiskHigh, res.RiskFlag)
	require.True(t, res.Writing.LowOriginality)
	require.True(t, res.Behavior.PossibleCopyBehavior)
	require.True(t, res.FeedbackCreated)

	fb, err := store.GetFeedback(ctx, answer.ID)
	require.NoError(t, err)
	require.Equal(t, assessment.GapLogic, fb.GapType)
	require.NotEmpty(t, fb.Text)
	require.Nil(t, fb.SuggestedNextTopic)
}

func TestAnalyzeAnswerEmptyText(t *testing.T) {
	ctx := context.Background()
	store := assessment.NewInMemoryStore()
	engine := analysis.NewEngine(store, nil)

	attempt, err := store.CreateAttempt(ctx, "u1", "s1")
	require.NoError(t, err)
	answer := seedAnswer(t, store, assessment.AnswerAttempt{
		AssessmentID: attempt.ID,
		QuestionID:   "q1",
	})

	res, err := engine.AnalyzeAnswer(ctx, answer.ID)
	require.NoError(t, err)
	// A blank answer carries no originality evidence against it.
	require.Equal(t, 100, res.Originality)
	require.Equal(t, 100, res.Confidence)
	require.Equal(t, analysis.RiskLow, res.RiskFlag) // zero progress reads as low knowledge
	require.False(t, res.FeedbackCreated)

	_, err = store.GetFeedback(ctx, answer.ID)
	require.ErrorIs(t, err, assessment.ErrNotFound)
}

func TestAnalyzeAnswerIdempotentFeedback(t *testing.T) {
	ctx := context.Background()
	store := assessment.NewInMemoryStore()
	engine := analysis.NewEngine(store, nil)

	attempt, err := store.CreateAttempt(ctx, "u1", "s1")
	require.NoError(t, err)
	text := strings.TrimSpace(strings.Repeat("copy paste copy paste copy paste answer body here now ", 12))
	answer := seedAnswer(t, store, assessment.AnswerAttempt{
		AssessmentID:  attempt.ID,
		QuestionID:    "q1",
		AnswerText:    text,
		Progress:      intp(5),
		StoppedAtStep: intp(1),
	})

	first, err := engine.AnalyzeAnswer(ctx, answer.ID)
	require.NoError(t, err)
	require.True(t, first.FeedbackCreated)
	fb1, err := store.GetFeedback(ctx, answer.ID)
	require.NoError(t, err)

	second, err := engine.AnalyzeAnswer(ctx, answer.ID)
	require.NoError(t, err)
	require.Equal(t, first.RiskFlag, second.RiskFlag)
	fb2, err := store.GetFeedback(ctx, answer.ID)
	require.NoError(t, err)
	require.Equal(t, fb1.Text, fb2.Text)
	require.Equal(t, fb1.AnswerAttemptID, fb2.AnswerAttemptID)
}

func TestAnalyzeAnswerUsesSiblingsForQualityJump(t *testing.T) {
	ctx := context.Background()
	store := assessment.NewInMemoryStore()
	engine := analysis.NewEngine(store, nil)

	attempt, err := store.CreateAttempt(ctx, "u1", "s1")
	require.NoError(t, err)
	seedAnswer(t, store, assessment.AnswerAttempt{
		AssessmentID: attempt.ID, QuestionID: "q1",
		AnswerText: "a a a a a a a a a a.",
	})
	target := seedAnswer(t, store, assessment.AnswerAttempt{
		AssessmentID: attempt.ID, QuestionID: "q2",
		AnswerText: "Polymorphism encapsulates inheritance abstraction modularity composition effectively.",
		Progress:   intp(95),
	})

	res, err := engine.AnalyzeAnswer(ctx, target.ID)
	require.NoError(t, err)
	require.True(t, res.Writing.QualityJump.Detected)
	require.Positive(t, res.Writing.QualityJump.AvgSiblingComplexity)
}

func TestAnalyzeAnswerUnknownID(t *testing.T) {
	store := assessment.NewInMemoryStore()
	engine := analysis.NewEngine(store, nil)
	_, err := engine.AnalyzeAnswer(context.Background(), "nope")
	require.ErrorIs(t, err, assessment.ErrNotFound)
}
