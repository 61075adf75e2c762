package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
	"github.com/mithra-tejvarma/GradientIQ/internal/eventlog"
)

// Store is the slice of the attempt store the engine needs.
type Store interface {
	GetAnswer(ctx context.Context, id string) (assessment.AnswerAttempt, error)
	GetAttempt(ctx context.Context, id string) (assessment.Attempt, error)
	ListAnswers(ctx context.Context, attemptID string) ([]assessment.AnswerAttempt, error)
	UpsertFeedback(ctx context.Context, answerAttemptID string, gap assessment.GapType, text string, suggested *string) (assessment.Feedback, error)
}

// EventSink receives audit events. A nil sink disables auditing.
type EventSink interface {
	Append(ctx context.Context, typ, key string, data any) error
}

type Engine struct {
	store  Store
	events EventSink
	cfg    Config
}

func NewEngine(store Store, events EventSink, opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Engine{store: store, events: events, cfg: cfg}
}

// Result is the explainable output of one analysis run.
type Result struct {
	Originality     int            `json:"originality_score"`
	Confidence      int            `json:"confidence_score"`
	RiskFlag        RiskFlag       `json:"risk_flag"`
	Writing         WritingReport  `json:"writing_analysis"`
	Behavior        BehaviorReport `json:"behavior_analysis"`
	FeedbackCreated bool           `json:"feedback_created"`
}

// AnalyzeAnswer runs the full pipeline over one recorded answer: writing
// analysis against its attempt siblings, behavior analysis over the
// progress metadata, risk scoring, and — for medium/high risk — a feedback
// upsert keyed by the answer attempt. Re-running with unchanged inputs
// replaces the row with identical text; it never duplicates.
func (e *Engine) AnalyzeAnswer(ctx context.Context, answerAttemptID string) (Result, error) {
	answer, err := e.store.GetAnswer(ctx, answerAttemptID)
	if err != nil {
		return Result{}, err
	}
	if _, err := e.store.GetAttempt(ctx, answer.AssessmentID); err != nil {
		return Result{}, err
	}
	all, err := e.store.ListAnswers(ctx, answer.AssessmentID)
	if err != nil {
		return Result{}, err
	}
	var siblings []string
	for _, a := range all {
		if a.ID != answer.ID && a.AnswerText != "" {
			siblings = append(siblings, a.AnswerText)
		}
	}

	writing := AnalyzeWriting(answer.AnswerText, siblings, e.cfg)
	wordCount := len(strings.Fields(answer.AnswerText))
	behavior := AnalyzeBehavior(answer.Progress, answer.StoppedAtStep, wordCount, e.cfg)
	risk := ScoreRisk(writing, behavior, e.cfg)

	res := Result{
		Originality: risk.Originality,
		Confidence:  risk.Confidence,
		RiskFlag:    risk.Flag,
		Writing:     writing,
		Behavior:    behavior,
	}

	if text := FeedbackText(risk, writing, behavior); text != "" {
		// gap_type is always "logic": these are approach issues, not
		// content gaps. suggested_next_topic is reserved for a
		// curriculum-driven source and left empty here.
		if _, err := e.store.UpsertFeedback(ctx, answer.ID, assessment.GapLogic, text, nil); err != nil {
			return Result{}, err
		}
		res.FeedbackCreated = true
	}

	if e.events != nil {
		err := e.events.Append(ctx, eventlog.TypeAnswerAnalyzed, answer.ID, map[string]any{
			"risk_flag":         risk.Flag,
			"originality_score": risk.Originality,
			"confidence_score":  risk.Confidence,
		})
		if err != nil {
			log.Printf("eventlog append %s: %v", eventlog.TypeAnswerAnalyzed, err)
		}
	}
	return res, nil
}
