package assessment

import (
	"context"
	"log"

	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
	"github.com/mithra-tejvarma/GradientIQ/internal/eventlog"
	"github.com/mithra-tejvarma/GradientIQ/internal/grading"
)

// EventSink receives audit events. A nil sink disables auditing.
type EventSink interface {
	Append(ctx context.Context, typ, key string, data any) error
}

type Service struct {
	catalog catalog.Provider
	store   Store
	events  EventSink
	grader  *grading.Grader
}

func NewService(cat catalog.Provider, store Store, events EventSink) *Service {
	return &Service{catalog: cat, store: store, events: events, grader: grading.NewGrader()}
}

// StartAttempt creates an in_progress attempt and returns the first
// question, chosen from the user's weakest topics (or the subject's first
// topics when no capability history exists). The question is nil when the
// subject has no questions.
func (s *Service) StartAttempt(ctx context.Context, userID, subjectID string) (Attempt, *catalog.Question, error) {
	if _, err := s.catalog.GetSubject(ctx, subjectID); err != nil {
		return Attempt{}, nil, err
	}
	attempt, err := s.store.CreateAttempt(ctx, userID, subjectID)
	if err != nil {
		return Attempt{}, nil, err
	}
	state, err := s.selectorState(ctx, s.store, userID, subjectID, attempt.ID)
	if err != nil {
		return Attempt{}, nil, err
	}
	first := NextQuestion(state, "", nil, nil)
	s.audit(ctx, eventlog.TypeAttemptStarted, attempt.ID, map[string]string{
		"user_id": userID, "subject_id": subjectID,
	})
	return attempt, first, nil
}

// SubmitAnswer records the answer, grades it against the question's
// expected concepts, adjusts the user's capability for the topic and picks
// the next question — all inside one transaction, so a storage failure
// leaves no partial state. The next question is nil when every topic of
// the subject is exhausted; the attempt is left in_progress for the caller
// to close.
func (s *Service) SubmitAnswer(ctx context.Context, attemptID, questionID string, answerText *string, progress, stoppedAtStep *int) (AnswerAttempt, *catalog.Question, error) {
	var recorded AnswerAttempt
	var next *catalog.Question
	err := s.store.InTx(ctx, func(tx Store) error {
		attempt, err := tx.GetAttempt(ctx, attemptID)
		if err != nil {
			return err
		}
		if attempt.Status == StatusCompleted {
			return ErrAttemptCompleted
		}
		question, err := s.catalog.GetQuestion(ctx, questionID)
		if err != nil {
			return err
		}

		// Missing answer text is an empty answer, not an error.
		text := ""
		if answerText != nil {
			text = *answerText
		}
		a := AnswerAttempt{
			AssessmentID:  attemptID,
			QuestionID:    questionID,
			AnswerText:    text,
			Progress:      progress,
			StoppedAtStep: stoppedAtStep,
		}
		if correct, graded := s.grader.Grade(text, question.ExpectedConcepts); graded {
			a.IsCorrect = &correct
		}
		recorded, err = tx.AppendAnswer(ctx, a)
		if err != nil {
			return err
		}
		if err := s.updateCapability(ctx, tx, attempt.UserID, question.TopicID, recorded); err != nil {
			return err
		}

		state, err := s.selectorState(ctx, tx, attempt.UserID, attempt.SubjectID, attemptID)
		if err != nil {
			return err
		}
		next = NextQuestion(state, question.TopicID, progress, stoppedAtStep)
		return nil
	})
	if err != nil {
		return AnswerAttempt{}, nil, err
	}
	s.audit(ctx, eventlog.TypeAnswerSubmitted, recorded.ID, map[string]string{
		"assessment_id": attemptID, "question_id": questionID,
	})
	return recorded, next, nil
}

type AttemptStatus struct {
	Attempt            Attempt           `json:"assessment"`
	QuestionsAttempted int               `json:"questions_attempted"`
	NextQuestion       *catalog.Question `json:"next_question,omitempty"`
}

// Status reports progress and recomputes the next question from the most
// recent answer.
func (s *Service) Status(ctx context.Context, attemptID string) (AttemptStatus, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return AttemptStatus{}, err
	}
	answers, err := s.store.ListAnswers(ctx, attemptID)
	if err != nil {
		return AttemptStatus{}, err
	}
	st := AttemptStatus{Attempt: attempt, QuestionsAttempted: len(answers)}
	if len(answers) == 0 {
		return st, nil
	}
	last := answers[len(answers)-1]
	question, err := s.catalog.GetQuestion(ctx, last.QuestionID)
	if err != nil {
		return AttemptStatus{}, err
	}
	state, err := s.selectorState(ctx, s.store, attempt.UserID, attempt.SubjectID, attemptID)
	if err != nil {
		return AttemptStatus{}, err
	}
	st.NextQuestion = NextQuestion(state, question.TopicID, last.Progress, last.StoppedAtStep)
	return st, nil
}

func (s *Service) CompleteAttempt(ctx context.Context, attemptID string) (Attempt, error) {
	attempt, err := s.store.CompleteAttempt(ctx, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	s.audit(ctx, eventlog.TypeAttemptCompleted, attemptID, nil)
	return attempt, nil
}

// CapabilityBySubject lists the user's capability scores for every topic
// of the subject that has one.
func (s *Service) CapabilityBySubject(ctx context.Context, userID, subjectID string) ([]CapabilityScore, error) {
	topics, err := s.catalog.ListTopics(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, t.ID)
	}
	return s.store.ListCapabilities(ctx, userID, ids)
}

// updateCapability applies the per-topic rules: a correct answer earns +5
// (capped at 100) and extends the streak; stopping early or reporting under
// 30% progress costs 5 (floored at 0) and resets it. First contact with a
// topic starts the level at 50.
func (s *Service) updateCapability(ctx context.Context, tx Store, userID, topicID string, a AnswerAttempt) error {
	caps, err := tx.ListCapabilities(ctx, userID, []string{topicID})
	if err != nil {
		return err
	}
	cur := CapabilityScore{UserID: userID, TopicID: topicID, Level: 50}
	if len(caps) == 1 {
		cur = caps[0]
	}
	stopped := a.StoppedAtStep != nil && *a.StoppedAtStep > 0
	lowProgress := a.Progress != nil && *a.Progress < 30
	switch {
	case a.IsCorrect != nil && *a.IsCorrect:
		cur.Level = min(100, cur.Level+5)
		cur.Streak++
	case stopped || lowProgress:
		cur.Level = max(0, cur.Level-5)
		cur.Streak = 0
	}
	return tx.UpsertCapability(ctx, cur)
}

// selectorState snapshots everything the pure selector needs, using the
// supplied store view so reads inside a submit transaction see its writes.
func (s *Service) selectorState(ctx context.Context, store Store, userID, subjectID, attemptID string) (SelectorState, error) {
	topics, err := s.catalog.ListTopics(ctx, subjectID)
	if err != nil {
		return SelectorState{}, err
	}
	questions := make(map[string][]catalog.Question, len(topics))
	topicIDs := make([]string, 0, len(topics))
	for _, t := range topics {
		topicIDs = append(topicIDs, t.ID)
		qs, err := s.catalog.ListQuestions(ctx, t.ID)
		if err != nil {
			return SelectorState{}, err
		}
		questions[t.ID] = qs
	}
	caps, err := store.ListCapabilities(ctx, userID, topicIDs)
	if err != nil {
		return SelectorState{}, err
	}
	levels := make(map[string]int, len(caps))
	for _, c := range caps {
		levels[c.TopicID] = c.Level
	}
	answered, err := store.ListAnsweredQuestionIDs(ctx, attemptID)
	if err != nil {
		return SelectorState{}, err
	}
	return SelectorState{Topics: topics, Questions: questions, Capabilities: levels, Answered: answered}, nil
}

func (s *Service) audit(ctx context.Context, typ, key string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, typ, key, data); err != nil {
		log.Printf("eventlog append %s: %v", typ, err)
	}
}
