package assessment_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
)

func intp(v int) *int { return &v }

// state builds a subject with the named topics, two questions each
// ("<topic>-q1", "<topic>-q2"), in the given canonical order.
func state(topicIDs ...string) assessment.SelectorState {
	st := assessment.SelectorState{
		Questions:    map[string][]catalog.Question{},
		Capabilities: map[string]int{},
		Answered:     map[string]bool{},
	}
	for i, id := range topicIDs {
		st.Topics = append(st.Topics, catalog.Topic{ID: id, SubjectID: "s1", Position: i})
		for q := 1; q <= 2; q++ {
			st.Questions[id] = append(st.Questions[id], catalog.Question{
				ID: fmt.Sprintf("%s-q%d", id, q), TopicID: id, Position: q - 1,
			})
		}
	}
	return st
}

func TestColdStartNoHistory(t *testing.T) {
	st := state("a", "b", "c", "d")
	q := assessment.NextQuestion(st, "", nil, nil)
	require.NotNil(t, q)
	require.Equal(t, "a-q1", q.ID)
}

func TestColdStartPrefersWeakestTopics(t *testing.T) {
	st := state("a", "b", "c", "d")
	st.Capabilities = map[string]int{"a": 80, "b": 40, "c": 60, "d": 20}
	q := assessment.NextQuestion(st, "", nil, nil)
	require.NotNil(t, q)
	require.Equal(t, "d-q1", q.ID)

	// Weakest topic exhausted: next-weakest of the initial pool.
	st.Answered["d-q1"] = true
	st.Answered["d-q2"] = true
	q = assessment.NextQuestion(st, "", nil, nil)
	require.NotNil(t, q)
	require.Equal(t, "b-q1", q.ID)
}

func TestColdStartCapabilityTieBreaksOnCanonicalOrder(t *testing.T) {
	st := state("a", "b", "c")
	st.Capabilities = map[string]int{"a": 50, "b": 50, "c": 50}
	q := assessment.NextQuestion(st, "", nil, nil)
	require.NotNil(t, q)
	require.Equal(t, "a-q1", q.ID)
}

func TestStayOnTopicWhileStruggling(t *testing.T) {
	st := state("a", "b")
	st.Answered["a-q1"] = true

	// Low progress keeps the learner on the same topic.
	q := assessment.NextQuestion(st, "a", intp(50), nil)
	require.NotNil(t, q)
	require.Equal(t, "a-q2", q.ID)

	// A reported stop does too, regardless of progress.
	q = assessment.NextQuestion(st, "a", intp(90), intp(3))
	require.NotNil(t, q)
	require.Equal(t, "a-q2", q.ID)
}

func TestAdvanceOnStrongProgress(t *testing.T) {
	st := state("a", "b", "c")
	st.Answered["a-q1"] = true
	q := assessment.NextQuestion(st, "a", intp(80), nil)
	require.NotNil(t, q)
	require.Equal(t, "b-q1", q.ID)
}

func TestAdvanceWhenNoProgressReported(t *testing.T) {
	st := state("a", "b")
	st.Answered["a-q1"] = true
	// No progress and no stop: nothing marks the topic as struggling.
	q := assessment.NextQuestion(st, "a", nil, nil)
	require.NotNil(t, q)
	require.Equal(t, "b-q1", q.ID)
}

func TestStrugglingFallsThroughWhenTopicExhausted(t *testing.T) {
	st := state("a", "b")
	st.Answered["a-q1"] = true
	st.Answered["a-q2"] = true
	q := assessment.NextQuestion(st, "a", intp(10), intp(1))
	require.NotNil(t, q)
	require.Equal(t, "b-q1", q.ID)
}

func TestAdvanceWrapsCanonicalOrder(t *testing.T) {
	st := state("a", "b", "c")
	// Everything after b is gone; the walk wraps back to a.
	st.Answered["b-q1"] = true
	st.Answered["b-q2"] = true
	st.Answered["c-q1"] = true
	st.Answered["c-q2"] = true
	q := assessment.NextQuestion(st, "b", intp(95), nil)
	require.NotNil(t, q)
	require.Equal(t, "a-q1", q.ID)
}

func TestNeverRepeatsAnsweredQuestions(t *testing.T) {
	st := state("a", "b")
	answered := map[string]bool{}
	st.Answered = answered

	current := ""
	var seen []string
	for {
		q := assessment.NextQuestion(st, current, intp(85), nil)
		if q == nil {
			break
		}
		require.False(t, answered[q.ID], "question %s repeated", q.ID)
		answered[q.ID] = true
		seen = append(seen, q.ID)
		current = q.TopicID
	}
	require.Len(t, seen, 4)
}

func TestExhaustedSubjectReturnsNil(t *testing.T) {
	st := state("a", "b")
	for id := range st.Questions {
		for _, q := range st.Questions[id] {
			st.Answered[q.ID] = true
		}
	}
	require.Nil(t, assessment.NextQuestion(st, "a", intp(50), nil))
	require.Nil(t, assessment.NextQuestion(st, "", nil, nil))
}

func TestNoTopics(t *testing.T) {
	st := assessment.SelectorState{
		Questions:    map[string][]catalog.Question{},
		Capabilities: map[string]int{},
		Answered:     map[string]bool{},
	}
	require.Nil(t, assessment.NextQuestion(st, "", nil, nil))
	require.Nil(t, assessment.NextQuestion(st, "gone", intp(80), nil))
}
