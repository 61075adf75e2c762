package assessment

import "github.com/mithra-tejvarma/GradientIQ/internal/catalog"

// SelectorState is a snapshot of everything the next-question decision
// needs. Callers load it (inside the submit transaction) and pass it in;
// the selector itself performs no reads or writes.
type SelectorState struct {
	// Topics of the subject in canonical order (position, then id).
	Topics []catalog.Topic
	// Questions per topic, each slice in canonical order.
	Questions map[string][]catalog.Question
	// Capability level per topic id for the attempting user. Topics without
	// a score are absent.
	Capabilities map[string]int
	// Question ids already answered in this attempt.
	Answered map[string]bool
}

const (
	partialProgressMax   = 40 // below this, a reported progress marks the attempt partial
	remediationThreshold = 70 // below this, the learner stays on the current topic
	initialTopicCount    = 3
)

// NextQuestion picks the next question for an attempt, or nil when the
// subject is exhausted. currentTopicID is empty on cold start. progress and
// stoppedAtStep describe the answer just recorded; nil means not reported.
func NextQuestion(st SelectorState, currentTopicID string, progress, stoppedAtStep *int) *catalog.Question {
	if currentTopicID == "" {
		return coldStart(st)
	}

	isPartial := stoppedAtStep != nil || (progress != nil && *progress < partialProgressMax)
	struggling := isPartial || (progress != nil && *progress < remediationThreshold)

	// Remediation: stay on the struggling topic while it has material left.
	if struggling {
		if q := firstUnanswered(st, currentTopicID); q != nil {
			return q
		}
	}

	// Advance: walk the canonical order starting after the current topic,
	// wrapping around, and skipping the current topic entirely.
	idx := -1
	for i, t := range st.Topics {
		if t.ID == currentTopicID {
			idx = i
			break
		}
	}
	n := len(st.Topics)
	if n == 0 {
		return nil
	}
	for off := 1; off <= n; off++ {
		t := st.Topics[(idx+off+n)%n]
		if t.ID == currentTopicID {
			continue
		}
		if q := firstUnanswered(st, t.ID); q != nil {
			return q
		}
	}
	return nil
}

// coldStart picks from up to three candidate topics: the lowest-capability
// ones when scores exist, otherwise the first topics in canonical order.
func coldStart(st SelectorState) *catalog.Question {
	for _, t := range initialTopics(st) {
		if q := firstUnanswered(st, t.ID); q != nil {
			return q
		}
	}
	return nil
}

func initialTopics(st SelectorState) []catalog.Topic {
	var scored []catalog.Topic
	for _, t := range st.Topics {
		if _, ok := st.Capabilities[t.ID]; ok {
			scored = append(scored, t)
		}
	}
	if len(scored) == 0 {
		if len(st.Topics) <= initialTopicCount {
			return st.Topics
		}
		return st.Topics[:initialTopicCount]
	}
	// Stable sort by level ascending; canonical order breaks ties because
	// scored preserves it.
	for i := 1; i < len(scored); i++ {
		for j := i; j > 0 && st.Capabilities[scored[j].ID] < st.Capabilities[scored[j-1].ID]; j-- {
			scored[j], scored[j-1] = scored[j-1], scored[j]
		}
	}
	if len(scored) > initialTopicCount {
		scored = scored[:initialTopicCount]
	}
	return scored
}

func firstUnanswered(st SelectorState, topicID string) *catalog.Question {
	for _, q := range st.Questions[topicID] {
		if !st.Answered[q.ID] {
			question := q
			return &question
		}
	}
	return nil
}
