package analysis

// BehaviorReport is derived from progress metadata alone; the data model
// carries no per-answer submission timestamp.
type BehaviorReport struct {
	SuspiciousPause      bool `json:"suspicious_pause"`
	LowKnowledgeSignal   bool `json:"low_knowledge_signal"`
	PossibleCopyBehavior bool `json:"possible_copy_behavior"`

	Progress      int `json:"progress_percentage"`
	StoppedAtStep int `json:"stopped_at_step"`
	WordCount     int `json:"answer_word_count"`
}

// AnalyzeBehavior flags low-knowledge and copy-like submission patterns.
// nil progress and nil stoppedAtStep default to 0 — an unreported value
// reads as "no progress made" and "did not stop mid-way" respectively.
func AnalyzeBehavior(progress, stoppedAtStep *int, wordCount int, cfg Config) BehaviorReport {
	p, stopped := 0, 0
	if progress != nil {
		p = *progress
	}
	if stoppedAtStep != nil {
		stopped = *stoppedAtStep
	}

	r := BehaviorReport{Progress: p, StoppedAtStep: stopped, WordCount: wordCount}
	r.LowKnowledgeSignal = (stopped > 0 && p < cfg.LowKnowledgeProgressMax) || p < cfg.LowProgressMax
	r.PossibleCopyBehavior = p < cfg.CopyProgressMax && wordCount > cfg.CopyMinWords && stopped > 0
	// Real pause detection needs a submission timestamp the AnswerAttempt
	// model does not carry; until it does, this mirrors the copy signal.
	r.SuspiciousPause = r.PossibleCopyBehavior
	return r
}
