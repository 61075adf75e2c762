package analysis

type RiskFlag string

const (
	RiskNone   RiskFlag = "none"
	RiskLow    RiskFlag = "low"
	RiskMedium RiskFlag = "medium"
	RiskHigh   RiskFlag = "high"
)

type RiskScore struct {
	// Originality: 100 is fully original writing.
	Originality int `json:"originality_score"`
	// Confidence: 100 means no doubt the answer is the learner's own work.
	Confidence   int      `json:"confidence_score"`
	Flag         RiskFlag `json:"risk_flag"`
	RedFlagCount int      `json:"red_flag_count"`
}

// ScoreRisk turns the writing and behavior reports into the two 0..100
// scores and the coarse risk verdict.
func ScoreRisk(w WritingReport, b BehaviorReport, cfg Config) RiskScore {
	originality := 100
	if w.LowOriginality {
		originality -= cfg.PenaltyLowOriginality
	}
	if w.Repetition.IsRepetitive {
		originality -= cfg.PenaltyRepetitive
	}
	if w.Generic.IsGeneric {
		originality -= cfg.PenaltyGeneric
	}

	confidence := 100
	if w.LooksAIGenerated {
		confidence -= cfg.PenaltyAIGenerated
	}
	if w.QualityJump.Detected {
		confidence -= cfg.PenaltyQualityJump
	}
	if b.PossibleCopyBehavior {
		confidence -= cfg.PenaltyCopyBehavior
	}
	if b.SuspiciousPause {
		confidence -= cfg.PenaltySuspiciousPause
	}

	redFlags := 0
	for _, f := range []bool{w.LooksAIGenerated, w.LowOriginality, b.PossibleCopyBehavior, b.LowKnowledgeSignal} {
		if f {
			redFlags++
		}
	}

	var flag RiskFlag
	switch {
	case confidence < cfg.HighConfidenceMax || redFlags >= cfg.HighFlagCount:
		flag = RiskHigh
	case confidence < cfg.MediumConfidenceMax || redFlags >= cfg.MediumFlagCount:
		flag = RiskMedium
	case confidence < cfg.LowConfidenceMax || redFlags >= cfg.LowFlagCount:
		flag = RiskLow
	default:
		flag = RiskNone
	}

	return RiskScore{
		Originality:  clamp(originality),
		Confidence:   clamp(confidence),
		Flag:         flag,
		RedFlagCount: redFlags,
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
