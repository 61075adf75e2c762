package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
)

func TestScoreRiskCleanAnswer(t *testing.T) {
	cfg := analysis.DefaultConfig()
	w := analysis.WritingReport{}
	b := analysis.BehaviorReport{Progress: 90}

	risk := analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, 100, risk.Originality)
	require.Equal(t, 100, risk.Confidence)
	require.Equal(t, analysis.RiskNone, risk.Flag)
	require.Zero(t, risk.RedFlagCount)
}

func TestScoreRiskEverySignal(t *testing.T) {
	cfg := analysis.DefaultConfig()
	w := analysis.WritingReport{
		LooksAIGenerated: true,
		LowOriginality:   true,
	}
	w.Repetition.IsRepetitive = true
	w.Generic.IsGeneric = true
	w.QualityJump.Detected = true
	b := analysis.BehaviorReport{
		SuspiciousPause:      true,
		LowKnowledgeSignal:   true,
		PossibleCopyBehavior: true,
	}

	risk := analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, 35, risk.Originality) // 100 - 30 - 20 - 15
	require.Equal(t, 0, risk.Confidence)   // 100 - 40 - 25 - 30 - 15, clamped
	require.Equal(t, analysis.RiskHigh, risk.Flag)
	require.Equal(t, 4, risk.RedFlagCount)
}

func TestScoreRiskFlagLadder(t *testing.T) {
	cfg := analysis.DefaultConfig()

	// One red flag, confidence untouched: low.
	w := analysis.WritingReport{LowOriginality: true}
	risk := analysis.ScoreRisk(w, analysis.BehaviorReport{Progress: 90}, cfg)
	require.Equal(t, analysis.RiskLow, risk.Flag)
	require.Equal(t, 1, risk.RedFlagCount)

	// Two red flags: medium.
	b := analysis.BehaviorReport{Progress: 90, LowKnowledgeSignal: true}
	risk = analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, analysis.RiskMedium, risk.Flag)

	// Confidence alone can drive the verdict: a quality jump plus copy
	// behavior lands at 45, inside the medium band, with one red flag.
	w = analysis.WritingReport{}
	w.QualityJump.Detected = true
	b = analysis.BehaviorReport{Progress: 90, PossibleCopyBehavior: true}
	risk = analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, 45, risk.Confidence)
	require.Equal(t, analysis.RiskMedium, risk.Flag)
}

func TestFeedbackTextSilentBelowMedium(t *testing.T) {
	cfg := analysis.DefaultConfig()
	w := analysis.WritingReport{LowOriginality: true}
	b := analysis.BehaviorReport{Progress: 90}
	risk := analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, analysis.RiskLow, risk.Flag)
	require.Empty(t, analysis.FeedbackText(risk, w, b))
}

func TestFeedbackTextJoinsTriggeredMessages(t *testing.T) {
	cfg := analysis.DefaultConfig()
	w := analysis.WritingReport{LooksAIGenerated: true, LowOriginality: true}
	b := analysis.BehaviorReport{LowKnowledgeSignal: true}
	risk := analysis.ScoreRisk(w, b, cfg)
	require.Equal(t, analysis.RiskHigh, risk.Flag)

	text := analysis.FeedbackText(risk, w, b)
	require.Contains(t, text, "external assistance")
	require.Contains(t, text, "repetitive patterns or generic phrasing")
	require.Contains(t, text, "difficulty with the material")
}
