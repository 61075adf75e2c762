package analysis

import "strings"

// Remediation sentences, appended in fixed priority order per triggered
// condition.
const (
	msgAIGenerated = "Your answer shows patterns that may indicate external assistance. " +
		"Try to express concepts in your own words to demonstrate understanding."
	msgLowOriginality = "Your answer contains repetitive patterns or generic phrasing. " +
		"Consider using more specific examples and varied sentence structures."
	msgRepetitive = "Your answer has repetitive content. " +
		"Review your response and remove duplicate ideas to improve clarity."
	msgQualityJump = "Your answer shows inconsistencies in writing flow compared to previous responses. " +
		"Maintain a consistent style to better demonstrate your understanding."
	msgCopyBehavior = "The timing and quality patterns suggest possible external reference. " +
		"For better learning, try to answer in your own words without external help."
	msgLowKnowledge = "Your progress pattern indicates difficulty with the material. " +
		"Consider reviewing the topic fundamentals before attempting complex questions."

	msgGenericHigh = "Your answer shows significant inconsistencies. " +
		"Please ensure you're answering in your own words to demonstrate understanding."
	msgGenericMedium = "Your answer could be improved. " +
		"Try to answer in your own words and show your work process."
)

// FeedbackText builds the remediation message for a scored answer. It
// returns "" for none/low risk: no feedback row is written then.
func FeedbackText(risk RiskScore, w WritingReport, b BehaviorReport) string {
	if risk.Flag != RiskMedium && risk.Flag != RiskHigh {
		return ""
	}

	var msgs []string
	if w.LooksAIGenerated {
		msgs = append(msgs, msgAIGenerated)
	}
	if w.LowOriginality {
		msgs = append(msgs, msgLowOriginality)
	}
	if w.Repetition.IsRepetitive {
		msgs = append(msgs, msgRepetitive)
	}
	if w.QualityJump.Detected {
		msgs = append(msgs, msgQualityJump)
	}
	if b.PossibleCopyBehavior {
		msgs = append(msgs, msgCopyBehavior)
	}
	if b.LowKnowledgeSignal {
		msgs = append(msgs, msgLowKnowledge)
	}

	// A medium/high verdict normally implies at least one trigger above;
	// fall back to a level-keyed message if none fired.
	if len(msgs) == 0 {
		if risk.Flag == RiskHigh {
			msgs = append(msgs, msgGenericHigh)
		} else {
			msgs = append(msgs, msgGenericMedium)
		}
	}
	return strings.Join(msgs, " ")
}
