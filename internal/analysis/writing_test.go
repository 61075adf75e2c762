package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
)

func analyze(t *testing.T, text string, siblings ...string) analysis.WritingReport {
	t.Helper()
	return analysis.AnalyzeWriting(text, siblings, analysis.DefaultConfig())
}

func TestLengthCategories(t *testing.T) {
	cases := []struct {
		words int
		want  analysis.LengthCategory
	}{
		{0, analysis.LengthEmpty},
		{5, analysis.LengthVeryShort},
		{19, analysis.LengthVeryShort},
		{20, analysis.LengthShort},
		{49, analysis.LengthShort},
		{50, analysis.LengthMedium},
		{149, analysis.LengthMedium},
		{150, analysis.LengthLong},
		{299, analysis.LengthLong},
		{300, analysis.LengthVeryLong},
	}
	for _, tc := range cases {
		text := strings.TrimSpace(strings.Repeat("word ", tc.words))
		r := analyze(t, text)
		require.Equal(t, tc.want, r.Length.Category, "words=%d", tc.words)
		require.Equal(t, tc.words, r.Length.WordCount)
	}
}

func TestVariety(t *testing.T) {
	// Uniform sentence lengths: zero spread, no variety.
	r := analyze(t, "One two three. Four five six. Seven eight nine.")
	require.Equal(t, 3, r.Variety.SentenceCount)
	require.False(t, r.Variety.HasVariety)
	require.Zero(t, r.Variety.VarietyScore)

	// Mixed lengths well above the spread threshold.
	r = analyze(t, "Short one. This sentence is a fair bit longer than the previous one. Mid length here now.")
	require.True(t, r.Variety.HasVariety)
	require.Greater(t, r.Variety.VarietyScore, 3.0)

	// Two sentences never count as varied, whatever the spread.
	r = analyze(t, "Hi. This second sentence is considerably longer than the first one was.")
	require.False(t, r.Variety.HasVariety)
}

func TestRepetition(t *testing.T) {
	r := analyze(t, "alpha beta gamma delta epsilon")
	require.Zero(t, r.Repetition.Score)
	require.False(t, r.Repetition.IsRepetitive)

	r = analyze(t, "the quick brown fox the quick brown fox the quick brown fox")
	require.True(t, r.Repetition.IsRepetitive)
	require.Equal(t, 100, r.Repetition.Score)
	require.NotEmpty(t, r.Repetition.RepeatedPhrases)
	require.Equal(t, "the quick brown", r.Repetition.RepeatedPhrases[0].Phrase)
	require.Equal(t, 3, r.Repetition.RepeatedPhrases[0].Count)
	require.True(t, r.LowOriginality)
}

func TestRepetitionTooShortForShingles(t *testing.T) {
	r := analyze(t, "two words")
	require.Zero(t, r.Repetition.Score)
	require.False(t, r.Repetition.IsRepetitive)
}

func TestGenericPhrasing(t *testing.T) {
	r := analyze(t, "In conclusion the answer is correct. Furthermore it works. Moreover it scales.")
	require.Len(t, r.Generic.PhrasesFound, 3)
	require.Equal(t, 45, r.Generic.Score)
	require.True(t, r.Generic.IsGeneric)

	r = analyze(t, "A binary heap keeps the minimum at the root.")
	require.Zero(t, r.Generic.Score)
	require.False(t, r.Generic.IsGeneric)
}

func TestQualityJump(t *testing.T) {
	sibling := "a a a a a a a a a a."
	elaborate := "Polymorphism encapsulates inheritance abstraction modularity composition effectively."

	r := analyze(t, elaborate, sibling)
	require.True(t, r.QualityJump.Detected)
	require.Greater(t, r.QualityJump.JumpMagnitude, 25.0)

	// No siblings: nothing to jump from.
	r = analyze(t, elaborate)
	require.False(t, r.QualityJump.Detected)
	require.Zero(t, r.QualityJump.AvgSiblingComplexity)

	// Empty current answer never jumps.
	r = analyze(t, "", sibling)
	require.False(t, r.QualityJump.Detected)
	require.Zero(t, r.QualityJump.CurrentComplexity)
}

func TestShortNonEmptyAnswerLowOriginality(t *testing.T) {
	r := analyze(t, "yes")
	require.True(t, r.LowOriginality)

	r = analyze(t, "")
	require.False(t, r.LowOriginality)
}

func TestLooksAIGenerated(t *testing.T) {
	// Uniform ten-word sentences, over fifty words, stuffed with filler:
	// no variety + generic phrasing trips the aggregate flag.
	sentence := "Furthermore moreover additionally the process continues the same way every time. "
	text := strings.TrimSpace(strings.Repeat(sentence, 6))
	r := analyze(t, text)
	require.False(t, r.Variety.HasVariety)
	require.Greater(t, r.Length.WordCount, 50)
	require.True(t, r.LooksAIGenerated)

	// The same filler under the word floor stays unflagged.
	r = analyze(t, strings.TrimSpace(strings.Repeat(sentence, 2)))
	require.False(t, r.LooksAIGenerated)
}

func TestConfigOptions(t *testing.T) {
	cfg := analysis.DefaultConfig()
	analysis.WithGenericPhrases([]string{"banana"})(&cfg)
	analysis.WithRepetitiveScoreMin(100)(&cfg)
	analysis.WithQualityJumpDelta(1000)(&cfg)

	r := analysis.AnalyzeWriting("banana banana banana banana", nil, cfg)
	require.Len(t, r.Generic.PhrasesFound, 1)
	require.False(t, r.Repetition.IsRepetitive) // raised threshold
	require.False(t, r.QualityJump.Detected)
}
