package analysis

import (
	"math"
	"regexp"
	"strings"
)

type LengthCategory string

const (
	LengthEmpty     LengthCategory = "empty"
	LengthVeryShort LengthCategory = "very_short"
	LengthShort     LengthCategory = "short"
	LengthMedium    LengthCategory = "medium"
	LengthLong      LengthCategory = "long"
	LengthVeryLong  LengthCategory = "very_long"
)

type LengthReport struct {
	WordCount int            `json:"word_count"`
	CharCount int            `json:"char_count"`
	Category  LengthCategory `json:"length_category"`
}

type VarietyReport struct {
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	VarietyScore      float64 `json:"variety_score"`
	HasVariety        bool    `json:"has_variety"`
}

type RepeatedPhrase struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

type RepetitionReport struct {
	Score           int              `json:"repetition_score"`
	RepeatedPhrases []RepeatedPhrase `json:"repeated_phrases,omitempty"`
	IsRepetitive    bool             `json:"is_repetitive"`
}

type QualityJumpReport struct {
	Detected             bool    `json:"quality_jump_detected"`
	CurrentComplexity    float64 `json:"current_complexity"`
	AvgSiblingComplexity float64 `json:"avg_previous_complexity"`
	JumpMagnitude        float64 `json:"jump_magnitude"`
}

type GenericReport struct {
	Score        int      `json:"generic_score"`
	PhrasesFound []string `json:"generic_phrases_found,omitempty"`
	IsGeneric    bool     `json:"is_generic"`
}

// WritingReport aggregates the five sub-analyses over one answer text.
type WritingReport struct {
	Length      LengthReport      `json:"length_analysis"`
	Variety     VarietyReport     `json:"variety_analysis"`
	Repetition  RepetitionReport  `json:"repetition_analysis"`
	QualityJump QualityJumpReport `json:"quality_jump_analysis"`
	Generic     GenericReport     `json:"generic_analysis"`

	LooksAIGenerated bool `json:"looks_ai_generated"`
	LowOriginality   bool `json:"low_originality"`
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// AnalyzeWriting runs every sub-analysis, even on empty text, and derives
// the aggregate flags. siblings are the other answer texts in the same
// attempt, used for quality-jump comparison.
func AnalyzeWriting(text string, siblings []string, cfg Config) WritingReport {
	r := WritingReport{
		Length:      analyzeLength(text, cfg),
		Variety:     analyzeVariety(text, cfg),
		Repetition:  analyzeRepetition(text, cfg),
		QualityJump: detectQualityJump(text, siblings, cfg),
		Generic:     detectGenericPhrasing(text, cfg),
	}
	r.LooksAIGenerated = !r.Variety.HasVariety &&
		r.Length.WordCount > cfg.AIMinWords &&
		(r.Generic.IsGeneric || r.QualityJump.Detected)
	r.LowOriginality = r.Repetition.IsRepetitive ||
		r.Generic.Score > cfg.GenericOriginalityMin ||
		(r.Length.WordCount > 0 && r.Length.WordCount < cfg.LowOriginalityMaxWord)
	return r
}

func analyzeLength(text string, cfg Config) LengthReport {
	words := strings.Fields(text)
	n := len(words)
	var cat LengthCategory
	switch {
	case n == 0:
		cat = LengthEmpty
	case n < cfg.VeryShortMaxWords:
		cat = LengthVeryShort
	case n < cfg.ShortMaxWords:
		cat = LengthShort
	case n < cfg.MediumMaxWords:
		cat = LengthMedium
	case n < cfg.LongMaxWords:
		cat = LengthLong
	default:
		cat = LengthVeryLong
	}
	return LengthReport{WordCount: n, CharCount: len(text), Category: cat}
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := parts[:0:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func analyzeVariety(text string, cfg Config) VarietyReport {
	sentences := splitSentences(text)
	n := len(sentences)
	if n == 0 {
		return VarietyReport{}
	}
	lengths := make([]float64, n)
	sum := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	avg := sum / float64(n)
	variety := 0.0
	if n > 1 {
		variance := 0.0
		for _, l := range lengths {
			variance += (l - avg) * (l - avg)
		}
		variety = math.Sqrt(variance / float64(n))
	}
	return VarietyReport{
		SentenceCount:     n,
		AvgSentenceLength: avg,
		VarietyScore:      variety,
		HasVariety:        variety > cfg.VarietyStdDev && n > cfg.VarietyMinSentence,
	}
}

const maxReportedPhrases = 5

func analyzeRepetition(text string, cfg Config) RepetitionReport {
	words := strings.Fields(strings.ToLower(text))
	size := cfg.ShingleSize
	total := len(words) - size + 1
	if total < 1 {
		return RepetitionReport{}
	}

	counts := map[string]int{}
	order := make([]string, 0, total)
	for i := 0; i < total; i++ {
		shingle := strings.Join(words[i:i+size], " ")
		if counts[shingle] == 0 {
			order = append(order, shingle)
		}
		counts[shingle]++
	}

	duplicates := 0
	var repeated []RepeatedPhrase
	for _, shingle := range order {
		if c := counts[shingle]; c > 1 {
			duplicates += c - 1
			if len(repeated) < maxReportedPhrases {
				repeated = append(repeated, RepeatedPhrase{Phrase: shingle, Count: c})
			}
		}
	}

	score := int(math.Round(cfg.RepetitionScale * float64(duplicates) / float64(total)))
	if score > 100 {
		score = 100
	}
	return RepetitionReport{
		Score:           score,
		RepeatedPhrases: repeated,
		IsRepetitive:    score > cfg.RepetitiveScoreMin,
	}
}

// complexity blends average word length, vocabulary diversity and sentence
// length into a 0..100 figure.
func complexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	chars := 0
	unique := map[string]bool{}
	for _, w := range words {
		chars += len(w)
		unique[w] = true
	}
	avgWordLen := float64(chars) / float64(len(words))
	uniqueRatio := float64(len(unique)) / float64(len(words))

	wordsPerSentence := float64(len(words))
	if sentences := splitSentences(text); len(sentences) > 0 {
		wordsPerSentence = float64(len(words)) / float64(len(sentences))
	}

	c := avgWordLen*10 + uniqueRatio*30 + wordsPerSentence*2
	return math.Min(100, c)
}

func detectQualityJump(text string, siblings []string, cfg Config) QualityJumpReport {
	r := QualityJumpReport{CurrentComplexity: complexity(text)}
	if text == "" {
		r.CurrentComplexity = 0
	}
	sum, n := 0.0, 0
	for _, s := range siblings {
		if s == "" {
			continue
		}
		sum += complexity(s)
		n++
	}
	if text == "" || n == 0 {
		return r
	}
	r.AvgSiblingComplexity = sum / float64(n)
	r.JumpMagnitude = r.CurrentComplexity - r.AvgSiblingComplexity
	r.Detected = r.JumpMagnitude > cfg.QualityJumpDelta
	return r
}

func detectGenericPhrasing(text string, cfg Config) GenericReport {
	if text == "" {
		return GenericReport{}
	}
	low := strings.ToLower(text)
	var found []string
	for _, phrase := range cfg.GenericPhrases {
		if strings.Contains(low, phrase) {
			found = append(found, phrase)
		}
	}
	score := len(found) * cfg.GenericPhraseWeight
	if score > 100 {
		score = 100
	}
	return GenericReport{
		Score:        score,
		PhrasesFound: found,
		IsGeneric:    score > cfg.GenericScoreMin || len(found) >= cfg.GenericMatchMin,
	}
}
