package analysis

// Config gathers every threshold, weight and phrase list the pipeline
// uses. The algorithms read it instead of scattered constants, so tuning
// never touches the analysis code.
type Config struct {
	// Length category bounds (exclusive upper word counts).
	VeryShortMaxWords int
	ShortMaxWords     int
	MediumMaxWords    int
	LongMaxWords      int

	// Sentence variety.
	VarietyStdDev      float64 // population std dev above which writing varies
	VarietyMinSentence int     // more sentences than this required

	// Repetition (3-word shingles).
	ShingleSize        int
	RepetitionScale    float64 // multiplier on the duplicate-shingle ratio
	RepetitiveScoreMin int     // score above which text counts as repetitive

	// Quality jump vs. sibling answers.
	QualityJumpDelta float64

	// Generic phrasing.
	GenericPhrases        []string
	GenericPhraseWeight   int
	GenericScoreMin       int // score above which text is generic
	GenericMatchMin       int // or at least this many phrase hits
	GenericOriginalityMin int // score above which originality is in doubt

	// Aggregate writing flags.
	AIMinWords            int // AI flag requires more words than this
	LowOriginalityMaxWord int // non-empty answers under this look pasted/minimal

	// Behavior.
	LowKnowledgeProgressMax int // stopped early and under this progress
	LowProgressMax          int // under this progress alone
	CopyProgressMax         int
	CopyMinWords            int

	// Risk weights (score deductions).
	PenaltyLowOriginality int
	PenaltyRepetitive     int
	PenaltyGeneric        int
	PenaltyAIGenerated    int
	PenaltyQualityJump    int
	PenaltyCopyBehavior   int
	PenaltySuspiciousPause int

	// Risk flag cutoffs.
	HighConfidenceMax   int
	MediumConfidenceMax int
	LowConfidenceMax    int
	HighFlagCount       int
	MediumFlagCount     int
	LowFlagCount        int
}

func DefaultConfig() Config {
	return Config{
		VeryShortMaxWords: 20,
		ShortMaxWords:     50,
		MediumMaxWords:    150,
		LongMaxWords:      300,

		VarietyStdDev:      3.0,
		VarietyMinSentence: 2,

		ShingleSize:        3,
		RepetitionScale:    200,
		RepetitiveScoreMin: 30,

		QualityJumpDelta: 25,

		GenericPhrases:        defaultGenericPhrases(),
		GenericPhraseWeight:   15,
		GenericScoreMin:       30,
		GenericMatchMin:       3,
		GenericOriginalityMin: 40,

		AIMinWords:            50,
		LowOriginalityMaxWord: 15,

		LowKnowledgeProgressMax: 30,
		LowProgressMax:          20,
		CopyProgressMax:         40,
		CopyMinWords:            100,

		PenaltyLowOriginality:  30,
		PenaltyRepetitive:      20,
		PenaltyGeneric:         15,
		PenaltyAIGenerated:     40,
		PenaltyQualityJump:     25,
		PenaltyCopyBehavior:    30,
		PenaltySuspiciousPause: 15,

		HighConfidenceMax:   40,
		MediumConfidenceMax: 60,
		LowConfidenceMax:    80,
		HighFlagCount:       3,
		MediumFlagCount:     2,
		LowFlagCount:        1,
	}
}

// Subject-agnostic filler commonly found in templated or assisted text.
func defaultGenericPhrases() []string {
	return []string{
		"in conclusion",
		"to sum up",
		"in summary",
		"it is important to note",
		"it should be noted",
		"as mentioned earlier",
		"furthermore",
		"moreover",
		"additionally",
		"on the other hand",
		"in other words",
		"that being said",
		"first and foremost",
		"last but not least",
		"it goes without saying",
		"needless to say",
		"at the end of the day",
		"when all is said and done",
		"the bottom line is",
		"to put it simply",
	}
}

type Option func(*Config)

func WithGenericPhrases(phrases []string) Option {
	return func(c *Config) { c.GenericPhrases = phrases }
}

func WithRepetitiveScoreMin(n int) Option {
	return func(c *Config) { c.RepetitiveScoreMin = n }
}

func WithQualityJumpDelta(d float64) Option {
	return func(c *Config) { c.QualityJumpDelta = d }
}
