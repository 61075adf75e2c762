package catalog

type CognitiveType string

const (
	Conceptual CognitiveType = "conceptual"
	Procedural CognitiveType = "procedural"
)

type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type Topic struct {
	ID              string `json:"id"`
	SubjectID       string `json:"subject_id"`
	Name            string `json:"name"`
	DifficultyRange string `json:"difficulty_range"` // easy|medium|hard
	Position        int    `json:"position"`
}

type Question struct {
	ID               string        `json:"id"`
	TopicID          string        `json:"topic_id"`
	Text             string        `json:"question_text"`
	DifficultyLevel  int           `json:"difficulty_level"` // 1..10
	CognitiveType    CognitiveType `json:"cognitive_type"`
	ExpectedConcepts []string      `json:"expected_concepts,omitempty"`
	Position         int           `json:"position"`
}
