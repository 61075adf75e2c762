package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

type seedQuestion struct {
	Text             string   `json:"question_text"`
	DifficultyLevel  int      `json:"difficulty_level"`
	CognitiveType    string   `json:"cognitive_type"`
	ExpectedConcepts []string `json:"expected_concepts"`
}

type seedTopic struct {
	Name            string         `json:"name"`
	DifficultyRange string         `json:"difficulty_range"`
	Questions       []seedQuestion `json:"questions"`
}

type seedSubject struct {
	Name   string      `json:"name"`
	Topics []seedTopic `json:"topics"`
}

// Seed loads the embedded demo catalog. It is a no-op when any subject
// already exists, so restarts never duplicate reference data.
func Seed(ctx context.Context, p Provider) error {
	existing, err := p.ListSubjects(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	var subjects []seedSubject
	if err := json.Unmarshal(seedJSON, &subjects); err != nil {
		return fmt.Errorf("parse seed catalog: %w", err)
	}

	for _, ss := range subjects {
		sub, err := p.CreateSubject(ctx, ss.Name)
		if err != nil {
			return fmt.Errorf("seed subject %q: %w", ss.Name, err)
		}
		for _, st := range ss.Topics {
			topic, err := p.CreateTopic(ctx, sub.ID, st.Name, st.DifficultyRange)
			if err != nil {
				return fmt.Errorf("seed topic %q: %w", st.Name, err)
			}
			for _, sq := range st.Questions {
				_, err := p.CreateQuestion(ctx, Question{
					TopicID:          topic.ID,
					Text:             sq.Text,
					DifficultyLevel:  sq.DifficultyLevel,
					CognitiveType:    CognitiveType(sq.CognitiveType),
					ExpectedConcepts: sq.ExpectedConcepts,
				})
				if err != nil {
					return fmt.Errorf("seed question for %q: %w", st.Name, err)
				}
			}
		}
	}
	return nil
}
