package models

import "github.com/santhoshclientric/Revyn-sub001/scoring"

type QuestionResponse struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
}

type CategorySummaryResponse struct {
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

func TransformQuestion(q scoring.Question) QuestionResponse {
	return QuestionResponse{
		ID:       q.ID,
		Category: q.Category,
		Prompt:   q.Prompt,
		Kind:     string(q.Kind),
		Options:  q.Options,
	}
}
