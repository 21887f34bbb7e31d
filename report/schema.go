package report

import "github.com/santhoshclientric/Revyn-sub001/llm"

// Document is the structured maturity report the model must return. The
// JSON shape is pinned by documentSchema and validated before anything is
// persisted.
type Document struct {
	Summary         string           `json:"summary"`
	Strengths       []string         `json:"strengths"`
	Gaps            []string         `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation is one prioritized action plan for a single category.
type Recommendation struct {
	Category string   `json:"category"`
	Priority string   `json:"priority"`
	Actions  []string `json:"actions"`
}

var documentSchema = &llm.Schema{
	Name: "maturity-report",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"summary", "strengths", "gaps", "recommendations"},
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Three to five sentence assessment of the company's overall marketing maturity.",
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"gaps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"category", "priority", "actions"},
					"properties": map[string]any{
						"category": map[string]any{"type": "string"},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"high", "medium", "low"},
						},
						"actions": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}
