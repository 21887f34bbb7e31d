package models

import (
	"fmt"
	"time"

	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

// AnswerEntry is the wire form of one answer. Exactly one of Scale, Choice
// or Text must be set; pointers distinguish "absent" from zero values.
type AnswerEntry struct {
	QuestionID int      `json:"questionId"`
	Category   string   `json:"category"`
	Scale      *float64 `json:"scale,omitempty"`
	Choice     *string  `json:"choice,omitempty"`
	Text       *string  `json:"text,omitempty"`
}

// ToScoringAnswer converts the wire union to the tagged scoring variant.
func (a AnswerEntry) ToScoringAnswer() (scoring.Answer, error) {
	set := 0
	if a.Scale != nil {
		set++
	}
	if a.Choice != nil {
		set++
	}
	if a.Text != nil {
		set++
	}
	if set != 1 {
		return scoring.Answer{}, fmt.Errorf("answer for question %d must set exactly one of scale, choice, text", a.QuestionID)
	}

	switch {
	case a.Scale != nil:
		return scoring.ScaleAnswer(a.QuestionID, a.Category, *a.Scale), nil
	case a.Choice != nil:
		return scoring.ChoiceAnswer(a.QuestionID, a.Category, *a.Choice), nil
	default:
		return scoring.TextAnswer(a.QuestionID, a.Category, *a.Text), nil
	}
}

type SubmitAuditRequest struct {
	Company string        `json:"company"`
	Email   string        `json:"email"`
	Answers []AnswerEntry `json:"answers"`
}

type CategoryScoreResponse struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Questions  int    `json:"questions"`
}

type SubmitAuditResponse struct {
	ID           string                  `json:"id"`
	OverallScore int                     `json:"overallScore"`
	Scores       []CategoryScoreResponse `json:"scores"`
	CreatedAt    time.Time               `json:"createdAt"`
}

type SubmissionResponse struct {
	ID           string                  `json:"id"`
	Company      string                  `json:"company"`
	Email        string                  `json:"email"`
	OverallScore int                     `json:"overallScore"`
	Scores       []CategoryScoreResponse `json:"scores"`
	CreatedAt    time.Time               `json:"createdAt"`
}

func TransformCategoryScores(scores []scoring.CategoryScore) []CategoryScoreResponse {
	out := make([]CategoryScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, CategoryScoreResponse{
			Category:   s.Category,
			Percentage: s.Percentage,
			Questions:  s.Questions,
		})
	}
	return out
}

func TransformSubmission(sub *storage.Submission, scores []scoring.CategoryScore) SubmissionResponse {
	return SubmissionResponse{
		ID:           sub.ID,
		Company:      sub.Company,
		Email:        sub.Email,
		OverallScore: sub.OverallScore,
		Scores:       TransformCategoryScores(scores),
		CreatedAt:    sub.CreatedAt,
	}
}
