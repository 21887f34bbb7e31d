package models

import (
	"encoding/json"
	"time"

	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type ReportResponse struct {
	SubmissionID string          `json:"submissionId"`
	Status       string          `json:"status"`
	Document     json.RawMessage `json:"document,omitempty"`
	Model        string          `json:"model,omitempty"`
	GeneratedAt  time.Time       `json:"generatedAt"`
}

func TransformReport(r *storage.Report) ReportResponse {
	resp := ReportResponse{
		SubmissionID: r.SubmissionID,
		Status:       r.Status,
		Model:        r.Model,
		GeneratedAt:  r.GeneratedAt,
	}
	if r.Document != "" {
		resp.Document = json.RawMessage(r.Document)
	}
	return resp
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Question string        `json:"question"`
	History  []ChatMessage `json:"history,omitempty"`
}
