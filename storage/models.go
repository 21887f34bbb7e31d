package storage

import (
	"time"

	"github.com/santhoshclientric/Revyn-sub001/scoring"
)

// Submission is one respondent's completed audit. Immutable once written;
// the overall score is computed exactly once, at creation.
type Submission struct {
	ID           string         `dynamodbav:"PK" json:"id"`
	Company      string         `dynamodbav:"Company" json:"company"`
	Email        string         `dynamodbav:"Email" json:"email"`
	Answers      []StoredAnswer `dynamodbav:"Answers" json:"answers"`
	OverallScore int            `dynamodbav:"OverallScore" json:"overallScore"`
	CreatedAt    time.Time      `dynamodbav:"CreatedAt" json:"createdAt"`
}

// StoredAnswer flattens the scoring answer variants for DynamoDB. Exactly
// one of Scale/Choice/Text is meaningful, selected by Kind.
type StoredAnswer struct {
	QuestionID int     `dynamodbav:"QuestionID" json:"questionId"`
	Category   string  `dynamodbav:"Category" json:"category"`
	Kind       string  `dynamodbav:"Kind" json:"kind"`
	Scale      float64 `dynamodbav:"Scale,omitempty" json:"scale,omitempty"`
	Choice     string  `dynamodbav:"Choice,omitempty" json:"choice,omitempty"`
	Text       string  `dynamodbav:"Text,omitempty" json:"text,omitempty"`
}

// FromScoringAnswer converts a scoring answer to its stored form.
func FromScoringAnswer(a scoring.Answer) StoredAnswer {
	s := StoredAnswer{QuestionID: a.QuestionID, Category: a.Category}
	switch v := a.Value.(type) {
	case scoring.ScaleValue:
		s.Kind = string(scoring.KindScale)
		s.Scale = float64(v)
	case scoring.ChoiceValue:
		s.Kind = string(scoring.KindMultipleChoice)
		s.Choice = string(v)
	case scoring.TextValue:
		s.Kind = string(scoring.KindText)
		s.Text = string(v)
	}
	return s
}

// ScoringAnswers rebuilds the tagged answer values for rescoring. Unknown
// kinds map to text so they keep contributing nothing.
func (s *Submission) ScoringAnswers() []scoring.Answer {
	out := make([]scoring.Answer, 0, len(s.Answers))
	for _, a := range s.Answers {
		switch scoring.Kind(a.Kind) {
		case scoring.KindScale:
			out = append(out, scoring.ScaleAnswer(a.QuestionID, a.Category, a.Scale))
		case scoring.KindMultipleChoice:
			out = append(out, scoring.ChoiceAnswer(a.QuestionID, a.Category, a.Choice))
		default:
			out = append(out, scoring.TextAnswer(a.QuestionID, a.Category, a.Text))
		}
	}
	return out
}

// Report statuses.
const (
	ReportStatusPending = "pending"
	ReportStatusReady   = "ready"
	ReportStatusFailed  = "failed"
)

// Report is the AI-generated maturity report for one submission. Document
// holds the structured report JSON exactly as the model returned it.
type Report struct {
	SubmissionID string    `dynamodbav:"PK" json:"submissionId"`
	Status       string    `dynamodbav:"Status" json:"status"`
	Document     string    `dynamodbav:"Document,omitempty" json:"document,omitempty"`
	Model        string    `dynamodbav:"Model,omitempty" json:"model,omitempty"`
	GeneratedAt  time.Time `dynamodbav:"GeneratedAt" json:"generatedAt"`
}

// Order statuses.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order tracks the purchase of a report through the payment provider.
type Order struct {
	ID                string    `dynamodbav:"PK" json:"id"`
	SubmissionID      string    `dynamodbav:"SubmissionID" json:"submissionId"`
	CheckoutSessionID string    `dynamodbav:"CheckoutSessionID" json:"-"`
	TransactionID     string    `dynamodbav:"TransactionID,omitempty" json:"transactionId,omitempty"`
	Status            string    `dynamodbav:"Status" json:"status"`
	AmountCents       int64     `dynamodbav:"AmountCents" json:"amountCents"`
	Currency          string    `dynamodbav:"Currency" json:"currency"`
	CreatedAt         time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	PaidAt            time.Time `dynamodbav:"PaidAt,omitempty" json:"paidAt,omitempty"`
}
