package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/payments"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

func init() {
	logging.BootstrapLogger()
	gin.SetMode(gin.TestMode)
}

// In-memory storage fakes. They honor the same sentinel errors as the
// DynamoDB implementations so controller error paths stay testable.

type memorySubmissionStorage struct {
	items map[string]*storage.Submission
}

func newMemorySubmissionStorage() *memorySubmissionStorage {
	return &memorySubmissionStorage{items: make(map[string]*storage.Submission)}
}

func (m *memorySubmissionStorage) Get(_ context.Context, id string) (*storage.Submission, error) {
	sub, ok := m.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return sub, nil
}

func (m *memorySubmissionStorage) GetAll(_ context.Context) ([]*storage.Submission, error) {
	out := make([]*storage.Submission, 0, len(m.items))
	for _, sub := range m.items {
		out = append(out, sub)
	}
	return out, nil
}

func (m *memorySubmissionStorage) Create(_ context.Context, sub *storage.Submission) error {
	if _, ok := m.items[sub.ID]; ok {
		return storage.ErrAlreadyExists
	}
	m.items[sub.ID] = sub
	return nil
}

func (m *memorySubmissionStorage) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type memoryReportStorage struct {
	items map[string]*storage.Report
}

func newMemoryReportStorage() *memoryReportStorage {
	return &memoryReportStorage{items: make(map[string]*storage.Report)}
}

func (m *memoryReportStorage) Get(_ context.Context, submissionID string) (*storage.Report, error) {
	rep, ok := m.items[submissionID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rep, nil
}

func (m *memoryReportStorage) Put(_ context.Context, rep *storage.Report) error {
	m.items[rep.SubmissionID] = rep
	return nil
}

func (m *memoryReportStorage) SetStatus(_ context.Context, submissionID, status string) error {
	if rep, ok := m.items[submissionID]; ok {
		rep.Status = status
		return nil
	}
	m.items[submissionID] = &storage.Report{SubmissionID: submissionID, Status: status}
	return nil
}

type memoryOrderStorage struct {
	items map[string]*storage.Order
}

func newMemoryOrderStorage() *memoryOrderStorage {
	return &memoryOrderStorage{items: make(map[string]*storage.Order)}
}

func (m *memoryOrderStorage) Get(_ context.Context, id string) (*storage.Order, error) {
	order, ok := m.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return order, nil
}

func (m *memoryOrderStorage) GetAll(_ context.Context) ([]*storage.Order, error) {
	out := make([]*storage.Order, 0, len(m.items))
	for _, order := range m.items {
		out = append(out, order)
	}
	return out, nil
}

func (m *memoryOrderStorage) GetBySubmission(_ context.Context, submissionID string) ([]*storage.Order, error) {
	var out []*storage.Order
	for _, order := range m.items {
		if order.SubmissionID == submissionID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *memoryOrderStorage) Create(_ context.Context, order *storage.Order) error {
	if _, ok := m.items[order.ID]; ok {
		return storage.ErrAlreadyExists
	}
	m.items[order.ID] = order
	return nil
}

func (m *memoryOrderStorage) MarkPaid(_ context.Context, id, transactionID string) error {
	order, ok := m.items[id]
	if !ok {
		return storage.ErrNotFound
	}
	order.Status = storage.OrderStatusPaid
	order.TransactionID = transactionID
	order.PaidAt = time.Now().UTC()
	return nil
}

// fakePaymentsClient replaces the Stripe boundary in tests.
type fakePaymentsClient struct {
	createErr     error
	transactionID string
	confirmErr    error
	confirmCalls  int
}

func (f *fakePaymentsClient) CreateCheckout(_ context.Context, orderID string) (*payments.Checkout, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payments.Checkout{
		SessionID: "cs_test_" + orderID,
		URL:       "https://checkout.example/pay/" + orderID,
	}, nil
}

func (f *fakePaymentsClient) Confirm(_ context.Context, _ string) (string, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	return f.transactionID, nil
}

// completeAnswerEntries answers every catalog question: scales with 8,
// choices with the top-ranked option, text with a short note.
func completeAnswerEntries(catalog scoring.Catalog) []models.AnswerEntry {
	entries := make([]models.AnswerEntry, 0, catalog.Len())
	for _, q := range catalog.Questions() {
		entry := models.AnswerEntry{QuestionID: q.ID, Category: q.Category}
		switch q.Kind {
		case scoring.KindScale:
			v := 8.0
			entry.Scale = &v
		case scoring.KindMultipleChoice:
			choice := q.Options[0]
			entry.Choice = &choice
		default:
			text := "We lack a dedicated owner for this."
			entry.Text = &text
		}
		entries = append(entries, entry)
	}
	return entries
}

// seededSubmission builds a stored submission from a complete answer set.
func seededSubmission(id string, catalog scoring.Catalog) *storage.Submission {
	entries := completeAnswerEntries(catalog)
	answers := make([]scoring.Answer, 0, len(entries))
	stored := make([]storage.StoredAnswer, 0, len(entries))
	for _, entry := range entries {
		a, err := entry.ToScoringAnswer()
		if err != nil {
			panic("seed answers must be valid: " + err.Error())
		}
		answers = append(answers, a)
		stored = append(stored, storage.FromScoringAnswer(a))
	}
	return &storage.Submission{
		ID:           id,
		Company:      "Acme GmbH",
		Email:        "cmo@acme.example",
		Answers:      stored,
		OverallScore: scoring.ScoreOverall(catalog, answers),
		CreatedAt:    time.Now().UTC(),
	}
}
