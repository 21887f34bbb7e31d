package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santhoshclientric/Revyn-sub001/llm"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

func init() {
	logging.BootstrapLogger()
}

type memoryReportStorage struct {
	mu      sync.Mutex
	reports map[string]*storage.Report
}

func newMemoryReportStorage() *memoryReportStorage {
	return &memoryReportStorage{reports: make(map[string]*storage.Report)}
}

func (m *memoryReportStorage) Get(_ context.Context, submissionID string) (*storage.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[submissionID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memoryReportStorage) Put(_ context.Context, report *storage.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *report
	m.reports[report.SubmissionID] = &cp
	return nil
}

func (m *memoryReportStorage) SetStatus(_ context.Context, submissionID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.reports[submissionID]; ok {
		r.Status = status
	}
	return nil
}

const validDocument = `{
	"summary": "Overall maturity is 62%, held back by Data & Analytics.",
	"strengths": ["Clear strategy ownership"],
	"gaps": ["No per-channel acquisition cost tracking"],
	"recommendations": [
		{"category": "Data & Analytics", "priority": "high", "actions": ["Instrument CPA per channel", "Set a weekly dashboard review"]}
	]
}`

func testSubmission() *storage.Submission {
	return &storage.Submission{
		ID:           "sub-1",
		Company:      "Acme GmbH",
		Email:        "cmo@acme.example",
		OverallScore: 62,
		Answers: []storage.StoredAnswer{
			{QuestionID: 1, Category: scoring.CategoryStrategy, Kind: "scale", Scale: 7},
			{QuestionID: 3, Category: scoring.CategoryStrategy, Kind: "multiple-choice", Choice: "Partially"},
			{QuestionID: 4, Category: scoring.CategoryStrategy, Kind: "text", Text: "Not enough budget"},
		},
	}
}

func TestGeneratePersistsValidatedReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validDocument)})
	reports := newMemoryReportStorage()
	svc := NewService(mock, reports, scoring.Default())

	rep, err := svc.Generate(context.Background(), testSubmission())
	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusReady, rep.Status)
	assert.Equal(t, "mock", rep.Model)

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(rep.Document), &doc))
	assert.NotEmpty(t, doc.Summary)
	assert.Len(t, doc.Recommendations, 1)

	stored, err := reports.Get(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusReady, stored.Status)
}

func TestGenerateRejectsNonConformingDocument(t *testing.T) {
	// Missing required "recommendations" field.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"x","strengths":[],"gaps":[]}`),
	})
	reports := newMemoryReportStorage()
	svc := NewService(mock, reports, scoring.Default())

	_, err := svc.Generate(context.Background(), testSubmission())
	var bad *llm.ErrBadResponse
	require.ErrorAs(t, err, &bad)

	stored, err := reports.Get(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusFailed, stored.Status)
}

func TestGenerateRecordsFailureOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("down")}})
	reports := newMemoryReportStorage()
	svc := NewService(mock, reports, scoring.Default())

	_, err := svc.Generate(context.Background(), testSubmission())
	require.Error(t, err)

	stored, err := reports.Get(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, storage.ReportStatusFailed, stored.Status)
}

func TestChatStreamsDeltasInOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("focus on data quality first")})
	svc := NewService(mock, newMemoryReportStorage(), scoring.Default())

	rep := &storage.Report{SubmissionID: "sub-1", Status: storage.ReportStatusReady, Document: validDocument}

	var chunks []string
	err := svc.Chat(context.Background(), rep, testSubmission(), "Where should we start?", nil,
		func(delta string) error {
			chunks = append(chunks, delta)
			return nil
		})
	require.NoError(t, err)
	assert.Greater(t, len(chunks), 1, "mock provider should chunk the answer")
	assert.Equal(t, "focus on data quality first", strings.Join(chunks, ""))
}

func TestChatEmitErrorAbortsStream(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("one two three")})
	svc := NewService(mock, newMemoryReportStorage(), scoring.Default())
	rep := &storage.Report{SubmissionID: "sub-1", Document: validDocument}

	stop := errors.New("client went away")
	err := svc.Chat(context.Background(), rep, testSubmission(), "q", nil,
		func(string) error { return stop })
	assert.ErrorIs(t, err, stop)
}
