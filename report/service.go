// Package report turns scored submissions into AI-written maturity reports
// and answers follow-up questions about them.
package report

import (
	"context"
	"time"

	"github.com/santhoshclientric/Revyn-sub001/llm"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

const (
	reportMaxTokens = 2048
	chatMaxTokens   = 1024
)

type Service struct {
	provider llm.Provider
	reports  storage.ReportStorage
	catalog  scoring.Catalog
}

func NewService(provider llm.Provider, reports storage.ReportStorage, catalog scoring.Catalog) *Service {
	return &Service{
		provider: provider,
		reports:  reports,
		catalog:  catalog,
	}
}

// Generate writes the maturity report for a submission and persists it.
// The model response is schema-validated before it is stored; a failed
// generation leaves a failed report row behind so the caller can retry.
func (s *Service) Generate(ctx context.Context, sub *storage.Submission) (*storage.Report, error) {
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:    reportSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildReportUserMessage(sub, s.catalog)}},
		Schema:    documentSchema,
		MaxTokens: reportMaxTokens,
	})
	if err != nil {
		logging.Log.Errorf("REPORT: generation failed for submission %s: %v", sub.ID, err)
		if putErr := s.reports.Put(ctx, &storage.Report{
			SubmissionID: sub.ID,
			Status:       storage.ReportStatusFailed,
			GeneratedAt:  time.Now().UTC(),
		}); putErr != nil {
			logging.Log.Errorf("REPORT: failed to record failed report: %v", putErr)
		}
		return nil, err
	}

	rep := &storage.Report{
		SubmissionID: sub.ID,
		Status:       storage.ReportStatusReady,
		Document:     string(resp.Content),
		Model:        resp.Model,
		GeneratedAt:  time.Now().UTC(),
	}
	if err := s.reports.Put(ctx, rep); err != nil {
		return nil, err
	}

	logging.Log.Infof("REPORT: generated report for submission %s with %s", sub.ID, resp.Model)
	return rep, nil
}

// Chat streams an answer about a generated report. Providers without
// native streaming are served by a one-shot completion delivered as a
// single chunk.
func (s *Service) Chat(ctx context.Context, rep *storage.Report, sub *storage.Submission, question string, history []llm.Message, emit func(delta string) error) error {
	req := llm.Request{
		System:    buildChatContext(rep, sub),
		Messages:  append(history, llm.Message{Role: llm.RoleUser, Content: question}),
		MaxTokens: chatMaxTokens,
		// Slight temperature keeps chat answers from sounding canned.
		Temperature: 0.3,
	}

	if streamer, ok := s.provider.(llm.Streamer); ok {
		return streamer.Stream(ctx, req, emit)
	}

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return err
	}
	return emit(string(resp.Content))
}
