package report

import (
	"fmt"
	"strings"

	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

const reportSystemPrompt = `You are a senior marketing consultant writing a maturity assessment for a company that completed a marketing audit questionnaire. Be specific, practical and honest; avoid generic advice that could apply to any company.`

const chatSystemPrompt = `You are a marketing consultant answering follow-up questions about a maturity report you wrote. Answer only from the report and scores provided. If the report does not cover a question, say so instead of inventing detail.`

func buildReportUserMessage(sub *storage.Submission, catalog scoring.Catalog) string {
	answers := sub.ScoringAnswers()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Company: %s\n", sub.Company))
	b.WriteString(fmt.Sprintf("Overall maturity score: %d%%\n", sub.OverallScore))

	b.WriteString("\nCategory scores:\n")
	for _, cs := range scoring.ScoreAll(catalog, answers) {
		b.WriteString(fmt.Sprintf("- %s: %d%% (%d questions)\n", cs.Category, cs.Percentage, cs.Questions))
	}

	b.WriteString("\nAnswers:\n")
	for _, a := range sub.Answers {
		q, ok := catalog.ByID(a.QuestionID)
		if !ok {
			continue
		}
		switch scoring.Kind(a.Kind) {
		case scoring.KindScale:
			b.WriteString(fmt.Sprintf("- %s: %.0f/10\n", q.Prompt, a.Scale))
		case scoring.KindMultipleChoice:
			b.WriteString(fmt.Sprintf("- %s: %s\n", q.Prompt, a.Choice))
		default:
			if a.Text != "" {
				b.WriteString(fmt.Sprintf("- %s: %q\n", q.Prompt, a.Text))
			}
		}
	}

	b.WriteString(`
Instructions:
Write the maturity report for this company.
1. The summary must reference the overall score and the weakest category.
2. List concrete strengths and gaps grounded in the answers above, not platitudes.
3. Give one recommendation block per category that scored below 70%, with 2-4 specific actions each. Priority reflects how far the category is below 70%.`)

	return b.String()
}

func buildChatContext(rep *storage.Report, sub *storage.Submission) string {
	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString(fmt.Sprintf("\n\nCompany: %s\nOverall maturity score: %d%%\n", sub.Company, sub.OverallScore))
	b.WriteString("\nReport document (JSON):\n")
	b.WriteString(rep.Document)
	return b.String()
}
