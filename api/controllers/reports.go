package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/llm"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/report"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type ReportsController struct {
	submissions storage.SubmissionStorage
	reports     storage.ReportStorage
	orders      storage.OrderStorage
	service     *report.Service
}

func NewReportsController(submissions storage.SubmissionStorage, reports storage.ReportStorage, orders storage.OrderStorage, service *report.Service) *ReportsController {
	return &ReportsController{
		submissions: submissions,
		reports:     reports,
		orders:      orders,
		service:     service,
	}
}

func (c *ReportsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/reports")

	group.POST("/:id", c.generateReport)
	group.GET("/:id", c.getReport)
	group.POST("/:id/chat", c.chat)
}

// generateReport godoc
// @Summary Generate the AI maturity report for a paid submission
// @Description Idempotent: an already generated report is returned as-is
// @Tags reports
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.ReportResponse
// @Failure 402 {object} models.ErrorResponse "No paid order for this submission"
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse "Report generation failed"
// @Router /api/reports/{id} [post]
func (c *ReportsController) generateReport(g *gin.Context) {
	submission, ok := c.loadSubmission(g)
	if !ok {
		return
	}

	if !c.hasPaidOrder(g, submission.ID) {
		return
	}

	// Regenerating an existing report would burn tokens for nothing.
	if existing, err := c.reports.Get(g.Request.Context(), submission.ID); err == nil && existing.Status == storage.ReportStatusReady {
		g.JSON(http.StatusOK, models.TransformReport(existing))
		return
	}

	generated, err := c.service.Generate(g.Request.Context(), submission)
	if err != nil {
		logging.Log.Errorf("REPORTS: generation failed for %s: %v", submission.ID, err)
		var bad *llm.ErrBadResponse
		if errors.As(err, &bad) {
			g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "model returned an invalid report"})
			return
		}
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "report generation failed"})
		return
	}

	g.JSON(http.StatusOK, models.TransformReport(generated))
}

// getReport godoc
// @Summary Get a generated report
// @Tags reports
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.ReportResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/reports/{id} [get]
func (c *ReportsController) getReport(g *gin.Context) {
	id := g.Param("id")

	rep, err := c.reports.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("no report for submission: %s", id)})
			return
		}
		logging.Log.Errorf("REPORTS: failed to load report %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load report"})
		return
	}

	g.JSON(http.StatusOK, models.TransformReport(rep))
}

// chat godoc
// @Summary Ask a question about a generated report
// @Description Streams the answer as server-sent events ("message" deltas, then one "done")
// @Tags reports
// @Accept json
// @Produce text/event-stream
// @Param id path string true "Submission ID"
// @Param chat body models.ChatRequest true "Question and optional history"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Report is not ready"
// @Router /api/reports/{id}/chat [post]
func (c *ReportsController) chat(g *gin.Context) {
	var req models.ChatRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Question == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "question is required"})
		return
	}

	submission, ok := c.loadSubmission(g)
	if !ok {
		return
	}

	rep, err := c.reports.Get(g.Request.Context(), submission.ID)
	if err != nil || rep.Status != storage.ReportStatusReady {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "report is not ready for chat"})
		return
	}

	history := make([]llm.Message, 0, len(req.History))
	for _, m := range req.History {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}

	g.Writer.Header().Set("Content-Type", "text/event-stream")
	g.Writer.Header().Set("Cache-Control", "no-cache")
	g.Writer.Header().Set("Connection", "keep-alive")

	err = c.service.Chat(g.Request.Context(), rep, submission, req.Question, history,
		func(delta string) error {
			g.SSEvent("message", delta)
			g.Writer.Flush()
			return nil
		})
	if err != nil {
		logging.Log.Errorf("REPORTS: chat stream failed for %s: %v", submission.ID, err)
		g.SSEvent("error", "chat failed")
		g.Writer.Flush()
		return
	}

	g.SSEvent("done", "")
	g.Writer.Flush()
}

func (c *ReportsController) loadSubmission(g *gin.Context) (*storage.Submission, bool) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "id is required"})
		return nil, false
	}

	submission, err := c.submissions.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("submission not found: %s", id)})
			return nil, false
		}
		logging.Log.Errorf("REPORTS: failed to load submission %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submission"})
		return nil, false
	}
	return submission, true
}

func (c *ReportsController) hasPaidOrder(g *gin.Context, submissionID string) bool {
	orders, err := c.orders.GetBySubmission(g.Request.Context(), submissionID)
	if err != nil {
		logging.Log.Errorf("REPORTS: failed to load orders for %s: %v", submissionID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify payment"})
		return false
	}
	for _, o := range orders {
		if o.Status == storage.OrderStatusPaid {
			return true
		}
	}
	g.JSON(http.StatusPaymentRequired, &models.ErrorResponse{Error: "no paid order for this submission"})
	return false
}
