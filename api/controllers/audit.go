package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type AuditController struct {
	submissions storage.SubmissionStorage
	catalog     scoring.Catalog
}

func NewAuditController(submissions storage.SubmissionStorage, catalog scoring.Catalog) *AuditController {
	return &AuditController{
		submissions: submissions,
		catalog:     catalog,
	}
}

func (c *AuditController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/audit")

	group.POST("", c.submitAudit)
	group.GET("/:id", c.getSubmission)
	group.GET("/:id/scores", c.getScores)
}

// submitAudit godoc
// @Summary Submit a completed audit questionnaire
// @Description Accepts the full answer set, scores it once and persists the submission
// @Tags audit
// @Accept json
// @Produce json
// @Param audit body models.SubmitAuditRequest true "Audit submission"
// @Success 200 {object} models.SubmitAuditResponse
// @Failure 400 {object} models.ErrorResponse "Invalid or incomplete submission"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/audit [post]
func (c *AuditController) submitAudit(g *gin.Context) {
	var req models.SubmitAuditRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Company == "" || req.Email == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing company or email"})
		return
	}

	answers := make([]scoring.Answer, 0, len(req.Answers))
	for _, entry := range req.Answers {
		a, err := entry.ToScoringAnswer()
		if err != nil {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
			return
		}
		answers = append(answers, a)
	}

	// Partial submissions live only in the caller's UI state; a persisted
	// submission must answer every catalog question.
	if missing := c.missingQuestions(answers); missing > 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{
			Error: fmt.Sprintf("incomplete submission: %d of %d questions unanswered", missing, c.catalog.Len()),
		})
		return
	}

	id, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("AUDIT: failed to generate submission id: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create submission"})
		return
	}

	stored := make([]storage.StoredAnswer, 0, len(answers))
	for _, a := range answers {
		stored = append(stored, storage.FromScoringAnswer(a))
	}

	submission := &storage.Submission{
		ID:           id,
		Company:      req.Company,
		Email:        req.Email,
		Answers:      stored,
		OverallScore: scoring.ScoreOverall(c.catalog, answers),
		CreatedAt:    time.Now().UTC(),
	}

	if err := c.submissions.Create(g.Request.Context(), submission); err != nil {
		logging.Log.Errorf("AUDIT: failed to store submission: %v", err)
		if errors.Is(err, storage.ErrAlreadyExists) {
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "submission already exists"})
			return
		}
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save submission"})
		return
	}

	logging.Log.Infof("AUDIT: stored submission %s for %s (overall %d%%)", id, req.Company, submission.OverallScore)
	g.JSON(http.StatusOK, &models.SubmitAuditResponse{
		ID:           submission.ID,
		OverallScore: submission.OverallScore,
		Scores:       models.TransformCategoryScores(scoring.ScoreAll(c.catalog, answers)),
		CreatedAt:    submission.CreatedAt,
	})
}

// getSubmission godoc
// @Summary Get a submission with its score breakdown
// @Tags audit
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.SubmissionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/audit/{id} [get]
func (c *AuditController) getSubmission(g *gin.Context) {
	submission, ok := c.loadSubmission(g)
	if !ok {
		return
	}

	scores := scoring.ScoreAll(c.catalog, submission.ScoringAnswers())
	g.JSON(http.StatusOK, models.TransformSubmission(submission, scores))
}

// getScores godoc
// @Summary Get the category score breakdown of a submission
// @Description Category scores are a view artifact, recomputed from the stored answers on every call
// @Tags audit
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {array} models.CategoryScoreResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/audit/{id}/scores [get]
func (c *AuditController) getScores(g *gin.Context) {
	submission, ok := c.loadSubmission(g)
	if !ok {
		return
	}

	scores := scoring.ScoreAll(c.catalog, submission.ScoringAnswers())
	g.JSON(http.StatusOK, models.TransformCategoryScores(scores))
}

func (c *AuditController) loadSubmission(g *gin.Context) (*storage.Submission, bool) {
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
		logging.Log.Errorf("AUDIT: failed to load submission %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submission"})
		return nil, false
	}
	return submission, true
}

// missingQuestions counts catalog questions without any matching answer.
func (c *AuditController) missingQuestions(answers []scoring.Answer) int {
	answered := make(map[int]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}
	missing := 0
	for _, q := range c.catalog.Questions() {
		if !answered[q.ID] {
			missing++
		}
	}
	return missing
}
