package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santhoshclientric/Revyn-sub001/api/transport"
	"github.com/santhoshclientric/Revyn-sub001/logging"
	"github.com/santhoshclientric/Revyn-sub001/storage"
)

type AdminController struct {
	submissions storage.SubmissionStorage
	orders      storage.OrderStorage
}

func NewAdminController(submissions storage.SubmissionStorage, orders storage.OrderStorage) *AdminController {
	return &AdminController{
		submissions: submissions,
		orders:      orders,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/submissions", c.listSubmissions)
	group.DELETE("/submissions/:id", c.deleteSubmission)
	group.GET("/orders", c.listOrders)
}

// @Security AdminToken
// listSubmissions godoc
// @Summary List all audit submissions
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Submission
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions [get]
func (c *AdminController) listSubmissions(g *gin.Context) {
	submissions, err := c.submissions.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list submissions: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: listed %d submissions", len(submissions))
	g.JSON(http.StatusOK, submissions)
}

// @Security AdminToken
// deleteSubmission godoc
// @Summary Delete a submission by ID
// @Tags admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions/{id} [delete]
func (c *AdminController) deleteSubmission(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}
	if err := c.submissions.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete submission %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: deleted submission: %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

// @Security AdminToken
// listOrders godoc
// @Summary List all report orders
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Order
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/orders [get]
func (c *AdminController) listOrders(g *gin.Context) {
	orders, err := c.orders.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list orders: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: listed %d orders", len(orders))
	g.JSON(http.StatusOK, orders)
}
