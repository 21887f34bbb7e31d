package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
)

type CatalogController struct {
	catalog scoring.Catalog
}

func NewCatalogController(catalog scoring.Catalog) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (c *CatalogController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/catalog")

	group.GET("", c.getCatalog)
	group.GET("/categories", c.getCategories)
}

// getCatalog godoc
// @Summary Get the audit question catalog
// @Description Returns the full, ordered audit questionnaire
// @Tags catalog
// @Produce json
// @Success 200 {array} models.QuestionResponse
// @Router /api/catalog [get]
func (c *CatalogController) getCatalog(g *gin.Context) {
	questions := c.catalog.Questions()
	responses := make([]models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, models.TransformQuestion(q))
	}
	g.JSON(http.StatusOK, responses)
}

// getCategories godoc
// @Summary Get the audit categories
// @Description Returns the category labels and how many questions each holds
// @Tags catalog
// @Produce json
// @Success 200 {array} models.CategorySummaryResponse
// @Router /api/catalog/categories [get]
func (c *CatalogController) getCategories(g *gin.Context) {
	categories := c.catalog.Categories()
	responses := make([]models.CategorySummaryResponse, 0, len(categories))
	for _, name := range categories {
		responses = append(responses, models.CategorySummaryResponse{
			Name:      name,
			Questions: len(c.catalog.Category(name)),
		})
	}
	g.JSON(http.StatusOK, responses)
}
