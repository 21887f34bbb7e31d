package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/santhoshclientric/Revyn-sub001/api/controllers/testing"
	"github.com/santhoshclientric/Revyn-sub001/api/models"
	"github.com/santhoshclientric/Revyn-sub001/scoring"
)

func newCatalogRouter() *gin.Engine {
	engine := gin.New()
	NewCatalogController(scoring.Default()).RegisterRoutes(engine)
	return engine
}

func TestCatalogController_GetCatalog(t *testing.T) {
	router := newCatalogRouter()

	res := testutils.PerformRequest(router, http.MethodGet, "/api/catalog", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var questions []models.QuestionResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &questions))
	require.Len(t, questions, scoring.Default().Len())

	for _, q := range questions {
		assert.NotZero(t, q.ID)
		assert.NotEmpty(t, q.Category)
		assert.NotEmpty(t, q.Prompt)
		if q.Kind == string(scoring.KindMultipleChoice) {
			assert.NotEmpty(t, q.Options)
		} else {
			assert.Empty(t, q.Options)
		}
	}
}

func TestCatalogController_GetCategories(t *testing.T) {
	router := newCatalogRouter()
	catalog := scoring.Default()

	res := testutils.PerformRequest(router, http.MethodGet, "/api/catalog/categories", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var categories []models.CategorySummaryResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &categories))
	require.Len(t, categories, len(catalog.Categories()))

	total := 0
	for i, c := range categories {
		assert.Equal(t, catalog.Categories()[i], c.Name)
		total += c.Questions
	}
	assert.Equal(t, catalog.Len(), total)
}
