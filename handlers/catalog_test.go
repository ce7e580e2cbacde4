package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"academis/models"
	"academis/services/catalog"
)

func TestListCurriculum(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler(catalog.New([]models.CurriculumItem{
		{Identifier: "AutoCAD", Sessions: 24},
		{Identifier: "Revit Architecture", Sessions: 30},
	}), zap.NewNop())
	r.GET("/api/catalog", h.ListCurriculum)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Catalog order is part of the contract; substring resolution depends on it.
	assert.Contains(t, w.Body.String(),
		`{"identifier":"AutoCAD","sessions":24},{"identifier":"Revit Architecture","sessions":30}`)
}
