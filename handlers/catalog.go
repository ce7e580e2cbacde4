package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academis/services/catalog"
)

// CatalogHandler serves the curriculum catalog read endpoint.
type CatalogHandler struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

// ListCurriculum returns the configured catalog entries in catalog order, so
// clients can offer the same identifiers the resolver will accept.
func (h *CatalogHandler) ListCurriculum(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"curriculum": h.Catalog.Entries()})
}
