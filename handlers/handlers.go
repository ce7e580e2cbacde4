package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academis/utils"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	// Draft batch endpoints.
	CreateDraftSession gin.HandlerFunc
	UpdateDraftSession gin.HandlerFunc
	DraftSuggestions   gin.HandlerFunc
	ProjectEndDate     gin.HandlerFunc

	// Stateless scheduling endpoints.
	SuggestCandidates        gin.HandlerFunc
	CheckFacultyAvailability gin.HandlerFunc

	// Catalog read endpoint.
	ListCurriculum gin.HandlerFunc
}

// HealthHandler reports the latest stored health snapshot. The endpoint
// degrades when mongo or the draft session store is down; a stale load
// summary cache alone does not fail it.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if status.Degraded() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
