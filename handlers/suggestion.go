package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academis/models"
	"academis/services/suggestion"
	"academis/utils"
)

// SuggestionHandler serves the stateless one-shot suggestion endpoint.
type SuggestionHandler struct {
	Service suggestion.SuggestionService
	Logger  *zap.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestion.SuggestionService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{Service: svc, Logger: logger}
}

// SuggestCandidatesRequest carries a draft spec plus an optional student
// status filter.
type SuggestCandidatesRequest struct {
	Spec     models.BatchSpec `json:"spec" binding:"required"`
	Statuses []string         `json:"statuses"`
}

// SuggestCandidates classifies and ranks candidates for an in-memory draft
// spec, without a cached session.
func (h *SuggestionHandler) SuggestCandidates(c *gin.Context) {
	var req SuggestCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid suggestion request", err.Error())
		return
	}

	report, err := h.Service.Suggest(c.Request.Context(), req.Spec, suggestion.Options{Statuses: req.Statuses})
	if err != nil {
		if suggestion.IsUpstream(err) {
			utils.JSONError(c, http.StatusServiceUnavailable, "upstream unavailable", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "suggestion run failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// statusFilter reads the optional comma-separated `statuses` query param.
func statusFilter(c *gin.Context) []string {
	raw := c.Query("statuses")
	if raw == "" {
		return nil
	}
	var statuses []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}
