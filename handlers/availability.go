package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academis/models"
	"academis/services/availability"
	"academis/utils"
)

// AvailabilityHandler serves the faculty availability check endpoint.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// CheckFacultyAvailabilityRequest carries the candidate range, the intended
// faculty, and the optional weekly pattern of the draft batch.
type CheckFacultyAvailabilityRequest struct {
	FacultyIDs []string              `json:"facultyIds" binding:"required,min=1"`
	Range      models.DateRange      `json:"range" binding:"required"`
	Schedule   models.WeeklySchedule `json:"schedule"`
}

// CheckFacultyAvailability reports, per faculty, whether the candidate slot
// is free and the structured conflicts when it is not.
func (h *AvailabilityHandler) CheckFacultyAvailability(c *gin.Context) {
	var req CheckFacultyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability request", err.Error())
		return
	}

	results, err := h.Service.Check(c.Request.Context(), req.FacultyIDs, req.Range, req.Schedule)
	if err != nil {
		var ue *availability.UpstreamError
		if errors.As(err, &ue) {
			utils.JSONError(c, http.StatusServiceUnavailable, "upstream unavailable", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "availability check failed", err.Error())
		return
	}

	h.Logger.Debug("faculty availability checked", zap.Int("faculty", len(req.FacultyIDs)))
	c.JSON(http.StatusOK, gin.H{"perFaculty": results})
}
