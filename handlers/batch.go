package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"academis/config"
	"academis/models"
	"academis/services/catalog"
	"academis/services/schedule"
	"academis/services/suggestion"
	"academis/utils"
)

// BatchHandler serves the draft-batch flow: a draft specification lives in
// redis under a session ID while staff iterate on it, and every scheduling
// computation runs against that in-memory value. Nothing is written to the
// batch registry until the draft is confirmed elsewhere.
type BatchHandler struct {
	Cache       *redis.Client
	Catalog     *catalog.Catalog
	Suggestions suggestion.SuggestionService
	Logger      *zap.Logger
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(cache *redis.Client, cat *catalog.Catalog, svc suggestion.SuggestionService, logger *zap.Logger) *BatchHandler {
	return &BatchHandler{Cache: cache, Catalog: cat, Suggestions: svc, Logger: logger}
}

func draftSessionKey(id string) string { return "draft-batch:" + id }

func draftSessionTTL() time.Duration {
	return time.Duration(config.AppConfig.DraftSessionTTLMin) * time.Minute
}

// buildDraft validates a spec and computes its derived fields.
func (h *BatchHandler) buildDraft(spec models.BatchSpec) (*models.DraftBatchSession, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	total := h.Catalog.TotalSessions(spec.CurriculumIDs)
	projected, err := schedule.ProjectEndDate(spec.Range.Start, total, spec.Schedule)
	if err != nil {
		return nil, err
	}
	return &models.DraftBatchSession{
		Spec:             spec,
		TotalSessions:    total,
		ProjectedEndDate: projected,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// CreateDraftSession starts a new draft batch session.
func (h *BatchHandler) CreateDraftSession(c *gin.Context) {
	var spec models.BatchSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid batch spec", err.Error())
		return
	}

	draft, err := h.buildDraft(spec)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid batch spec", err.Error())
		return
	}
	draft.SessionID = uuid.New().String()

	data, err := json.Marshal(draft)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to marshal draft session", err.Error())
		return
	}
	if err := h.Cache.Set(c.Request.Context(), draftSessionKey(draft.SessionID), data, draftSessionTTL()).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cache draft session", err.Error())
		return
	}

	h.Logger.Info("draft batch session created",
		zap.String("sessionID", draft.SessionID),
		zap.Int("totalSessions", draft.TotalSessions))
	c.JSON(http.StatusCreated, draft)
}

// UpdateDraftSession replaces the spec of an existing draft and re-projects.
func (h *BatchHandler) UpdateDraftSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	existing, ok := h.loadDraft(c, sessionID)
	if !ok {
		return
	}

	var spec models.BatchSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid batch spec", err.Error())
		return
	}
	draft, err := h.buildDraft(spec)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid batch spec", err.Error())
		return
	}
	draft.SessionID = existing.SessionID
	draft.CreatedAt = existing.CreatedAt

	data, err := json.Marshal(draft)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to marshal draft session", err.Error())
		return
	}
	if err := h.Cache.Set(c.Request.Context(), draftSessionKey(sessionID), data, draftSessionTTL()).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cache draft session", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DraftSuggestions runs the suggestion engine against a cached draft.
func (h *BatchHandler) DraftSuggestions(c *gin.Context) {
	sessionID := c.Param("sessionID")

	draft, ok := h.loadDraft(c, sessionID)
	if !ok {
		return
	}

	report, err := h.Suggestions.Suggest(c.Request.Context(), draft.Spec, suggestion.Options{
		Statuses: statusFilter(c),
	})
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

// ProjectEndDateRequest is the payload of the stateless projection helper.
// TotalSessions wins when set; otherwise the curriculum identifiers are
// resolved through the catalog.
type ProjectEndDateRequest struct {
	Start         models.Date           `json:"start" binding:"required"`
	TotalSessions *int                  `json:"totalSessions"`
	CurriculumIDs []string              `json:"curriculumIds"`
	Schedule      models.WeeklySchedule `json:"schedule"`
}

// ProjectEndDate projects a course end date without a draft session.
func (h *BatchHandler) ProjectEndDate(c *gin.Context) {
	var req ProjectEndDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid projection request", err.Error())
		return
	}

	total := 0
	if req.TotalSessions != nil {
		total = *req.TotalSessions
	} else {
		total = h.Catalog.TotalSessions(req.CurriculumIDs)
	}

	projected, err := schedule.ProjectEndDate(req.Start, total, req.Schedule)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "projection failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start":            req.Start,
		"totalSessions":    total,
		"projectedEndDate": projected,
	})
}

// loadDraft fetches and decodes a cached draft, writing the error response
// itself when the session is missing or corrupt.
func (h *BatchHandler) loadDraft(c *gin.Context, sessionID string) (*models.DraftBatchSession, bool) {
	data, err := h.Cache.Get(c.Request.Context(), draftSessionKey(sessionID)).Result()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "draft session not found or expired", sessionID)
		return nil, false
	}
	var draft models.DraftBatchSession
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to parse draft session", err.Error())
		return nil, false
	}
	return &draft, true
}
