package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"academis/models"
	"academis/services/availability"
)

type stubAvailabilityService struct {
	results []models.FacultyAvailability
	err     error
}

func (s *stubAvailabilityService) Check(ctx context.Context, facultyIDs []string, rng models.DateRange, ws models.WeeklySchedule) ([]models.FacultyAvailability, error) {
	return s.results, s.err
}

func availabilityRouter(svc availability.AvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc, zap.NewNop())
	r.POST("/api/faculty/availability", h.CheckFacultyAvailability)
	return r
}

func TestCheckFacultyAvailabilityOK(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{
		results: []models.FacultyAvailability{{FacultyID: "F1", IsAvailable: true}},
	})

	body := `{
		"facultyIds": ["F1"],
		"range": {"start": "2025-02-01", "end": "2025-04-30"},
		"schedule": {"monday": {"start": "09:00", "end": "11:00"}}
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/faculty/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAvailable":true`)
}

func TestCheckFacultyAvailabilityRejectsEmptyFaculty(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{})

	body := `{"facultyIds": [], "range": {"start": "2025-02-01", "end": "2025-04-30"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/faculty/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckFacultyAvailabilityUpstreamDown(t *testing.T) {
	router := availabilityRouter(&stubAvailabilityService{
		err: &availability.UpstreamError{Source: "faculty registry", Err: errors.New("down")},
	})

	body := `{"facultyIds": ["F1"], "range": {"start": "2025-02-01", "end": "2025-04-30"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/faculty/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
