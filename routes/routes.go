package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"academis/handlers"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBatchRoutes(r, hb)
	RegisterFacultyRoutes(r, hb)

	r.GET("/api/catalog", hb.ListCurriculum)
	r.GET("/healthz", handlers.HealthHandler)
}

// RegisterBatchRoutes registers the draft-batch and suggestion endpoints.
func RegisterBatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/batches")
	{
		api.POST("/draft", hb.CreateDraftSession)
		api.PUT("/draft/:sessionID", hb.UpdateDraftSession)
		api.GET("/draft/:sessionID/suggestions", hb.DraftSuggestions)
		api.POST("/suggestions", hb.SuggestCandidates)
		api.POST("/project-end-date", hb.ProjectEndDate)
	}
}

// RegisterFacultyRoutes registers faculty scheduling endpoints.
func RegisterFacultyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/faculty")
	{
		api.POST("/availability", hb.CheckFacultyAvailability)
	}
}
