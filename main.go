// File: academis/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"academis/config"
	"academis/cron"
	"academis/database"
	billingRepo "academis/database/repository/billing"
	enrollmentRepo "academis/database/repository/enrollment"
	facultyRepo "academis/database/repository/faculty"
	orientationRepo "academis/database/repository/orientation"
	studentRepo "academis/database/repository/student"
	"academis/handlers"
	"academis/middleware"
	"academis/routes"
	"academis/services/availability"
	"academis/services/catalog"
	"academis/services/suggestion"
	"academis/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	students := studentRepo.NewMongoStudentRepo()
	enrollments := enrollmentRepo.NewMongoEnrollmentRepo()
	billing := billingRepo.NewMongoBillingRepo()
	orientation := orientationRepo.NewMongoOrientationRepo()
	faculty := facultyRepo.NewMongoFacultyRepo()

	// services.
	curriculumCatalog := catalog.New(config.CurriculumItems())

	suggestionService := &suggestion.DefaultSuggestionService{
		Students:    students,
		Enrollments: enrollments,
		Billing:     billing,
		Orientation: orientation,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo: faculty,
	}

	batchHandler := handlers.NewBatchHandler(utils.GetSessionCacheClient(), curriculumCatalog, suggestionService, logger)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	catalogHandler := handlers.NewCatalogHandler(curriculumCatalog, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateDraftSession: batchHandler.CreateDraftSession,
		UpdateDraftSession: batchHandler.UpdateDraftSession,
		DraftSuggestions:   batchHandler.DraftSuggestions,
		ProjectEndDate:     batchHandler.ProjectEndDate,

		SuggestCandidates:        suggestionHandler.SuggestCandidates,
		CheckFacultyAvailability: availabilityHandler.CheckFacultyAvailability,

		ListCurriculum: catalogHandler.ListCurriculum,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)
	summaryWorker := cron.StartFacultySummaryWorker(faculty, enrollments, utils.GetCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	summaryWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
