package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/handlers"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/middleware"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/repositories"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/services"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/config"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/database"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/logger"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/random"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize the address database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	rng := random.NewSource()

	// Initialize dependencies
	personNameRepo, err := repositories.NewPersonNameRepository(config.AppConfig.Corpus.PersonNamesFile, rng)
	if err != nil {
		logger.Fatalf("Failed to load person name corpus: %v", err)
	}
	postalCodeRepo := repositories.NewPostalCodeRepository(database.DB, rng)
	personService := services.NewPersonService(personNameRepo, postalCodeRepo, rng)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	setupRoutes(router, personService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, personService *services.PersonService) {
	// Initialize handlers
	personHandler := handlers.NewPersonHandler(personService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// The root is not a valid endpoint
	router.GET("/", notFoundHandler.NotFound)

	// Person data routes
	router.GET("/cpr", personHandler.GetCPR)
	router.GET("/name-gender", personHandler.GetNameGender)
	router.GET("/name-gender-dob", personHandler.GetNameGenderDOB)
	router.GET("/cpr-name-gender", personHandler.GetCPRNameGender)
	router.GET("/cpr-name-gender-dob", personHandler.GetCPRNameGenderDOB)
	router.GET("/address", personHandler.GetAddress)
	router.GET("/phone", personHandler.GetPhone)
	router.GET("/person", personHandler.GetPerson)

	// Operational endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(notFoundHandler.NotFound)
}
