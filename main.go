package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ainfakroun/config"
	"ainfakroun/database"
	businessRepo "ainfakroun/database/repository/business"
	emergencyRepo "ainfakroun/database/repository/emergency"
	eventRepo "ainfakroun/database/repository/event"
	medicalRepo "ainfakroun/database/repository/medical"
	mosqueRepo "ainfakroun/database/repository/mosque"
	userRepoPkg "ainfakroun/database/repository/user"
	"ainfakroun/handlers"
	"ainfakroun/middleware"
	"ainfakroun/routes"
	"ainfakroun/services/auth"
	"ainfakroun/services/directory"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	busRepo := businessRepo.NewMongoBusinessRepo()
	evtRepo := eventRepo.NewMongoEventRepo()
	mosRepo := mosqueRepo.NewMongoMosqueRepo()
	medRepo := medicalRepo.NewMongoMedicalRepo()
	emgRepo := emergencyRepo.NewMongoEmergencyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for name, r := range map[string]interface{ EnsureIndexes() error }{
		"businesses":        busRepo,
		"events":            evtRepo,
		"mosques":           mosRepo,
		"medicals":          medRepo,
		"emergencycontacts": emgRepo,
		"users":             userRepo,
	} {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes for %s: %v", name, err)
		}
	}

	// services.
	authService := &auth.DefaultAuthService{Repo: userRepo}
	businessService := &directory.DefaultBusinessService{Repo: busRepo}
	eventService := &directory.DefaultEventService{Repo: evtRepo}
	mosqueService := &directory.DefaultMosqueService{Repo: mosRepo}
	medicalService := &directory.DefaultMedicalService{Repo: medRepo}
	emergencyService := &directory.DefaultEmergencyService{Repo: emgRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService),
		Admin:     handlers.NewAdminHandler(userRepo),
		Business:  handlers.NewBusinessHandler(businessService),
		Event:     handlers.NewEventHandler(eventService),
		Mosque:    handlers.NewMosqueHandler(mosqueService),
		Medical:   handlers.NewMedicalHandler(medicalService),
		Emergency: handlers.NewEmergencyHandler(emergencyService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
