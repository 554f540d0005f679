// File: schedula/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"schedula/config"
	"schedula/cron"
	"schedula/database"
	bookingRepo "schedula/database/repository/booking"
	conversationRepo "schedula/database/repository/conversation"
	"schedula/handlers"
	"schedula/routes"
	"schedula/services/assistant"
	"schedula/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	convRepo := conversationRepo.NewMongoConversationRepo()

	// services.
	availability := assistant.NewAvailabilityEngine(bkRepo)
	availability.WorkingStartHour = config.AppConfig.WorkingStartHour
	availability.WorkingEndHour = config.AppConfig.WorkingEndHour
	availability.SlotDurationHours = config.AppConfig.SlotDurationHours

	extractor := assistant.NewExtractor()
	executor := assistant.NewExecutor(bkRepo, availability, logger)
	ctxStore := assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	assistantSvc := assistant.NewAssistantService(extractor, executor, ctxStore, convRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler: handlers.ChatHandler(assistantSvc),

		ListBookingsHandler:  handlers.ListBookingsHandler(bkRepo),
		CreateBookingHandler: handlers.CreateBookingHandler(bkRepo),
		UpdateBookingHandler: handlers.UpdateBookingHandler(bkRepo),
		DeleteBookingHandler: handlers.DeleteBookingHandler(bkRepo),
	}

	routes.SetupRoutes(router, handlerBundle)

	// Background transcript cleanup.
	retention := cron.InitRetentionWorker(convRepo)
	defer retention.Stop()

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
