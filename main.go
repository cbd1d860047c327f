package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tshikamisava/nanny-gold-sub003/config"
	"github.com/Tshikamisava/nanny-gold-sub003/cron"
	"github.com/Tshikamisava/nanny-gold-sub003/database"
	"github.com/Tshikamisava/nanny-gold-sub003/database/repository"
	"github.com/Tshikamisava/nanny-gold-sub003/handlers"
	"github.com/Tshikamisava/nanny-gold-sub003/middleware"
	"github.com/Tshikamisava/nanny-gold-sub003/routes"
	"github.com/Tshikamisava/nanny-gold-sub003/services/booking"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
	"github.com/Tshikamisava/nanny-gold-sub003/services/revenue"
	"github.com/Tshikamisava/nanny-gold-sub003/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	revenueRepo := repository.NewMongoRevenueRepo()
	modificationRepo := repository.NewMongoModificationRepo()

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"bookings":      bookingRepo,
		"revenue":       revenueRepo,
		"modifications": modificationRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Authoritative pricing/revenue functions are optional; when unset the
	// engine falls back to local rates and flags results as estimated.
	var quoteClient pricing.QuoteClient
	if config.AppConfig.PricingFunctionURL != "" {
		quoteClient = pricing.NewQuoteClient(config.AppConfig.PricingFunctionURL, config.AppConfig.FunctionAPIKey)
	}
	var splitClient revenue.SplitClient
	if config.AppConfig.RevenueFunctionURL != "" {
		splitClient = revenue.NewSplitClient(config.AppConfig.RevenueFunctionURL, config.AppConfig.FunctionAPIKey)
	}

	// services.
	pricingEngine := pricing.NewEngine(quoteClient, utils.GetCacheClient(), logger)
	revenueService := revenue.NewRevenueService(revenueRepo, splitClient, logger)
	bookingService := &booking.DefaultBookingService{
		Engine:           pricingEngine,
		Revenue:          revenueService,
		BookingRepo:      bookingRepo,
		ModificationRepo: modificationRepo,
		Logger:           logger,
	}

	pricingHandler := handlers.NewPricingHandler(bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	modificationHandler := handlers.NewModificationHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PreviewPricing:   pricingHandler.PreviewPricing,
		ProrationPreview: pricingHandler.ProrationPreview,

		CreateBooking:       bookingHandler.CreateBooking,
		GetBooking:          bookingHandler.GetBooking,
		ListUserBookings:    bookingHandler.ListUserBookings,
		GetRevenueBreakdown: bookingHandler.GetRevenueBreakdown,

		RequestModification: modificationHandler.RequestModification,
		ReviewModification:  modificationHandler.ReviewModification,
		ListModifications:   modificationHandler.ListModifications,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitBillingWorker()
	cron.StartBillingScheduler(bookingRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetQueueClient(), database.MongoClient)

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
