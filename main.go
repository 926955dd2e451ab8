package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/config"
	"wayfare/cron"
	"wayfare/handlers"
	"wayfare/middleware"
	"wayfare/routes"
	"wayfare/services/geo"
	"wayfare/services/intelligence"
	"wayfare/services/itinerary"
	"wayfare/services/media"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient())

	// Gemini backs drafting, refinement, and the classification oracle.
	gemini, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	geocoder, err := geo.NewGeocoder(
		config.AppConfig.GeocoderProvider,
		config.AppConfig.AmapAPIKey,
		config.AppConfig.GoogleAPIKey,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize geocoder: %v", err)
	}

	cache := itinerary.NewRedisItineraryCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.ItineraryCacheTTLMin)*time.Minute,
	)

	itinerarySvc := itinerary.NewItineraryService(
		intelligence.NewGeminiDrafter(gemini),
		geocoder,
		intelligence.NewGeminiRefiner(gemini),
		intelligence.NewGeminiClassifier(gemini),
		cache,
		config.HasImageryCredential(),
	)

	// Media fulfilment is optional: no imagery key, no worker.
	var mediaQueue *asynq.Client
	if config.HasImageryCredential() {
		fetcher := &media.Fetcher{
			Street: media.NewGoogleStreetView(config.AppConfig.GoogleAPIKey),
			Photos: media.NewGooglePlacePhotos(config.AppConfig.GoogleAPIKey),
		}
		if mirror, err := media.NewCloudinaryMirror(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		); err != nil {
			logger.Sugar().Warnf("main: cloudinary mirror disabled: %v", err)
		} else {
			fetcher.Mirror = mirror
		}

		cron.InitMediaWorker(fetcher)
		mediaQueue = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisMediaQueueDB,
		})
	}

	itineraryHandler := handlers.NewItineraryHandler(itinerarySvc, mediaQueue)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, itineraryHandler)

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
