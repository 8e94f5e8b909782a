package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookie/config"
	"bookie/cron"
	"bookie/database"
	bookingRepo "bookie/database/repository/booking"
	roomRepo "bookie/database/repository/room"
	"bookie/handlers"
	"bookie/middleware"
	"bookie/routes"
	"bookie/services/booking"
	"bookie/services/selection"
	"bookie/services/slots"
	"bookie/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	loc, err := config.AppConfig.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	engine, err := slots.NewEngine(config.AppConfig.SlotInterval, loc)
	if err != nil {
		var cfgErr *slots.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Fatal("main: broken slot configuration", zap.Float64("interval", cfgErr.Interval), zap.String("reason", cfgErr.Reason))
		}
		logger.Sugar().Fatalf("main: failed to build slot engine: %v", err)
	}
	logger.Info("Slot engine ready",
		zap.Float64("interval", engine.Interval()),
		zap.Int("slotsPerDay", engine.Grid().Len()),
		zap.String("timezone", loc.String()))

	database.InitDB()
	sessionCache := utils.GetSessionCacheClient()

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	rooms := roomRepo.NewMongoRoomRepo()
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	if err := bookings.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := rooms.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	cancelIndexes()

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings: bookings,
		Rooms:    rooms,
		Engine:   engine,
	}
	selectionService := &selection.DefaultSelectionService{
		Store:    selection.NewRedisSessionStore(sessionCache, config.AppConfig.SelectionTTL),
		Bookings: bookingService,
		Engine:   engine,
	}

	stopPurge, err := cron.InitPurgeWorker(bookings)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, []*redis.Client{sessionCache}, database.MongoClient)

	bookingHandler := handlers.NewBookingHandler(bookingService, loc)
	selectionHandler := handlers.NewSelectionHandler(selectionService, loc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HealthHandler: handlers.HealthHandler,

		// Room endpoints.
		GetRoomsHandler:        bookingHandler.GetRoomsHandler,
		GetRoomHandler:         bookingHandler.GetRoomHandler,
		GetAvailabilityHandler: bookingHandler.GetAvailabilityHandler,

		// Booking endpoints.
		GetBookingsHandler:     bookingHandler.GetBookingsHandler,
		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		DeleteBookingsHandler:  bookingHandler.DeleteBookingsHandler,
		GetBookingHandler:      bookingHandler.GetBookingHandler,
		UpdateBookingHandler:   bookingHandler.UpdateBookingHandler,
		DeleteBookingHandler:   bookingHandler.DeleteBookingHandler,
		GetUserBookingsHandler: bookingHandler.GetUserBookingsHandler,

		// Selection endpoints.
		StartSelectionHandler:  selectionHandler.StartSelectionHandler,
		GetSelectionHandler:    selectionHandler.GetSelectionHandler,
		ClickSlotHandler:       selectionHandler.ClickSlotHandler,
		ClearSelectionHandler:  selectionHandler.ClearSelectionHandler,
		ChangeDateHandler:      selectionHandler.ChangeDateHandler,
		SubmitSelectionHandler: selectionHandler.SubmitSelectionHandler,
		CancelSelectionHandler: selectionHandler.CancelSelectionHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.Origins())

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
	stopPurge()
	stopMonitor()
	if err := sessionCache.Close(); err != nil {
		logger.Warn("main: failed to close redis", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
