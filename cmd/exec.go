package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"munasabat-backend/config"
	"munasabat-backend/internal/handlers"
	"munasabat-backend/internal/services"
	"munasabat-backend/internal/services/credentials"
	"munasabat-backend/internal/storage"
	"munasabat-backend/monitoring"
	"munasabat-backend/security"
	"munasabat-backend/utils"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize storage
	var kv storage.KV
	var redisClient *redis.Client
	switch cfg.StorageBackend {
	case "memory":
		kv = storage.NewMemoryKV()
		slog.Info("using in-memory storage backend")
	default:
		redisClient = utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		defer redisClient.Close()
		kv = storage.NewRedisKV(redisClient)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storage.NewStore(kv)
	if err := store.EnsureInitialized(ctx); err != nil {
		return err
	}

	// Initialize services
	vendorService := services.NewVendorService(store)
	eventService := services.NewEventService(store)
	dressService := services.NewDressService(store)
	bundleService := services.NewBundleService(store)
	reviewService := services.NewReviewService(store)
	notificationService := services.NewNotificationService(store)
	adminService := services.NewAdminService(store)

	backend, err := credentials.NewBackend(cfg)
	if err != nil {
		return err
	}
	limiter := security.NewLoginLimiter(kv, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)
	authService := services.NewAuthService(store, backend, limiter, cfg.AdminEmail)

	// Initialize handlers
	vendorHandler := handlers.NewVendorHandler(app, vendorService)
	eventHandler := handlers.NewEventHandler(app, eventService)
	catalogHandler := handlers.NewCatalogHandler(app, dressService, bundleService)
	reviewHandler := handlers.NewReviewHandler(app, reviewService)
	notificationHandler := handlers.NewNotificationHandler(app, notificationService)
	bookingHandler := handlers.NewBookingHandler(app, notificationService)
	authHandler := handlers.NewAuthHandler(app, authService)
	adminHandler := handlers.NewAdminHandler(app, adminService, authService)

	// Start background tasks
	if cfg.EnableMetrics {
		monitor := monitoring.NewMonitor(vendorService, eventService, dressService, bundleService, cfg.DashboardPollInterval)
		go monitor.Run(ctx)
		go serveMetrics(cfg.MetricsPort)
	}

	// Setup graceful shutdown
	go handleShutdown(cancel)

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Vendor endpoints
		e.Router.GET("/api/vendors", vendorHandler.GetVendors)
		e.Router.GET("/api/vendors/{id}", vendorHandler.GetVendor)
		e.Router.GET("/api/suggestions", vendorHandler.GetSuggestions)

		// Event endpoints
		e.Router.GET("/api/events", eventHandler.GetEvents)
		e.Router.GET("/api/events/{id}", eventHandler.GetEvent)
		e.Router.POST("/api/events", eventHandler.CreateEvent)
		e.Router.PUT("/api/events/{id}", eventHandler.SaveEvent)
		e.Router.POST("/api/events/{id}/rsvp", eventHandler.AddRSVP)
		e.Router.GET("/api/events/{id}/summary", eventHandler.GetSummary)

		// Catalog endpoints
		e.Router.GET("/api/dresses", catalogHandler.GetDresses)
		e.Router.GET("/api/dresses/{id}", catalogHandler.GetDress)
		e.Router.GET("/api/bundles", catalogHandler.GetBundles)
		e.Router.GET("/api/bundles/{id}", catalogHandler.GetBundle)

		// Reviews
		e.Router.POST("/api/reviews", reviewHandler.AddReview)

		// Bookings
		e.Router.POST("/api/bookings", bookingHandler.CreateBooking)

		// Notification endpoints
		e.Router.GET("/api/notifications", notificationHandler.GetNotifications)
		e.Router.GET("/api/notifications/unread-count", notificationHandler.GetUnreadCount)
		e.Router.POST("/api/notifications", notificationHandler.AddNotification)
		e.Router.POST("/api/notifications/{id}/read", notificationHandler.MarkAsRead)
		e.Router.POST("/api/notifications/read-all", notificationHandler.MarkAllAsRead)
		e.Router.DELETE("/api/notifications/{id}", notificationHandler.DeleteNotification)
		e.Router.GET("/api/notifications/settings", notificationHandler.GetSettings)
		e.Router.PUT("/api/notifications/settings", notificationHandler.SaveSettings)

		// Auth endpoints
		e.Router.POST("/api/auth/login", authHandler.Login)
		e.Router.POST("/api/auth/logout", authHandler.Logout)
		e.Router.GET("/api/auth/me", authHandler.Me)

		// Admin endpoints
		e.Router.GET("/api/admin/stats", adminHandler.GetStats)
		e.Router.GET("/api/admin/settings", adminHandler.GetSettings)
		e.Router.PUT("/api/admin/settings", adminHandler.SaveSettings)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if redisClient != nil {
				if err := utils.RedisHealthCheck(redisClient); err != nil {
					return e.JSON(503, map[string]string{
						"status": "unhealthy",
						"error":  err.Error(),
					})
				}
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	return nil
}

func serveMetrics(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		slog.Error("metrics server stopped", "error", err)
	}
}

func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down, stopping background tasks")
	cancel()
}
