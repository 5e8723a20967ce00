package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"album-service/configs"
	"album-service/controllers"
	"album-service/middleware"
	"album-service/notify"
	"album-service/realtime"
	"album-service/routes"
	"album-service/storage"
	"album-service/store"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	configs.InitLogger()
	logger := configs.LogWithContext("album-service", "startup")

	logger.Info("Starting album service initialization")

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)

	if err := initializeBackends(logger); err != nil {
		logger.WithError(err).Fatal("Failed to initialize backends")
		return
	}

	mongoStore := store.NewMongo(configs.DB, configs.MongoDatabaseName())

	catalog, err := store.NewPackageCatalog(configs.GetPGDB())
	if err != nil {
		logger.WithError(err).Fatal("Failed to prepare package catalog")
		return
	}
	if err := catalog.SeedDefaults(); err != nil {
		logger.WithError(err).Warn("Failed to seed default packages")
	}

	gateway := storage.NewS3Gateway(
		configs.GetS3Client(),
		configs.GetS3Uploader(),
		configs.EnvMediaBucket(),
		configs.EnvAWSRegion(),
	)

	hub := realtime.NewHub(configs.LogWithContext("album-service", "realtime"))
	go hub.Run()

	notifier := notify.NewNotifier(
		configs.GetRedisClient(),
		configs.EnvNotificationChannel(),
		configs.LogWithContext("album-service", "notify"),
	)

	secret := []byte(configs.EnvJWTSecret())
	auth := middleware.NewAuthenticator(mongoStore, secret, configs.LogWithContext("album-service", "auth"))

	registerRoutes(router, auth, mongoStore, catalog, gateway, hub, notifier, secret, logger)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := configs.DB.Ping(ctx, nil); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, "Not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ready")
	}).Methods("GET")

	port := configs.EnvPort()

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", port).Info("Album service started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Server shutdown complete")
	}
}

func initializeBackends(logger *logrus.Entry) error {
	start := time.Now()
	if err := connectMongoDB(); err != nil {
		return fmt.Errorf("mongodb connection failed: %w", err)
	}
	logger.WithField("duration", time.Since(start)).Info("MongoDB connected")

	start = time.Now()
	if err := configs.ConnectPSQLDatabase(); err != nil {
		return fmt.Errorf("postgresql connection failed: %w", err)
	}
	logger.WithField("duration", time.Since(start)).Info("PostgreSQL connected")

	// Redis only carries activity notifications; the service runs without it.
	if configs.EnvRedisURL() != "" {
		if err := configs.ConnectREDISDB(); err != nil {
			logger.WithError(err).Warn("Redis connection failed, activity notifications disabled")
		} else {
			logger.Info("Redis connected")
		}
	} else {
		logger.Info("REDIS_URL not set, activity notifications disabled")
	}

	start = time.Now()
	if err := configs.ConnectAWS(); err != nil {
		return fmt.Errorf("aws connection failed: %w", err)
	}
	logger.WithField("duration", time.Since(start)).Info("AWS S3 client ready")

	return nil
}

func connectMongoDB() error {
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		err := configs.ConnectDB()
		if err == nil {
			return nil
		}
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * time.Second)
		} else {
			return err
		}
	}
	return fmt.Errorf("failed to connect after %d retries", maxRetries)
}

func registerRoutes(
	router *mux.Router,
	auth *middleware.Authenticator,
	mongoStore *store.Mongo,
	catalog *store.PackageCatalog,
	gateway storage.Gateway,
	hub *realtime.Hub,
	notifier *notify.Notifier,
	secret []byte,
	logger *logrus.Entry,
) {
	authCtrl := controllers.NewAuthController(mongoStore, secret, configs.LogWithContext("album-service", "auth"))
	mediaCtrl := controllers.NewMediaController(mongoStore, mongoStore, gateway, hub, notifier, configs.LogWithContext("album-service", "media"))
	likesCtrl := controllers.NewLikesController(mongoStore, hub, configs.LogWithContext("album-service", "likes"))
	settingsCtrl := controllers.NewSettingsController(mongoStore, hub, configs.LogWithContext("album-service", "settings"))
	challengesCtrl := controllers.NewChallengesController(mongoStore, mongoStore, hub, configs.LogWithContext("album-service", "challenges"))
	commentsCtrl := controllers.NewCommentsController(mongoStore, mongoStore, mongoStore, hub, configs.LogWithContext("album-service", "comments"))
	userCtrl := controllers.NewUserController(mongoStore, configs.LogWithContext("album-service", "user"))
	profileCtrl := controllers.NewProfileController(mongoStore, gateway, configs.LogWithContext("album-service", "profile"))
	packagesCtrl := controllers.NewPackagesController(catalog, mongoStore, configs.LogWithContext("album-service", "packages"))
	wsCtrl := controllers.NewWSController(hub, configs.LogWithContext("album-service", "ws"))

	routes.AuthRoutes(router, authCtrl)
	routes.MediaRoutes(router, auth, mediaCtrl)
	routes.LikeRoutes(router, likesCtrl)
	routes.SettingsRoutes(router, auth, settingsCtrl)
	routes.ChallengeRoutes(router, auth, challengesCtrl)
	routes.CommentRoutes(router, auth, commentsCtrl)
	routes.UserRoutes(router, userCtrl)
	routes.ProfileRoutes(router, auth, profileCtrl)
	routes.PackageRoutes(router, auth, packagesCtrl)
	routes.WSRoutes(router, auth, wsCtrl)

	logger.Info("API routes registered")
}
