package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"conftrack/config"
	authAdapter "conftrack/internal/adapters/auth"
	"conftrack/internal/adapters/blob"
	"conftrack/internal/adapters/email"
	"conftrack/internal/adapters/snapshot"
	httpDelivery "conftrack/internal/delivery/http"
	"conftrack/internal/delivery/http/controllers"
	"conftrack/internal/delivery/http/middleware"
	"conftrack/internal/domain"
	"conftrack/internal/metrics"
	"conftrack/internal/repository/postgres"
	"conftrack/internal/services"
	"conftrack/internal/store"

	_ "conftrack/api/swagger" // swagger docs
)

// @title           Conference Deadline Tracker API
// @version         1.0
// @description     Tracks conference submission deadlines with tiered snapshot persistence.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from POST /auth/login.

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	blobStore, closeDB, err := initBlobStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize blob store", "err", err)
		os.Exit(1)
	}
	defer closeDB()

	var fetcher domain.SnapshotFetcher
	if cfg.RemoteSnapshotURL != "" {
		fetcher = snapshot.NewHTTPFetcher(&http.Client{Timeout: 10 * time.Second}, cfg.RemoteSnapshotURL, logger)
	} else {
		logger.Info("remote snapshot tier disabled")
	}

	loader := services.NewSnapshotLoader(fetcher, blobStore, logger)
	st := store.New(loader, logger)
	tracker := services.NewTrackerService(st, loader, logger)
	m := metrics.New()

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	source, count, err := tracker.Load(loadCtx)
	cancel()
	if err != nil {
		logger.Error("initial data load failed", "err", err)
		os.Exit(1)
	}
	m.RecordSnapshotLoad(string(source), count)
	logger.Info("data loaded", "source", source, "records", count)

	verifier, authSvc := initAuth(cfg, logger)

	stopReminders, err := initReminders(cfg, st, logger)
	if err != nil {
		logger.Error("failed to start reminder schedule", "err", err)
		os.Exit(1)
	}
	defer stopReminders()

	ctrl := httpDelivery.Controllers{
		Conferences: controllers.NewConferenceController(logger, tracker),
		Filters:     controllers.NewFilterController(logger, tracker),
		Data:        controllers.NewDataController(logger, tracker, m),
		Auth:        controllers.NewAuthController(logger, authSvc),
	}
	mux := httpDelivery.NewRouter(ctrl, middleware.RequireAuth(verifier, logger), m)

	var handler http.Handler = middleware.MetricsMiddleware(m, mux)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

// initBlobStore picks the local persistence tier: Postgres when DATABASE_URL
// is set, the snapshot file otherwise.
func initBlobStore(cfg *config.Config, logger *slog.Logger) (domain.BlobStore, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using file blob store", "path", cfg.SnapshotFile)
		return blob.NewFileStore(cfg.SnapshotFile), func() {}, nil
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("using postgres blob store")
	return postgres.NewSnapshotRepository(db), func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}, nil
}

// initAuth builds the owner login service. With auth unconfigured the write
// endpoints run open and login always fails.
func initAuth(cfg *config.Config, logger *slog.Logger) (domain.TokenVerifier, domain.AuthService) {
	if !cfg.AuthEnabled() {
		logger.Warn("owner auth not configured, write endpoints are open")
		return nil, services.NewAuthService(authAdapter.NewBcryptHasher(bcrypt.DefaultCost), nil, "", 0)
	}
	hasher := authAdapter.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := authAdapter.NewJWTTokens(cfg.JWTSecret)
	return tokens, services.NewAuthService(hasher, tokens, cfg.PassphraseHash, cfg.TokenExpiry)
}

// initReminders schedules the deadline digest if a cron expression and a
// recipient are configured. The returned func stops the scheduler.
func initReminders(cfg *config.Config, st *store.Store, logger *slog.Logger) (func(), error) {
	if cfg.ReminderCron == "" || cfg.ReminderEmail == "" {
		logger.Info("reminder digest disabled")
		return func() {}, nil
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	reminder := services.NewReminderService(st, mailer, cfg.ReminderEmail, logger)

	c := cron.New()
	if _, err := c.AddFunc(cfg.ReminderCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		sent, err := reminder.SendDigest(ctx)
		if err != nil {
			logger.Error("reminder digest failed", "err", err)
			return
		}
		logger.Info("reminder digest done", "deadlines", sent)
	}); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("reminder digest scheduled", "cron", cfg.ReminderCron, "recipient", cfg.ReminderEmail)
	return func() { c.Stop() }, nil
}
