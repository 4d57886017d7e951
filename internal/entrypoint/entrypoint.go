// Package entrypoint wires the service together and runs the HTTP server.
package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hadithdb/hadith-api/internal/auth"
	"github.com/hadithdb/hadith-api/internal/config"
	"github.com/hadithdb/hadith-api/internal/database"
	"github.com/hadithdb/hadith-api/internal/database/hadiths"
	http_controllers "github.com/hadithdb/hadith-api/internal/http"
	"github.com/hadithdb/hadith-api/internal/scheduler"
	"github.com/hadithdb/hadith-api/internal/search"
	"github.com/hadithdb/hadith-api/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run builds every service from configuration and serves the API.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Hadith API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	hadithsRepo := hadiths.NewRepository(db.DB)

	// The API degrades without the search engine: catalogue endpoints keep
	// working, search and verification report unavailability.
	searchService := search.NewService(cfg.Meilisearch)
	if !searchService.Connect() {
		log.Printf("WARNING: Meilisearch unavailable at %s. Search endpoints will return 503 until it comes back.",
			cfg.Meilisearch.URL)
	}
	verifier := search.NewVerifier(searchService, hadithsRepo)

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewReindexSearchQueue(searchService, hadithsRepo),
			tasks.NewClassifyChaptersQueue(db.DB),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	var reindexScheduler *scheduler.ReindexScheduler
	if taskClient != nil && cfg.Scheduler.ReindexEnabled {
		reindexScheduler = scheduler.NewReindexScheduler(taskClient, cfg.Scheduler)
		if err := reindexScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start reindex scheduler: %v", err)
		}
	}

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = generateSecret()
		log.Printf("Generated JWT secret (set JWT_SECRET_KEY to persist sessions across restarts)")
	}
	tokenManager := auth.NewTokenManager(jwtSecret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(db.DB, tokenManager, cfg.Auth.BcryptCost)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		Searcher:    searchService,
		Verifier:    verifier,
		AuthService: authService,
		TaskClient:  taskClient,
		Version:     version,
	})

	onShutdown := func(ctx context.Context) {
		if reindexScheduler != nil {
			reindexScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

func generateSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
