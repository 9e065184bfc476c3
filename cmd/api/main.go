package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sgaglani/ethiscan/internal/application"
	appanalysis "github.com/sgaglani/ethiscan/internal/application/analysis"
	"github.com/sgaglani/ethiscan/internal/config"
	domain "github.com/sgaglani/ethiscan/internal/domain/analysis"
	"github.com/sgaglani/ethiscan/internal/infra/ai/groq"
	"github.com/sgaglani/ethiscan/internal/infra/browser"
	mongop "github.com/sgaglani/ethiscan/internal/infra/db/mongo"
	"github.com/sgaglani/ethiscan/internal/infra/httpserver"
	minioStore "github.com/sgaglani/ethiscan/internal/infra/storage"
	"github.com/sgaglani/ethiscan/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect MongoDB
	client, err := mongop.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	// init repo
	repo := mongop.NewReportRepository(client, cfg.Mongo.Database, cfg.Mongo.Collection)

	// init artifact store (optional)
	var artifacts domain.ArtifactStore
	if cfg.Storage.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
			cfg.Storage.BucketName,
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		artifacts = store
	}

	// init extractor
	extractor := browser.New(cfg.SettleDelay(), cfg.Browser.UserAgent, cfg.Browser.ExecPath)

	// init analyzer client
	analyzer := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.BaseURL, cfg.Groq.Model, cfg.Groq.MaxTextChars)

	// init service
	svc := &appanalysis.Service{
		Extractor: extractor,
		Analyzer:  analyzer,
		Reports:   repo,
		Artifacts: artifacts,
		Clock:     application.SystemClock{},
	}

	// init router
	health := middleware.HealthHandler(map[string]middleware.HealthChecker{
		"mongodb": &middleware.MongoHealthChecker{Client: client},
	})
	mux := httpserver.NewRouter(svc, health, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
		// no write timeout: a slow page render plus the completion call can
		// legitimately take well over a minute
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
