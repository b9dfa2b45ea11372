package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/render"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/worker"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("🚀 Starting portfolio backend...", "env", cfg.Env)

	// ──── Step 2: Load Content Catalogue ────
	var contentFS fs.FS = content.FS()
	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
	}
	repo, err := repository.NewContentRepo(contentFS, log)
	if err != nil {
		log.Fatal("✗ Content catalogue failed to load", "error", err, "content_dir", cfg.ContentDir)
	}
	log.Info("✓ Content catalogue loaded", "courses", len(repo.Courses(context.Background())))

	// ──── Step 3: Initialize Redis Cache (optional) ────
	var cache services.Cache = services.NoopCache{}
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn("✗ Redis unavailable, serving without cache", "error", err)
		} else {
			defer client.Close()
			cache = services.NewRedisCache(client, cfg.CacheTTL)
			log.Info("✓ Redis cache connected", "ttl", cfg.CacheTTL.String())
		}
	}

	// ──── Initialize Services & Handlers ────
	courseService := services.NewCourseService(repo, cache, log)
	renderer := render.New(render.NewChromaHighlighter("dracula"), log)

	courseHandler := handlers.NewCourseHandler(courseService, log)
	pageHandler, err := handlers.NewPageHandler(courseService, renderer, log)
	if err != nil {
		log.Fatal("✗ Page templates failed to parse", "error", err)
	}

	// ──── Step 4: Check Content in the Background ────
	warmCtx, cancelWarm := context.WithCancel(context.Background())
	defer cancelWarm()
	go func() {
		failed := 0
		for _, res := range worker.NewPool(4, log).Run(warmCtx, courseService.WarmJobs()) {
			if res.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			log.Warn("✗ Content check finished with failures", "failed", failed)
			return
		}
		log.Info("✓ Content check passed")
	}()

	// ──── Step 5: Start HTTP Server ────
	limiter := router.DefaultRateLimiter(cfg.RateLimitPerMin)
	if limiter != nil {
		defer limiter.Stop()
	}
	r := router.New(log, courseHandler, pageHandler, limiter, cfg.FrontendURLs)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down...")
		cancelWarm()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info(fmt.Sprintf("✓ Server is running on http://localhost:%s", cfg.Port))
	log.Info(fmt.Sprintf("  API:   http://localhost:%s/api", cfg.Port))
	log.Info(fmt.Sprintf("  Learn: http://localhost:%s/learn", cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("Server error", "error", err)
	}
}
