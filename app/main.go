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

	"github.com/Vipul251/ai-seo-blog-generator/app/api"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/cfg"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/publisher"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
	"github.com/Vipul251/ai-seo-blog-generator/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	log.Printf("Starting SEO Blog Generator %s...", appCfg.Version)

	// Database connection
	log.Printf("Opening database at %s...", appCfg.DBPath)
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty: %t)", version, dirty)

	// Load source configurations
	log.Printf("Loading source configurations from %s...", appCfg.SourcesDir)
	configCache := catalog.NewConfigCache(appCfg.SourcesDir)
	if err := configCache.Run(); err != nil {
		log.Fatal("Failed to load source configurations:", err)
	}
	log.Printf("Loaded %d source configurations", configCache.GetConfigCount())

	// Initialize repositories
	sourceRepo := database.NewSourceRepository(db)
	productRepo := database.NewProductRepository(db)
	keywordRepo := database.NewKeywordRepository(db)
	postRepo := database.NewPostRepository(db)

	httpClient := &http.Client{}

	// Initialize and start scheduler
	log.Printf("Starting background scheduler with %d workers...", appCfg.WorkerCount)
	taskScheduler := tasks.NewScheduler(configCache, sourceRepo, productRepo, keywordRepo, postRepo, httpClient)
	taskScheduler.Start()
	defer taskScheduler.Stop()

	// Publishing is optional and only wired when a target is configured
	var wpPublisher api.PublisherInterface
	if appCfg.PublishURL != "" {
		wpPublisher = publisher.NewPublisher(httpClient, appCfg.PublishURL,
			appCfg.PublishUser, appCfg.PublishPassword, appCfg.UserAgent)
		log.Printf("WordPress publishing enabled: %s", appCfg.PublishURL)
	} else {
		log.Printf("WordPress publishing disabled (PUBLISH_URL not set)")
	}

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	productScraper := scraper.NewScraper(httpClient, appCfg.UserAgent)
	apiHandler := api.NewHandler(configCache, sourceRepo, productRepo, keywordRepo,
		postRepo, productScraper, taskScheduler, wpPublisher)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Post:          http://localhost:%s/posts/<slug>", appCfg.Port)
		log.Printf("  Markdown:      http://localhost:%s/posts/<slug>/markdown", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appCfg.Port)

		if appCfg.APIAccessKey != "" {
			log.Printf("  List posts:    http://localhost:%s/api/posts (requires API key)", appCfg.Port)
			log.Printf("  Post package:  http://localhost:%s/api/posts/<slug>/package (requires API key)", appCfg.Port)
			log.Printf("  Report:        http://localhost:%s/api/report (requires API key)", appCfg.Port)
			log.Printf("  Refresh:       http://localhost:%s/api/sources/<name>/refresh (POST, requires API key)", appCfg.Port)
			log.Printf("  Publish:       http://localhost:%s/api/posts/<slug>/publish (POST, requires API key)", appCfg.Port)
		} else {
			log.Printf("  API endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("SEO Blog Generator started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	log.Println("Background scheduler stopped")

	log.Println("SEO Blog Generator shutdown complete")
}
