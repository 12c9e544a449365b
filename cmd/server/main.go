package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dailydash/dailydash/app/api"
	"github.com/dailydash/dailydash/app/cfg"
	"github.com/dailydash/dailydash/app/database"
	"github.com/dailydash/dailydash/app/persistence"
	"github.com/dailydash/dailydash/app/providers"
	"github.com/dailydash/dailydash/app/store"
	"github.com/dailydash/dailydash/app/tasks"
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

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting DailyDash server (version %s)...", appCfg.Version)

	// Database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Printf("Connected to database successfully")

	// Initialize repositories and stores
	snapshotRepo := database.NewSnapshotRepository(db)

	contentStore := store.NewContentStore()
	sourceCache := store.NewSourceCache()
	favorites := store.NewFavoritesStore()
	preferences := store.NewPreferencesStore()
	ui := store.NewUIStore()

	// Restore persisted state
	adapter := persistence.NewAdapter(snapshotRepo)
	adapter.Restore(contentStore, favorites, preferences, ui)
	log.Printf("Restored persisted state (favorites: %d, theme: %s)", favorites.Len(), ui.Theme())

	// Initialize provider clients
	newsClient := providers.NewNewsClient(appCfg.NewsAPIKey, appCfg.NewsLanguage, appCfg.UserAgent)
	movieClient := providers.NewMovieClient(appCfg.TMDBAPIKey, appCfg.UserAgent)
	feedClient := providers.NewFeedClient(appCfg.UserAgent)

	if !newsClient.IsConfigured() {
		log.Printf("Warning: NEWS_API_KEY not set, news content disabled")
	}
	if !movieClient.IsConfigured() {
		log.Printf("Warning: TMDB_API_KEY not set, movie content disabled")
	}

	sources, err := providers.LoadSources(appCfg.SourcesFile)
	if err != nil {
		log.Fatal("Failed to load RSS sources:", err)
	}
	if len(sources) > 0 {
		log.Printf("Loaded %d supplementary RSS sources", len(sources))
	}

	// Initialize and start scheduler
	log.Printf("Starting background scheduler with %d workers...", appCfg.WorkerCount)
	scheduler := tasks.NewScheduler(newsClient, movieClient, feedClient, sources,
		sourceCache, contentStore, preferences)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	searchDebouncer := store.NewDebouncer(time.Duration(appCfg.SearchDebounceMs) * time.Millisecond)
	apiHandler := api.NewHandler(contentStore, sourceCache, favorites, preferences, ui,
		adapter, searchDebouncer, scheduler)
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
		log.Printf("API endpoints available:")
		log.Printf("  Feed:          http://localhost:%s/feed", appCfg.Port)
		log.Printf("  Favorites:     http://localhost:%s/favorites", appCfg.Port)
		log.Printf("  Trending:      http://localhost:%s/trending", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appCfg.Port)

		if appCfg.APIAccessKey != "" {
			log.Printf("  Mutating endpoints require API key (X-API-Key header)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("DailyDash server started successfully!")
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

	log.Println("DailyDash server shutdown complete")
}
