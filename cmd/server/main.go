// Package main is the entry point for the RetViz chart server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/retviz/server/internal/api"
	"github.com/retviz/server/internal/cache"
	"github.com/retviz/server/internal/config"
	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/exprtable"
	"github.com/retviz/server/internal/render"
	"github.com/retviz/server/internal/service"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting RetViz server on port %d", cfg.Server.Port)

	// Initialize cache manager (shared across all datasets)
	cacheManager, err := cache.NewManager(cache.Config{
		ChartCacheSizeMB: cfg.Cache.ChartSizeMB,
		ChartTTL:         time.Duration(cfg.Cache.ChartTTLMinutes) * time.Minute,
		SpecCacheSize:    cfg.Cache.SpecEntries,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	// Initialize chart renderer (shared across all datasets)
	chartRenderer, err := render.NewChartRenderer(render.Config{
		Width:           cfg.Render.Width,
		Height:          cfg.Render.Height,
		FontPath:        cfg.Render.FontPath,
		DefaultColormap: cfg.Render.DefaultColormap,
	})
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	// Initialize dataset registry
	datasetIDs := cfg.Data.DatasetIDs()
	if len(datasetIDs) == 0 {
		log.Fatal("No datasets configured")
	}
	registry := api.NewDatasetRegistry(cfg.Data.DefaultDataset, datasetIDs, cfg.Server.Title)

	log.Printf("Initializing %d dataset(s), default: %s", len(datasetIDs), cfg.Data.DefaultDataset)

	// Initialize each dataset
	for _, datasetID := range datasetIDs {
		ds := cfg.Data.Datasets[datasetID]

		profile, ok := dataset.ByID(ds.Profile)
		if !ok {
			log.Fatalf("Unknown profile %q for dataset %q (known: %v)", ds.Profile, datasetID, dataset.IDs())
		}

		table, err := exprtable.Load(ds.TablePath)
		if err != nil {
			log.Fatalf("Failed to load table for dataset %q: %v", datasetID, err)
		}

		log.Printf("  [%s] Loaded from: %s", datasetID, ds.TablePath)
		log.Printf("    Profile: %s, Genes: %d, Columns: %d", profile.ID, table.Len(), profile.Columns)

		chartService := service.NewChartService(service.ChartServiceConfig{
			DatasetID: datasetID,
			Profile:   profile,
			Table:     table,
			Cache:     cacheManager,
			Renderer:  chartRenderer,
		})

		registry.Register(datasetID, chartService)
	}

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Registry:    registry,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
