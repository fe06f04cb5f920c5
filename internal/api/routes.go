// Package api provides HTTP handlers for the retviz chart server.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/service"
)

// RouterConfig contains router configuration.
type RouterConfig struct {
	Registry    *DatasetRegistry
	CORSOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Global datasets endpoint (not dataset-scoped)
	r.Get("/api/datasets", datasetsHandler(cfg.Registry))

	// Dataset-scoped routes: /d/{dataset}/...
	r.Route("/d/{dataset}", func(r chi.Router) {
		r.Use(datasetMiddleware(cfg.Registry))

		// Chart endpoints
		r.Get("/bars/{gene}.png", datasetBarChartHandler)
		// NOTE: chi treats '.' as a param delimiter when the route pattern is
		// `{gene}.png`, which breaks genes containing '.'. Add a fallback route
		// that captures the full segment and strip the extension in the handler.
		r.Get("/bars/{gene}", datasetBarChartHandler)
		r.Get("/heatmap.png", datasetHeatmapHandler)

		// API endpoints
		r.Route("/api", func(r chi.Router) {
			r.Get("/profile", datasetProfileHandler)
			r.Get("/genes", datasetGenesHandler)
			r.Get("/genes/{gene}", datasetGeneInfoHandler)
			r.Get("/genes/{gene}/bars", datasetBarSpecHandler)
		})
	})

	return r
}

// Context key for dataset service
type ctxKey string

const datasetServiceKey ctxKey = "datasetService"

// datasetMiddleware resolves the dataset from URL and injects the chart service into context.
func datasetMiddleware(registry *DatasetRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			datasetID := chi.URLParam(r, "dataset")
			svc := registry.Get(datasetID)
			if svc == nil {
				http.Error(w, "dataset not found: "+datasetID, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), datasetServiceKey, svc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getDatasetService(r *http.Request) *service.ChartService {
	if svc, ok := r.Context().Value(datasetServiceKey).(*service.ChartService); ok {
		return svc
	}
	return nil
}

// datasetsHandler returns the list of available datasets.
func datasetsHandler(registry *DatasetRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"default":  registry.DefaultDatasetID(),
			"datasets": registry.Datasets(),
			"title":    registry.Title(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// writeChartError maps resolve and render failures to HTTP statuses: bad
// caller input (palette, colormap, percent block) is 400, missing genes
// are 404, anything else is a server error.
func writeChartError(w http.ResponseWriter, err error) {
	var notFound *service.GeneNotFoundError
	if errors.As(err, &notFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var unknownCmap *service.UnknownColormapError
	var missingKey *dataset.MissingColorKeyError
	if errors.As(err, &unknownCmap) || errors.As(err, &missingKey) || errors.Is(err, dataset.ErrNoPercentBlock) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// parsePalette parses the palette query parameter, a comma-separated list
// of key:hex pairs, e.g. "r:#747474,u:#B540B7". Returns nil when absent.
func parsePalette(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	palette := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, hex, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid palette entry %q (expected key:hex)", pair)
		}
		key = strings.TrimSpace(key)
		hex = strings.TrimSpace(hex)
		if _, err := colorful.Hex(hex); err != nil {
			return nil, fmt.Errorf("invalid palette color %q for key %q", hex, key)
		}
		palette[key] = hex
	}
	if len(palette) == 0 {
		return nil, nil
	}
	return palette, nil
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func datasetBarChartHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	gene := strings.TrimSuffix(chi.URLParam(r, "gene"), ".png")
	palette, err := parsePalette(r.URL.Query().Get("palette"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := svc.BarChart(gene, dataset.BarOptions{
		Percent: parseBool(r.URL.Query().Get("pct")),
		Palette: palette,
	})
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

func datasetHeatmapHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	genesParam := strings.TrimSpace(r.URL.Query().Get("genes"))
	if genesParam == "" {
		http.Error(w, "missing required query param: genes", http.StatusBadRequest)
		return
	}
	var genes []string
	for _, g := range strings.Split(genesParam, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			genes = append(genes, g)
		}
	}
	if len(genes) == 0 {
		http.Error(w, "empty genes list", http.StatusBadRequest)
		return
	}

	palette, err := parsePalette(r.URL.Query().Get("palette"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := svc.Heatmap(genes, dataset.HeatmapOptions{
		Percent:   parseBool(r.URL.Query().Get("pct")),
		Normalize: parseBool(r.URL.Query().Get("norm")),
		Palette:   palette,
	}, strings.TrimSpace(r.URL.Query().Get("cmap")))
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

func datasetProfileHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(svc.Profile())
}

func datasetGenesHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	prefix := strings.TrimSpace(r.URL.Query().Get("q"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	genes := svc.SearchGenes(prefix, limit)
	response := map[string]interface{}{
		"genes": genes,
		"total": svc.GeneCount(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func datasetGeneInfoHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	gene := chi.URLParam(r, "gene")
	row, ok := svc.Lookup(gene)
	if !ok {
		http.Error(w, "gene not found", http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"symbol":  row.Symbol,
		"dataset": svc.DatasetID(),
		"columns": len(row.Values),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// datasetBarSpecHandler returns the resolved bar chart numbers as JSON so
// clients can draw their own charts.
func datasetBarSpecHandler(w http.ResponseWriter, r *http.Request) {
	svc := getDatasetService(r)
	if svc == nil {
		http.Error(w, "dataset service not found", http.StatusInternalServerError)
		return
	}

	gene := chi.URLParam(r, "gene")
	data, err := svc.BarSpec(gene, parseBool(r.URL.Query().Get("pct")))
	if err != nil {
		writeChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
