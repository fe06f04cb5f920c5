// Package service provides business logic for the chart server.
package service

import (
	"encoding/json"
	"fmt"

	"github.com/retviz/server/internal/cache"
	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/exprtable"
	"github.com/retviz/server/internal/render"
	"github.com/retviz/server/pkg/colormap"
)

// GeneNotFoundError reports a gene symbol absent from a dataset's table.
type GeneNotFoundError struct {
	Dataset string
	Gene    string
}

func (e *GeneNotFoundError) Error() string {
	return fmt.Sprintf("gene %q not found in dataset %q", e.Gene, e.Dataset)
}

// UnknownColormapError reports a colormap name with no registered colormap.
type UnknownColormapError struct {
	Name string
}

func (e *UnknownColormapError) Error() string {
	return fmt.Sprintf("unknown colormap %q", e.Name)
}

// ChartServiceConfig contains chart service configuration.
type ChartServiceConfig struct {
	DatasetID string
	Profile   *dataset.Profile
	Table     *exprtable.Table
	Cache     *cache.Manager
	Renderer  *render.ChartRenderer
}

// ChartService renders bar charts and heatmaps for one dataset.
type ChartService struct {
	datasetID string
	profile   *dataset.Profile
	table     *exprtable.Table
	cache     *cache.Manager
	renderer  *render.ChartRenderer
}

// NewChartService creates a new chart service.
func NewChartService(cfg ChartServiceConfig) *ChartService {
	return &ChartService{
		datasetID: cfg.DatasetID,
		profile:   cfg.Profile,
		table:     cfg.Table,
		cache:     cfg.Cache,
		renderer:  cfg.Renderer,
	}
}

// DatasetID returns the dataset ID this service serves.
func (s *ChartService) DatasetID() string {
	return s.datasetID
}

// Profile returns the dataset profile.
func (s *ChartService) Profile() *dataset.Profile {
	return s.profile
}

// Lookup finds one gene row in the dataset's table.
func (s *ChartService) Lookup(gene string) (exprtable.Row, bool) {
	return s.table.Lookup(gene)
}

// SearchGenes returns up to limit gene symbols with the given prefix.
func (s *ChartService) SearchGenes(prefix string, limit int) []string {
	return s.table.Search(prefix, limit)
}

// GeneCount returns the number of gene rows in the dataset's table.
func (s *ChartService) GeneCount() int {
	return s.table.Len()
}

// BarChart renders the per-cell-type bar chart for one gene as a PNG.
func (s *ChartService) BarChart(gene string, opts dataset.BarOptions) ([]byte, error) {
	key := cache.BarKey(s.datasetID, gene, opts.Percent, opts.Palette)
	if data, ok := s.cache.GetChart(key); ok {
		return data, nil
	}

	spec, err := s.resolveBar(gene, opts)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.RenderBarPNG(spec)
	if err != nil {
		return nil, err
	}
	s.cache.SetChart(key, data)
	return data, nil
}

// BarSpec resolves the bar chart for one gene and returns it as JSON, so
// clients can draw their own charts from the same numbers.
func (s *ChartService) BarSpec(gene string, percent bool) ([]byte, error) {
	key := cache.SpecKey(s.datasetID, gene, percent)
	if data, ok := s.cache.GetSpec(key); ok {
		return data, nil
	}

	spec, err := s.resolveBar(gene, dataset.BarOptions{Percent: percent})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	s.cache.SetSpec(key, data)
	return data, nil
}

func (s *ChartService) resolveBar(gene string, opts dataset.BarOptions) (*dataset.BarSpec, error) {
	row, ok := s.table.Lookup(gene)
	if !ok {
		return nil, &GeneNotFoundError{Dataset: s.datasetID, Gene: gene}
	}
	return dataset.ResolveBarSpec(row.Symbol, row.Values, s.profile, opts)
}

// Heatmap renders a multi-gene heatmap as a PNG. Requested genes missing
// from the table are skipped; when none remain the chart shows the
// dataset's "not found" placeholder.
func (s *ChartService) Heatmap(genes []string, opts dataset.HeatmapOptions, colormapName string) ([]byte, error) {
	if colormapName != "" {
		if _, ok := colormap.ByName(colormapName); !ok {
			return nil, &UnknownColormapError{Name: colormapName}
		}
	}

	key := cache.HeatmapKey(s.datasetID, genes, opts.Percent, opts.Normalize, colormapName, opts.Palette)
	if data, ok := s.cache.GetChart(key); ok {
		return data, nil
	}

	rows := s.table.LookupAll(genes)
	symbols := make([]string, len(rows))
	values := make([][]float64, len(rows))
	for i, row := range rows {
		symbols[i] = row.Symbol
		values[i] = row.Values
	}

	spec, err := dataset.ResolveHeatmapSpec(symbols, values, s.profile, opts)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.RenderHeatmapPNG(spec, colormapName)
	if err != nil {
		return nil, err
	}
	s.cache.SetChart(key, data)
	return data, nil
}
