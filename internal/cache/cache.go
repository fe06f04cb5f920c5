// Package cache provides caching for rendered charts and resolved specs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	ChartCacheSizeMB int
	ChartTTL         time.Duration
	SpecCacheSize    int
}

// Manager manages the rendered-PNG cache and the resolved-spec cache.
type Manager struct {
	chartCache *bigcache.BigCache
	specCache  *lru.Cache[string, []byte]
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	chartCacheConfig := bigcache.Config{
		Shards:             256,
		LifeWindow:         cfg.ChartTTL,
		CleanWindow:        cfg.ChartTTL / 2,
		MaxEntriesInWindow: 10000,
		MaxEntrySize:       256 * 1024, // charts are larger than map tiles
		HardMaxCacheSize:   cfg.ChartCacheSizeMB,
		Verbose:            false,
	}

	chartCache, err := bigcache.New(context.Background(), chartCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart cache: %w", err)
	}

	specCache, err := lru.New[string, []byte](cfg.SpecCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create spec cache: %w", err)
	}

	return &Manager{
		chartCache: chartCache,
		specCache:  specCache,
	}, nil
}

// GetChart retrieves a rendered chart from cache.
func (m *Manager) GetChart(key string) ([]byte, bool) {
	data, err := m.chartCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetChart stores a rendered chart in cache.
func (m *Manager) SetChart(key string, data []byte) error {
	return m.chartCache.Set(key, data)
}

// GetSpec retrieves a resolved spec payload from cache.
func (m *Manager) GetSpec(key string) ([]byte, bool) {
	return m.specCache.Get(key)
}

// SetSpec stores a resolved spec payload in cache.
func (m *Manager) SetSpec(key string, data []byte) {
	m.specCache.Add(key, data)
}

// BarKey generates a cache key for a bar chart.
func BarKey(dataset, gene string, percent bool, palette map[string]string) string {
	base := fmt.Sprintf("bar:%s:%s:pct=%t", dataset, gene, percent)
	return base + paletteSuffix(palette)
}

// HeatmapKey generates a cache key for a heatmap.
func HeatmapKey(dataset string, genes []string, percent, normalize bool, cmap string, palette map[string]string) string {
	base := fmt.Sprintf("heatmap:%s:%s:pct=%t:norm=%t:cmap=%s",
		dataset, strings.Join(genes, ","), percent, normalize, cmap)
	return base + paletteSuffix(palette)
}

// SpecKey generates a cache key for a resolved bar spec payload.
func SpecKey(dataset, gene string, percent bool) string {
	return fmt.Sprintf("spec:%s:%s:pct=%t", dataset, gene, percent)
}

// paletteSuffix hashes a caller-supplied palette into the cache key;
// the built-in palette (nil) contributes nothing.
func paletteSuffix(palette map[string]string) string {
	if len(palette) == 0 {
		return ""
	}
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s;", k, palette[k])
	}
	return ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	return map[string]interface{}{
		"chart_cache_len": m.chartCache.Len(),
		"chart_cache_cap": m.chartCache.Capacity(),
		"spec_cache_len":  m.specCache.Len(),
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	return m.chartCache.Close()
}
