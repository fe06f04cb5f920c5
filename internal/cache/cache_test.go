package cache

import (
	"bytes"
	"testing"
	"time"
)

func testManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(Config{
		ChartCacheSizeMB: 16,
		ChartTTL:         time.Minute,
		SpecCacheSize:    8,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestChartRoundtrip(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	key := BarKey("sun2018", "rho", false, nil)

	if _, ok := m.GetChart(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	if err := m.SetChart(key, []byte("png-bytes")); err != nil {
		t.Fatalf("SetChart: %v", err)
	}
	data, ok := m.GetChart(key)
	if !ok || !bytes.Equal(data, []byte("png-bytes")) {
		t.Fatalf("GetChart: ok=%v data=%q", ok, data)
	}
}

func TestSpecRoundtrip(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	key := SpecKey("sun2018", "rho", true)

	m.SetSpec(key, []byte(`{"title":"rho"}`))
	data, ok := m.GetSpec(key)
	if !ok || !bytes.Equal(data, []byte(`{"title":"rho"}`)) {
		t.Fatalf("GetSpec: ok=%v data=%q", ok, data)
	}
}

func TestKeyDistinguishesOptions(t *testing.T) {
	t.Parallel()

	raw := BarKey("sun2018", "rho", false, nil)
	pct := BarKey("sun2018", "rho", true, nil)
	if raw == pct {
		t.Error("percent flag not part of the key")
	}

	custom := BarKey("sun2018", "rho", false, map[string]string{"r": "#112233"})
	if custom == raw {
		t.Error("custom palette not part of the key")
	}

	// Same palette contents hash to the same key regardless of map order.
	again := BarKey("sun2018", "rho", false, map[string]string{"r": "#112233"})
	if custom != again {
		t.Error("palette hashing is not deterministic")
	}
}

func TestHeatmapKeyDistinguishesGenes(t *testing.T) {
	t.Parallel()

	a := HeatmapKey("sun2018", []string{"rho", "nr2e3"}, false, true, "bone", nil)
	b := HeatmapKey("sun2018", []string{"nr2e3", "rho"}, false, true, "bone", nil)
	if a == b {
		t.Error("gene order not part of the key")
	}

	c := HeatmapKey("sun2018", []string{"rho", "nr2e3"}, false, true, "seurat", nil)
	if a == c {
		t.Error("colormap not part of the key")
	}
}
