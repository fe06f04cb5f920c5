package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/retviz/server/internal/cache"
	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/exprtable"
	"github.com/retviz/server/internal/render"
)

// 20-column table matching the sun2018 layout (values from column 7 on).
const sun2018TSV = `id	symbol	c1	c2	c3	c4	c5	r1	r2	r3	r4	m1	m2	m3	m4	x1	x2	x3	x4	x5
g1	nr2e3	0	0	0	0	0	120	110	130	125	4	6	3	5	80	82	78	81	79
g2	rho	0	0	0	0	0	900	870	910	880	10	12	9	11	50	48	52	49	51
`

func testService(t *testing.T) *ChartService {
	t.Helper()

	p, ok := dataset.ByID("sun2018")
	if !ok {
		t.Fatal("sun2018 profile missing")
	}
	table, err := exprtable.Parse(strings.NewReader(sun2018TSV), '\t')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mgr, err := cache.NewManager(cache.Config{
		ChartCacheSizeMB: 16,
		ChartTTL:         time.Minute,
		SpecCacheSize:    64,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	renderer, err := render.NewChartRenderer(render.Config{Width: 400, Height: 300, DefaultColormap: "bone"})
	if err != nil {
		t.Fatalf("NewChartRenderer: %v", err)
	}

	return NewChartService(ChartServiceConfig{
		DatasetID: "sun2018",
		Profile:   p,
		Table:     table,
		Cache:     mgr,
		Renderer:  renderer,
	})
}

func TestBarChart(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	data, err := svc.BarChart("nr2e3", dataset.BarOptions{})
	if err != nil {
		t.Fatalf("BarChart: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode PNG: %v", err)
	}

	// Second call must be a cache hit returning identical bytes.
	again, err := svc.BarChart("nr2e3", dataset.BarOptions{})
	if err != nil {
		t.Fatalf("BarChart (cached): %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("cached chart differs from first render")
	}
}

func TestBarChart_GeneNotFound(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	_, err := svc.BarChart("nope", dataset.BarOptions{})

	var notFound *GeneNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GeneNotFoundError, got %v", err)
	}
	if notFound.Gene != "nope" || notFound.Dataset != "sun2018" {
		t.Errorf("unexpected error fields: %+v", notFound)
	}
}

func TestBarSpec_JSON(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	data, err := svc.BarSpec("rho", false)
	if err != nil {
		t.Fatalf("BarSpec: %v", err)
	}

	var spec dataset.BarSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if spec.Title != "rho" {
		t.Errorf("title: got %q", spec.Title)
	}
	if len(spec.Values) != 8 {
		t.Errorf("expected 8 values, got %d", len(spec.Values))
	}
	if spec.Values[0] != 900 {
		t.Errorf("first value: got %v", spec.Values[0])
	}
}

func TestHeatmap(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	data, err := svc.Heatmap([]string{"nr2e3", "rho"}, dataset.HeatmapOptions{Normalize: true}, "bone")
	if err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
}

func TestHeatmap_AllGenesMissing(t *testing.T) {
	t.Parallel()

	// Unknown genes still render: the adapter substitutes the placeholder.
	svc := testService(t)
	if _, err := svc.Heatmap([]string{"ghost1", "ghost2"}, dataset.HeatmapOptions{}, ""); err != nil {
		t.Fatalf("Heatmap with missing genes: %v", err)
	}
}

func TestHeatmap_UnknownColormap(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	_, err := svc.Heatmap([]string{"rho"}, dataset.HeatmapOptions{}, "jet")

	var unknown *UnknownColormapError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownColormapError, got %v", err)
	}
}

func TestSearchGenes(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	got := svc.SearchGenes("rh", 10)
	if len(got) != 1 || got[0] != "rho" {
		t.Errorf("SearchGenes(rh): got %v", got)
	}
	if svc.GeneCount() != 2 {
		t.Errorf("GeneCount: got %d", svc.GeneCount())
	}
}
