package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/retviz/server/internal/cache"
	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/exprtable"
	"github.com/retviz/server/internal/render"
	"github.com/retviz/server/internal/service"
)

// 20-column table matching the sun2018 layout (values from column 7 on).
const sun2018TSV = `id	symbol	c1	c2	c3	c4	c5	r1	r2	r3	r4	m1	m2	m3	m4	x1	x2	x3	x4	x5
g1	nr2e3	0	0	0	0	0	120	110	130	125	4	6	3	5	80	82	78	81	79
g2	rho	0	0	0	0	0	900	870	910	880	10	12	9	11	50	48	52	49	51
`

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	p, ok := dataset.ByID("sun2018")
	if !ok {
		t.Fatal("sun2018 profile missing")
	}
	table, err := exprtable.Parse(strings.NewReader(sun2018TSV), '\t')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cacheManager, err := cache.NewManager(cache.Config{
		ChartCacheSizeMB: 16,
		ChartTTL:         1 * time.Minute,
		SpecCacheSize:    16,
	})
	if err != nil {
		t.Fatalf("Failed to initialize cache: %v", err)
	}
	t.Cleanup(func() { cacheManager.Close() })

	renderer, err := render.NewChartRenderer(render.Config{
		Width:           400,
		Height:          300,
		DefaultColormap: "bone",
	})
	if err != nil {
		t.Fatalf("Failed to initialize renderer: %v", err)
	}

	svc := service.NewChartService(service.ChartServiceConfig{
		DatasetID: "sun2018",
		Profile:   p,
		Table:     table,
		Cache:     cacheManager,
		Renderer:  renderer,
	})

	registry := NewDatasetRegistry("sun2018", []string{"sun2018"}, "")
	registry.Register("sun2018", svc)

	return NewRouter(RouterConfig{
		Registry:    registry,
		CORSOrigins: []string{"http://localhost:3000"},
	})
}

func doRequest(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestDatasetsEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/api/datasets")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var payload struct {
		Default  string        `json:"default"`
		Datasets []DatasetInfo `json:"datasets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if payload.Default != "sun2018" {
		t.Errorf("unexpected default: %q", payload.Default)
	}
	if len(payload.Datasets) != 1 || payload.Datasets[0].ID != "sun2018" {
		t.Errorf("unexpected datasets: %+v", payload.Datasets)
	}
}

func TestBarChartEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/bars/rho.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("unexpected content type: %q", ct)
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
}

func TestBarChartEndpoint_GeneNotFound(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/bars/ghost.png")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestBarChartEndpoint_DatasetNotFound(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/nope/bars/rho.png")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestBarChartEndpoint_NoPercentBlock(t *testing.T) {
	router := testRouter(t)

	// sun2018 has no percent block, so pct=true is a caller error.
	rec := doRequest(t, router, "/d/sun2018/bars/rho.png?pct=true")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}

func TestBarChartEndpoint_CustomPalette(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/bars/rho.png?palette=r:%23112233,m4:%23445566")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestBarChartEndpoint_IncompletePalette(t *testing.T) {
	router := testRouter(t)

	// Caller palette must cover every group key the profile references.
	rec := doRequest(t, router, "/d/sun2018/bars/rho.png?palette=r:%23112233")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}

func TestBarChartEndpoint_BadPaletteColor(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/bars/rho.png?palette=r:notacolor")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHeatmapEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/heatmap.png?genes=rho,nr2e3&norm=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
}

func TestHeatmapEndpoint_MissingGenesParam(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/heatmap.png")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHeatmapEndpoint_UnknownColormap(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/heatmap.png?genes=rho&cmap=jet")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}

func TestHeatmapEndpoint_AllGenesMissing(t *testing.T) {
	router := testRouter(t)

	// Unknown genes still produce a chart: the "not found" placeholder.
	rec := doRequest(t, router, "/d/sun2018/heatmap.png?genes=ghost1,ghost2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestProfileEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/api/profile")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var p dataset.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if p.ID != "sun2018" {
		t.Errorf("unexpected profile id: %q", p.ID)
	}
	if len(p.Groups) != 2 {
		t.Errorf("expected 2 groups, got %d", len(p.Groups))
	}
}

func TestGenesEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/api/genes?q=rh")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var payload struct {
		Genes []string `json:"genes"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(payload.Genes) != 1 || payload.Genes[0] != "rho" {
		t.Errorf("unexpected genes: %v", payload.Genes)
	}
	if payload.Total != 2 {
		t.Errorf("unexpected total: %d", payload.Total)
	}
}

func TestGeneInfoEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/api/genes/NR2E3")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if got, _ := payload["symbol"].(string); got != "nr2e3" {
		t.Errorf("unexpected symbol: %q", got)
	}
}

func TestBarSpecEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, "/d/sun2018/api/genes/rho/bars")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var spec dataset.BarSpec
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if spec.Title != "rho" {
		t.Errorf("unexpected title: %q", spec.Title)
	}
	if len(spec.Values) != 8 || spec.Values[0] != 900 {
		t.Errorf("unexpected values: %v", spec.Values)
	}
}
