// Package render draws resolved chart specs using fogleman/gg. All
// drawing happens on an explicit gg.Context; the PNG helpers manage a
// pooled context internally but never share one between calls.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/retviz/server/pkg/colormap"
)

// Config contains renderer configuration.
type Config struct {
	Width           int
	Height          int
	FontPath        string // optional TTF; the built-in bitmap face is used when empty
	DefaultColormap string
}

// Font sizes, in points, for the shared chart cosmetics.
const (
	tickFontSize  = 13
	labelFontSize = 15
	titleFontSize = 18
	groupFontSize = 16
)

// ChartRenderer renders bar charts and heatmaps from resolved specs.
type ChartRenderer struct {
	config      Config
	contextPool sync.Pool
	bufferPool  sync.Pool
	colormaps   map[string]colormap.Colormap

	tickFace  font.Face
	labelFace font.Face
	titleFace font.Face
	groupFace font.Face
}

// NewChartRenderer creates a new chart renderer.
func NewChartRenderer(cfg Config) (*ChartRenderer, error) {
	if cfg.Width <= 0 {
		cfg.Width = 880
	}
	if cfg.Height <= 0 {
		cfg.Height = 620
	}
	if cfg.DefaultColormap == "" {
		cfg.DefaultColormap = "bone"
	}
	if _, ok := colormap.ByName(cfg.DefaultColormap); !ok {
		return nil, fmt.Errorf("render: unknown default colormap %q", cfg.DefaultColormap)
	}

	r := &ChartRenderer{
		config: cfg,
		contextPool: sync.Pool{
			New: func() interface{} {
				return gg.NewContext(cfg.Width, cfg.Height)
			},
		},
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 32*1024))
			},
		},
		colormaps: map[string]colormap.Colormap{
			"bone":    colormap.Bone,
			"viridis": colormap.Viridis,
			"plasma":  colormap.Plasma,
			"inferno": colormap.Inferno,
			"magma":   colormap.Magma,
			"seurat":  colormap.Seurat,
		},
	}
	r.colormaps["default"] = mustColormap(cfg.DefaultColormap)
	r.colormaps[""] = r.colormaps["default"]

	if cfg.FontPath != "" {
		var err error
		if r.tickFace, err = gg.LoadFontFace(cfg.FontPath, tickFontSize); err != nil {
			return nil, fmt.Errorf("render: load font %s: %w", cfg.FontPath, err)
		}
		if r.labelFace, err = gg.LoadFontFace(cfg.FontPath, labelFontSize); err != nil {
			return nil, fmt.Errorf("render: load font %s: %w", cfg.FontPath, err)
		}
		if r.titleFace, err = gg.LoadFontFace(cfg.FontPath, titleFontSize); err != nil {
			return nil, fmt.Errorf("render: load font %s: %w", cfg.FontPath, err)
		}
		if r.groupFace, err = gg.LoadFontFace(cfg.FontPath, groupFontSize); err != nil {
			return nil, fmt.Errorf("render: load font %s: %w", cfg.FontPath, err)
		}
	}

	return r, nil
}

func mustColormap(name string) colormap.Colormap {
	cm, ok := colormap.ByName(name)
	if !ok {
		return colormap.Bone
	}
	return cm
}

// Colormap resolves a colormap by name, falling back to the configured
// default for unknown names.
func (r *ChartRenderer) Colormap(name string) colormap.Colormap {
	if cm, ok := r.colormaps[name]; ok {
		return cm
	}
	return r.colormaps["default"]
}

// Size returns the canvas dimensions in pixels.
func (r *ChartRenderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

func (r *ChartRenderer) setFace(dc *gg.Context, face font.Face) {
	if face != nil {
		dc.SetFontFace(face)
	}
}

func (r *ChartRenderer) encodeContext(dc *gg.Context) ([]byte, error) {
	buf := r.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		r.bufferPool.Put(buf)
	}()

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(buf, dc.Image()); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// niceStep rounds a raw tick interval up to a 1/2/5 multiple.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch r := raw / mag; {
	case r <= 1:
		return mag
	case r <= 2:
		return 2 * mag
	case r <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// niceTicks returns tick values from zero up to max, at most n+1 of them.
func niceTicks(max float64, n int) []float64 {
	if max <= 0 {
		max = 1
	}
	step := niceStep(max / float64(n))
	var ticks []float64
	for v := 0.0; v <= max+step*1e-9; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// sciExponent returns the power-of-ten offset for axis labels, or zero
// when plain notation is used. Mirrors scientific notation kicking in
// once the axis maximum climbs past 10^2.
func sciExponent(max float64) int {
	if max < 1000 {
		return 0
	}
	return int(math.Floor(math.Log10(max)))
}

var (
	colorBlack = color.RGBA{0, 0, 0, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
)
