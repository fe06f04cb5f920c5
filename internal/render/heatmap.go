package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/pkg/colormap"
)

// RenderHeatmapPNG draws a heatmap spec on a pooled context and returns
// the encoded PNG. The colormap name falls back to the configured default
// when unknown or empty.
func (r *ChartRenderer) RenderHeatmapPNG(spec *dataset.HeatmapSpec, colormapName string) ([]byte, error) {
	dc := r.contextPool.Get().(*gg.Context)
	defer r.contextPool.Put(dc)

	if err := r.DrawHeatmap(dc, spec, r.Colormap(colormapName)); err != nil {
		return nil, err
	}
	return r.encodeContext(dc)
}

// DrawHeatmap draws the value block as an intensity image with black
// gridlines, white group boundaries, colored group bars above and below
// the image, colored group labels, row labels, and a horizontal colorbar.
// The adapter guarantees a non-empty block (empty input resolves to the
// "not found" placeholder before reaching the renderer).
func (r *ChartRenderer) DrawHeatmap(dc *gg.Context, spec *dataset.HeatmapSpec, cmap colormap.Colormap) error {
	nrows := len(spec.Block)
	if nrows == 0 {
		return fmt.Errorf("render: empty heatmap block")
	}
	ncols := len(spec.Block[0])

	if len(spec.GroupColors) != len(spec.GroupSizes) || len(spec.GroupLabels) != len(spec.GroupSizes) {
		return &dataset.ShapeMismatchError{Values: len(spec.GroupSizes), Colors: len(spec.GroupColors)}
	}
	total := 0
	for _, n := range spec.GroupSizes {
		total += n
	}
	if total != ncols {
		return &dataset.ShapeMismatchError{Values: ncols, Colors: total}
	}
	for _, row := range spec.Block {
		if len(row) != ncols {
			return &dataset.ShapeMismatchError{Values: ncols, Colors: len(row)}
		}
	}
	if len(spec.RowLabels) != nrows {
		return &dataset.ShapeMismatchError{Values: nrows, Colors: len(spec.RowLabels)}
	}

	w := float64(dc.Width())
	h := float64(dc.Height())

	dc.SetColor(colorWhite)
	dc.Clear()

	marginLeft, marginRight := 120.0, 20.0
	marginTop, marginBottom := 84.0, 96.0
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom
	plotBottom := marginTop + plotH

	cellW := plotW / float64(ncols)
	cellH := plotH / float64(nrows)

	// Color scale over the full block.
	vmin, vmax := spec.Block[0][0], spec.Block[0][0]
	for _, row := range spec.Block {
		for _, v := range row {
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
	}
	span := vmax - vmin
	if span == 0 {
		span = 1
	}

	// Cells.
	for ri, row := range spec.Block {
		for ci, v := range row {
			dc.SetColor(cmap.At((v - vmin) / span))
			dc.DrawRectangle(marginLeft+float64(ci)*cellW, marginTop+float64(ri)*cellH, cellW, cellH)
			dc.Fill()
		}
	}

	// Full-length black grid between every row and column.
	dc.SetColor(colorBlack)
	dc.SetLineWidth(2)
	dc.SetLineCap(gg.LineCapButt)
	for ri := 0; ri <= nrows; ri++ {
		y := marginTop + float64(ri)*cellH
		dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
	}
	for ci := 0; ci <= ncols; ci++ {
		x := marginLeft + float64(ci)*cellW
		dc.DrawLine(x, marginTop, x, plotBottom)
	}
	dc.Stroke()

	// White verticals at the outer edges and every group boundary.
	dc.SetColor(colorWhite)
	dc.SetLineWidth(2)
	dc.DrawLine(marginLeft, marginTop, marginLeft, plotBottom)
	dc.DrawLine(marginLeft+plotW, marginTop, marginLeft+plotW, plotBottom)
	dc.Stroke()
	dc.SetLineWidth(3)
	edge := 0
	for _, n := range spec.GroupSizes {
		edge += n
		x := marginLeft + float64(edge)*cellW
		dc.DrawLine(x, marginTop, x, plotBottom)
	}
	dc.Stroke()

	// Colored group bars straddling the top and bottom image edges, and
	// the group labels above.
	r.setFace(dc, r.groupFace)
	start := 0
	for gi, n := range spec.GroupSizes {
		x0 := marginLeft + float64(start)*cellW
		spanW := float64(n) * cellW
		dc.SetHexColor(spec.GroupColors[gi])
		dc.DrawRectangle(x0, marginTop-4, spanW, 8)
		dc.DrawRectangle(x0, plotBottom-4, spanW, 8)
		dc.Fill()

		labelY := marginTop - 14.0
		if spec.GroupRotation == 0 {
			dc.DrawStringAnchored(spec.GroupLabels[gi], x0+spanW/2, labelY, 0.5, 0)
		} else {
			dc.Push()
			dc.RotateAbout(gg.Radians(-spec.GroupRotation), x0, labelY)
			dc.DrawStringAnchored(spec.GroupLabels[gi], x0, labelY, 0, 0.5)
			dc.Pop()
		}
		start += n
	}

	// Row labels (gene symbols).
	dc.SetColor(colorBlack)
	r.setFace(dc, r.labelFace)
	for ri, label := range spec.RowLabels {
		y := marginTop + (float64(ri)+0.5)*cellH
		dc.DrawStringAnchored(label, marginLeft-8, y, 1, 0.35)
	}

	// Horizontal colorbar below the image.
	cbW := plotW * 0.75
	cbH := 14.0
	cbX := marginLeft + (plotW-cbW)/2
	cbY := plotBottom + 38
	steps := int(cbW)
	for i := 0; i < steps; i++ {
		dc.SetColor(cmap.At(float64(i) / float64(steps-1)))
		dc.DrawRectangle(cbX+float64(i), cbY, 1.5, cbH)
		dc.Fill()
	}
	dc.SetColor(colorBlack)
	dc.SetLineWidth(1)
	dc.DrawRectangle(cbX, cbY, cbW, cbH)
	dc.Stroke()

	r.setFace(dc, r.tickFace)
	dc.DrawStringAnchored(formatTick(vmin), cbX, cbY+cbH+5, 0.5, 1)
	dc.DrawStringAnchored(formatTick(vmax), cbX+cbW, cbY+cbH+5, 0.5, 1)
	r.setFace(dc, r.labelFace)
	dc.DrawStringAnchored(spec.CbarLabel, cbX-12, cbY+cbH/2, 1, 0.35)

	return nil
}
