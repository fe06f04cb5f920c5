package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/retviz/server/internal/dataset"
)

const barWidth = 0.8 // chart coordinate units

// RenderBarPNG draws a bar spec on a pooled context and returns the
// encoded PNG.
func (r *ChartRenderer) RenderBarPNG(spec *dataset.BarSpec) ([]byte, error) {
	dc := r.contextPool.Get().(*gg.Context)
	defer r.contextPool.Put(dc)

	if err := r.DrawBars(dc, spec); err != nil {
		return nil, err
	}
	return r.encodeContext(dc)
}

// DrawBars draws one bar per column onto dc: colored bars at the spec's
// positions, hidden top/right spines, group ticks, unit label, and the
// gene symbol as title. The context is cleared first.
func (r *ChartRenderer) DrawBars(dc *gg.Context, spec *dataset.BarSpec) error {
	if len(spec.Colors) != len(spec.Values) {
		return &dataset.ShapeMismatchError{Values: len(spec.Values), Colors: len(spec.Colors)}
	}
	if len(spec.Positions) != len(spec.Values) {
		return &dataset.ShapeMismatchError{Values: len(spec.Values), Colors: len(spec.Positions)}
	}
	if len(spec.Values) == 0 {
		return fmt.Errorf("render: empty bar spec")
	}

	w := float64(dc.Width())
	h := float64(dc.Height())

	dc.SetColor(colorWhite)
	dc.Clear()

	marginLeft, marginRight := 78.0, 18.0
	marginTop, marginBottom := 52.0, 64.0
	if spec.TickRotation != 0 {
		marginBottom = 96
	}
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom

	xmin := spec.Positions[0] - 1
	xmax := spec.Positions[len(spec.Positions)-1] + 1

	ymax := 0.0
	for _, v := range spec.Values {
		if v > ymax {
			ymax = v
		}
	}
	if ymax <= 0 {
		ymax = 1
	}
	ymax *= 1.05

	xpix := func(x float64) float64 {
		return marginLeft + plotW*(x-xmin)/(xmax-xmin)
	}
	ypix := func(v float64) float64 {
		return marginTop + plotH*(1-v/ymax)
	}

	// Bars.
	halfBar := barWidth / 2
	for i, v := range spec.Values {
		if v < 0 {
			v = 0
		}
		x0 := xpix(spec.Positions[i] - halfBar)
		x1 := xpix(spec.Positions[i] + halfBar)
		y := ypix(v)
		dc.SetHexColor(spec.Colors[i])
		dc.DrawRectangle(x0, y, x1-x0, ypix(0)-y)
		dc.Fill()
	}

	// Left and bottom spines only.
	dc.SetColor(colorBlack)
	dc.SetLineWidth(1.2)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	// Y ticks, with a power-of-ten offset for large ranges.
	exp := sciExponent(ymax)
	scale := math.Pow(10, float64(exp))
	r.setFace(dc, r.tickFace)
	for _, tv := range niceTicks(ymax, 5) {
		y := ypix(tv)
		dc.SetLineWidth(1)
		dc.DrawLine(marginLeft-5, y, marginLeft, y)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(tv/scale), marginLeft-9, y, 1, 0.35)
	}
	if exp != 0 {
		dc.DrawStringAnchored(fmt.Sprintf("1e%d", exp), marginLeft, marginTop-8, 1, 1)
	}

	// X ticks at group midpoints.
	for i, tx := range spec.TickPositions {
		x := xpix(tx)
		y := marginTop + plotH
		dc.SetLineWidth(1)
		dc.DrawLine(x, y, x, y+5)
		dc.Stroke()

		label := spec.TickLabels[i]
		if spec.TickRotation == 0 {
			dc.DrawStringAnchored(label, x, y+9, 0.5, 1)
		} else {
			dc.Push()
			dc.RotateAbout(gg.Radians(-spec.TickRotation), x, y+9)
			dc.DrawStringAnchored(label, x, y+9, 1, 0.5)
			dc.Pop()
		}
	}

	// Unit label, rotated along the y axis.
	r.setFace(dc, r.labelFace)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, marginTop+plotH/2)
	dc.DrawStringAnchored(spec.YLabel, 20, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Gene symbol as title.
	r.setFace(dc, r.titleFace)
	dc.DrawStringAnchored(spec.Title, marginLeft+plotW/2, marginTop/2, 0.5, 0.5)

	return nil
}
