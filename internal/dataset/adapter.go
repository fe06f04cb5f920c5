package dataset

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// BarSpec is a fully resolved bar chart: one value, position, and hex
// color per dataset column, plus tick geometry and axis labels.
type BarSpec struct {
	Title         string    `json:"title"`
	YLabel        string    `json:"y_label"`
	Values        []float64 `json:"values"`
	Positions     []float64 `json:"positions"`
	Colors        []string  `json:"colors"`
	TickPositions []float64 `json:"tick_positions"`
	TickLabels    []string  `json:"tick_labels"`
	TickRotation  float64   `json:"tick_rotation,omitempty"`
}

// HeatmapSpec is a fully resolved heatmap: a genes-by-columns value block
// with per-group boundary annotations.
type HeatmapSpec struct {
	Block         [][]float64 `json:"block"`
	RowLabels     []string    `json:"row_labels"`
	GroupSizes    []int       `json:"group_sizes"`
	GroupColors   []string    `json:"group_colors"`
	GroupLabels   []string    `json:"group_labels"`
	GroupRotation float64     `json:"group_rotation,omitempty"`
	CbarLabel     string      `json:"cbar_label"`
}

// BarOptions selects the value block and palette for a bar resolve.
// A nil Palette uses the profile's built-in colors; a non-nil Palette must
// cover every group key the profile references.
type BarOptions struct {
	Percent bool
	Palette map[string]string
}

// HeatmapOptions selects the value block, normalization, and palette for
// a heatmap resolve.
type HeatmapOptions struct {
	Percent   bool
	Normalize bool
	Palette   map[string]string
}

// ResolveBarSpec slices one gene's row at the profile's configured offsets
// and expands group colors to one hex per column. The row must provide at
// least MaxColumn(percent) columns.
func ResolveBarSpec(symbol string, values []float64, p *Profile, opts BarOptions) (*BarSpec, error) {
	if opts.Percent && !p.HasPercent() {
		return nil, ErrNoPercentBlock
	}

	start := p.start(opts.Percent, false)
	end := start + p.Columns
	if len(values) < end {
		return nil, &OutOfRangeError{Dataset: p.ID, Need: end, Got: len(values)}
	}

	palette := opts.Palette
	if palette == nil {
		palette = p.Palette
	}

	colors := make([]string, 0, p.Columns)
	for _, g := range p.Groups {
		hex, err := groupColor(p, g, palette)
		if err != nil {
			return nil, err
		}
		for i := 0; i < g.Count; i++ {
			colors = append(colors, hex)
		}
	}

	vals := make([]float64, p.Columns)
	copy(vals, values[start:end])

	positions := barPositions(p)
	ticks, labels := groupTicks(p, positions)

	yLabel := p.Unit
	if opts.Percent {
		yLabel = p.PctUnit
	}

	return &BarSpec{
		Title:         symbol,
		YLabel:        yLabel,
		Values:        vals,
		Positions:     positions,
		Colors:        colors,
		TickPositions: ticks,
		TickLabels:    labels,
		TickRotation:  p.TickRotation,
	}, nil
}

// ResolveHeatmapSpec slices a block of gene rows at the profile's offsets.
// With Normalize set, each row is divided by its own maximum. An empty row
// set resolves to a 2-row placeholder of 1s labeled "not found"; this is
// the documented fallback for genes absent from a dataset, not an error.
func ResolveHeatmapSpec(symbols []string, rows [][]float64, p *Profile, opts HeatmapOptions) (*HeatmapSpec, error) {
	if opts.Percent && !p.HasPercent() {
		return nil, ErrNoPercentBlock
	}

	start := p.start(opts.Percent, true)
	end := start + p.Columns

	palette := opts.Palette
	if palette == nil {
		palette = p.Palette
	}

	groups := p.heatGroups()
	sizes := make([]int, len(groups))
	groupColors := make([]string, len(groups))
	groupLabels := make([]string, len(groups))
	for i, g := range groups {
		hex, err := groupColor(p, g, palette)
		if err != nil {
			return nil, err
		}
		sizes[i] = g.Count
		groupColors[i] = hex
		groupLabels[i] = g.Label
	}

	block := make([][]float64, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < end {
			return nil, &OutOfRangeError{Dataset: p.ID, Need: end, Got: len(row)}
		}
		vals := make([]float64, p.Columns)
		copy(vals, row[start:end])
		if opts.Normalize {
			normalizeRow(vals)
		}
		block = append(block, vals)
		if i < len(symbols) {
			labels = append(labels, symbols[i])
		} else {
			labels = append(labels, "")
		}
	}

	if len(block) == 0 {
		block = placeholderBlock(p.Columns)
		labels = []string{"not found", "not found"}
	}

	return &HeatmapSpec{
		Block:         block,
		RowLabels:     labels,
		GroupSizes:    sizes,
		GroupColors:   groupColors,
		GroupLabels:   groupLabels,
		GroupRotation: p.GroupRotation,
		CbarLabel:     cbarLabel(p, opts),
	}, nil
}

func groupColor(p *Profile, g Group, palette map[string]string) (string, error) {
	hex, ok := palette[g.Key]
	if !ok {
		return "", &MissingColorKeyError{Dataset: p.ID, Key: g.Key}
	}
	if _, err := colorful.Hex(hex); err != nil {
		return "", fmt.Errorf("dataset %s: color %q for key %q: %w", p.ID, hex, g.Key, err)
	}
	return hex, nil
}

func barPositions(p *Profile) []float64 {
	positions := make([]float64, 0, p.Columns)
	x := p.BarStart
	for gi, g := range p.Groups {
		if gi > 0 {
			x += p.GroupGap
		}
		for i := 0; i < g.Count; i++ {
			positions = append(positions, x)
			x++
		}
	}
	return positions
}

// groupTicks places one tick at the midpoint of each group's bar span.
func groupTicks(p *Profile, positions []float64) ([]float64, []string) {
	ticks := make([]float64, len(p.Groups))
	labels := make([]string, len(p.Groups))
	i := 0
	for gi, g := range p.Groups {
		first := positions[i]
		last := positions[i+g.Count-1]
		ticks[gi] = (first + last) / 2
		labels[gi] = g.Label
		i += g.Count
	}
	return ticks, labels
}

// normalizeRow divides in place by the row maximum. All-zero (or
// non-positive) rows are left untouched.
func normalizeRow(vals []float64) {
	max := 0.0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	for i := range vals {
		vals[i] /= max
	}
}

func placeholderBlock(columns int) [][]float64 {
	block := make([][]float64, 2)
	for r := range block {
		block[r] = make([]float64, columns)
		for c := range block[r] {
			block[r][c] = 1
		}
	}
	return block
}

func cbarLabel(p *Profile, opts HeatmapOptions) string {
	label := p.CbarLabel
	if opts.Percent {
		label = p.CbarPctLabel
	}
	if opts.Normalize {
		if p.CbarNormLabel != "" && !opts.Percent {
			return p.CbarNormLabel
		}
		return "norm. " + label
	}
	return label
}
