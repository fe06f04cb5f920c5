// Package main is a command line renderer for expression charts. It reads
// an expression table, resolves one bar chart or heatmap against a dataset
// profile, and writes the PNG to a file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/retviz/server/internal/dataset"
	"github.com/retviz/server/internal/exprtable"
	"github.com/retviz/server/internal/render"
)

func main() {
	var (
		tablePath = flag.String("table", "", "Path to the expression table (.tsv, .csv, optionally .gz)")
		profileID = flag.String("profile", "", "Dataset profile ID (see -list)")
		genes     = flag.String("genes", "", "Comma-separated gene symbols; one gene draws a bar chart, several draw a heatmap")
		out       = flag.String("out", "chart.png", "Output PNG path")
		percent   = flag.Bool("pct", false, "Use the percent-expressing block instead of raw values")
		normalize = flag.Bool("norm", false, "Normalize each heatmap row by its maximum")
		cmapName  = flag.String("cmap", "bone", "Heatmap colormap")
		fontPath  = flag.String("font", "", "TTF font file for axis text")
		width     = flag.Int("width", 880, "Chart width in pixels")
		height    = flag.Int("height", 620, "Chart height in pixels")
		list      = flag.Bool("list", false, "List known dataset profiles and exit")
	)
	flag.Parse()

	if *list {
		for _, id := range dataset.IDs() {
			p, _ := dataset.ByID(id)
			fmt.Printf("%-24s %s\n", id, p.Name)
		}
		return
	}

	if *tablePath == "" || *profileID == "" || *genes == "" {
		flag.Usage()
		os.Exit(2)
	}

	profile, ok := dataset.ByID(*profileID)
	if !ok {
		log.Fatalf("Unknown profile %q (known: %v)", *profileID, dataset.IDs())
	}

	table, err := exprtable.Load(*tablePath)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}

	renderer, err := render.NewChartRenderer(render.Config{
		Width:           *width,
		Height:          *height,
		FontPath:        *fontPath,
		DefaultColormap: "bone",
	})
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	var symbols []string
	for _, g := range strings.Split(*genes, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			symbols = append(symbols, g)
		}
	}
	if len(symbols) == 0 {
		log.Fatal("No genes given")
	}

	var data []byte
	if len(symbols) == 1 {
		data, err = renderBar(renderer, table, profile, symbols[0], *percent)
	} else {
		data, err = renderHeatmap(renderer, table, profile, symbols, *percent, *normalize, *cmapName)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d bytes)", *out, len(data))
}

func renderBar(r *render.ChartRenderer, table *exprtable.Table, p *dataset.Profile, gene string, percent bool) ([]byte, error) {
	row, ok := table.Lookup(gene)
	if !ok {
		return nil, fmt.Errorf("gene %q not found in table", gene)
	}
	spec, err := dataset.ResolveBarSpec(row.Symbol, row.Values, p, dataset.BarOptions{Percent: percent})
	if err != nil {
		return nil, err
	}
	return r.RenderBarPNG(spec)
}

func renderHeatmap(r *render.ChartRenderer, table *exprtable.Table, p *dataset.Profile, genes []string, percent, normalize bool, cmapName string) ([]byte, error) {
	rows := table.LookupAll(genes)
	symbols := make([]string, len(rows))
	values := make([][]float64, len(rows))
	for i, row := range rows {
		symbols[i] = row.Symbol
		values[i] = row.Values
	}
	spec, err := dataset.ResolveHeatmapSpec(symbols, values, p, dataset.HeatmapOptions{
		Percent:   percent,
		Normalize: normalize,
	})
	if err != nil {
		return nil, err
	}
	return r.RenderHeatmapPNG(spec, cmapName)
}
