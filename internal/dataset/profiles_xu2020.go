package dataset

// Xu et al. 2020 retinal development: 80 cluster columns, one group per
// cluster, sampled at 24h/36h/48h/72h/336h. Cluster names double as both
// group keys and labels.

var xu2020Clusters = []string{
	"RPC24h_prim", "RPC24h", "RPC24h_D", "RPC24h_V", "RPC24h_T", "RPC24h_N", "RPC24h_neuro",
	"RPC36h_prim", "RPC36h", "RPC36h_D", "RPC36h_V", "RPC36h_T", "RPC36h_N", "RPC36h_hc", "RPC36h_neuro",
	"RPC48h_prim", "RPC48h", "RPC48h_neuro", "RPC48h_neuroMix", "RPC48h_rgc", "RPC48h_MG", "PRPC48h", "Photo48h",
	"HC48h", "BC48h", "BC48h_on", "BC48h_off", "AC48h", "AC48h_gaba", "AC48h_sac", "RGC48h",
	"RPC72h_prim", "RPC72h_neuro", "RPC72h_bc", "RPC72h_rgc", "PRPC72h", "Rod72h_early", "Rod72h", "Cone72h_early",
	"Cone72h_earlyL", "Cone72h", "Cone72h_UV", "Cone72h_S", "Cone72h_M", "Cone72h_L", "Cone72h_lateL", "HC72h_early",
	"HC72h", "HC72h_H1", "HC72h_H2H3", "BC72h_on", "AC72h", "AC72h_gly", "AC72h_gaba", "AC72h_sac", "RGC72h", "MG72h",
	"RPC336h_prim", "RPC336h_neuro", "RPC336h_bc", "RPC336h_ac", "RPC336h_rgc", "PRPC336h", "Rod336h", "Cone336h",
	"Cone336h_U", "Cone336h_S", "Cone336h_M", "Cone336h_L", "Cone336h_lateL", "HC336h", "BC336h_on", "BC336h_off",
	"AC336h_gaba", "AC336h_gly", "AC336h_ngng", "AC336h_sac", "AC336h_dac", "RGC336h", "MG336h",
}

func singletonGroups(names []string) []Group {
	groups := make([]Group, len(names))
	for i, name := range names {
		groups[i] = Group{Key: name, Label: name, Count: 1}
	}
	return groups
}

var xu2020RetDev = &Profile{
	ID:       "xu2020retdev",
	Name:     "Zebrafish retinal development clusters (Xu et al. 2020)",
	Citation: "https://doi.org/10.1242/dev.185660",
	RawStart: 2,
	Columns:  80,
	// The published table's percent block sits one column apart between
	// the bar and heatmap exports; both offsets are kept.
	PctDelta:      82,
	HeatPctDelta:  81,
	BarStart:      1,
	Unit:          "avg. counts",
	PctUnit:       "% expressing",
	CbarLabel:     "avg.",
	CbarPctLabel:  "%",
	TickRotation:  45,
	GroupRotation: 45,
	Groups:        singletonGroups(xu2020Clusters),
	Palette: map[string]string{
		"RPC24h_prim":     "#E9E9E9",
		"RPC24h":          "#D2D2D2",
		"RPC24h_D":        "#D2B6AF",
		"RPC24h_V":        "#AFAFD2",
		"RPC24h_T":        "#AFD2B0",
		"RPC24h_N":        "#D2D1AF",
		"RPC24h_neuro":    "#F5E5E8",
		"RPC36h_prim":     "#E9E9E9",
		"RPC36h":          "#D2D2D2",
		"RPC36h_D":        "#D2B6AF",
		"RPC36h_V":        "#AFAFD2",
		"RPC36h_T":        "#AFD2B0",
		"RPC36h_N":        "#D2D1AF",
		"RPC36h_hc":       "#C5B39D",
		"RPC36h_neuro":    "#F5E5E8",
		"RPC48h_prim":     "#E9E9E9",
		"RPC48h":          "#D2D2D2",
		"RPC48h_neuro":    "#F5E5E8",
		"RPC48h_neuroMix": "#F5E5E8",
		"RPC48h_rgc":      "#EA9D81",
		"RPC48h_MG":       "#F5CCD2",
		"PRPC48h":         "#dfdac8",
		"Photo48h":        "#dacd9a",
		"HC48h":           "#FCCAA5",
		"BC48h":           "#7DAAAF",
		"BC48h_on":        "#8398B1",
		"BC48h_off":       "#B16D8A",
		"AC48h":           "#95F5C1",
		"AC48h_gaba":      "#91F5DA",
		"AC48h_sac":       "#78AD93",
		"RGC48h":          "#F53D59",
		"RPC72h_prim":     "#E9E9E9",
		"RPC72h_neuro":    "#F5E5E8",
		"RPC72h_bc":       "#CCF2FF",
		"RPC72h_rgc":      "#F5CCD2",
		"PRPC72h":         "#DFDAC8",
		"Rod72h_early":    "#A3A3A3",
		"Rod72h":          "#7D7D7D",
		"Cone72h_early":   "#DACD9A",
		"Cone72h_earlyL":  "#D69F9E",
		"Cone72h":         "#DCC360",
		"Cone72h_UV":      "#B778B9",
		"Cone72h_S":       "#7183CC",
		"Cone72h_M":       "#57CB69",
		"Cone72h_L":       "#C67271",
		"Cone72h_lateL":   "#CE524F",
		"HC72h_early":     "#FCCBA8",
		"HC72h":           "#FCA668",
		"HC72h_H1":        "#C59965",
		"HC72h_H2H3":      "#F7909C",
		"BC72h_on":        "#8398B1",
		"AC72h":           "#3DF591",
		"AC72h_gly":       "#91F5DA",
		"AC72h_gaba":      "#95F5C1",
		"AC72h_sac":       "#78AD93",
		"RGC72h":          "#F53D59",
		"MG72h":           "#EA9D81",
		"RPC336h_prim":    "#E9E9E9",
		"RPC336h_neuro":   "#F5E5E8",
		"RPC336h_bc":      "#CCF2FF",
		"RPC336h_ac":      "#B5F5D2",
		"RPC336h_rgc":     "#F5CCD2",
		"PRPC336h":        "#DFDAC8",
		"Rod336h":         "#7D7D7D",
		"Cone336h":        "#FFD429",
		"Cone336h_U":      "#B778B9",
		"Cone336h_S":      "#7183CC",
		"Cone336h_M":      "#57CB69",
		"Cone336h_L":      "#C67271",
		"Cone336h_lateL":  "#CE524F",
		"HC336h":          "#FCA668",
		"BC336h_on":       "#8398B1",
		"BC336h_off":      "#B16D8A",
		"AC336h_gaba":     "#3DF5C3",
		"AC336h_gly":      "#56F53D",
		"AC336h_ngng":     "#89AC25",
		"AC336h_sac":      "#78AD93",
		"AC336h_dac":      "#A4D1D8",
		"RGC336h":         "#F53D59",
		"MG336h":          "#EA9D81",
	},
}
