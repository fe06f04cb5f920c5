package dataset

// Default palettes and column layouts follow the published figures for
// each dataset. Several palettes knowingly reuse one hex for distinct
// groups (sun2018 fills "notRods" with the m4 yellow, hoang2020 colors
// both M1 and M3 with the M green); these are kept as literal constants.

var photoreceptorPalette = map[string]string{
	"r":     "#747474",
	"u":     "#B540B7",
	"s":     "#4669F2",
	"m":     "#04CD22",
	"l":     "#CC2C2A",
	"m4":    "#cdcd04",
	"onBC":  "#ccf2ff",
	"offBC": "#663d00",
}

// Profiles lists every supported dataset in presentation order.
var Profiles = []*Profile{
	angueyra2021,
	ogawa2021,
	hoang2020,
	sun2018,
	hoang2020Ret,
	hoang2020PhotoDev,
	hoang2020PhotoDevLR,
	xu2020RetDev,
	nerli2022,
	yoshimatsu2020,
}

var profileIndex = func() map[string]*Profile {
	m := make(map[string]*Profile, len(Profiles))
	for _, p := range Profiles {
		m[p.ID] = p
	}
	return m
}()

// ByID returns the profile with the given ID.
func ByID(id string) (*Profile, bool) {
	p, ok := profileIndex[id]
	return p, ok
}

// IDs returns all profile IDs in presentation order.
func IDs() []string {
	ids := make([]string, len(Profiles))
	for i, p := range Profiles {
		ids[i] = p.ID
	}
	return ids
}

var angueyra2021 = &Profile{
	ID:        "angueyra2021",
	Name:      "Adult zebrafish photoreceptors (Angueyra et al. 2021)",
	Citation:  "https://doi.org/10.7554/eLife.63257",
	RawStart:  7,
	Columns:   30,
	BarStart:  1,
	GroupGap:  1,
	Unit:      "FPKM",
	CbarLabel: "FPKM",
	Groups: []Group{
		{Key: "r", Label: "Rods", Count: 6},
		{Key: "u", Label: "UV", Count: 5},
		{Key: "s", Label: "S", Count: 6},
		{Key: "m", Label: "M", Count: 7},
		{Key: "l", Label: "L", Count: 6},
	},
	Palette: photoreceptorPalette,
}

var ogawa2021 = &Profile{
	ID:           "ogawa2021",
	Name:         "Zebrafish photoreceptors and bipolar cells (Ogawa et al. 2021)",
	Citation:     "https://doi.org/10.1038/s41598-021-96837-z",
	RawStart:     2,
	Columns:      8,
	PctDelta:     9,
	BarStart:     1,
	Unit:         "avg. counts",
	PctUnit:      "% expressing",
	CbarLabel:    "avg.",
	CbarPctLabel: "%",
	TickRotation: 45,
	Groups: []Group{
		{Key: "r", Label: "Rods", Count: 1},
		{Key: "u", Label: "UV", Count: 1},
		{Key: "s", Label: "S", Count: 1},
		{Key: "m", Label: "M", Count: 1},
		{Key: "l", Label: "L", Count: 1},
		{Key: "m4", Label: "M4", Count: 1},
		{Key: "onBC", Label: "BC$_{on}$", Count: 1},
		{Key: "offBC", Label: "BC$_{off}$", Count: 1},
	},
	HeatGroups: []Group{
		{Key: "r", Label: "Rods", Count: 1},
		{Key: "u", Label: "UV", Count: 1},
		{Key: "s", Label: "S", Count: 1},
		{Key: "m", Label: "M", Count: 1},
		{Key: "l", Label: "L", Count: 1},
		{Key: "m4", Label: "M4", Count: 1},
		{Key: "onBC", Label: "B$_{on}$", Count: 1},
		{Key: "offBC", Label: "B$_{off}$", Count: 1},
	},
	Palette: photoreceptorPalette,
}

var hoang2020 = &Profile{
	ID:           "hoang2020",
	Name:         "Zebrafish photoreceptor subtypes (Hoang et al. 2020)",
	Citation:     "https://doi.org/10.1126/science.abb8598",
	RawStart:     2,
	Columns:      7,
	PctDelta:     8,
	BarStart:     1,
	Unit:         "avg. counts",
	PctUnit:      "% expressing",
	CbarLabel:    "avg.",
	CbarPctLabel: "%",
	TickRotation: 45,
	Groups: []Group{
		{Key: "r", Label: "Rods", Count: 1},
		{Key: "u", Label: "UV", Count: 1},
		{Key: "s", Label: "S", Count: 1},
		{Key: "m", Label: "M1", Count: 1},
		{Key: "m", Label: "M3", Count: 1},
		{Key: "m4", Label: "M4", Count: 1},
		{Key: "l", Label: "L", Count: 1},
	},
	HeatGroups: []Group{
		{Key: "r", Label: "Rods", Count: 1},
		{Key: "u", Label: "UV", Count: 1},
		{Key: "s", Label: "S", Count: 1},
		{Key: "m", Label: "M", Count: 1},
		{Key: "m", Label: "M3", Count: 1},
		{Key: "m4", Label: "M4", Count: 1},
		{Key: "l", Label: "L", Count: 1},
	},
	Palette: photoreceptorPalette,
}

var sun2018 = &Profile{
	ID:        "sun2018",
	Name:      "Zebrafish rods vs. non-rods (Sun, Galicia and Stenkamp 2018)",
	Citation:  "https://doi.org/10.1186/s12864-018-4499-y",
	RawStart:  7,
	Columns:   8,
	BarStart:  1,
	GroupGap:  1,
	Unit:      "cpm",
	CbarLabel: "cpm",
	Groups: []Group{
		{Key: "r", Label: "Rods", Count: 4},
		{Key: "m4", Label: "notRods", Count: 4},
	},
	Palette: photoreceptorPalette,
}

var hoang2020Ret = &Profile{
	ID:            "hoang2020ret",
	Name:          "Zebrafish whole retina (Hoang et al. 2020)",
	Citation:      "https://doi.org/10.1126/science.abb8598",
	RawStart:      2,
	Columns:       17,
	PctDelta:      19,
	BarStart:      1,
	Unit:          "avg. counts",
	PctUnit:       "% expressing",
	CbarLabel:     "avg.",
	CbarPctLabel:  "%",
	TickRotation:  45,
	GroupRotation: 45,
	Groups: []Group{
		{Key: "RPC", Label: "RPC", Count: 1},
		{Key: "PRPC", Label: "PRPC", Count: 1},
		{Key: "Cones_larval", Label: "C$_{larval}$", Count: 1},
		{Key: "Cones_adult", Label: "C$_{adult}$", Count: 1},
		{Key: "Rods", Label: "R$_{ods}$", Count: 1},
		{Key: "HC", Label: "HC", Count: 1},
		{Key: "BC_larval", Label: "BC$_{larval}$", Count: 1},
		{Key: "BC_adult", Label: "BC$_{adult}$", Count: 1},
		{Key: "AC_larval", Label: "AC$_{larval}$", Count: 1},
		{Key: "ACgaba", Label: "AC$_{GABA}$", Count: 1},
		{Key: "ACgly", Label: "AC$_{Gly}$", Count: 1},
		{Key: "RGC_larval", Label: "RGC$_{larval}$", Count: 1},
		{Key: "RGC_adult", Label: "RGC$_{adult}$", Count: 1},
		{Key: "MGi", Label: "MGi", Count: 1},
		{Key: "MG1", Label: "MG1", Count: 1},
		{Key: "MG2", Label: "MG2", Count: 1},
		{Key: "MG3", Label: "MG3", Count: 1},
	},
	Palette: map[string]string{
		"RPC":          "#DADADA",
		"PRPC":         "#dfdac8",
		"Cones_larval": "#dcc360",
		"Cones_adult":  "#ffd429",
		"Rods":         "#7d7d7d",
		"HC":           "#FC7715",
		"BC_larval":    "#ccf2ff",
		"BC_adult":     "#1B98C3",
		"AC_larval":    "#3DF591",
		"ACgaba":       "#3DF5C3",
		"ACgly":        "#56F53D",
		"RGC_larval":   "#F53D59",
		"RGC_adult":    "#BB0622",
		"MGi":          "#EA9D81",
		"MG1":          "#A2644E",
		"MG2":          "#7E4835",
		"MG3":          "#613728",
	},
}

var hoang2020PhotoDev = &Profile{
	ID:            "hoang2020photodev",
	Name:          "Developing zebrafish photoreceptors (Hoang et al. 2020)",
	Citation:      "https://doi.org/10.1126/science.abb8598",
	RawStart:      2,
	Columns:       7,
	PctDelta:      8,
	BarStart:      1,
	Unit:          "avg. counts",
	PctUnit:       "% expressing",
	CbarLabel:     "avg.",
	CbarPctLabel:  "%",
	TickRotation:  45,
	GroupRotation: 45,
	Groups: []Group{
		{Key: "RPC", Label: "RPC", Count: 1},
		{Key: "PRP", Label: "PRPC", Count: 1},
		{Key: "Cle", Label: "Cone$_{larval-early}$", Count: 1},
		{Key: "Clm", Label: "Cone$_{larval-mid}$", Count: 1},
		{Key: "Cll", Label: "Cone$_{larval-late}$", Count: 1},
		{Key: "C", Label: "Cone", Count: 1},
		{Key: "R", Label: "Rod", Count: 1},
	},
	HeatGroups: []Group{
		{Key: "RPC", Label: "RPC", Count: 1},
		{Key: "PRP", Label: "PRP", Count: 1},
		{Key: "Cle", Label: "Cone$_{larval-early}$", Count: 1},
		{Key: "Clm", Label: "Cone$_{larval-mid}$", Count: 1},
		{Key: "Cll", Label: "Cone$_{larval-late}$", Count: 1},
		{Key: "C", Label: "Cone", Count: 1},
		{Key: "R", Label: "Rod", Count: 1},
	},
	Palette: map[string]string{
		"RPC": "#DADADA",
		"PRP": "#dfdac8",
		"Cle": "#dacd9a",
		"Clm": "#dcc360",
		"Cll": "#cca819",
		"C":   "#ffd429",
		"R":   "#7d7d7d",
	},
}

var hoang2020PhotoDevLR = &Profile{
	ID:            "hoang2020photodevlr",
	Name:          "Developing zebrafish photoreceptors incl. larval rods (Hoang et al. 2020)",
	Citation:      "https://doi.org/10.1126/science.abb8598",
	RawStart:      2,
	Columns:       8,
	PctDelta:      9,
	BarStart:      1,
	Unit:          "avg. counts",
	PctUnit:       "% expressing",
	CbarLabel:     "avg.",
	CbarPctLabel:  "%",
	TickRotation:  45,
	GroupRotation: 45,
	Groups: []Group{
		{Key: "RPC", Label: "RPC", Count: 1},
		{Key: "PRP", Label: "PRPC", Count: 1},
		{Key: "Cle", Label: "Cone$_{larval-early}$", Count: 1},
		{Key: "Clm", Label: "Cone$_{larval-mid}$", Count: 1},
		{Key: "Cll", Label: "Cone$_{larval-late}$", Count: 1},
		{Key: "C", Label: "Cone", Count: 1},
		{Key: "Rll", Label: "Rod$_{larval-late}$", Count: 1},
		{Key: "R", Label: "Rod", Count: 1},
	},
	Palette: map[string]string{
		"RPC": "#DADADA",
		"PRP": "#dfdac8",
		"Cle": "#dacd9a",
		"Clm": "#dcc360",
		"Cll": "#cca819",
		"C":   "#ffd429",
		"Rll": "#a3a3a3",
		"R":   "#7d7d7d",
	},
}

var nerli2022 = &Profile{
	ID:            "nerli2022",
	Name:          "Zebrafish retinal lineages (Nerli et al. 2022)",
	Citation:      "https://doi.org/10.7554/eLife.78646",
	RawStart:      1,
	Columns:       20,
	BarStart:      0,
	GroupGap:      0.5,
	Unit:          "counts (norm.)",
	CbarLabel:     "Counts (norm.)",
	CbarNormLabel: "norm. FPKM",
	Groups: []Group{
		{Key: "RPC", Label: "RPC", Count: 5},
		{Key: "PR", Label: "Photo", Count: 5},
		{Key: "HC_AC", Label: "HC/AC", Count: 5},
		{Key: "RGC", Label: "RGC", Count: 5},
	},
	Palette: map[string]string{
		"RPC":   "#DADADA",
		"PR":    "#dcc360",
		"HC_AC": "#3DF591",
		"RGC":   "#F53D59",
	},
}

var yoshimatsu2020 = &Profile{
	ID:        "yoshimatsu2020",
	Name:      "Zebrafish UV cones by retinal zone (Yoshimatsu et al. 2020)",
	Citation:  "https://doi.org/10.1016/j.neuron.2020.04.021",
	RawStart:  1,
	Columns:   8,
	BarStart:  1,
	GroupGap:  1,
	Unit:      "cpm",
	CbarLabel: "cpm",
	Groups: []Group{
		{Key: "u2", Label: "UV$_{non-sz}$", Count: 4},
		{Key: "u", Label: "UV$_{sz}$", Count: 4},
	},
	Palette: map[string]string{
		"u":  "#B540B7",
		"u2": "#B789A7",
	},
}
