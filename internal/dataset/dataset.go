// Package dataset maps published retinal RNA-seq dataset layouts onto
// renderable chart specs. Each supported publication is described by a
// constant Profile (column offsets, cell-type groups, default palette);
// the resolve functions in adapter.go turn a table row plus a Profile
// into a BarSpec or HeatmapSpec.
package dataset

import (
	"errors"
	"fmt"
)

// Group is a named, colored partition of a profile's value columns.
// Key selects the color from the active palette; Count is the number of
// consecutive columns the group spans.
type Group struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Profile is the constant per-publication configuration. Profiles are
// created at init and never mutated.
type Profile struct {
	ID       string
	Name     string
	Citation string

	// RawStart is the first value column of the raw expression block.
	// Columns is the number of value columns; the percent-expressing
	// block (if any) starts at RawStart+PctDelta.
	RawStart int
	Columns  int
	PctDelta int
	// HeatPctDelta overrides PctDelta for heatmaps when nonzero.
	HeatPctDelta int

	// Bar geometry: the first bar sits at BarStart, bars within a group
	// are 1 apart, and consecutive groups are separated by GroupGap.
	BarStart float64
	GroupGap float64

	// Unit strings for axis and colorbar labels.
	Unit          string
	PctUnit       string
	CbarLabel     string
	CbarPctLabel  string
	CbarNormLabel string // overrides the "norm. " prefix form when set

	TickRotation  float64 // bar x-tick label rotation, degrees
	GroupRotation float64 // heatmap group label rotation, degrees

	Groups []Group
	// HeatGroups overrides Groups for heatmaps when the published figures
	// label (or color) heatmap groups differently; nil means Groups.
	HeatGroups []Group

	Palette map[string]string // default hex color per group key
}

// HasPercent reports whether the profile carries a percent-expressing block.
func (p *Profile) HasPercent() bool {
	return p.PctDelta != 0
}

// MaxColumn returns the exclusive upper column index a row must provide
// for the selected block.
func (p *Profile) MaxColumn(percent bool) int {
	return p.start(percent, false) + p.Columns
}

func (p *Profile) start(percent, heatmap bool) int {
	s := p.RawStart
	if !percent {
		return s
	}
	if heatmap && p.HeatPctDelta != 0 {
		return s + p.HeatPctDelta
	}
	return s + p.PctDelta
}

func (p *Profile) heatGroups() []Group {
	if p.HeatGroups != nil {
		return p.HeatGroups
	}
	return p.Groups
}

// ErrNoPercentBlock is returned when the percent-expressing variant is
// requested for a profile that has no percent block.
var ErrNoPercentBlock = errors.New("dataset: profile has no percent-expressing block")

// OutOfRangeError indicates a row with fewer columns than the profile's
// configured block requires.
type OutOfRangeError struct {
	Dataset string
	Need    int
	Got     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dataset %s: row has %d columns, need at least %d", e.Dataset, e.Got, e.Need)
}

// MissingColorKeyError indicates a caller-supplied palette without an
// entry for a group key the profile references.
type MissingColorKeyError struct {
	Dataset string
	Key     string
}

func (e *MissingColorKeyError) Error() string {
	return fmt.Sprintf("dataset %s: palette is missing color key %q", e.Dataset, e.Key)
}

// ShapeMismatchError indicates a resolved spec whose color sequence does
// not match its value sequence. Structurally unreachable through the
// resolve functions; checked again before drawing.
type ShapeMismatchError struct {
	Values int
	Colors int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("spec shape mismatch: %d values, %d colors", e.Values, e.Colors)
}
