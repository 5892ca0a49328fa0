package dem

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// Tolerances of the degenerate-range test.
const (
	rangeAbsTol = 1e-8
	rangeRelTol = 1e-5
)

// flatGray is the intensity written to every cell when the valid
// range is too narrow to scale.
const flatGray = 128

// Stats summarizes the valid cells of a grid. All four moments are
// NaN when Count is zero. StdDev is the population standard deviation.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Count  int
}

// Range returns Max - Min.
func (s Stats) Range() float64 {
	return s.Max - s.Min
}

// Flat reports whether the grid cannot be scaled: either no cell is
// valid, or the minimum and maximum coincide within tolerance.
func (s Stats) Flat() bool {
	if s.Count == 0 {
		return true
	}
	return scalar.EqualWithinAbsOrRel(s.Min, s.Max, rangeAbsTol, rangeRelTol)
}

// Mask flags the cells carrying a real measurement: NaN cells are
// always excluded, and when the grid declares a no-data sentinel,
// cells exactly equal to it are excluded too.
func Mask(g *Grid) []bool {
	valid := make([]bool, len(g.Data))
	for i, v := range g.Data {
		if math.IsNaN(float64(v)) {
			continue
		}
		if g.NoData != nil && float64(v) == *g.NoData {
			continue
		}
		valid[i] = true
	}
	return valid
}

// ValidValues returns the measurements of the valid cells, promoted
// to float64.
func ValidValues(g *Grid) []float64 {
	return values(g, Mask(g))
}

func values(g *Grid, valid []bool) []float64 {
	vals := make([]float64, 0, len(g.Data))
	for i, v := range g.Data {
		if valid[i] {
			vals = append(vals, float64(v))
		}
	}
	return vals
}

// Summarize computes the statistics of a set of valid measurements.
func Summarize(vals []float64) Stats {
	if len(vals) == 0 {
		nan := math.NaN()
		return Stats{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	return Stats{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.PopStdDev(vals, nil),
		Count:  len(vals),
	}
}

// Normalize maps a grid onto 8-bit intensities and reports the
// statistics of its valid cells. When the valid range is degenerate
// (or no cell is valid at all) every output cell is flatGray and
// Stats.Flat reports true. Otherwise each valid cell is scaled
// linearly so the minimum maps to 0 and the maximum to 255, with
// fractions truncated. Invalid cells scale as NaN. Before the byte
// conversion NaN collapses to 0, +Inf to 1 and -Inf to 0, so the
// function is total over any input.
func Normalize(g *Grid) (Stats, *IntensityGrid) {
	valid := Mask(g)
	stats := Summarize(values(g, valid))
	out := NewIntensityGrid(g.Rows, g.Cols)

	if stats.Flat() {
		for i := range out.Pix {
			out.Pix[i] = flatGray
		}
		return stats, out
	}

	// Scale in float32: the grid's own precision, so boundary cells
	// land exactly on 0 and 255.
	min := float32(stats.Min)
	span := float32(stats.Max) - min
	nan := float32(math.NaN())
	for i, v := range g.Data {
		n := nan
		if valid[i] {
			n = (v - min) / span
		}
		switch {
		case math.IsNaN(float64(n)):
			n = 0
		case math.IsInf(float64(n), 1):
			n = 1
		case math.IsInf(float64(n), -1):
			n = 0
		case n < 0:
			n = 0
		case n > 1:
			n = 1
		}
		out.Pix[i] = uint8(n * 255)
	}
	return stats, out
}
