// Package dem holds in-memory elevation grids and turns them into
// 8-bit intensity maps.
package dem

import "fmt"

// Grid is a single-band elevation raster, row-major. Values are kept
// as float32, the working precision of the conversion. NoData, when
// set, is the sentinel marking cells without a measurement.
type Grid struct {
	Rows, Cols int
	Data       []float32
	NoData     *float64
}

// NewGrid allocates a zero-filled rows×cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows: rows,
		Cols: cols,
		Data: make([]float32, rows*cols),
	}
}

// GridFromData wraps an existing row-major slice, checking that it
// matches the announced dimensions.
func GridFromData(rows, cols int, data []float32) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", cols, rows)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("grid data holds %d cells, want %d", len(data), rows*cols)
	}
	return &Grid{Rows: rows, Cols: cols, Data: data}, nil
}

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) float32 {
	return g.Data[r*g.Cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float32) {
	g.Data[r*g.Cols+c] = v
}

// IntensityGrid is the result of normalizing a Grid: one byte per
// cell, row-major, same dimensions as the source. Values always lie
// in [0, 255].
type IntensityGrid struct {
	Rows, Cols int
	Pix        []uint8
}

// NewIntensityGrid allocates a rows×cols intensity grid.
func NewIntensityGrid(rows, cols int) *IntensityGrid {
	return &IntensityGrid{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols),
	}
}

// At returns the intensity at row r, column c.
func (g *IntensityGrid) At(r, c int) uint8 {
	return g.Pix[r*g.Cols+c]
}
