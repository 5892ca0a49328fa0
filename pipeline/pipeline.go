// Package pipeline drives one raster-to-heightmap conversion from
// read to save.
package pipeline

import (
	"image"
	"io"
	"math"

	"github.com/oureatools/ourea/dem"
	"github.com/oureatools/ourea/imp"
	"github.com/oureatools/ourea/models"
	"github.com/oureatools/ourea/report"
)

// RasterSource loads elevation grids.
type RasterSource interface {
	ReadGrid(path string) (*dem.Grid, error)
}

// ImageSink persists rendered heightmaps.
type ImageSink interface {
	Save(path string, img image.Image) error
}

// Recorder keeps track of finished conversions.
type Recorder interface {
	Record(c *models.Conversion) error
}

// Converter turns one elevation raster into one grayscale heightmap.
// The steps run strictly in order and the first error aborts the run.
type Converter struct {
	Source  RasterSource
	Sink    ImageSink
	Catalog Recorder // optional
	MaxSize int      // bound on the output's larger side, 0 keeps full size
	Out     io.Writer
}

// Run reads the raster at inputPath, prints its statistics, and
// writes the normalized heightmap to outputPath.
func (c *Converter) Run(inputPath, outputPath string) error {
	grid, err := c.Source.ReadGrid(inputPath)
	if err != nil {
		return err
	}

	stats, intensities := dem.Normalize(grid)
	report.PrintStats(c.Out, stats)
	if stats.Flat() {
		report.PrintFlatWarning(c.Out)
	}

	img := imp.Render(intensities)
	if c.MaxSize > 0 {
		img = imp.Shrink(img, c.MaxSize)
	}
	if err := c.Sink.Save(outputPath, img); err != nil {
		return err
	}
	report.PrintSaved(c.Out, outputPath)

	if c.Catalog != nil {
		rec := &models.Conversion{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Width:      grid.Cols,
			Height:     grid.Rows,
			Min:        finiteOrZero(stats.Min),
			Max:        finiteOrZero(stats.Max),
			Mean:       finiteOrZero(stats.Mean),
			StdDev:     finiteOrZero(stats.StdDev),
			Flat:       stats.Flat(),
		}
		if err := c.Catalog.Record(rec); err != nil {
			return err
		}
	}
	return nil
}

// finiteOrZero keeps catalog columns storable: SQLite has no NaN or
// infinity representation.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
