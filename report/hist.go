package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram renders the distribution of a set of elevation
// measurements and writes it as an image at path. The format follows
// the path's extension.
func SaveHistogram(path string, vals []float64, bins int) error {
	if len(vals) == 0 {
		return errors.New("no valid elevation values to plot")
	}

	p := plot.New()
	p.Title.Text = "Elevation distribution"
	p.X.Label.Text = "Elevation"
	p.Y.Label.Text = "Cells"

	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
