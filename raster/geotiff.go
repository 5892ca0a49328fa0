// Package raster loads elevation grids from GDAL-readable files,
// GeoTIFF DEMs in particular.
package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"

	"github.com/oureatools/ourea/dem"
)

func init() {
	godal.RegisterAll()
}

// Reader reads elevation grids through GDAL.
type Reader struct{}

// ReadGrid opens the raster at path and reads its first band into a
// float32 grid, carrying the band's no-data value when one is
// declared. Additional bands are ignored.
func (Reader) ReadGrid(path string) (*dem.Grid, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	st := ds.Structure()
	if st.NBands == 0 {
		return nil, fmt.Errorf("%s: raster has no bands", path)
	}
	band := ds.Bands()[0]

	g := dem.NewGrid(st.SizeY, st.SizeX)
	if err := band.Read(0, 0, g.Data, st.SizeX, st.SizeY); err != nil {
		return nil, err
	}
	if nd, ok := band.NoData(); ok {
		g.NoData = &nd
	}
	return g, nil
}
