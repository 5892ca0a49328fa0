package models

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

// A Conversion records one raster-to-heightmap run: where the data
// came from, where the image went, and the statistics of the valid
// cells. Statistics are stored as zero for runs without valid data,
// since SQLite cannot hold NaN.
type Conversion struct {
	gorm.Model
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Min        float64
	Max        float64
	Mean       float64
	StdDev     float64
	Flat       bool
}

func (c Conversion) String() string {
	return fmt.Sprintf("%s -> %s (%dx%d)", c.InputPath, c.OutputPath, c.Width, c.Height)
}

// BeforeSave is executed just before a Conversion is saved into the DB
func (c *Conversion) BeforeSave() error {
	if c.InputPath == "" {
		return errors.New("missing input path")
	}
	if c.OutputPath == "" {
		return errors.New("missing output path")
	}
	return nil
}

// Create creates a new conversion record in the DB
func (c *Conversion) Create(db *gorm.DB) error {
	return db.Create(c).Error
}

// ListConversions returns the n most recent conversions, newest first
func ListConversions(db *gorm.DB, n int) (convs []Conversion, err error) {
	err = db.Order("created_at desc").Limit(n).Find(&convs).Error
	return
}
