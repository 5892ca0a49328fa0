package imp

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Save creates a file and writes an image to it. Image format is decided based
// upon its extention (either "png" or "jpg")
func Save(filename string, img image.Image) error {
	ext := filepath.Ext(filename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".png":
		return png.Encode(f, img)
	case ".jpg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	}

	return fmt.Errorf("unknown extention %v", ext)
}

// FileSink writes images to the local filesystem through Save.
type FileSink struct{}

// Save implements the conversion pipeline's sink.
func (FileSink) Save(filename string, img image.Image) error {
	return Save(filename, img)
}
