package imp

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []uint8{0, 85, 170, 255})
	return img
}

func TestSaveReadPNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heightmap.png")
	require.NoError(t, Save(path, testImage()))

	img, err := ReadFile(path)
	require.NoError(t, err)

	gray := ToGray(img)
	assert.Equal(t, []uint8{0, 85, 170, 255}, gray.Pix)
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heightmap.jpg")
	require.NoError(t, Save(path, testImage()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heightmap.bmp")
	err := Save(path, testImage())
	assert.ErrorContains(t, err, "unknown extention")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sink.png")
	require.NoError(t, FileSink{}.Save(path, testImage()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
