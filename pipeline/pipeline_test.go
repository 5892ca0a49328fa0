package pipeline

import (
	"bytes"
	"errors"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oureatools/ourea/dem"
	"github.com/oureatools/ourea/models"
)

type fakeSource struct {
	grid *dem.Grid
	err  error
}

func (f fakeSource) ReadGrid(path string) (*dem.Grid, error) {
	return f.grid, f.err
}

type fakeSink struct {
	path  string
	img   image.Image
	err   error
	calls int
}

func (f *fakeSink) Save(path string, img image.Image) error {
	f.calls++
	f.path, f.img = path, img
	return f.err
}

type fakeRecorder struct {
	recs []*models.Conversion
	err  error
}

func (f *fakeRecorder) Record(c *models.Conversion) error {
	f.recs = append(f.recs, c)
	return f.err
}

func testConverter(src RasterSource, sink ImageSink, rec Recorder) (*Converter, *bytes.Buffer) {
	var b bytes.Buffer
	return &Converter{Source: src, Sink: sink, Catalog: rec, Out: &b}, &b
}

func TestRunConvertsAndRecords(t *testing.T) {
	grid := &dem.Grid{Rows: 2, Cols: 2, Data: []float32{1, 2, 3, 4}}
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	conv, out := testConverter(fakeSource{grid: grid}, sink, rec)

	require.NoError(t, conv.Run("dem.tif", "dem.png"))

	assert.Contains(t, out.String(), "=== Data Statistics ===")
	assert.Contains(t, out.String(), "Minimum Value: 1")
	assert.Contains(t, out.String(), "Maximum Value: 4")
	assert.Contains(t, out.String(), "Saved heightmap to dem.png")
	assert.NotContains(t, out.String(), "Warning:")

	assert.Equal(t, "dem.png", sink.path)
	require.NotNil(t, sink.img)
	assert.Equal(t, image.Rect(0, 0, 2, 2), sink.img.Bounds())
	gray, ok := sink.img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 85, 170, 255}, gray.Pix)

	require.Len(t, rec.recs, 1)
	r := rec.recs[0]
	assert.Equal(t, "dem.tif", r.InputPath)
	assert.Equal(t, "dem.png", r.OutputPath)
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, 1.0, r.Min)
	assert.Equal(t, 4.0, r.Max)
	assert.False(t, r.Flat)
}

func TestRunWarnsOnFlatInput(t *testing.T) {
	grid := &dem.Grid{Rows: 2, Cols: 2, Data: []float32{5, 5, 5, 5}}
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	conv, out := testConverter(fakeSource{grid: grid}, sink, rec)

	require.NoError(t, conv.Run("flat.tif", "flat.png"))

	text := out.String()
	warnAt := strings.Index(text, "Warning: The valid data range is zero.")
	savedAt := strings.Index(text, "Saved heightmap to")
	require.GreaterOrEqual(t, warnAt, 0)
	require.GreaterOrEqual(t, savedAt, 0)
	// the warning precedes the save confirmation
	assert.Less(t, warnAt, savedAt)

	gray := sink.img.(*image.Gray)
	assert.Equal(t, []uint8{128, 128, 128, 128}, gray.Pix)
	require.Len(t, rec.recs, 1)
	assert.True(t, rec.recs[0].Flat)
}

func TestRunSanitizesStatsWithoutValidCells(t *testing.T) {
	nd := 0.0
	grid := &dem.Grid{Rows: 1, Cols: 2, Data: []float32{0, float32(math.NaN())}, NoData: &nd}
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	conv, _ := testConverter(fakeSource{grid: grid}, sink, rec)

	require.NoError(t, conv.Run("empty.tif", "empty.png"))

	require.Len(t, rec.recs, 1)
	assert.Equal(t, 0.0, rec.recs[0].Min)
	assert.Equal(t, 0.0, rec.recs[0].Max)
	assert.True(t, rec.recs[0].Flat)
}

func TestRunPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("open dem.tif: no such file or directory")
	sink := &fakeSink{}
	conv, out := testConverter(fakeSource{err: boom}, sink, &fakeRecorder{})

	err := conv.Run("dem.tif", "dem.png")
	assert.Equal(t, boom, err)
	assert.Zero(t, sink.calls)
	assert.Empty(t, out.String())
}

func TestRunPropagatesSinkErrors(t *testing.T) {
	grid := &dem.Grid{Rows: 1, Cols: 2, Data: []float32{1, 2}}
	boom := errors.New("permission denied")
	sink := &fakeSink{err: boom}
	rec := &fakeRecorder{}
	conv, out := testConverter(fakeSource{grid: grid}, sink, rec)

	err := conv.Run("dem.tif", "dem.png")
	assert.Equal(t, boom, err)
	assert.NotContains(t, out.String(), "Saved heightmap")
	assert.Empty(t, rec.recs)
}

func TestRunPropagatesRecorderErrors(t *testing.T) {
	grid := &dem.Grid{Rows: 1, Cols: 2, Data: []float32{1, 2}}
	boom := errors.New("database is locked")
	conv, _ := testConverter(fakeSource{grid: grid}, &fakeSink{}, &fakeRecorder{err: boom})

	assert.Equal(t, boom, conv.Run("dem.tif", "dem.png"))
}

func TestRunWithoutCatalog(t *testing.T) {
	grid := &dem.Grid{Rows: 1, Cols: 2, Data: []float32{1, 2}}
	sink := &fakeSink{}
	conv, _ := testConverter(fakeSource{grid: grid}, sink, nil)

	require.NoError(t, conv.Run("dem.tif", "dem.png"))
	assert.Equal(t, 1, sink.calls)
}

func TestRunShrinksOversizedOutput(t *testing.T) {
	grid := dem.NewGrid(1, 100)
	for i := range grid.Data {
		grid.Data[i] = float32(i)
	}
	sink := &fakeSink{}
	conv, _ := testConverter(fakeSource{grid: grid}, sink, nil)
	conv.MaxSize = 10

	require.NoError(t, conv.Run("dem.tif", "dem.png"))
	assert.Equal(t, 10, sink.img.Bounds().Dx())
	assert.Equal(t, 1, sink.img.Bounds().Dy())
}
