package internal

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVG(t *testing.T) {
	series := Series{{Time: "a", Price: 100}, {Time: "b", Price: 200}}
	g := Project(series, DefaultCanvas)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g, 0))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `viewBox="0 0 400 200"`)
	assert.Contains(t, out, `d="M 20 180 L 380 20"`)
	assert.Equal(t, 3, strings.Count(out, "<circle "))
	assert.Contains(t, out, `<circle cx="20" cy="180" r="6"`)
}

func TestWriteSVG_NoActive(t *testing.T) {
	g := Project(MockSeries(), DefaultCanvas)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g, -1))
	assert.Equal(t, 7, strings.Count(buf.String(), "<circle "))
}

func TestRenderPNG(t *testing.T) {
	series := MockSeries()

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, series, series.LastIndex(), 800, 400))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestRenderPNG_SingleSample(t *testing.T) {
	series := Series{{Time: "10:00", Price: 42}}

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, series, 0, 800, 400))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
}

func TestRenderPNG_FlatSeries(t *testing.T) {
	series := Series{{Time: "a", Price: 10}, {Time: "b", Price: 10}}

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, series, 1, 400, 200))
}

func TestWriteSVG_SingleSample(t *testing.T) {
	g := Project(Series{{Time: "10:00", Price: 42}}, DefaultCanvas)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g, 0))
	out := buf.String()

	assert.Contains(t, out, `d="M 20 180"`)
	assert.Equal(t, 2, strings.Count(out, "<circle "))
	assert.Contains(t, out, `<circle cx="20" cy="180" r="6"`)
}

func TestExportCharts(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "chart.svg")
	pngPath := filepath.Join(dir, "chart.png")
	series := Series{{Time: "10:00", Price: 42}}

	require.NoError(t, ExportCharts(series, DefaultCanvas, 0, svgPath, pngPath))

	assert.FileExists(t, svgPath)
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestExportCharts_NoPaths(t *testing.T) {
	assert.NoError(t, ExportCharts(MockSeries(), DefaultCanvas, 6, "", ""))
}

func TestWriteReadout(t *testing.T) {
	series := MockSeries()

	var buf bytes.Buffer
	require.NoError(t, WriteReadout(&buf, series, DefaultCanvas, 2))

	want := "Bitcoin BTC / USDT  ↗ 1.97% up\n" +
		"$66,800  Low: $66,800 • High: $68,320\n" +
		"12:00  $66,800\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReadout_Falling(t *testing.T) {
	series := Series{{Time: "a", Price: 200}, {Time: "b", Price: 150}}

	var buf bytes.Buffer
	require.NoError(t, WriteReadout(&buf, series, DefaultCanvas, 1))
	assert.True(t, strings.HasPrefix(buf.String(), "Bitcoin BTC / USDT  ↘ -25.00% down\n"))
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	g := Project(MockSeries(), DefaultCanvas)

	err := ExportFile(path, func(w io.Writer) error { return WriteSVG(w, g, 6) })
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), g.PathData())
}

func TestExportFile_BadPath(t *testing.T) {
	err := ExportFile(filepath.Join(t.TempDir(), "missing", "chart.svg"), func(io.Writer) error { return nil })
	require.Error(t, err)
}
