package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	lineStart  = drawing.Color{R: 247, G: 147, B: 26, A: 255}
	lineEnd    = drawing.Color{R: 255, G: 210, B: 90, A: 255}
	pointColor = drawing.Color{R: 230, G: 230, B: 230, A: 255}
)

// WriteSVG writes the chart as a standalone SVG document in canvas units,
// highlighting the sample at active.
func WriteSVG(w io.Writer, geometry Geometry, active int) error {
	c := geometry.Canvas
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" preserveAspectRatio="none">`+"\n",
		formatCoord(c.Width), formatCoord(c.Height))
	printf(`<defs><linearGradient id="lineGradient" x1="0" y1="0" x2="1" y2="0">`)
	printf(`<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`,
		lineStart.String(), lineEnd.String())
	printf("</linearGradient></defs>\n")
	printf(`<path d="%s" fill="none" stroke="url(#lineGradient)" stroke-width="3" stroke-linecap="round"/>`+"\n",
		geometry.PathData())
	for _, p := range geometry.Points {
		printf(`<circle cx="%s" cy="%s" r="3" fill="%s"/>`+"\n", formatCoord(p.X), formatCoord(p.Y), pointColor.String())
	}
	if active >= 0 && active < len(geometry.Points) {
		p := geometry.Points[active]
		printf(`<circle cx="%s" cy="%s" r="6" fill="%s"/>`+"\n", formatCoord(p.X), formatCoord(p.Y), lineEnd.String())
	}
	printf("</svg>\n")

	return errors.Wrap(err, "write svg")
}

// RenderPNG draws a snapshot of the series with go-chart.
func RenderPNG(w io.Writer, series Series, active, width, height int) error {
	n := len(series)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ticks := make([]chart.Tick, n)
	for i, s := range series {
		xs[i] = float64(i)
		ys[i] = s.Price
		ticks[i] = chart.Tick{Value: float64(i), Label: s.Time}
	}

	// go-chart takes its x range from the ticks and needs a non-zero span,
	// so a lone sample is drawn as a flat line across its slot.
	if n == 1 {
		xs = []float64{-0.5, 0.5}
		ys = []float64{ys[0], ys[0]}
		ticks = []chart.Tick{{Value: -0.5}, ticks[0], {Value: 0.5}}
	}

	min, max := series.MinMax()
	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 1
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s %s", AssetName, FormatPercent(PercentChange(series))),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: min - pad, Max: max + pad},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatPrice(f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    AssetSymbol,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 3,
					StrokeColor: lineStart,
					DotWidth:    3,
					DotColor:    pointColor,
				},
			},
		},
	}

	if active >= 0 && active < n {
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    "active",
			XValues: []float64{float64(active)},
			YValues: []float64{series[active].Price},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    6,
				DotColor:    lineEnd,
			},
		})
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "render png")
	}
	return nil
}

// ExportFile creates path and hands it to write.
func ExportFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}
	Log.Infof("Chart exported to %s", path)
	return nil
}

// ExportCharts writes the SVG and PNG snapshots for every non-empty path.
func ExportCharts(series Series, canvas Canvas, active int, svgPath, pngPath string) error {
	if svgPath != "" {
		geometry := Project(series, canvas)
		err := ExportFile(svgPath, func(w io.Writer) error {
			return WriteSVG(w, geometry, active)
		})
		if err != nil {
			return err
		}
	}
	if pngPath != "" {
		err := ExportFile(pngPath, func(w io.Writer) error {
			return RenderPNG(w, series, active, int(canvas.Width)*2, int(canvas.Height)*2)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteReadout prints the chart header, price row and tooltip as text.
func WriteReadout(w io.Writer, series Series, canvas Canvas, active int) error {
	r := NewReadout(series, Project(series, canvas), active)
	_, err := fmt.Fprintf(w, "%s %s  %s %s %s\n%s  %s\n%s  %s\n",
		AssetName, AssetSymbol, r.Trend.Arrow(), r.Change, r.Trend,
		r.Price, r.Range,
		r.Time, r.Price)
	return errors.Wrap(err, "write readout")
}
