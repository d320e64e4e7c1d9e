package internal

import (
	"strconv"
	"strings"
)

// Canvas is the fixed logical drawing area of the chart.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	PadX   float64 `yaml:"padding_x"`
	PadY   float64 `yaml:"padding_y"`
}

var DefaultCanvas = Canvas{Width: 400, Height: 200, PadX: 20, PadY: 20}

type Point struct {
	X float64
	Y float64
}

// Geometry is a series projected onto a canvas.
type Geometry struct {
	Canvas Canvas
	Points []Point
	Min    float64
	Max    float64
	Range  float64
}

// Project maps every sample to canvas coordinates. The price axis is
// inverted so that a higher price gets a smaller y.
func Project(series Series, canvas Canvas) Geometry {
	min, max := series.MinMax()
	priceRange := max - min
	if priceRange == 0 {
		priceRange = 1
	}

	steps := float64(len(series) - 1)
	if steps < 1 {
		steps = 1
	}

	innerW := canvas.Width - 2*canvas.PadX
	innerH := canvas.Height - 2*canvas.PadY

	points := make([]Point, len(series))
	for i, s := range series {
		points[i] = Point{
			X: canvas.PadX + (float64(i)/steps)*innerW,
			Y: canvas.Height - (canvas.PadY + ((s.Price-min)/priceRange)*innerH),
		}
	}

	return Geometry{
		Canvas: canvas,
		Points: points,
		Min:    min,
		Max:    max,
		Range:  priceRange,
	}
}

// PathData renders the polyline as an SVG path description.
func (g Geometry) PathData() string {
	var b strings.Builder
	for i, p := range g.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String()
}

// Scale converts a logical point into a rectangle of w x h device pixels
// whose top-left corner is (originX, originY). The aspect ratio is not kept.
func (g Geometry) Scale(p Point, originX, originY, w, h float64) (float64, float64) {
	return originX + p.X/g.Canvas.Width*w, originY + p.Y/g.Canvas.Height*h
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
