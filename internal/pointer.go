package internal

import "math"

// Nearest returns the index of the point whose x, rescaled from the logical
// width to the rendered width, is closest to offsetX. Ties go to the lowest
// index.
func Nearest(points []Point, logicalWidth, offsetX, renderedWidth float64) int {
	closest := 0
	minDist := math.Inf(1)
	for i, p := range points {
		screenX := p.X / logicalWidth * renderedWidth
		dist := math.Abs(screenX - offsetX)
		if dist < minDist {
			minDist = dist
			closest = i
		}
	}
	return closest
}

// Box is the on-screen rectangle a chart is rendered into.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Tracker holds the highlighted sample of one chart.
type Tracker struct {
	series   Series
	geometry Geometry
	active   int
	inside   bool
}

func NewTracker(series Series, geometry Geometry) *Tracker {
	return &Tracker{
		series:   series,
		geometry: geometry,
		active:   series.LastIndex(),
	}
}

// Move selects the sample nearest to a pointer offset measured from the
// left edge of the rendered chart box.
func (t *Tracker) Move(offsetX, renderedWidth float64) int {
	t.active = Nearest(t.geometry.Points, t.geometry.Canvas.Width, offsetX, renderedWidth)
	return t.active
}

// Leave resets the selection to the latest sample.
func (t *Tracker) Leave() int {
	t.active = t.series.LastIndex()
	return t.active
}

// Pointer feeds a cursor position in screen coordinates. Inside box it acts
// as Move; the first position outside box after being inside acts as Leave.
func (t *Tracker) Pointer(x, y float64, box Box) int {
	if box.W > 0 && box.Contains(x, y) {
		t.inside = true
		return t.Move(x-box.X, box.W)
	}
	if t.inside {
		t.inside = false
		return t.Leave()
	}
	return t.active
}

func (t *Tracker) Index() int { return t.active }

func (t *Tracker) Active() (int, Sample, Point) {
	return t.active, t.series[t.active], t.geometry.Points[t.active]
}
