package main

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/esset/v2"

	"cryptoinsight/internal"
)

var (
	bgColor       = color.RGBA{15, 17, 23, 255}
	cardColor     = color.RGBA{27, 31, 40, 255}
	textColor     = color.RGBA{235, 235, 235, 255}
	mutedColor    = color.RGBA{140, 146, 160, 255}
	accentColor   = color.RGBA{247, 147, 26, 255}
	accentEnd     = color.RGBA{255, 210, 90, 255}
	upColor       = color.RGBA{22, 199, 132, 255}
	downColor     = color.RGBA{234, 57, 67, 255}
	tagColor      = color.RGBA{40, 46, 60, 255}
	overlayColor  = color.RGBA{10, 11, 15, 255}
	contentDelay  = 200 * time.Millisecond
	contentFade   = 400 * time.Millisecond
	overlayFade   = 300 * time.Millisecond
	spinnerPeriod = 1 * time.Second
)

type Game struct {
	series             internal.Series
	geometry           internal.Geometry
	tracker            *internal.Tracker
	preloader          *internal.Preloader
	fontFace           text.Face
	largeFace          text.Face
	deviceScale        float64
	physicalLineHeight float64
	chartBox           internal.Box
	solidColorImage    *ebiten.Image
}

func NewGame(series internal.Series, canvas internal.Canvas, preloader *internal.Preloader, fontFace, largeFace text.Face, deviceScale float64) *Game {
	geometry := internal.Project(series, canvas)
	return &Game{
		series:             series,
		geometry:           geometry,
		tracker:            internal.NewTracker(series, geometry),
		preloader:          preloader,
		fontFace:           fontFace,
		largeFace:          largeFace,
		deviceScale:        deviceScale,
		physicalLineHeight: baseFontSize * deviceScale * 1.5,
	}
}

func (g *Game) initSolidColorImage() {
	if g.solidColorImage == nil {
		g.solidColorImage = ebiten.NewImage(1, 1)
		g.solidColorImage.Fill(color.White)
	}
}

func (g *Game) Update() error {
	if g.preloader.Loading() {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	prev := g.tracker.Index()
	idx := g.tracker.Pointer(float64(mx), float64(my), g.chartBox)
	if idx != prev {
		internal.Log.Debugf("Active sample %d (%s)", idx, g.series[idx].Time)
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(float64(outsideWidth) * g.deviceScale), int(float64(outsideHeight) * g.deviceScale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.initSolidColorImage()
	screen.Fill(bgColor)

	loading := g.preloader.Loading()
	if !loading {
		since := g.preloader.SinceDone()
		alpha := internal.FadeIn(since, contentDelay, contentFade)
		if alpha > 0 {
			g.drawContent(screen, alpha, 10*g.deviceScale*(1-alpha))
		}
		if overlay := 1 - internal.FadeIn(since, 0, overlayFade); overlay > 0 {
			g.drawPreloader(screen, overlay)
		}
		return
	}
	g.drawPreloader(screen, 1)
}

func (g *Game) drawPreloader(screen *ebiten.Image, alpha float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fade(overlayColor, alpha), false)

	elapsed := g.preloader.SinceStart()
	cx := float64(w) / 2
	cy := float64(h)/2 - 20*g.deviceScale

	appear := internal.FadeIn(elapsed, 0, spinnerPeriod)
	scale := 0.8 + 0.2*appear
	angle := internal.SpinnerAngle(elapsed, spinnerPeriod)
	g.drawCoin(screen, cx, cy, 21*g.deviceScale*scale, angle, alpha*appear)

	msg := "Loading market data…"
	textAlpha := internal.FadeIn(elapsed, contentDelay, overlayFade)
	tw, _ := text.Measure(msg, g.fontFace, 0)
	dy := 10 * g.deviceScale * (1 - textAlpha)
	esset.DrawText(screen, msg, 0, cx-tw/2, cy+35*g.deviceScale+dy, g.fontFace, fade(mutedColor, alpha*textAlpha))
}

// drawCoin draws the round bitcoin mark rotated by angle radians.
func (g *Game) drawCoin(screen *ebiten.Image, cx, cy, r, angle, alpha float64) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), fade(accentColor, alpha), true)

	// Stylised "B": a spine and two bowls, rotated around the centre.
	rot := func(x, y float64) (float32, float32) {
		s, c := math.Sin(angle), math.Cos(angle)
		return float32(cx + x*c - y*s), float32(cy + x*s + y*c)
	}
	stroke := float32(r * 0.14)
	white := fade(color.RGBA{255, 255, 255, 255}, alpha)
	segments := [][4]float64{
		{-0.25, -0.5, -0.25, 0.5},
		{-0.25, -0.5, 0.15, -0.5},
		{0.15, -0.5, 0.3, -0.25},
		{0.3, -0.25, 0.15, 0},
		{-0.25, 0, 0.2, 0},
		{0.2, 0, 0.35, 0.25},
		{0.35, 0.25, 0.2, 0.5},
		{0.2, 0.5, -0.25, 0.5},
		{-0.1, -0.65, -0.1, -0.5},
		{0.05, -0.65, 0.05, -0.5},
		{-0.1, 0.5, -0.1, 0.65},
		{0.05, 0.5, 0.05, 0.65},
	}
	for _, s := range segments {
		x0, y0 := rot(s[0]*r, s[1]*r)
		x1, y1 := rot(s[2]*r, s[3]*r)
		vector.StrokeLine(screen, x0, y0, x1, y1, stroke, white, true)
	}
}

func (g *Game) drawContent(screen *ebiten.Image, alpha, offsetY float64) {
	w := float64(screen.Bounds().Dx())
	s := g.deviceScale
	line := g.physicalLineHeight
	margin := 20 * s
	y := margin + offsetY

	// Header
	g.drawCoin(screen, margin+14*s, y+14*s, 14*s, 0, alpha)
	esset.DrawText(screen, "Crypto Insight", 0, margin+36*s, y+6*s, g.fontFace, fade(textColor, alpha))
	tag := "Test Task • Ebiten"
	tw, th := text.Measure(tag, g.fontFace, 0)
	tagX := w - margin - tw - 16*s
	vector.DrawFilledRect(screen, float32(tagX), float32(y+2*s), float32(tw+16*s), float32(th+10*s), fade(tagColor, alpha), true)
	esset.DrawText(screen, tag, 0, tagX+8*s, y+7*s, g.fontFace, fade(mutedColor, alpha))
	y += 28*s + line

	esset.DrawText(screen, "Simple BTC price overview with mock data.", 0, margin, y, g.fontFace, fade(mutedColor, alpha))
	y += line * 1.5

	// Card
	cardX, cardW := margin, w-2*margin
	cardH := float64(screen.Bounds().Dy()) - y - margin
	cardBottom := y + cardH
	vector.DrawFilledRect(screen, float32(cardX), float32(y), float32(cardW), float32(cardH), fade(cardColor, alpha), true)
	pad := 16 * s
	innerX, innerW := cardX+pad, cardW-2*pad
	y += pad

	active, _, _ := g.tracker.Active()
	readout := internal.NewReadout(g.series, g.geometry, active)

	g.drawCoin(screen, innerX+12*s, y+12*s, 12*s, 0, alpha)
	esset.DrawText(screen, internal.AssetName, 0, innerX+32*s, y, g.fontFace, fade(textColor, alpha))
	esset.DrawText(screen, internal.AssetSymbol, 0, innerX+32*s, y+line*0.8, g.fontFace, fade(mutedColor, alpha))
	g.drawChange(screen, innerX+innerW, y, readout, alpha)
	y += line * 2

	esset.DrawText(screen, readout.Price, 0, innerX, y, g.largeFace, fade(textColor, alpha))
	_, ph := text.Measure(readout.Price, g.largeFace, 0)
	y += ph + 4*s
	esset.DrawText(screen, readout.Range, 0, innerX, y, g.fontFace, fade(mutedColor, alpha))
	y += line * 1.5

	chartH := cardBottom - y - 2*line - 6*s - pad
	if chartH < 40*s {
		chartH = 40 * s
	}
	g.chartBox = internal.Box{X: innerX, Y: y, W: innerW, H: chartH}
	g.drawChart(screen, g.chartBox, active, alpha)
	y += chartH + 6*s

	g.drawTimes(screen, g.chartBox, y, active, alpha)
	y += line

	esset.DrawText(screen, readout.Time, 0, innerX, y, g.fontFace, fade(mutedColor, alpha))
	pw, _ := text.Measure(readout.Price, g.fontFace, 0)
	esset.DrawText(screen, readout.Price, 0, innerX+innerW-pw, y, g.fontFace, fade(textColor, alpha))
}

func (g *Game) drawChange(screen *ebiten.Image, right, y float64, readout internal.Readout, alpha float64) {
	s := g.deviceScale
	clr := upColor
	if readout.Trend == internal.Down {
		clr = downColor
	}
	clr = fade(clr, alpha)

	tw, th := text.Measure(readout.Change, g.fontFace, 0)
	x := right - tw
	esset.DrawText(screen, readout.Change, 0, x, y, g.fontFace, clr)

	// Arrow pointing up-right or down-right.
	size := th * 0.6
	ax := x - size - 6*s
	top, bottom := y+th*0.2, y+th*0.2+size
	x0, y0, x1, y1 := ax, bottom, ax+size, top
	if readout.Trend == internal.Down {
		y0, y1 = top, bottom
	}
	stroke := float32(1.5 * s)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), stroke, clr, true)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x1-size*0.6), float32(y1), stroke, clr, true)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x1), float32(y1+(y0-y1)*0.6), stroke, clr, true)
}

func (g *Game) drawChart(screen *ebiten.Image, box internal.Box, active int, alpha float64) {
	s := g.deviceScale
	points := g.geometry.Points
	n := len(points)

	if n > 1 {
		path := &vector.Path{}
		for i, p := range points {
			x, y := g.geometry.Scale(p, box.X, box.Y, box.W, box.H)
			if i == 0 {
				path.MoveTo(float32(x), float32(y))
			} else {
				path.LineTo(float32(x), float32(y))
			}
		}

		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:   3.0 * float32(s),
			LineCap: vector.LineCapRound,
		})

		// Horizontal gradient: colour each vertex by its x within the box.
		for i := range vs {
			clr := lerp(accentColor, accentEnd, (float64(vs[i].DstX)-box.X)/box.W)
			vs[i].SrcX, vs[i].SrcY = 0, 0
			vs[i].ColorR = float32(clr.R) / 255
			vs[i].ColorG = float32(clr.G) / 255
			vs[i].ColorB = float32(clr.B) / 255
			vs[i].ColorA = float32(alpha)
		}

		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		screen.DrawTriangles(vs, is, g.solidColorImage, op)
	}

	for _, p := range points {
		x, y := g.geometry.Scale(p, box.X, box.Y, box.W, box.H)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(3*s), fade(textColor, alpha), true)
	}

	if active >= 0 && active < n {
		x, y := g.geometry.Scale(points[active], box.X, box.Y, box.W, box.H)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(6*s), fade(accentEnd, alpha), true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(6*s), float32(1.5*s), fade(bgColor, alpha), true)
	}
}

func (g *Game) drawTimes(screen *ebiten.Image, box internal.Box, y float64, active int, alpha float64) {
	for i, sample := range g.series {
		x, _ := g.geometry.Scale(g.geometry.Points[i], box.X, box.Y, box.W, box.H)
		tw, _ := text.Measure(sample.Time, g.fontFace, 0)
		clr := mutedColor
		if i == active {
			clr = accentEnd
		}
		esset.DrawText(screen, sample.Time, 0, x-tw/2, y, g.fontFace, fade(clr, alpha))
	}
}

// fade scales a colour by alpha. ebiten colours are premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
