package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/temidaradev/esset/v2"
	"golang.org/x/image/font/gofont/goregular"

	"cryptoinsight/internal"
	"cryptoinsight/internal/config"
)

const glyphsToPreload = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,:/$%-•… "
const baseFontSize = 12
const largeFontSize = 26

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	svgPath := flag.String("svg", "", "write the chart as SVG to this file")
	pngPath := flag.String("png", "", "write a PNG snapshot of the chart to this file")
	active := flag.Int("active", -1, "sample to highlight in exports (default: latest)")
	headless := flag.Bool("headless", false, "export and print the readout without opening a window")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		internal.Log.Fatalf("Config could not be loaded: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		internal.Log.Fatalf("Invalid config: %v", err)
	}
	internal.SetLogLevel(cfg.Log.Level)

	series, err := internal.LoadSeries(cfg.SeriesFile)
	if err != nil {
		internal.Log.Fatalf("Series could not be loaded: %v", err)
	}
	internal.Log.Infof("Loaded %d samples (%s .. %s)", len(series), series.First().Time, series.Last().Time)

	if *active < 0 || *active >= len(series) {
		*active = series.LastIndex()
	}
	if err := internal.ExportCharts(series, cfg.Chart, *active, *svgPath, *pngPath); err != nil {
		internal.Log.Fatalf("Export failed: %v", err)
	}

	if *headless {
		if err := internal.WriteReadout(os.Stdout, series, cfg.Chart, *active); err != nil {
			internal.Log.Fatalf("Readout failed: %v", err)
		}
		return
	}

	run(cfg, series)
}

func run(cfg *config.Config, series internal.Series) {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)

	deviceScale := ebiten.Monitor().DeviceScaleFactor()

	scaledFontSize := baseFontSize * deviceScale
	fontFace, err := esset.GetFont(goregular.TTF, int(scaledFontSize))
	if err != nil {
		internal.Log.Fatalf("Font could not be loaded with scaled size %f: %v", scaledFontSize, err)
	}
	largeFace, err := esset.GetFont(goregular.TTF, int(largeFontSize*deviceScale))
	if err != nil {
		internal.Log.Fatalf("Font could not be loaded with scaled size %f: %v", largeFontSize*deviceScale, err)
	}

	internal.Log.Debug("Glyph caching...")
	tempImage := ebiten.NewImage(1, 1)
	opts := &text.DrawOptions{}
	text.Draw(tempImage, glyphsToPreload, fontFace, opts)
	text.Draw(tempImage, glyphsToPreload, largeFace, opts)
	internal.Log.Debug("Glyph caching done.")

	preloader := internal.StartPreloader(cfg.Loading.Delay, func() {
		internal.Log.Info("Market data ready")
	})
	defer preloader.Stop()

	g := NewGame(series, cfg.Chart, preloader, fontFace, largeFace, deviceScale)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		preloader.Stop()
		internal.Log.Infof("Received %s, exiting", sig)
		os.Exit(0)
	}()

	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		internal.Log.Fatal(err)
	}
}
