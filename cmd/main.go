package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sebnyberg/cropbox"
	"github.com/sebnyberg/cropbox/config"
	"github.com/sebnyberg/cropbox/encode"
	"github.com/sebnyberg/cropbox/geom"
	"github.com/sebnyberg/cropbox/internal/layout"
	"github.com/sebnyberg/cropbox/internal/loader"
	"github.com/sebnyberg/cropbox/worker"
)

type opts struct {
	config   string
	in       string
	out      string
	format   string
	from     string
	to       string
	maxWidth float64
	preview  string
	verbose  bool
}

func parseOpts() opts {
	var o opts
	flag.StringVar(&o.config, "config", "cropbox.toml", "Path to the TOML config file")
	flag.StringVar(&o.in, "in", "", "Image to crop")
	flag.StringVar(&o.out, "out", "", "Output file, defaults to the configured output")
	flag.StringVar(&o.format, "format", "", "Output format, defaults to the extension of -out")
	flag.StringVar(&o.from, "from", "", "Drag start x,y in display coordinates")
	flag.StringVar(&o.to, "to", "", "Drag end x,y in display coordinates")
	flag.Float64Var(&o.maxWidth, "max-width", 0, "Width of the display box, overrides the config")
	flag.StringVar(&o.preview, "preview", "", "Also write the displayed image with the crop box drawn on it")
	flag.BoolVar(&o.verbose, "v", false, "Debug logging")
	flag.Parse()
	return o
}

func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	level, _ := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hopts))
}

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}

func main() {
	o := parseOpts()
	cfg, err := config.Load(o.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := newLogger(cfg, o.verbose)
	if err := run(o, cfg, logger); err != nil {
		logger.Error("crop failed", "error", err)
		os.Exit(1)
	}
}

func run(o opts, cfg *config.Config, logger *slog.Logger) error {
	if o.in == "" {
		return errors.New("missing -in")
	}
	from, err := parsePoint(o.from)
	if err != nil {
		return err
	}
	to, err := parsePoint(o.to)
	if err != nil {
		return err
	}
	out := o.out
	if out == "" {
		out = cfg.Output
	}
	f, err := cfg.OutputFormat()
	if o.format != "" {
		f, err = encode.ParseFormat(o.format)
	} else if o.out != "" {
		f, err = encode.ParseFormat(o.out)
	}
	if err != nil {
		return err
	}
	maxWidth := cfg.MaxDisplayWidth
	if o.maxWidth > 0 {
		maxWidth = o.maxWidth
	}

	a, err := loader.Open(o.in)
	if err != nil {
		return err
	}
	a.Layout(layout.Fit(a.NativeWidth, a.NativeHeight, maxWidth))
	logger.Debug("loaded",
		"path", o.in,
		"native", fmt.Sprintf("%dx%d", a.NativeWidth, a.NativeHeight),
		"display", fmt.Sprintf("%gx%g", a.DisplayWidth, a.DisplayHeight),
	)

	s := cropbox.NewSession(a, cropbox.WithLogger(logger), cropbox.WithEncodeOptions(cfg.EncodeOptions()...))
	s.PointerDown(from)
	s.PointerMove(to)
	s.PointerUp()

	if o.preview != "" {
		if err := writePreview(s, o.preview); err != nil {
			return err
		}
	}

	region, err := s.NativeSelection()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	pool := worker.NewPool(cfg.Workers, logger)
	res, err := pool.Run(ctx, worker.Job{
		Source:  a.Source,
		Region:  region,
		Format:  f,
		Options: cfg.EncodeOptions(),
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, res.Data, 0640); err != nil {
		return fmt.Errorf("write %q err, %w", out, err)
	}
	logger.Info("cropped",
		"out", out,
		"format", f,
		"size", fmt.Sprintf("%dx%d", res.Raster.Width, res.Raster.Height),
		"bytes", humanize.Bytes(uint64(len(res.Data))),
	)
	return nil
}

func writePreview(s *cropbox.Session, path string) error {
	f, err := encode.ParseFormat(path)
	if err != nil {
		return err
	}
	a := s.Asset()
	img := layout.Render(a.Source, a.DisplayWidth, a.DisplayHeight)
	if r, ok := s.Overlay(); ok {
		layout.Outline(img, r, color.RGBA{0xff, 0, 0, 0xff})
	}
	b, err := encode.Bytes(img, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0640)
}
