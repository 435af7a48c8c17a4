package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"instafade/pkg/hitcircle"
	"instafade/pkg/skin"
)

var skinDir = flag.String("skin", "", "skin folder")
var outDir = flag.String("out", "", "output folder (default \"<skin> - instafade\" next to the skin)")
var prefix = flag.String("prefix", hitcircle.DefaultPrefix, "hit circle glyph prefix")
var overlayAbove = flag.Bool("overlay-above-number", false, "draw the overlay above the glyph")
var tint = flag.String("tint", "", "combo colour as R,G,B, overrides --combo")
var combo = flag.Int("combo", 0, "stock combo colour 1-4, 0 keeps the circle colour")
var parallel = flag.Bool("parallel", false, "build digits concurrently")
var progress = flag.Bool("progress", true, "show save progress")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *skinDir == "" {
		fmt.Fprintln(os.Stderr, "--skin is required")
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Supply(logger),
		fx.Provide(
			newSource,
			newRequest,
			newCompositor,
			newWriter,
		),
		fx.Invoke(generate),
	)

	if err := app.Err(); err != nil {
		logger.With(zap.Error(err)).Fatal("generate failed")
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newSource() (afero.Fs, error) {
	return skin.NewFs(*skinDir)
}

func newRequest(fs afero.Fs, logger *zap.Logger) (hitcircle.Request, error) {
	fonts := hitcircle.Fonts{
		Prefix:             *prefix,
		OverlayAboveNumber: *overlayAbove,
	}
	fonts.Prefix = fonts.PrefixOrDefault()

	req := hitcircle.Request{Fonts: fonts}

	flags, err := skin.Probe(fs, fonts.Prefix)
	if err != nil {
		return req, err
	}
	req.Flags = flags

	if *tint != "" {
		t, err := skin.ParseTint(*tint)
		if err != nil {
			return req, err
		}
		req.Tint = &t
	} else if req.Tint, err = skin.PickCombo(skin.DefaultCombos, *combo); err != nil {
		return req, err
	}

	logger.With(
		zap.Bool("circle-hd", flags.Circle),
		zap.Bool("overlay-hd", flags.Overlay),
		zap.Bool("glyphs-hd", flags.Glyphs),
		zap.String("prefix", fonts.Prefix),
	).Info("skin probed")

	return req, nil
}

func newCompositor(fs afero.Fs, logger *zap.Logger) *hitcircle.Compositor {
	return hitcircle.NewCompositor(fs,
		hitcircle.WithLogger(logger.Named("compositor")),
		hitcircle.WithParallel(*parallel),
	)
}

func newWriter(logger *zap.Logger) (*skin.Writer, error) {
	dir := *outDir
	if dir == "" {
		abs, err := filepath.Abs(*skinDir)
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(filepath.Dir(abs), filepath.Base(abs)+" - instafade")
	}

	opts := []skin.WriterOption{skin.WithWriterLogger(logger.Named("writer"))}
	if *progress {
		opts = append(opts, skin.WithProgress(os.Stderr))
	}

	return skin.NewWriter(afero.NewOsFs(), dir, opts...), nil
}

func generate(c *hitcircle.Compositor, w *skin.Writer, req hitcircle.Request, logger *zap.Logger) error {
	images, err := c.Generate(req)
	if err != nil {
		return fmt.Errorf("generate numbers failed: %w", err)
	}

	hd := req.Flags.AllHD()
	if _, err := w.Save(images, req.Fonts.PrefixOrDefault(), hd); err != nil {
		return err
	}
	if _, err := w.SavePlaceholders(); err != nil {
		return err
	}

	combo := "255, 255, 255"
	if req.Tint != nil {
		combo = skin.FormatTint(*req.Tint)
	}

	logger.With(
		zap.Bool("hd", hd),
		zap.Int("hit-circle-overlap", skin.HitCircleOverlap(images, hd)),
		zap.String("combo1", combo),
	).Info("instafade has been generated")

	return nil
}
