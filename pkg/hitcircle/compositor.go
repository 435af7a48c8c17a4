package hitcircle

import (
	"fmt"
	"image"
	"sync"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"instafade/pkg/canvas"
)

func NewCompositor(fs afero.Fs, opts ...Option) *Compositor {
	c := &Compositor{
		fs:  fs,
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Compositor struct {
	fs       afero.Fs
	log      *zap.Logger
	parallel bool
}

type layers struct {
	size    image.Point
	circle  *image.NRGBA
	overlay *image.NRGBA
	above   bool
}

// Generate builds one flattened image per digit, index i holding digit i.
// Any failure aborts the whole run and no images are returned.
func (c *Compositor) Generate(req Request) ([]*image.NRGBA, error) {
	l := &loader{fs: c.fs, log: c.log}
	f := req.Flags

	overlay, err := l.load(OverlayName, f.Overlay, f.Circle && f.Glyphs)
	if err != nil {
		return nil, err
	}
	overlay = upscale(overlay)

	circle, err := l.load(CircleName, f.Circle, f.Overlay && f.Glyphs)
	if err != nil {
		return nil, err
	}
	circle = upscale(circle)

	if req.Tint != nil {
		cb := circle.Bounds()
		Colorize(canvas.NewAlphaPreserving(circle), cb.Dx(), cb.Dy(), *req.Tint)
	}

	ly := &layers{
		size: image.Pt(
			lo.Max([]int{circle.Bounds().Dx(), overlay.Bounds().Dx()}),
			lo.Max([]int{circle.Bounds().Dy(), overlay.Bounds().Dy()}),
		),
		circle:  circle,
		overlay: overlay,
		above:   req.Fonts.OverlayAboveNumber,
	}

	c.log.With(
		zap.Int("w", ly.size.X),
		zap.Int("h", ly.size.Y),
		zap.Bool("tinted", req.Tint != nil),
		zap.Bool("parallel", c.parallel),
	).Debug("canvas ready")

	prefix := req.Fonts.PrefixOrDefault()
	digit := func(i int) (*image.NRGBA, error) {
		glyph, err := l.load(GlyphBase(prefix, i), f.Glyphs, f.Circle && f.Overlay)
		if err != nil {
			return nil, fmt.Errorf("digit %d failed: %w", i, err)
		}
		return ly.compose(glyph), nil
	}

	if c.parallel {
		return generateParallel(digit)
	}

	images := make([]*image.NRGBA, 0, DigitCount)
	for i := 0; i < DigitCount; i++ {
		img, err := digit(i)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

func generateParallel(digit func(i int) (*image.NRGBA, error)) ([]*image.NRGBA, error) {
	images := make([]*image.NRGBA, DigitCount)
	errs := make([]error, DigitCount)

	var wg sync.WaitGroup
	for i := 0; i < DigitCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			images[i], errs[i] = digit(i)
		}(i)
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	return images, nil
}

// compose stacks circle, glyph and overlay centred on a transparent canvas.
// The overlay goes on top when above is set, otherwise the glyph does.
func (ly *layers) compose(glyph *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: ly.size})
	cv := canvas.NewBlending(dst)

	stack := lo.Ternary(
		ly.above,
		[]*image.NRGBA{ly.circle, glyph, ly.overlay},
		[]*image.NRGBA{ly.circle, ly.overlay, glyph},
	)

	for _, img := range stack {
		canvas.Overlay(cv, img, canvas.Center(ly.size, img.Bounds().Size()))
	}

	return dst
}
