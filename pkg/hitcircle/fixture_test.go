package hitcircle

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"instafade/pkg/canvas"
)

var (
	red         = color.NRGBA{R: 255, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent = color.NRGBA{}
)

// skinFixture describes one side length per asset at single density;
// double density files are written at twice that.
type skinFixture struct {
	flags   Flags
	prefix  string
	circle  int
	overlay int
	glyph   int

	circleColor  color.NRGBA
	overlayColor color.NRGBA
	glyphColor   color.NRGBA
}

func defaultFixture() skinFixture {
	return skinFixture{
		prefix:       DefaultPrefix,
		circle:       64,
		overlay:      96,
		glyph:        32,
		circleColor:  red,
		overlayColor: transparent,
		glyphColor:   blue,
	}
}

func writePNG(t *testing.T, fs afero.Fs, name string, img image.Image) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
}

func square(size int, c color.NRGBA) *image.NRGBA {
	return imaging.New(size, size, c)
}

func scale(size int, hd bool) int {
	if hd {
		return size * 2
	}
	return size
}

func (s skinFixture) build(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	writePNG(t, fs, FileName(CircleName, s.flags.Circle), square(scale(s.circle, s.flags.Circle), s.circleColor))
	writePNG(t, fs, FileName(OverlayName, s.flags.Overlay), square(scale(s.overlay, s.flags.Overlay), s.overlayColor))
	for i := 0; i < DigitCount; i++ {
		writePNG(t, fs, FileName(GlyphBase(s.prefix, i), s.flags.Glyphs), square(scale(s.glyph, s.flags.Glyphs), s.glyphColor))
	}

	return fs
}

func (s skinFixture) request() Request {
	return Request{
		Flags: s.flags,
		Fonts: Fonts{Prefix: s.prefix},
	}
}

func writeRaw(fs afero.Fs, name string, bs []byte) error {
	return afero.WriteFile(fs, name, bs, 0644)
}

func writeJPEG(t *testing.T, fs afero.Fs, name string, img image.Image) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	require.NoError(t, writeRaw(fs, name, buf.Bytes()))
}

func canvasOf(img *image.NRGBA) canvas.Canvas {
	return canvas.NewAlphaPreserving(img)
}
