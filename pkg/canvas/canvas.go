package canvas

import (
	"image"
	"image/color"
)

// PixelStore is an indexable 2D buffer of straight-alpha 8-bit pixels.
// *image.NRGBA implements it.
type PixelStore interface {
	Bounds() image.Rectangle
	NRGBAAt(x, y int) color.NRGBA
	SetNRGBA(x, y int, c color.NRGBA)
}

// Canvas is a drawing surface. Every primitive in this package writes
// through DrawPixel, so the canvas decides how a colour lands.
type Canvas interface {
	Dimensions() (w, h int)
	Pixel(x, y int) color.NRGBA
	DrawPixel(x, y int, c color.NRGBA)
}

type surface struct {
	store  PixelStore
	origin image.Point
}

func (s surface) Dimensions() (int, int) {
	b := s.store.Bounds()
	return b.Dx(), b.Dy()
}

// Pixel coordinates are relative to the store's top-left corner.
func (s surface) Pixel(x, y int) color.NRGBA {
	return s.store.NRGBAAt(s.origin.X+x, s.origin.Y+y)
}

func (s surface) set(x, y int, c color.NRGBA) {
	s.store.SetNRGBA(s.origin.X+x, s.origin.Y+y, c)
}

func NewBlending(store PixelStore) *Blending {
	return &Blending{surface{store: store, origin: store.Bounds().Min}}
}

// Blending composites with plain source-over, alpha included.
type Blending struct {
	surface
}

func (b *Blending) DrawPixel(x, y int, c color.NRGBA) {
	b.set(x, y, Blend(b.Pixel(x, y), c))
}

func NewAlphaPreserving(store PixelStore) *AlphaPreserving {
	return &AlphaPreserving{surface{store: store, origin: store.Bounds().Min}}
}

// AlphaPreserving blends colour channels with source-over but writes the
// destination's original alpha back, so the silhouette of whatever is
// underneath never changes.
type AlphaPreserving struct {
	surface
}

func (p *AlphaPreserving) DrawPixel(x, y int, c color.NRGBA) {
	dst := p.Pixel(x, y)
	a := dst.A
	out := Blend(dst, c)
	out.A = a
	p.set(x, y, out)
}
