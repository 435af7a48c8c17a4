package canvas

import (
	"image"
	"image/color"
)

// FillRect draws c over every pixel of r that lies on the canvas.
func FillRect(dst Canvas, r image.Rectangle, c color.NRGBA) {
	w, h := dst.Dimensions()
	r = r.Intersect(image.Rect(0, 0, w, h))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.DrawPixel(x, y, c)
		}
	}
}

// Overlay draws src onto dst with its top-left corner at pos. pos may be
// negative or push src past the far edges; the part outside dst is
// dropped.
func Overlay(dst Canvas, src PixelStore, pos image.Point) {
	w, h := dst.Dimensions()
	sb := src.Bounds()

	area := image.Rectangle{Min: pos, Max: pos.Add(sb.Size())}.Intersect(image.Rect(0, 0, w, h))
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := sb.Min.Y + y - pos.Y
		for x := area.Min.X; x < area.Max.X; x++ {
			dst.DrawPixel(x, y, src.NRGBAAt(sb.Min.X+x-pos.X, sy))
		}
	}
}

// Center returns the offset that centres an inner box in an outer one.
// Each half is truncated on its own, so odd mismatches lean towards the
// top-left by one pixel.
func Center(outer, inner image.Point) image.Point {
	return image.Pt(outer.X/2-inner.X/2, outer.Y/2-inner.Y/2)
}
