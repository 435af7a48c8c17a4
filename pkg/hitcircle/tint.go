package hitcircle

import (
	"image"
	"image/color"

	"instafade/pkg/canvas"
)

// Colorize washes the w×h area at the origin with t at TintAlpha.
func Colorize(c canvas.Canvas, w, h int, t Tint) {
	canvas.FillRect(c, image.Rect(0, 0, w, h), color.NRGBA{R: t.R, G: t.G, B: t.B, A: TintAlpha})
}
