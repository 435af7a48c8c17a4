package canvas

import (
	"image/color"
	"math"
)

// Blend composites src over dst in straight (non-premultiplied) alpha:
//
//	a = sa + da*(1-sa)
//	c = (sc*sa + dc*da*(1-sa)) / a
//
// with every channel normalized to [0, 1] and the result rounded to the
// nearest 8-bit value. A transparent src, or a zero result alpha, leaves
// dst as it was; an opaque src replaces it.
func Blend(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 0:
		return dst
	case 0xff:
		return src
	}

	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	a := sa + da*(1-sa)
	if a == 0 {
		return dst
	}

	ch := func(s, d uint8) uint8 {
		v := (float64(s)/255*sa + float64(d)/255*da*(1-sa)) / a
		return to8(v)
	}

	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: to8(a),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Min(math.Max(math.Round(v*255), 0), 255))
}
