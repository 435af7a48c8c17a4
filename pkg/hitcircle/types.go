package hitcircle

const (
	// DigitCount is the number of glyphs in a hit-circle font, 0 through 9.
	DigitCount = 10

	// TintAlpha is the fixed opacity of the combo colour wash.
	TintAlpha = 100

	// Upscale is the cosmetic enlargement applied to circle and overlay.
	Upscale = 1.25

	DefaultPrefix = "default"
)

const (
	CircleName  = "hitcircle"
	OverlayName = "hitcircleoverlay"
)

type Tint struct {
	R, G, B uint8
}

// Flags record which assets the skin ships at double density.
type Flags struct {
	Circle  bool
	Overlay bool
	Glyphs  bool
}

func (f Flags) AllHD() bool {
	return f.Circle && f.Overlay && f.Glyphs
}

type Fonts struct {
	Prefix             string
	OverlayAboveNumber bool
}

// PrefixOrDefault is the glyph prefix actually used for file names.
func (f Fonts) PrefixOrDefault() string {
	if f.Prefix == "" {
		return DefaultPrefix
	}
	return f.Prefix
}

type Request struct {
	Flags Flags
	Fonts Fonts
	// Tint is nil when the circle keeps its own colours.
	Tint *Tint
}
