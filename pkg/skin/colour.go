package skin

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"instafade/pkg/hitcircle"
)

// DefaultCombos are the stock combo colours used when a skin defines none.
var DefaultCombos = []hitcircle.Tint{
	{R: 255, G: 192, B: 0},
	{R: 0, G: 202, B: 0},
	{R: 18, G: 124, B: 255},
	{R: 242, G: 24, B: 57},
}

var ErrBadColour = errors.New("bad colour")

var comboPattern = regexp.MustCompile(`^\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*$`)

// ParseTint reads an "R,G,B" triple, the format combo colours use.
func ParseTint(s string) (hitcircle.Tint, error) {
	m := comboPattern.FindStringSubmatch(s)
	if m == nil {
		return hitcircle.Tint{}, fmt.Errorf("%w: %q", ErrBadColour, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 10, 8)
		if err != nil {
			return hitcircle.Tint{}, fmt.Errorf("%w: %q out of range", ErrBadColour, m[i+1])
		}
		ch[i] = uint8(v)
	}

	return hitcircle.Tint{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// PickCombo selects combos[n-1]. Zero selects no tint, leaving the circle
// in its own colours.
func PickCombo(combos []hitcircle.Tint, n int) (*hitcircle.Tint, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > len(combos) {
		return nil, fmt.Errorf("%w: combo %d of %d", ErrBadColour, n, len(combos))
	}
	t := combos[n-1]
	return &t, nil
}

func FormatTint(t hitcircle.Tint) string {
	return fmt.Sprintf("%d, %d, %d", t.R, t.G, t.B)
}
