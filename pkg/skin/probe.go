package skin

import (
	"fmt"

	"github.com/spf13/afero"

	"instafade/pkg/hitcircle"
)

// Probe reports which assets the skin ships at double density. Glyphs
// count as double density when the "0" glyph does.
func Probe(fs afero.Fs, prefix string) (hitcircle.Flags, error) {
	var f hitcircle.Flags

	checks := []struct {
		name string
		dst  *bool
	}{
		{hitcircle.FileName(hitcircle.CircleName, true), &f.Circle},
		{hitcircle.FileName(hitcircle.OverlayName, true), &f.Overlay},
		{hitcircle.FileName(hitcircle.GlyphBase(prefix, 0), true), &f.Glyphs},
	}

	for _, c := range checks {
		exists, err := isFile(fs, c.name)
		if err != nil {
			return f, fmt.Errorf("probe %s failed: %w", c.name, err)
		}
		*c.dst = exists
	}

	return f, nil
}

func isFile(fs afero.Fs, name string) (bool, error) {
	if exists, err := afero.Exists(fs, name); err != nil || !exists {
		return false, err
	}
	dir, err := afero.IsDir(fs, name)
	return !dir, err
}
