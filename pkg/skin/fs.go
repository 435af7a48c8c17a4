package skin

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var ErrNotDir = errors.New("not a skin dir")

// NewFs roots a filesystem at the skin folder dir. Asset names resolved
// through it are relative to the skin, whatever the working directory.
func NewFs(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s failed: %w", dir, err)
	}

	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, abs); err != nil {
		return nil, fmt.Errorf("stat %s failed: %w", abs, err)
	} else if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, abs)
	}

	return afero.NewBasePathFs(fs, abs), nil
}
