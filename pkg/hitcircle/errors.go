package hitcircle

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrDecode        = errors.New("image decode failed")
	ErrPixelFormat   = errors.New("unsupported pixel format")
)

// AssetError names the file and the step that broke a generation run.
type AssetError struct {
	Asset string
	Step  string
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Asset, e.Step, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
