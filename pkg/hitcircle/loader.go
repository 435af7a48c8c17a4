package hitcircle

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileName is the on-disk name of an asset at the given density.
func FileName(base string, hd bool) string {
	return base + lo.Ternary(hd, "@2x", "") + ".png"
}

func GlyphBase(prefix string, digit int) string {
	return fmt.Sprintf("%s-%d", prefix, digit)
}

type loader struct {
	fs  afero.Fs
	log *zap.Logger
}

// load reads base at the density the skin ships it in. A double density
// asset is brought back to single density with nearest-neighbour halving
// unless both of its siblings are double density too.
func (l *loader) load(base string, hd, siblingsHD bool) (*image.NRGBA, error) {
	name := FileName(base, hd)

	img, err := l.decode(name)
	if err != nil {
		return nil, err
	}

	halve := hd && !siblingsHD
	if halve {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()/2, b.Dy()/2, imaging.NearestNeighbor)
	}

	l.log.With(
		zap.String("asset", name),
		zap.Bool("hd", hd),
		zap.Bool("halved", halve),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Debug("loaded")

	return img, nil
}

func (l *loader) decode(name string) (*image.NRGBA, error) {
	f, err := l.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &AssetError{Asset: name, Step: "open", Err: ErrAssetNotFound}
		}
		return nil, &AssetError{Asset: name, Step: "open", Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &AssetError{Asset: name, Step: "decode", Err: fmt.Errorf("%w: %s", ErrDecode, err)}
	}
	if format != "png" {
		return nil, &AssetError{Asset: name, Step: "decode", Err: fmt.Errorf("%w: %s is not png", ErrDecode, format)}
	}

	// 8-bit models widen to NRGBA without loss; anything else would be
	// truncated or reinterpreted.
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.Paletted, *image.Gray:
	default:
		return nil, &AssetError{Asset: name, Step: "decode", Err: fmt.Errorf("%w: %T", ErrPixelFormat, img)}
	}

	return imaging.Clone(img), nil
}

func upscale(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w := int(float32(b.Dx()) * Upscale)
	h := int(float32(b.Dy()) * Upscale)
	return imaging.Resize(img, w, h, imaging.CatmullRom)
}
