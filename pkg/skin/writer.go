package skin

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"instafade/pkg/hitcircle"
)

// Placeholder replaces the circle and overlay sprites of a generated set,
// which are baked into every digit.
var Placeholder image.Image = image.NewNRGBA(image.Rect(0, 0, 1, 1))

// PlaceholderNames are the sprites a generated set blanks out.
var PlaceholderNames = []string{
	hitcircle.FileName(hitcircle.CircleName, false),
	hitcircle.FileName(hitcircle.OverlayName, false),
}

// DigitName is the file a generated digit is stored under. Double density
// sets keep the @2x suffix.
func DigitName(prefix string, digit int, hd bool) string {
	return hitcircle.FileName(hitcircle.GlyphBase(prefix, digit), hd)
}

// HitCircleOverlap is the glyph overlap a skin config should carry for
// the generated set, measured in single density pixels.
func HitCircleOverlap(images []*image.NRGBA, hd bool) int {
	if len(images) == 0 {
		return 0
	}
	w := images[0].Bounds().Dx()
	if hd {
		return w / 2
	}
	return w
}

func NewWriter(fs afero.Fs, dir string, opts ...WriterOption) *Writer {
	w := &Writer{
		fs:  fs,
		dir: dir,
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Writer persists a generated digit set into a directory.
type Writer struct {
	fs       afero.Fs
	dir      string
	log      *zap.Logger
	progress io.Writer
}

// Save writes images[i] as digit i. Each file is written under a temporary
// name and renamed into place.
func (w *Writer) Save(images []*image.NRGBA, prefix string, hd bool) ([]string, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if w.progress != nil {
		bar = progressbar.NewOptions(len(images),
			progressbar.OptionSetWriter(w.progress),
			progressbar.OptionSetDescription("Saving digits"),
		)
	}

	var total int
	saved := make([]string, 0, len(images))
	for i, img := range images {
		name := filepath.Join(w.dir, DigitName(prefix, i, hd))

		n, err := w.save(name, img)
		if err != nil {
			return saved, fmt.Errorf("save %s failed: %w", name, err)
		}
		total += n
		saved = append(saved, name)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	w.log.With(
		zap.String("dir", w.dir),
		zap.Int("files", len(saved)),
		zap.String("size", bytesize.New(float64(total)).String()),
	).Info("digits saved")

	return saved, nil
}

// SavePlaceholders writes Placeholder under every PlaceholderNames entry.
func (w *Writer) SavePlaceholders() ([]string, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}

	saved := make([]string, 0, len(PlaceholderNames))
	for _, base := range PlaceholderNames {
		name := filepath.Join(w.dir, base)
		if _, err := w.save(name, Placeholder); err != nil {
			return saved, fmt.Errorf("save %s failed: %w", name, err)
		}
		saved = append(saved, name)
	}

	return saved, nil
}

func (w *Writer) ensureDir() error {
	if exists, err := afero.DirExists(w.fs, w.dir); err != nil {
		return err
	} else if !exists {
		return w.fs.MkdirAll(w.dir, 0755)
	}
	return nil
}

func (w *Writer) save(name string, img image.Image) (int, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return 0, err
	}

	tmp := filepath.Join(w.dir, "."+xid.New().String()+".tmp")
	if err := afero.WriteFile(w.fs, tmp, buf.Bytes(), 0644); err != nil {
		return 0, err
	}

	if err := w.fs.Rename(tmp, name); err != nil {
		_ = w.fs.Remove(tmp)
		return 0, err
	}

	w.log.With(zap.String("file", name), zap.Int("bytes", buf.Len())).Debug("written")
	return buf.Len(), nil
}
