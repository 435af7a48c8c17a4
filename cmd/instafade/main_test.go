package main

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"instafade/pkg/hitcircle"
	"instafade/pkg/skin"
)

func hdSkin(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	put := func(name string, size int, c color.NRGBA) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, imaging.New(size, size, c)))
		require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
	}

	put("hitcircle@2x.png", 128, color.NRGBA{R: 255, A: 255})
	put("hitcircleoverlay@2x.png", 192, color.NRGBA{})
	for i := 0; i < hitcircle.DigitCount; i++ {
		put(hitcircle.FileName(hitcircle.GlyphBase(hitcircle.DefaultPrefix, i), true), 64, color.NRGBA{B: 255, A: 255})
	}

	return fs
}

func withFlags(t *testing.T, p string, c int, tt string) {
	t.Helper()

	oldPrefix, oldCombo, oldTint := *prefix, *combo, *tint
	*prefix, *combo, *tint = p, c, tt
	t.Cleanup(func() {
		*prefix, *combo, *tint = oldPrefix, oldCombo, oldTint
	})
}

func TestEmptyPrefixUsesDefault(t *testing.T) {
	withFlags(t, "", 0, "")
	src := hdSkin(t)

	req, err := newRequest(src, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, hitcircle.DefaultPrefix, req.Fonts.Prefix)
	assert.Equal(t, hitcircle.Flags{Circle: true, Overlay: true, Glyphs: true}, req.Flags)
	assert.Nil(t, req.Tint)

	out := afero.NewMemMapFs()
	err = generate(hitcircle.NewCompositor(src), skin.NewWriter(out, "out"), req, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < hitcircle.DigitCount; i++ {
		exists, err := afero.Exists(out, filepath.Join("out", skin.DigitName(hitcircle.DefaultPrefix, i, true)))
		require.NoError(t, err)
		assert.True(t, exists, "digit %d", i)
	}
	for _, name := range skin.PlaceholderNames {
		exists, err := afero.Exists(out, filepath.Join("out", name))
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func TestComboSelectsTint(t *testing.T) {
	withFlags(t, hitcircle.DefaultPrefix, 3, "")

	req, err := newRequest(hdSkin(t), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, req.Tint)
	assert.Equal(t, skin.DefaultCombos[2], *req.Tint)
}

func TestTintOverridesCombo(t *testing.T) {
	withFlags(t, hitcircle.DefaultPrefix, 3, "1,2,3")

	req, err := newRequest(hdSkin(t), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, req.Tint)
	assert.Equal(t, hitcircle.Tint{R: 1, G: 2, B: 3}, *req.Tint)
}

func TestComboOutOfRange(t *testing.T) {
	withFlags(t, hitcircle.DefaultPrefix, 9, "")

	_, err := newRequest(hdSkin(t), zap.NewNop())
	assert.ErrorIs(t, err, skin.ErrBadColour)
}
