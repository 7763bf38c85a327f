package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitWidth(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 3200, 1000))
	scaled := fitWidth(wide, 1600)
	assert.Equal(t, 1600, scaled.Bounds().Dx())
	assert.Equal(t, 500, scaled.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 800, 600))
	assert.Same(t, image.Image(small), fitWidth(small, 1600))
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNormalize_EncodesWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	out, err := Normalize(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(out[:4]))
}
