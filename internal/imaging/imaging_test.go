package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeResult(t *testing.T, encoded string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestFitWithinWidthBoundFirst(t *testing.T) {
	w, h := FitWithin(2000, 1000, 800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestFitWithinHeightRechecked(t *testing.T) {
	// Tall image: width fits but height does not
	w, h := FitWithin(400, 1200, 800, 600)
	assert.Equal(t, 200, w)
	assert.Equal(t, 600, h)
}

func TestFitWithinNoUpscale(t *testing.T) {
	w, h := FitWithin(300, 200, 800, 600)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestOptimizeDownscales(t *testing.T) {
	data := encodePNG(t, 2000, 1000)

	encoded, err := Optimize(data, "image/png", Options{MaxWidth: 800, MaxHeight: 600, Quality: 80})
	require.NoError(t, err)

	img := decodeResult(t, encoded)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestOptimizeKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 320, 240)

	encoded, err := Optimize(data, "image/png", Options{MaxWidth: 800, MaxHeight: 600, Quality: 80})
	require.NoError(t, err)

	img := decodeResult(t, encoded)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestOptimizeDeterministic(t *testing.T) {
	data := encodePNG(t, 1024, 768)
	opts := Options{MaxWidth: 800, MaxHeight: 600, Quality: 75}

	first, err := Optimize(data, "image/png", opts)
	require.NoError(t, err)
	second, err := Optimize(data, "image/png", opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimizeRejectsUnsupportedType(t *testing.T) {
	// Valid PNG bytes with a disallowed claimed type must be rejected
	// before any decode attempt.
	data := encodePNG(t, 100, 100)

	_, err := Optimize(data, "image/tiff", Options{MaxWidth: 800, MaxHeight: 600, Quality: 80})
	require.Error(t, err)

	var typeErr *UnsupportedTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "image/tiff", typeErr.MIMEType)
}

func TestOptimizeDecodeFailure(t *testing.T) {
	_, err := Optimize([]byte("not an image"), "image/jpeg", Options{MaxWidth: 800, MaxHeight: 600, Quality: 80})
	assert.Error(t, err)
}

func TestOptimizeMaxBytes(t *testing.T) {
	data := encodePNG(t, 2000, 1000)

	_, err := Optimize(data, "image/png", Options{MaxWidth: 800, MaxHeight: 600, Quality: 80, MaxBytes: 10})
	require.Error(t, err)

	var sizeErr *TooLargeError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 10, sizeErr.Max)
}

func TestAllowedTypes(t *testing.T) {
	for _, mime := range []string{"image/jpeg", "image/png", "image/webp", "image/gif"} {
		assert.True(t, Allowed(mime), mime)
	}
	for _, mime := range []string{"image/tiff", "application/pdf", "text/plain", ""} {
		assert.False(t, Allowed(mime), mime)
	}
}
