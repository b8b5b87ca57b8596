// Package imaging downsizes intake photos before they are stored as
// base64 text on mail items. The transform is pure: identical input bytes
// and options always produce identical output.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif" // register decoders for the allowed formats
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Options controls the downscale and re-encode step.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   int // JPEG quality, 1-100
	MaxBytes  int // ceiling on the encoded output size, 0 disables the check
}

// DefaultOptions are the bounds used for intake photos when the caller
// does not override them.
var DefaultOptions = Options{
	MaxWidth:  800,
	MaxHeight: 600,
	Quality:   80,
	MaxBytes:  512 * 1024,
}

// UnsupportedTypeError is returned before any decode attempt when the
// claimed MIME type is outside the allow-list.
type UnsupportedTypeError struct {
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported image type: %s", e.MIMEType)
}

// TooLargeError is returned when the encoded result exceeds Options.MaxBytes.
type TooLargeError struct {
	Size int
	Max  int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("optimized image is %d bytes, exceeds limit of %d", e.Size, e.Max)
}

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// Allowed reports whether the MIME type is accepted for intake photos.
func Allowed(mimeType string) bool {
	_, ok := allowedTypes[mimeType]
	return ok
}

// FitWithin returns the dimensions of an image proportionally downscaled so
// that neither dimension exceeds the bounds. Width is bound first, then the
// resulting height is re-checked. Images already within bounds keep their size.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}
	if height > maxHeight {
		width = width * maxHeight / height
		height = maxHeight
	}
	return width, height
}

// Optimize validates the MIME type, decodes the image, downsizes it to fit
// the configured bounds and re-encodes it as JPEG, returning the result as a
// base64 string suitable for storage on a mail item.
func Optimize(data []byte, mimeType string, opts Options) (string, error) {
	if !Allowed(mimeType) {
		return "", &UnsupportedTypeError{MIMEType: mimeType}
	}
	if opts.MaxWidth <= 0 || opts.MaxHeight <= 0 {
		return "", fmt.Errorf("invalid bounds %dx%d", opts.MaxWidth, opts.MaxHeight)
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return "", fmt.Errorf("invalid quality %d", opts.Quality)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), opts.MaxWidth, opts.MaxHeight)

	out := src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	if opts.MaxBytes > 0 && buf.Len() > opts.MaxBytes {
		return "", &TooLargeError{Size: buf.Len(), Max: opts.MaxBytes}
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
