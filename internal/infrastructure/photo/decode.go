package photo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
)

// Decode reads any registered raster format. EXIF orientation is applied to
// the pixels so that the upright image matches a forged orientation of 1.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, domain.ErrEmptyImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: zero-area raster", domain.ErrDecode)
	}

	return img, nil
}

// Strip rebuilds img into a newly allocated RGB buffer. Nothing but samples
// is carried over and img is left untouched.
func Strip(img image.Image) *PixelBuffer {
	return fromImage(img)
}

// DecodeAndStrip is the decode step of the pipeline.
func DecodeAndStrip(data []byte) (*PixelBuffer, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Strip(img), nil
}
