package photo

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// EncodeJPEG writes a baseline JPEG without any APPn or comment segments.
func EncodeJPEG(b *PixelBuffer, quality int) ([]byte, error) {
	var out bytes.Buffer
	if err := imaging.Encode(&out, b.NRGBA(), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return out.Bytes(), nil
}
