package photo_test

import (
	"image"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/metadata"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/photo"
)

// jpegWithMetadata encodes img and embeds an EXIF block into it.
func jpegWithMetadata(t *testing.T, img image.Image) []byte {
	t.Helper()

	data, err := photo.EncodeJPEG(photo.Strip(img), 90)
	require.NoError(t, err)

	device := entity.DeviceProfile{
		Make:                   "Apple",
		Model:                  "iPhone 13",
		Software:               "17.1",
		ISOMin:                 32,
		ISOMax:                 800,
		MaxExposureDenominator: 4000,
		FNumber:                valueobject.NewRational(16, 10),
		FocalLength:            valueobject.NewRational(51, 10),
		PixelX:                 4032,
		PixelY:                 3024,
	}
	composer := metadata.NewComposer(nil)
	set := composer.Compose(metadata.ComposeInput{
		Latitude:  40.7,
		Longitude: -73.9,
		Altitude:  10,
		Timestamp: time.Date(2023, 5, 1, 9, 30, 0, 0, time.UTC),
		Device:    entity.FixedDevice(device),
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		Keyword:   "original",
	}, rand.New(rand.NewPCG(1, 2)))

	out, err := metadata.Inject(data, set)
	require.NoError(t, err)
	return out
}

// hasSegment walks the marker segments up to the start of scan.
func hasSegment(data []byte, marker byte) bool {
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return false
		}
		m := data[i+1]
		if m == 0xDA {
			return false
		}
		if m == marker {
			return true
		}
		length := int(data[i+2])<<8 | int(data[i+3])
		i += 2 + length
	}
	return false
}
