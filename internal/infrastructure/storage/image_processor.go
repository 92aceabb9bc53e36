package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	adapterStorage "github.com/marcos-nsantos/photo-sanitizer/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/metadata"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/photo"
)

// ImageProcessorImpl runs one photo through strip, uniquify, re-encode,
// jitter, compose and inject.
type ImageProcessorImpl struct {
	composer *metadata.Composer
	logger   *zap.Logger
}

func NewImageProcessor(devices []entity.DeviceProfile, logger *zap.Logger) *ImageProcessorImpl {
	return &ImageProcessorImpl{
		composer: metadata.NewComposer(devices),
		logger:   logger,
	}
}

func (p *ImageProcessorImpl) Process(ctx context.Context, in adapterStorage.ProcessInput) (*adapterStorage.ProcessOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf, err := photo.DecodeAndStrip(in.Data)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("decoded image", zap.Int("width", buf.Width), zap.Int("height", buf.Height))

	tier := photo.LookupTier(in.Intensity)
	unique, qualityRange := photo.Uniquify(buf, tier, in.Rand)
	quality := qualityRange.Sample(in.Rand)

	encoded, err := photo.EncodeJPEG(unique, quality)
	if err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}

	lat, lon := geo.Jitter(in.Location.Latitude, in.Location.Longitude, in.JitterRadius, in.Rand)

	set := p.composer.Compose(metadata.ComposeInput{
		Latitude:  lat,
		Longitude: lon,
		Altitude:  in.Location.Altitude,
		Timestamp: in.CapturedAt,
		Device:    in.Device,
		Width:     unique.Width,
		Height:    unique.Height,
		Keyword:   in.Keyword,
		Place:     in.Place,
	}, in.Rand)

	final, err := metadata.Inject(encoded, set)
	if err != nil {
		return nil, err
	}

	device := set.Image.Make + " " + set.Image.Model
	p.logger.Debug("sanitized image",
		zap.String("tier", tier.Name),
		zap.Int("width", unique.Width),
		zap.Int("height", unique.Height),
		zap.Int("quality", quality),
		zap.String("device", device),
		zap.Int("bytes", len(final)),
	)

	return &adapterStorage.ProcessOutput{
		Data:      final,
		Width:     unique.Width,
		Height:    unique.Height,
		Quality:   quality,
		Device:    device,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
