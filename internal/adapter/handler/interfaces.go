package handler

import (
	"context"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/sanitize"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type SanitizeService interface {
	Sanitize(ctx context.Context, input sanitize.Input) (*sanitize.Result, error)
}

type GeocodeService interface {
	Geocode(ctx context.Context, address, city string) (*valueobject.Location, error)
}

type CatalogService interface {
	ListCities(ctx context.Context) ([]entity.City, error)
	ListDevices(ctx context.Context) ([]entity.DeviceProfile, error)
}

type VerifyService interface {
	Verify(ctx context.Context, data []byte) (map[string]map[string]string, error)
}
