package repository

import (
	"context"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type CityRepository interface {
	ListCities(ctx context.Context) ([]entity.City, error)
	FindCity(ctx context.Context, name string) (*entity.City, error)
}

// DeviceRepository exposes the device catalog. A device id is its position
// in ListDevices.
type DeviceRepository interface {
	ListDevices(ctx context.Context) ([]entity.DeviceProfile, error)
	GetDevice(ctx context.Context, id int) (*entity.DeviceProfile, error)
}

type AddressGeocoder interface {
	Search(ctx context.Context, address, city string) (lat, lon float64, err error)
}

type GeocodeCache interface {
	Get(ctx context.Context, query string) (lat, lon float64, ok bool, err error)
	Set(ctx context.Context, query string, lat, lon float64) error
}
