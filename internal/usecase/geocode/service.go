package geocode

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
)

type Service struct {
	cities          repository.CityRepository
	geocoder        repository.AddressGeocoder
	cache           repository.GeocodeCache
	maxCityDistance float64
	logger          *zap.Logger
}

// NewService builds the resolver. geocoder and cache may be nil, in which
// case addresses resolve to their city. maxCityDistanceM discards geocoder
// answers farther than that from the named city; zero disables the check.
func NewService(
	cities repository.CityRepository,
	geocoder repository.AddressGeocoder,
	cache repository.GeocodeCache,
	maxCityDistanceM float64,
	logger *zap.Logger,
) *Service {
	return &Service{
		cities:          cities,
		geocoder:        geocoder,
		cache:           cache,
		maxCityDistance: maxCityDistanceM,
		logger:          logger,
	}
}

type ResolveInput struct {
	ManualLat  *float64
	ManualLon  *float64
	ManualAlt  *float64
	PostalCode string
	Address    string
	City       string
}

// Resolve picks the batch location: manual coordinates first, then the
// address, then the city.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*valueobject.Location, error) {
	if input.ManualLat != nil && input.ManualLon != nil {
		return s.manual(input)
	}
	return s.Geocode(ctx, input.Address, input.City)
}

// Geocode resolves an address, falling back to the city when the address
// cannot be found.
func (s *Service) Geocode(ctx context.Context, address, city string) (*valueobject.Location, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)

	switch {
	case address != "":
		return s.geocodeAddress(ctx, address, city)
	case city != "":
		return s.geocodeCity(ctx, city)
	default:
		return nil, domain.ErrLocationRequired
	}
}

func (s *Service) manual(input ResolveInput) (*valueobject.Location, error) {
	altitude := valueobject.DefaultAltitude
	if input.ManualAlt != nil {
		altitude = *input.ManualAlt
	}

	loc := valueobject.NewLocation(*input.ManualLat, *input.ManualLon, altitude, valueobject.SourceManual)
	if !loc.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	loc.PostalCode = input.PostalCode
	if loc.PostalCode == "" {
		loc.PostalCode = valueobject.DefaultPostalCode
	}
	return loc, nil
}

func (s *Service) geocodeCity(ctx context.Context, name string) (*valueobject.Location, error) {
	city, err := s.cities.FindCity(ctx, name)
	if err != nil {
		return nil, err
	}
	return cityLocation(city), nil
}

func (s *Service) geocodeAddress(ctx context.Context, address, cityName string) (*valueobject.Location, error) {
	var city *entity.City
	if cityName != "" {
		found, err := s.cities.FindCity(ctx, cityName)
		if err != nil && !errors.Is(err, domain.ErrLocationNotFound) {
			return nil, err
		}
		city = found
	}

	lat, lon, source, err := s.lookup(ctx, address, cityName)
	if err == nil && city != nil && s.maxCityDistance > 0 {
		if d := geo.DistanceMeters(lat, lon, city.Latitude, city.Longitude); d > s.maxCityDistance {
			err = fmt.Errorf("%w: match is %.0f m from %s", domain.ErrLocationNotFound, d, city.Name)
		}
	}

	if err != nil {
		s.logger.Warn("address lookup failed, using city",
			zap.String("address", address),
			zap.String("city", cityName),
			zap.Error(err),
		)
		if city == nil {
			return nil, domain.ErrLocationNotFound
		}
		return cityLocation(city), nil
	}

	loc := valueobject.NewLocation(lat, lon, valueobject.DefaultAltitude, source)
	loc.PostalCode = valueobject.DefaultPostalCode
	if city != nil {
		loc.Altitude = city.Altitude
		loc.Department = city.Department
		loc.PostalCode = pickPostalCode(city)
	}
	return loc, nil
}

// lookup consults the cache before the geocoder and stores fresh answers.
func (s *Service) lookup(ctx context.Context, address, city string) (lat, lon float64, source string, err error) {
	query := address
	if city != "" {
		query += ", " + city
	}

	if s.cache != nil {
		lat, lon, ok, err := s.cache.Get(ctx, query)
		if err != nil {
			s.logger.Warn("geocode cache read failed", zap.Error(err))
		} else if ok {
			return lat, lon, valueobject.SourceCache, nil
		}
	}

	if s.geocoder == nil {
		return 0, 0, "", domain.ErrLocationNotFound
	}

	lat, lon, err = s.geocoder.Search(ctx, address, city)
	if err != nil {
		return 0, 0, "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, lat, lon); err != nil {
			s.logger.Warn("geocode cache write failed", zap.Error(err))
		}
	}
	return lat, lon, valueobject.SourceNominatim, nil
}

func cityLocation(city *entity.City) *valueobject.Location {
	loc := valueobject.NewLocation(city.Latitude, city.Longitude, city.Altitude, valueobject.SourceLocalDB)
	loc.Department = city.Department
	loc.PostalCode = pickPostalCode(city)
	return loc
}

func pickPostalCode(city *entity.City) string {
	if len(city.PostalCodes) == 0 {
		return valueobject.DefaultPostalCode
	}
	return city.PostalCodes[rand.IntN(len(city.PostalCodes))]
}
