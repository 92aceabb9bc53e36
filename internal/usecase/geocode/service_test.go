package geocode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/mocks"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
)

var bogota = &entity.City{
	Name:        "Bogotá",
	Department:  "Cundinamarca",
	Latitude:    4.7110,
	Longitude:   -74.0721,
	Altitude:    2640,
	PostalCodes: []string{"110111", "110221"},
}

func ptr(v float64) *float64 {
	return &v
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("manual coordinates win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		svc := geocode.NewService(cities, geocoder, nil, 0, zap.NewNop())

		loc, err := svc.Resolve(ctx, geocode.ResolveInput{
			ManualLat: ptr(3.4516),
			ManualLon: ptr(-76.532),
			Address:   "Calle 5",
			City:      "Cali",
		})

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceManual, loc.Source)
		assert.InDelta(t, 3.4516, loc.Latitude, 1e-9)
		assert.Equal(t, valueobject.DefaultAltitude, loc.Altitude)
		assert.Equal(t, valueobject.DefaultPostalCode, loc.PostalCode)
	})

	t.Run("manual altitude and postal code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), nil, nil, 0, zap.NewNop())

		loc, err := svc.Resolve(ctx, geocode.ResolveInput{
			ManualLat:  ptr(-0.5),
			ManualLon:  ptr(-76.0),
			ManualAlt:  ptr(-12),
			PostalCode: "860001",
		})

		require.NoError(t, err)
		assert.Equal(t, -12.0, loc.Altitude)
		assert.Equal(t, "860001", loc.PostalCode)
	})

	t.Run("manual coordinates out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), nil, nil, 0, zap.NewNop())

		_, err := svc.Resolve(ctx, geocode.ResolveInput{ManualLat: ptr(91), ManualLon: ptr(0)})

		assert.ErrorIs(t, err, domain.ErrInvalidLocation)
	})

	t.Run("only latitude falls through to city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		svc := geocode.NewService(cities, nil, nil, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Bogotá").Return(bogota, nil)

		loc, err := svc.Resolve(ctx, geocode.ResolveInput{ManualLat: ptr(4), City: "Bogotá"})

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceLocalDB, loc.Source)
	})

	t.Run("nothing to resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), nil, nil, 0, zap.NewNop())

		_, err := svc.Resolve(ctx, geocode.ResolveInput{City: "  "})

		assert.ErrorIs(t, err, domain.ErrLocationRequired)
	})
}

func TestService_Geocode(t *testing.T) {
	ctx := context.Background()

	t.Run("city from the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		svc := geocode.NewService(cities, nil, nil, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "bogota").Return(bogota, nil)

		loc, err := svc.Geocode(ctx, "", "bogota")

		require.NoError(t, err)
		assert.Equal(t, bogota.Latitude, loc.Latitude)
		assert.Equal(t, bogota.Altitude, loc.Altitude)
		assert.Equal(t, "Cundinamarca", loc.Department)
		assert.Contains(t, bogota.PostalCodes, loc.PostalCode)
		assert.Equal(t, valueobject.SourceLocalDB, loc.Source)
	})

	t.Run("unknown city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		svc := geocode.NewService(cities, nil, nil, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Atlantis").Return(nil, domain.ErrLocationNotFound)

		_, err := svc.Geocode(ctx, "", "Atlantis")

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	})

	t.Run("address enriched with city data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		cache := mocks.NewMockGeocodeCache(ctrl)
		svc := geocode.NewService(cities, geocoder, cache, 60000, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Bogotá").Return(bogota, nil)
		cache.EXPECT().Get(ctx, "Carrera 7 #32-16, Bogotá").Return(0.0, 0.0, false, nil)
		geocoder.EXPECT().Search(ctx, "Carrera 7 #32-16", "Bogotá").Return(4.6205, -74.0694, nil)
		cache.EXPECT().Set(ctx, "Carrera 7 #32-16, Bogotá", 4.6205, -74.0694).Return(nil)

		loc, err := svc.Geocode(ctx, "Carrera 7 #32-16", "Bogotá")

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceNominatim, loc.Source)
		assert.InDelta(t, 4.6205, loc.Latitude, 1e-9)
		assert.Equal(t, 2640.0, loc.Altitude)
		assert.Equal(t, "Cundinamarca", loc.Department)
		assert.Contains(t, bogota.PostalCodes, loc.PostalCode)
	})

	t.Run("address without city uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), geocoder, nil, 60000, zap.NewNop())

		geocoder.EXPECT().Search(ctx, "Parque Lleras", "").Return(6.2088, -75.5676, nil)

		loc, err := svc.Geocode(ctx, "Parque Lleras", "")

		require.NoError(t, err)
		assert.Equal(t, valueobject.DefaultAltitude, loc.Altitude)
		assert.Equal(t, valueobject.DefaultPostalCode, loc.PostalCode)
		assert.Empty(t, loc.Department)
	})

	t.Run("cache hit skips the geocoder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		cache := mocks.NewMockGeocodeCache(ctrl)
		svc := geocode.NewService(cities, geocoder, cache, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Bogotá").Return(bogota, nil)
		cache.EXPECT().Get(ctx, "Calle 26, Bogotá").Return(4.65, -74.1, true, nil)

		loc, err := svc.Geocode(ctx, "Calle 26", "Bogotá")

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceCache, loc.Source)
		assert.InDelta(t, 4.65, loc.Latitude, 1e-9)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		cache := mocks.NewMockGeocodeCache(ctrl)
		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), geocoder, cache, 0, zap.NewNop())

		cache.EXPECT().Get(ctx, "Calle 26").Return(0.0, 0.0, false, errors.New("connection refused"))
		geocoder.EXPECT().Search(ctx, "Calle 26", "").Return(4.65, -74.1, nil)
		cache.EXPECT().Set(ctx, "Calle 26", 4.65, -74.1).Return(errors.New("connection refused"))

		loc, err := svc.Geocode(ctx, "Calle 26", "")

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceNominatim, loc.Source)
	})

	t.Run("geocoder failure falls back to city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		svc := geocode.NewService(cities, geocoder, nil, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Bogotá").Return(bogota, nil)
		geocoder.EXPECT().Search(ctx, "Calle 26", "Bogotá").Return(0.0, 0.0, errors.New("timeout"))

		loc, err := svc.Geocode(ctx, "Calle 26", "Bogotá")

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceLocalDB, loc.Source)
		assert.Equal(t, bogota.Latitude, loc.Latitude)
	})

	t.Run("far away match falls back to city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		svc := geocode.NewService(cities, geocoder, nil, 60000, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Bogotá").Return(bogota, nil)
		geocoder.EXPECT().Search(ctx, "Calle 10", "Bogotá").Return(10.39, -75.48, nil)

		loc, err := svc.Geocode(ctx, "Calle 10", "Bogotá")

		require.NoError(t, err)
		assert.Equal(t, valueobject.SourceLocalDB, loc.Source)
	})

	t.Run("geocoder failure without city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		geocoder := mocks.NewMockAddressGeocoder(ctrl)
		svc := geocode.NewService(mocks.NewMockCityRepository(ctrl), geocoder, nil, 0, zap.NewNop())

		geocoder.EXPECT().Search(ctx, "Calle 10", "").Return(0.0, 0.0, domain.ErrLocationNotFound)

		_, err := svc.Geocode(ctx, "Calle 10", "")

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	})

	t.Run("geocoder disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cities := mocks.NewMockCityRepository(ctrl)
		svc := geocode.NewService(cities, nil, nil, 0, zap.NewNop())

		cities.EXPECT().FindCity(ctx, "Cali").Return(&entity.City{Name: "Cali", Latitude: 3.45, Longitude: -76.53}, nil)

		loc, err := svc.Geocode(ctx, "Avenida 6N", "Cali")

		require.NoError(t, err)
		assert.Equal(t, valueobject.DefaultPostalCode, loc.PostalCode)
		assert.Equal(t, valueobject.SourceLocalDB, loc.Source)
	})
}
