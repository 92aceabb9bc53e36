package geo_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
)

func TestJitter(t *testing.T) {
	t.Run("each axis moves at most radius meters", func(t *testing.T) {
		r := rand.New(rand.NewPCG(7, 7))
		// the flat approximation overshoots the true meridian length by ~0.2%
		const tolerance = 1.005

		points := [][2]float64{{4.711, -74.0721}, {6.2442, -75.5812}, {-33.45, -70.66}, {64.1, -21.9}, {0, 0}}
		for _, p := range points {
			for _, radius := range []float64{0, 5, 30, 250, 1000} {
				for i := 0; i < 50; i++ {
					lat, lon := geo.Jitter(p[0], p[1], radius, r)

					dLat := geo.DistanceMeters(p[0], p[1], lat, p[1])
					dLon := geo.DistanceMeters(p[0], p[1], p[0], lon)
					total := geo.DistanceMeters(p[0], p[1], lat, lon)

					assert.LessOrEqual(t, dLat, radius*tolerance+1e-6)
					assert.LessOrEqual(t, dLon, radius*tolerance+1e-6)
					assert.LessOrEqual(t, total, radius*math.Sqrt2*tolerance+1e-6)
				}
			}
		}
	})

	t.Run("zero radius returns the input", func(t *testing.T) {
		lat, lon := geo.Jitter(4.711, -74.0721, 0, rand.New(rand.NewPCG(1, 1)))

		assert.Equal(t, 4.711, lat)
		assert.Equal(t, -74.0721, lon)
	})

	t.Run("huge radius stays on the globe", func(t *testing.T) {
		r := rand.New(rand.NewPCG(9, 9))
		for _, radius := range []float64{5e7, 1e300} {
			for i := 0; i < 200; i++ {
				lat, lon := geo.Jitter(4.6, -74, radius, r)

				assert.GreaterOrEqual(t, lat, -90.0)
				assert.LessOrEqual(t, lat, 90.0)
				assert.GreaterOrEqual(t, lon, -180.0)
				assert.LessOrEqual(t, lon, 180.0)
			}
		}
	})

	t.Run("non finite radius returns the input", func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 2))
		for _, radius := range []float64{math.Inf(1), math.NaN(), -5} {
			lat, lon := geo.Jitter(4.6, -74, radius, r)

			assert.Equal(t, 4.6, lat)
			assert.Equal(t, -74.0, lon)
		}
	})

	t.Run("crossing the antimeridian wraps longitude", func(t *testing.T) {
		r := rand.New(rand.NewPCG(5, 6))
		for i := 0; i < 200; i++ {
			_, lon := geo.Jitter(0, 179.999, 1000, r)

			assert.LessOrEqual(t, math.Abs(lon), 180.0)
		}
	})

	t.Run("offsets spread over the whole box", func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 4))
		var minLat, maxLat float64
		for i := 0; i < 500; i++ {
			lat, _ := geo.Jitter(0, 0, 111, r)
			minLat = math.Min(minLat, lat)
			maxLat = math.Max(maxLat, lat)
		}

		assert.Less(t, minLat, -0.0009)
		assert.Greater(t, maxLat, 0.0009)
	})
}

func TestDistanceMeters(t *testing.T) {
	t.Run("bogota to medellin", func(t *testing.T) {
		d := geo.DistanceMeters(4.711, -74.0721, 6.2442, -75.5812)

		assert.InDelta(t, 240_000, d, 5_000)
	})

	t.Run("same point", func(t *testing.T) {
		assert.Zero(t, geo.DistanceMeters(10, 10, 10, 10))
	})
}
