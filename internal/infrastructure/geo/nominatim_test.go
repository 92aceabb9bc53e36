package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
)

func newClient(url string) *geo.NominatimClient {
	return geo.NewNominatimClient(config.GeocoderConfig{
		BaseURL:     url,
		UserAgent:   "PhotoSanitizer/test",
		Timeout:     2 * time.Second,
		CountryCode: "co",
		CountryName: "Colombia",
	}, valueobject.ColombiaBounds)
}

func TestNominatimClient_Search(t *testing.T) {
	t.Run("returns the first match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Calle 26 #59-51, Bogotá, Colombia", r.URL.Query().Get("q"))
			assert.Equal(t, "co", r.URL.Query().Get("countrycodes"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "PhotoSanitizer/test", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"lat":"4.6486","lon":"-74.1018","display_name":"x"}]`))
		}))
		defer srv.Close()

		lat, lon, err := newClient(srv.URL).Search(context.Background(), "Calle 26 #59-51", "Bogotá")

		require.NoError(t, err)
		assert.InDelta(t, 4.6486, lat, 1e-9)
		assert.InDelta(t, -74.1018, lon, 1e-9)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, _, err := newClient(srv.URL).Search(context.Background(), "nowhere", "")

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	})

	t.Run("matches outside the country are discarded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"lat":"40.4168","lon":"-3.7038"}]`))
		}))
		defer srv.Close()

		_, _, err := newClient(srv.URL).Search(context.Background(), "Calle Mayor", "Madrid")

		assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	})

	t.Run("server errors are reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, _, err := newClient(srv.URL).Search(context.Background(), "Carrera 7", "")

		assert.ErrorContains(t, err, "429")
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := newClient(srv.URL).Search(ctx, "Carrera 7", "")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
