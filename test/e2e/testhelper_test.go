package e2e_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/archive"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/catalog"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/metadata"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/server"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/sanitize"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/verify"
)

const (
	apiBasePath    = "/api/v1"
	testRateLimit  = 50
	testSeed       = 42
	maxUploadBytes = 32 << 20
)

type TestApp struct {
	Server     *httptest.Server
	Geocoder   *httptest.Server
	Redis      *redis.Client
	Container  testcontainers.Container
	BaseURL    string
	httpClient *http.Client

	// geocoderCalls counts requests that reached the fake Nominatim.
	geocoderCalls atomic.Int32
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	addr, err := redisContainer.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)
	redisClient := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, redisClient.Ping(ctx).Err())

	app := &TestApp{
		Redis:     redisClient,
		Container: redisContainer,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	// Fake Nominatim that places every address in Chapinero, Bogotá.
	app.Geocoder = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.geocoderCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"4.6486","lon":"-74.0628","display_name":"Chapinero, Bogotá"}]`))
	}))

	cat, err := catalog.Load()
	require.NoError(t, err)
	devices, err := cat.ListDevices(ctx)
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	geocoder := geo.NewNominatimClient(config.GeocoderConfig{
		BaseURL:     app.Geocoder.URL,
		UserAgent:   "PhotoSanitizer/e2e",
		Timeout:     5 * time.Second,
		CountryCode: "co",
		CountryName: "Colombia",
	}, valueobject.ColombiaBounds)
	geocodeCache := cache.NewGeocodeCache(redisClient, time.Hour)
	rateLimiter := middleware.NewRateLimiter(redisClient, config.RateLimitConfig{
		Enabled:  true,
		Requests: testRateLimit,
		Window:   time.Minute,
	}, logger)

	geocodeSvc := geocode.NewService(cat, geocoder, geocodeCache, 60_000, logger)
	sanitizeSvc := sanitize.NewService(
		geocodeSvc,
		cat,
		storage.NewImageProcessor(devices, logger),
		archive.NewZipArchiver(),
		nil,
		sanitize.Options{
			MaxFiles:         5,
			Workers:          2,
			DefaultIntensity: "medium",
			JitterRadius:     30,
			MaxJitterRadius:  1000,
			WindowDays:       30,
			FirstHour:        7,
			LastHour:         19,
			Seed:             testSeed,
		},
		logger,
	)
	verifySvc := verify.NewService(metadata.NewReader())

	router := server.NewRouter(server.RouterConfig{
		SanitizeHandler: handler.NewSanitizeHandler(sanitizeSvc, maxUploadBytes, 3),
		GeocodeHandler:  handler.NewGeocodeHandler(geocodeSvc),
		CatalogHandler:  handler.NewCatalogHandler(cat),
		VerifyHandler:   handler.NewVerifyHandler(verifySvc),
		RateLimiter:     rateLimiter,
		AllowedOrigins:  []string{"*"},
		Logger:          logger,
		Environment:     "test",
	})

	app.Server = httptest.NewServer(router.Engine())
	app.BaseURL = app.Server.URL

	return app
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Geocoder.Close()
	_ = app.Redis.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

type upload struct {
	name    string
	content []byte
}

// postForm sends a multipart form; files go under field.
func (app *TestApp) postForm(path, field string, files []upload, fields map[string]string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range files {
		part, err := writer.CreateFormFile(field, f.name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.content); err != nil {
			return nil, err
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.httpClient.Get(app.BaseURL + apiBasePath + path)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func readZip(t *testing.T, resp *http.Response) map[string][]byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)

	entries := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		entries[f.Name] = data
	}
	return entries
}

// gradientPNG renders a small image with enough structure to survive
// rotation and cropping.
func gradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
