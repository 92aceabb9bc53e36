package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
)

// NominatimClient resolves free-text addresses with an OpenStreetMap
// Nominatim search endpoint, restricted to one country.
type NominatimClient struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	countryCode string
	countryName string
	bounds      valueobject.BoundingBox
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func NewNominatimClient(cfg config.GeocoderConfig, bounds valueobject.BoundingBox) *NominatimClient {
	return &NominatimClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		userAgent:   cfg.UserAgent,
		countryCode: cfg.CountryCode,
		countryName: cfg.CountryName,
		bounds:      bounds,
	}
}

// Search returns the best match for address, optionally narrowed by city.
func (c *NominatimClient) Search(ctx context.Context, address, city string) (lat, lon float64, err error) {
	query := address
	if city != "" {
		query += ", " + city
	}
	if c.countryName != "" {
		query += ", " + c.countryName
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.countryCode != "" {
		params.Set("countrycodes", c.countryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("calling geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return 0, 0, fmt.Errorf("decoding geocoder response: %w", err)
	}
	if len(places) == 0 {
		return 0, 0, domain.ErrLocationNotFound
	}

	lat, err = strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing latitude %q: %w", places[0].Lat, err)
	}
	lon, err = strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing longitude %q: %w", places[0].Lon, err)
	}

	if c.bounds.IsValid() && !c.bounds.Contains(lat, lon) {
		return 0, 0, fmt.Errorf("%w: %.5f,%.5f is outside the country", domain.ErrLocationNotFound, lat, lon)
	}

	return lat, lon, nil
}
