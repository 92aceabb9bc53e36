package request

import (
	"math"
	"strconv"
	"strings"
)

// SanitizeRequest holds the form fields of a sanitize upload. Numbers are
// kept as text so that malformed values fall back to defaults instead of
// rejecting the batch.
type SanitizeRequest struct {
	City                 string `form:"city"`
	Address              string `form:"address"`
	ManualLat            string `form:"manual_lat"`
	ManualLon            string `form:"manual_lon"`
	ManualAlt            string `form:"manual_alt"`
	PostalCode           string `form:"postal_code"`
	DeviceID             string `form:"device_id"`
	RandomDevicePerPhoto string `form:"random_device_per_photo"`
	Intensity            string `form:"intensity"`
	JitterRadius         string `form:"jitter_radius"`
	DateFrom             string `form:"date_from"`
	DateTo               string `form:"date_to"`
	Keyword              string `form:"keyword"`
}

// ManualCoordinates parses the manual position. A malformed value discards
// all three fields.
func (r SanitizeRequest) ManualCoordinates() (lat, lon, alt *float64) {
	var ok bool
	if lat, ok = parseOptionalFloat(r.ManualLat); !ok {
		return nil, nil, nil
	}
	if lon, ok = parseOptionalFloat(r.ManualLon); !ok {
		return nil, nil, nil
	}
	if alt, ok = parseOptionalFloat(r.ManualAlt); !ok {
		return nil, nil, nil
	}
	return lat, lon, alt
}

// Device returns the requested catalog index, or nil for "random" and
// anything that is not a number.
func (r SanitizeRequest) Device() *int {
	id, err := strconv.Atoi(strings.TrimSpace(r.DeviceID))
	if err != nil {
		return nil
	}
	return &id
}

// RandomPerPhoto defaults to true when the field is absent.
func (r SanitizeRequest) RandomPerPhoto() bool {
	v := strings.TrimSpace(r.RandomDevicePerPhoto)
	return v == "" || v == "true"
}

func (r SanitizeRequest) Radius() *float64 {
	v, ok := parseOptionalFloat(r.JitterRadius)
	if !ok || v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func parseOptionalFloat(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
