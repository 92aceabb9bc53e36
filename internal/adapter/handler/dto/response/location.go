package response

import "github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"

type LocationResponse struct {
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Altitude   float64 `json:"altitude"`
	Department string  `json:"department"`
	PostalCode string  `json:"postal_code"`
	Source     string  `json:"source"`
}

func LocationFromValue(loc *valueobject.Location) LocationResponse {
	return LocationResponse{
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Altitude:   loc.Altitude,
		Department: loc.Department,
		PostalCode: loc.PostalCode,
		Source:     loc.Source,
	}
}
