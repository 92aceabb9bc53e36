package response

import "github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"

type CityResponse struct {
	Department string  `json:"department"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Altitude   float64 `json:"altitude"`
}

type DeviceResponse struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// CitiesFromEntities keys the cities by name.
func CitiesFromEntities(cities []entity.City) map[string]CityResponse {
	out := make(map[string]CityResponse, len(cities))
	for _, c := range cities {
		out[c.Name] = CityResponse{
			Department: c.Department,
			Latitude:   c.Latitude,
			Longitude:  c.Longitude,
			Altitude:   c.Altitude,
		}
	}
	return out
}

func DevicesFromEntities(devices []entity.DeviceProfile) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for i, d := range devices {
		out = append(out, DeviceResponse{ID: i, Label: d.Label()})
	}
	return out
}
