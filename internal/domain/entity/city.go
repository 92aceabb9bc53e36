package entity

type City struct {
	Name        string
	Department  string
	Latitude    float64
	Longitude   float64
	Altitude    float64
	PostalCodes []string
}
