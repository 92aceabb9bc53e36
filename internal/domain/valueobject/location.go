package valueobject

const (
	SourceManual    = "manual"
	SourceLocalDB   = "local_db"
	SourceNominatim = "nominatim"
	SourceCache     = "cache"
)

const (
	DefaultAltitude   = 100.0
	DefaultPostalCode = "110111"
)

// Location is a resolved capture position. Altitude is signed meters.
type Location struct {
	Latitude   float64
	Longitude  float64
	Altitude   float64
	Department string
	PostalCode string
	Source     string
}

func NewLocation(lat, lng, altitude float64, source string) *Location {
	return &Location{
		Latitude:  lat,
		Longitude: lng,
		Altitude:  altitude,
		Source:    source,
	}
}

func (l *Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// WithPosition returns a copy moved to lat/lng, keeping the administrative fields.
func (l Location) WithPosition(lat, lng float64) Location {
	l.Latitude = lat
	l.Longitude = lng
	return l
}
