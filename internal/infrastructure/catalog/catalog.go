package catalog

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
)

//go:embed data/*.yaml
var files embed.FS

type deviceRecord struct {
	Make                   string    `yaml:"make"`
	Model                  string    `yaml:"model"`
	ModelName              string    `yaml:"model_name"`
	Software               string    `yaml:"software"`
	ISOMin                 int       `yaml:"iso_min"`
	ISOMax                 int       `yaml:"iso_max"`
	MaxExposureDenominator int       `yaml:"max_exposure_denominator"`
	FNumber                [2]uint32 `yaml:"f_number"`
	FocalLength            [2]uint32 `yaml:"focal_length"`
	PixelX                 int       `yaml:"pixel_x"`
	PixelY                 int       `yaml:"pixel_y"`
}

type cityRecord struct {
	Name        string   `yaml:"name"`
	Department  string   `yaml:"department"`
	Latitude    float64  `yaml:"lat"`
	Longitude   float64  `yaml:"lon"`
	Altitude    float64  `yaml:"altitude"`
	PostalCodes []string `yaml:"postal_codes"`
}

// Catalog holds the read-only device and city tables. It is safe for
// concurrent use because nothing mutates it after loading.
type Catalog struct {
	devices []entity.DeviceProfile
	cities  []entity.City
}

// Load parses the embedded catalogs.
func Load() (*Catalog, error) {
	devicesData, err := files.ReadFile("data/devices.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading device catalog: %w", err)
	}
	citiesData, err := files.ReadFile("data/cities.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading city catalog: %w", err)
	}
	return Parse(devicesData, citiesData)
}

func Parse(devicesData, citiesData []byte) (*Catalog, error) {
	var deviceRecords []deviceRecord
	if err := yaml.Unmarshal(devicesData, &deviceRecords); err != nil {
		return nil, fmt.Errorf("parsing device catalog: %w", err)
	}
	var cityRecords []cityRecord
	if err := yaml.Unmarshal(citiesData, &cityRecords); err != nil {
		return nil, fmt.Errorf("parsing city catalog: %w", err)
	}

	c := &Catalog{
		devices: make([]entity.DeviceProfile, 0, len(deviceRecords)),
		cities:  make([]entity.City, 0, len(cityRecords)),
	}

	for i, d := range deviceRecords {
		if d.Make == "" || d.Model == "" {
			return nil, fmt.Errorf("device %d: make and model are required", i)
		}
		if d.ISOMin <= 0 || d.ISOMin > d.ISOMax {
			return nil, fmt.Errorf("device %d (%s): invalid ISO range %d-%d", i, d.Model, d.ISOMin, d.ISOMax)
		}
		if d.FNumber[1] == 0 || d.FocalLength[1] == 0 {
			return nil, fmt.Errorf("device %d (%s): zero denominator", i, d.Model)
		}
		c.devices = append(c.devices, entity.DeviceProfile{
			Make:                   d.Make,
			Model:                  d.Model,
			ModelName:              d.ModelName,
			Software:               d.Software,
			ISOMin:                 d.ISOMin,
			ISOMax:                 d.ISOMax,
			MaxExposureDenominator: d.MaxExposureDenominator,
			FNumber:                valueobject.NewRational(d.FNumber[0], d.FNumber[1]),
			FocalLength:            valueobject.NewRational(d.FocalLength[0], d.FocalLength[1]),
			PixelX:                 d.PixelX,
			PixelY:                 d.PixelY,
		})
	}

	for _, r := range cityRecords {
		if r.Name == "" {
			return nil, fmt.Errorf("city without name")
		}
		if !valueobject.NewLocation(r.Latitude, r.Longitude, r.Altitude, valueobject.SourceLocalDB).IsValid() {
			return nil, fmt.Errorf("city %s: %w", r.Name, domain.ErrInvalidLocation)
		}
		c.cities = append(c.cities, entity.City{
			Name:        r.Name,
			Department:  r.Department,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Altitude:    r.Altitude,
			PostalCodes: r.PostalCodes,
		})
	}

	sort.Slice(c.cities, func(i, j int) bool {
		return c.cities[i].Name < c.cities[j].Name
	})

	return c, nil
}

// ListDevices returns the device profiles in catalog order. The position in
// the slice is the public device id.
func (c *Catalog) ListDevices(ctx context.Context) ([]entity.DeviceProfile, error) {
	out := make([]entity.DeviceProfile, len(c.devices))
	copy(out, c.devices)
	return out, nil
}

func (c *Catalog) GetDevice(ctx context.Context, id int) (*entity.DeviceProfile, error) {
	if id < 0 || id >= len(c.devices) {
		return nil, domain.ErrDeviceNotFound
	}
	d := c.devices[id]
	return &d, nil
}

// ListCities returns every city sorted by name.
func (c *Catalog) ListCities(ctx context.Context) ([]entity.City, error) {
	out := make([]entity.City, len(c.cities))
	copy(out, c.cities)
	return out, nil
}

// FindCity matches name exactly, then case-insensitively, then as a
// case-insensitive substring of a catalog name.
func (c *Catalog) FindCity(ctx context.Context, name string) (*entity.City, error) {
	for i := range c.cities {
		if c.cities[i].Name == name {
			city := c.cities[i]
			return &city, nil
		}
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, domain.ErrLocationNotFound
	}

	for i := range c.cities {
		if strings.ToLower(c.cities[i].Name) == needle {
			city := c.cities[i]
			return &city, nil
		}
	}
	for i := range c.cities {
		if strings.Contains(strings.ToLower(c.cities[i].Name), needle) {
			city := c.cities[i]
			return &city, nil
		}
	}

	return nil, domain.ErrLocationNotFound
}
