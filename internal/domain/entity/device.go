package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
)

// DeviceProfile describes a camera whose capture parameters are forged into
// the output metadata. Profiles are read-only once loaded from the catalog.
type DeviceProfile struct {
	Make                   string
	Model                  string
	ModelName              string
	Software               string
	ISOMin                 int
	ISOMax                 int
	MaxExposureDenominator int
	FNumber                valueobject.Rational
	FocalLength            valueobject.Rational
	PixelX                 int
	PixelY                 int
}

func (d DeviceProfile) Label() string {
	name := d.ModelName
	if name == "" {
		name = d.Model
	}
	return fmt.Sprintf("%s %s", d.Make, name)
}

func (d DeviceProfile) SupportsISO(iso int) bool {
	return iso >= d.ISOMin && iso <= d.ISOMax
}

// DeviceChoice selects the profile forged into a photo: either one fixed
// profile or a fresh uniform draw from the catalog for every photo.
type DeviceChoice struct {
	fixed *DeviceProfile
}

func FixedDevice(profile DeviceProfile) DeviceChoice {
	return DeviceChoice{fixed: &profile}
}

func RandomDevice() DeviceChoice {
	return DeviceChoice{}
}

func (c DeviceChoice) IsRandom() bool {
	return c.fixed == nil
}

// Resolve returns the fixed profile or draws one from catalog. ok is false
// only for a random choice over an empty catalog.
func (c DeviceChoice) Resolve(catalog []DeviceProfile, r *rand.Rand) (profile DeviceProfile, ok bool) {
	if c.fixed != nil {
		return *c.fixed, true
	}
	if len(catalog) == 0 {
		return DeviceProfile{}, false
	}
	return catalog[r.IntN(len(catalog))], true
}
