package photo

import (
	"math/rand/v2"
	"sort"
)

const DefaultTier = "medium"

type FloatRange struct {
	Min float64
	Max float64
}

func (f FloatRange) Sample(r *rand.Rand) float64 {
	return f.Min + r.Float64()*(f.Max-f.Min)
}

func (f FloatRange) Contains(v float64) bool {
	return v >= f.Min && v <= f.Max
}

// IntRange is inclusive on both ends.
type IntRange struct {
	Min int
	Max int
}

func (i IntRange) Sample(r *rand.Rand) int {
	return i.Min + r.IntN(i.Max-i.Min+1)
}

func (i IntRange) Contains(v int) bool {
	return v >= i.Min && v <= i.Max
}

// Tier is a named uniquification intensity.
type Tier struct {
	Name        string
	NoiseSigma  float64
	ColorShift  float64
	Brightness  FloatRange
	Contrast    FloatRange
	Sharpness   FloatRange
	CropPx      int
	RotationDeg float64
	Quality     IntRange
}

var tiers = map[string]Tier{
	"low": {
		Name:        "low",
		NoiseSigma:  1.5,
		ColorShift:  1,
		Brightness:  FloatRange{0.99, 1.01},
		Contrast:    FloatRange{0.99, 1.01},
		Sharpness:   FloatRange{0.97, 1.03},
		CropPx:      3,
		RotationDeg: 0.3,
		Quality:     IntRange{92, 96},
	},
	"medium": {
		Name:        "medium",
		NoiseSigma:  2.5,
		ColorShift:  2,
		Brightness:  FloatRange{0.97, 1.03},
		Contrast:    FloatRange{0.97, 1.03},
		Sharpness:   FloatRange{0.95, 1.05},
		CropPx:      6,
		RotationDeg: 0.5,
		Quality:     IntRange{88, 94},
	},
	"high": {
		Name:        "high",
		NoiseSigma:  4.0,
		ColorShift:  4,
		Brightness:  FloatRange{0.95, 1.05},
		Contrast:    FloatRange{0.95, 1.05},
		Sharpness:   FloatRange{0.90, 1.10},
		CropPx:      12,
		RotationDeg: 1.0,
		Quality:     IntRange{84, 91},
	},
}

// LookupTier falls back to medium for unknown names.
func LookupTier(name string) Tier {
	if t, ok := tiers[name]; ok {
		return t
	}
	return tiers[DefaultTier]
}

func TierNames() []string {
	names := make([]string, 0, len(tiers))
	for name := range tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
