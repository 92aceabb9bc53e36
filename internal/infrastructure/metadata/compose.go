package metadata

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
)

var (
	isoCandidates      = []int{50, 64, 80, 100, 125, 160, 200, 250, 320, 400, 500, 640, 800}
	exposureCandidates = []int{60, 100, 120, 125, 160, 200, 250, 320, 500, 1000, 2000, 4000}
)

const (
	fallbackISO                 = 200
	fallbackExposureDenominator = 125
)

// fallbackDevice is used when a random device is requested from an empty catalog.
var fallbackDevice = entity.DeviceProfile{
	Make:                   "samsung",
	Model:                  "SM-A546E",
	ModelName:              "Galaxy A54 5G",
	Software:               "A546EXXS5BWK2",
	ISOMin:                 50,
	ISOMax:                 800,
	MaxExposureDenominator: 4000,
	FNumber:                valueobject.NewRational(18, 10),
	FocalLength:            valueobject.NewRational(550, 100),
	PixelX:                 4080,
	PixelY:                 3060,
}

type ComposeInput struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
	Timestamp time.Time
	Device    entity.DeviceChoice
	Width     int
	Height    int
	Keyword   string
	Place     string
}

type Composer struct {
	devices []entity.DeviceProfile
}

func NewComposer(devices []entity.DeviceProfile) *Composer {
	return &Composer{devices: devices}
}

// Compose assembles the directory set. Every numeric choice has a fallback,
// so composition cannot fail.
func (c *Composer) Compose(in ComposeInput, r *rand.Rand) DirectorySet {
	device, ok := in.Device.Resolve(c.devices, r)
	if !ok {
		device = fallbackDevice
	}

	ts := in.Timestamp.Truncate(time.Second)
	stamp := ts.Format(DateTimeLayout)
	// GPS time is always UTC; the DateTime fields keep the local wall clock.
	utc := ts.UTC()
	subsec := strconv.Itoa(100 + r.IntN(900))

	width, height := in.Width, in.Height
	if width <= 0 || height <= 0 {
		width, height = device.PixelX, device.PixelY
	}

	set := DirectorySet{
		Image: ImageDirectory{
			Make:             device.Make,
			Model:            device.Model,
			Software:         device.Software,
			DateTime:         stamp,
			Orientation:      1,
			XResolution:      valueobject.NewRational(72, 1),
			YResolution:      valueobject.NewRational(72, 1),
			ResolutionUnit:   2,
			YCbCrPositioning: 1,
			Description:      describe(in.Keyword, in.Place),
		},
		Capture: CaptureDirectory{
			ExposureTime:            valueobject.NewRational(1, uint32(pickExposure(device, r))),
			FNumber:                 device.FNumber,
			ExposureProgram:         2,
			ISO:                     pickISO(device, r),
			ExifVersion:             "0232",
			DateTimeOriginal:        stamp,
			DateTimeDigitized:       stamp,
			SubSecTimeOriginal:      subsec,
			SubSecTimeDigitized:     subsec,
			ComponentsConfiguration: []byte{1, 2, 3, 0},
			FocalLength:             device.FocalLength,
			ColorSpace:              1,
			PixelX:                  width,
			PixelY:                  height,
			FlashpixVersion:         "0100",
			SceneCaptureType:        0,
			Flash:                   0,
			WhiteBalance:            0,
			MeteringMode:            2,
			ExposureMode:            0,
			SensingMethod:           2,
		},
		GPS: GPSDirectory{
			VersionID:    []byte{2, 3, 0, 0},
			LatitudeRef:  hemisphere(in.Latitude, "N", "S"),
			Latitude:     toDMS(in.Latitude),
			LongitudeRef: hemisphere(in.Longitude, "E", "W"),
			Longitude:    toDMS(in.Longitude),
			AltitudeRef:  altitudeRef(in.Altitude),
			Altitude:     valueobject.NewRational(centimeters(in.Altitude), 100),
			TimeStamp: [3]valueobject.Rational{
				valueobject.NewRational(uint32(utc.Hour()), 1),
				valueobject.NewRational(uint32(utc.Minute()), 1),
				valueobject.NewRational(uint32(utc.Second()), 1),
			},
			DateStamp: utc.Format(GPSDateLayout),
		},
	}

	return set
}

// DescriptionText composes "<keyword> en <place>", or whichever is present.
func DescriptionText(keyword, place string) string {
	switch {
	case keyword != "" && place != "":
		return keyword + " en " + place
	case keyword != "":
		return keyword
	default:
		return place
	}
}

func describe(keyword, place string) *Description {
	text := DescriptionText(keyword, place)
	if text == "" {
		return nil
	}
	return &Description{Text: text}
}

func pickISO(device entity.DeviceProfile, r *rand.Rand) int {
	options := make([]int, 0, len(isoCandidates))
	for _, v := range isoCandidates {
		if device.SupportsISO(v) {
			options = append(options, v)
		}
	}
	if len(options) == 0 {
		return fallbackISO
	}
	return options[r.IntN(len(options))]
}

func pickExposure(device entity.DeviceProfile, r *rand.Rand) int {
	options := make([]int, 0, len(exposureCandidates))
	for _, v := range exposureCandidates {
		if v <= device.MaxExposureDenominator {
			options = append(options, v)
		}
	}
	if len(options) == 0 {
		return fallbackExposureDenominator
	}
	return options[r.IntN(len(options))]
}

func hemisphere(v float64, positive, negative string) string {
	if v >= 0 {
		return positive
	}
	return negative
}

func altitudeRef(alt float64) int {
	if alt >= 0 {
		return 0
	}
	return 1
}

func centimeters(alt float64) uint32 {
	c := math.Floor(math.Abs(alt) * 100)
	if c > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(c)
}

// toDMS encodes |deg| as degrees/1, minutes/1, seconds/10000.
func toDMS(deg float64) [3]valueobject.Rational {
	d := math.Abs(deg)
	degrees := math.Floor(d)
	m := (d - degrees) * 60
	minutes := math.Floor(m)
	seconds := (m - minutes) * 60

	return [3]valueobject.Rational{
		valueobject.NewRational(uint32(degrees), 1),
		valueobject.NewRational(uint32(minutes), 1),
		valueobject.NewRational(uint32(seconds*10000), 10000),
	}
}

// FromDMS is the inverse of the encoding used for GPS coordinates.
func FromDMS(dms [3]valueobject.Rational, ref string) float64 {
	v := dms[0].Float() + dms[1].Float()/60 + dms[2].Float()/3600
	if ref == "S" || ref == "W" {
		return -v
	}
	return v
}
