package metadata

import "github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"

// DateTimeLayout is the EXIF date-time format.
const DateTimeLayout = "2006:01:02 15:04:05"

// GPSDateLayout is the EXIF GPS date format.
const GPSDateLayout = "2006:01:02"

// Description is written to the description, title, subject and keyword
// tags of the image directory.
type Description struct {
	Text string
}

type ImageDirectory struct {
	Make             string
	Model            string
	Software         string
	DateTime         string
	Orientation      int
	XResolution      valueobject.Rational
	YResolution      valueobject.Rational
	ResolutionUnit   int
	YCbCrPositioning int
	Description      *Description
}

type CaptureDirectory struct {
	ExposureTime            valueobject.Rational
	FNumber                 valueobject.Rational
	ExposureProgram         int
	ISO                     int
	ExifVersion             string
	DateTimeOriginal        string
	DateTimeDigitized       string
	SubSecTimeOriginal      string
	SubSecTimeDigitized     string
	ComponentsConfiguration []byte
	FocalLength             valueobject.Rational
	ColorSpace              int
	PixelX                  int
	PixelY                  int
	FlashpixVersion         string
	SceneCaptureType        int
	Flash                   int
	WhiteBalance            int
	MeteringMode            int
	ExposureMode            int
	SensingMethod           int
}

type GPSDirectory struct {
	VersionID    []byte
	LatitudeRef  string
	Latitude     [3]valueobject.Rational
	LongitudeRef string
	Longitude    [3]valueobject.Rational
	AltitudeRef  int
	Altitude     valueobject.Rational
	TimeStamp    [3]valueobject.Rational
	DateStamp    string
}

// ThumbnailDirectory is always written empty.
type ThumbnailDirectory struct{}

// DirectorySet is the full synthetic metadata of one photo.
type DirectorySet struct {
	Image     ImageDirectory
	Capture   CaptureDirectory
	GPS       GPSDirectory
	Thumbnail ThumbnailDirectory
}
