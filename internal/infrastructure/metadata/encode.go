package metadata

import (
	"bytes"
	"fmt"
	"math"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	"golang.org/x/text/encoding/unicode"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
)

// maxAPP1Payload is what fits behind the two-byte APP1 length field.
const maxAPP1Payload = 0xFFFF - 2

var exifHeader = []byte("Exif\x00\x00")

// Encode serializes set into a TIFF-structured EXIF block.
func Encode(set DirectorySet) ([]byte, error) {
	ib, err := build(set)
	if err != nil {
		return nil, err
	}
	return encodeIfd(ib)
}

// Inject replaces every metadata segment of a JPEG (EXIF and XMP APP1, ICC
// APP2, IPTC APP13, comments) with a single EXIF APP1 built from set. The
// splice is done in memory and the scan data is copied through untouched.
func Inject(jpegData []byte, set DirectorySet) ([]byte, error) {
	ib, err := build(set)
	if err != nil {
		return nil, err
	}
	if _, err := encodeIfd(ib); err != nil {
		return nil, err
	}

	sl, err := parseJPEG(jpegData)
	if err != nil {
		return nil, err
	}

	sl = withoutMetadataSegments(sl)
	if err := sl.SetExif(ib); err != nil {
		return nil, fmt.Errorf("%w: installing exif segment: %v", domain.ErrEncoding, err)
	}

	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		return nil, fmt.Errorf("writing jpeg: %w", err)
	}
	return out.Bytes(), nil
}

// metadataMarkers are the segments that can carry provenance. APP0 (JFIF)
// and APP14 (Adobe color transform) are structural and kept.
var metadataMarkers = map[byte]bool{
	jpegstructure.MARKER_APP1:  true,
	jpegstructure.MARKER_APP2:  true,
	jpegstructure.MARKER_APP13: true,
	jpegstructure.MARKER_COM:   true,
}

func withoutMetadataSegments(sl *jpegstructure.SegmentList) *jpegstructure.SegmentList {
	segments := sl.Segments()
	kept := make([]*jpegstructure.Segment, 0, len(segments))
	for _, seg := range segments {
		if metadataMarkers[seg.MarkerId] {
			continue
		}
		kept = append(kept, seg)
	}
	return jpegstructure.NewSegmentList(kept)
}

func parseJPEG(data []byte) (*jpegstructure.SegmentList, error) {
	intfc, err := jpegstructure.NewJpegMediaParser().ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing jpeg: %w", err)
	}
	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return nil, fmt.Errorf("parsing jpeg: unexpected media context %T", intfc)
	}
	return sl, nil
}

func encodeIfd(ib *exif.IfdBuilder) ([]byte, error) {
	raw, err := exif.NewIfdByteEncoder().EncodeToExif(ib)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	if size := len(exifHeader) + len(raw); size > maxAPP1Payload {
		return nil, fmt.Errorf("%w: APP1 payload of %d bytes exceeds %d", domain.ErrEncoding, size, maxAPP1Payload)
	}
	return raw, nil
}

// build adds tags in ascending tag order within each directory.
func build(set DirectorySet) (*exif.IfdBuilder, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("creating ifd mapping: %w", err)
	}
	ti := exif.NewTagIndex()
	root := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)

	img := set.Image
	w := &tagWriter{ib: root, ifd: "IFD0"}
	if img.Description != nil {
		w.text("ImageDescription", img.Description.Text)
	}
	w.ascii("Make", img.Make)
	w.ascii("Model", img.Model)
	w.short("Orientation", img.Orientation)
	w.rational("XResolution", img.XResolution)
	w.rational("YResolution", img.YResolution)
	w.short("ResolutionUnit", img.ResolutionUnit)
	w.ascii("Software", img.Software)
	w.ascii("DateTime", img.DateTime)
	w.short("YCbCrPositioning", img.YCbCrPositioning)
	if w.err != nil {
		return nil, w.err
	}

	exifIb, err := exif.GetOrCreateIbFromRootIb(root, "IFD/Exif")
	if err != nil {
		return nil, fmt.Errorf("%w: creating exif ifd: %v", domain.ErrEncoding, err)
	}
	gpsIb, err := exif.GetOrCreateIbFromRootIb(root, "IFD/GPSInfo")
	if err != nil {
		return nil, fmt.Errorf("%w: creating gps ifd: %v", domain.ErrEncoding, err)
	}

	if img.Description != nil {
		xp, err := utf16LE(img.Description.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
		}
		w.add("XPTitle", xp)
		w.add("XPKeywords", xp)
		w.add("XPSubject", xp)
		if w.err != nil {
			return nil, w.err
		}
	}

	if err := writeCapture(exifIb, set.Capture); err != nil {
		return nil, err
	}
	if err := writeGPS(gpsIb, set.GPS); err != nil {
		return nil, err
	}

	return root, nil
}

func writeCapture(ib *exif.IfdBuilder, c CaptureDirectory) error {
	w := &tagWriter{ib: ib, ifd: "Exif"}
	w.rational("ExposureTime", c.ExposureTime)
	w.rational("FNumber", c.FNumber)
	w.short("ExposureProgram", c.ExposureProgram)
	w.short("ISOSpeedRatings", c.ISO)
	w.add("ExifVersion", exifundefined.Tag9000ExifVersion{ExifVersion: c.ExifVersion})
	w.ascii("DateTimeOriginal", c.DateTimeOriginal)
	w.ascii("DateTimeDigitized", c.DateTimeDigitized)
	w.add("ComponentsConfiguration", exifundefined.TagExif9101ComponentsConfiguration{
		ConfigurationBytes: c.ComponentsConfiguration,
	})
	w.short("MeteringMode", c.MeteringMode)
	w.short("Flash", c.Flash)
	w.rational("FocalLength", c.FocalLength)
	w.ascii("SubSecTimeOriginal", c.SubSecTimeOriginal)
	w.ascii("SubSecTimeDigitized", c.SubSecTimeDigitized)
	w.add("FlashpixVersion", exifundefined.TagA000FlashpixVersion{FlashpixVersion: c.FlashpixVersion})
	w.short("ColorSpace", c.ColorSpace)
	w.long("PixelXDimension", c.PixelX)
	w.long("PixelYDimension", c.PixelY)
	w.short("SensingMethod", c.SensingMethod)
	w.short("ExposureMode", c.ExposureMode)
	w.short("WhiteBalance", c.WhiteBalance)
	w.short("SceneCaptureType", c.SceneCaptureType)
	return w.err
}

func writeGPS(ib *exif.IfdBuilder, g GPSDirectory) error {
	w := &tagWriter{ib: ib, ifd: "GPS"}
	w.add("GPSVersionID", g.VersionID)
	w.ascii("GPSLatitudeRef", g.LatitudeRef)
	w.rational("GPSLatitude", g.Latitude[:]...)
	w.ascii("GPSLongitudeRef", g.LongitudeRef)
	w.rational("GPSLongitude", g.Longitude[:]...)
	w.byteValue("GPSAltitudeRef", g.AltitudeRef)
	w.rational("GPSAltitude", g.Altitude)
	w.rational("GPSTimeStamp", g.TimeStamp[:]...)
	w.ascii("GPSDateStamp", g.DateStamp)
	return w.err
}

// tagWriter records the first failure and ignores later calls.
type tagWriter struct {
	ib  *exif.IfdBuilder
	ifd string
	err error
}

func (w *tagWriter) fail(name, format string, args ...any) {
	w.err = fmt.Errorf("%w: %s/%s: %s", domain.ErrEncoding, w.ifd, name, fmt.Sprintf(format, args...))
}

func (w *tagWriter) add(name string, value any) {
	if w.err != nil {
		return
	}
	if err := w.ib.AddStandardWithName(name, value); err != nil {
		w.fail(name, "%v", err)
	}
}

func (w *tagWriter) short(name string, v int) {
	if w.err != nil {
		return
	}
	if v < 0 || v > math.MaxUint16 {
		w.fail(name, "%d does not fit SHORT", v)
		return
	}
	w.add(name, []uint16{uint16(v)})
}

func (w *tagWriter) long(name string, v int) {
	if w.err != nil {
		return
	}
	if v < 0 || int64(v) > math.MaxUint32 {
		w.fail(name, "%d does not fit LONG", v)
		return
	}
	w.add(name, []uint32{uint32(v)})
}

func (w *tagWriter) byteValue(name string, v int) {
	if w.err != nil {
		return
	}
	if v < 0 || v > math.MaxUint8 {
		w.fail(name, "%d does not fit BYTE", v)
		return
	}
	w.add(name, []byte{byte(v)})
}

// ascii rejects anything outside 7-bit ASCII.
func (w *tagWriter) ascii(name, v string) {
	if w.err != nil {
		return
	}
	for i := 0; i < len(v); i++ {
		if v[i] == 0 || v[i] > 0x7f {
			w.fail(name, "byte 0x%02x at %d is not ASCII", v[i], i)
			return
		}
	}
	w.add(name, v)
}

// text accepts UTF-8 for free-form ASCII-typed tags.
func (w *tagWriter) text(name, v string) {
	if w.err != nil {
		return
	}
	if bytes.IndexByte([]byte(v), 0) >= 0 {
		w.fail(name, "embedded NUL")
		return
	}
	w.add(name, v)
}

func (w *tagWriter) rational(name string, rs ...valueobject.Rational) {
	if w.err != nil {
		return
	}
	values := make([]exifcommon.Rational, 0, len(rs))
	for _, r := range rs {
		if r.Denominator == 0 {
			w.fail(name, "zero denominator")
			return
		}
		values = append(values, exifcommon.Rational{Numerator: r.Numerator, Denominator: r.Denominator})
	}
	w.add(name, values)
}

// utf16LE encodes s the way Windows XP* tags expect, NUL terminated.
func utf16LE(s string) ([]byte, error) {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding utf-16: %w", err)
	}
	return append(b, 0, 0), nil
}
