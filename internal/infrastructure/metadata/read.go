package metadata

import (
	"fmt"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
	"golang.org/x/text/encoding/unicode"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
)

var groupNames = map[string]string{
	"IFD":          "0th",
	"IFD/Exif":     "Exif",
	"IFD/GPSInfo":  "GPS",
	"IFD/Exif/Iop": "Interop",
	"IFD1":         "1st",
}

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read dumps every embedded tag grouped by directory.
func (r *Reader) Read(data []byte) (map[string]map[string]string, error) {
	raw, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoMetadata, err)
	}

	entries, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoMetadata, err)
	}

	groups := make(map[string]map[string]string)
	for _, e := range entries {
		group, ok := groupNames[e.IfdPath]
		if !ok {
			group = e.IfdPath
		}
		if groups[group] == nil {
			groups[group] = make(map[string]string)
		}
		groups[group][e.TagName] = formatValue(e.TagName, e.Value, e.Formatted)
	}
	return groups, nil
}

// formatValue decodes the UTF-16 XP* tags; anything else keeps the
// library's formatting.
func formatValue(name string, value any, formatted string) string {
	if !strings.HasPrefix(name, "XP") {
		return formatted
	}
	raw, ok := value.([]byte)
	if !ok {
		return formatted
	}
	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return formatted
	}
	return strings.TrimRight(string(decoded), "\x00")
}
