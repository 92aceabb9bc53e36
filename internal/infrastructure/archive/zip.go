package archive

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
)

// ReportName is the archive entry holding the batch report.
const ReportName = "_reporte.txt"

type ZipArchiver struct {
	now func() time.Time
}

func NewZipArchiver() *ZipArchiver {
	return &ZipArchiver{now: time.Now}
}

// Build writes photos in the given order followed by the report. JPEG
// entries are stored since they do not compress any further.
func (a *ZipArchiver) Build(photos []*entity.SanitizedPhoto, report *entity.BatchReport) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := a.now()
	used := make(map[string]int, len(photos))

	for _, p := range photos {
		name := uniqueName(p.Filename, used)
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := w.Write(p.Data); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", name, err)
		}
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     ReportName,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return nil, fmt.Errorf("adding report to archive: %w", err)
	}
	if _, err := w.Write([]byte(report.Text())); err != nil {
		return nil, fmt.Errorf("writing report to archive: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// uniqueName suffixes repeated entry names with -2, -3, ...
func uniqueName(name string, used map[string]int) string {
	used[name]++
	n := used[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := fmt.Sprintf("%s-%d%s", base, n, ext)
	if _, taken := used[candidate]; taken {
		return uniqueName(candidate, used)
	}
	used[candidate] = 1
	return candidate
}
