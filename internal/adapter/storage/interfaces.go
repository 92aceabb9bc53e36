package storage

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/entity"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ArchiveStorage keeps a copy of produced archives for later download.
type ArchiveStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	URL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ProcessInput carries everything the per-photo pipeline needs. Rand must
// not be shared with another goroutine.
type ProcessInput struct {
	Data         []byte
	Intensity    string
	Location     valueobject.Location
	JitterRadius float64
	CapturedAt   time.Time
	Device       entity.DeviceChoice
	Keyword      string
	Place        string
	Rand         *rand.Rand
}

type ProcessOutput struct {
	Data      []byte
	Width     int
	Height    int
	Quality   int
	Device    string
	Latitude  float64
	Longitude float64
}

type ImageProcessor interface {
	Process(ctx context.Context, in ProcessInput) (*ProcessOutput, error)
}

type Archiver interface {
	Build(photos []*entity.SanitizedPhoto, report *entity.BatchReport) ([]byte, error)
}

type MetadataReader interface {
	Read(data []byte) (map[string]map[string]string, error)
}
