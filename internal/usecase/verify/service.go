package verify

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
)

type Service struct {
	reader storage.MetadataReader
}

func NewService(reader storage.MetadataReader) *Service {
	return &Service{reader: reader}
}

// Verify dumps the metadata embedded in a photo, grouped by directory.
func (s *Service) Verify(ctx context.Context, data []byte) (map[string]map[string]string, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyImage
	}

	groups, err := s.reader.Read(data)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	return groups, nil
}
