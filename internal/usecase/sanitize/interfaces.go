package sanitize

import (
	"context"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/sanitize_mocks.go -package=mocks

type LocationResolver interface {
	Resolve(ctx context.Context, input geocode.ResolveInput) (*valueobject.Location, error)
}
