package handler

import (
	"errors"
	"net/http"

	"github.com/marcos-nsantos/photo-sanitizer/internal/domain"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/apperror"
)

// toAppError maps domain errors shared by the handlers.
func toAppError(err error) *apperror.AppError {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return apperror.PayloadTooLarge("upload exceeds the size limit")
	case errors.Is(err, domain.ErrNoFiles):
		return apperror.BadRequest("NO_FILES", "at least one file is required")
	case errors.Is(err, domain.ErrTooManyFiles):
		return apperror.BadRequest("TOO_MANY_FILES", err.Error())
	case errors.Is(err, domain.ErrLocationRequired):
		return apperror.BadRequest("LOCATION_REQUIRED", "send at least a city, an address or coordinates")
	case errors.Is(err, domain.ErrInvalidLocation):
		return apperror.BadRequest("INVALID_LOCATION", "coordinates are out of range")
	case errors.Is(err, domain.ErrLocationNotFound):
		return apperror.NotFound("location")
	case errors.Is(err, domain.ErrEmptyImage):
		return apperror.BadRequest("EMPTY_FILE", "file is empty")
	case errors.Is(err, domain.ErrNoMetadata):
		return apperror.New("NO_METADATA", "no readable EXIF metadata", http.StatusUnprocessableEntity)
	default:
		return apperror.Internal(err)
	}
}
