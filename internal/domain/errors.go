package domain

import "errors"

var (
	ErrDecode           = errors.New("image could not be decoded")
	ErrEmptyImage       = errors.New("empty image file")
	ErrEncoding         = errors.New("metadata encoding failed")
	ErrNoMetadata       = errors.New("no embedded metadata")
	ErrLocationNotFound = errors.New("location not found")
	ErrLocationRequired = errors.New("location required")
	ErrInvalidLocation  = errors.New("invalid location")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrNoFiles          = errors.New("no files")
	ErrTooManyFiles     = errors.New("too many files")
)
