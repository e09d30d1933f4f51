package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy surfaced to controllers. NotFound deliberately covers
// both "absent" and "exists in another restaurant" so callers cannot
// probe other tenants' ids. Storage faults are Unavailable, never masked
// as NotFound.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrMissingTenant   = errors.New("restaurant id required")
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("storage unavailable")
)

func badRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// storageErr translates a persistence failure: record-not-found keeps its
// meaning, everything else is a storage fault.
func storageErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
