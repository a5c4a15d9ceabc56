package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-intake/internal/adapter"
	"github.com/MKhiriev/go-order-intake/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// error. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrOrderNotFound):
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	default:
		return err
	}
}

// mapStoreError translates repository and file storage errors.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	case errors.Is(err, store.ErrFileNotFound), errors.Is(err, store.ErrInvalidPathElement):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	default:
		return err
	}
}
