package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-users-api/internal/users/domain"
	"github.com/Apurer/go-users-api/internal/users/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid user input")
	// ErrStorage wraps repository failures so transport never sees
	// driver-level error text.
	ErrStorage = errors.New("user storage failure")
)

// mapError classifies repository and domain errors into the fixed set the
// transport layer dispatches on. ErrNotFound passes through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return err
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyPassword) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
