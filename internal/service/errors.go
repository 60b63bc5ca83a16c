package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"backendservice/internal/repository"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is; anything else is internal.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource already exists")
	ErrExportDisabled  = errors.New("content export is not configured")

	// ErrCorruptDocument means a stored document no longer decodes as JSON.
	ErrCorruptDocument = errors.New("stored document is not valid JSON")
)

// Specific invalid-argument causes.
var (
	ErrIDRequired      = fmt.Errorf("%w: id is required", ErrInvalidArgument)
	ErrInvalidPayload  = fmt.Errorf("%w: payload is not valid JSON", ErrInvalidArgument)
	ErrInvalidSize     = fmt.Errorf("%w: invalid size, use KB or MB", ErrInvalidArgument)
	ErrSizeTooLarge    = fmt.Errorf("%w: size exceeds limit", ErrInvalidArgument)
	ErrInvalidTransfer = fmt.Errorf("%w: invalid transfer request", ErrInvalidArgument)
	ErrAssetUnresolved = fmt.Errorf("%w: asset could not be resolved", ErrInvalidArgument)
)

// SizeLimitError rejects a well-formed size above the configured maximum.
type SizeLimitError struct {
	Size  int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%v: %s > %s", ErrSizeTooLarge,
		humanize.IBytes(uint64(e.Size)), humanize.IBytes(uint64(e.Limit)))
}

func (e *SizeLimitError) Unwrap() error { return ErrSizeTooLarge }

// translate maps repository errors onto service error kinds.
func translate(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateID):
		return ErrConflict
	default:
		return err
	}
}
