package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedAssetType    = errors.New("design analysis only supports images")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrParse                   = errors.New("unexpected collaborator response format")
	ErrInvalidLimit            = errors.New("limit must be a positive integer")
	ErrInsufficientCandidates  = errors.New("not enough candidates to fill the requested limit")
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// NewCollaboratorError tags err as a collaborator failure so orchestrators can
// route it to their fallback branch.
func NewCollaboratorError(collaborator string, err error) error {
	return fmt.Errorf("%s: %w: %w", collaborator, ErrCollaboratorUnavailable, err)
}

func NewParseError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
