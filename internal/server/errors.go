// Package server provides the HTTP API that renders CV documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/db"
	"github.com/jonathan/cv-composer/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedFormat indicates an output format the server cannot produce.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// ErrCVNotFound indicates no stored CV has the requested ID.
type ErrCVNotFound struct {
	CVID uuid.UUID
}

func (e *ErrCVNotFound) Error() string {
	return fmt.Sprintf("cv not found: %s", e.CVID)
}

// ErrArtifactNotFound indicates no rendering of the CV was stored in the format.
type ErrArtifactNotFound struct {
	CVID   uuid.UUID
	Format string
}

func (e *ErrArtifactNotFound) Error() string {
	return fmt.Sprintf("no %s artifact stored for cv %s", e.Format, e.CVID)
}

// ErrUnavailable indicates a dependency the request needs was not configured.
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not available", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		schemaErr      *schemas.ValidationError
		formatErr      *ErrUnsupportedFormat
		notFoundErr    *ErrCVNotFound
		artifactErr    *ErrArtifactNotFound
		unavailableErr *ErrUnavailable
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &formatErr), errors.As(err, &notFoundErr), errors.As(err, &artifactErr), errors.Is(err, db.ErrCVNotFound):
		return http.StatusNotFound
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
