package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCVNotFound is returned when no CV record has the requested ID.
var ErrCVNotFound = errors.New("cv record not found")

// Artifact formats stored in render_artifacts.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Artifact is one stored rendering of a CV.
type Artifact struct {
	ID        uuid.UUID `json:"id"`
	CVID      uuid.UUID `json:"cv_id"`
	Format    string    `json:"format"`
	Content   []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentType is the MIME type of the artifact content.
func (a *Artifact) ContentType() string {
	switch a.Format {
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}
