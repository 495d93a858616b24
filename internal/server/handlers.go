package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/db"
	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/rendering"
	"github.com/jonathan/cv-composer/internal/schemas"
	"github.com/jonathan/cv-composer/internal/theme"
	"github.com/jonathan/cv-composer/internal/types"
)

// Output formats served by the render routes.
const (
	FormatDocument = "document"
	FormatPreview  = "preview"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// maxBodyBytes bounds render request bodies; inline photos make CVs large.
const maxBodyBytes = 10 << 20

func supportedFormat(format string) bool {
	switch format {
	case FormatDocument, FormatPreview, FormatHTML, FormatPDF:
		return true
	}
	return false
}

// ThemeSummary is one entry of the /themes response.
type ThemeSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Default bool   `json:"default,omitempty"`
}

// rendered is the body of a successful render.
type rendered struct {
	body        []byte
	contentType string
	sections    int
}

// handleThemes lists the preset catalogue
func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	presets := theme.Presets()
	out := make([]ThemeSummary, 0, len(presets))
	for _, p := range presets {
		out = append(out, ThemeSummary{ID: p.ID, Name: p.Name, Default: p.ID == s.fallbackTheme()})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleRender renders the CV carried in the request body
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	if !supportedFormat(format) {
		s.writeError(w, &ErrUnsupportedFormat{Format: format})
		return
	}

	req, err := decodeRenderRequest(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.observe(format, time.Now(), nil, err)
		s.writeError(w, err)
		return
	}

	cv := s.withTheme(req.CV, req.ThemeID)
	start := time.Now()
	out, err := s.render(r.Context(), cv, req.ThemeData, req.SectionOrder, format)
	s.observe(format, start, out, err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeRendered(w, format, out)
}

// handleRenderStored renders a CV loaded from the store and keeps print
// formats as artifacts
func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	if !supportedFormat(format) {
		s.writeError(w, &ErrUnsupportedFormat{Format: format})
		return
	}
	if s.store == nil {
		s.writeError(w, &ErrUnavailable{Feature: "cv storage"})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	cv, err := s.store.GetCVRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrCVNotFound) {
			err = &ErrCVNotFound{CVID: id}
		}
		s.writeError(w, err)
		return
	}

	cv = s.withTheme(cv, r.URL.Query().Get("theme"))
	start := time.Now()
	out, err := s.render(r.Context(), cv, nil, nil, format)
	s.observe(format, start, out, err)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if format == FormatHTML || format == FormatPDF {
		artifactID, err := s.store.SaveArtifact(r.Context(), id, format, out.body)
		if err != nil {
			log.Printf("[SERVER] failed to save %s artifact for %s: %v", format, id, err)
		} else {
			w.Header().Set("X-Artifact-ID", artifactID.String())
		}
	}
	s.writeRendered(w, format, out)
}

// handleLatestArtifact serves the newest stored html or pdf rendering of a CV
func (s *Server) handleLatestArtifact(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	if format != db.FormatHTML && format != db.FormatPDF {
		s.writeError(w, &ErrUnsupportedFormat{Format: format})
		return
	}
	if s.store == nil {
		s.writeError(w, &ErrUnavailable{Feature: "cv storage"})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	artifact, err := s.store.GetLatestArtifact(r.Context(), id, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if artifact == nil {
		s.writeError(w, &ErrArtifactNotFound{CVID: id, Format: format})
		return
	}

	w.Header().Set("X-Artifact-ID", artifact.ID.String())
	w.Header().Set("Last-Modified", artifact.CreatedAt.UTC().Format(http.TimeFormat))
	s.writeRendered(w, format, &rendered{body: artifact.Content, contentType: artifact.ContentType()})
}

// decodeRenderRequest parses and validates a render request body. The raw CV
// is checked against the record schema before it is decoded.
func decodeRenderRequest(body io.Reader) (*types.RenderRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: "failed to read request body"}
	}

	var raw struct {
		CV json.RawMessage `json:"cv"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if len(raw.CV) > 0 && string(raw.CV) != "null" {
		if err := schemas.ValidateCVRecord(raw.CV); err != nil {
			return nil, err
		}
	}

	var req types.RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := req.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &ErrValidation{Field: fieldErrs[0].Field(), Message: "failed on " + fieldErrs[0].Tag()}
		}
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return &req, nil
}

// withTheme returns cv with themeID applied, or with the server default when
// the record names no preset. cv itself is not modified.
func (s *Server) withTheme(cv *types.CVRecord, themeID string) *types.CVRecord {
	rec := *cv
	if themeID != "" {
		rec.ThemeID = themeID
	}
	if rec.PresetID() == "" {
		rec.ThemeID = s.fallbackTheme()
	}
	return &rec
}

func (s *Server) fallbackTheme() string {
	if s.defaultTheme != "" {
		return s.defaultTheme
	}
	return theme.DefaultPresetID
}

// render assembles cv and produces format.
func (s *Server) render(ctx context.Context, cv *types.CVRecord, themeData, sectionOrder json.RawMessage, format string) (*rendered, error) {
	doc := document.Assemble(cv, themeData, sectionOrder)
	out := &rendered{sections: len(doc.Sections)}

	switch format {
	case FormatDocument:
		body, err := json.Marshal(doc)
		if err != nil {
			return nil, &rendering.RenderError{Message: "failed to encode document", Cause: err}
		}
		out.body, out.contentType = body, "application/json"
	case FormatPreview:
		body, err := json.Marshal(rendering.RenderPreview(doc))
		if err != nil {
			return nil, &rendering.RenderError{Message: "failed to encode preview", Cause: err}
		}
		out.body, out.contentType = body, "application/json"
	case FormatHTML:
		html, err := rendering.RenderHTML(doc)
		if err != nil {
			return nil, err
		}
		out.body, out.contentType = []byte(html), "text/html; charset=utf-8"
	case FormatPDF:
		if s.encoder == nil {
			return nil, &ErrUnavailable{Feature: "pdf rendering"}
		}
		ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
		pdf, err := s.encoder.Encode(ctx, rendering.RenderPDFTree(doc))
		if err != nil {
			return nil, &rendering.RenderError{Message: "failed to encode pdf", Cause: err}
		}
		out.body, out.contentType = pdf, "application/pdf"
	default:
		return nil, &ErrUnsupportedFormat{Format: format}
	}
	return out, nil
}

func (s *Server) observe(format string, start time.Time, out *rendered, err error) {
	status, sections := "ok", 0
	if err != nil {
		status = "error"
	} else if out != nil {
		sections = out.sections
	}
	s.metrics.ObserveRender(format, status, time.Since(start), sections)
}

func (s *Server) writeRendered(w http.ResponseWriter, format string, out *rendered) {
	w.Header().Set("Content-Type", out.contentType)
	if format == FormatPDF {
		w.Header().Set("Content-Disposition", `inline; filename="cv.pdf"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.body); err != nil {
		log.Printf("[SERVER] failed to write %s response: %v", format, err)
	}
}

// writeError maps err to a status and writes it; schema failures carry the
// per-field details.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[SERVER] internal error: %v", err)
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		details := make([]map[string]string, 0, len(schemaErr.Errors))
		for _, fe := range schemaErr.Errors {
			details = append(details, map[string]string{"field": fe.Field, "message": fe.Message})
		}
		s.jsonResponse(w, status, map[string]any{"error": "cv does not match the record schema", "details": details})
		return
	}
	s.errorResponse(w, status, err.Error())
}
