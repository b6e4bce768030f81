package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/results"
	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/jonathan/resumeforge/internal/types"
)

// GenerateResponse is the JSON body of a successful generation
type GenerateResponse struct {
	ID       string `json:"id"`
	Resume   string `json:"resume"`
	Filename string `json:"filename"`
	Model    string `json:"model,omitempty"`
}

// ErrorResponse is the JSON body of a failed request
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// RolesResponse represents the response for /api/roles
type RolesResponse struct {
	Roles   []types.Role `json:"roles"`
	Default types.Role   `json:"default"`
}

func newGenerateResponse(r *types.ResumeResult) GenerateResponse {
	return GenerateResponse{
		ID:       r.ID.String(),
		Resume:   r.Text,
		Filename: r.Filename,
		Model:    r.Model,
	}
}

// failureResponse maps an error to the body shown to API clients. Causes of
// generation failures never leave the server.
func failureResponse(err error) ErrorResponse {
	var profileErr *generation.ValidationError
	var schemaErr *schemas.ValidationError
	var bodyErr *ErrInvalidBody
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &profileErr):
		return ErrorResponse{Error: generation.WarningMessage, Fields: profileErr.Fields}
	case errors.As(err, &schemaErr):
		return ErrorResponse{Error: generation.WarningMessage, Fields: schemaErr.Fields()}
	case errors.As(err, &bodyErr):
		return ErrorResponse{Error: bodyErr.Error()}
	case errors.As(err, &tooLarge):
		return ErrorResponse{Error: "request body too large"}
	default:
		return ErrorResponse{Error: generation.FailureMessage}
	}
}

// handleIndex renders the empty form
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, idlePage())
}

// handleGenerateForm binds the submitted form, generates, and re-renders the page
func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		http.Error(w, "Invalid form submission", status)
		return
	}

	profile := types.ProfileFromForm(r.PostForm)
	data := newPageData(profile)

	result, err := s.generate(r, profile)
	if err != nil {
		status := HTTPStatus(err)
		data.Banner = bannerFor(status)
		s.renderPage(w, status, data)
		return
	}

	data.Result = result
	s.renderPage(w, http.StatusOK, data)
}

// handleAPIGenerate generates a resume from a JSON profile
func (s *Server) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	profile, err := s.decodeProfile(w, r)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), failureResponse(err))
		return
	}

	result, err := s.generate(r, profile)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), failureResponse(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, newGenerateResponse(result))
}

// handleAPIGenerateStream generates a resume and reports progress via SSE
func (s *Server) handleAPIGenerateStream(w http.ResponseWriter, r *http.Request) {
	profile, err := s.decodeProfile(w, r)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), failureResponse(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sse.WriteRequesting(BusyMessage)

	result, err := s.generate(r, profile)
	if err != nil {
		resp := failureResponse(err)
		if HTTPStatus(err) == http.StatusBadRequest {
			sse.WriteWarning(resp)
		} else {
			sse.WriteError(resp.Error)
		}
		return
	}

	sse.WriteEvent(EventResult, newGenerateResponse(result)) //nolint:errcheck
}

// handleRoles lists the selectable roles
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, RolesResponse{
		Roles:   types.Roles(),
		Default: types.DefaultRole(),
	})
}

// handleDownload returns a stored result as a text attachment
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	result, err := s.results.Get(id)
	if err != nil {
		if errors.Is(err, results.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", contentDisposition(result.Filename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, result.Text) //nolint:errcheck
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generate runs the generator with the request context and keeps successful results for download.
func (s *Server) generate(r *http.Request, profile types.CandidateProfile) (*types.ResumeResult, error) {
	result, err := s.generator.Generate(r.Context(), profile)
	if err != nil {
		return nil, err
	}
	s.results.Put(*result)
	return result, nil
}

// decodeProfile reads a capped JSON body, checks it against the profile schema and binds it.
func (s *Server) decodeProfile(w http.ResponseWriter, r *http.Request) (types.CandidateProfile, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return types.CandidateProfile{}, err
	}

	if err := schemas.ValidateCandidateProfile(body); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return types.CandidateProfile{}, &ErrInvalidBody{Message: "malformed JSON"}
		}
		return types.CandidateProfile{}, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return types.CandidateProfile{}, &ErrInvalidBody{Message: err.Error()}
	}
	return profile.Normalize(), nil
}

// contentDisposition builds an attachment header. The quoted name is reduced to
// printable ASCII; filename* carries the exact UTF-8 name.
func contentDisposition(filename string) string {
	ascii := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)
	if ascii == filename {
		return fmt.Sprintf("attachment; filename=%q", filename)
	}
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", ascii, url.PathEscape(filename))
}
