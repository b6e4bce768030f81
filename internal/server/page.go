package server

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/types"
)

//go:embed web/page.html
var webFS embed.FS

// Page texts.
const (
	IdleMessage = "Fill details and click Generate Resume to preview."
	BusyMessage = "Crafting a premium resume..."
)

// Banner kinds.
const (
	BannerInfo    = "info"
	BannerWarning = "warning"
	BannerError   = "error"
)

type banner struct {
	Kind    string
	Message string
}

type pageData struct {
	Profile     types.CandidateProfile
	Roles       []types.Role
	Banner      *banner
	Result      *types.ResumeResult
	BusyMessage string
}

func parsePage() (*template.Template, error) {
	return template.ParseFS(webFS, "web/page.html")
}

func newPageData(profile types.CandidateProfile) pageData {
	return pageData{
		Profile:     profile,
		Roles:       types.Roles(),
		BusyMessage: BusyMessage,
	}
}

func idlePage() pageData {
	d := newPageData(types.CandidateProfile{Role: types.DefaultRole()})
	d.Banner = &banner{Kind: BannerInfo, Message: IdleMessage}
	return d
}

func bannerFor(status int) *banner {
	if status == http.StatusBadRequest {
		return &banner{Kind: BannerWarning, Message: generation.WarningMessage}
	}
	return &banner{Kind: BannerError, Message: generation.FailureMessage}
}

// renderPage buffers the template output before any header is written.
func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		log.Printf("[page] template execution failed: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[page] write failed: %v", err)
	}
}
