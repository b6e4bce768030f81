package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResumeResult is the text returned by the completion service, kept verbatim.
type ResumeResult struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"resume"`
	Filename  string    `json:"filename"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SuggestedFilename builds the download name: spaces in the candidate name become underscores.
func SuggestedFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_") + "_Resume.txt"
}
