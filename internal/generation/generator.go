// Package generation turns a candidate profile into a resume through one chat completion.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/prompts"
	"github.com/jonathan/resumeforge/internal/types"
)

// Fixed sampling parameters for every resume request.
const (
	Temperature float32 = 0.25
	MaxTokens           = 900
)

const promptFile = "resume.json"

var errEmptyCompletion = errors.New("completion text is empty")

// Generator is the resume requester. It owns the injected client and is safe for
// concurrent use as long as the client is.
type Generator struct {
	client llm.Client
	now    func() time.Time
}

// New creates a Generator around client.
func New(client llm.Client) *Generator {
	return &Generator{
		client: client,
		now:    time.Now,
	}
}

// Model returns the model identifier requests go to.
func (g *Generator) Model() string {
	return g.client.Model()
}

// Generate validates the profile, issues exactly one completion request and returns
// the completion verbatim. Invalid input yields *ValidationError without any call;
// any failure of the call yields *GenerationError.
func (g *Generator) Generate(ctx context.Context, profile types.CandidateProfile) (*types.ResumeResult, error) {
	profile = profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Fields: types.InvalidFields(err)}
	}

	text, err := g.complete(ctx, profile)
	if err != nil {
		log.Printf("[generate] completion failed (model=%s): %v", g.client.Model(), err)
		return nil, &GenerationError{cause: err}
	}

	return &types.ResumeResult{
		ID:        uuid.New(),
		Text:      text,
		Filename:  types.SuggestedFilename(profile.Name),
		Model:     g.client.Model(),
		CreatedAt: g.now().UTC(),
	}, nil
}

func (g *Generator) complete(ctx context.Context, profile types.CandidateProfile) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("client panic: %v", r)
		}
	}()

	text, err = g.client.Chat(ctx, llm.ChatRequest{
		Messages:    Messages(profile),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errEmptyCompletion
	}
	return text, nil
}

// Messages builds the two-message conversation sent for a profile.
func Messages(profile types.CandidateProfile) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt()},
		{Role: llm.RoleUser, Content: BuildPrompt(profile)},
	}
}

// SystemPrompt returns the resume-writer persona.
func SystemPrompt() string {
	return prompts.MustGet(promptFile, "system-resume-writer")
}

// BuildPrompt interpolates every profile field into the fixed resume template.
func BuildPrompt(profile types.CandidateProfile) string {
	template := prompts.MustGet(promptFile, "generate-resume")
	return prompts.Format(template, map[string]string{
		"Name":       profile.Name,
		"Role":       string(profile.Role),
		"Education":  profile.Education,
		"Skills":     profile.Skills,
		"Projects":   profile.Projects,
		"Experience": profile.Experience,
	})
}
