package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessages(t *testing.T) {
	system, parts := splitMessages([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "prompt"},
	})

	require.NotNil(t, system)
	assert.Equal(t, []genai.Part{genai.Text("persona")}, system.Parts)
	assert.Equal(t, []genai.Part{genai.Text("prompt")}, parts)
}

func TestSplitMessages_NoSystem(t *testing.T) {
	system, parts := splitMessages([]Message{{Role: RoleUser, Content: "prompt"}})

	assert.Nil(t, system)
	assert.Len(t, parts, 1)
}

func TestExtractTextFromResponse_ValidResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("JANE DOE\n"), genai.Text("Software Engineer")},
				},
			},
		},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "JANE DOE\nSoftware Engineer", text)
}

func TestExtractTextFromResponse_KeepsCodeFences(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("```\nresume\n```")}}},
		},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "```\nresume\n```", text)
}

func TestExtractTextFromResponse_NoCandidates(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoChoices)

	_, err = extractTextFromResponse(nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestExtractTextFromResponse_NoContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}

	_, err := extractTextFromResponse(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestExtractTextFromResponse_NoTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{1}}}}},
		},
	}

	_, err := extractTextFromResponse(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text parts")
}
