package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("resume.json", "generate-resume")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Create a premium, ATS-friendly resume.")
	assert.Contains(t, prompt, "{{.Name}}")
}

func TestGet_SystemPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("resume.json", "system-resume-writer")
	require.NoError(t, err)
	assert.Equal(t, "You are a senior resume writer at a tech hiring firm.", prompt)
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("resume.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet("resume.json", "generate-resume"))
	})
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	})
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_SinglePass(t *testing.T) {
	result := Format("A={{.A}} B={{.B}}", map[string]string{
		"A": "{{.B}}",
		"B": "bee",
	})
	assert.Equal(t, "A={{.B}} B=bee", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	assert.Equal(t, template, Format(template, map[string]string{"Key": "Value"}))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestFormat_EmptyValue(t *testing.T) {
	assert.Equal(t, "Projects: \n", Format("Projects: {{.Projects}}\n", map[string]string{"Projects": ""}))
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("resume.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"generate-resume", "system-resume-writer"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("resume.json", "generate-resume")
	require.NoError(t, err)

	prompt2, err := Get("resume.json", "generate-resume")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
