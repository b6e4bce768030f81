// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumeforge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPreviewLines is the number of resume lines shown in the result box
	maxPreviewLines = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// RequestInfo describes the completion call about to be made.
type RequestInfo struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Prompt      string
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the normalized candidate profile that will be sent.
func (p *Printer) PrintProfile(profile types.CandidateProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", firstLine(profile.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", firstLine(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:   %s\n", orNone(firstLine(profile.Projects))))
	sb.WriteString(fmt.Sprintf("Experience: %s", orNone(firstLine(profile.Experience))))

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintRequest outputs the parameters of the completion call.
func (p *Printer) PrintRequest(info RequestInfo) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Model:        %s\n", info.Model))
	sb.WriteString(fmt.Sprintf("Temperature:  %.2f\n", info.Temperature))
	sb.WriteString(fmt.Sprintf("Max tokens:   %d\n", info.MaxTokens))
	sb.WriteString(fmt.Sprintf("Prompt:       %d lines, %d chars", countLines(info.Prompt), utf8.RuneCountInString(info.Prompt)))

	p.printBox("COMPLETION REQUEST", sb.String())
}

// PrintResult outputs a summary of the generated resume.
func (p *Printer) PrintResult(result *types.ResumeResult, path string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", result.ID))
	sb.WriteString(fmt.Sprintf("File:     %s\n", result.Filename))
	if path != "" {
		sb.WriteString(fmt.Sprintf("Saved to: %s\n", path))
	}
	sb.WriteString(fmt.Sprintf("Length:   %d lines, %d chars\n", countLines(result.Text), utf8.RuneCountInString(result.Text)))
	sb.WriteString("\n")

	lines := strings.Split(strings.TrimRight(result.Text, "\n"), "\n")
	count := min(len(lines), maxPreviewLines)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		sb.WriteString("\n")
	}
	if len(lines) > maxPreviewLines {
		sb.WriteString(fmt.Sprintf("... and %d more lines\n", len(lines)-maxPreviewLines))
	}

	p.printBox("GENERATED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func pad(s string) string {
	n := boxWidth - 4 - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(s, "\n"), "\n") + 1
}
