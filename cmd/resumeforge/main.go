// Package main provides the entry point for the ResumeForge server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "AI resume builder",
	Long:  "ResumeForge turns a short candidate profile into a recruiter-ready plain-text resume using a hosted language model.",
	// Errors are printed once by main.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// newLLMClient is replaced in tests.
var newLLMClient = llm.NewClient

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
