package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON profile file against the candidate profile schema",
	RunE:  runValidate,
}

var validateJSONPath string

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to the JSON profile file")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := schemas.ValidateCandidateProfileFile(validateJSONPath)
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSONPath)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprint(cmd.OutOrStdout(), validationErr.Error())
		return fmt.Errorf("profile has %d schema error(s)", len(validationErr.Errors))
	}
	return err
}
