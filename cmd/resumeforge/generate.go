package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/server"
	"github.com/jonathan/resumeforge/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume and write it to a text file",
	Long: `Generate a resume from a candidate profile given as flags, a JSON profile file, or both.
Flags win over the file. The result is written verbatim to <out-dir>/<Name>_Resume.txt
unless --out is given.`,
	RunE: runGenerate,
}

var (
	genName       string
	genRole       string
	genEducation  string
	genSkills     string
	genProjects   string
	genExperience string
	genConfig     string
	genOut        string
	genOutDir     string
	genModel      string
	genAPIKey     string
	genDryRun     bool
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "", "Full name")
	generateCmd.Flags().StringVar(&genRole, "role", "", fmt.Sprintf("Target role (default %q)", types.DefaultRole()))
	generateCmd.Flags().StringVar(&genEducation, "education", "", "Education")
	generateCmd.Flags().StringVar(&genSkills, "skills", "", "Technical skills, comma separated")
	generateCmd.Flags().StringVar(&genProjects, "projects", "", "Projects with impact")
	generateCmd.Flags().StringVar(&genExperience, "experience", "", "Experience (optional)")
	generateCmd.Flags().StringVarP(&genConfig, "config", "c", "", "Path to a JSON profile file")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file path")
	generateCmd.Flags().StringVar(&genOutDir, "out-dir", ".", "Output directory when --out is not set")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Model override (overrides LLM_MODEL env var)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "API key (overrides the provider's API key env var)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Print the prompt without calling the service")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print profile, request and result summaries")

	generateCmd.MarkFlagsMutuallyExclusive("out", "out-dir")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	// Validated before --dry-run too.
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%s: %w", generation.WarningMessage,
			&generation.ValidationError{Fields: types.InvalidFields(err)})
	}

	if genDryRun {
		return printPrompt(out, profile)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if genAPIKey != "" {
		settings.APIKey = genAPIKey
	}
	if genModel != "" {
		settings.Model = genModel
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, settings.LLMConfig(), settings.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	gen := generation.New(client)

	var printer *observability.Printer
	if genVerbose {
		printer = observability.NewPrinter(out)
		printer.PrintProfile(profile)
		printer.PrintRequest(observability.RequestInfo{
			Model:       gen.Model(),
			Temperature: generation.Temperature,
			MaxTokens:   generation.MaxTokens,
			Prompt:      generation.BuildPrompt(profile),
		})
	}

	fmt.Fprintln(out, server.BusyMessage)
	result, err := gen.Generate(ctx, profile)
	if err != nil {
		var validationErr *generation.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s: %w", generation.WarningMessage, err)
		}
		return fmt.Errorf("%s (%w)", generation.FailureMessage, err)
	}

	path := genOut
	if path == "" {
		path = filepath.Join(genOutDir, result.Filename)
	}
	if err := writeResult(path, result.Text); err != nil {
		return err
	}

	if printer != nil {
		printer.PrintResult(result, path)
	}
	fmt.Fprintf(out, "Resume written to %s\n", path)
	return nil
}

// loadProfile merges the flag values over the optional profile file.
func loadProfile() (types.CandidateProfile, error) {
	cfg := config.Config{
		Name:       genName,
		Role:       genRole,
		Education:  genEducation,
		Skills:     genSkills,
		Projects:   genProjects,
		Experience: genExperience,
	}

	if genConfig != "" {
		fileCfg, err := config.LoadConfig(genConfig)
		if err != nil {
			return types.CandidateProfile{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return types.CandidateProfile{}, err
	}
	return cfg.Profile(), nil
}

//nolint:errcheck // writing to stdout
func printPrompt(out io.Writer, profile types.CandidateProfile) error {
	fmt.Fprintf(out, "System: %s\n\n", generation.SystemPrompt())
	fmt.Fprint(out, generation.BuildPrompt(profile))
	return nil
}

func writeResult(path, text string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	return nil
}
