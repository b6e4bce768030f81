package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/results"
	"github.com/jonathan/resumeforge/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start an HTTP server with the resume form, the JSON and SSE generation API, and result downloads.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		settings.Port = servePort
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, closeClient, err := buildServer(ctx, settings)
	if err != nil {
		return err
	}
	defer closeClient()

	return srv.Run(ctx)
}

// buildServer wires the client, generator, results store and server from settings.
func buildServer(ctx context.Context, settings *config.Settings) (*server.Server, func(), error) {
	llmConfig := settings.LLMConfig()
	client, err := newLLMClient(ctx, llmConfig, settings.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Printf("[serve] closing LLM client: %v", err)
		}
	}

	store := results.NewStore(results.Config{
		TTL:        settings.ResultTTL,
		MaxEntries: settings.ResultMaxEntries,
	})

	srv, err := server.New(server.Config{
		Port:         settings.Port,
		MaxBodyBytes: settings.MaxBodyBytes,
	}, generation.New(client), store)
	if err != nil {
		store.Stop()
		closeClient()
		return nil, nil, fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("[serve] provider=%s model=%s", llmConfig.Provider, client.Model())
	return srv, closeClient, nil
}
