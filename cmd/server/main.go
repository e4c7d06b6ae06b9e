// Package main cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shahgahmed/llama-time/pkg/api"
	"github.com/shahgahmed/llama-time/pkg/config"
	"github.com/shahgahmed/llama-time/pkg/datadog"
	"github.com/shahgahmed/llama-time/pkg/lifecycle"
	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/operator"
	"github.com/shahgahmed/llama-time/pkg/resolver"
	"github.com/shahgahmed/llama-time/pkg/store"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "llama-time",
	Short: "AI-assisted monitor investigation dashboards",
	Long: `llama-time turns a firing monitor into an investigation dashboard.
It fetches the monitor from the monitoring vendor, asks an LLM to design
a set of widgets for diagnosing the alert, lays them out on a grid, and
serves the resulting dashboard with live metric and log data.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("llama-time v%s\n", Version)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the investigation API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to JSON config file (optional, env vars fill the rest)")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadServerConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := zerolog.InfoLevel

	if cfg.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}

		level = parsed
	}

	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "llama-time").Logger()

	ddClient := datadog.NewClient(cfg.Datadog, logger)
	llmClient := llm.NewClient(cfg.LLM, logger)

	dashboards, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening dashboard store: %w", err)
	}
	defer func() {
		if err := dashboards.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close dashboard store")
		}
	}()

	op := operator.New(ddClient, llmClient, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	res := resolver.New(ddClient, rng, logger)

	server := api.NewAPIServer(op, res, ddClient, llmClient, dashboards, logger)

	return lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "llama-time",
		Handler:     server.Router(),
		Logger:      logger,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
