package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/site-placeholders/internal/catalog"
	"github.com/jonathan/site-placeholders/internal/config"
	"github.com/jonathan/site-placeholders/internal/manifest"
	"github.com/jonathan/site-placeholders/internal/observability"
	"github.com/jonathan/site-placeholders/internal/types"
)

// cliState is shared by the root command and its subcommands for one execution.
type cliState struct {
	configFile string
	flags      config.Config

	cfg    config.Config
	logger *zap.Logger

	// newLogger builds the run logger; nil means observability.NewLogger
	newLogger func(verbose bool) (*zap.Logger, error)
}

// syncLogger flushes the run logger. It runs after Execute on both the
// success and the error path, since cobra skips post-run hooks when RunE fails.
func (s *cliState) syncLogger() {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

func newRootCmd(state *cliState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "placeholders",
		Short: "Generate placeholder images for the company site",
		Long: "Writes one SVG placeholder per team portrait, gallery photo and about-page illustration " +
			"under <public-dir>/images/{team,gallery,about}/<id>.jpg. Run with no arguments to generate the built-in set.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := state.resolveConfig(cmd)
			if err != nil {
				return err
			}
			state.cfg = cfg

			newLogger := state.newLogger
			if newLogger == nil {
				newLogger = observability.NewLogger
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			state.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, state)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVarP(&state.flags.PublicDir, "public-dir", "p", "", "Public assets root (default \"public\")")
	rootCmd.PersistentFlags().StringVarP(&state.flags.Manifest, "manifest", "m", "", "Manifest file (.json, .yaml, .yml) replacing the built-in assets")
	rootCmd.PersistentFlags().BoolVarP(&state.flags.Verbose, "verbose", "v", false, "Debug logging and a summary of written files")

	rootCmd.AddCommand(newValidateCmd(state))

	return rootCmd
}

// resolveConfig layers flags over the config file over env over defaults.
func (s *cliState) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	envCfg := config.FromEnv()
	cfg := envCfg.MergeWithDefaults(config.Config{PublicDir: config.DefaultPublicDir})

	if s.configFile != "" {
		fileCfg, err := config.LoadConfig(s.configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("public-dir") {
		cfg.PublicDir = s.flags.PublicDir
	}
	if flags.Changed("manifest") {
		cfg.Manifest = s.flags.Manifest
	}
	if flags.Changed("verbose") {
		cfg.Verbose = s.flags.Verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadManifest returns the configured manifest, or the built-in catalog when none is set.
func loadManifest(cfg config.Config) (*types.Manifest, error) {
	if cfg.Manifest == "" {
		return catalog.Default(), nil
	}

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return m, nil
}
