package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/site-placeholders/internal/generator"
	"github.com/jonathan/site-placeholders/internal/observability"
)

func runGenerate(cmd *cobra.Command, state *cliState) error {
	m, err := loadManifest(state.cfg)
	if err != nil {
		return err
	}

	root := state.cfg.ImagesRoot()
	state.logger.Debug("Starting placeholder generation",
		zap.String("root", root),
		zap.Int("assets", m.Count()),
		zap.String("manifest", state.cfg.Manifest))

	artifacts, err := generator.New(generator.FileWriter{}, state.logger).Run(m, root)
	if err != nil {
		return fmt.Errorf("placeholder generation failed after %d files: %w", len(artifacts), err)
	}

	if state.cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSummary(artifacts)
	}
	return nil
}
