package main

import (
	"errors"

	"github.com/obentoo/renovatelint/internal/common/config"
	"github.com/obentoo/renovatelint/internal/common/logger"
	"github.com/obentoo/renovatelint/internal/common/output"
	"github.com/obentoo/renovatelint/internal/lint"
	"github.com/obentoo/renovatelint/internal/renovate"
	"github.com/spf13/cobra"
)

// resolveConfig loads the optional config file and applies flag overrides
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFrom(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Debug("Loaded config from %s", opts.configPath)
	}

	if cmd.Flags().Changed("coverage") {
		cfg.Report.Coverage = opts.coverage
	}
	if opts.noColor {
		cfg.Output.Color = string(output.ColorNever)
	}
	return cfg, nil
}

// runLint loads one document, prints its findings and optionally the
// coverage report. Only unreadable input makes it fail.
func runLint(cmd *cobra.Command, opts *options, path string) error {
	stdout := cmd.OutOrStdout()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		output.PrintError(stdout, "ERROR: %v", err)
		return &exitError{code: 1}
	}
	cfg.ColorMode().Apply()

	logger.Debug("Parsing %s", path)
	doc, err := renovate.Load(path)
	if err != nil {
		var parseErr *renovate.ParseError
		if errors.As(err, &parseErr) {
			output.PrintError(stdout, "ERROR: Could not parse %s: %v", parseErr.Path, parseErr.Err)
		} else {
			output.PrintError(stdout, "ERROR: Could not parse %s: %v", path, err)
		}
		return &exitError{code: 1}
	}
	logger.Debug("Found %d packageRules in %s", len(doc.Rules), path)

	result := lint.Check(doc, lint.Options{
		Duplicates: cfg.Checks.Duplicates,
		Overlaps:   cfg.Checks.Overlaps,
	})
	lint.WriteWarnings(stdout, result)

	if cfg.Report.Coverage {
		lint.WriteCoverage(stdout, doc.Path, lint.BuildCoverage(doc.Rules))
	}

	logger.Debug("Lint complete for %s: checked %d packageRules, %d warning(s)",
		path, result.RuleCount, result.WarningCount())
	return nil
}
