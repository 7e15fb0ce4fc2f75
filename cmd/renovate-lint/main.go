package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/obentoo/renovatelint/internal/common/logger"
	"github.com/obentoo/renovatelint/internal/common/output"
	"github.com/obentoo/renovatelint/internal/common/version"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: renovate-lint [flags] <path>"

// errUsage is returned for a wrong argument count or bad flags
var errUsage = errors.New("usage error")

// exitError carries a non-zero exit status for a failure already reported
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// options holds the root command flags
type options struct {
	verbose    bool
	noColor    bool
	coverage   bool
	configPath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "renovate-lint [flags] <path>",
		Short: "Find duplicate or overlapping Renovate packageRules",
		Long: `Check a Renovate configuration file (JSON or JSON5) for packageRules that
are exact duplicates or that overlap.

Two checks run on the rules:
  duplicates  rules with the same matchManagers and matchPackageNames,
              ignoring order and repeated entries
  overlaps    pairs of rules with the same matchManagers set whose
              matchPackageNames share at least one name

Findings are printed as warnings and do not change the exit status.
The exit status is 1 only when the file cannot be read or parsed.

Examples:
  renovate-lint renovate.json5
  renovate-lint --coverage default.json
  renovate-lint --config lint.yaml .github/renovate.json5`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				logger.Default().SetLevel(logger.LevelDebug)
			} else {
				logger.Default().SetLevel(logger.LevelInfo)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args[0])
		},
	}

	// the root command takes a path, so no generated completion subcommand;
	// cobra still handles its hidden __complete request
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(version.Info() + "\n")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output on stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.coverage, "coverage", false, "Print the rule coverage report")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML or TOML tool configuration file")

	return cmd
}

// execute runs the root command and maps its outcome to an exit status
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	switch {
	case errors.Is(err, errUsage):
		// flag errors carry detail worth showing
		if err != errUsage {
			fmt.Fprintln(stderr, err)
		}
		fmt.Fprintln(stdout, usageLine)
		return 1
	case errors.As(err, &exitErr):
		return exitErr.code
	default:
		output.PrintError(stdout, "ERROR: %v", err)
		return 1
	}
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
