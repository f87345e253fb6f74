package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/b2fa/internal/buildinfo"
	"github.com/cleared-dev/b2fa/internal/config"
	"github.com/cleared-dev/b2fa/internal/logger"
)

// usageText is printed when the converter gets the wrong number of arguments.
const usageText = "Usage: b2fa sample.csv sample-converted.csv"

// UsageError reports a malformed command line. Its message is printed as is.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// IsUsageError reports whether err is a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// The root command itself converts a bank export.
func NewRootCommand() *cobra.Command {
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:     "b2fa <input.csv> <output.csv>",
		Short:   "Convert a bank CSV export into date,amount,description rows",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{Message: usageText}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			log := logger.New(opts.verbose)
			return runConvert(cmd.OutOrStdout(), log, cfg, opts, args[0], args[1])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a b2fa.yaml layout file")
	flags.BoolVar(&opts.strict, "strict", false, "exit non-zero when the running balance does not reconcile")
	flags.BoolVar(&opts.noReconcile, "no-reconcile", false, "skip the running balance check")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
