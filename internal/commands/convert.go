package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/b2fa/internal/config"
	"github.com/cleared-dev/b2fa/internal/export"
	"github.com/cleared-dev/b2fa/internal/importer"
	"github.com/cleared-dev/b2fa/internal/reconcile"
)

type convertOptions struct {
	configPath  string
	strict      bool
	noReconcile bool
	verbose     bool
}

func runConvert(out io.Writer, log zerolog.Logger, cfg *config.Config, opts convertOptions, inputPath, outputPath string) error {
	// Read and normalize the whole export before touching the output.
	parser := importer.NewParser(cfg, log)
	stmt, err := parser.ParseFile(inputPath)
	if err != nil {
		return err
	}

	// Check the running balance.
	var result reconcile.Result
	checked := cfg.Reconcile.Enabled && !opts.noReconcile
	if checked {
		result = reconcile.Reconcile(stmt.Rows)
		log.Debug().
			Int("rows", result.Rows).
			Str("start", result.Start.StringFixed(2)).
			Str("end", result.End.StringFixed(2)).
			Str("computed", result.Computed.StringFixed(2)).
			Bool("balanced", result.Balanced).
			Msg("reconciled running balance")
		if err := result.WriteWarning(out, cfg.Reconcile.CurrencySymbol); err != nil {
			return fmt.Errorf("writing warning: %w", err)
		}
	}

	// Write the converted file.
	if err := export.WriteFile(outputPath, stmt.Transactions()); err != nil {
		return err
	}
	log.Debug().Int("rows", len(stmt.Rows)).Str("path", outputPath).Msg("wrote converted file")

	if checked && (opts.strict || cfg.Reconcile.FailOnMismatch) {
		if err := result.Err(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Done!")
	return nil
}
