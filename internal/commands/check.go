package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/b2fa/internal/export"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <converted.csv>",
		Short: "Verify a converted file can be read back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening converted file: %w", err)
	}
	defer f.Close()

	txns, err := export.ReadTransactions(f)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	total, err := export.Total(txns)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	fmt.Fprintf(out, "%d transactions, net %s\n", len(txns), total.StringFixed(2))
	return nil
}
