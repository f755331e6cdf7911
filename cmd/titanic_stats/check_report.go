package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/titanic-survival/internal/schemas"
)

var checkReportCmd = &cobra.Command{
	Use:   "check-report <report.json>",
	Short: "Validate a JSON survival report against its schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckReport,
}

func init() {
	rootCmd.AddCommand(checkReportCmd)
}

func runCheckReport(cmd *cobra.Command, args []string) error {
	if err := schemas.ValidateReportFile(args[0]); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report OK: %s\n", args[0])
	return nil
}
