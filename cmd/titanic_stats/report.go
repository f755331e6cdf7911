package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/titanic-survival/internal/config"
	"github.com/jonathan/titanic-survival/internal/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print survival contingency tables for a passenger file",
	Long: `Loads the passenger file, computes P(survival), P(survival|sex) and P(survival|class),
and prints both contingency tables with narrative sentences to stdout.

Optionally writes a schema-validated JSON report (--json) and a bar chart of the
survival rates (--chart, .png/.svg/.pdf).

The input path defaults to $TITANIC_INPUT, then to train.csv.`,
	RunE: runReport,
}

var (
	reportInput string
	reportJSON  string
	reportChart string
)

// addReportFlags binds the report flags; the root command shares them so that running
// the binary without a sub-command prints the report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reportInput, "in", "i", "", "Path to the passenger CSV file")
	cmd.Flags().StringVar(&reportJSON, "json", "", "Path to write the JSON report (optional)")
	cmd.Flags().StringVar(&reportChart, "chart", "", "Path to write the survival-rate chart (optional)")
}

func init() {
	addReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

// reportConfig applies the report flags on top of the loaded config.
// Only override if the flag was explicitly set.
func reportConfig(cmd *cobra.Command, base config.Config) (config.Config, error) {
	c := base
	if cmd.Flags().Changed("in") {
		c.Input = reportInput
	}
	if cmd.Flags().Changed("json") {
		c.JSONOut = reportJSON
	}
	if cmd.Flags().Changed("chart") {
		c.ChartOut = reportChart
	}
	c.ResolveInput()

	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	c, err := reportConfig(cmd, cfg)
	if err != nil {
		return err
	}

	_, err = pipeline.Run(cmd.Context(), pipeline.RunOptions{
		InputPath: c.Input,
		JSONPath:  c.JSONOut,
		ChartPath: c.ChartOut,
		Verbose:   c.Verbose,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	return err
}
