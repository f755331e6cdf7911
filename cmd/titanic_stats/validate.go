package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/titanic-survival/internal/dataset"
	"github.com/jonathan/titanic-survival/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate a passenger file without reporting",
	Long:  "Loads the passenger file, checks every row (column count, 0/1 survival, class 1-3, sex female/male) and prints the row and survivor counts.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the passenger CSV file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	c := cfg
	if cmd.Flags().Changed("in") {
		c.Input = validateInput
	}
	c.ResolveInput()

	ds, err := dataset.Load(c.Input)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	out := cmd.OutOrStdout()
	if c.Verbose {
		observability.NewPrinter(out).PrintDatasetProfile(ds)
	}

	prof := observability.Profile(ds)
	_, _ = fmt.Fprintf(out, "Dataset OK: %d passengers, %d survivors\n", prof.Passengers, prof.Survivors)
	_, _ = fmt.Fprintf(out, "Input: %s\n", ds.Source)

	return nil
}
