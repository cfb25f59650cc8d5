package main

import (
	"fmt"

	"github.com/oleg578/csvloader"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var input inputFlags
	var alwaysQuote bool

	cmd := &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Parse a CSV file and print it back in canonical form",
		Long: "Parse a CSV file and print it back in canonical form. Strings are quoted only when\n" +
			"needed to load back as strings, floats always carry a decimal point.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := input.load(cmd, args[0])
			if err != nil {
				return err
			}

			w := csvloader.NewWriter(cmd.OutOrStdout())
			w.AlwaysQuote = alwaysQuote
			if err := w.WriteAll(grid); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			return nil
		},
	}
	input.register(cmd)
	cmd.Flags().BoolVar(&alwaysQuote, "always-quote", false, "quote every string value")

	return cmd
}
