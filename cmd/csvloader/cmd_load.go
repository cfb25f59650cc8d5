package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var input inputFlags
	var pretty bool

	cmd := &cobra.Command{
		Use:   "load <file|->",
		Short: "Parse a CSV file and print the typed rows as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := input.load(cmd, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(grid); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}
	input.register(cmd)
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")

	return cmd
}
