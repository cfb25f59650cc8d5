package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oleg578/csvloader"
	"github.com/spf13/cobra"
)

// gridStats summarizes the shape and value kinds of a grid.
type gridStats struct {
	Rows     int `json:"rows"`
	Fields   int `json:"fields"`
	MinWidth int `json:"min_width"`
	MaxWidth int `json:"max_width"`
	Nulls    int `json:"nulls"`
	Ints     int `json:"ints"`
	Floats   int `json:"floats"`
	Strings  int `json:"strings"`
}

func computeStats(grid csvloader.Grid) gridStats {
	var s gridStats
	for i, row := range grid {
		s.Rows++
		s.Fields += len(row)
		if i == 0 || len(row) < s.MinWidth {
			s.MinWidth = len(row)
		}
		if len(row) > s.MaxWidth {
			s.MaxWidth = len(row)
		}
		for _, v := range row {
			switch v.Kind() {
			case csvloader.KindNull:
				s.Nulls++
			case csvloader.KindInt:
				s.Ints++
			case csvloader.KindFloat:
				s.Floats++
			case csvloader.KindString:
				s.Strings++
			}
		}
	}
	return s
}

func (s gridStats) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"rows:    %d\nfields:  %d\nwidth:   %d..%d\nnull:    %d\nint:     %d\nfloat:   %d\nstring:  %d\n",
		s.Rows, s.Fields, s.MinWidth, s.MaxWidth, s.Nulls, s.Ints, s.Floats, s.Strings)
	return err
}

func newStatsCmd() *cobra.Command {
	var input inputFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "stats <file|->",
		Short: "Parse a CSV file and report row widths and value kinds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := input.load(cmd, args[0])
			if err != nil {
				return err
			}

			stats := computeStats(grid)
			switch outputFormat {
			case "text":
				return stats.writeText(cmd.OutOrStdout())
			case "json":
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(stats); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}
	input.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
