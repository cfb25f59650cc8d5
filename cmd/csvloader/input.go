package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oleg578/csvloader"
	"github.com/oleg578/csvloader/internal/config"
	"github.com/oleg578/csvloader/internal/logger"
	"github.com/oleg578/csvloader/internal/source"
	"github.com/spf13/cobra"
)

// inputFlags are the flags shared by every command that reads a CSV input.
type inputFlags struct {
	maxFieldSize int
	maxInputSize int64
	compression  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	conf := config.New().Prefix("CSVLOADER_")

	cmd.Flags().IntVar(&f.maxFieldSize, "max-field-size", conf.GetInt("MAX_FIELD_SIZE", 0), "largest quoted field in bytes, 0 for no limit")
	cmd.Flags().Int64Var(&f.maxInputSize, "max-input-size", int64(conf.GetInt("MAX_INPUT_SIZE", 0)), "largest decompressed input in bytes, 0 for no limit")
	cmd.Flags().StringVar(&f.compression, "compression", "auto", "input compression (auto, none, gzip, zstd, s2, lz4, xz)")
}

// load reads the input named by path ("-" for stdin) and parses it into a grid.
func (f *inputFlags) load(cmd *cobra.Command, path string) (csvloader.Grid, error) {
	log := logger.Named("input")
	start := time.Now()

	data, comp, err := f.read(cmd, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	loader := csvloader.Loader{MaxFieldSize: f.maxFieldSize}
	grid, err := loader.Loads(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Stringer("compression", comp).
		Int("bytes", len(data)).
		Int("rows", len(grid)).
		Dur("took", time.Since(start)).
		Msg("loaded input")
	return grid, nil
}

func (f *inputFlags) read(cmd *cobra.Command, path string) ([]byte, source.Compression, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, source.CompressionNone, err
		}
		defer file.Close()
		r = file
	}

	if f.compression == "" || f.compression == "auto" {
		return source.Read(r, path, f.maxInputSize)
	}
	comp, err := source.ParseCompression(f.compression)
	if err != nil {
		return nil, source.CompressionNone, err
	}
	data, err := source.ReadAs(r, comp, f.maxInputSize)
	return data, comp, err
}
