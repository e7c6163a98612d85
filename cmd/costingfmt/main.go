// Command costingfmt reformats a Workday "Costing Allocations" export
// workbook into the fixed nine-column layout expected by payroll.
//
// The run is single-shot: pick a source workbook, read its header block to
// name the output file, refuse to overwrite an existing output, transform
// the data table, write the formatted workbook. Every failure is a terminal
// abort with a message; nothing is retried.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"costingcli/internal/config"
	"costingcli/internal/exporter"
	"costingcli/internal/files"
	"costingcli/internal/infrastructure"
	"costingcli/internal/namer"
	"costingcli/internal/workday"
)

func main() {
	filePath := flag.String("file", "", "path to a Workday Costing Allocations export (skips the interactive picker)")
	outDir := flag.String("out", "", "output directory (overrides configuration)")
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := loadConfig(*configFile)
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting costing allocations formatting",
		slog.String("source_dir", cfg.Paths.SourceDir),
		slog.String("output_dir", cfg.Paths.OutputDir))

	if err := cfg.EnsureOutputDir(); err != nil {
		logger.Error("Failed to create output directory", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := *filePath
	if input == "" {
		input, err = pickSourceFile(cfg.Paths.SourceDir, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if input == "" {
			// User cancelled the picker: clean, silent exit.
			logger.Info("No file selected, exiting")
			return
		}
	}

	logger.Info("Source file selected", slog.String("path", input))

	meta, err := workday.ReadHeader(input)
	if err != nil {
		logger.Error("Failed to read header block", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath, err := namer.OutputPath(cfg.Paths.OutputDir, meta)
	if err != nil {
		logger.Error("Failed to compute output path", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Checked before the data table is read so an existing output aborts
	// the run as early as possible.
	if _, err := os.Stat(outPath); err == nil {
		logger.Error("Output file already exists", slog.String("path", outPath))
		fmt.Fprintf(os.Stderr, "The output file already exists:\n\n%s\n", outPath)
		os.Exit(1)
	}

	table, err := workday.ReadTable(input)
	if err != nil {
		logger.Error("Failed to read data table", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows, err := workday.Transform(table)
	if err != nil {
		var schemaErr *workday.SchemaError
		if errors.As(err, &schemaErr) {
			logger.Error("Source table layout has changed",
				slog.Any("missing_columns", schemaErr.Missing))
			reportSchemaError(schemaErr)
		} else {
			logger.Error("Transform failed", slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	writer := exporter.NewXLSXWriter(logger)
	if err := writer.Write(outPath, rows); err != nil {
		logger.Error("Failed to write output workbook", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Output created:\n\n%s\n", outPath)
}

// loadConfig loads configuration, falling back to defaults on failure the
// same way the run would behave with an unedited install.
func loadConfig(configFile string) *config.Config {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadFrom(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		return config.Default()
	}
	return cfg
}

// pickSourceFile lists the Excel workbooks in the source directory and asks
// the user to choose one. An empty answer cancels and returns "".
func pickSourceFile(sourceDir string, in io.Reader) (string, error) {
	discovery := files.NewDiscovery("")
	found, err := discovery.FindExcelFiles(sourceDir)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no Excel files found in %s", sourceDir)
	}

	fmt.Printf("Excel files in %s:\n\n", sourceDir)
	for i, f := range found {
		fmt.Printf("  %2d. %s\n", i+1, f.Name)
	}
	fmt.Printf("\nSelect file (1-%d, blank to cancel): ", len(found))

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(found) {
		return "", fmt.Errorf("invalid selection %q", answer)
	}

	return found[n-1].Path, nil
}

// reportSchemaError prints the structural error the way the user needs to
// see it: the Cost Center message on its own, missing columns as a list.
func reportSchemaError(e *workday.SchemaError) {
	if len(e.Missing) == 0 {
		fmt.Fprintf(os.Stderr, "%s\n", e.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "The excel file layout has changed.\n\nMissing columns:\n\n%s\n",
		strings.Join(e.Missing, "\n"))
}
