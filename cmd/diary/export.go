package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmluong/workout-diary/internal/service"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the diary as a flat CSV or JSON table",
	Long: `export seeds the sample diary and writes one row per entry, with the
author's fields repeated on every row. Output goes to stdout unless --out
names a file.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportFormat != "json" && exportFormat != "csv" {
		return fmt.Errorf("unknown format %q (want json or csv)", exportFormat)
	}

	_, diary, err := seed()
	if err != nil {
		return err
	}
	svc := service.NewExportService(diary)

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
		slog.Info("writing export", "path", exportOut, "format", exportFormat)
	}

	if exportFormat == "csv" {
		return svc.WriteCSV(w)
	}
	return svc.WriteJSON(w)
}
