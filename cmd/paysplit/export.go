// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paysplit/internal/export"
	"github.com/pdiddy/paysplit/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store to YAML, JSON, or an Excel workbook",
	Long: `Export writes every individual with their pay records to
<output-dir>/export.<format>. The xlsx format produces one row per pay
record on a "Pay Statements" sheet.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "export format: yaml, json, or xlsx (default from config, else yaml)")
	exportCmd.Flags().String("out", "", "output path (default <output-dir>/export.<format>)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, logger, cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	format := cfg.Export.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = types.ExportFormat(f)
	}
	if format == "" {
		format = types.ExportYAML
	}

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = export.DefaultPath(sess.OutputDir(), format)
	}

	n, err := export.Write(cmd.Context(), sess, format, path)
	if err != nil {
		return err
	}

	logger.Debug("export written", "format", format, "path", path, "individuals", n)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d individuals to %s\n", n, path)
	return nil
}
