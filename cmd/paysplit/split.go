// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paysplit/internal/split"
)

var splitCmd = &cobra.Command{
	Use:   "split <statements.pdf>",
	Short: "Split a pay statement PDF into one file per page",
	Long: `Split writes every page of the source PDF to the output folder as
"<name> <date>.pdf", using the payee name and cheque date read from the page,
and records each page in pdf_data.db.

Pages that yield the same name and date overwrite each other on disk; the
store keeps only the first record for that pair. Pages without a readable
name or date are written as "Unknown Unknown_Date.pdf".`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	sess, logger, _, err := setup(cmd)
	if err != nil {
		return err
	}

	summary, err := split.File(cmd.Context(), sess, args[0], cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "PDF split complete and data stored in database at %s\n", summary.StorePath)
	return nil
}
