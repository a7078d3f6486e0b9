// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <filename>",
	Short: "Print the path of a split PDF",
	Long: `Open resolves a pay record's filename against the output folder and prints
the full path, failing when the file is no longer on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	sess, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	path, err := sess.ArtifactPath(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
