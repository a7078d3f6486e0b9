// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paysplit/internal/session"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the output folder and the pay statement store",
	Long: `Init creates the output folder (default ./Split) and the pdf_data.db store
inside it. Running it against an existing store leaves the data untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	sess, logger, _, err := setup(cmd)
	if err != nil {
		return err
	}

	status, err := sess.Init(cmd.Context())
	if err != nil {
		logger.Error("database initialization failed", "store", sess.StorePath(), "error", err)
		return err
	}

	switch status {
	case session.StoreCreated:
		fmt.Fprintf(cmd.OutOrStdout(), "Database Status: Created - %s\n", sess.StorePath())
	case session.StoreFound:
		fmt.Fprintf(cmd.OutOrStdout(), "Database Status: Found - %s\n", sess.StorePath())
	}
	return nil
}
