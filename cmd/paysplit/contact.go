// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact [name]",
	Short: "Set the contact details of an individual",
	Long: `Contact overwrites the address, phone, and email stored for the named
individual. Flags left unset store an empty value. The name must match
exactly, including case.

Without a name, contact lists the known names in alphabetical order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContact,
}

func init() {
	contactCmd.Flags().String("address", "", "postal address")
	contactCmd.Flags().String("phone", "", "phone number")
	contactCmd.Flags().String("email", "", "email address")

	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	sess, logger, _, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		names, err := sess.IndividualNames(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "No individuals found.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	address, _ := cmd.Flags().GetString("address")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")

	name := args[0]
	updated, err := sess.UpdateContact(cmd.Context(), name, address, phone, email)
	if err != nil {
		return err
	}
	if !updated {
		logger.Warn("no individual with that name", "name", name)
		fmt.Fprintf(out, "No individual named %q; nothing updated.\n", name)
		return nil
	}

	fmt.Fprintf(out, "Contact information saved for %s\n", name)
	return nil
}
