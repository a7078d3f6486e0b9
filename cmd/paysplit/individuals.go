// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paysplit/pkg/types"
)

var individualsCmd = &cobra.Command{
	Use:   "individuals",
	Short: "List every individual in the store",
	Args:  cobra.NoArgs,
	RunE:  runIndividuals,
}

var recordsCmd = &cobra.Command{
	Use:   "records <individual-id>",
	Short: "List the pay records of one individual",
	Long: `Records lists the pay statements stored for the individual with the given
id (see the individuals command). Use the open command with a record's
filename to locate the split PDF.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecords,
}

func init() {
	individualsCmd.Flags().Bool("json", false, "output as JSON")
	recordsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(individualsCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runIndividuals(cmd *cobra.Command, args []string) error {
	sess, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	individuals, err := sess.ListIndividuals(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatIndividuals(cmd.OutOrStdout(), individuals, jsonOutput)
}

func runRecords(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid individual id %q: %w", args[0], err)
	}

	sess, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	records, err := sess.ListPayRecords(cmd.Context(), id)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRecords(cmd.OutOrStdout(), records, jsonOutput)
}

func formatIndividuals(w io.Writer, individuals []types.Individual, jsonOutput bool) error {
	if jsonOutput {
		return encodeJSON(w, individuals)
	}

	if len(individuals) == 0 {
		fmt.Fprintln(w, "No individuals found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-30s  %-15s  %s\n", "ID", "Name", "Address", "Phone", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, ind := range individuals {
		fmt.Fprintf(w, "%-4d  %-30s  %-30s  %-15s  %s\n",
			ind.ID, truncate(ind.Name, 30), truncate(ind.Address, 30), truncate(ind.Phone, 15), truncate(ind.Email, 40))
	}

	fmt.Fprintf(w, "\n%d individuals\n", len(individuals))
	return nil
}

func formatRecords(w io.Writer, records []types.PayRecord, jsonOutput bool) error {
	if jsonOutput {
		return encodeJSON(w, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No pay records found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-12s  %-45s  %s\n", "ID", "Date", "Filename", "Extraction Date")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range records {
		fmt.Fprintf(w, "%-4d  %-12s  %-45s  %s\n", r.ID, r.Date, truncate(r.Filename, 45), r.ExtractedAt)
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// lineBreaks flattens multi-line values into one table row.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// truncate flattens s onto one line and cuts it to at most n runes.
func truncate(s string, n int) string {
	s = lineBreaks.Replace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
