package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var outputJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the most recent stored reviews",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := newAPIClient()

		records, err := client.recentReviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to retrieve reviews: %w", err)
		}

		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		}

		if len(records) == 0 {
			dimColor.Println("No reviews stored yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CREATED\tFILENAME\tLANGUAGE\tPREVIEW")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.CreatedAt.Format(time.RFC822),
				r.Filename,
				r.Language,
				previewOf(r.ReviewText),
			)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	historyCmd.Flags().BoolVar(&outputJSON, "json", false, "Output the raw records as JSON")
	rootCmd.AddCommand(historyCmd)
}

// previewOf flattens a review to a single short line for the table.
func previewOf(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	if len(flat) > 60 {
		return flat[:60] + "..."
	}
	return flat
}
