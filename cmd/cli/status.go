package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the snippet-review server is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := newAPIClient()

		var reviewCount int
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			return client.health(ctx)
		})
		g.Go(func() error {
			records, err := client.recentReviews(ctx)
			if err != nil {
				return err
			}
			reviewCount = len(records)
			return nil
		})

		if err := g.Wait(); err != nil {
			errorColor.Printf("Server at %s is not healthy: %v\n", viper.GetString("SERVER_URL"), err)
			return err
		}

		successColor.Printf("Server at %s is healthy.\n", viper.GetString("SERVER_URL"))
		fmt.Printf("Stored reviews (last 50): %d\n", reviewCount)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(statusCmd)
}
