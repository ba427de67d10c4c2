package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show group suggestions for the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := client.API().Recommendations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tGROUP\tWHY")
			for _, r := range recs {
				fmt.Fprintf(w, "%.2f\t%s\t%s\n", r.Score, r.Group.Name, r.Reason)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum suggestions")
	return cmd
}
