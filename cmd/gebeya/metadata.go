package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Show platform categories and locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := client.Metadata().All(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("categories:", strings.Join(bundle.Categories, ", "))
			fmt.Println("locations: ", strings.Join(bundle.Locations, ", "))
			if len(bundle.Units) > 0 {
				fmt.Println("units:     ", strings.Join(bundle.Units, ", "))
			}
			return nil
		},
	}
}
