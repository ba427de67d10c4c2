package main

import (
	"fmt"

	"github.com/gebeyahub/gebeya-go/mlstream"
	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Retrain the recommendation model (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.API().RetrainModel(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("training started")
			if !watch {
				return nil
			}

			stream := client.TrainingProgress(cmd.Context())
			defer stream.Close()
			for ev := range stream.Events() {
				switch ev.Type {
				case mlstream.EventProgress:
					fmt.Printf("[%5.1f%%] %s %s\n", ev.Percent, ev.Stage, ev.Message)
				case mlstream.EventCompleted:
					fmt.Println("training completed")
					return nil
				case mlstream.EventError:
					return fmt.Errorf("training failed: %s", ev.Detail)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "stream progress until completion")
	return cmd
}
