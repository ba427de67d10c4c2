package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPayCmd() *cobra.Command {
	var watch bool
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "pay <tx_ref>",
		Short: "Check or follow a payment by transaction reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txRef := args[0]
			if watch {
				v, err := client.PollPayment(cmd.Context(), txRef, interval)
				if v != nil {
					fmt.Printf("%s: %s\n", v.TxRef, v.Status)
				}
				return err
			}
			v, err := client.API().VerifyPayment(cmd.Context(), txRef)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", v.TxRef, v.Status)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "poll until the payment settles")
	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "polling interval")
	return cmd
}
