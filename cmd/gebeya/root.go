package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gebeyahub/gebeya-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagBaseURL string
	flagMock    bool
	flagVerbose bool

	client *gebeya.Client
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "gebeya",
	Short:         "Gebeya is a terminal client for the group-buying marketplace.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagVerbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		opts := []gebeya.Option{
			gebeya.WithLogger(logger),
			gebeya.WithOnUnauthorized(func() {
				fmt.Fprintln(os.Stderr, "session expired, please run `gebeya login`")
			}),
		}
		if cmd.Flags().Changed("base-url") {
			opts = append(opts, gebeya.WithBaseURL(flagBaseURL))
		}
		if cmd.Flags().Changed("mock") {
			opts = append(opts, gebeya.WithMockMode(flagMock))
		}

		client, err = gebeya.New(opts...)
		if err != nil {
			return fmt.Errorf("initialize client: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI with the provided context for graceful shutdown.
func Execute(ctx context.Context) error {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend origin (overrides GEBEYA_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "serve fixture data instead of calling the backend")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newPayCmd())
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newMetadataCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}
