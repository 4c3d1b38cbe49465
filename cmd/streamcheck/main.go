package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/10Narratives/streamcheck/cmd/streamcheck/commands"
	errorutils "github.com/10Narratives/streamcheck/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:          "streamcheck",
		Short:        "Integration test driver for the Kinesis to S3 pipeline",
		Long:         "Runs the integration-test steps of the streaming pipeline in-process: publish synthetic records, poll the output bucket, clean it, or drive the whole workflow.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to configuration file, environment is used when empty")
	rootCmd.PersistentFlags().StringVar(&opts.Env, "env", "", "launch environment, overrides the configured one")

	rootCmd.AddCommand(
		commands.NewGenerateCmd(opts),
		commands.NewStatusCmd(opts),
		commands.NewCleanCmd(opts),
		commands.NewRunCmd(opts),
		commands.NewDeliverCmd(opts),
	)

	errorutils.Try(rootCmd.ExecuteContext(ctx))
}
