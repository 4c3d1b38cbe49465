package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewDeliverCmd(opts *GlobalOptions) *cobra.Command {
	var (
		stream  string
		bucket  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Move records from the local stream to the local bucket",
		Long:  "Consumes the JetStream stream standing in for Kinesis, enriches each record and writes it to the bucket, until interrupted. Needs the nats stream backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stream == "" || bucket == "" {
				return fmt.Errorf("--stream and --bucket are required")
			}

			ctx := cmd.Context()
			rt, err := opts.load(ctx)
			if err != nil {
				return err
			}

			consumer, err := rt.app.NewDeliveryConsumer(ctx, stream, bucket)
			if err != nil {
				rt.close(context.Background())
				return err
			}
			if err := consumer.Run(ctx); err != nil {
				rt.close(context.Background())
				return err
			}
			rt.log.Info("delivery started", zap.String("stream", stream), zap.String("bucket", bucket))

			<-ctx.Done()

			rt.log.Info("stopping delivery")
			stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			err = consumer.Stop(stopCtx)
			rt.close(stopCtx)
			return err
		},
	}

	cmd.Flags().StringVar(&stream, "stream", "", "Input stream name")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Output bucket name")
	cmd.Flags().DurationVar(&timeout, "shutdown-timeout", 10*time.Second, "Time allowed for in-flight records on shutdown")

	return cmd
}
