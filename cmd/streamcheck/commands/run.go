package commands

import (
	"fmt"

	workflowsrv "github.com/10Narratives/streamcheck/internal/services/workflow"
	"github.com/spf13/cobra"
)

func NewRunCmd(opts *GlobalOptions) *cobra.Command {
	var (
		records int
		stream  string
		bucket  string
		wait    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the whole integration test",
		Long:  "Cleans the output bucket, publishes records, waits and polls until the delivered records are verified, then cleans again.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stream == "" {
				return fmt.Errorf("--stream is required")
			}
			if bucket == "" {
				return fmt.Errorf("--bucket is required")
			}

			rt, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			if !cmd.Flags().Changed("wait") {
				wait = rt.cfg.Workflow.WaitSeconds
			}

			res, err := rt.app.Workflow().Run(cmd.Context(), &workflowsrv.RunArgs{
				Stream:      stream,
				Bucket:      bucket,
				RecordCount: records,
				WaitSeconds: wait,
			})
			if res != nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"run: id=%s, status=%s, polls=%d\n",
					res.RunID,
					res.Status,
					res.Polls,
				)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&records, "records", 10, "Number of records to publish")
	cmd.Flags().StringVar(&stream, "stream", "", "Input stream name")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Output bucket name")
	cmd.Flags().IntVar(&wait, "wait", 0, "Seconds to wait before each poll")

	return cmd
}
