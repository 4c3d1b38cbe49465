package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	functionsapp "github.com/10Narratives/streamcheck/internal/app/functions"
	lambdatr "github.com/10Narratives/streamcheck/internal/transport/lambda"
	"github.com/spf13/cobra"
)

var errStepFailed = errors.New("step reported FAILED")

func NewGenerateCmd(opts *GlobalOptions) *cobra.Command {
	return newStepCmd(opts, "generate",
		"Publish record_count synthetic records to KinesisInputStreamName",
		(*functionsapp.App).GeneratorHandler)
}

func NewStatusCmd(opts *GlobalOptions) *cobra.Command {
	return newStepCmd(opts, "status",
		"Count and verify the records delivered to FirehoseOutputBucket",
		(*functionsapp.App).PollerHandler)
}

func NewCleanCmd(opts *GlobalOptions) *cobra.Command {
	return newStepCmd(opts, "clean",
		"Delete every object of FirehoseOutputBucket",
		(*functionsapp.App).CleanerHandler)
}

// newStepCmd invokes one workflow step in-process with the event given by
// --event or read from stdin, and prints the response.
func newStepCmd(opts *GlobalOptions, use, short string, handler func(*functionsapp.App) lambdatr.Handler) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readEvent(cmd.InOrStdin(), event)
			if err != nil {
				return err
			}

			rt, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			resp, err := handler(rt.app)(cmd.Context(), payload)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if resp.IsFailure() {
				return errStepFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&event, "event", "", `Event JSON, e.g. {"record_count": 10, "KinesisInputStreamName": "input"}; read from stdin when empty`)

	return cmd
}

func readEvent(stdin io.Reader, event string) (json.RawMessage, error) {
	if strings.TrimSpace(event) != "" {
		return json.RawMessage(event), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read event from stdin: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("--event is required when stdin is empty")
	}
	return data, nil
}
