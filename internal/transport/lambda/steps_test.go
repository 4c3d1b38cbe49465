package lambdatr_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	generatorsrv "github.com/10Narratives/streamcheck/internal/services/generator"
	lambdatr "github.com/10Narratives/streamcheck/internal/transport/lambda"
	"github.com/10Narratives/streamcheck/internal/transport/lambda/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, h lambdatr.Handler, payload string) map[string]any {
	t.Helper()

	resp, err := h(context.Background(), json.RawMessage(payload))
	require.NoError(t, err)
	require.NotNil(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestGeneratorHandler(t *testing.T) {
	t.Run("error: payload is not an object", func(t *testing.T) {
		h := lambdatr.NewGeneratorHandler(mocks.NewGeneratorService(t))

		out := invoke(t, h, `[1]`)
		require.Equal(t, "FAILED", out["status"])
		require.Contains(t, out["error_message"], "invalid event payload")
		require.NotContains(t, out, "guid")
	})

	t.Run("error: missing stream", func(t *testing.T) {
		h := lambdatr.NewGeneratorHandler(mocks.NewGeneratorService(t))

		out := invoke(t, h, `{"record_count": 2}`)
		require.Equal(t, "FAILED", out["status"])
		require.Equal(t, `missing event field: "KinesisInputStreamName"`, out["error_message"])
	})

	t.Run("error: publish fails", func(t *testing.T) {
		svc := mocks.NewGeneratorService(t)
		h := lambdatr.NewGeneratorHandler(svc)

		svc.EXPECT().
			GenerateEvents(mock.Anything, &generatorsrv.GenerateEventsArgs{Stream: "in", RecordCount: 2}).
			Return(nil, errors.New("ResourceNotFoundException: stream in not found")).
			Once()

		out := invoke(t, h, `{"record_count": 2, "KinesisInputStreamName": "in"}`)
		require.Equal(t, map[string]any{
			"status":        "FAILED",
			"error_message": "ResourceNotFoundException: stream in not found",
		}, out)
	})

	t.Run("ok: event echoed unchanged", func(t *testing.T) {
		svc := mocks.NewGeneratorService(t)
		h := lambdatr.NewGeneratorHandler(svc)

		svc.EXPECT().
			GenerateEvents(mock.Anything, &generatorsrv.GenerateEventsArgs{Stream: "in", RecordCount: 2}).
			Return(&generatorsrv.GenerateEventsResult{Published: 2}, nil).
			Once()

		out := invoke(t, h, `{"record_count": 2, "KinesisInputStreamName": "in", "FirehoseOutputBucket": "b"}`)
		require.Equal(t, map[string]any{
			"record_count":           float64(2),
			"KinesisInputStreamName": "in",
			"FirehoseOutputBucket":   "b",
		}, out)
	})
}

func TestPollerHandler(t *testing.T) {
	t.Run("error: failure echoes advanced event", func(t *testing.T) {
		svc := mocks.NewPollerService(t)
		h := lambdatr.NewPollerHandler(svc)

		svc.EXPECT().
			GetTestStatus(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, ev *pipelinedomain.Event) (*pipelinedomain.Event, error) {
				_, err := ev.NextWaitLoop()
				require.NoError(t, err)
				return nil, pipelinedomain.ErrVerificationFailed
			}).
			Once()

		out := invoke(t, h, `{"record_count": 1, "FirehoseOutputBucket": "b", "wait_loop_count": 1}`)
		require.Equal(t, "FAILED", out["status"])
		require.Equal(t, "output verification failed", out["error_message"])
		require.Equal(t, map[string]any{
			"record_count":         float64(1),
			"FirehoseOutputBucket": "b",
			"wait_loop_count":      float64(2),
		}, out["guid"])
	})

	t.Run("ok: status returned", func(t *testing.T) {
		svc := mocks.NewPollerService(t)
		h := lambdatr.NewPollerHandler(svc)

		svc.EXPECT().
			GetTestStatus(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, ev *pipelinedomain.Event) (*pipelinedomain.Event, error) {
				_, err := ev.NextWaitLoop()
				require.NoError(t, err)
				ev.SetStatus(pipelinedomain.StatusSucceeded)
				return ev, nil
			}).
			Once()

		out := invoke(t, h, `{"record_count": 3, "FirehoseOutputBucket": "b"}`)
		require.Equal(t, "SUCCEEDED", out["status"])
		require.Equal(t, float64(0), out["wait_loop_count"])
	})
}

func TestCleanerHandler(t *testing.T) {
	t.Run("error: missing bucket echoes event", func(t *testing.T) {
		h := lambdatr.NewCleanerHandler(mocks.NewCleanerService(t))

		out := invoke(t, h, `{"record_count": 1}`)
		require.Equal(t, "FAILED", out["status"])
		require.Equal(t, map[string]any{"record_count": float64(1)}, out["guid"])
	})

	t.Run("error: delete fails", func(t *testing.T) {
		svc := mocks.NewCleanerService(t)
		h := lambdatr.NewCleanerHandler(svc)

		svc.EXPECT().CleanBucket(mock.Anything, "b").Return(nil, errors.New("AccessDenied")).Once()

		out := invoke(t, h, `{"FirehoseOutputBucket": "b"}`)
		require.Equal(t, map[string]any{
			"status":        "FAILED",
			"error_message": "AccessDenied",
			"guid":          map[string]any{"FirehoseOutputBucket": "b"},
		}, out)
	})

	t.Run("ok: event echoed unchanged", func(t *testing.T) {
		svc := mocks.NewCleanerService(t)
		h := lambdatr.NewCleanerHandler(svc)

		svc.EXPECT().CleanBucket(mock.Anything, "b").Return(&pipelinedomain.DeleteAllObjectsResult{Deleted: 4}, nil).Once()

		out := invoke(t, h, `{"FirehoseOutputBucket": "b", "status": "SUCCEEDED"}`)
		require.Equal(t, map[string]any{"FirehoseOutputBucket": "b", "status": "SUCCEEDED"}, out)
	})
}
