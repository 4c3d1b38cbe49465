package pipelinedomain_test

import (
	"encoding/json"
	"errors"
	"testing"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/crowdsecurity/go-cs-lib/cstest"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	t.Run("error: not an object", func(t *testing.T) {
		for _, in := range []string{``, `[]`, `"x"`, `42`, `null`} {
			_, err := pipelinedomain.ParseEvent([]byte(in))
			require.ErrorIs(t, err, pipelinedomain.ErrInvalidEvent, "input %q", in)
		}
	})

	t.Run("error: malformed object", func(t *testing.T) {
		_, err := pipelinedomain.ParseEvent([]byte(`{"record_count":`))
		require.ErrorIs(t, err, pipelinedomain.ErrInvalidEvent)
	})

	t.Run("ok: unknown fields survive a round trip", func(t *testing.T) {
		in := `{"record_count":3,"waitSeconds":10,"nested":{"a":[1,2,{"b":null}]},"big":12345678901234567890}`

		ev, err := pipelinedomain.ParseEvent([]byte(in))
		require.NoError(t, err)

		out, err := json.Marshal(ev)
		require.NoError(t, err)
		require.JSONEq(t, in, string(out))
	})
}

func TestEvent_Accessors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		get     func(e *pipelinedomain.Event) (any, error)
		want    any
		wantErr string
		is      error
	}{
		{
			name: "record_count ok",
			in:   `{"record_count": 7}`,
			get:  func(e *pipelinedomain.Event) (any, error) { return e.RecordCount() },
			want: 7,
		},
		{
			name:    "record_count missing",
			in:      `{}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.RecordCount() },
			wantErr: `missing event field: "record_count"`,
			is:      pipelinedomain.ErrMissingField,
		},
		{
			name:    "record_count negative",
			in:      `{"record_count": -1}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.RecordCount() },
			wantErr: "must not be negative",
			is:      pipelinedomain.ErrInvalidField,
		},
		{
			name:    "record_count fractional",
			in:      `{"record_count": 1.5}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.RecordCount() },
			wantErr: "must be an integer",
			is:      pipelinedomain.ErrInvalidField,
		},
		{
			name:    "record_count quoted",
			in:      `{"record_count": "3"}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.RecordCount() },
			wantErr: "must be an integer",
			is:      pipelinedomain.ErrInvalidField,
		},
		{
			name: "bucket ok",
			in:   `{"FirehoseOutputBucket": "b"}`,
			get:  func(e *pipelinedomain.Event) (any, error) { return e.BucketName() },
			want: "b",
		},
		{
			name:    "bucket empty",
			in:      `{"FirehoseOutputBucket": ""}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.BucketName() },
			wantErr: "bucket name is empty",
			is:      pipelinedomain.ErrEmptyBucketName,
		},
		{
			name:    "bucket not a string",
			in:      `{"FirehoseOutputBucket": 1}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.BucketName() },
			wantErr: "must be a string",
			is:      pipelinedomain.ErrInvalidField,
		},
		{
			name: "stream ok",
			in:   `{"KinesisInputStreamName": "s"}`,
			get:  func(e *pipelinedomain.Event) (any, error) { return e.StreamName() },
			want: "s",
		},
		{
			name:    "stream missing",
			in:      `{"FirehoseOutputBucket": "b"}`,
			get:     func(e *pipelinedomain.Event) (any, error) { return e.StreamName() },
			wantErr: `"KinesisInputStreamName"`,
			is:      pipelinedomain.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := pipelinedomain.ParseEvent([]byte(tt.in))
			require.NoError(t, err)

			got, err := tt.get(ev)
			cstest.RequireErrorContains(t, err, tt.wantErr)
			if tt.is != nil {
				require.True(t, errors.Is(err, tt.is))
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEvent_NextWaitLoop(t *testing.T) {
	t.Run("starts at zero then increments", func(t *testing.T) {
		ev, err := pipelinedomain.ParseEvent([]byte(`{"record_count":3}`))
		require.NoError(t, err)

		for want := range 4 {
			got, err := ev.NextWaitLoop()
			require.NoError(t, err)
			require.Equal(t, want, got)

			stored, ok := ev.WaitLoopCount()
			require.True(t, ok)
			require.Equal(t, want, stored)
		}
	})

	t.Run("error: invalid counter", func(t *testing.T) {
		ev, err := pipelinedomain.ParseEvent([]byte(`{"wait_loop_count":"x"}`))
		require.NoError(t, err)

		_, err = ev.NextWaitLoop()
		require.ErrorIs(t, err, pipelinedomain.ErrInvalidField)
	})
}

func TestEvent_Clone(t *testing.T) {
	ev, err := pipelinedomain.ParseEvent([]byte(`{"status":"PROCESSING"}`))
	require.NoError(t, err)

	c := ev.Clone()
	c.SetStatus(pipelinedomain.StatusSucceeded)

	st, ok := ev.Status()
	require.True(t, ok)
	require.Equal(t, pipelinedomain.StatusProcessing, st)

	st, ok = c.Status()
	require.True(t, ok)
	require.Equal(t, pipelinedomain.StatusSucceeded, st)
}

func TestResponse_MarshalJSON(t *testing.T) {
	ev, err := pipelinedomain.ParseEvent([]byte(`{"FirehoseOutputBucket":"b"}`))
	require.NoError(t, err)

	t.Run("success echoes event", func(t *testing.T) {
		b, err := json.Marshal(pipelinedomain.Succeeded(ev))
		require.NoError(t, err)
		require.JSONEq(t, `{"FirehoseOutputBucket":"b"}`, string(b))
	})

	t.Run("failure with guid", func(t *testing.T) {
		resp := pipelinedomain.Failed(errors.New("boom"), ev)
		require.True(t, resp.IsFailure())

		b, err := json.Marshal(resp)
		require.NoError(t, err)
		require.JSONEq(t, `{"status":"FAILED","error_message":"boom","guid":{"FirehoseOutputBucket":"b"}}`, string(b))
	})

	t.Run("failure without guid", func(t *testing.T) {
		b, err := json.Marshal(pipelinedomain.Failed(errors.New("boom"), nil))
		require.NoError(t, err)
		require.JSONEq(t, `{"status":"FAILED","error_message":"boom"}`, string(b))
	})
}
