package pollersrv_test

import (
	"testing"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	pollersrv "github.com/10Narratives/streamcheck/internal/services/poller"
	"github.com/stretchr/testify/require"
)

func TestParseCountMode(t *testing.T) {
	mode, err := pollersrv.ParseCountMode("")
	require.NoError(t, err)
	require.Equal(t, pollersrv.CountNewlines, mode)

	mode, err = pollersrv.ParseCountMode("whitespace")
	require.NoError(t, err)
	require.Equal(t, pollersrv.CountTokens, mode)

	_, err = pollersrv.ParseCountMode("lines")
	require.ErrorContains(t, err, `unknown count mode "lines"`)
}

func TestRecordCounter_Count(t *testing.T) {
	tests := []struct {
		name    string
		mode    pollersrv.CountMode
		data    string
		want    int
		wantErr string
	}{
		{
			name: "ok: empty object",
			mode: pollersrv.CountNewlines,
			data: "",
			want: 0,
		},
		{
			name: "ok: newline terminated records",
			mode: pollersrv.CountNewlines,
			data: "{\"approximate_arrival_timestamp\": \"x\", \"TICKER\": \"A B\"}\n{\"approximate_arrival_timestamp\": \"y\"}\n",
			want: 2,
		},
		{
			name: "ok: unterminated last record is not counted",
			mode: pollersrv.CountNewlines,
			data: "{\"approximate_arrival_timestamp\": 1}\n{\"approximate_arrival_timestamp\": 2}",
			want: 1,
		},
		{
			name: "ok: compact tokens",
			mode: pollersrv.CountTokens,
			data: "{\"approximate_arrival_timestamp\":1}\n{\"approximate_arrival_timestamp\":2}\n",
			want: 2,
		},
		{
			name:    "error: token mode splits records with spaces",
			mode:    pollersrv.CountTokens,
			data:    "{\"approximate_arrival_timestamp\": 1}\n",
			wantErr: "record 1: output verification failed: record is not valid JSON",
		},
		{
			name:    "error: invalid json",
			mode:    pollersrv.CountNewlines,
			data:    "{\"approximate_arrival_timestamp\": 1}\nnot json\n",
			wantErr: "record 2: output verification failed: record is not valid JSON",
		},
		{
			name:    "error: missing field",
			mode:    pollersrv.CountNewlines,
			data:    "{\"TICKER\": \"AAPL\"}\n",
			wantErr: "record 1: output verification failed: approximate_arrival_timestamp key not found",
		},
		{
			name:    "error: nested field does not count",
			mode:    pollersrv.CountNewlines,
			data:    "{\"inner\": {\"approximate_arrival_timestamp\": 1}}\n",
			wantErr: "approximate_arrival_timestamp key not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := pollersrv.NewRecordCounter(tt.mode, "")

			got, err := counter.Count([]byte(tt.data))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, pipelinedomain.ErrVerificationFailed)
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
