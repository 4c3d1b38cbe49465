package natscons_test

import (
	"context"
	"errors"
	"testing"
	"time"

	natscons "github.com/10Narratives/streamcheck/internal/transport/nats/consumer"
	"github.com/10Narratives/streamcheck/internal/transport/nats/consumer/mocks"
	"github.com/aws/aws-lambda-go/events"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMsg struct {
	jetstream.Msg
	data    []byte
	meta    *jetstream.MsgMetadata
	metaErr error
}

func (m *fakeMsg) Data() []byte { return m.data }

func (m *fakeMsg) Metadata() (*jetstream.MsgMetadata, error) { return m.meta, m.metaErr }

var arrival = time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)

func newMsg(data string) *fakeMsg {
	return &fakeMsg{
		data: []byte(data),
		meta: &jetstream.MsgMetadata{
			Sequence:  jetstream.SequencePair{Stream: 42},
			Stream:    "in",
			Timestamp: arrival,
		},
	}
}

func TestDeliveryHandler(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("error: metadata unavailable", func(t *testing.T) {
		h := natscons.NewDeliveryHandler(mocks.NewTransformer(t), mocks.NewObjectWriter(t), "out", log)

		err := h(ctx, &fakeMsg{metaErr: errors.New("not a jetstream message")})
		require.EqualError(t, err, "message metadata: not a jetstream message")
	})

	t.Run("error: write fails", func(t *testing.T) {
		transformer := mocks.NewTransformer(t)
		writer := mocks.NewObjectWriter(t)
		h := natscons.NewDeliveryHandler(transformer, writer, "out", log)

		transformer.EXPECT().Transform(ctx, mock.Anything).Return(&events.KinesisFirehoseResponse{
			Records: []events.KinesisFirehoseResponseRecord{{RecordID: "42", Result: events.KinesisFirehoseTransformedStateOk, Data: []byte("{}\n")}},
		}, nil).Once()
		writer.EXPECT().PutObject(ctx, "out", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		err := h(ctx, newMsg(`{}`))
		require.ErrorContains(t, err, "connection reset")
	})

	t.Run("ok: rejected record is dropped", func(t *testing.T) {
		transformer := mocks.NewTransformer(t)
		h := natscons.NewDeliveryHandler(transformer, mocks.NewObjectWriter(t), "out", log)

		transformer.EXPECT().Transform(ctx, mock.Anything).Return(&events.KinesisFirehoseResponse{
			Records: []events.KinesisFirehoseResponseRecord{{RecordID: "42", Result: events.KinesisFirehoseTransformedStateProcessingFailed}},
		}, nil).Once()

		require.NoError(t, h(ctx, newMsg(`[]`)))
	})

	t.Run("ok: record written", func(t *testing.T) {
		transformer := mocks.NewTransformer(t)
		writer := mocks.NewObjectWriter(t)
		h := natscons.NewDeliveryHandler(transformer, writer, "out", log)

		transformer.EXPECT().
			Transform(ctx, mock.MatchedBy(func(ev *events.KinesisFirehoseEvent) bool {
				return len(ev.Records) == 1 &&
					ev.Records[0].RecordID == "42" &&
					string(ev.Records[0].Data) == `{"TICKER":"AAPL"}` &&
					ev.Records[0].ApproximateArrivalTimestamp.Time.Equal(arrival)
			})).
			Return(&events.KinesisFirehoseResponse{
				Records: []events.KinesisFirehoseResponseRecord{{RecordID: "42", Result: events.KinesisFirehoseTransformedStateOk, Data: []byte("{}\n")}},
			}, nil).
			Once()
		writer.EXPECT().
			PutObject(ctx, "out", "in/2024/05/01/13/00000000000000000042", []byte("{}\n")).
			Return(nil).
			Once()

		require.NoError(t, h(ctx, newMsg(`{"TICKER":"AAPL"}`)))
	})
}

func TestNewConsumer(t *testing.T) {
	handler := func(context.Context, jetstream.Msg) error { return nil }

	_, err := natscons.NewConsumer(context.Background(), nil, nil, natscons.ConsumerConfig{Slots: 1}, zap.NewNop())
	require.EqualError(t, err, "handler is nil")

	_, err = natscons.NewConsumer(context.Background(), nil, handler, natscons.ConsumerConfig{}, zap.NewNop())
	require.EqualError(t, err, "slots must be > 0")
}
