package natscons

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/aws/aws-lambda-go/events"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

//go:generate mockery --name Transformer --output ./mocks --outpkg mocks --with-expecter --filename transformer.go
type Transformer interface {
	Transform(ctx context.Context, event *events.KinesisFirehoseEvent) (*events.KinesisFirehoseResponse, error)
}

//go:generate mockery --name ObjectWriter --output ./mocks --outpkg mocks --with-expecter --filename object_writer.go
type ObjectWriter interface {
	pipelinedomain.ObjectWriter
}

// NewDeliveryHandler plays the part of the Firehose delivery stream for local
// runs: each message goes through the transformer and every accepted record
// lands in bucket as its own object. Rejected records are dropped; storage
// errors are returned so the message gets redelivered.
func NewDeliveryHandler(transformer Transformer, writer ObjectWriter, bucket string, log *zap.Logger) Handler {
	return func(ctx context.Context, msg jetstream.Msg) error {
		meta, err := msg.Metadata()
		if err != nil {
			return fmt.Errorf("message metadata: %w", err)
		}

		recordID := strconv.FormatUint(meta.Sequence.Stream, 10)
		resp, err := transformer.Transform(ctx, &events.KinesisFirehoseEvent{
			InvocationID:      recordID,
			DeliveryStreamArn: meta.Stream,
			Records: []events.KinesisFirehoseEventRecord{{
				RecordID:                    recordID,
				Data:                        msg.Data(),
				ApproximateArrivalTimestamp: events.MilliSecondsEpochTime{Time: meta.Timestamp},
			}},
		})
		if err != nil {
			return fmt.Errorf("transform record %s: %w", recordID, err)
		}

		for _, rec := range resp.Records {
			if rec.Result != events.KinesisFirehoseTransformedStateOk {
				log.Warn("record dropped",
					zap.String("record_id", rec.RecordID),
					zap.String("result", rec.Result))
				continue
			}

			key := ObjectKey(meta.Stream, meta.Timestamp, meta.Sequence.Stream)
			if err := writer.PutObject(ctx, bucket, key, rec.Data); err != nil {
				return err
			}
		}
		return nil
	}
}

// ObjectKey lays objects out by stream and hour of arrival, like Firehose's
// default prefix.
func ObjectKey(stream string, arrival time.Time, seq uint64) string {
	return fmt.Sprintf("%s/%s/%020d", stream, arrival.UTC().Format("2006/01/02/15"), seq)
}
