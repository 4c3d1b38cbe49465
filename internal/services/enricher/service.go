package enrichersrv

import (
	"context"
	"errors"
	"strconv"
	"time"

	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/buger/jsonparser"
	"go.uber.org/zap"
)

const (
	ArrivalField = "approximate_arrival_timestamp"

	// ArrivalLayout is ISO-8601 UTC with millisecond precision.
	ArrivalLayout = "2006-01-02T15:04:05.000Z"
)

var errNotObject = errors.New("record is not a JSON object")

// Service is the Firehose transformation step of the pipeline under test: it
// stamps each record with the time Kinesis accepted it and terminates it with
// a newline so that delivered objects hold one record per line.
type Service struct {
	log *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) Transform(ctx context.Context, event *events.KinesisFirehoseEvent) (*events.KinesisFirehoseResponse, error) {
	resp := &events.KinesisFirehoseResponse{
		Records: make([]events.KinesisFirehoseResponseRecord, 0, len(event.Records)),
	}

	failed := 0
	for _, rec := range event.Records {
		out := s.transformRecord(rec)
		if out.Result != events.KinesisFirehoseTransformedStateOk {
			failed++
		}
		resp.Records = append(resp.Records, out)
	}

	logutils.FromContext(ctx, s.log).Info("processing completed",
		zap.String("invocation_id", event.InvocationID),
		zap.Int("records", len(resp.Records)),
		zap.Int("failed", failed))

	return resp, nil
}

func (s *Service) transformRecord(rec events.KinesisFirehoseEventRecord) events.KinesisFirehoseResponseRecord {
	arrival := rec.KinesisFirehoseRecordMetadata.ApproximateArrivalTimestamp.Time
	if arrival.IsZero() {
		arrival = rec.ApproximateArrivalTimestamp.Time
	}

	var (
		data []byte
		err  = errNotObject
	)
	if isObject(rec.Data) {
		data, err = jsonparser.Set(rec.Data, []byte(strconv.Quote(ArrivalTime(arrival))), ArrivalField)
	}
	if err != nil {
		s.log.Warn("record rejected",
			zap.String("record_id", rec.RecordID),
			zap.Error(err))
		return events.KinesisFirehoseResponseRecord{
			RecordID: rec.RecordID,
			Result:   events.KinesisFirehoseTransformedStateProcessingFailed,
			Data:     rec.Data,
		}
	}

	return events.KinesisFirehoseResponseRecord{
		RecordID: rec.RecordID,
		Result:   events.KinesisFirehoseTransformedStateOk,
		Data:     append(data, '\n'),
	}
}

func isObject(data []byte) bool {
	_, dataType, _, err := jsonparser.Get(data)
	return err == nil && dataType == jsonparser.Object
}

// ArrivalTime formats t the way the transformation stamps records.
func ArrivalTime(t time.Time) string {
	return t.UTC().Format(ArrivalLayout)
}
