package pollersrv

import (
	"context"
	"fmt"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"go.uber.org/zap"
)

const DefaultMaxWaitLoops = 2

//go:generate mockery --name ObjectStore --output ./mocks --outpkg mocks --with-expecter --filename object_store.go
type ObjectStore interface {
	pipelinedomain.ObjectLister
	pipelinedomain.ObjectReader
}

type Service struct {
	store        ObjectStore
	counter      *RecordCounter
	maxWaitLoops int
	log          *zap.Logger
}

type ServiceOption func(s *Service)

func WithCounter(c *RecordCounter) ServiceOption {
	return func(s *Service) {
		s.counter = c
	}
}

func WithMaxWaitLoops(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxWaitLoops = n
		}
	}
}

func NewService(store ObjectStore, log *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:        store,
		counter:      NewRecordCounter(CountNewlines, DefaultRequiredField),
		maxWaitLoops: DefaultMaxWaitLoops,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTestStatus advances the loop counter of event, recounts the delivered
// records and stores the resulting status. The event is mutated in place, so
// on error the caller still holds the advanced counter.
func (s *Service) GetTestStatus(ctx context.Context, event *pipelinedomain.Event) (*pipelinedomain.Event, error) {
	if event == nil {
		return nil, pipelinedomain.ErrInvalidEvent
	}

	loop, err := event.NextWaitLoop()
	if err != nil {
		return nil, err
	}

	bucket, err := event.BucketName()
	if err != nil {
		return nil, err
	}
	expected, err := event.RecordCount()
	if err != nil {
		return nil, err
	}

	log := logutils.FromContext(ctx, s.log).With(
		zap.String("bucket", bucket),
		zap.Int("wait_loop_count", loop))

	counted, err := s.CountRecords(ctx, bucket)
	if err != nil {
		return nil, err
	}

	status := s.statusFor(counted, expected, loop)
	event.SetStatus(status)

	log.Info("test status evaluated",
		zap.Int("expected", expected),
		zap.Int("counted", counted),
		zap.String("status", string(status)))

	return event, nil
}

// CountRecords sums the records of every object of the bucket.
func (s *Service) CountRecords(ctx context.Context, bucket string) (int, error) {
	objects, err := s.store.ListObjects(ctx, bucket)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, obj := range objects {
		data, err := s.store.ReadObject(ctx, bucket, obj.Key)
		if err != nil {
			return 0, err
		}

		n, err := s.counter.Count(data)
		if err != nil {
			return 0, fmt.Errorf("s3://%s/%s: %w", bucket, obj.Key, err)
		}
		total += n
	}
	return total, nil
}

func (s *Service) statusFor(counted, expected, loop int) pipelinedomain.Status {
	switch {
	case counted == expected:
		return pipelinedomain.StatusSucceeded
	case loop < s.maxWaitLoops:
		return pipelinedomain.StatusProcessing
	default:
		return pipelinedomain.StatusFailed
	}
}
