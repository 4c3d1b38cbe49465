package generatorsrv

import (
	"context"
	"encoding/json"
	"fmt"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	recorddomain "github.com/10Narratives/streamcheck/internal/domains/records"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"go.uber.org/zap"
)

const DefaultPartitionKey = "partitionKey"

//go:generate mockery --name RecordPublisher --output ./mocks --outpkg mocks --with-expecter --filename record_publisher.go
type RecordPublisher interface {
	pipelinedomain.RecordPublisher
}

type GenerateEventsArgs struct {
	Stream      string
	RecordCount int
}

type GenerateEventsResult struct {
	Published int
}

type Service struct {
	publisher    RecordPublisher
	generator    *recorddomain.Generator
	partitionKey string
	log          *zap.Logger
}

type ServiceOption func(s *Service)

func WithGenerator(g *recorddomain.Generator) ServiceOption {
	return func(s *Service) {
		s.generator = g
	}
}

func WithPartitionKey(key string) ServiceOption {
	return func(s *Service) {
		if key != "" {
			s.partitionKey = key
		}
	}
}

func NewService(publisher RecordPublisher, log *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		publisher:    publisher,
		generator:    recorddomain.NewGenerator(),
		partitionKey: DefaultPartitionKey,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateEvents publishes args.RecordCount fresh records, one put each. The
// first failing put aborts the loop.
func (s *Service) GenerateEvents(ctx context.Context, args *GenerateEventsArgs) (*GenerateEventsResult, error) {
	if args == nil || args.Stream == "" {
		return nil, pipelinedomain.ErrEmptyStreamName
	}
	if args.RecordCount < 0 {
		return nil, fmt.Errorf("%w: %q must not be negative", pipelinedomain.ErrInvalidField, pipelinedomain.FieldRecordCount)
	}

	log := logutils.FromContext(ctx, s.log)

	for i := range args.RecordCount {
		data, err := json.Marshal(s.generator.Next())
		if err != nil {
			return nil, fmt.Errorf("encode record %d: %w", i, err)
		}

		err = s.publisher.PublishRecord(ctx, &pipelinedomain.PublishRecordArgs{
			Stream:       args.Stream,
			PartitionKey: s.partitionKey,
			Data:         data,
		})
		if err != nil {
			log.Error("publish failed",
				zap.String("stream", args.Stream),
				zap.Int("published", i),
				zap.Error(err))
			return nil, err
		}
	}

	log.Info("records published",
		zap.String("stream", args.Stream),
		zap.Int("count", args.RecordCount))

	return &GenerateEventsResult{Published: args.RecordCount}, nil
}
