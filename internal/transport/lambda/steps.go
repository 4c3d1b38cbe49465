package lambdatr

import (
	"context"
	"encoding/json"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	generatorsrv "github.com/10Narratives/streamcheck/internal/services/generator"
)

//go:generate mockery --name GeneratorService --output ./mocks --outpkg mocks --with-expecter --filename generator_service.go
type GeneratorService interface {
	GenerateEvents(ctx context.Context, args *generatorsrv.GenerateEventsArgs) (*generatorsrv.GenerateEventsResult, error)
}

//go:generate mockery --name PollerService --output ./mocks --outpkg mocks --with-expecter --filename poller_service.go
type PollerService interface {
	GetTestStatus(ctx context.Context, event *pipelinedomain.Event) (*pipelinedomain.Event, error)
}

//go:generate mockery --name CleanerService --output ./mocks --outpkg mocks --with-expecter --filename cleaner_service.go
type CleanerService interface {
	CleanBucket(ctx context.Context, bucket string) (*pipelinedomain.DeleteAllObjectsResult, error)
}

// NewGeneratorHandler publishes record_count records to the input stream and
// echoes the event back untouched.
func NewGeneratorHandler(svc GeneratorService) Handler {
	return func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error) {
		event, err := pipelinedomain.ParseEvent(payload)
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}

		stream, err := event.StreamName()
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}
		count, err := event.RecordCount()
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}

		_, err = svc.GenerateEvents(ctx, &generatorsrv.GenerateEventsArgs{
			Stream:      stream,
			RecordCount: count,
		})
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}

		return pipelinedomain.Succeeded(event), nil
	}
}

// NewPollerHandler evaluates the delivery status. A failure echoes the event,
// including the already advanced wait_loop_count, as guid.
func NewPollerHandler(svc PollerService) Handler {
	return func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error) {
		event, err := pipelinedomain.ParseEvent(payload)
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}

		updated, err := svc.GetTestStatus(ctx, event)
		if err != nil {
			return pipelinedomain.Failed(err, event), nil
		}

		return pipelinedomain.Succeeded(updated), nil
	}
}

func NewCleanerHandler(svc CleanerService) Handler {
	return func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error) {
		event, err := pipelinedomain.ParseEvent(payload)
		if err != nil {
			return pipelinedomain.Failed(err, nil), nil
		}

		bucket, err := event.BucketName()
		if err != nil {
			return pipelinedomain.Failed(err, event), nil
		}

		if _, err := svc.CleanBucket(ctx, bucket); err != nil {
			return pipelinedomain.Failed(err, event), nil
		}

		return pipelinedomain.Succeeded(event), nil
	}
}
