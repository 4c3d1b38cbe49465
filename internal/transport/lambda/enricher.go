package lambdatr

import (
	"context"

	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

//go:generate mockery --name EnricherService --output ./mocks --outpkg mocks --with-expecter --filename enricher_service.go
type EnricherService interface {
	Transform(ctx context.Context, event *events.KinesisFirehoseEvent) (*events.KinesisFirehoseResponse, error)
}

// EnricherHandler is served to Firehose as its data-transformation Lambda.
type EnricherHandler func(ctx context.Context, event events.KinesisFirehoseEvent) (*events.KinesisFirehoseResponse, error)

func NewEnricherHandler(svc EnricherService, log *zap.Logger) EnricherHandler {
	return func(ctx context.Context, event events.KinesisFirehoseEvent) (*events.KinesisFirehoseResponse, error) {
		l := log.With(
			zap.String("handler", "record-enricher"),
			zap.String("delivery_stream", event.DeliveryStreamArn))
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			l = l.With(zap.String("request_id", lc.AwsRequestID))
		}

		return svc.Transform(logutils.ContextWithLogger(ctx, l), &event)
	}
}
