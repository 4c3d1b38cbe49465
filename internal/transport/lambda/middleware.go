package lambdatr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

var ErrPanic = errors.New("handler panicked")

// WithLogging stores a request-scoped logger in the context and logs the
// outcome of every invocation. A logger already carried by ctx is extended
// rather than replaced.
func WithLogging(log *zap.Logger, name string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error) {
			l := logutils.FromContext(ctx, log).With(zap.String("handler", name))
			if lc, ok := lambdacontext.FromContext(ctx); ok {
				l = l.With(zap.String("request_id", lc.AwsRequestID))
			}
			ctx = logutils.ContextWithLogger(ctx, l)

			l.Debug("event received", zap.ByteString("event", payload))

			start := time.Now()
			resp, err := next(ctx, payload)
			elapsed := zap.Duration("elapsed", time.Since(start))

			switch {
			case err != nil:
				l.Error("invocation error", elapsed, zap.Error(err))
			case resp == nil:
				l.Warn("empty response", elapsed)
			case resp.IsFailure():
				l.Error("step failed", elapsed, zap.String("error_message", resp.Failure().ErrorMessage))
			default:
				status, _ := resp.Status()
				l.Info("step completed", elapsed, zap.String("status", string(status)))
			}
			return resp, err
		}
	}
}

// WithRecovery turns a panic into a FAILED response.
func WithRecovery() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, payload json.RawMessage) (resp *pipelinedomain.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					logutils.FromContext(ctx, nil).Error("recovered from panic",
						zap.Any("panic", r),
						zap.Stack("stack"))
					resp, err = pipelinedomain.Failed(fmt.Errorf("%w: %v", ErrPanic, r), nil), nil
				}
			}()
			return next(ctx, payload)
		}
	}
}
