package workflowsrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultWait     = 30 * time.Second
	DefaultMaxPolls = 10
)

// Step is one task of the integration-test state machine. It has the same
// shape as the Lambda handlers, so those are plugged in directly.
type Step func(ctx context.Context, payload json.RawMessage) (*pipelinedomain.Response, error)

type Steps struct {
	Clean    Step
	Generate Step
	Poll     Step
}

type RunArgs struct {
	Stream      string
	Bucket      string
	RecordCount int
	WaitSeconds int
}

type RunResult struct {
	RunID  uuid.UUID
	Status pipelinedomain.Status
	Polls  int
	Event  *pipelinedomain.Event
}

type Service struct {
	steps       Steps
	defaultWait time.Duration
	maxPolls    int
	log         *zap.Logger
}

type ServiceOption func(s *Service)

func WithDefaultWait(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d >= 0 {
			s.defaultWait = d
		}
	}
}

func WithMaxPolls(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxPolls = n
		}
	}
}

func NewService(steps Steps, log *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		steps:       steps,
		defaultWait: DefaultWait,
		maxPolls:    DefaultMaxPolls,
		log:         log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives one integration test:
// clean, generate, wait, poll until a terminal status, clean, check.
func (s *Service) Run(ctx context.Context, args *RunArgs) (*RunResult, error) {
	event, err := newRunEvent(args)
	if err != nil {
		return nil, err
	}

	res := &RunResult{RunID: uuid.New()}
	log := logutils.FromContext(ctx, s.log).With(zap.Stringer("run_id", res.RunID))
	ctx = logutils.ContextWithLogger(ctx, log)

	log.Info("integration test started",
		zap.String("stream", args.Stream),
		zap.String("bucket", args.Bucket),
		zap.Int("record_count", args.RecordCount))

	if event, err = s.invoke(ctx, "before-clean", s.steps.Clean, event); err != nil {
		return res, err
	}
	if event, err = s.invoke(ctx, "generate", s.steps.Generate, event); err != nil {
		return res, err
	}

	wait := s.waitFor(event)
	if err := sleep(ctx, wait); err != nil {
		return res, err
	}

	polled, pollErr := s.poll(ctx, event, wait, &res.Polls)
	if polled != nil {
		event = polled
	}

	// the bucket is emptied even when polling went wrong
	cleaned, cleanErr := s.invoke(ctx, "after-clean", s.steps.Clean, event)
	if pollErr != nil {
		return res, errors.Join(pollErr, cleanErr)
	}
	if cleanErr != nil {
		return res, cleanErr
	}

	res.Event = cleaned
	res.Status, _ = cleaned.Status()

	switch res.Status {
	case pipelinedomain.StatusSucceeded:
		log.Info("integration test succeeded", zap.Int("polls", res.Polls))
		return res, nil
	case pipelinedomain.StatusFailed:
		return res, ErrDataMismatch
	default:
		return res, fmt.Errorf("%w: after %d polls", ErrPollLimit, res.Polls)
	}
}

func (s *Service) poll(ctx context.Context, event *pipelinedomain.Event, wait time.Duration, polls *int) (*pipelinedomain.Event, error) {
	log := logutils.FromContext(ctx, s.log)
	last := event

	operation := func() (*pipelinedomain.Event, error) {
		*polls++

		out, err := s.invoke(ctx, "poll", s.steps.Poll, last)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		last = out

		if status, _ := out.Status(); !status.Terminal() {
			return nil, errStillProcessing
		}
		return out, nil
	}

	notify := func(err error, next time.Duration) {
		loop, _ := last.WaitLoopCount()
		log.Info("waiting for records", zap.Int("wait_loop_count", loop), zap.Duration("retry_in", next))
	}

	out, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(wait)),
		backoff.WithMaxTries(uint(s.maxPolls)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify))
	if errors.Is(err, errStillProcessing) {
		return last, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// invoke runs one step. A failure payload is turned into ErrStepFailed so the
// run stops the way the state machine's catch-all state does.
func (s *Service) invoke(ctx context.Context, name string, step Step, event *pipelinedomain.Event) (*pipelinedomain.Event, error) {
	payload, err := event.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode %s input: %w", name, err)
	}

	resp, err := step(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %s returned no response", ErrStepFailed, name)
	}
	if resp.IsFailure() {
		return nil, fmt.Errorf("%w: %s: %s", ErrStepFailed, name, resp.Failure().ErrorMessage)
	}

	logutils.FromContext(ctx, s.log).Debug("step completed", zap.String("step", name))
	return resp.Event(), nil
}

func (s *Service) waitFor(event *pipelinedomain.Event) time.Duration {
	if !event.Has(pipelinedomain.FieldWaitSeconds) {
		return s.defaultWait
	}
	secs, err := event.Int(pipelinedomain.FieldWaitSeconds)
	if err != nil || secs < 0 {
		return s.defaultWait
	}
	return time.Duration(secs) * time.Second
}

func newRunEvent(args *RunArgs) (*pipelinedomain.Event, error) {
	if args == nil || args.Stream == "" {
		return nil, pipelinedomain.ErrEmptyStreamName
	}
	if args.Bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}
	if args.RecordCount < 0 {
		return nil, fmt.Errorf("%w: %q must not be negative", pipelinedomain.ErrInvalidField, pipelinedomain.FieldRecordCount)
	}

	event := pipelinedomain.NewEvent()
	for key, value := range map[string]any{
		pipelinedomain.FieldRecordCount: args.RecordCount,
		pipelinedomain.FieldStreamName:  args.Stream,
		pipelinedomain.FieldBucketName:  args.Bucket,
		pipelinedomain.FieldWaitSeconds: args.WaitSeconds,
	} {
		if err := event.Set(key, value); err != nil {
			return nil, err
		}
	}
	return event, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
