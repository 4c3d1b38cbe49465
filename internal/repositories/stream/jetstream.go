package streamrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/nats-io/nats.go/jetstream"
)

//go:generate mockery --name JetStream --output ./mocks --outpkg mocks --with-expecter --filename jet_stream.go
type JetStream interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	Stream(ctx context.Context, stream string) (jetstream.Stream, error)
	CreateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

// JetStreamPublisher stands in for Kinesis when the pipeline runs against a
// local NATS server. A Kinesis stream maps onto a JetStream stream and the
// partition key becomes the last subject token.
type JetStreamPublisher struct {
	js JetStream

	mu      sync.Mutex
	streams map[string]jetstream.Stream
}

func NewJetStreamPublisher(js JetStream) *JetStreamPublisher {
	return &JetStreamPublisher{
		js:      js,
		streams: make(map[string]jetstream.Stream),
	}
}

func (p *JetStreamPublisher) PublishRecord(ctx context.Context, args *pipelinedomain.PublishRecordArgs) error {
	if args == nil {
		return errors.New("publish args are nil")
	}
	if args.Stream == "" {
		return pipelinedomain.ErrEmptyStreamName
	}

	if _, err := p.Stream(ctx, args.Stream); err != nil {
		return err
	}

	subject := Subject(args.Stream, args.PartitionKey)
	if _, err := p.js.Publish(ctx, subject, args.Data); err != nil {
		return fmt.Errorf("jetstream publish to %s: %w", subject, err)
	}
	return nil
}

// Stream returns the JetStream stream standing for the named Kinesis stream,
// creating it when missing.
func (p *JetStreamPublisher) Stream(ctx context.Context, stream string) (jetstream.Stream, error) {
	if stream == "" {
		return nil, pipelinedomain.ErrEmptyStreamName
	}
	name := StreamName(stream)

	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.streams[name]; ok {
		return s, nil
	}

	s, err := p.js.Stream(ctx, name)
	if err != nil {
		if !errors.Is(err, jetstream.ErrStreamNotFound) {
			return nil, fmt.Errorf("get stream %s: %w", name, err)
		}

		s, err = p.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     name,
			Subjects: []string{name + ".>"},
		})
		if err != nil {
			return nil, fmt.Errorf("create stream %s: %w", name, err)
		}
	}

	p.streams[name] = s
	return s, nil
}

var streamNameReplacer = strings.NewReplacer(".", "_", "*", "_", ">", "_", " ", "_")

// StreamName turns a Kinesis stream name into a valid JetStream stream name.
func StreamName(stream string) string {
	return streamNameReplacer.Replace(stream)
}

func Subject(stream, partitionKey string) string {
	if partitionKey == "" {
		partitionKey = "default"
	}
	return StreamName(stream) + "." + streamNameReplacer.Replace(partitionKey)
}
