package streamrepo

import (
	"context"
	"errors"
	"fmt"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

//go:generate mockery --name KinesisAPI --output ./mocks --outpkg mocks --with-expecter --filename kinesis_api.go
type KinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

type KinesisPublisher struct {
	client KinesisAPI
}

func NewKinesisPublisher(client KinesisAPI) *KinesisPublisher {
	return &KinesisPublisher{client: client}
}

func (p *KinesisPublisher) PublishRecord(ctx context.Context, args *pipelinedomain.PublishRecordArgs) error {
	if args == nil {
		return errors.New("publish args are nil")
	}
	if args.Stream == "" {
		return pipelinedomain.ErrEmptyStreamName
	}

	_, err := p.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(args.Stream),
		PartitionKey: aws.String(args.PartitionKey),
		Data:         args.Data,
	})
	if err != nil {
		return fmt.Errorf("kinesis put record to %s: %w", args.Stream, err)
	}
	return nil
}
