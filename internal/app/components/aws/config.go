package awscomp

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const DefaultRegion = "us-east-1"

type Options struct {
	Region  string
	Profile string
}

func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}
	loadOpts = append(loadOpts, config.WithRegion(region))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}

func NewKinesisClient(cfg aws.Config, endpoint string) *kinesis.Client {
	var clientOpts []func(*kinesis.Options)
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *kinesis.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	return kinesis.NewFromConfig(cfg, clientOpts...)
}

// NewS3Client switches to path-style addressing when a custom endpoint is
// set, since local emulators do not serve virtual-hosted buckets.
func NewS3Client(cfg aws.Config, endpoint string) *s3.Client {
	var clientOpts []func(*s3.Options)
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}
	return s3.NewFromConfig(cfg, clientOpts...)
}
