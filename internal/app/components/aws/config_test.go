package awscomp_test

import (
	"context"
	"testing"

	awscomp "github.com/10Narratives/streamcheck/internal/app/components/aws"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_REGION", "")

	cfg, err := awscomp.LoadConfig(context.Background(), awscomp.Options{})
	require.NoError(t, err)
	require.Equal(t, awscomp.DefaultRegion, cfg.Region)

	cfg, err = awscomp.LoadConfig(context.Background(), awscomp.Options{Region: "eu-west-1"})
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)
}

func TestNewS3Client(t *testing.T) {
	cfg, err := awscomp.LoadConfig(context.Background(), awscomp.Options{Region: "us-east-1"})
	require.NoError(t, err)

	client := awscomp.NewS3Client(cfg, "http://localhost:4566")
	require.NotNil(t, client)
	require.True(t, client.Options().UsePathStyle)
	require.Equal(t, "http://localhost:4566", *client.Options().BaseEndpoint)

	require.False(t, awscomp.NewS3Client(cfg, "").Options().UsePathStyle)
}
