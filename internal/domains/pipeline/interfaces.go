package pipelinedomain

import (
	"context"
	"time"
)

type RecordPublisher interface {
	PublishRecord(ctx context.Context, args *PublishRecordArgs) error
}

type PublishRecordArgs struct {
	Stream       string
	PartitionKey string
	Data         []byte
}

type ObjectLister interface {
	ListObjects(ctx context.Context, bucket string) ([]*ObjectInfo, error)
}

type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, key string) ([]byte, error)
}

type ObjectWriter interface {
	PutObject(ctx context.Context, bucket, key string, data []byte) error
}

type ObjectDeleter interface {
	DeleteAllObjects(ctx context.Context, bucket string) (*DeleteAllObjectsResult, error)
}

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

type DeleteAllObjectsResult struct {
	Deleted int
}
