package objectrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/minio/minio-go/v7"
)

//go:generate mockery --name MinioAPI --output ./mocks --outpkg mocks --with-expecter --filename minio_api.go
type MinioAPI interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

// MinioStore serves the same bucket operations as S3Store against any
// S3-compatible server, e.g. a local MinIO used for dry runs.
type MinioStore struct {
	client MinioAPI
}

func NewMinioStore(client MinioAPI) *MinioStore {
	return &MinioStore{client: client}
}

func (s *MinioStore) ListObjects(ctx context.Context, bucket string) ([]*pipelinedomain.ObjectInfo, error) {
	if bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}

	objects := make([]*pipelinedomain.ObjectInfo, 0)
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects in %s: %w", bucket, obj.Err)
		}
		objects = append(objects, &pipelinedomain.ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func (s *MinioStore) ReadObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// EnsureBucket creates the bucket when the server does not have it yet.
func (s *MinioStore) EnsureBucket(ctx context.Context, bucket string) error {
	if bucket == "" {
		return pipelinedomain.ErrEmptyBucketName
	}

	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("cannot check if bucket %s exists: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("cannot create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *MinioStore) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	if bucket == "" {
		return pipelinedomain.ErrEmptyBucketName
	}

	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *MinioStore) DeleteAllObjects(ctx context.Context, bucket string) (*pipelinedomain.DeleteAllObjectsResult, error) {
	objects, err := s.ListObjects(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return &pipelinedomain.DeleteAllObjectsResult{}, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		objectsCh <- minio.ObjectInfo{Key: o.Key}
	}
	close(objectsCh)

	var errs []error
	for rErr := range s.client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("%s: %w", rErr.ObjectName, rErr.Err))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("delete objects in %s: %d key(s) not deleted: %w", bucket, len(errs), errors.Join(errs...))
	}

	return &pipelinedomain.DeleteAllObjectsResult{Deleted: len(objects)}, nil
}
