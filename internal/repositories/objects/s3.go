package objectrepo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	sliceutils "github.com/10Narratives/streamcheck/pkg/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// maxDeleteBatch is the S3 limit of keys per DeleteObjects request.
const maxDeleteBatch = 1000

//go:generate mockery --name S3API --output ./mocks --outpkg mocks --with-expecter --filename s3_api.go
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client S3API
}

func NewS3Store(client S3API) *S3Store {
	return &S3Store{client: client}
}

func (s *S3Store) ListObjects(ctx context.Context, bucket string) ([]*pipelinedomain.ObjectInfo, error) {
	if bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}

	objects := make([]*pipelinedomain.ObjectInfo, 0)

	var continuationToken *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("list objects in %s: %w", bucket, err)
		}

		objects = append(objects, sliceutils.Map(out.Contents, toObjectInfo)...)

		if out.NextContinuationToken == nil {
			break
		}
		continuationToken = out.NextContinuationToken
	}

	return objects, nil
}

func (s *S3Store) ReadObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

func (s *S3Store) PutObject(ctx context.Context, bucket, key string, data []byte) error {
	if bucket == "" {
		return pipelinedomain.ErrEmptyBucketName
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

// DeleteAllObjects removes every object of the bucket, one DeleteObjects
// request per batch of keys.
func (s *S3Store) DeleteAllObjects(ctx context.Context, bucket string) (*pipelinedomain.DeleteAllObjectsResult, error) {
	objects, err := s.ListObjects(ctx, bucket)
	if err != nil {
		return nil, err
	}

	identifiers := sliceutils.Map(objects, func(o *pipelinedomain.ObjectInfo) s3types.ObjectIdentifier {
		return s3types.ObjectIdentifier{Key: aws.String(o.Key)}
	})

	deleted := 0
	for _, batch := range sliceutils.Batch(identifiers, maxDeleteBatch) {
		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &s3types.Delete{
				Objects: batch,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("delete objects in %s: %w", bucket, err)
		}
		if len(out.Errors) > 0 {
			return nil, fmt.Errorf("delete objects in %s: %s", bucket, describeDeleteErrors(out.Errors))
		}
		deleted += len(batch)
	}

	return &pipelinedomain.DeleteAllObjectsResult{Deleted: deleted}, nil
}

func toObjectInfo(o s3types.Object) *pipelinedomain.ObjectInfo {
	return &pipelinedomain.ObjectInfo{
		Key:          aws.ToString(o.Key),
		Size:         aws.ToInt64(o.Size),
		LastModified: aws.ToTime(o.LastModified),
	}
}

func describeDeleteErrors(errs []s3types.Error) string {
	parts := sliceutils.Map(errs, func(e s3types.Error) string {
		return fmt.Sprintf("%s: %s (%s)", aws.ToString(e.Key), aws.ToString(e.Message), aws.ToString(e.Code))
	})
	return fmt.Sprintf("%d key(s) not deleted: %s", len(errs), strings.Join(parts, "; "))
}
