package objectrepo_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	objectrepo "github.com/10Narratives/streamcheck/internal/repositories/objects"
	"github.com/10Narratives/streamcheck/internal/repositories/objects/mocks"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func s3Objects(keys ...string) []s3types.Object {
	out := make([]s3types.Object, 0, len(keys))
	for _, k := range keys {
		out = append(out, s3types.Object{
			Key:          aws.String(k),
			Size:         aws.Int64(int64(len(k))),
			LastModified: aws.Time(time.Unix(1700000000, 0)),
		})
	}
	return out
}

func listPage(token *string) any {
	return mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.ContinuationToken) == aws.ToString(token)
	})
}

func TestS3Store_ListObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty bucket name", func(t *testing.T) {
		store := objectrepo.NewS3Store(mocks.NewS3API(t))

		_, err := store.ListObjects(ctx, "")
		require.ErrorIs(t, err, pipelinedomain.ErrEmptyBucketName)
	})

	t.Run("error: list fails", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().
			ListObjectsV2(ctx, listPage(nil)).
			Return((*s3.ListObjectsV2Output)(nil), errors.New("AccessDenied")).
			Once()

		_, err := store.ListObjects(ctx, "bucket")
		require.ErrorContains(t, err, "list objects in bucket: AccessDenied")
	})

	t.Run("ok: follows continuation tokens", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().
			ListObjectsV2(ctx, listPage(nil)).
			Return(&s3.ListObjectsV2Output{
				Contents:              s3Objects("a", "b"),
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("page-2"),
			}, nil).
			Once()
		client.EXPECT().
			ListObjectsV2(ctx, listPage(aws.String("page-2"))).
			Return(&s3.ListObjectsV2Output{Contents: s3Objects("c")}, nil).
			Once()

		objects, err := store.ListObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Len(t, objects, 3)
		require.Equal(t, "a", objects[0].Key)
		require.Equal(t, int64(1), objects[0].Size)
		require.Equal(t, "c", objects[2].Key)
	})

	t.Run("ok: empty bucket", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().ListObjectsV2(ctx, listPage(nil)).Return(&s3.ListObjectsV2Output{}, nil).Once()

		objects, err := store.ListObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Empty(t, objects)
	})
}

func TestS3Store_ReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("error: get fails", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().GetObject(ctx, mock.Anything).Return((*s3.GetObjectOutput)(nil), errors.New("NoSuchKey")).Once()

		_, err := store.ReadObject(ctx, "bucket", "key")
		require.ErrorContains(t, err, "get object bucket/key: NoSuchKey")
	})

	t.Run("ok: reads whole body", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().
			GetObject(ctx, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
				return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "kinesis-stream-data/part-0"
			})).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("{\"a\":1}\n{\"a\":2}\n"))}, nil).
			Once()

		data, err := store.ReadObject(ctx, "bucket", "kinesis-stream-data/part-0")
		require.NoError(t, err)
		require.Equal(t, "{\"a\":1}\n{\"a\":2}\n", string(data))
	})
}

func TestS3Store_DeleteAllObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: empty bucket issues no delete", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().ListObjectsV2(ctx, listPage(nil)).Return(&s3.ListObjectsV2Output{}, nil).Once()

		res, err := store.DeleteAllObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Equal(t, 0, res.Deleted)
	})

	t.Run("ok: batches of one thousand keys", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		keys := make([]string, 0, 1500)
		for i := range 1500 {
			keys = append(keys, fmt.Sprintf("obj-%04d", i))
		}

		client.EXPECT().ListObjectsV2(ctx, listPage(nil)).Return(&s3.ListObjectsV2Output{Contents: s3Objects(keys...)}, nil).Once()

		var batchSizes []int
		client.EXPECT().
			DeleteObjects(ctx, mock.MatchedBy(func(in *s3.DeleteObjectsInput) bool {
				return aws.ToString(in.Bucket) == "bucket" && aws.ToBool(in.Delete.Quiet)
			})).
			Run(func(_ context.Context, in *s3.DeleteObjectsInput, _ ...func(*s3.Options)) {
				batchSizes = append(batchSizes, len(in.Delete.Objects))
			}).
			Return(&s3.DeleteObjectsOutput{}, nil).
			Twice()

		res, err := store.DeleteAllObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Equal(t, 1500, res.Deleted)
		require.Equal(t, []int{1000, 500}, batchSizes)
	})

	t.Run("error: partial failure reported", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().ListObjectsV2(ctx, listPage(nil)).Return(&s3.ListObjectsV2Output{Contents: s3Objects("a", "b")}, nil).Once()
		client.EXPECT().
			DeleteObjects(ctx, mock.Anything).
			Return(&s3.DeleteObjectsOutput{Errors: []s3types.Error{{
				Key:     aws.String("b"),
				Code:    aws.String("AccessDenied"),
				Message: aws.String("Access Denied"),
			}}}, nil).
			Once()

		_, err := store.DeleteAllObjects(ctx, "bucket")
		require.ErrorContains(t, err, "1 key(s) not deleted: b: Access Denied (AccessDenied)")
	})

	t.Run("error: delete call fails", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().ListObjectsV2(ctx, listPage(nil)).Return(&s3.ListObjectsV2Output{Contents: s3Objects("a")}, nil).Once()
		client.EXPECT().DeleteObjects(ctx, mock.Anything).Return((*s3.DeleteObjectsOutput)(nil), errors.New("throttled")).Once()

		_, err := store.DeleteAllObjects(ctx, "bucket")
		require.ErrorContains(t, err, "delete objects in bucket: throttled")
	})
}

func TestS3Store_PutObject(t *testing.T) {
	ctx := context.Background()

	t.Run("error: put fails", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().
			PutObject(ctx, mock.Anything).
			Return((*s3.PutObjectOutput)(nil), errors.New("NoSuchBucket")).
			Once()

		err := store.PutObject(ctx, "bucket", "key", []byte("x"))
		require.ErrorContains(t, err, "put object bucket/key: NoSuchBucket")
	})

	t.Run("ok: body and length are sent", func(t *testing.T) {
		client := mocks.NewS3API(t)
		store := objectrepo.NewS3Store(client)

		client.EXPECT().
			PutObject(ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
				body, ok := in.Body.(*bytes.Reader)
				return ok &&
					body.Len() == 3 &&
					aws.ToInt64(in.ContentLength) == 3 &&
					aws.ToString(in.Key) == "key"
			})).
			Return(&s3.PutObjectOutput{}, nil).
			Once()

		require.NoError(t, store.PutObject(ctx, "bucket", "key", []byte("{}\n")))
	})
}
