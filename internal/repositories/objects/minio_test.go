package objectrepo_test

import (
	"context"
	"errors"
	"testing"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	objectrepo "github.com/10Narratives/streamcheck/internal/repositories/objects"
	"github.com/10Narratives/streamcheck/internal/repositories/objects/mocks"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listed(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func removeErrors(errs ...minio.RemoveObjectError) <-chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError, len(errs))
	for _, e := range errs {
		ch <- e
	}
	close(ch)
	return ch
}

func TestMinioStore_ListObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty bucket name", func(t *testing.T) {
		store := objectrepo.NewMinioStore(mocks.NewMinioAPI(t))

		_, err := store.ListObjects(ctx, "")
		require.ErrorIs(t, err, pipelinedomain.ErrEmptyBucketName)
	})

	t.Run("error: listing error", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().
			ListObjects(ctx, "bucket", minio.ListObjectsOptions{Recursive: true}).
			Return(listed(minio.ObjectInfo{Err: errors.New("bucket does not exist")})).
			Once()

		_, err := store.ListObjects(ctx, "bucket")
		require.ErrorContains(t, err, "list objects in bucket: bucket does not exist")
	})

	t.Run("ok", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().
			ListObjects(ctx, "bucket", minio.ListObjectsOptions{Recursive: true}).
			Return(listed(minio.ObjectInfo{Key: "a", Size: 3}, minio.ObjectInfo{Key: "b/c", Size: 5})).
			Once()

		objects, err := store.ListObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Len(t, objects, 2)
		require.Equal(t, "b/c", objects[1].Key)
		require.Equal(t, int64(5), objects[1].Size)
	})
}

func TestMinioStore_DeleteAllObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: empty bucket", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().ListObjects(ctx, "bucket", mock.Anything).Return(listed()).Once()

		res, err := store.DeleteAllObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Equal(t, 0, res.Deleted)
	})

	t.Run("ok: removes every listed key", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().ListObjects(ctx, "bucket", mock.Anything).Return(listed(minio.ObjectInfo{Key: "a"}, minio.ObjectInfo{Key: "b"})).Once()

		var removed []string
		client.EXPECT().
			RemoveObjects(ctx, "bucket", mock.Anything, minio.RemoveObjectsOptions{}).
			RunAndReturn(func(_ context.Context, _ string, ch <-chan minio.ObjectInfo, _ minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError {
				for o := range ch {
					removed = append(removed, o.Key)
				}
				return removeErrors()
			}).
			Once()

		res, err := store.DeleteAllObjects(ctx, "bucket")
		require.NoError(t, err)
		require.Equal(t, 2, res.Deleted)
		require.Equal(t, []string{"a", "b"}, removed)
	})

	t.Run("error: remove errors collected", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().ListObjects(ctx, "bucket", mock.Anything).Return(listed(minio.ObjectInfo{Key: "a"})).Once()
		client.EXPECT().
			RemoveObjects(ctx, "bucket", mock.Anything, mock.Anything).
			Return(removeErrors(minio.RemoveObjectError{ObjectName: "a", Err: errors.New("access denied")})).
			Once()

		_, err := store.DeleteAllObjects(ctx, "bucket")
		require.ErrorContains(t, err, "1 key(s) not deleted: a: access denied")
	})
}

func TestMinioStore_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("error: exists check fails", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().BucketExists(ctx, "bucket").Return(false, errors.New("connection refused")).Once()

		err := store.EnsureBucket(ctx, "bucket")
		require.ErrorContains(t, err, "cannot check if bucket bucket exists: connection refused")
	})

	t.Run("ok: existing bucket is kept", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().BucketExists(ctx, "bucket").Return(true, nil).Once()

		require.NoError(t, store.EnsureBucket(ctx, "bucket"))
	})

	t.Run("ok: missing bucket is created", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().BucketExists(ctx, "bucket").Return(false, nil).Once()
		client.EXPECT().MakeBucket(ctx, "bucket", minio.MakeBucketOptions{}).Return(nil).Once()

		require.NoError(t, store.EnsureBucket(ctx, "bucket"))
	})
}

func TestMinioStore_PutObject(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty bucket name", func(t *testing.T) {
		store := objectrepo.NewMinioStore(mocks.NewMinioAPI(t))

		err := store.PutObject(ctx, "", "key", nil)
		require.ErrorIs(t, err, pipelinedomain.ErrEmptyBucketName)
	})

	t.Run("ok: object uploaded", func(t *testing.T) {
		client := mocks.NewMinioAPI(t)
		store := objectrepo.NewMinioStore(client)

		client.EXPECT().
			PutObject(ctx, "bucket", "in/1", mock.Anything, int64(3), mock.Anything).
			Return(minio.UploadInfo{Key: "in/1"}, nil).
			Once()

		require.NoError(t, store.PutObject(ctx, "bucket", "in/1", []byte("{}\n")))
	})
}
