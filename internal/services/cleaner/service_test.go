package cleanersrv_test

import (
	"context"
	"errors"
	"testing"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	cleanersrv "github.com/10Narratives/streamcheck/internal/services/cleaner"
	"github.com/10Narratives/streamcheck/internal/services/cleaner/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CleanBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty bucket", func(t *testing.T) {
		svc := cleanersrv.NewService(mocks.NewObjectStore(t), zap.NewNop())

		_, err := svc.CleanBucket(ctx, "")
		require.ErrorIs(t, err, pipelinedomain.ErrEmptyBucketName)
	})

	t.Run("error: delete fails", func(t *testing.T) {
		store := mocks.NewObjectStore(t)
		svc := cleanersrv.NewService(store, zap.NewNop())

		store.EXPECT().DeleteAllObjects(ctx, "out").Return(nil, errors.New("NoSuchBucket")).Once()

		_, err := svc.CleanBucket(ctx, "out")
		require.ErrorContains(t, err, "NoSuchBucket")
	})

	t.Run("ok: objects deleted", func(t *testing.T) {
		store := mocks.NewObjectStore(t)
		svc := cleanersrv.NewService(store, zap.NewNop())

		store.EXPECT().DeleteAllObjects(ctx, "out").Return(&pipelinedomain.DeleteAllObjectsResult{Deleted: 7}, nil).Once()

		res, err := svc.CleanBucket(ctx, "out")
		require.NoError(t, err)
		require.Equal(t, 7, res.Deleted)
	})
}
