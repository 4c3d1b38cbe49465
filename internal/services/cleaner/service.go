package cleanersrv

import (
	"context"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	logutils "github.com/10Narratives/streamcheck/pkg/logging"
	"go.uber.org/zap"
)

//go:generate mockery --name ObjectStore --output ./mocks --outpkg mocks --with-expecter --filename object_store.go
type ObjectStore interface {
	pipelinedomain.ObjectDeleter
}

type Service struct {
	store ObjectStore
	log   *zap.Logger
}

func NewService(store ObjectStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) CleanBucket(ctx context.Context, bucket string) (*pipelinedomain.DeleteAllObjectsResult, error) {
	if bucket == "" {
		return nil, pipelinedomain.ErrEmptyBucketName
	}

	res, err := s.store.DeleteAllObjects(ctx, bucket)
	if err != nil {
		return nil, err
	}

	logutils.FromContext(ctx, s.log).Info("bucket cleaned",
		zap.String("bucket", bucket),
		zap.Int("deleted", res.Deleted))

	return res, nil
}
