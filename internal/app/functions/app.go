package functionsapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	awscomp "github.com/10Narratives/streamcheck/internal/app/components/aws"
	miniocomp "github.com/10Narratives/streamcheck/internal/app/components/minio"
	natscomp "github.com/10Narratives/streamcheck/internal/app/components/nats"
	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	objectrepo "github.com/10Narratives/streamcheck/internal/repositories/objects"
	streamrepo "github.com/10Narratives/streamcheck/internal/repositories/stream"
	cleanersrv "github.com/10Narratives/streamcheck/internal/services/cleaner"
	enrichersrv "github.com/10Narratives/streamcheck/internal/services/enricher"
	generatorsrv "github.com/10Narratives/streamcheck/internal/services/generator"
	pollersrv "github.com/10Narratives/streamcheck/internal/services/poller"
	workflowsrv "github.com/10Narratives/streamcheck/internal/services/workflow"
	lambdatr "github.com/10Narratives/streamcheck/internal/transport/lambda"
	natscons "github.com/10Narratives/streamcheck/internal/transport/nats/consumer"
	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrDeliveryUnsupported = errors.New("local delivery needs the nats stream backend")

type ObjectStore interface {
	pipelinedomain.ObjectLister
	pipelinedomain.ObjectReader
	pipelinedomain.ObjectWriter
	pipelinedomain.ObjectDeleter
}

type App struct {
	cfg *Config
	log *zap.Logger

	jetStream *natscomp.JetStream
	jsPub     *streamrepo.JetStreamPublisher
	minio     *objectrepo.MinioStore

	generatorService *generatorsrv.Service
	pollerService    *pollersrv.Service
	cleanerService   *cleanersrv.Service
	enricherService  *enrichersrv.Service
	workflowService  *workflowsrv.Service
	store            ObjectStore
}

func NewApp(ctx context.Context, cfg *Config, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		c, err := awscomp.LoadConfig(ctx, awscomp.Options{
			Region:  cfg.AWS.Region,
			Profile: cfg.AWS.Profile,
		})
		if err != nil {
			return aws.Config{}, err
		}
		awsCfg = &c
		return c, nil
	}

	var publisher generatorsrv.RecordPublisher
	switch cfg.Stream.Backend {
	case StreamBackendKinesis:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		publisher = streamrepo.NewKinesisPublisher(awscomp.NewKinesisClient(c, cfg.AWS.Endpoint))
	case StreamBackendNATS:
		js, err := natscomp.NewJetStream(cfg.Stream.NATS.URL)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to nats: %w", err)
		}
		log.Info("connection to nats established")
		a.jetStream = js
		a.jsPub = streamrepo.NewJetStreamPublisher(js.JS)
		publisher = a.jsPub
	default:
		return nil, fmt.Errorf("unknown stream backend %q", cfg.Stream.Backend)
	}

	switch cfg.ObjectStorage.Backend {
	case StorageBackendS3:
		c, err := loadAWS()
		if err != nil {
			return nil, a.closeOnError(err)
		}
		a.store = objectrepo.NewS3Store(awscomp.NewS3Client(c, cfg.AWS.Endpoint))
	case StorageBackendMinio:
		client, err := miniocomp.NewClient(miniocomp.Options{
			Endpoint: cfg.ObjectStorage.Minio.Endpoint,
			User:     cfg.ObjectStorage.Minio.User,
			Password: cfg.ObjectStorage.Minio.Password,
			UseSSL:   cfg.ObjectStorage.Minio.UseSSL,
		})
		if err != nil {
			return nil, a.closeOnError(err)
		}
		a.minio = objectrepo.NewMinioStore(client)
		a.store = a.minio
	default:
		return nil, a.closeOnError(fmt.Errorf("unknown object storage backend %q", cfg.ObjectStorage.Backend))
	}

	mode, err := pollersrv.ParseCountMode(cfg.Poller.CountMode)
	if err != nil {
		return nil, a.closeOnError(err)
	}

	a.generatorService = generatorsrv.NewService(publisher, log,
		generatorsrv.WithPartitionKey(cfg.Stream.PartitionKey))
	a.pollerService = pollersrv.NewService(a.store, log,
		pollersrv.WithCounter(pollersrv.NewRecordCounter(mode, cfg.Poller.RequiredField)),
		pollersrv.WithMaxWaitLoops(cfg.Poller.MaxWaitLoops))
	a.cleanerService = cleanersrv.NewService(a.store, log)
	a.enricherService = enrichersrv.NewService(log)
	a.workflowService = workflowsrv.NewService(workflowsrv.Steps{
		Clean:    workflowsrv.Step(a.CleanerHandler()),
		Generate: workflowsrv.Step(a.GeneratorHandler()),
		Poll:     workflowsrv.Step(a.PollerHandler()),
	}, log,
		workflowsrv.WithDefaultWait(time.Duration(cfg.Workflow.WaitSeconds)*time.Second),
		workflowsrv.WithMaxPolls(cfg.Workflow.MaxPolls))

	return a, nil
}

func (a *App) GeneratorHandler() lambdatr.Handler {
	return a.chain("event-generator", lambdatr.NewGeneratorHandler(a.generatorService))
}

func (a *App) PollerHandler() lambdatr.Handler {
	return a.chain("status-poller", lambdatr.NewPollerHandler(a.pollerService))
}

func (a *App) CleanerHandler() lambdatr.Handler {
	return a.chain("cleaner", lambdatr.NewCleanerHandler(a.cleanerService))
}

func (a *App) EnricherHandler() lambdatr.EnricherHandler {
	return lambdatr.NewEnricherHandler(a.enricherService, a.log)
}

func (a *App) Workflow() *workflowsrv.Service {
	return a.workflowService
}

// NewDeliveryConsumer wires the local stand-in for Firehose: records published
// to stream are enriched and written to bucket.
func (a *App) NewDeliveryConsumer(ctx context.Context, stream, bucket string) (*natscons.Consumer, error) {
	if a.jsPub == nil {
		return nil, ErrDeliveryUnsupported
	}
	if a.minio != nil {
		if err := a.minio.EnsureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	js, err := a.jsPub.Stream(ctx, stream)
	if err != nil {
		return nil, err
	}

	handler := natscons.NewDeliveryHandler(a.enricherService, a.store, bucket, a.log.With(zap.String("bucket", bucket)))
	return natscons.NewConsumer(ctx, js, handler, natscons.ConsumerConfig{
		Durable: a.cfg.Delivery.Durable,
		Slots:   a.cfg.Delivery.Slots,
	}, a.log)
}

func (a *App) Shutdown(ctx context.Context) error {
	errGroup, _ := errgroup.WithContext(ctx)

	if a.jetStream != nil {
		errGroup.Go(func() error {
			a.log.Debug("closing connection to nats")
			defer a.log.Info("connection to nats closed")

			return a.jetStream.Close()
		})
	}

	return errGroup.Wait()
}

func (a *App) chain(name string, h lambdatr.Handler) lambdatr.Handler {
	return lambdatr.Chain(h,
		lambdatr.WithLogging(a.log, name),
		lambdatr.WithRecovery())
}

func (a *App) closeOnError(err error) error {
	if a.jetStream != nil {
		a.jetStream.Conn.Close()
	}
	return err
}
