package functionsapp

const (
	StreamBackendKinesis = "kinesis"
	StreamBackendNATS    = "nats"

	StorageBackendS3    = "s3"
	StorageBackendMinio = "minio"
)

type Config struct {
	Env           string              `yaml:"env" env:"APP_ENV" env-default:"prod"`
	AWS           AWSConfig           `yaml:"aws"`
	Stream        StreamConfig        `yaml:"stream"`
	ObjectStorage ObjectStorageConfig `yaml:"object_storage"`
	Poller        PollerConfig        `yaml:"poller"`
	Workflow      WorkflowConfig      `yaml:"workflow"`
	Delivery      DeliveryConfig      `yaml:"delivery"`
}

type AWSConfig struct {
	Region   string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
	Endpoint string `yaml:"endpoint" env:"AWS_ENDPOINT_URL"`
	Profile  string `yaml:"profile" env:"AWS_PROFILE"`
}

type StreamConfig struct {
	Backend      string     `yaml:"backend" env:"STREAM_BACKEND" env-default:"kinesis"`
	PartitionKey string     `yaml:"partition_key" env:"STREAM_PARTITION_KEY" env-default:"partitionKey"`
	NATS         NATSConfig `yaml:"nats"`
}

type NATSConfig struct {
	URL string `yaml:"url" env:"NATS_URL" env-default:"nats://127.0.0.1:4222"`
}

type ObjectStorageConfig struct {
	Backend string      `yaml:"backend" env:"OBJECT_STORAGE_BACKEND" env-default:"s3"`
	Minio   MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"127.0.0.1:9000"`
	User     string `yaml:"user" env:"MINIO_USER"`
	Password string `yaml:"password" env:"MINIO_PASSWORD"`
	UseSSL   bool   `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
}

type PollerConfig struct {
	MaxWaitLoops  int    `yaml:"max_wait_loops" env:"POLLER_MAX_WAIT_LOOPS" env-default:"2"`
	CountMode     string `yaml:"count_mode" env:"POLLER_COUNT_MODE" env-default:"newline"`
	RequiredField string `yaml:"required_field" env:"POLLER_REQUIRED_FIELD" env-default:"approximate_arrival_timestamp"`
}

type WorkflowConfig struct {
	WaitSeconds int `yaml:"wait_seconds" env:"WORKFLOW_WAIT_SECONDS" env-default:"30"`
	MaxPolls    int `yaml:"max_polls" env:"WORKFLOW_MAX_POLLS" env-default:"10"`
}

type DeliveryConfig struct {
	Durable string `yaml:"durable" env:"DELIVERY_DURABLE" env-default:"streamcheck-delivery"`
	Slots   int    `yaml:"slots" env:"DELIVERY_SLOTS" env-default:"4"`
}
