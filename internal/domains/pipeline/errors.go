package pipelinedomain

import "errors"

var (
	ErrInvalidEvent       = errors.New("invalid event payload")
	ErrMissingField       = errors.New("missing event field")
	ErrInvalidField       = errors.New("invalid event field")
	ErrVerificationFailed = errors.New("output verification failed")
	ErrEmptyBucketName    = errors.New("bucket name is empty")
	ErrEmptyStreamName    = errors.New("stream name is empty")
)
