package workflowsrv

import "errors"

var (
	ErrStepFailed   = errors.New("workflow step failed")
	ErrDataMismatch = errors.New("output data does not match expected result")
	ErrPollLimit    = errors.New("poll limit reached while records are still processing")

	errStillProcessing = errors.New("records are still processing")
)
