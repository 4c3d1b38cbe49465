package pipelinedomain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	FieldRecordCount   = "record_count"
	FieldStreamName    = "KinesisInputStreamName"
	FieldBucketName    = "FirehoseOutputBucket"
	FieldWaitLoopCount = "wait_loop_count"
	FieldStatus        = "status"
	FieldWaitSeconds   = "waitSeconds"
	FieldErrorMessage  = "error_message"
	FieldGUID          = "guid"
)

type Status string

const (
	StatusProcessing Status = "PROCESSING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Event is the workflow mapping the orchestrator threads between steps.
// Fields this module does not know about are kept verbatim so that echoing an
// event back never loses orchestrator state.
type Event struct {
	fields map[string]json.RawMessage
}

func NewEvent() *Event {
	return &Event{fields: make(map[string]json.RawMessage)}
}

func ParseEvent(data []byte) (*Event, error) {
	e := NewEvent()
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidEvent)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	e.fields = fields
	return nil
}

func (e *Event) MarshalJSON() ([]byte, error) {
	if e == nil || e.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.fields)
}

func (e *Event) Clone() *Event {
	c := NewEvent()
	for k, v := range e.fields {
		c.fields[k] = append(json.RawMessage(nil), v...)
	}
	return c
}

func (e *Event) Has(key string) bool {
	_, ok := e.fields[key]
	return ok
}

func (e *Event) Raw(key string) (json.RawMessage, bool) {
	v, ok := e.fields[key]
	return v, ok
}

func (e *Event) Set(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", key, err)
	}
	if e.fields == nil {
		e.fields = make(map[string]json.RawMessage)
	}
	e.fields[key] = b
	return nil
}

func (e *Event) String(key string) (string, error) {
	raw, ok := e.fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidField, key)
	}
	return s, nil
}

func (e *Event) Int(key string) (int, error) {
	raw, ok := e.fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}

	var n json.Number
	if len(raw) == 0 || raw[0] == '"' {
		return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidField, key)
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidField, key)
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer, got %s", ErrInvalidField, key, n)
	}
	return v, nil
}

func (e *Event) RecordCount() (int, error) {
	n, err := e.Int(FieldRecordCount)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q must not be negative", ErrInvalidField, FieldRecordCount)
	}
	return n, nil
}

func (e *Event) StreamName() (string, error) {
	name, err := e.String(FieldStreamName)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrEmptyStreamName
	}
	return name, nil
}

func (e *Event) BucketName() (string, error) {
	name, err := e.String(FieldBucketName)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrEmptyBucketName
	}
	return name, nil
}

// NextWaitLoop starts the loop counter at 0 when absent and increments it
// otherwise, storing the new value in the event.
func (e *Event) NextWaitLoop() (int, error) {
	next := 0
	if e.Has(FieldWaitLoopCount) {
		cur, err := e.Int(FieldWaitLoopCount)
		if err != nil {
			return 0, err
		}
		next = cur + 1
	}
	if err := e.Set(FieldWaitLoopCount, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (e *Event) WaitLoopCount() (int, bool) {
	if !e.Has(FieldWaitLoopCount) {
		return 0, false
	}
	n, err := e.Int(FieldWaitLoopCount)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e *Event) Status() (Status, bool) {
	s, err := e.String(FieldStatus)
	if err != nil {
		return "", false
	}
	return Status(s), true
}

func (e *Event) SetStatus(s Status) {
	// a string always encodes
	_ = e.Set(FieldStatus, s)
}
