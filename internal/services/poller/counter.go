package pollersrv

import (
	"bytes"
	"encoding/json"
	"fmt"

	pipelinedomain "github.com/10Narratives/streamcheck/internal/domains/pipeline"
	"github.com/buger/jsonparser"
)

const DefaultRequiredField = "approximate_arrival_timestamp"

type CountMode string

const (
	// CountNewlines counts newline bytes, one per delivered record.
	CountNewlines CountMode = "newline"
	// CountTokens counts whitespace-delimited tokens. Records containing
	// whitespace are over-counted; kept for compatibility with older runs.
	CountTokens CountMode = "whitespace"
)

func ParseCountMode(s string) (CountMode, error) {
	switch CountMode(s) {
	case "", CountNewlines:
		return CountNewlines, nil
	case CountTokens:
		return CountTokens, nil
	default:
		return "", fmt.Errorf("unknown count mode %q", s)
	}
}

type RecordCounter struct {
	mode          CountMode
	requiredField string
}

func NewRecordCounter(mode CountMode, requiredField string) *RecordCounter {
	if requiredField == "" {
		requiredField = DefaultRequiredField
	}
	if mode == "" {
		mode = CountNewlines
	}
	return &RecordCounter{mode: mode, requiredField: requiredField}
}

// Count returns the number of records in one delivered object and verifies
// that each of them is JSON carrying the required field.
func (c *RecordCounter) Count(data []byte) (int, error) {
	var (
		count   int
		records [][]byte
	)

	switch c.mode {
	case CountTokens:
		records = bytes.Fields(data)
		count = len(records)
	default:
		count = bytes.Count(data, []byte{'\n'})
		for line := range bytes.SplitSeq(data, []byte{'\n'}) {
			if line = bytes.TrimSpace(line); len(line) > 0 {
				records = append(records, line)
			}
		}
	}

	for i, rec := range records {
		if err := c.verify(rec); err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return count, nil
}

func (c *RecordCounter) verify(rec []byte) error {
	if !json.Valid(rec) {
		return fmt.Errorf("%w: record is not valid JSON", pipelinedomain.ErrVerificationFailed)
	}

	_, dataType, _, err := jsonparser.Get(rec, c.requiredField)
	if err != nil || dataType == jsonparser.NotExist {
		return fmt.Errorf("%w: %s key not found", pipelinedomain.ErrVerificationFailed, c.requiredField)
	}
	return nil
}
