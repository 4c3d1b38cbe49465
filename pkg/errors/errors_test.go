package errorutils_test

import (
	"errors"
	"testing"

	errorutils "github.com/10Narratives/streamcheck/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	require.Equal(t, 3, errorutils.Must(3, nil))
	require.PanicsWithError(t, "boom", func() {
		errorutils.Must(0, errors.New("boom"))
	})
}

func TestTryf(t *testing.T) {
	require.NotPanics(t, func() {
		errorutils.Tryf(nil, "start %s", "cleaner")
	})
	require.PanicsWithError(t, "start cleaner: boom", func() {
		errorutils.Tryf(errors.New("boom"), "start %s", "cleaner")
	})
}
