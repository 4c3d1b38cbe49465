package sliceutils_test

import (
	"strconv"
	"testing"

	sliceutils "github.com/10Narratives/streamcheck/pkg/slices"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, sliceutils.Map([]int{1, 2, 3}, strconv.Itoa))
	require.Empty(t, sliceutils.Map([]int{}, strconv.Itoa))
}

func TestBatch(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		size   int
		want   [][]int
	}{
		{name: "empty", values: nil, size: 2, want: nil},
		{name: "zero size", values: []int{1}, size: 0, want: nil},
		{name: "exact", values: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder", values: []int{1, 2, 3}, size: 2, want: [][]int{{1, 2}, {3}}},
		{name: "single batch", values: []int{1, 2}, size: 1000, want: [][]int{{1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, sliceutils.Batch(tt.values, tt.size))
		})
	}
}
