package parallel_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/go-das-kzg/internal/parallel"
)

func TestParallelForRunsEveryIndex(t *testing.T) {
	const n = 64
	var count int64
	err := parallel.ParallelFor(n, func(i int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(n), count)
}

func TestParallelForPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := parallel.ParallelFor(16, func(i int) error {
		if i == 7 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestParallelForZero(t *testing.T) {
	called := false
	err := parallel.ParallelFor(0, func(i int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestParallelMapPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	out, err := parallel.ParallelMap(items, func(v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 9, 16, 25}, out)
}

func TestParallelMapPropagatesError(t *testing.T) {
	sentinel := errors.New("bad item")
	items := []int{1, 2, 3}
	_, err := parallel.ParallelMap(items, func(v int) (int, error) {
		if v == 2 {
			return 0, sentinel
		}
		return v, nil
	})
	require.ErrorIs(t, err, sentinel)
}
