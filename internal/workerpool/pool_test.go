package workerpool_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ojmakhura/hdbscan/internal/workerpool"
)

func TestRunCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 137
	var mu sync.Mutex
	seen := make([]int, n)

	err := workerpool.Run(context.Background(), n, 4, func(scratch []float64, lo, hi int) error {
		require.Len(t, scratch, 4)
		mu.Lock()
		defer mu.Unlock()
		for i := lo; i < hi; i++ {
			seen[i]++
		}
		return nil
	})
	require.NoError(t, err)

	for i, count := range seen {
		require.Equal(t, 1, count, "index %d visited %d times", i, count)
	}
}

func TestRunReturnsFirstWorkerError(t *testing.T) {
	wantErr := errors.New("boom")

	err := workerpool.Run(context.Background(), 16, 1, func(scratch []float64, lo, hi int) error {
		if lo == 0 {
			return wantErr
		}
		return nil
	})
	require.ErrorIs(t, err, wantErr)
}

func TestRunOnEmptyRangeIsANoop(t *testing.T) {
	called := false
	err := workerpool.Run(context.Background(), 0, 1, func(scratch []float64, lo, hi int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestRunRejectsAlreadyCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := workerpool.Run(ctx, 1000, 1, func(scratch []float64, lo, hi int) error {
		return nil
	})
	require.Error(t, err)
}
