package components

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestartableRunner_RestartsOnError(t *testing.T) {
	var (
		runs     atomic.Int32
		attempts = make(chan int, 3)
	)
	r := NewRestartableRunner(RunnerConfig{
		Name:           "test",
		RestartBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, func(ctx context.Context, attempt int) error {
		attempts <- attempt
		if runs.Add(1) < 3 {
			return errors.New("accept failed")
		}
		<-ctx.Done()
		return nil
	})

	require.NoError(t, r.Start(context.Background()))
	assert.Error(t, r.Start(context.Background()))

	require.Eventually(t, func() bool { return runs.Load() == 3 }, time.Second, time.Millisecond)
	assert.Equal(t, 2, r.RestartCount())
	assert.Equal(t, 0, <-attempts)
	assert.Equal(t, 1, <-attempts)
	assert.Equal(t, 2, <-attempts)

	require.NoError(t, r.Stop())
	assert.False(t, r.IsRunning())
}

func TestRestartableRunner_RecoversPanic(t *testing.T) {
	r := NewRestartableRunner(RunnerConfig{
		Name:        "test",
		MaxRestarts: 1,
	}, func(ctx context.Context, attempt int) error {
		panic("boom")
	})

	require.NoError(t, r.Start(context.Background()))
	require.Eventually(t, func() bool { return r.LastError() != nil }, time.Second, time.Millisecond)
	assert.EqualError(t, r.LastError(), "panic: boom")

	require.NoError(t, r.Stop())
}
