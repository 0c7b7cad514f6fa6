package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/pkg/logger"
)

func TestSchedulerAddAndRemove(t *testing.T) {
	s := NewScheduler(time.UTC, logger.NewNop())

	id, err := s.AddJob("0 0 9 * * *", func() {})
	require.NoError(t, err)
	require.Len(t, s.Entries(), 1)

	s.RemoveJob(id)
	assert.Empty(t, s.Entries())
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC, logger.NewNop())

	_, err := s.AddJob("0 9 * * *", func() {})
	assert.Error(t, err)
}

func TestSchedulerSkipsOverlappingRuns(t *testing.T) {
	s := NewScheduler(time.UTC, logger.NewNop())

	var running, maxRunning, runs int32
	_, err := s.AddJob("* * * * * *", func() {
		n := atomic.AddInt32(&running, 1)
		for {
			m := atomic.LoadInt32(&maxRunning)
			if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
				break
			}
		}
		atomic.AddInt32(&runs, 1)
		time.Sleep(1500 * time.Millisecond)
		atomic.AddInt32(&running, -1)
	})
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 1 }, 3*time.Second, 50*time.Millisecond)
	time.Sleep(1200 * time.Millisecond)
	s.Stop()

	assert.EqualValues(t, 1, atomic.LoadInt32(&maxRunning))
}
