package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunStatistics(t *testing.T) {
	rs := &RunStatistics{}
	rs.Start(3)
	rs.Start(10)
	rs.EndTask(5*time.Millisecond, false)
	rs.EndTask(5*time.Millisecond, true)
	rs.CacheHit()
	rs.Finish()

	require.Equal(t, 3, rs.GetNumTasks())
	require.Equal(t, int64(2), rs.GetNumTasksExecuted())
	require.Equal(t, int64(1), rs.GetNumTaskFailures())
	require.Equal(t, int64(1), rs.GetNumCacheHits())
	require.Equal(t, (10*time.Millisecond).Nanoseconds()/statisticRollingWindows, rs.GetCurrentTaskProcessingTime())
	runtime := rs.GetRuntime()
	require.Equal(t, runtime, rs.GetRuntime())
}
