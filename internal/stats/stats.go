package stats

import (
	"sync"
	"time"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about a task graph execution
type RunStatistics struct {
	lock                   sync.Mutex
	started                bool
	finished               bool
	startTime              time.Time
	totalRuntime           int64
	numTasks               int
	tasksExecuted          int64
	cacheHits              int64
	taskFailures           int64
	recentTaskRuntimes     []int64 // for rolling average of recent task processing times
	recentTaskRuntimesHead int
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numTasks int) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.numTasks = numTasks
		rs.recentTaskRuntimes = make([]int64, statisticRollingWindows)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.totalRuntime = time.Since(rs.startTime).Nanoseconds()
	rs.finished = true
}

// EndTask tracks the completion of a task which ran for d
func (rs *RunStatistics) EndTask(d time.Duration, failed bool) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.recentTaskRuntimes == nil {
		rs.recentTaskRuntimes = make([]int64, statisticRollingWindows)
	}
	rs.recentTaskRuntimes[rs.recentTaskRuntimesHead] = d.Nanoseconds()
	rs.recentTaskRuntimesHead = (rs.recentTaskRuntimesHead + 1) % len(rs.recentTaskRuntimes)
	rs.tasksExecuted++
	if failed {
		rs.taskFailures++
	}
}

// CacheHit tracks a task whose result was served from the result cache
func (rs *RunStatistics) CacheHit() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	rs.cacheHits++
}

// GetStartTime returns the start time of the execution
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the execution
func (rs *RunStatistics) GetRuntime() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime).Nanoseconds()
}

// GetNumTasks returns the number of tasks in the executed graph
func (rs *RunStatistics) GetNumTasks() int {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.numTasks
}

// GetNumTasksExecuted returns the number of tasks which have been executed so far
func (rs *RunStatistics) GetNumTasksExecuted() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.tasksExecuted
}

// GetNumTaskFailures returns the number of tasks which have failed so far
func (rs *RunStatistics) GetNumTaskFailures() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.taskFailures
}

// GetNumCacheHits returns the number of task results served from the cache
func (rs *RunStatistics) GetNumCacheHits() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.cacheHits
}

// GetCurrentTaskProcessingTime returns a rolling average of task processing time
func (rs *RunStatistics) GetCurrentTaskProcessingTime() int64 {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	var total int64
	for _, d := range rs.recentTaskRuntimes {
		total += d
	}
	return total / statisticRollingWindows
}
