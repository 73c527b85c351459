package lazyframe

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a graph execution
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the execution
	GetStartTime() time.Time
	// GetRuntime returns the running time of the execution, in nanoseconds
	GetRuntime() int64
	// GetNumTasks returns the number of tasks planned for the execution
	GetNumTasks() int
	// GetNumTasksExecuted returns the number of tasks which have been executed so far
	GetNumTasksExecuted() int64
	// GetNumTaskFailures returns the number of tasks which have failed so far
	GetNumTaskFailures() int64
	// GetNumCacheHits returns the number of task results served from the result cache
	GetNumCacheHits() int64
	// GetCurrentTaskProcessingTime returns a rolling average of task processing time, in nanoseconds
	GetCurrentTaskProcessingTime() int64
}

// Statistics returns the statistics of the most recent execution of the scheduler
// selected by opts, or nil if that scheduler has not executed anything yet
func Statistics(opts ...ComputeOption) (RuntimeStatistics, error) {
	s, err := resolveScheduler(opts)
	if err != nil {
		return nil, err
	}
	rs := s.Stats()
	if rs == nil {
		return nil, nil
	}
	return rs, nil
}
