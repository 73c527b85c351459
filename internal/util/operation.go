package util

import (
	"fmt"
)

// PartitionFunc mirrors graph.Func, declared here to keep util free of package dependencies
type PartitionFunc = func(args []interface{}, kwargs map[string]interface{}) (interface{}, error)

// SafePartitionFunc wraps a PartitionFunc such that panics are recovered and nice error messages are constructed
func SafePartitionFunc(name string, fn PartitionFunc) (safeFn PartitionFunc) {
	return func(args []interface{}, kwargs map[string]interface{}) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = nil
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("%s Panic: %w\n%s", name, anErr, GetTrace())
				} else {
					err = fmt.Errorf("%s Panic: %v\n%s", name, r, GetTrace())
				}
			}
		}()
		result, err = fn(args, kwargs)
		return
	}
}
