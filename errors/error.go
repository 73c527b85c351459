package errors

import (
	"fmt"
)

// ConstructionError occurs when a collection's meta does not match the collection's declared kind
type ConstructionError struct {
	Expected string
	Got      string
}

// Error returns a textual representation of this ConstructionError
func (e ConstructionError) Error() string {
	return fmt.Sprintf("Expected meta to specify type %s, got type %s", e.Expected, e.Got)
}

// AlignmentError occurs when operands of a shared operation have incompatible divisions
type AlignmentError struct {
	Expected []interface{}
	Got      []interface{}
}

// Error returns a textual representation of this AlignmentError
func (e AlignmentError) Error() string {
	return fmt.Sprintf("Aligning mismatched partitions is not supported: divisions %v do not match %v", e.Got, e.Expected)
}

// EmulationError occurs when a partition function fails while being applied to meta proxies
type EmulationError struct {
	FuncName string
	Err      error
}

// Error returns a textual representation of this EmulationError
func (e EmulationError) Error() string {
	return fmt.Sprintf("Metadata inference failed in `%s`: %v", e.FuncName, e.Err)
}

// Unwrap returns the error raised by the partition function
func (e EmulationError) Unwrap() error {
	return e.Err
}

// UnsupportedIndexingError occurs when a collection is indexed with anything other than an existing column name
type UnsupportedIndexingError struct{ Key interface{} }

// Error returns a textual representation of this UnsupportedIndexingError
func (e UnsupportedIndexingError) Error() string {
	return fmt.Sprintf("Indexing with %#v is not implemented", e.Key)
}

// ConfigurationError occurs when ingestion is called with invalid options or an unsupported source
type ConfigurationError struct{ Reason string }

// Error returns a textual representation of this ConfigurationError
func (e ConfigurationError) Error() string {
	return e.Reason
}

// InvalidOperandsError occurs when an operation is called without the operands it requires
type InvalidOperandsError struct{ Reason string }

// Error returns a textual representation of this InvalidOperandsError
func (e InvalidOperandsError) Error() string {
	return e.Reason
}

// AccessorError occurs when an accessor is requested for a column of an incompatible dtype
type AccessorError struct {
	Accessor string
	DType    string
}

// Error returns a textual representation of this AccessorError
func (e AccessorError) Error() string {
	return fmt.Sprintf("Can only use .%s accessor with compatible values, not %s", e.Accessor, e.DType)
}

// MissingKeyError occurs when a requested key does not exist in a task graph
type MissingKeyError struct{ Key string }

// Error returns a textual representation of this MissingKeyError
func (e MissingKeyError) Error() string {
	return fmt.Sprintf("Key %s does not exist in graph", e.Key)
}

// TaskError occurs when a task fails during execution of a graph
type TaskError struct {
	Key string
	Err error
}

// Error returns a textual representation of this TaskError
func (e TaskError) Error() string {
	return fmt.Sprintf("Task %s failed: %v", e.Key, e.Err)
}

// Unwrap returns the error raised by the task
func (e TaskError) Unwrap() error {
	return e.Err
}
