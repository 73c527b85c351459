package lazyframe

// An Accumulator is a reduction technique which collapses a Series into a
// single value. Chunk is applied to every partition independently, then
// Aggregate combines the per-partition chunks, in partition order, into the
// final result. The result is a Scalar rather than a partitioned Collection,
// thus ending that line of computation.
//
// Both functions run inside the task graph, and must therefore be pure.
type Accumulator interface {
	Name() string                                        // Name identifies this Accumulator in task names
	Chunk(part interface{}) (interface{}, error)         // Chunk reduces a single partition
	Aggregate(chunks []interface{}) (interface{}, error) // Aggregate combines the chunks of every partition
}
