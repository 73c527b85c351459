// Package lazyframe contains the core components of lazyframe, a lazily evaluated, partitioned
// tabular data structure. A DataFrame, Series, Index or Scalar is never materialized as a whole.
// Instead, it is an immutable, content-addressed task graph over a set of same-shaped partitions,
// plus a zero-row proxy (its meta) describing the schema of every partition, plus the division
// boundaries which relate partitions to ranges of the index.
//
// Operations infer the schema of their result by running against metas rather than real data,
// check that their operands are partitioned alike, and return new collections which share the
// graphs of their operands. Nothing is computed until Compute is called.
package lazyframe
