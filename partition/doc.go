// Package partition is the single-partition columnar engine behind lazyframe. It
// provides in-memory Tables, Series and Indexes built from typed Arrays, the
// operators and accessors which are applied to them one partition at a time, and
// the zero-row and one-row proxies (Empty and NonEmpty) used to infer the schema of
// an operation without running it on real data.
package partition
