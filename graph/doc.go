// Package graph defines the immutable, content-addressed task graphs which back every
// lazy collection. A Graph maps Keys to either literal values or deferred Tasks whose
// arguments may reference other Keys. Graphs are combined with Merge and named with
// Tokenize, so that the same logical operation over the same operands always produces
// the same Keys.
package graph
