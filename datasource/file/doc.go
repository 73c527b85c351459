// Package file provides a DataFrame which reads data from a set of files on disk.
// Each file becomes one partition, so it is favourable if individual files
// represent roughly equal-sized divisions of data. Files are read lazily, when
// their partitions are computed.
package file
