// Package dsv parses delimiter-separated values, such as CSV or TSV files.
package dsv
