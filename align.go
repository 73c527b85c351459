package lazyframe

import "github.com/go-sif/lazyframe/errors"

// Align checks that every partitioned Collection among args, including those nested
// in []interface{} arguments, shares the Divisions of the first one, including their
// length, and returns args unchanged. Scalars and other values do not take part.
// Divisions are never reconciled: operands with different partitioning must be
// aligned by the caller.
func Align(args []interface{}) ([]interface{}, error) {
	parts := partitioned(args, nil)
	for _, c := range parts {
		if !c.Divisions().Equal(parts[0].Divisions()) {
			return nil, errors.AlignmentError{Expected: parts[0].Divisions(), Got: c.Divisions()}
		}
	}
	return args, nil
}

// partitioned collects the non-Scalar Collections within a (possibly nested) argument
// list, in order
func partitioned(args []interface{}, found []Collection) []Collection {
	for _, a := range args {
		switch ta := a.(type) {
		case Collection:
			if ta.Kind() != KindScalar {
				found = append(found, ta)
			}
		case []interface{}:
			found = partitioned(ta, found)
		}
	}
	return found
}
