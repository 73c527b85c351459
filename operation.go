package lazyframe

// Operation is a reusable transform from one Collection to another, e.g. a
// column rename or a filter. Operations are composed with To.
type Operation func(c Collection) (Collection, error)

// To applies a chain of Operations to a Collection, in order, stopping at the first error
func To(c Collection, ops ...Operation) (Collection, error) {
	var err error
	for _, op := range ops {
		c, err = op(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}
