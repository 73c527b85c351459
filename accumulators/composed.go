package accumulators

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-sif/lazyframe"
)

// Compose returns a new Composed Accumulator, whose result is the list of results of accs
func Compose(accs ...lazyframe.Accumulator) lazyframe.Accumulator {
	return Composed{accs: append([]lazyframe.Accumulator(nil), accs...)}
}

// Composed composes other Accumulators, so that they are computed in a single pass
type Composed struct {
	accs []lazyframe.Accumulator
}

// Name identifies this Accumulator
func (c Composed) Name() string {
	names := make([]string, len(c.accs))
	for i, a := range c.accs {
		names[i] = a.Name()
	}
	return "composed-" + strings.Join(names, "-")
}

// Chunk applies every contained Accumulator to a single partition
func (c Composed) Chunk(part interface{}) (interface{}, error) {
	res := make([]interface{}, len(c.accs))
	for i, a := range c.accs {
		chunk, err := a.Chunk(part)
		if err != nil {
			return nil, err
		}
		res[i] = chunk
	}
	return res, nil
}

// Aggregate combines the chunks of every contained Accumulator, returning their results in order
func (c Composed) Aggregate(chunks []interface{}) (interface{}, error) {
	perAcc := make([][]interface{}, len(c.accs))
	for _, chunk := range chunks {
		parts, ok := chunk.([]interface{})
		if !ok || len(parts) != len(c.accs) {
			return nil, fmt.Errorf("incoming chunk is not a Composed chunk")
		}
		for i, p := range parts {
			perAcc[i] = append(perAcc[i], p)
		}
	}
	res := make([]interface{}, len(c.accs))
	for i, a := range c.accs {
		r, err := a.Aggregate(perAcc[i])
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

// Averager returns a new Accumulator computing the mean of the named column. The
// mean of no values is NaN.
func Averager(colName string) lazyframe.Accumulator {
	return Mean{Composed{accs: []lazyframe.Accumulator{Adder(colName), Counter()}}}
}

// Mean averages values, as a sum composed with a count
type Mean struct {
	Composed
}

// Name identifies this Accumulator
func (m Mean) Name() string {
	return "mean"
}

// Aggregate divides the total sum by the total count
func (m Mean) Aggregate(chunks []interface{}) (interface{}, error) {
	res, err := m.Composed.Aggregate(chunks)
	if err != nil {
		return nil, err
	}
	totals := res.([]interface{})
	count := totals[1].(int64)
	if count == 0 {
		return math.NaN(), nil
	}
	switch sum := totals[0].(type) {
	case int64:
		return float64(sum) / float64(count), nil
	case float64:
		return sum / float64(count), nil
	}
	return nil, fmt.Errorf("cannot average a sum of %T", totals[0])
}
