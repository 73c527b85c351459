package lazyframe

import (
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// DatetimeOps exposes the datetime properties and methods of a datetime Series or Index
type DatetimeOps interface {
	Year() (Collection, error)
	Month() (Collection, error)
	Day() (Collection, error)
	Hour() (Collection, error)
	Minute() (Collection, error)
	Second() (Collection, error)
	Weekday() (Collection, error) // Weekday counts from Monday=0
	DayOfYear() (Collection, error)
	Strftime(format string) (Collection, error)
}

// CategoricalOps exposes the categorical properties and methods of a categorical Series or Index
type CategoricalOps interface {
	Codes() (Collection, error)
	Categories() []string
	Ordered() bool
	AsOrdered() (Collection, error)
	AsUnordered() (Collection, error)
	AddCategories(categories ...string) (Collection, error)
}

// accessor delegates attribute access to per-partition functions. Properties
// take no arguments and are inferred from the zero-row meta; methods take
// arguments and are inferred from the one-row meta, since their behaviour may
// depend on actual values.
type accessor struct {
	name       string
	target     Collection
	properties map[string]graph.Func
	methods    map[string]graph.Func
}

func (a *accessor) property(attr string) (Collection, error) {
	fn, ok := a.properties[attr]
	if !ok {
		return nil, errors.InvalidOperandsError{Reason: a.name + " has no property " + attr}
	}
	return MapPartitions(fn, []interface{}{a.target}, WithToken(a.name+"-"+attr))
}

func (a *accessor) method(attr string, args ...interface{}) (Collection, error) {
	fn, ok := a.methods[attr]
	if !ok {
		return nil, errors.InvalidOperandsError{Reason: a.name + " has no method " + attr}
	}
	taskArgs := append([]interface{}{a.target}, args...)
	meta, err := emulate(a.name+"-"+attr, fn, taskArgs, nil, true)
	if err != nil {
		return nil, err
	}
	return MapPartitions(fn, taskArgs, WithToken(a.name+"-"+attr), WithMeta(meta))
}

func datetimeField(field partition.DatetimeField) graph.Func {
	return func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		return partition.ExtractDatetime(args[0], field)
	}
}

func strftime(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Strftime(args[0], args[1].(string))
}

type datetimeAccessor struct {
	accessor
}

func (d *datetimeAccessor) Year() (Collection, error)      { return d.property("year") }
func (d *datetimeAccessor) Month() (Collection, error)     { return d.property("month") }
func (d *datetimeAccessor) Day() (Collection, error)       { return d.property("day") }
func (d *datetimeAccessor) Hour() (Collection, error)      { return d.property("hour") }
func (d *datetimeAccessor) Minute() (Collection, error)    { return d.property("minute") }
func (d *datetimeAccessor) Second() (Collection, error)    { return d.property("second") }
func (d *datetimeAccessor) Weekday() (Collection, error)   { return d.property("weekday") }
func (d *datetimeAccessor) DayOfYear() (Collection, error) { return d.property("dayofyear") }

func (d *datetimeAccessor) Strftime(format string) (Collection, error) {
	return d.method("strftime", format)
}

func categoryCodes(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.CategoryCodes(args[0])
}

func setOrdered(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.SetOrdered(args[0], args[1].(bool))
}

func addCategories(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.AddCategories(args[0], args[1].([]string))
}

type categoricalAccessor struct {
	accessor
	dtype *types.CategoricalColumnType
}

func (c *categoricalAccessor) Codes() (Collection, error) { return c.property("codes") }

func (c *categoricalAccessor) Categories() []string {
	return append([]string(nil), c.dtype.Categories...)
}

func (c *categoricalAccessor) Ordered() bool { return c.dtype.Ordered }

func (c *categoricalAccessor) AsOrdered() (Collection, error) {
	return c.method("as_ordered", true)
}

func (c *categoricalAccessor) AsUnordered() (Collection, error) {
	return c.method("as_unordered", false)
}

func (c *categoricalAccessor) AddCategories(categories ...string) (Collection, error) {
	return c.method("add_categories", append([]string(nil), categories...))
}

// Dt returns the datetime accessor of this Series, which must hold datetime values
func (s *Series) Dt() (DatetimeOps, error) {
	if !types.IsDatetime(s.Dtype()) {
		return nil, errors.AccessorError{Accessor: "dt", DType: s.Dtype().Name()}
	}
	return &datetimeAccessor{accessor{
		name:   "dt",
		target: s.self,
		properties: map[string]graph.Func{
			"year":      datetimeField(partition.Year),
			"month":     datetimeField(partition.Month),
			"day":       datetimeField(partition.Day),
			"hour":      datetimeField(partition.Hour),
			"minute":    datetimeField(partition.Minute),
			"second":    datetimeField(partition.Second),
			"weekday":   datetimeField(partition.Weekday),
			"dayofyear": datetimeField(partition.DayOfYear),
		},
		methods: map[string]graph.Func{
			"strftime": strftime,
		},
	}}, nil
}

// Cat returns the categorical accessor of this Series, which must hold categorical values
func (s *Series) Cat() (CategoricalOps, error) {
	dtype, ok := s.Dtype().(*types.CategoricalColumnType)
	if !ok {
		return nil, errors.AccessorError{Accessor: "cat", DType: s.Dtype().Name()}
	}
	return &categoricalAccessor{
		accessor: accessor{
			name:   "cat",
			target: s.self,
			properties: map[string]graph.Func{
				"codes": categoryCodes,
			},
			methods: map[string]graph.Func{
				"as_ordered":     setOrdered,
				"as_unordered":   setOrdered,
				"add_categories": addCategories,
			},
		},
		dtype: dtype,
	}, nil
}
