package types

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// DefaultTimeLayout is the layout used to render TimeColumnType values when none is configured
const DefaultTimeLayout = time.RFC3339Nano

// ColumnType is an interface which is implemented to define a supported column type (dtype).
// Lazyframe provides a variety of built-in types in this package.
type ColumnType interface {
	Name() string                  // returns the canonical dtype name, e.g. "int64"
	Size() int                     // returns size in bytes of a single value, or 0 for variable-length types
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// IsNumeric returns true iff colType holds integer or floating point values
func IsNumeric(colType ColumnType) bool {
	switch colType.(type) {
	case *Int64ColumnType, *Float64ColumnType:
		return true
	}
	return false
}

// IsDatetime returns true iff colType is a TimeColumnType
func IsDatetime(colType ColumnType) (isDatetime bool) {
	_, isDatetime = colType.(*TimeColumnType)
	return
}

// IsCategorical returns true iff colType is a CategoricalColumnType
func IsCategorical(colType ColumnType) (isCategorical bool) {
	_, isCategorical = colType.(*CategoricalColumnType)
	return
}

// SameType returns nil iff both ColumnTypes describe the same dtype, including parameters
func SameType(a ColumnType, b ColumnType) error {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return fmt.Errorf("dtype %s does not match dtype %s", a.Name(), b.Name())
	}
	if ca, ok := a.(*CategoricalColumnType); ok {
		cb := b.(*CategoricalColumnType)
		if ca.Ordered != cb.Ordered || len(ca.Categories) != len(cb.Categories) {
			return fmt.Errorf("categorical dtypes %s and %s differ", ca.ToString(nil), cb.ToString(nil))
		}
		for i := range ca.Categories {
			if ca.Categories[i] != cb.Categories[i] {
				return fmt.Errorf("categorical dtypes %s and %s differ", ca.ToString(nil), cb.ToString(nil))
			}
		}
	}
	return nil
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Name returns the dtype name of a Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// Size in bytes of a Int64Column
func (b *Int64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns the dtype name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// Size in bytes of a Float64Column
func (b *Float64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns the dtype name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "bool"
}

// Size in bytes of a BoolColumn
func (b *BoolColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Name returns the dtype name of a VarStringColumnType
func (b *VarStringColumnType) Name() string {
	return "str"
}

// Size in bytes of a VarStringColumn
func (b *VarStringColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// TimeColumnType is a column type which stores a time.Time value. Format is the
// layout used when parsing and rendering values, defaulting to RFC3339Nano.
type TimeColumnType struct {
	Format string
}

// Name returns the dtype name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "datetime"
}

// Size in bytes of a TimeColumn
func (b *TimeColumnType) Size() int {
	return 15
}

// Layout returns the configured time layout, or DefaultTimeLayout
func (b *TimeColumnType) Layout() string {
	if b.Format == "" {
		return DefaultTimeLayout
	}
	return b.Format
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).Format(b.Layout()))
}

// CategoricalColumnType is a column type which stores one of a fixed set of
// string categories, represented internally as integer codes
type CategoricalColumnType struct {
	Categories []string
	Ordered    bool
}

// Name returns the dtype name of a CategoricalColumnType
func (b *CategoricalColumnType) Name() string {
	return "category"
}

// Size in bytes of a CategoricalColumn code
func (b *CategoricalColumnType) Size() int {
	return 4
}

// Code returns the code for a category label, or -1 if it isn't a known category
func (b *CategoricalColumnType) Code(label string) int32 {
	for i, c := range b.Categories {
		if c == label {
			return int32(i)
		}
	}
	return -1
}

// ToString produces a string representation of a categorical label, or of the dtype itself when v is nil
func (b *CategoricalColumnType) ToString(v interface{}) string {
	if v == nil {
		return fmt.Sprintf("category[%s, ordered=%t]", strings.Join(b.Categories, ","), b.Ordered)
	}
	return fmt.Sprintf("\"%s\"", v.(string))
}
