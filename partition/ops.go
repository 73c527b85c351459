package partition

import (
	"fmt"
	"math"

	"github.com/go-sif/lazyframe/types"
)

// BinaryOp enumerates the elementwise binary operators supported by partitions
type BinaryOp int

const (
	// OpAdd is addition, or concatenation of strings
	OpAdd BinaryOp = iota
	// OpSub is subtraction
	OpSub
	// OpMul is multiplication
	OpMul
	// OpTrueDiv is division which always produces floats
	OpTrueDiv
	// OpFloorDiv is division rounded towards negative infinity
	OpFloorDiv
	// OpMod is the remainder of OpFloorDiv, taking the sign of the divisor
	OpMod
	// OpEq is equality
	OpEq
	// OpNe is inequality
	OpNe
	// OpLt is less-than
	OpLt
	// OpLe is less-than-or-equal
	OpLe
	// OpGt is greater-than
	OpGt
	// OpGe is greater-than-or-equal
	OpGe
)

// String returns the symbol for this BinaryOp
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpTrueDiv:
		return "/"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// IsComparison returns true iff this BinaryOp produces booleans
func (op BinaryOp) IsComparison() bool {
	return op >= OpEq
}

// flip returns the comparison which holds when operands are swapped
func (op BinaryOp) flip() BinaryOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	}
	return op
}

// UnaryOp enumerates the elementwise unary operators supported by partitions
type UnaryOp int

const (
	// OpAbs is absolute value
	OpAbs UnaryOp = iota
)

// String returns the name of this UnaryOp
func (op UnaryOp) String() string {
	if op == OpAbs {
		return "abs"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// vector is implemented by one-dimensional partitions (Series and Index)
type vector interface {
	Partition
	Name() string
	vector() Array
	withValues(name string, values Array) Partition
}

// ZeroDivisionError occurs when an integer is divided by zero
type ZeroDivisionError struct{}

// Error returns a textual representation of this ZeroDivisionError
func (e ZeroDivisionError) Error() string {
	return "integer division or modulo by zero"
}

// Binary applies op elementwise to a pair of operands. Each operand may be a
// Table, Series, Index or scalar; scalars are broadcast. The result takes the
// shape of the first partition operand. Partition operands are matched by position
// and must have equal lengths.
func Binary(op BinaryOp, left interface{}, right interface{}) (interface{}, error) {
	switch l := left.(type) {
	case *Table:
		return binaryTable(op, l, right, false)
	case vector:
		return binaryVector(op, l, right, false)
	}
	switch r := right.(type) {
	case *Table:
		return binaryTable(op, r, left, true)
	case vector:
		return binaryVector(op, r, left, true)
	}
	la, err := repeat(left, 1)
	if err != nil {
		return nil, err
	}
	ra, err := repeat(right, 1)
	if err != nil {
		return nil, err
	}
	res, err := binaryArrays(op, la, ra)
	if err != nil {
		return nil, err
	}
	return res.Value(0), nil
}

func binaryVector(op BinaryOp, v vector, other interface{}, reflected bool) (interface{}, error) {
	a := v.vector()
	name := v.Name()
	var b Array
	switch o := other.(type) {
	case vector:
		if o.Len() != v.Len() {
			return nil, fmt.Errorf("cannot apply %s to operands of lengths %d and %d", op, v.Len(), o.Len())
		}
		b = o.vector()
		if o.Name() != name {
			name = ""
		}
	case *Table:
		return nil, fmt.Errorf("cannot apply %s to a %s and a Table", op, v.Kind())
	default:
		var err error
		if b, err = repeat(other, v.Len()); err != nil {
			return nil, err
		}
	}
	if reflected {
		a, b = b, a
	}
	res, err := binaryArrays(op, a, b)
	if err != nil {
		return nil, err
	}
	return v.withValues(name, res), nil
}

func binaryTable(op BinaryOp, t *Table, other interface{}, reflected bool) (interface{}, error) {
	columns := make([]Array, len(t.columns))
	for i, a := range t.columns {
		var b Array
		switch o := other.(type) {
		case *Table:
			if o.Len() != t.Len() {
				return nil, fmt.Errorf("cannot apply %s to Tables of lengths %d and %d", op, t.Len(), o.Len())
			}
			j := o.columnIndex(t.names[i])
			if j < 0 || len(o.names) != len(t.names) {
				return nil, fmt.Errorf("cannot apply %s to Tables with columns %v and %v", op, t.names, o.names)
			}
			b = o.columns[j]
		case vector:
			return nil, fmt.Errorf("cannot apply %s to a Table and a %s", op, o.Kind())
		default:
			var err error
			if b, err = repeat(other, t.Len()); err != nil {
				return nil, err
			}
		}
		x, y := a, b
		if reflected {
			x, y = b, a
		}
		res, err := binaryArrays(op, x, y)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", t.names[i], err)
		}
		columns[i] = res
	}
	return &Table{names: t.names, columns: columns, index: t.index}, nil
}

// Unary applies op elementwise to a Table, Series, Index or scalar
func Unary(op UnaryOp, x interface{}) (interface{}, error) {
	switch tx := x.(type) {
	case *Table:
		columns := make([]Array, len(tx.columns))
		for i, a := range tx.columns {
			res, err := unaryArray(op, a)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", tx.names[i], err)
			}
			columns[i] = res
		}
		return &Table{names: tx.names, columns: columns, index: tx.index}, nil
	case vector:
		res, err := unaryArray(op, tx.vector())
		if err != nil {
			return nil, err
		}
		return tx.withValues(tx.Name(), res), nil
	}
	a, err := repeat(x, 1)
	if err != nil {
		return nil, err
	}
	res, err := unaryArray(op, a)
	if err != nil {
		return nil, err
	}
	return res.Value(0), nil
}

func unaryArray(op UnaryOp, a Array) (Array, error) {
	switch ta := a.(type) {
	case Int64Array:
		res := make(Int64Array, len(ta))
		for i, v := range ta {
			if v < 0 {
				v = -v
			}
			res[i] = v
		}
		return res, nil
	case Float64Array:
		res := make(Float64Array, len(ta))
		for i, v := range ta {
			res[i] = math.Abs(v)
		}
		return res, nil
	}
	return nil, fmt.Errorf("bad operand dtype %s for %s", a.DType().Name(), op)
}

func isIntegral(a Array) bool {
	switch a.(type) {
	case Int64Array, BoolArray:
		return true
	}
	return false
}

func isNumeric(a Array) bool {
	_, isFloat := a.(Float64Array)
	return isFloat || isIntegral(a)
}

func asInt64s(a Array) []int64 {
	switch ta := a.(type) {
	case Int64Array:
		return ta
	case BoolArray:
		res := make([]int64, len(ta))
		for i, v := range ta {
			if v {
				res[i] = 1
			}
		}
		return res
	}
	return nil
}

func asFloat64s(a Array) []float64 {
	if fa, ok := a.(Float64Array); ok {
		return fa
	}
	ints := asInt64s(a)
	res := make([]float64, len(ints))
	for i, v := range ints {
		res[i] = float64(v)
	}
	return res
}

func binaryArrays(op BinaryOp, a Array, b Array) (Array, error) {
	if op.IsComparison() {
		return compareArrays(op, a, b)
	}
	switch {
	case isIntegral(a) && isIntegral(b) && op != OpTrueDiv:
		x, y := asInt64s(a), asInt64s(b)
		res := make(Int64Array, len(x))
		for i := range x {
			v, err := intArithmetic(op, x[i], y[i])
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case isNumeric(a) && isNumeric(b):
		x, y := asFloat64s(a), asFloat64s(b)
		res := make(Float64Array, len(x))
		for i := range x {
			res[i] = floatArithmetic(op, x[i], y[i])
		}
		return res, nil
	}
	sa, aIsString := a.(StringArray)
	sb, bIsString := b.(StringArray)
	if aIsString && bIsString && op == OpAdd {
		res := make(StringArray, len(sa))
		for i := range sa {
			res[i] = sa[i] + sb[i]
		}
		return res, nil
	}
	return nil, fmt.Errorf("unsupported operand dtypes for %s: %s and %s", op, a.DType().Name(), b.DType().Name())
}

func intArithmetic(op BinaryOp, x int64, y int64) (int64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpFloorDiv:
		if y == 0 {
			return 0, ZeroDivisionError{}
		}
		q := x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			q--
		}
		return q, nil
	case OpMod:
		if y == 0 {
			return 0, ZeroDivisionError{}
		}
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return r, nil
	}
	return 0, fmt.Errorf("unsupported integer operator %s", op)
}

func floatArithmetic(op BinaryOp, x float64, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpTrueDiv:
		return x / y
	case OpFloorDiv:
		return math.Floor(x / y)
	case OpMod:
		if y == 0 {
			return math.NaN()
		}
		r := math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return r
	}
	return math.NaN()
}

// holds reports whether a three-way comparison result satisfies op
func holds(op BinaryOp, c int) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	}
	return false
}

func compareWith(op BinaryOp, n int, cmp func(i int) int) BoolArray {
	res := make(BoolArray, n)
	for i := range res {
		res[i] = holds(op, cmp(i))
	}
	return res
}

func compareArrays(op BinaryOp, a Array, b Array) (Array, error) {
	n := a.Len()
	if _, ok := b.(*CategoricalArray); ok {
		if _, ok := a.(*CategoricalArray); !ok {
			return compareArrays(op.flip(), b, a)
		}
	}
	switch ta := a.(type) {
	case *CategoricalArray:
		return compareCategorical(op, ta, b)
	case StringArray:
		if tb, ok := b.(StringArray); ok {
			return compareWith(op, n, func(i int) int { return compareStrings(ta[i], tb[i]) }), nil
		}
	case *TimeArray:
		if tb, ok := b.(*TimeArray); ok {
			return compareWith(op, n, func(i int) int { return compareTimes(ta.Values[i], tb.Values[i]) }), nil
		}
	default:
		if isIntegral(a) && isIntegral(b) {
			x, y := asInt64s(a), asInt64s(b)
			return compareWith(op, n, func(i int) int { return compareInts(x[i], y[i]) }), nil
		} else if isNumeric(a) && isNumeric(b) {
			x, y := asFloat64s(a), asFloat64s(b)
			res := make(BoolArray, n)
			for i := range res {
				res[i] = compareFloats(op, x[i], y[i])
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("cannot compare dtypes %s and %s with %s", a.DType().Name(), b.DType().Name(), op)
}

// compareFloats compares directly so that NaN is unequal to everything
func compareFloats(op BinaryOp, x float64, y float64) bool {
	switch op {
	case OpEq:
		return x == y
	case OpNe:
		return x != y
	case OpLt:
		return x < y
	case OpLe:
		return x <= y
	case OpGt:
		return x > y
	case OpGe:
		return x >= y
	}
	return false
}

func compareCategorical(op BinaryOp, a *CategoricalArray, b Array) (Array, error) {
	n := a.Len()
	if op == OpEq || op == OpNe {
		switch tb := b.(type) {
		case StringArray:
			return compareWith(op, n, func(i int) int { return compareStrings(a.Label(i), tb[i]) }), nil
		case *CategoricalArray:
			return compareWith(op, n, func(i int) int { return compareStrings(a.Label(i), tb.Label(i)) }), nil
		}
		return nil, fmt.Errorf("cannot compare category with %s", b.DType().Name())
	}
	if !a.Type.Ordered {
		return nil, fmt.Errorf("unordered categoricals can only compare equality or not")
	}
	var codes []int32
	switch tb := b.(type) {
	case StringArray:
		codes = make([]int32, len(tb))
		for i, label := range tb {
			codes[i] = a.Type.Code(label)
			if codes[i] < 0 {
				return nil, fmt.Errorf("cannot compare a categorical with %q, which is not a category", label)
			}
		}
	case *CategoricalArray:
		if err := types.SameType(a.Type, tb.Type); err != nil {
			return nil, fmt.Errorf("categoricals can only be compared if they have the same categories and order: %w", err)
		}
		codes = tb.Codes
	default:
		return nil, fmt.Errorf("cannot compare category with %s", b.DType().Name())
	}
	return compareWith(op, n, func(i int) int { return compareInts(int64(a.Codes[i]), int64(codes[i])) }), nil
}
