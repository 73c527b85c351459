package lazyframe

import (
	"fmt"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
)

// Operator enumerates the operators which can be applied elementwise to Collections
type Operator int

const (
	// Abs is the unary absolute value operator
	Abs Operator = iota
	// Add is the + operator
	Add
	// Eq is the == operator
	Eq
	// Gt is the > operator
	Gt
	// Ge is the >= operator
	Ge
	// Lt is the < operator
	Lt
	// Le is the <= operator
	Le
	// Mod is the % operator
	Mod
	// Mul is the * operator
	Mul
	// Ne is the != operator
	Ne
	// Sub is the - operator
	Sub
	// TrueDiv is the / operator
	TrueDiv
	// FloorDiv is the // operator
	FloorDiv
)

// String returns the symbol of this Operator
func (op Operator) String() string {
	switch op {
	case Abs:
		return "abs"
	case Add:
		return "+"
	case Eq:
		return "=="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Mod:
		return "%"
	case Mul:
		return "*"
	case Ne:
		return "!="
	case Sub:
		return "-"
	case TrueDiv:
		return "/"
	case FloorDiv:
		return "//"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

func abs(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Unary(partition.OpAbs, args[0])
}

func add(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpAdd, args[0], args[1])
}

func eq(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpEq, args[0], args[1])
}

func gt(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpGt, args[0], args[1])
}

func ge(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpGe, args[0], args[1])
}

func lt(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpLt, args[0], args[1])
}

func le(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpLe, args[0], args[1])
}

func mod(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpMod, args[0], args[1])
}

func mul(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpMul, args[0], args[1])
}

func ne(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpNe, args[0], args[1])
}

func sub(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpSub, args[0], args[1])
}

func truediv(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpTrueDiv, args[0], args[1])
}

func floordiv(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpFloorDiv, args[0], args[1])
}

var unaryOperators = map[Operator]graph.Func{
	Abs: abs,
}

var binaryOperators = map[Operator]graph.Func{
	Add:      add,
	Eq:       eq,
	Gt:       gt,
	Ge:       ge,
	Lt:       lt,
	Le:       le,
	Mod:      mod,
	Mul:      mul,
	Ne:       ne,
	Sub:      sub,
	TrueDiv:  truediv,
	FloorDiv: floordiv,
}

func applyBinary(op Operator, left interface{}, right interface{}) (Collection, error) {
	fn, ok := binaryOperators[op]
	if !ok {
		return nil, errors.InvalidOperandsError{Reason: fmt.Sprintf("%s is not a binary operator", op)}
	}
	return MapPartitions(fn, []interface{}{left, right})
}

func applyUnary(op Operator, x interface{}) (Collection, error) {
	fn, ok := unaryOperators[op]
	if !ok {
		return nil, errors.InvalidOperandsError{Reason: fmt.Sprintf("%s is not a unary operator", op)}
	}
	return MapPartitions(fn, []interface{}{x})
}

// Binary applies a binary Operator with this Series as the left operand
func (s *Series) Binary(op Operator, other interface{}) (Collection, error) {
	return applyBinary(op, s.self, other)
}

// RBinary applies a binary Operator with this Series as the right operand
func (s *Series) RBinary(op Operator, other interface{}) (Collection, error) {
	return applyBinary(op, other, s.self)
}

// Unary applies a unary Operator to this Series
func (s *Series) Unary(op Operator) (Collection, error) {
	return applyUnary(op, s.self)
}

// Abs returns the absolute value of every element
func (s *Series) Abs() (Collection, error) { return s.Unary(Abs) }

// Add returns s + other
func (s *Series) Add(other interface{}) (Collection, error) { return s.Binary(Add, other) }

// Sub returns s - other
func (s *Series) Sub(other interface{}) (Collection, error) { return s.Binary(Sub, other) }

// Mul returns s * other
func (s *Series) Mul(other interface{}) (Collection, error) { return s.Binary(Mul, other) }

// TrueDiv returns s / other, as floats
func (s *Series) TrueDiv(other interface{}) (Collection, error) { return s.Binary(TrueDiv, other) }

// FloorDiv returns s // other, rounded towards negative infinity
func (s *Series) FloorDiv(other interface{}) (Collection, error) { return s.Binary(FloorDiv, other) }

// Mod returns s % other, taking the sign of other
func (s *Series) Mod(other interface{}) (Collection, error) { return s.Binary(Mod, other) }

// Eq returns s == other
func (s *Series) Eq(other interface{}) (Collection, error) { return s.Binary(Eq, other) }

// Ne returns s != other
func (s *Series) Ne(other interface{}) (Collection, error) { return s.Binary(Ne, other) }

// Lt returns s < other
func (s *Series) Lt(other interface{}) (Collection, error) { return s.Binary(Lt, other) }

// Le returns s <= other
func (s *Series) Le(other interface{}) (Collection, error) { return s.Binary(Le, other) }

// Gt returns s > other
func (s *Series) Gt(other interface{}) (Collection, error) { return s.Binary(Gt, other) }

// Ge returns s >= other
func (s *Series) Ge(other interface{}) (Collection, error) { return s.Binary(Ge, other) }
