package lib

import (
	"fmt"
	"strings"
)

// TypeError is raised when an operator is applied to operands whose types it
// does not support.
type TypeError struct {
	Operator Token
	Operands []Value
}

func (e *TypeError) Error() string {
	kinds := make([]string, len(e.Operands))
	for i, v := range e.Operands {
		kinds[i] = v.Kind().String()
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': unsupported operand type(s) for %s: %s",
		e.Operator.Line(),
		e.Operator.Lexeme(),
		e.Operator.Lexeme(),
		strings.Join(kinds, ", "))
}

func typeError(op Token, operands ...Value) error {
	return &TypeError{Operator: op, Operands: operands}
}

func notOperator(op Token, arity string) error {
	return fmt.Errorf("[line %d] Error at '%s': not a %s operator", op.Line(), op.Lexeme(), arity)
}

func not(b bool) bool { return !b }

// Unary applies ! or - to right.
func Unary(op Token, right Value) (Value, error) {
	if right.Kind() == KindIdentifier {
		return Value{}, typeError(op, right)
	}

	switch op.Type() {
	case TokenTypeBang:
		return right.OperateTruthy(not), nil
	case TokenTypeMinus:
		if v, ok := right.OperateNumber(func(n float64) float64 { return -n }); ok {
			return v, nil
		}
		return Value{}, typeError(op, right)
	default:
		return Value{}, notOperator(op, "unary")
	}
}

// Binary applies an arithmetic, comparison or equality operator. The logical
// operators are not handled here because their right operand is evaluated
// lazily, see ShortCircuit.
func Binary(left Value, op Token, right Value) (Value, error) {
	if left.Kind() == KindIdentifier || right.Kind() == KindIdentifier {
		return Value{}, typeError(op, left, right)
	}

	var (
		result Value
		ok     bool
	)

	switch op.Type() {
	case TokenTypeMinus:
		result, ok = left.OperateNumberBinary(right, func(l, r float64) float64 { return l - r })
	case TokenTypeStar:
		result, ok = left.OperateNumberBinary(right, func(l, r float64) float64 { return l * r })
	case TokenTypeSlash:
		result, ok = left.OperateNumberBinary(right, func(l, r float64) float64 { return l / r })
	case TokenTypePlus:
		result, ok = add(left, right)
	case TokenTypeGreater:
		result, ok = left.BinaryCmp(right, Greater[float64])
	case TokenTypeGreaterEqual:
		result, ok = left.BinaryCmp(right, GreaterEqual[float64])
	case TokenTypeLess:
		result, ok = left.BinaryCmp(right, Less[float64])
	case TokenTypeLessEqual:
		result, ok = left.BinaryCmp(right, LessEqual[float64])
	case TokenTypeEqualEqual:
		result, ok = Equal(left, right), true
	case TokenTypeBangEqual:
		result, ok = Equal(left, right).OperateBool(not)
	default:
		return Value{}, notOperator(op, "binary")
	}

	if !ok {
		return Value{}, typeError(op, left, right)
	}
	return result, nil
}

// add sums two numbers or concatenates two strings.
func add(left, right Value) (Value, bool) {
	if sum, ok := left.OperateNumberBinary(right, func(l, r float64) float64 { return l + r }); ok {
		return sum, true
	}
	r, ok := right.AsString()
	if !ok {
		return Value{}, false
	}
	return left.OperateString(func(l string) string {
		return l + r
	})
}

func IsLogical(tokType TokenType) bool {
	return tokType == TokenTypeAnd || tokType == TokenTypeOr
}

// ShortCircuit decides whether a logical operator's result is already known
// from its left operand. When it is, that result is left itself and the right
// operand must not be evaluated.
func ShortCircuit(op Token, left Value) (Value, bool) {
	switch op.Type() {
	case TokenTypeOr:
		if left.IsTruthy() {
			return left, true
		}
	case TokenTypeAnd:
		if !left.IsTruthy() {
			return left, true
		}
	}
	return Value{}, false
}

// LiteralValue is the runtime value a literal token stands for. Identifier
// tokens are names to resolve, not values, and report false.
func LiteralValue(tok Token) (Value, bool) {
	switch tok.Type() {
	case TokenTypeString, TokenTypeNumber:
		return tok.Literal()
	case TokenTypeTrue:
		return NewBool(true), true
	case TokenTypeFalse:
		return NewBool(false), true
	case TokenTypeNil:
		return Nil, true
	default:
		return Value{}, false
	}
}
