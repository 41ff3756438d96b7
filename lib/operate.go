package lib

import "cmp"

// The Operate* combinators apply f when v holds the expected variant and
// report false otherwise. A false result means the operator is not defined
// for the operand's type; turning that into an error is up to the caller.

// OperateIdentifier transforms an identifier's name. The result is a String:
// identifiers never leave the scanner as values.
func (v Value) OperateIdentifier(f func(string) string) (Value, bool) {
	name, ok := v.AsIdentifier()
	if !ok {
		return Value{}, false
	}
	return NewString(f(name)), true
}

func (v Value) OperateString(f func(string) string) (Value, bool) {
	s, ok := v.AsString()
	if !ok {
		return Value{}, false
	}
	return NewString(f(s)), true
}

func (v Value) OperateNumber(f func(float64) float64) (Value, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return Value{}, false
	}
	return NewNumber(f(n)), true
}

func (v Value) OperateBool(f func(bool) bool) (Value, bool) {
	b, ok := v.AsBool()
	if !ok {
		return Value{}, false
	}
	return NewBool(f(b)), true
}

// OperateTruthy is defined for every variant.
func (v Value) OperateTruthy(f func(bool) bool) Value {
	return NewBool(f(v.IsTruthy()))
}

// OperateNumberBinary applies f when both v and right are numbers.
func (v Value) OperateNumberBinary(right Value, f func(l, r float64) float64) (Value, bool) {
	r, ok := right.AsNumber()
	if !ok {
		return Value{}, false
	}
	return v.OperateNumber(func(l float64) float64 {
		return f(l, r)
	})
}

// BinaryCmp evaluates an ordering between v and right. Only two numbers are
// ordered; every other pairing, including any identifier, reports false.
func (v Value) BinaryCmp(right Value, pred func(l, r float64) bool) (Value, bool) {
	if v.kind == KindIdentifier || right.kind == KindIdentifier {
		return Value{}, false
	}
	l, lok := v.AsNumber()
	r, rok := right.AsNumber()
	if !lok || !rok {
		return Value{}, false
	}
	return NewBool(pred(l, r)), true
}

// Ordering predicates for BinaryCmp.

func Less[T cmp.Ordered](l, r T) bool { return l < r }

func LessEqual[T cmp.Ordered](l, r T) bool { return l <= r }

func Greater[T cmp.Ordered](l, r T) bool { return l > r }

func GreaterEqual[T cmp.Ordered](l, r T) bool { return l >= r }
