package lib

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindIdentifier
	KindString
	KindNumber
	KindBool
)

var kindNames = [...]string{
	KindNil:        "Nil",
	KindIdentifier: "Identifier",
	KindString:     "String",
	KindNumber:     "Number",
	KindBool:       "Bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is either a literal carried by a token or the result of evaluating an
// expression. Only the field matching kind is meaningful, the others stay at
// their zero value so that two Values compare equal with == exactly when they
// are the same variant holding the same payload.
//
// The zero Value is Nil.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
}

// Nil is the nil value.
var Nil = Value{}

// NewIdentifier wraps an identifier name. It is only produced by the scanner;
// evaluation never creates one.
func NewIdentifier(name string) Value {
	return Value{kind: KindIdentifier, text: name}
}

func NewString(s string) Value {
	return Value{kind: KindString, text: s}
}

func NewNumber(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func NewBool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) AsIdentifier() (string, bool) {
	if v.kind != KindIdentifier {
		return "", false
	}
	return v.text, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// IsTruthy reports whether v counts as true in a condition. Only nil and false
// are falsy; 0 and "" are truthy.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.flag
	default:
		return true
	}
}

// Equal is the result of left == right as a language value.
func Equal(left, right Value) Value {
	return NewBool(left == right)
}

// String renders the structural debug form, e.g. Number(3.0) or
// String("abc"). It is a diagnostic format, not what print shows.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "Nil"
	case KindIdentifier:
		return "Identifier(" + strconv.Quote(v.text) + ")"
	case KindString:
		return "String(" + strconv.Quote(v.text) + ")"
	case KindNumber:
		return "Number(" + formatNumber(v.num) + ")"
	case KindBool:
		return "Bool(" + strconv.FormatBool(v.flag) + ")"
	default:
		return v.kind.String()
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "+Inf"
	case math.IsInf(n, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
