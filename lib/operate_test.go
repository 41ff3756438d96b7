package lib

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func negate(n float64) float64 { return -n }

func TestOperateNumber(t *testing.T) {
	for _, v := range allVariants() {
		result, ok := v.OperateNumber(negate)
		n, isNumber := v.AsNumber()
		require.Equal(t, isNumber, ok, v.String())
		if !isNumber {
			require.Equal(t, Value{}, result)
			continue
		}
		got, _ := result.AsNumber()
		if !math.IsNaN(n) {
			require.Equal(t, -n, got)
		}
	}

	result, ok := NewNumber(2).OperateNumber(func(n float64) float64 { return n * 10 })
	require.True(t, ok)
	require.Equal(t, NewNumber(20), result)
}

func TestOperateString(t *testing.T) {
	result, ok := NewString("abc").OperateString(strings.ToUpper)
	require.True(t, ok)
	require.Equal(t, NewString("ABC"), result)

	_, ok = NewIdentifier("abc").OperateString(strings.ToUpper)
	require.False(t, ok)

	_, ok = NewNumber(1).OperateString(strings.ToUpper)
	require.False(t, ok)
}

func TestOperateIdentifierYieldsString(t *testing.T) {
	result, ok := NewIdentifier("count").OperateIdentifier(strings.ToUpper)
	require.True(t, ok)
	require.Equal(t, NewString("COUNT"), result)

	_, ok = NewString("count").OperateIdentifier(strings.ToUpper)
	require.False(t, ok)
}

func TestOperateBool(t *testing.T) {
	result, ok := NewBool(true).OperateBool(not)
	require.True(t, ok)
	require.Equal(t, NewBool(false), result)

	_, ok = Nil.OperateBool(not)
	require.False(t, ok)

	_, ok = NewNumber(0).OperateBool(not)
	require.False(t, ok)
}

func TestOperateTruthy(t *testing.T) {
	for _, v := range allVariants() {
		require.Equal(t, NewBool(!v.IsTruthy()), v.OperateTruthy(not), v.String())
	}
	require.Equal(t, NewBool(false), NewNumber(0).OperateTruthy(not))
	require.Equal(t, NewBool(true), Nil.OperateTruthy(not))
}

func TestOperateNumberBinary(t *testing.T) {
	plus := func(l, r float64) float64 { return l + r }
	minus := func(l, r float64) float64 { return l - r }

	result, ok := NewNumber(2).OperateNumberBinary(NewNumber(3), plus)
	require.True(t, ok)
	require.Equal(t, NewNumber(5), result)

	result, ok = NewNumber(2).OperateNumberBinary(NewNumber(3), minus)
	require.True(t, ok)
	require.Equal(t, NewNumber(-1), result)

	_, ok = NewString("x").OperateNumberBinary(NewNumber(3), plus)
	require.False(t, ok)

	_, ok = NewNumber(3).OperateNumberBinary(NewString("x"), plus)
	require.False(t, ok)

	_, ok = NewNumber(3).OperateNumberBinary(Nil, plus)
	require.False(t, ok)
}

func TestOperateNumberBinaryDivideByZero(t *testing.T) {
	result, ok := NewNumber(1).OperateNumberBinary(NewNumber(0), func(l, r float64) float64 { return l / r })
	require.True(t, ok)
	require.Equal(t, "Number(+Inf)", result.String())
}

func TestBinaryCmpNumbers(t *testing.T) {
	result, ok := NewNumber(3).BinaryCmp(NewNumber(5), Less[float64])
	require.True(t, ok)
	require.Equal(t, NewBool(true), result)

	result, ok = NewNumber(3).BinaryCmp(NewNumber(5), Greater[float64])
	require.True(t, ok)
	require.Equal(t, NewBool(false), result)

	result, ok = NewNumber(5).BinaryCmp(NewNumber(5), LessEqual[float64])
	require.True(t, ok)
	require.Equal(t, NewBool(true), result)

	result, ok = NewNumber(5).BinaryCmp(NewNumber(5), GreaterEqual[float64])
	require.True(t, ok)
	require.Equal(t, NewBool(true), result)
}

func TestBinaryCmpIdentifiers(t *testing.T) {
	_, ok := NewIdentifier("x").BinaryCmp(NewNumber(1), Less[float64])
	require.False(t, ok)

	_, ok = NewNumber(1).BinaryCmp(NewIdentifier("x"), Less[float64])
	require.False(t, ok)

	_, ok = NewIdentifier("x").BinaryCmp(NewIdentifier("y"), Less[float64])
	require.False(t, ok)
}

func TestBinaryCmpUnorderedPairs(t *testing.T) {
	pairs := [][2]Value{
		{NewString("a"), NewString("b")},
		{NewBool(false), NewBool(true)},
		{Nil, Nil},
		{Nil, NewNumber(1)},
		{NewNumber(1), Nil},
		{NewNumber(1), NewString("2")},
		{NewBool(true), NewNumber(1)},
	}
	for _, pair := range pairs {
		_, ok := pair[0].BinaryCmp(pair[1], Less[float64])
		require.False(t, ok, "%s < %s", pair[0], pair[1])
	}
}

func TestOrderingPredicates(t *testing.T) {
	require.True(t, Less(1, 2))
	require.False(t, Less("b", "a"))
	require.True(t, LessEqual(2.0, 2.0))
	require.True(t, Greater("b", "a"))
	require.False(t, GreaterEqual(1, 2))
}
