package main

import (
	"fmt"

	"github.com/graeme-hill/loxcore-go/lib"
)

// evalTokens evaluates a literal, a unary expression or a binary expression
// whose operands are literals, e.g. `-3`, `1 < 2` or `"a" + "b"`.
func evalTokens(tokens []lib.Token) (lib.Value, error) {
	if n := len(tokens); n > 0 && tokens[n-1].Type() == lib.TokenTypeEOF {
		tokens = tokens[:n-1]
	}

	switch len(tokens) {
	case 1:
		return operand(tokens[0])
	case 2:
		right, err := operand(tokens[1])
		if err != nil {
			return lib.Value{}, err
		}
		return lib.Unary(tokens[0], right)
	case 3:
		left, err := operand(tokens[0])
		if err != nil {
			return lib.Value{}, err
		}
		op := tokens[1]
		if lib.IsLogical(op.Type()) {
			if v, ok := lib.ShortCircuit(op, left); ok {
				return v, nil
			}
			return operand(tokens[2])
		}
		right, err := operand(tokens[2])
		if err != nil {
			return lib.Value{}, err
		}
		return lib.Binary(left, op, right)
	default:
		return lib.Value{}, fmt.Errorf("expected a literal, a unary or a binary expression, got %d tokens", len(tokens))
	}
}

func operand(tok lib.Token) (lib.Value, error) {
	v, ok := lib.LiteralValue(tok)
	if !ok {
		return lib.Value{}, fmt.Errorf("[line %d] Error at '%s': expected a literal", tok.Line(), tok.Lexeme())
	}
	return v, nil
}
