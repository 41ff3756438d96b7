package lib

import (
	"fmt"
	"strconv"
)

type TokenType uint8

const (
	// Single-character tokens.
	TokenTypeLeftParen TokenType = iota
	TokenTypeRightParen
	TokenTypeLeftBrace
	TokenTypeRightBrace
	TokenTypeComma
	TokenTypeDot
	TokenTypeMinus
	TokenTypePlus
	TokenTypeSemicolon
	TokenTypeSlash
	TokenTypeStar

	// One or two character tokens.
	TokenTypeBang
	TokenTypeBangEqual
	TokenTypeEqual
	TokenTypeEqualEqual
	TokenTypeGreater
	TokenTypeGreaterEqual
	TokenTypeLess
	TokenTypeLessEqual

	// Literals.
	TokenTypeIdentifier
	TokenTypeString
	TokenTypeNumber

	// Keywords.
	TokenTypeAnd
	TokenTypeClass
	TokenTypeElse
	TokenTypeFalse
	TokenTypeFun
	TokenTypeFor
	TokenTypeIf
	TokenTypeNil
	TokenTypeOr
	TokenTypePrint
	TokenTypeReturn
	TokenTypeThis
	TokenTypeTrue
	TokenTypeVar
	TokenTypeWhile

	TokenTypeEOF
)

var tokenTypeNames = [...]string{
	TokenTypeLeftParen:    "LeftParen",
	TokenTypeRightParen:   "RightParen",
	TokenTypeLeftBrace:    "LeftBrace",
	TokenTypeRightBrace:   "RightBrace",
	TokenTypeComma:        "Comma",
	TokenTypeDot:          "Dot",
	TokenTypeMinus:        "Minus",
	TokenTypePlus:         "Plus",
	TokenTypeSemicolon:    "Semicolon",
	TokenTypeSlash:        "Slash",
	TokenTypeStar:         "Star",
	TokenTypeBang:         "Bang",
	TokenTypeBangEqual:    "BangEqual",
	TokenTypeEqual:        "Equal",
	TokenTypeEqualEqual:   "EqualEqual",
	TokenTypeGreater:      "Greater",
	TokenTypeGreaterEqual: "GreaterEqual",
	TokenTypeLess:         "Less",
	TokenTypeLessEqual:    "LessEqual",
	TokenTypeIdentifier:   "Identifier",
	TokenTypeString:       "String",
	TokenTypeNumber:       "Number",
	TokenTypeAnd:          "And",
	TokenTypeClass:        "Class",
	TokenTypeElse:         "Else",
	TokenTypeFalse:        "False",
	TokenTypeFun:          "Fun",
	TokenTypeFor:          "For",
	TokenTypeIf:           "If",
	TokenTypeNil:          "Nil",
	TokenTypeOr:           "Or",
	TokenTypePrint:        "Print",
	TokenTypeReturn:       "Return",
	TokenTypeThis:         "This",
	TokenTypeTrue:         "True",
	TokenTypeVar:          "Var",
	TokenTypeWhile:        "While",
	TokenTypeEOF:          "Eof",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// IsLiteral reports whether tokens of this type carry a literal value.
func (tt TokenType) IsLiteral() bool {
	return tt == TokenTypeIdentifier || tt == TokenTypeString || tt == TokenTypeNumber
}

var keywords = map[string]TokenType{
	"and":    TokenTypeAnd,
	"class":  TokenTypeClass,
	"else":   TokenTypeElse,
	"false":  TokenTypeFalse,
	"fun":    TokenTypeFun,
	"for":    TokenTypeFor,
	"if":     TokenTypeIf,
	"nil":    TokenTypeNil,
	"or":     TokenTypeOr,
	"print":  TokenTypePrint,
	"return": TokenTypeReturn,
	"this":   TokenTypeThis,
	"true":   TokenTypeTrue,
	"var":    TokenTypeVar,
	"while":  TokenTypeWhile,
}

// Keyword looks up a reserved word.
func Keyword(word string) (TokenType, bool) {
	tt, ok := keywords[word]
	return tt, ok
}

// Token is a scanned lexeme. It is never modified after construction.
type Token struct {
	tokType    TokenType
	lexeme     string
	literal    Value
	hasLiteral bool
	line       int
}

// NewToken builds a token. literal may be nil.
func NewToken(tokType TokenType, lexeme string, literal *Value, line int) Token {
	tok := Token{tokType: tokType, lexeme: lexeme, line: line}
	if literal != nil {
		tok.literal = *literal
		tok.hasLiteral = true
	}
	return tok
}

func (t Token) Type() TokenType {
	return t.tokType
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Literal() (Value, bool) {
	return t.literal, t.hasLiteral
}

// Line is 1-based.
func (t Token) Line() int {
	return t.line
}

func (t Token) String() string {
	if !t.hasLiteral {
		return fmt.Sprintf("%s %s", t.tokType, t.lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.tokType, t.lexeme, t.literal)
}
