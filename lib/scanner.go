package lib

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

type charLocation struct {
	line int
	col  int
}

type charInfo struct {
	ch       rune
	location charLocation
}

// ScanError reports source text the scanner could not turn into a token.
type ScanError struct {
	Line    int
	Col     int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d, col %d] Error: %s", e.Line, e.Col, e.Message)
}

// Scan tokenizes src, calling emit for every token in order. The last token
// emitted on success is always an EOF token.
func Scan(src string, emit func(Token)) error {
	l := newLexer(src, emit)
	return l.scan()
}

// ScanAll collects the tokens of src into a slice.
func ScanAll(src string) ([]Token, error) {
	tokens := []Token{}
	err := Scan(src, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(Token)
}

func newLexer(src string, emit func(Token)) *lexer {
	runes := []rune(src)
	return &lexer{
		src:              runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.src[i], true
}

func (l *lexer) advance() (charInfo, bool) {
	ch, ok := l.peek(0)
	if !ok {
		return charInfo{}, false
	}
	info := charInfo{ch: ch, location: l.currentLocation}
	l.currentCharIndex++
	if ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

// match consumes the next char if it is expected.
func (l *lexer) match(expected rune) bool {
	ch, ok := l.peek(0)
	if !ok || ch != expected {
		return false
	}
	_, _ = l.advance()
	return true
}

func (l *lexer) scan() error {
	for {
		l.resetToken()
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	l.emitCallback(NewToken(TokenTypeEOF, "", nil, l.currentLocation.line))
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}

	switch ch := chInfo.ch; ch {
	case '(':
		l.emit(TokenTypeLeftParen)
	case ')':
		l.emit(TokenTypeRightParen)
	case '{':
		l.emit(TokenTypeLeftBrace)
	case '}':
		l.emit(TokenTypeRightBrace)
	case ',':
		l.emit(TokenTypeComma)
	case '.':
		l.emit(TokenTypeDot)
	case '-':
		l.emit(TokenTypeMinus)
	case '+':
		l.emit(TokenTypePlus)
	case ';':
		l.emit(TokenTypeSemicolon)
	case '*':
		l.emit(TokenTypeStar)
	case '!':
		l.emitIfNext('=', TokenTypeBangEqual, TokenTypeBang)
	case '=':
		l.emitIfNext('=', TokenTypeEqualEqual, TokenTypeEqual)
	case '<':
		l.emitIfNext('=', TokenTypeLessEqual, TokenTypeLess)
	case '>':
		l.emitIfNext('=', TokenTypeGreaterEqual, TokenTypeGreater)
	case '/':
		if l.match('/') {
			l.eatComment()
		} else {
			l.emit(TokenTypeSlash)
		}
	case '"':
		return true, l.scanString()
	default:
		switch {
		case isDigit(ch):
			return true, l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		case unicode.IsSpace(ch):
			// line and column are tracked by advance
		default:
			return false, l.errorf(chInfo.location, "Unexpected character.")
		}
	}

	return true, nil
}

func (l *lexer) lexeme() string {
	return string(l.src[l.tokenStartIndex:l.currentCharIndex])
}

func (l *lexer) emit(tokType TokenType) {
	l.emitCallback(NewToken(tokType, l.lexeme(), nil, l.tokenLocation.line))
}

func (l *lexer) emitLiteral(tokType TokenType, literal Value) {
	l.emitCallback(NewToken(tokType, l.lexeme(), &literal, l.tokenLocation.line))
}

func (l *lexer) emitIfNext(expected rune, matched TokenType, otherwise TokenType) {
	if l.match(expected) {
		l.emit(matched)
	} else {
		l.emit(otherwise)
	}
}

func (l *lexer) eatComment() {
	for {
		ch, ok := l.peek(0)
		if !ok || ch == '\n' {
			return
		}
		_, _ = l.advance()
	}
}

// Reads after the opening quote. Strings may span lines and have no escapes.
func (l *lexer) scanString() error {
	for {
		current, ok := l.advance()
		if !ok {
			return l.errorf(l.currentLocation, "Unterminated string.")
		}
		if current.ch == '"' {
			break
		}
	}

	text := string(l.src[l.tokenStartIndex+1 : l.currentCharIndex-1])
	l.emitLiteral(TokenTypeString, NewString(text))
	return nil
}

func (l *lexer) scanNumber() error {
	l.eatDigits()

	// A fractional part needs at least one digit after the dot.
	if dot, ok := l.peek(0); ok && dot == '.' {
		if next, ok := l.peek(1); ok && isDigit(next) {
			_, _ = l.advance()
			l.eatDigits()
		}
	}

	n, err := strconv.ParseFloat(l.lexeme(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.errorf(l.tokenLocation, "Invalid number %s.", l.lexeme())
	}
	l.emitLiteral(TokenTypeNumber, NewNumber(n))
	return nil
}

func (l *lexer) eatDigits() {
	for {
		ch, ok := l.peek(0)
		if !ok || !isDigit(ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) scanIdentifier() {
	for {
		ch, ok := l.peek(0)
		if !ok || !(isAlpha(ch) || isDigit(ch)) {
			break
		}
		_, _ = l.advance()
	}

	word := l.lexeme()
	if tokType, ok := Keyword(word); ok {
		l.emit(tokType)
		return
	}
	l.emitLiteral(TokenTypeIdentifier, NewIdentifier(word))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func (l *lexer) errorf(loc charLocation, msg string, args ...interface{}) error {
	return &ScanError{
		Line:    loc.line,
		Col:     loc.col,
		Message: fmt.Sprintf(msg, args...),
	}
}
