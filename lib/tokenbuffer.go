package lib

import (
	"context"
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

// TokenReadTimeout bounds how long Next waits for the scanner.
var TokenReadTimeout = 1 * time.Second

var ErrTokenTimeout = errors.New("timed out waiting for next token")

// TokenReader is the pull side of a token source.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// TokenStream scans source on its own goroutine and hands the tokens out
// one at a time. It is meant for a single reader.
type TokenStream struct {
	ctx     context.Context
	tokChan chan Token
	scanErr error
	peeked  *peekResult
}

var _ TokenReader = (*TokenStream)(nil)

// NewTokenStream starts scanning src. Cancelling ctx unblocks the scanner
// goroutine and any pending Next.
func NewTokenStream(ctx context.Context, src string) *TokenStream {
	ts := &TokenStream{
		ctx:     ctx,
		tokChan: make(chan Token, TOKEN_BUF_SIZE),
	}

	go func() {
		// scanErr is published by closing tokChan
		ts.scanErr = Scan(src, ts.write)
		close(ts.tokChan)
	}()

	return ts
}

func (ts *TokenStream) write(tok Token) {
	select {
	case ts.tokChan <- tok:
	case <-ts.ctx.Done():
	}
}

// Next returns the next token. done is true once the scanner has finished and
// every token was read; a scan error is returned at that point instead.
func (ts *TokenStream) Next() (tok Token, done bool, err error) {
	if ts.peeked != nil {
		res := ts.peeked
		ts.peeked = nil
		return res.tok, res.done, res.err
	}

	timer := time.NewTimer(TokenReadTimeout)
	defer timer.Stop()

	select {
	case tok, ok := <-ts.tokChan:
		if !ok {
			if ts.scanErr != nil {
				return Token{}, true, ts.scanErr
			}
			return Token{}, true, nil
		}
		return tok, false, nil
	case <-ts.ctx.Done():
		return Token{}, false, ts.ctx.Err()
	case <-timer.C:
		return Token{}, false, ErrTokenTimeout
	}
}

func (ts *TokenStream) Peek() (Token, bool, error) {
	if ts.peeked != nil {
		return ts.peeked.tok, ts.peeked.done, ts.peeked.err
	}
	tok, done, err := ts.Next()
	ts.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

// Collect drains the stream.
func Collect(r TokenReader) ([]Token, error) {
	tokens := []Token{}
	for {
		tok, done, err := r.Next()
		if err != nil {
			return nil, err
		}
		if done {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
