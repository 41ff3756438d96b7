package lib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	stream := NewTokenStream(context.Background(), "hello")

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeIdentifier, "hello", 1)
}

func TestNextDoneMulti(t *testing.T) {
	stream := NewTokenStream(context.Background(), "hello")

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeIdentifier, "hello", 1)

	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeEOF, "", 1)

	_, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)

	_, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestNextTimeout(t *testing.T) {
	oldTimeout := TokenReadTimeout
	TokenReadTimeout = 1 * time.Microsecond
	defer func() {
		TokenReadTimeout = oldTimeout
	}()

	// nothing ever writes to this stream
	stream := &TokenStream{ctx: context.Background(), tokChan: make(chan Token)}
	_, done, err := stream.Next()
	require.True(t, errors.Is(err, ErrTokenTimeout))
	require.False(t, done)
}

func TestNextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := &TokenStream{ctx: ctx, tokChan: make(chan Token)}
	_, done, err := stream.Next()
	require.True(t, errors.Is(err, context.Canceled))
	require.False(t, done)
}

func TestPeek(t *testing.T) {
	stream := NewTokenStream(context.Background(), "hello")

	tok, done, err := stream.Peek()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeIdentifier, "hello", 1)

	tok, done, err = stream.Peek()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeIdentifier, "hello", 1)

	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeIdentifier, "hello", 1)

	tok, _, err = stream.Next()
	require.NoError(t, err)
	requireTok(t, tok, TokenTypeEOF, "", 1)
}

func TestStreamScanError(t *testing.T) {
	stream := NewTokenStream(context.Background(), "1 # 2")

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	requireTok(t, tok, TokenTypeNumber, "1", 1)

	_, done, err = stream.Next()
	require.True(t, done)

	var scanErr *ScanError
	require.True(t, errors.As(err, &scanErr))
	require.Equal(t, 3, scanErr.Col)
}

func TestCollect(t *testing.T) {
	tokens, err := Collect(NewTokenStream(context.Background(), "print -x;"))
	require.NoError(t, err)

	expected, err := ScanAll("print -x;")
	require.NoError(t, err)
	require.Equal(t, expected, tokens)
}

func TestCollectError(t *testing.T) {
	_, err := Collect(NewTokenStream(context.Background(), `"open`))
	require.Error(t, err)
}
