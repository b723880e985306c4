package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

func newMain(kind token.Kind, text string) *token.Token {
	return &token.Token{Kind: kind, Text: text}
}

func TestStream_NextPrev(t *testing.T) {
	a, b, c := newMain(token.IDENT, "a"), newMain(token.IDENT, "b"), newMain(token.IDENT, "c")
	s := token.NewStream([]*token.Token{a, b, c})

	assert.Same(t, b, s.Next(a))
	assert.Same(t, c, s.Next(b))
	assert.Nil(t, s.Next(c))

	assert.Nil(t, s.Prev(a))
	assert.Same(t, a, s.Prev(b))
	assert.Same(t, b, s.Prev(c))
}

func TestStream_InsertMoveRemove(t *testing.T) {
	a, b, c := newMain(token.IDENT, "a"), newMain(token.IDENT, "b"), newMain(token.IDENT, "c")
	s := token.NewStream([]*token.Token{a, b, c})

	n := newMain(token.IDENT, "n")
	s.InsertAfter(a, n)
	require.Equal(t, []*token.Token{a, n, b, c}, s.All())

	s.MoveBefore(a, c)
	require.Equal(t, []*token.Token{c, a, n, b}, s.All())

	s.Remove(n, true)
	require.Equal(t, []*token.Token{c, a, b}, s.All())
	assert.True(t, n.HasFlags(token.FlagDiscard))
}

func TestStream_IsDecl(t *testing.T) {
	kw := newMain(token.STRUCT, "struct")
	tag := newMain(token.IDENT, "foo")
	brace := newMain(token.LBRACE, "{")
	s := token.NewStream([]*token.Token{kw, tag, brace})

	assert.True(t, s.IsDecl(tag, token.STRUCT))
	assert.False(t, s.IsDecl(tag, token.UNION))
	assert.False(t, s.IsDecl(kw, token.STRUCT)) // kw's next token is the tag, not '{'
}
