package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

func TestToken_HasLine(t *testing.T) {
	oneLine := &token.Token{Kind: token.IDENT, Text: "foo"}
	oneLine.Suffixes = []*token.Token{{Kind: token.SPACE, Flags: token.FlagOptline}}

	twoLines := &token.Token{Kind: token.IDENT, Text: "foo"}
	twoLines.Suffixes = []*token.Token{{Kind: token.SPACE, Flags: token.FlagOptline}}

	optSpace := &token.Token{Kind: token.IDENT, Text: "foo"}
	optSpace.Suffixes = []*token.Token{{Kind: token.SPACE, Flags: token.FlagOptspace}}

	for _, tc := range []struct {
		name   string
		tok    *token.Token
		nlines int
		want   bool
	}{
		{"single newline suffix counts as 1 line", oneLine, 1, true},
		{"single newline suffix is not 2 lines", twoLines, 2, false},
		{"optional space suffix is not a line", optSpace, 1, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tok.HasLine(tc.nlines))
		})
	}
}

func TestToken_MovePrefixes(t *testing.T) {
	src := &token.Token{Kind: token.IDENT, Text: "a"}
	dst := &token.Token{Kind: token.IDENT, Text: "b"}
	c1 := &token.Token{Kind: token.COMMENT, Text: "/* c1 */"}
	c2 := &token.Token{Kind: token.COMMENT, Text: "/* c2 */"}
	src.Prefixes = []*token.Token{c1, c2}

	src.MovePrefixes(dst)

	assert.Empty(t, src.Prefixes)
	require.Len(t, dst.Prefixes, 2)
	assert.Same(t, c1, dst.Prefixes[0])
	assert.Same(t, c2, dst.Prefixes[1])
}

func TestToken_MoveSuffixesIf(t *testing.T) {
	src := &token.Token{Kind: token.IDENT, Text: "a"}
	dst := &token.Token{Kind: token.COMMA, Text: ","}
	sp := &token.Token{Kind: token.SPACE, Text: " "}
	cm := &token.Token{Kind: token.COMMENT, Text: "// trailing"}
	src.Suffixes = []*token.Token{sp, cm}

	src.MoveSuffixesIf(dst, token.SPACE)

	require.Len(t, dst.Suffixes, 1)
	assert.Same(t, sp, dst.Suffixes[0])
	require.Len(t, src.Suffixes, 1)
	assert.Same(t, cm, src.Suffixes[0])
}

func TestToken_IsMoveable(t *testing.T) {
	plain := &token.Token{Kind: token.IDENT, Text: "a"}
	assert.True(t, plain.IsMoveable())

	withComment := &token.Token{Kind: token.IDENT, Text: "a"}
	withComment.Prefixes = []*token.Token{{Kind: token.COMMENT}}
	assert.False(t, withComment.IsMoveable())

	withCppFlag := &token.Token{Kind: token.IDENT, Text: "a"}
	withCppFlag.Prefixes = []*token.Token{{Kind: token.CPP, Flags: token.FlagCPP}}
	assert.False(t, withCppFlag.IsMoveable())

	withTrailingComment := &token.Token{Kind: token.IDENT, Text: "a"}
	withTrailingComment.Suffixes = []*token.Token{{Kind: token.COMMENT}}
	assert.False(t, withTrailingComment.IsMoveable())
}
