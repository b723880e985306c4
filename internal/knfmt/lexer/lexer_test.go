package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// reconstruct rebuilds the exact input bytes from a token stream by
// concatenating every main token with its prefix and suffix trivia in
// order, the property spec §8 calls P1.
func reconstruct(stream *token.Stream) string {
	var out []byte
	for _, tk := range stream.All() {
		for _, p := range tk.Prefixes {
			out = append(out, p.Text...)
		}
		out = append(out, tk.Text...)
		for _, sfx := range tk.Suffixes {
			out = append(out, sfx.Text...)
		}
	}
	return string(out)
}

func TestLexer_RoundTrip(t *testing.T) {
	for _, src := range []string{
		"int main(void) { return 0; }\n",
		"/* leading */\nstatic int x = 1;\n",
		"#include <stdio.h>\n\nint x;\n",
		"int x; // trailing comment\n",
		"char *s = \"hi \\\"there\\\"\";\n",
		"#ifndef FOO_H\n#define FOO_H\nint foo(void);\n#endif\n",
	} {
		t.Run(src, func(t *testing.T) {
			lx, err := lexer.Alloc([]byte(src), lexer.Options{Path: "t.c"})
			require.NoError(t, err)
			assert.Equal(t, src, reconstruct(lx.Stream()))
		})
	}
}

func TestLexer_LineColumn(t *testing.T) {
	src := "int a;\nint bb;\n"
	lx, err := lexer.Alloc([]byte(src), lexer.Options{Path: "t.c"})
	require.NoError(t, err)

	toks := lx.Stream().All()
	require.True(t, len(toks) >= 4)

	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue // empty text at offset len(src): no first byte to compare
		}
		assert.Equal(t, byte(src[tk.Offset]), tk.Text[0], "offset %d should point at token start", tk.Offset)
	}

	var bb *token.Token
	for _, tk := range toks {
		if tk.Kind == token.IDENT && tk.Text == "bb" {
			bb = tk
		}
	}
	require.NotNil(t, bb)
	assert.Equal(t, 2, bb.Line)
}
