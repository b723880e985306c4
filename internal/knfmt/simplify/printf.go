package simplify

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// formatArgno is the zero-based position of the format-string argument
// for each recognized err(3)/warn(3)-family function.
var formatArgno = map[string]int{
	"warn": 0, "warnx": 0, "vwarn": 0, "vwarnx": 0, "perror": 0,
	"err": 1, "errx": 1, "verr": 1, "verrx": 1, "warnc": 1, "vwarnc": 1,
	"errc": 2, "verrc": 2,
}

// runExprPrintf strips a trailing `"\n"` from the format-string
// argument of an err/warn-family call, since those functions already
// append a trailing newline themselves. Ported from
// simple-expr-printf.c.
func runExprPrintf(stream *token.Stream) {
	for _, tk := range stream.All() {
		if tk.Kind != token.IDENT {
			continue
		}
		argno, ok := formatArgno[tk.Text]
		if !ok {
			continue
		}
		format := findFormatArgument(stream, tk, argno)
		if format == nil {
			continue
		}
		stripTrailingNewline(format)
	}
}

// findFormatArgument walks forward from the call's identifier past
// `argno` positional arguments and returns the immediately-following
// string literal (concatenating a run of adjacent string literals the
// way the lexer already presents them as a single STRING token, per
// lexer.c's string-literal handling), or nil if the shape doesn't
// match a direct call with a literal format argument.
func findFormatArgument(stream *token.Stream, ident *token.Token, argno int) *token.Token {
	tk := stream.Next(ident)
	if tk == nil || tk.Kind != token.LPAREN {
		return nil
	}
	tk = stream.Next(tk)
	for i := 0; i < argno; i++ {
		if tk == nil {
			return nil
		}
		tk = stream.Next(tk)
		if tk == nil || tk.Kind != token.COMMA {
			return nil
		}
		tk = stream.Next(tk)
	}
	if tk == nil || tk.Kind != token.STRING {
		return nil
	}
	return tk
}

// stripTrailingNewline removes a literal `\n` immediately preceding
// the closing quote of a string-literal token's text, if present.
func stripTrailingNewline(format *token.Token) {
	const suffix = `\n"`
	if !strings.HasSuffix(format.Text, suffix) {
		return
	}
	format.Text = format.Text[:len(format.Text)-len(suffix)] + `"`
}
