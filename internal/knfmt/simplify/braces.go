package simplify

import (
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// runBraces inserts a trailing comma before a brace initializer's
// closing `}` (one whose `{` directly follows `=`; nested initializer
// braces are not considered) when its last element already sits on
// its own line and doesn't already end in `,` or `)`. Ported from
// parser-braces.c's insert_trailing_comma.
func runBraces(lx *lexer.Lexer, stream *token.Stream) {
	for _, tk := range snapshot(stream) {
		if tk.Kind != token.RBRACE {
			continue
		}
		lbrace, depth := tk, 0
		for ; lbrace != nil; lbrace = stream.Prev(lbrace) {
			if lbrace.Kind == token.RBRACE {
				depth++
			} else if lbrace.Kind == token.LBRACE {
				if depth--; depth == 0 {
					break
				}
			}
		}
		if lbrace == nil || !stream.Prev(lbrace).Is(token.EQUAL) {
			continue
		}
		pv := stream.Prev(tk)
		if pv == nil {
			continue
		}
		if pv.Kind == token.COMMA || pv.Kind == token.RPAREN {
			continue
		}
		if !pv.HasLine(1) {
			continue
		}

		comma := lx.Emit(token.COMMA, ",")
		lx.InsertAfter(pv, comma)
		pv.MoveSuffixesIf(comma, token.SPACE)
	}
}
