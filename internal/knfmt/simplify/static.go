package simplify

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// runStatic relocates a `static` storage-class keyword to the head of
// its enclosing declaration, e.g. `const static int x` becomes
// `static const int x`. Ported from simple-static.c, which is invoked
// by the parser with the declaration's already-known first token;
// lacking that, the declaration's start is approximated here as the
// nearest preceding statement/declaration boundary (`;`, `{`, `}`, or
// start of stream).
func runStatic(stream *token.Stream) {
	for _, tk := range snapshot(stream) {
		if tk.Kind != token.STATIC || !tk.IsMoveable() {
			continue
		}

		beg := declHead(stream, tk)
		if beg == tk {
			continue
		}
		stream.MoveBefore(beg, tk)
	}
}

// declHead walks backward from tk to the first token following the
// nearest statement/declaration boundary.
func declHead(stream *token.Stream, tk *token.Token) *token.Token {
	beg := tk
	for {
		pv := stream.Prev(beg)
		if pv == nil {
			return beg
		}
		switch pv.Kind {
		case token.SEMI, token.LBRACE, token.RBRACE, token.COLON:
			return beg
		}
		beg = pv
	}
}
