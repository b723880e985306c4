package simplify

import (
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// runImplicitInt inserts `int` after a lone `signed` that forms an
// entire declaration's base type, per simple-implicit-int.c.
func runImplicitInt(lx *lexer.Lexer, stream *token.Stream) {
	insertIntAfterLone(lx, stream, token.SIGNED)
}

// runUnsigned inserts `int` after a lone `unsigned` base type, per
// simple-unsigned.c.
func runUnsigned(lx *lexer.Lexer, stream *token.Stream) {
	insertIntAfterLone(lx, stream, token.UNSIGNED)
}

// insertIntAfterLone finds every moveable token of the given kind whose
// next main token is not itself a type keyword, and inserts a
// synthesized `int` after it. The token before it is not examined.
func insertIntAfterLone(lx *lexer.Lexer, stream *token.Stream, kind token.Kind) {
	for _, tk := range snapshot(stream) {
		if tk.Kind != kind || !tk.IsMoveable() {
			continue
		}
		nx := stream.Next(tk)
		if nx == nil {
			continue
		}
		if nx.HasFlags(token.FlagType) {
			continue
		}
		in := lx.Emit(token.INT, "int")
		lx.InsertAfter(tk, in)

		// The space that used to separate tk from nx now belongs
		// between in and nx; tk needs a fresh one in its place so
		// "signed"/"int" don't end up glued together.
		tk.MoveSuffixesIf(in, token.SPACE)
		sp := lx.Emit(token.SPACE, " ")
		sp.Flags |= token.FlagOptspace
		tk.Suffixes = append(tk.Suffixes, sp)
	}
}
