package simplify

import (
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// runDeclProto strips argument names from a forward-declared function
// prototype's parameter list, but only when some -- not all, not none
// -- of its arguments carry a name: `void f(int a, int);` and
// `void f(int, int b);` both become `void f(int, int);`, while
// `void f(int a, int b);` and `void f(int, int);` are left alone. Ported from simple-decl-proto.c's per-argument
// ignore/collect bookkeeping (there, driven by parser callbacks
// entering each argument and seeing its identifier, if any); this scan
// finds `IDENT(...)` parameter lists directly and classifies each
// comma-separated argument by whether its last token is an identifier
// not itself a type/qualifier keyword and not `...`.
func runDeclProto(lx *lexer.Lexer, stream *token.Stream) {
	for _, tk := range snapshot(stream) {
		if tk.Kind != token.LPAREN {
			continue
		}
		rparen := matchParen(stream, tk)
		if rparen == nil {
			continue
		}
		semi := stream.Next(rparen)
		if semi == nil || semi.Kind != token.SEMI {
			continue
		}

		names := protoArgumentNames(stream, tk, rparen)
		if len(names) == 0 {
			continue
		}
		nunnamed := 0
		for _, n := range names {
			if n == nil {
				nunnamed++
			}
		}
		if nunnamed == 0 || nunnamed == len(names) {
			continue
		}
		for _, n := range names {
			if n != nil {
				lx.Remove(n, true)
			}
		}
	}
}

// protoArgumentNames splits the parameter list between lparen/rparen
// on top-level commas and returns, for each argument, its trailing
// identifier token if the argument ends in one that is preceded by a
// type keyword, `*`, or another qualifier (an argument's name, as
// opposed to its type) -- or nil if the argument has no name. Returns
// nil entirely if the list isn't a plain identifier-style prototype
// (e.g. contains `...` or is empty).
func protoArgumentNames(stream *token.Stream, lparen, rparen *token.Token) []*token.Token {
	first := stream.Next(lparen)
	if first == rparen {
		return nil
	}

	var names []*token.Token
	argStart := first
	depth := 0
	for tk := first; ; tk = stream.Next(tk) {
		atEnd := tk == rparen
		isTopComma := !atEnd && tk.Kind == token.COMMA && depth == 0
		switch tk.Kind {
		case token.LPAREN, token.LSQUARE:
			depth++
		case token.RPAREN:
			if tk != rparen {
				depth--
			}
		case token.RSQUARE:
			depth--
		}

		if !atEnd && !isTopComma {
			continue
		}

		last := stream.Prev(tk)
		if last == nil || (last == argStart && last.Kind == token.ELLIPSIS) {
			return nil
		}
		names = append(names, argumentName(stream, argStart, last))
		if atEnd {
			break
		}
		argStart = stream.Next(tk)
	}
	return names
}

func argumentName(stream *token.Stream, beg, end *token.Token) *token.Token {
	if end == nil || end.Kind != token.IDENT {
		return nil
	}
	if end == beg {
		return nil
	}
	pv := stream.Prev(end)
	if pv == nil {
		return nil
	}
	if pv.Kind == token.STAR || pv.HasFlags(token.FlagType) || pv.HasFlags(token.FlagQualifier) {
		return end
	}
	return nil
}
