package simplify

import (
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// runStmtEmptyLoop synthesizes a `continue;` inside an empty loop
// body, brace-enclosed or not, per simple-stmt-empty-loop.c.
func runStmtEmptyLoop(lx *lexer.Lexer, stream *token.Stream) {
	for _, tk := range snapshot(stream) {
		switch tk.Kind {
		case token.FOR, token.WHILE:
			handleLoopHeader(lx, stream, tk)
		}
	}
}

func handleLoopHeader(lx *lexer.Lexer, stream *token.Stream, kw *token.Token) {
	// Walk past the `(...)` condition to find the body's first token.
	paren := stream.Next(kw)
	if paren == nil || paren.Kind != token.LPAREN {
		return
	}
	body := matchParen(stream, paren)
	if body == nil {
		return
	}
	body = stream.Next(body)
	if body == nil {
		return
	}

	switch body.Kind {
	case token.LBRACE:
		rbrace := matchBrace(stream, body)
		if rbrace == nil {
			return
		}
		emptyLoopBraces(lx, stream, body, rbrace)
	case token.SEMI:
		if !body.IsMoveable() {
			return
		}
		lx.InsertBefore(body, lx.Emit(token.CONTINUE, "continue"))
	}
}

func emptyLoopBraces(lx *lexer.Lexer, stream *token.Stream, lbrace, rbrace *token.Token) {
	if !lbrace.IsMoveable() || !rbrace.IsMoveable() {
		return
	}

	nx := stream.Next(lbrace)
	empty := nx == rbrace
	if !empty && nx.Kind == token.SEMI && nx.IsMoveable() && stream.Next(nx) == rbrace {
		empty = true
	}
	if !empty {
		return
	}

	after := lx.Emit(token.CONTINUE, "continue")
	lx.InsertAfter(lbrace, after)
	nx2 := stream.Next(after)
	if nx2 == nil || nx2.Kind != token.SEMI {
		lx.InsertAfter(after, lx.Emit(token.SEMI, ";"))
	}
}

// runStmtSwitch inserts `break;` after an empty `default:;` label, per
// simple-stmt-switch.c.
func runStmtSwitch(lx *lexer.Lexer, stream *token.Stream) {
	for _, tk := range snapshot(stream) {
		if tk.Kind != token.DEFAULT {
			continue
		}
		colon := stream.Next(tk)
		if colon == nil || colon.Kind != token.COLON {
			continue
		}
		semi := stream.Next(colon)
		if semi == nil || semi.Kind != token.SEMI {
			continue
		}
		brk := lx.Emit(token.BREAK, "break")
		lx.InsertAfter(colon, brk)
	}
}

// matchParen returns the `)` matching an `(`.
func matchParen(stream *token.Stream, lparen *token.Token) *token.Token {
	return matchPair(stream, lparen, token.LPAREN, token.RPAREN)
}

// matchBrace returns the `}` matching a `{`.
func matchBrace(stream *token.Stream, lbrace *token.Token) *token.Token {
	return matchPair(stream, lbrace, token.LBRACE, token.RBRACE)
}

func matchPair(stream *token.Stream, open *token.Token, openKind, closeKind token.Kind) *token.Token {
	depth := 0
	for tk := open; tk != nil; tk = stream.Next(tk) {
		switch tk.Kind {
		case openKind:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return tk
			}
		}
	}
	return nil
}
