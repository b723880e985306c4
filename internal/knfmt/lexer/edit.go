package lexer

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// Emit synthesizes a new token of the given kind and text, detached
// from any source position, for use by simplification passes that
// insert tokens (e.g. a synthesized `break;`
// "Stmt-switch").
func (lx *Lexer) Emit(kind token.Kind, text string) *token.Token {
	return token.New(kind, text, 0, 0, 0)
}

// InsertBefore splices newTok into the main stream immediately before
// anchor.
func (lx *Lexer) InsertBefore(anchor, newTok *token.Token) {
	lx.stream.InsertBefore(anchor, newTok)
}

// InsertAfter splices newTok into the main stream immediately after
// anchor.
func (lx *Lexer) InsertAfter(anchor, newTok *token.Token) {
	lx.stream.InsertAfter(anchor, newTok)
}

// MoveBefore relocates tok to sit immediately before anchor.
func (lx *Lexer) MoveBefore(anchor, tok *token.Token) {
	lx.stream.MoveBefore(anchor, tok)
}

// MoveAfter relocates tok to sit immediately after anchor.
func (lx *Lexer) MoveAfter(anchor, tok *token.Token) {
	lx.stream.MoveAfter(anchor, tok)
}

// Remove deletes tok from the main stream. If discard, tok is flagged
// FlagDiscard for tracing.
func (lx *Lexer) Remove(tok *token.Token, discard bool) {
	lx.stream.Remove(tok, discard)
}
