package token

// Stream holds the main (non-trivia) token sequence produced by the
// lexer. The original tool links these with an intrusive doubly-linked
// list; Go slices of pointers give the same stable per-token identity
// (consumers hold onto *Token, never an index) with simpler
// insert/remove/move via slice splicing, so that's what Stream uses.
type Stream struct {
	toks []*Token
}

// NewStream wraps an already-built token slice.
func NewStream(toks []*Token) *Stream { return &Stream{toks: toks} }

// Len returns the number of main tokens.
func (s *Stream) Len() int { return len(s.toks) }

// At returns the token at index i.
func (s *Stream) At(i int) *Token { return s.toks[i] }

// All returns the underlying slice. Callers must not retain it across
// a mutating call.
func (s *Stream) All() []*Token { return s.toks }

// IndexOf returns the index of tok in the stream, or -1.
func (s *Stream) IndexOf(tok *Token) int {
	for i, t := range s.toks {
		if t == tok {
			return i
		}
	}
	return -1
}

// Next returns the main token following tok, or nil at the end.
func (s *Stream) Next(tok *Token) *Token {
	i := s.IndexOf(tok)
	if i < 0 || i+1 >= len(s.toks) {
		return nil
	}
	return s.toks[i+1]
}

// Prev returns the main token preceding tok, or nil at the start.
func (s *Stream) Prev(tok *Token) *Token {
	i := s.IndexOf(tok)
	if i <= 0 {
		return nil
	}
	return s.toks[i-1]
}

// InsertBefore splices newTok into the stream immediately before
// anchor.
func (s *Stream) InsertBefore(anchor, newTok *Token) {
	i := s.IndexOf(anchor)
	if i < 0 {
		s.toks = append(s.toks, newTok)
		return
	}
	s.toks = append(s.toks, nil)
	copy(s.toks[i+1:], s.toks[i:])
	s.toks[i] = newTok
}

// InsertAfter splices newTok into the stream immediately after
// anchor.
func (s *Stream) InsertAfter(anchor, newTok *Token) {
	i := s.IndexOf(anchor)
	if i < 0 {
		s.toks = append([]*Token{newTok}, s.toks...)
		return
	}
	s.toks = append(s.toks, nil)
	copy(s.toks[i+2:], s.toks[i+1:])
	s.toks[i+1] = newTok
}

// Remove removes tok from the stream. discard, if true, additionally
// marks it FlagDiscard so tracing tools can tell a moved token from a
// dropped one.
func (s *Stream) Remove(tok *Token, discard bool) {
	i := s.IndexOf(tok)
	if i < 0 {
		return
	}
	s.toks = append(s.toks[:i], s.toks[i+1:]...)
	if discard {
		tok.Flags |= FlagDiscard
	}
}

// MoveBefore relocates tok to sit immediately before anchor.
func (s *Stream) MoveBefore(anchor, tok *Token) {
	s.Remove(tok, false)
	s.InsertBefore(anchor, tok)
}

// MoveAfter relocates tok to sit immediately after anchor.
func (s *Stream) MoveAfter(anchor, tok *Token) {
	s.Remove(tok, false)
	s.InsertAfter(anchor, tok)
}

// IsDecl reports whether tok introduces a `{`-bodied declaration of
// the given keyword kind (e.g. IsDecl(STRUCT) for `struct foo {`),
// per original_source/token.c token_is_decl: the token immediately
// following must be `{`, and tok itself -- or the token before it, if
// tok is an identifier tag name -- must have the given kind.
func (s *Stream) IsDecl(tok *Token, kind Kind) bool {
	nx := s.Next(tok)
	if nx == nil || nx.Kind != LBRACE {
		return false
	}
	if tok.Kind == IDENT {
		tok = s.Prev(tok)
		if tok == nil {
			return false
		}
	}
	return tok.Kind == kind
}

// IsFirst reports whether tok is the first main token of the stream.
func (s *Stream) IsFirst(tok *Token) bool {
	return len(s.toks) > 0 && s.toks[0] == tok
}
