package lexer

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// scanner runs the single left-to-right tokenization pass described in
// ported from original_source/lexer.c's lexer_read loop.
type scanner struct {
	lx *Lexer

	src  []byte
	off  int
	line int
	col  int

	errored bool
	errTok  *token.Token

	cpp cppState
}

func newScanner(lx *Lexer) *scanner {
	return &scanner{lx: lx, src: lx.src, line: 1, col: 1}
}

type state struct {
	off, line, col int
}

func (s *scanner) save() state { return state{s.off, s.line, s.col} }

func (s *scanner) restore(st state) { s.off, s.line, s.col = st.off, st.line, st.col }

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) peekByte() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.src[s.off], true
}

func (s *scanner) getc() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	c := s.src[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c, true
}

func (s *scanner) ungetc() {
	if s.off == 0 {
		return
	}
	s.off--
	if s.src[s.off] == '\n' {
		s.line--
		// column tracking across an ungetc-over-newline is
		// approximate (matches the rarity of that path in practice:
		// ungetc only ever steps back one byte just read).
		s.col = 1
	} else {
		s.col--
		if s.col < 1 {
			s.col = 1
		}
	}
}

func (s *scanner) emit(st state, kind token.Kind) *token.Token {
	text := string(s.src[st.off:s.off])
	tk := token.New(kind, text, st.line, st.col, st.off)
	return tk
}

// run tokenizes the whole buffer, returning the main token stream.
func (s *scanner) run() ([]*token.Token, error) {
	var out []*token.Token
	for {
		tk, more := s.readOne()
		if tk != nil {
			out = append(out, tk)
		}
		if !more {
			break
		}
	}
	return out, nil
}

// readOne implements one iteration of lexer_read: consume leading
// trivia, then classify and emit the next main token (or EOF/ERROR).
func (s *scanner) readOne() (tk *token.Token, more bool) {
	var prefixes []*token.Token
	for {
		if c := s.tryComment(true); c != nil {
			prefixes = append(prefixes, c)
			continue
		}
		if c := s.tryCpp(); c != nil {
			prefixes = append(prefixes, c)
			continue
		}
		break
	}

	s.eatSpace(true)

	st := s.save()

	if s.eof() {
		tk = s.emit(st, token.EOF)
		tk.Prefixes = prefixes
		return tk, false
	}

	c, _ := s.getc()

	switch {
	case c == '"' || c == '\'' || (c == 'L' && s.peeksQuote()):
		tk = s.scanLiteralString(st, c)
	case isDigit(c):
		s.scanWhile(isNumPart)
		tk = s.emit(st, token.LITERAL)
	case isIdentStart(c):
		s.scanWhile(isIdentPart)
		tk = s.identOrKeyword(st)
	default:
		s.ungetc()
		if p := s.scanPunct(); p != token.NONE {
			tk = s.emit(st, p)
			tk.Flags |= punctFlags(p)
		} else {
			// consume one byte so we always make forward progress
			s.getc()
			tk = s.emit(st, token.ERROR)
			s.errored = true
			s.errTok = tk
		}
	}

	tk.Prefixes = prefixes

	// trailing/interwined comments
	for {
		c := s.tryComment(false)
		if c == nil {
			break
		}
		tk.Suffixes = append(tk.Suffixes, c)
	}
	if sp := s.eatSpace(false); sp != nil {
		tk.Suffixes = append(tk.Suffixes, sp)
	}
	if nl := s.eatLines(); nl != nil {
		tk.Suffixes = append(tk.Suffixes, nl)
	}

	s.foreachHeuristic(tk)

	return tk, tk.Kind != token.EOF && tk.Kind != token.ERROR
}

func (s *scanner) peeksQuote() bool {
	st := s.save()
	c, ok := s.getc()
	s.restore(st)
	return ok && (c == '"' || c == '\'')
}

func (s *scanner) scanLiteralString(st state, first byte) *token.Token {
	delim := first
	if first == 'L' {
		c, _ := s.getc() // the quote itself
		delim = c
	}
	prev := delim
	for {
		c, ok := s.getc()
		if !ok {
			break
		}
		if prev == '\\' && c == '\\' {
			c = 0
		} else if prev != '\\' && c == delim {
			break
		}
		prev = c
	}
	kind := token.LITERAL
	if delim == '"' {
		kind = token.STRING
	}
	return s.emit(st, kind)
}

func (s *scanner) scanWhile(pred func(byte) bool) {
	for {
		c, ok := s.peekByte()
		if !ok || !pred(c) {
			return
		}
		s.getc()
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// isNumPart matches digits plus the hex/suffix letters a numeric
// literal may contain.
func isNumPart(c byte) bool {
	switch {
	case isDigit(c):
		return true
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	case c == 'x', c == 'X', c == 'l', c == 'L', c == 'u', c == 'U', c == '.':
		return true
	}
	return false
}

func (s *scanner) identOrKeyword(st state) *token.Token {
	text := string(s.src[st.off:s.off])
	if kind, ok := token.Keywords[text]; ok {
		tk := s.emit(st, kind)
		tk.Flags |= keywordFlags(kind)
		return tk
	}
	return s.emit(st, token.IDENT)
}

func keywordFlags(kind token.Kind) token.Flags {
	var f token.Flags
	switch kind {
	case token.CHAR, token.DOUBLE, token.ENUM, token.FLOAT, token.INT, token.LONG,
		token.SHORT, token.SIGNED, token.STRUCT, token.TYPEDEF, token.UNION,
		token.UNSIGNED, token.VOID, token.BOOL:
		f |= token.FlagType
	}
	switch kind {
	case token.CONST, token.RESTRICT, token.VOLATILE:
		f |= token.FlagQualifier
	}
	switch kind {
	case token.EXTERN, token.INLINE, token.REGISTER, token.STATIC, token.TYPEDEF:
		f |= token.FlagStorage
	}
	return f
}

// foreachHeuristic reclassifies identifiers like FOREACH/_for_each
// macros immediately followed by `(` into token.FOREACH, so the
// statement parser can treat them like loop keywords.
func (s *scanner) foreachHeuristic(tk *token.Token) {
	if tk.Kind != token.IDENT {
		return
	}
	if !strings.Contains(tk.Text, "FOREACH") &&
		!strings.Contains(tk.Text, "_for_each") &&
		!strings.Contains(tk.Text, "for_each_") {
		return
	}
	if c, ok := s.peekByte(); ok && c == '(' {
		tk.Kind = token.FOREACH
	}
}

// eatSpace consumes horizontal whitespace (and newlines, if leading is
// true), optionally emitting a SPACE trivia token for the consumed
// range when emit is requested by the caller's context (suffix
// spacing only -- leading space before a main token is never
// material).
func (s *scanner) eatSpace(leading bool) *token.Token {
	st := s.save()
	for {
		c, ok := s.peekByte()
		if !ok || !(c == ' ' || c == '\t' || (leading && c == '\n')) {
			break
		}
		s.getc()
	}
	if leading || s.off == st.off {
		return nil
	}
	tk := s.emit(st, token.SPACE)
	tk.Flags |= token.FlagOptspace
	return tk
}

// eatLines consumes consecutive hard newlines and emits a SPACE
// suffix capturing them, so token.Token.HasLine can tell a single
// line break from a preserved blank line: exactly one newline sets
// FlagOptline (token.HasLine(1) true, token.HasLine(2) false); two or
// more newlines set no flags at all, since a blank line is the
// strongest break signal a token can carry (both HasLine(1) and
// HasLine(2) true). Returns nil, consuming nothing, when the token
// wasn't followed by any newline at all.
func (s *scanner) eatLines() *token.Token {
	st := s.save()
	n := 0
	for {
		c, ok := s.peekByte()
		if !ok || c != '\n' {
			break
		}
		s.getc()
		n++
	}
	if n == 0 {
		return nil
	}
	tk := s.emit(st, token.SPACE)
	if n == 1 {
		tk.Flags |= token.FlagOptline
	}
	return tk
}
