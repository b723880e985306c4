package lexer

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// Pop returns the next main token and advances the cursor, or false at
// EOF.
func (lx *Lexer) Pop() (*token.Token, bool) {
	if lx.pos >= lx.stream.Len() {
		return nil, false
	}
	tk := lx.stream.At(lx.pos)
	lx.pos++
	return tk, true
}

// Peek returns the next main token without advancing the cursor.
func (lx *Lexer) Peek() (*token.Token, bool) {
	if lx.pos >= lx.stream.Len() {
		return nil, false
	}
	return lx.stream.At(lx.pos), true
}

// Back returns the most recently popped token, or false if none has
// been popped yet.
func (lx *Lexer) Back() (*token.Token, bool) {
	if lx.pos == 0 {
		return nil, false
	}
	return lx.stream.At(lx.pos - 1), true
}

// PeekEnter saves the current cursor position for a later PeekLeave,
// implementing a LIFO peek/recovery stack.
func (lx *Lexer) PeekEnter() {
	lx.peekStack = append(lx.peekStack, lx.pos)
}

// PeekLeave restores the cursor to the position saved by the matching
// PeekEnter. Unbalanced PeekEnter/PeekLeave is a programming error
// signalled by panic rather than silently misbehaving.
func (lx *Lexer) PeekLeave() {
	n := len(lx.peekStack)
	if n == 0 {
		panic("lexer: PeekLeave without matching PeekEnter")
	}
	lx.pos = lx.peekStack[n-1]
	lx.peekStack = lx.peekStack[:n-1]
}

// If pops and returns the next token if its kind matches k, otherwise
// leaves the cursor untouched and returns false.
func (lx *Lexer) If(k token.Kind) (*token.Token, bool) {
	tk, ok := lx.Peek()
	if !ok || tk.Kind != k {
		return nil, false
	}
	lx.pos++
	return tk, true
}

// PeekIf reports whether the next token has kind k, without consuming
// it.
func (lx *Lexer) PeekIf(k token.Kind) (*token.Token, bool) {
	tk, ok := lx.Peek()
	if !ok || tk.Kind != k {
		return nil, false
	}
	return tk, true
}

// IfType pops the next token if it carries every flag in want.
func (lx *Lexer) IfType(want token.Flags) (*token.Token, bool) {
	tk, ok := lx.Peek()
	if !ok || !tk.HasFlags(want) {
		return nil, false
	}
	lx.pos++
	return tk, true
}

// PeekIfType reports whether the next token carries every flag in
// want, without consuming it.
func (lx *Lexer) PeekIfType(want token.Flags) (*token.Token, bool) {
	tk, ok := lx.Peek()
	if !ok || !tk.HasFlags(want) {
		return nil, false
	}
	return tk, true
}

// PeekIfPair scans forward from the cursor, counting nested
// lhs/rhs occurrences, and returns the matching rhs token that closes
// the lhs token expected at the cursor.
func (lx *Lexer) PeekIfPair(lhs, rhs token.Kind) (open, closeTok *token.Token, ok bool) {
	lx.PeekEnter()
	defer lx.PeekLeave()

	open, ok = lx.If(lhs)
	if !ok {
		return nil, nil, false
	}
	depth := 1
	for {
		tk, more := lx.Pop()
		if !more {
			return nil, nil, false
		}
		switch tk.Kind {
		case lhs:
			depth++
		case rhs:
			depth--
			if depth == 0 {
				return open, tk, true
			}
		}
	}
}

// Until pops tokens up to and including the next token of kind k,
// returning that token.
func (lx *Lexer) Until(k token.Kind) (*token.Token, bool) {
	for {
		tk, more := lx.Pop()
		if !more {
			return nil, false
		}
		if tk.Kind == k {
			return tk, true
		}
	}
}

// ExpectError is returned by Expect when the next token doesn't match.
type ExpectError struct {
	Want token.Kind
	Got  *token.Token
}

func (e *ExpectError) Error() string {
	if e.Got == nil {
		return "knfmt: lexer: expected " + e.Want.String() + ", got EOF"
	}
	return "knfmt: lexer: expected " + e.Want.String() + ", got " + e.Got.Kind.String()
}

// Expect pops the next token if it has kind k, otherwise records a
// recoverable UnexpectedToken error and returns it unless
// currently inside a PeekEnter/PeekLeave span, in which case the error
// is suppressed.
func (lx *Lexer) Expect(k token.Kind) (*token.Token, error) {
	tk, ok := lx.If(k)
	if ok {
		return tk, nil
	}
	peeking := len(lx.peekStack) > 0
	got, _ := lx.Peek()
	err := &ExpectError{Want: k, Got: got}
	if !peeking {
		lx.recordDiag(err)
	}
	return nil, err
}
