// Package arena provides the scoped bump allocator and container
// primitives component A of the formatter core: a byte arena for
// interning byte ranges, a scope type that unwinds
// registered cleanup callbacks in LIFO order, a growable Buffer, a
// generic Vector, and an open-addressed Map.
//
// Go already garbage collects, so Arena does not reclaim memory itself;
// what it buys the rest of the core is the teacher's token-handle idiom
// (github.com/jcorbin/soc's internal/scanio.ByteArena): stable,
// cheap-to-copy Tokens that reference a shared backing buffer instead
// of each carrying their own []byte, plus a disciplined place to hang
// Scope-scoped cleanup (compiled regexes, temp files) that isn't memory
// and so the GC can't release for us.
package arena

// Arena accumulates bytes written to it and hands back Tokens
// referencing the written range. It never shrinks except via Reset or
// a Scope's Release.
type Arena struct {
	buf []byte
	cur int
}

// Token references a byte range within an Arena.
type Token struct {
	arena *Arena
	start int
	end   int
}

// Write appends p to the arena, implementing io.Writer.
func (a *Arena) Write(p []byte) (int, error) {
	a.buf = append(a.buf, p...)
	return len(p), nil
}

// WriteString appends s to the arena.
func (a *Arena) WriteString(s string) (int, error) {
	a.buf = append(a.buf, s...)
	return len(s), nil
}

// Intern copies p into the arena and returns a Token referencing it,
// without disturbing any pending Take() cursor.
func (a *Arena) Intern(p []byte) Token {
	start := len(a.buf)
	a.buf = append(a.buf, p...)
	return Token{arena: a, start: start, end: len(a.buf)}
}

// Take returns a Token referencing every byte written into the arena
// since the last Take, and advances the cursor past it.
func (a *Arena) Take() Token {
	tok := Token{arena: a, start: a.cur, end: len(a.buf)}
	a.cur = tok.end
	return tok
}

// Reset discards all bytes from the arena. Any previously issued Token
// becomes invalid to dereference.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
	a.cur = 0
}

// Len returns the number of live bytes in the arena.
func (a *Arena) Len() int { return len(a.buf) }

// Bytes returns the byte range the token refers to. Once the arena has
// been Reset or truncated below the token's end, the result is not
// checked: it may hold stale or overwritten bytes, or panic if the
// range lies beyond the buffer's capacity.
func (t Token) Bytes() []byte {
	if t.arena == nil {
		return nil
	}
	return t.arena.buf[t.start:t.end]
}

// String renders the token's bytes as a string.
func (t Token) String() string { return string(t.Bytes()) }

// Len returns the number of bytes the token spans.
func (t Token) Len() int { return t.end - t.start }

// IsZero reports whether the token references no arena.
func (t Token) IsZero() bool { return t.arena == nil }
