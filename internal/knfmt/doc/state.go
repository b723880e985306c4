package doc

import (
	"github.com/jcorbin/knfmt/internal/knfmt/diffchunk"
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/style"
)

// Mode is the printer's current line-wrapping disposition for the
// group it is inside.
type Mode int

const (
	Break Mode = iota
	Munge
)

type indentState struct {
	cur  int // current indent
	pre  int // last emitted indent
	mute int // indent in effect when we last went mute
}

// state carries all per-print mutable state threaded through exec's
// recursive descent. A state is never shared across concurrent prints;
// each format.Format call on a translation unit owns one.
type state struct {
	style *style.Style
	lx    *lexer.Lexer
	buf   []byte

	mode Mode

	pos    int // output column, 0-based, since the last newline
	indent indentState

	refit  bool // previous LINE emitted; next enclosing Group re-decides mode
	parens int  // nested paren-alignment depth

	newlinePending bool
	nlines         int // consecutive newlines emitted, capped at 2

	mute    int // mute depth; >0 suppresses output except forced prints
	optline int // depth of active Optional wrappers

	scopeHardline []bool // per-Scope "has a hardline fired yet" flag

	diff diffState

	widthOnly bool // flatten mode used by Width(); never wraps, never prints
}

func newState(st *style.Style, lx *lexer.Lexer, diff *diffchunk.Set) *state {
	return &state{
		style: st,
		lx:    lx,
		diff:  newDiffState(diff),
	}
}

func (s *state) isMute() bool {
	return s.mute > 0 || s.diffIsMute()
}

func (s *state) columnLimit() int {
	return s.style.ColumnLimitOrUnlimited(1 << 30)
}
