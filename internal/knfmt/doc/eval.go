package doc

import (
	"github.com/jcorbin/knfmt/internal/knfmt/diffchunk"
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/style"
)

// Print renders root to formatted bytes. lx supplies the original
// source for diff-unchanged regions (may be nil when diff is nil/not
// enabled).
func Print(root *Node, st *style.Style, lx *lexer.Lexer, diff *diffchunk.Set) []byte {
	s := newState(st, lx, diff)
	exec(root, s)
	return s.buf
}

// Width computes how many columns root would occupy if printed on a
// single line, never wrapping.
func Width(root *Node, st *style.Style) int {
	s := newState(st, nil, nil)
	s.widthOnly = true
	s.mode = Munge
	exec(root, s)
	return s.pos
}

func exec(n *Node, s *state) {
	switch n.Kind {
	case Concat:
		for _, c := range n.Children {
			exec(c, s)
		}

	case Group:
		diffActive := diffGroupEnter(n, s)
		switch s.mode {
		case Munge:
			if !s.refit {
				exec(n.Child, s)
				break
			}
			fallthrough
		case Break:
			s.refit = false
			oldMode := s.mode
			if fits(n.Child, s) {
				s.mode = Munge
			} else {
				s.mode = Break
			}
			exec(n.Child, s)
			s.mode = oldMode
		}
		diffGroupLeave(n, s, diffActive)

	case Indent:
		execIndent(n, s)

	case Dedent:
		trim(s)
		old := s.indent.cur
		s.indent.cur = 0
		s.indent.pre = 0
		exec(n.Child, s)
		s.indent.cur = old

	case Align:
		indentRaw(s, n.Int)

	case Literal:
		diffLiteral(n, s)
		print(s, n.Text, true)

	case Verbatim:
		execVerbatim(n, s)

	case Line:
		switch s.mode {
		case Break:
			print(s, "\n", true)
		case Munge:
			if s.newlinePending {
				break
			}
			print(s, " ", true)
			s.refit = true
		}

	case Softline:
		if s.mode == Break {
			print(s, "\n", true)
		}

	case Hardline:
		if s.mute > 0 {
			s.newlinePending = true
		}
		markScopeHardline(s)
		print(s, "\n", true)

	case Optline:
		if s.optline > 0 {
			s.newlinePending = true
		}

	case Mute:
		if !s.widthOnly {
			if s.mute == 0 && n.Int > 0 {
				s.indent.mute = s.indent.pre
			}
			if n.Int > 0 || s.mute >= -n.Int {
				s.mute += n.Int
			}
		}
		if n.Child != nil {
			exec(n.Child, s)
		}

	case Optional:
		old := s.optline
		s.optline++
		exec(n.Child, s)
		if old <= s.optline {
			s.optline = old
		}

	case Minimize:
		execMinimize(n, s)

	case Scope:
		s.scopeHardline = append(s.scopeHardline, false)
		exec(n.Child, s)
		s.scopeHardline = s.scopeHardline[:len(s.scopeHardline)-1]
	}
}

func markScopeHardline(s *state) {
	if n := len(s.scopeHardline); n > 0 {
		s.scopeHardline[n-1] = true
	}
}

func scopeHasHardline(s *state) bool {
	n := len(s.scopeHardline)
	return n > 0 && s.scopeHardline[n-1]
}

func execIndent(n *Node, s *state) {
	switch n.Sentinel {
	case IndentParens:
		old := s.parens
		if parensAlign(s) {
			s.parens++
		}
		exec(n.Child, s)
		s.parens = old
		return

	case IndentForce:
		indent(s, s.indent.cur)
		exec(n.Child, s)
		return

	case IndentNewline:
		width := 0
		if scopeHasHardline(s) {
			width = n.Int
		}
		s.indent.cur += width
		exec(n.Child, s)
		s.indent.cur -= width
		if s.indent.cur == 0 {
			s.indent.pre = 0
		}
		return

	default:
		s.indent.cur += n.Int
		exec(n.Child, s)
		s.indent.cur -= n.Int
		if s.indent.cur == 0 {
			s.indent.pre = 0
		}
	}
}

func execVerbatim(n *Node, s *state) {
	if s.isMute() {
		if s.diff.enabled && s.diff.verbatimGate == n.Tok {
			// This token's bytes already reached the output via a
			// direct tail copy; consume the gate and let whatever
			// follows in this covered group print normally, but this
			// node itself still doesn't print again.
			s.diff.verbatimGate = nil
		}
		return
	}

	diffBeg, diffEnd, diffOK := diffVerbatimRange(n, s)

	text := n.Tok.Text
	isBlock := len(text) > 1 && text[len(text)-1] == '\n'

	trim(s)
	oldPos := s.pos

	if isBlock && s.pos > 0 {
		print(s, "\n", false)
	}

	print(s, text, false)

	if isBlock {
		var ind int
		if s.indent.mute > 0 {
			if s.indent.cur < s.indent.mute {
				ind = s.indent.cur
			} else {
				ind = s.indent.mute
			}
			s.indent.mute = 0
		} else if oldPos > 0 {
			ind = s.indent.cur
		} else {
			ind = s.indent.pre
		}
		s.pos = 0
		indent(s, ind)
	}

	if diffOK {
		diffLeave(s, diffBeg, diffEnd)
	}
}

func execMinimize(n *Node, s *state) {
	variants := n.Variants
	if len(variants) == 0 {
		return
	}
	for _, v := range variants {
		if v.Force {
			execMinimizeVariant(v, s)
			return
		}
	}
	bestIdx := -1
	var best penalty
	for i, v := range variants {
		p := scoreVariant(v, s)
		if bestIdx < 0 || p.less(best) {
			bestIdx = i
			best = p
		}
	}
	execMinimizeVariant(variants[bestIdx], s)
}

func execMinimizeVariant(v MinimizeVariant, s *state) {
	s.indent.cur += v.Indent
	exec(v.Doc, s)
	s.indent.cur -= v.Indent
}

type penalty struct {
	nexceeds int
	nlines   int
	sum      float64
}

// less implements the lexicographic comparison {nexceeds, nlines, sum}
// in that order, per doc_minimize's penality struct field order.
func (p penalty) less(o penalty) bool {
	if p.nexceeds != o.nexceeds {
		return p.nexceeds < o.nexceeds
	}
	if p.nlines != o.nlines {
		return p.nlines < o.nlines
	}
	return p.sum < o.sum
}

func scoreVariant(v MinimizeVariant, s *state) penalty {
	shadow := *s
	shadow.buf = nil
	shadow.indent.cur += v.Indent
	exec(v.Doc, &shadow)

	var p penalty
	limit := s.columnLimit()
	lineLen := 0
	for _, b := range shadow.buf {
		if b == '\n' {
			p.nlines++
			p.sum += float64(lineLen)
			if lineLen > limit {
				p.nexceeds++
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	p.sum += float64(lineLen)
	if lineLen > limit {
		p.nexceeds++
	}
	return p
}

// parensAlign reports whether the current output line matches
// `^\s*\(+$`: only indentation followed by one or more open parens.
func parensAlign(s *state) bool {
	i := len(s.buf) - 1
	sawParen := false
	for ; i >= 0 && s.buf[i] == '('; i-- {
		sawParen = true
	}
	if !sawParen {
		return false
	}
	for ; i >= 0 && (s.buf[i] == ' ' || s.buf[i] == '\t'); i-- {
	}
	return i < 0 || s.buf[i] == '\n'
}
