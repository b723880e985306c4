package doc

import (
	"github.com/jcorbin/knfmt/internal/knfmt/diffchunk"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// diffState tracks the evaluator's diff-mode bookkeeping: which group
// level decided whether its subtree is covered by a diff chunk, the
// line range of the chunk currently open, how far unchanged source has
// already been copied through, and a "gate" token that must be reached
// before un-muting mid-chunk. Grounded on original_source/doc.c's
// struct doc_diff and doc_diff_group_enter/leave, simplified to operate
// on Verbatim nodes' token lines directly rather than walking a
// TAILQ-based document stack.
type diffState struct {
	enabled bool
	chunks  *diffchunk.Set

	active bool // an enclosing Group already decided coverage for this subtree
	muted  bool // the active decision was "not covered"

	inChunkUntil int // end line of the currently open chunk, 0 if none
	lastEnd      int // last source line already copied verbatim
	verbatimGate *token.Token
}

func newDiffState(d *diffchunk.Set) diffState {
	return diffState{enabled: d.Enabled(), chunks: d}
}

func (s *state) diffIsMute() bool {
	return s.diff.enabled && s.diff.muted
}

// diffGroupEnter decides, at most once per nested Group chain, whether
// the subtree rooted at n is covered by a diff chunk. It returns
// whether this call was the one that made the decision (so the
// matching diffGroupLeave knows whether to clear it).
func diffGroupEnter(n *Node, s *state) bool {
	if s.widthOnly || !s.diff.enabled || s.diff.active {
		return false
	}

	covers, multiline, firstLine := probeDiffCoverage(n, s)
	if multiline {
		// Spans multiple lines (brace initializers and the like);
		// leave the decision to a nested, single-line group.
		return false
	}

	s.diff.active = true
	if covers {
		if s.diff.inChunkUntil > 0 && s.diff.inChunkUntil < firstLine {
			diffEmitTail(s, firstLine)
		}
		if chunk, ok := s.diff.chunks.ChunkFor(firstLine); ok {
			s.diff.inChunkUntil = chunk.End
		}
		s.diff.muted = false
	} else {
		if s.diff.inChunkUntil > 0 {
			diffEmitTail(s, firstLine)
		}
		s.diff.muted = true
	}
	return true
}

func diffGroupLeave(_ *Node, s *state, wasActive bool) {
	if wasActive {
		s.diff.active = false
	}
}

// probeDiffCoverage walks n's subtree (without printing) collecting
// every Verbatim token's source line. It reports multiline=true the
// moment a Hardline node is found, matching the "spans multiple lines"
// case from the evaluator's diff-mode narrative.
func probeDiffCoverage(n *Node, s *state) (covers, multiline bool, firstLine int) {
	var toks []*token.Token
	var stop bool

	var walk func(*Node)
	walk = func(m *Node) {
		if stop || m == nil {
			return
		}
		switch m.Kind {
		case Hardline:
			multiline = true
			stop = true
		case Concat:
			for _, c := range m.Children {
				walk(c)
				if stop {
					return
				}
			}
		case Group, Indent, Dedent, Optional, Scope:
			walk(m.Child)
		case Verbatim:
			if m.Tok != nil {
				toks = append(toks, m.Tok)
			}
		}
	}
	walk(n)

	if multiline {
		return false, true, 0
	}

	firstLine = -1
	for _, t := range toks {
		if firstLine < 0 || t.Line < firstLine {
			firstLine = t.Line
		}
		if s.diff.chunks.Covers(t.Line) {
			covers = true
		}
	}
	if firstLine < 0 {
		firstLine = 0
	}
	return covers, false, firstLine
}

// diffLiteral is the hook for formatter-synthesized punctuation
// (Literal nodes). Unlike Verbatim, a Literal carries no source token
// or line, so there is nothing to stamp here; chunk-boundary tracking
// happens entirely at Verbatim nodes, which always trace back to a
// token with a line number.
func diffLiteral(_ *Node, _ *state) {}

// diffVerbatimRange reports whether printing tok's text crosses past
// the currently open chunk's end line, in which case the caller must
// call diffLeave afterward to advance past it.
func diffVerbatimRange(n *Node, s *state) (beg, end int, ok bool) {
	if s.widthOnly || !s.diff.enabled || n.Tok == nil {
		return 0, 0, false
	}
	if s.diff.inChunkUntil > 0 && n.Tok.Line > s.diff.inChunkUntil {
		return s.diff.lastEnd, n.Tok.Line, true
	}
	return 0, 0, false
}

func diffLeave(s *state, _, end int) {
	s.diff.lastEnd = end
	s.diff.inChunkUntil = 0
}

// diffEmitTail copies source lines [lastEnd+1, uptoLine) directly into
// the output buffer, bypassing the document evaluator entirely, so an
// unchanged region between two diff chunks is preserved byte for byte.
func diffEmitTail(s *state, uptoLine int) {
	if s.lx == nil || s.diff.lastEnd+1 >= uptoLine {
		return
	}
	b := s.lx.GetLines(s.diff.lastEnd+1, uptoLine)
	s.buf = append(s.buf, b...)
	s.diff.lastEnd = uptoLine - 1
}
