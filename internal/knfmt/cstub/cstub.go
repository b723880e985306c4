// Package cstub implements a minimal document producer standing in
// for the original's recursive-descent parser (parser.c, decl.c,
// expr.c, stmt.c, ...): it walks the token stream once and builds a
// doc.Node tree, recognizing only the structural shapes this port
// needs to exercise the rest of the pipeline end to end -- a `{...}`
// compound statement nests one indent level deeper than its
// surrounding tokens, a `switch (...) { ... }` body dedents its
// `case`/`default` labels by one level, a run of consecutive simple
// assignments gets its `=` signs column-aligned via ruler, and every
// token's attached cpp/comment trivia and original line breaks are
// carried into the document untouched.
//
// The original's document production is driven by grammar: each
// grammar production (a declarator list, a brace initializer, a
// function's parameter list) picks its own grouping, indent
// placement, and alignment. This port has no such grammar layer, so
// cstub makes a few structural decisions -- brace nesting, switch
// label dedent, assignment-column alignment -- and otherwise
// reproduces the token stream's existing line breaks (hardline where
// the source already had one, a breakable line where it had a space,
// nothing where tokens were already snug). This means output this
// package produces will not rewrap long expressions or declarations
// the way the original's declaration and expression formatters do; it
// is a stub sufficient to drive the lexer/simplify/doc/ruler pipeline,
// not the original's full line-breaking policy.
package cstub

import (
	"github.com/jcorbin/knfmt/internal/knfmt/doc"
	"github.com/jcorbin/knfmt/internal/knfmt/ruler"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// indentWidth is the width of one nesting level, matching the
// original's hard-tab-stop convention.
const indentWidth = 8

// Produce builds a document tree for the whole token stream.
func Produce(stream *token.Stream) *doc.Node {
	return block(stream, stream.All(), false)
}

// block renders a flat run of main tokens, recursing into nested
// `{...}` spans as an indented sub-block. inSwitch marks toks as the
// direct body of a switch statement, so its top-level case/default
// labels dedent back out by one level.
func block(stream *token.Stream, toks []*token.Token, inSwitch bool) *doc.Node {
	aligns := alignAssignments(stream, toks)

	var out []*doc.Node

	for i := 0; i < len(toks); i++ {
		tk := toks[i]

		n := emit(tk)
		if inSwitch && (tk.Kind == token.CASE || tk.Kind == token.DEFAULT) {
			n = doc.NewDedent(n)
		}
		out = append(out, n)

		if tk.Kind == token.LBRACE {
			j := matchBrace(toks, i)
			inner := toks[i+1 : j]
			body := block(stream, inner, isSwitchHeader(toks, i))
			if len(inner) > 0 {
				out = append(out, doc.NewIndent(indentWidth, doc.NewConcat(doc.NewHardline(), body)))
				out = append(out, doc.NewHardline())
			}
			if j < len(toks) {
				out = append(out, emit(toks[j]))
			}
			i = j
			if i+1 < len(toks) {
				out = append(out, alignedSep(toks, i, aligns))
			}
			continue
		}

		if i+1 < len(toks) {
			out = append(out, alignedSep(toks, i, aligns))
		}
	}

	return doc.NewConcat(out...)
}

// alignedSep returns the ruler alignment placeholder for the token
// following toks[i], if that token opens an aligned column, or the
// ordinary sep() separator otherwise.
func alignedSep(toks []*token.Token, i int, aligns map[int]*doc.Node) *doc.Node {
	if a, ok := aligns[i+1]; ok {
		return a
	}
	return sep(toks[i])
}

// matchBrace returns the index within toks of the `}` matching the
// `{` at index i, or the last index if unbalanced (a malformed or
// truncated input the stub tolerates rather than panics on).
func matchBrace(toks []*token.Token, i int) int {
	depth := 0
	for j := i; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(toks) - 1
}

// isSwitchHeader reports whether the `{` at index i in toks opens the
// body of a `switch (...) {` statement, by walking back across the
// matching `(...)`.
func isSwitchHeader(toks []*token.Token, i int) bool {
	if i == 0 || toks[i-1].Kind != token.RPAREN {
		return false
	}
	depth := 1
	j := i - 2
	for j >= 0 && depth > 0 {
		switch toks[j].Kind {
		case token.RPAREN:
			depth++
		case token.LPAREN:
			depth--
		}
		if depth == 0 {
			break
		}
		j--
	}
	return j > 0 && toks[j-1].Kind == token.SWITCH
}

// emit renders tk's leading trivia, its own text, and any trailing
// inline comment.
func emit(tk *token.Token) *doc.Node {
	return doc.NewConcat(leading(tk), doc.NewLiteral(tk.Text), trailingComment(tk))
}

// leading renders tk's prefix trivia: cpp directives and standalone
// comments are emitted verbatim, each followed by the hard newline
// that ended its own source line.
func leading(tk *token.Token) *doc.Node {
	var parts []*doc.Node
	for _, p := range tk.Prefixes {
		switch p.Kind {
		case token.CPP, token.CPP_IF, token.CPP_IFNDEF, token.CPP_ELSE,
			token.CPP_ENDIF, token.CPP_DEFINE, token.CPP_INCLUDE:
			parts = append(parts, doc.NewVerbatim(p))
		case token.COMMENT:
			parts = append(parts, doc.NewVerbatim(p), doc.NewHardline())
		}
	}
	if len(parts) == 0 {
		return doc.NewConcat()
	}
	return doc.NewConcat(parts...)
}

// trailingComment renders tk's `//` or `/* */` suffix comment, if
// any, preceded by a single space.
func trailingComment(tk *token.Token) *doc.Node {
	for _, s := range tk.Suffixes {
		if s.Kind == token.COMMENT {
			return doc.NewConcat(doc.NewLiteral(" "), doc.NewVerbatim(s))
		}
	}
	return doc.NewConcat()
}

// sep chooses the separator that follows tk, from the blank-line and
// spacing trivia the lexer already recorded on it: two hard lines
// when the source had a blank line, one when it had a single line
// break, a breakable space when tokens shared a source line with
// space between them, nothing when they were adjacent.
func sep(tk *token.Token) *doc.Node {
	if tk.HasLine(2) {
		return doc.NewConcat(doc.NewHardline(), doc.NewHardline())
	}
	if tk.HasLine(1) {
		return doc.NewHardline()
	}
	if tk.HasSpaces() {
		// Wrapped in its own Group so the printer actually gets to
		// choose: Line only renders as a space once something decides
		// MUNGE mode for it, and nothing else in this package ever
		// opens a Group.
		return doc.NewGroup(doc.NewLine())
	}
	return doc.NewConcat()
}

// stmt describes one flat, depth-0 statement within a block: the
// token range it spans (end exclusive, including its own terminating
// `;` or `}`), and the index of its top-level `=` token, if any (-1 if
// none or if the assignment's left side itself crosses a line break,
// which disqualifies it from column alignment).
type stmt struct {
	start, end  int
	eq          int
	blankBefore bool
}

// splitStatements partitions toks into depth-0 statements, tracking
// paren/bracket/brace nesting so a `;` or `}` inside a nested
// expression, initializer, or compound body doesn't end the
// enclosing statement early. A dangling partial statement at the end
// of toks (no closing `;` or `}`) is simply omitted.
func splitStatements(toks []*token.Token) []stmt {
	var out []stmt
	depth := 0
	start := 0
	eq := -1
	multiline := false

	finish := func(end int) {
		s := stmt{start: start, end: end, eq: eq, blankBefore: start > 0 && toks[start-1].HasLine(2)}
		if multiline || s.eq <= s.start {
			// eq == start means the statement itself opens with `=`
			// (no LHS token for Insert's tk to anchor on); disqualify
			// the same way a multi-line LHS does.
			s.eq = -1
		}
		out = append(out, s)
		start = end
		eq = -1
		multiline = false
	}

	for i, tk := range toks {
		if eq < 0 && tk.HasLine(1) {
			multiline = true
		}
		switch tk.Kind {
		case token.LPAREN, token.LSQUARE, token.LBRACE:
			depth++
		case token.RPAREN, token.RSQUARE:
			depth--
		case token.RBRACE:
			depth--
			if depth == 0 {
				finish(i + 1)
			}
		case token.EQUAL:
			if depth == 0 && eq < 0 {
				eq = i
			}
		case token.SEMI:
			if depth == 0 {
				finish(i + 1)
			}
		}
	}

	return out
}

// visibleWidth estimates the printed column width of toks, a single
// statement's left-hand side: each token's own text plus one column
// per separator that carried a source-level space. Callers only use
// this for a run already confirmed to stay on one line, so it doesn't
// need to account for tabs or hard breaks.
func visibleWidth(toks []*token.Token) int {
	w := 0
	for i, tk := range toks {
		w += len(tk.Text)
		if i+1 < len(toks) && tk.HasSpaces() {
			w++
		}
	}
	return w
}

// alignAssignments finds runs of two or more consecutive depth-0
// `lhs = rhs;` statements -- no blank line separating them, each
// assignment's left side confined to a single source line -- and
// column-aligns their `=` signs with a ruler.Ruler, the same column-
// back-patching the original uses for declarator lists and brace
// initializers. It returns, for each statement in such a run, the
// index of its `=` token mapped to the placeholder padding node the
// caller should splice in place of the ordinary separator there.
func alignAssignments(stream *token.Stream, toks []*token.Token) map[int]*doc.Node {
	stmts := splitStatements(toks)
	aligns := make(map[int]*doc.Node)

	for i := 0; i < len(stmts); {
		if stmts[i].eq < 0 {
			i++
			continue
		}
		j := i + 1
		for j < len(stmts) && stmts[j].eq >= 0 && !stmts[j].blankBefore {
			j++
		}
		if j-i > 1 {
			rl := ruler.New(stream)
			for _, s := range stmts[i:j] {
				width := visibleWidth(toks[s.start:s.eq])
				// Insert's tk is the LHS's own last token, per
				// ruler_insert's convention: its trailing suffix is
				// what carries the tab Exec checks for, and the
				// isdecl/isnexttoken special cases look at the token
				// immediately before the alignment point, not at the
				// `=` itself.
				aligns[s.eq] = rl.Insert(toks[s.eq-1], 1, width, 0)
			}
			rl.Exec()
		}
		i = j
	}

	return aligns
}
