package simplify

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

type simpleDecl struct {
	typeBeg, typeEnd, ident, semi *token.Token
}

// runDeclMerge collapses a run of consecutive single-variable
// declarations sharing an identical base type into one comma-joined
// declaration, e.g.
//
//	int a;
//	int b;
//
// becomes `int a, b;`. Grounded on simple-decl.c's type-keyed grouping
// (there: a uthash table of decl_var_list buckets by type spelling,
// populated across a whole translation unit, each bucket's variables
// sorted alphabetically and physically relocated next to each other
// before the merge); simplified here to only merge immediately
// adjacent declarations of identical type spelling in their existing
// order, which covers the common case the original targets (repeated
// one-per-line variable declarations already grouped together)
// without the original's cross-function bucket bookkeeping or
// physical reordering of already-adjacent identifiers.
func runDeclMerge(lx *lexer.Lexer, stream *token.Stream) {
	toks := snapshot(stream)
	i := 0
	for i < len(toks) {
		d, ok := matchSimpleDecl(stream, toks[i])
		if !ok {
			i++
			continue
		}

		run := []simpleDecl{d}
		typeText := declTypeText(stream, d)
		j := i
		for {
			idx := indexOf(toks, stream.Next(run[len(run)-1].semi))
			if idx < 0 {
				break
			}
			nd, ok := matchSimpleDecl(stream, toks[idx])
			if !ok || declTypeText(stream, nd) != typeText {
				break
			}
			run = append(run, nd)
			j = idx
		}

		if len(run) > 1 {
			mergeDecls(lx, stream, run)
		}
		i = j + 1
	}
}

// matchSimpleDecl recognizes `TYPE+ IDENT ;` starting at tk: one or
// more leading type/qualifier tokens, a single identifier, and a
// terminating semicolon with nothing else in between (no pointer
// stars, no initializer, no array brackets) -- the narrow shape
// simple-decl.c itself only merges.
func matchSimpleDecl(stream *token.Stream, tk *token.Token) (simpleDecl, bool) {
	if tk == nil || (!tk.HasFlags(token.FlagType) && !tk.HasFlags(token.FlagQualifier)) {
		return simpleDecl{}, false
	}
	typeEnd := tk
	for {
		nx := stream.Next(typeEnd)
		if nx == nil {
			return simpleDecl{}, false
		}
		if nx.HasFlags(token.FlagType) || nx.HasFlags(token.FlagQualifier) {
			typeEnd = nx
			continue
		}
		if nx.Kind != token.IDENT {
			return simpleDecl{}, false
		}
		semi := stream.Next(nx)
		if semi == nil || semi.Kind != token.SEMI {
			return simpleDecl{}, false
		}
		return simpleDecl{typeBeg: tk, typeEnd: typeEnd, ident: nx, semi: semi}, true
	}
}

func declTypeText(stream *token.Stream, d simpleDecl) string {
	var parts []string
	for tk := d.typeBeg; ; tk = stream.Next(tk) {
		parts = append(parts, tk.Text)
		if tk == d.typeEnd {
			break
		}
	}
	return strings.Join(parts, " ")
}

func indexOf(toks []*token.Token, tk *token.Token) int {
	for i, t := range toks {
		if t == tk {
			return i
		}
	}
	return -1
}

func mergeDecls(lx *lexer.Lexer, stream *token.Stream, run []simpleDecl) {
	last := run[len(run)-1].semi
	for k, d := range run {
		if k > 0 {
			comma := lx.Emit(token.COMMA, ",")
			sp := lx.Emit(token.SPACE, " ")
			sp.Flags |= token.FlagOptspace
			comma.Suffixes = append(comma.Suffixes, sp)
			lx.InsertBefore(d.typeBeg, comma)
			for tk := d.typeBeg; tk != d.ident; {
				nx := stream.Next(tk)
				lx.Remove(tk, true)
				tk = nx
			}
		}
		if d.semi != last {
			lx.Remove(d.semi, true)
		}
	}
}
