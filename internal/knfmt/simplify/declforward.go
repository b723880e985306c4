package simplify

import (
	"sort"

	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

type forwardDecl struct {
	beg, ident, semi *token.Token
}

// runDeclForward gathers consecutive `struct X;` forward declarations
// and sorts each run alphabetically by tag name, preserving the
// leading/trailing trivia of the run's first/last declaration. Ported
// from simple-decl-forward.c's accumulate-then-flush state machine,
// collapsed here into a single pass that finds runs directly since
// there's no parser driving per-statement enter/leave calls.
func runDeclForward(lx *lexer.Lexer, stream *token.Stream) {
	var run []forwardDecl

	flush := func() {
		defer func() { run = nil }()
		if len(run) < 2 {
			return
		}

		firstUnsorted, lastUnsorted := run[0].beg, run[len(run)-1].semi
		anchor := run[0].semi // reinsertion point, fixed before the sort reorders run
		sort.SliceStable(run, func(i, j int) bool {
			return run[i].ident.Text < run[j].ident.Text
		})
		firstSorted, lastSorted := run[0].beg, run[len(run)-1].semi
		if firstUnsorted != firstSorted {
			firstUnsorted.MovePrefixes(firstSorted)
		}
		if lastUnsorted != lastSorted {
			lastUnsorted.MoveSuffixes(lastSorted)
		}

		after := anchor
		for _, df := range run {
			for tk := df.beg; ; {
				nx := stream.Next(tk)
				lx.MoveAfter(after, tk)
				after = tk
				if tk == df.semi {
					break
				}
				tk = nx
			}
		}
	}

	toks := snapshot(stream)
	for i := 0; i < len(toks); i++ {
		tk := toks[i]
		if tk.Kind != token.STRUCT {
			flush()
			continue
		}
		ident := stream.Next(tk)
		if ident == nil || ident.Kind != token.IDENT {
			flush()
			continue
		}
		semi := stream.Next(ident)
		if semi == nil || semi.Kind != token.SEMI {
			flush()
			continue
		}
		run = append(run, forwardDecl{beg: tk, ident: ident, semi: semi})
	}
	flush()
}
