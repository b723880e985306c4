// Package ruler back-patches column alignment across a run of
// otherwise independently printed rows (declarator lists, brace-block
// member initializers, backslash-continued macro bodies): each row
// registers a placeholder cell via Insert, and once every row in the
// run has been seen, Exec computes the column width and pokes the
// final padding into each placeholder. Ported from
// original_source/ruler.c.
package ruler

import (
	"github.com/jcorbin/knfmt/internal/knfmt/doc"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

type datum struct {
	align   *doc.Node
	len     int
	nspaces int
}

type column struct {
	datums  []datum
	len     int
	nspaces int
	ntabs   int
}

// Ruler accumulates column alignment requests across one brace block,
// declarator list, or backslash-continuation run, and resolves them to
// final padding widths on Exec. Construct one with New: Insert
// consults the ruler's stream, which the zero value lacks.
type Ruler struct {
	stream  *token.Stream
	columns []column
}

// New returns a Ruler whose isdecl/isnexttoken checks consult stream
// for token adjacency.
func New(stream *token.Stream) *Ruler {
	return &Ruler{stream: stream}
}

// Insert registers a new alignment datum for column col (1-based) at
// the point represented by tk: a `doc.Align` placeholder node is
// created and returned for the caller to splice into the document at
// tk's position; Exec later overwrites its width. length is the
// visible width of the content being aligned (e.g. a declarator
// name's length) and nspaces the number of literal spaces already
// present before it in the source (used to preserve relative manual
// alignment nudges); both are ignored (the cell contributes a bare
// single-space `ALIGN(1)`) when tk is immediately followed by `;`, or
// when tk introduces an enum/struct/union declaration -- mirroring
// ruler_insert's two special cases exactly.
func (rl *Ruler) Insert(tk *token.Token, col, length, nspaces int) *doc.Node {
	for len(rl.columns) < col {
		rl.columns = append(rl.columns, column{})
	}
	rc := &rl.columns[col-1]

	d := datum{align: doc.NewAlign(1)}

	if rl.isNextToken(tk, token.SEMI) {
		rc.datums = append(rc.datums, d)
		return d.align
	}
	if rl.isDecl(tk) {
		rc.datums = append(rc.datums, d)
		return d.align
	}

	d.len = length
	d.nspaces = nspaces
	if d.len > rc.len {
		rc.len = d.len
	}
	if d.nspaces > rc.nspaces {
		rc.nspaces = d.nspaces
	}
	if tk.HasTabs() {
		rc.ntabs++
	}
	rc.datums = append(rc.datums, d)
	return d.align
}

// Exec resolves every column's final width and overwrites each
// placeholder Align node's width in place, then resets the ruler for
// reuse.
func (rl *Ruler) Exec() {
	for i := range rl.columns {
		rc := &rl.columns[i]
		if rc.ntabs == 0 {
			continue
		}

		maxlen := rc.len + (8 - rc.len%8)

		for _, d := range rc.datums {
			if d.len == 0 {
				continue
			}
			indent := maxlen - d.len
			if indent%8 > 0 {
				indent += 8 - indent%8
			}
			indent += rc.nspaces - d.nspaces
			d.align.Int = indent
		}
	}
	rl.columns = rl.columns[:0]
}

func (rl *Ruler) isDecl(tk *token.Token) bool {
	return rl.stream.IsDecl(tk, token.ENUM) ||
		rl.stream.IsDecl(tk, token.STRUCT) ||
		rl.stream.IsDecl(tk, token.UNION)
}

func (rl *Ruler) isNextToken(tk *token.Token, kind token.Kind) bool {
	nx := rl.stream.Next(tk)
	return nx != nil && nx.Kind == kind
}
