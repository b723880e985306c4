// Package doc implements the formatter's intermediate representation
// (a Wadler/Prettier-style "document" tree) and the evaluator that
// prints it to bytes given a resolved style and, in diff mode, a
// lexer to source verbatim bytes from. Grounded on
// original_source/doc.h's enum doc_type and doc.c's doc_exec1 dispatch,
// adapted from the original's arena-owned, parent-linked node graph to
// a plain Go tree of *Node values built with constructor functions,
// since Go's GC makes the arena-lifetime bookkeeping doc_free existed
// for unnecessary.
package doc

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// Kind identifies a document node's shape, mirroring enum doc_type.
type Kind int

const (
	Concat Kind = iota
	Group
	Indent
	Dedent
	Align
	Literal
	Verbatim
	Line
	Softline
	Hardline
	Optline
	Mute
	Optional
	Minimize
	Scope
)

// IndentSentinel selects one of the special INDENT behaviors; with
// IndentWidth, Node.Int holds a plain indent-width increment.
type IndentSentinel int

const (
	IndentWidth IndentSentinel = iota // plain width increment, see Node.Int
	IndentParens
	IndentForce
	IndentNewline
)

// Node is one document IR node. Only the fields relevant to Kind are
// populated; callers use the constructor functions below rather than
// building a Node literal directly.
type Node struct {
	Kind Kind

	Children []*Node // Concat
	Child    *Node   // Group, Indent, Dedent, Optional, Scope

	Sentinel IndentSentinel // Indent
	Int      int            // Indent width, Align width, Mute delta

	Text string       // Literal
	Tok  *token.Token // Verbatim

	Variants []MinimizeVariant // Minimize

	Annotation string // optional trace label, set via Annotate
}

// MinimizeVariant is one candidate rendering tried by Minimize; Indent
// sets the indent width used while rendering Doc, and Force makes this
// variant win unconditionally regardless of its score.
type MinimizeVariant struct {
	Indent int
	Doc    *Node
	Force  bool
}

func node(k Kind) *Node { return &Node{Kind: k} }

// NewConcat concatenates children in order.
func NewConcat(children ...*Node) *Node {
	n := node(Concat)
	n.Children = children
	return n
}

// NewGroup wraps child so the evaluator decides BREAK vs MUNGE for it
// as a unit via a fits-check.
func NewGroup(child *Node) *Node {
	n := node(Group)
	n.Child = child
	return n
}

// NewIndent increments the current indent level by width while
// printing child.
func NewIndent(width int, child *Node) *Node {
	n := node(Indent)
	n.Sentinel = IndentWidth
	n.Int = width
	n.Child = child
	return n
}

// NewIndentParens marks child as living inside a construct that should
// align with an open paren on the previous line once one has been
// seen at the start of a line.
func NewIndentParens(child *Node) *Node {
	n := node(Indent)
	n.Sentinel = IndentParens
	n.Child = child
	return n
}

// NewIndentForce pads output up to the current indent level
// immediately, rather than deferring to the next newline.
func NewIndentForce(child *Node) *Node {
	n := node(Indent)
	n.Sentinel = IndentForce
	n.Child = child
	return n
}

// NewDedent resets the indent to zero while printing child, trimming
// trailing whitespace from the output first.
func NewDedent(child *Node) *Node {
	n := node(Dedent)
	n.Child = child
	return n
}

// NewAlign writes n columns of raw padding (tabs then spaces).
func NewAlign(n int) *Node {
	d := node(Align)
	d.Int = n
	return d
}

// NewLiteral emits s verbatim, advancing the column counter (tabs
// advance to the next multiple of 8).
func NewLiteral(s string) *Node {
	n := node(Literal)
	n.Text = s
	return n
}

// NewVerbatim emits tok's exact source text, used for cpp directives
// and diff-unchanged regions.
func NewVerbatim(tok *token.Token) *Node {
	n := node(Verbatim)
	n.Tok = tok
	return n
}

// NewLine is a soft separator: a space in MUNGE, a newline+indent in
// BREAK.
func NewLine() *Node { return node(Line) }

// NewSoftline is empty in MUNGE, a newline+indent in BREAK.
func NewSoftline() *Node { return node(Softline) }

// NewHardline always emits a newline+indent.
func NewHardline() *Node { return node(Hardline) }

// NewOptline emits a newline only if an enclosing Optional is
// currently requesting one.
func NewOptline() *Node { return node(Optline) }

// NewMute adjusts the printer's mute depth by delta while printing
// child.
func NewMute(delta int, child *Node) *Node {
	n := node(Mute)
	n.Int = delta
	n.Child = child
	return n
}

// NewOptional wraps child, a subtree whose Optline nodes may fire.
func NewOptional(child *Node) *Node {
	n := node(Optional)
	n.Child = child
	return n
}

// NewMinimize tries each variant and emits the lowest-cost one (ties
// broken by "first declared wins"), unless a variant is Force.
func NewMinimize(variants []MinimizeVariant) *Node {
	n := node(Minimize)
	n.Variants = variants
	return n
}

// NewScope delimits the lifetime of IndentNewline conditional indents
// within child.
func NewScope(child *Node) *Node {
	n := node(Scope)
	n.Child = child
	return n
}

// Annotate attaches a trace label to n and returns n, for call-site
// chaining.
func (n *Node) Annotate(suffix string) *Node {
	n.Annotation = suffix
	return n
}
