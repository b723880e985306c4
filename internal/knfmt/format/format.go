// Package format implements the orchestrator façade (component H): it
// drives one translation unit from raw source bytes to formatted
// output bytes, wiring every other component together in the order
// original_source/parser.c's top-level driver loop does --
// lex, link cpp branch topology, run the requested simplification
// passes, hand the resulting stream to a document producer, then
// evaluate the document into bytes.
//
// Grounded on the teacher's cmd/soc orchestration shape (a single
// entry function taking raw bytes plus options and returning output
// plus a diagnostics slice, never a log line emitted directly), rather
// than a package-global logger: format.Format returns every
// diagnostic it collects so the caller (cmd/knfmt) decides how and
// where to report them.
package format

import (
	"fmt"

	"github.com/jcorbin/knfmt/internal/knfmt/clangadapt"
	"github.com/jcorbin/knfmt/internal/knfmt/cstub"
	"github.com/jcorbin/knfmt/internal/knfmt/diffchunk"
	"github.com/jcorbin/knfmt/internal/knfmt/doc"
	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/simplify"
	"github.com/jcorbin/knfmt/internal/knfmt/style"
)

// Options selects the simplification passes to run and carries the
// diff-mode restriction, mirroring the CLI's `-s` (enable
// simplifications) and `-D` (diff-chunk restriction) flags.
type Options struct {
	Simplify simplify.Options
	Diff     *diffchunk.Set
}

// Diagnostic is one non-fatal note collected while formatting a
// single translation unit, tagged with the stage that raised it.
type Diagnostic struct {
	Stage string // "lex", "style", "simplify"
	Err   error
}

func (d Diagnostic) Error() string { return fmt.Sprintf("%s: %s", d.Stage, d.Err) }

// Format tokenizes src, links its cpp branch topology, applies the
// requested simplification passes, produces a document for it, and
// evaluates that document against st (or style.Defaults() if st is
// nil) into formatted output bytes. A hard lexer error aborts and
// returns it directly rather than as a Diagnostic, per the error
// design's LexError/IOError split (fatal for the file); every other
// problem collected along the way comes back as a Diagnostic instead.
func Format(src []byte, path string, st *style.Style, opt Options) ([]byte, []Diagnostic, error) {
	if st == nil {
		st = style.Defaults()
	}

	lx, err := lexer.Alloc(src, lexer.Options{Path: path, Diff: opt.Diff, Simple: hasAnySimplify(opt.Simplify)})
	if err != nil {
		return nil, nil, fmt.Errorf("lex %s: %w", path, err)
	}
	if lx.GetError() {
		return nil, nil, fmt.Errorf("lex %s: unrecognized input", path)
	}

	var diags []Diagnostic
	for _, d := range lx.Diagnostics() {
		diags = append(diags, Diagnostic{Stage: "lex", Err: d.Err})
	}

	clangadapt.Link(lx.Stream())

	for _, d := range simplify.Run(lx, st, path, opt.Simplify) {
		diags = append(diags, Diagnostic{Stage: "simplify", Err: d})
	}

	root := cstub.Produce(lx.Stream())
	out := doc.Print(root, st, lx, opt.Diff)

	return out, diags, nil
}

// ResolveStyle parses configBytes (a YAML-subset clang-format
// document) into a Style, returning style.Defaults() unchanged when
// configBytes is empty. fetch resolves BasedOnStyle's upstream base
// and may be nil if the configuration never references one.
func ResolveStyle(configBytes []byte, fetch style.Fetcher) (*style.Style, []Diagnostic) {
	st, styleDiags := style.Resolve(configBytes, fetch)
	var diags []Diagnostic
	for _, d := range styleDiags {
		diags = append(diags, Diagnostic{Stage: "style", Err: d})
	}
	return st, diags
}

func hasAnySimplify(opt simplify.Options) bool {
	return opt.Attributes || opt.DeclForward || opt.DeclMerge || opt.DeclProto ||
		opt.ExprPrintf || opt.ImplicitInt || opt.Unsigned || opt.Static ||
		opt.StmtEmptyLoop || opt.StmtSwitch || opt.Braces ||
		opt.CppIncludeGuard || opt.CppInclude || opt.CppAlign
}
