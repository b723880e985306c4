// Package style resolves a materialized formatting style from an
// optional YAML-subset configuration, merged over BSD-kernel defaults,
// and exposes typed accessors the document evaluator and simplification
// passes consult. Grounded on original_source/style.c's field layout
// and style.h's option table, adapted to a Go struct of typed fields
// instead of a generic `{is_set, type, value}` slot array, since Go's
// static typing already gives each option its own storage and there is
// no dynamic-dispatch benefit to boxing every value behind an enum tag.
package style

import (
	"bytes"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// BraceWrapping holds the nested BraceWrapping sub-keys, all booleans
// except AfterControlStatement which has three states.
type BraceWrapping struct {
	AfterCaseLabel        bool
	AfterClass            bool
	AfterControlStatement AfterControlStatement
	AfterEnum             bool
	AfterExternBlock      bool
	AfterFunction         bool
	AfterNamespace        bool
	AfterObjCDeclaration  bool
	AfterStruct           bool
	AfterUnion            bool
	BeforeCatch           bool
	BeforeElse            bool
	BeforeLambdaBody      bool
	BeforeWhile           bool
	IndentBraces          bool
	SplitEmptyFunction    bool
	SplitEmptyNamespace   bool
	SplitEmptyRecord      bool
}

// Category is one IncludeCategories entry.
type Category struct {
	Regex         *regexp.Regexp
	Priority      int
	SortPriority  int
	CaseSensitive bool
}

// Style is the fully resolved, typed configuration consulted by the
// rest of this module.
type Style struct {
	AlignAfterOpenBracket      AlignAfterOpenBracket
	AlignEscapedNewlines       AlignEscapedNewlines
	AlignOperands              AlignOperands
	AlwaysBreakAfterReturnType AlwaysBreakAfterReturnType
	BitFieldColonSpacing       BitFieldColonSpacing
	BraceWrapping              BraceWrapping
	BreakBeforeBinaryOperators BreakBeforeBinaryOperators
	BreakBeforeBraces          BreakBeforeBraces
	BreakBeforeTernaryOperators bool
	ColumnLimit                int
	ContinuationIndentWidth    int
	IncludeBlocks              IncludeBlocks
	IncludeCategories          []Category
	IncludeGuards              int
	IndentWidth                int
	SortIncludes               SortIncludes
	UseTab                     UseTab

	set map[string]bool // which keys were explicitly set, for diagnostics/introspection
}

// Fetcher loads the raw bytes of a named upstream base style
// (LLVM, Google, ...). It is an injected seam: resolving what
// `clang-format -dump-config` would emit for a named base style is out
// of scope for this package.
type Fetcher func(name string) ([]byte, error)

// Defaults returns the BSD-kernel baseline style.
func Defaults() *Style {
	return &Style{
		AlignAfterOpenBracket:      DontAlign,
		AlignEscapedNewlines:       EscapedNewlinesRight,
		AlignOperands:              OperandsDontAlign,
		AlwaysBreakAfterReturnType: ReturnTypeAllDefinitions,
		BitFieldColonSpacing:       BitFieldBoth,
		BraceWrapping: BraceWrapping{
			AfterControlStatement: ControlStatementNever,
			AfterFunction:         true,
			BeforeElse:            true,
			BeforeWhile:           true,
		},
		BreakBeforeBinaryOperators: BreakBinaryNone,
		BreakBeforeBraces:          BracesLinux,
		ColumnLimit:                80,
		ContinuationIndentWidth:    4,
		IncludeBlocks:              IncludePreserve,
		IncludeGuards:              0,
		IndentWidth:                8,
		SortIncludes:               SortNever,
		UseTab:                     TabAlways,
		set:                        map[string]bool{},
	}
}

// Diagnostic is a non-fatal StyleParseError: unknown key, wrong value
// shape, a regex that failed to compile, integer overflow, or a nested
// BasedOnStyle deeper than one level. The offending directive is
// skipped and resolution continues.
type Diagnostic struct {
	Doc int // 0-based index of the YAML document the problem was found in
	Err error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("style: document %d: %s", d.Doc, d.Err)
}

// Resolve merges configBytes (a YAML-subset clang-format document, or
// several separated by `---`/`...`) over Defaults(). A nil/empty
// configBytes returns Defaults() unchanged. fetch resolves
// BasedOnStyle's upstream base; it may be nil if no document uses
// BasedOnStyle with a named base other than OpenBSD/InheritParentConfig.
func Resolve(configBytes []byte, fetch Fetcher) (*Style, []Diagnostic) {
	st := Defaults()
	if len(configBytes) == 0 {
		return st, nil
	}
	var diags []Diagnostic
	docs := splitDocuments(configBytes)
	for i, raw := range docs {
		var m map[string]interface{}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			diags = append(diags, Diagnostic{Doc: i, Err: fmt.Errorf("yaml: %w", err)})
			continue
		}
		if lang, ok := m["Language"]; ok {
			if s, ok := lang.(string); !ok || s != "Cpp" {
				continue
			}
		}
		docDiags := mergeDocument(st, m, fetch, 0)
		for _, e := range docDiags {
			diags = append(diags, Diagnostic{Doc: i, Err: e})
		}
	}
	return st, diags
}

// splitDocuments splits raw on YAML document markers `---`/`...` at the
// start of a line, the way clang-format configs commonly bundle a
// Cpp-language document alongside others for different languages.
func splitDocuments(raw []byte) [][]byte {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	var out [][]byte
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			break
		}
		b, err := yaml.Marshal(&node)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		out = [][]byte{raw}
	}
	return out
}

func (st *Style) markSet(key string) {
	if st.set == nil {
		st.set = map[string]bool{}
	}
	st.set[key] = true
}

// IsSet reports whether key was explicitly assigned by a merged
// configuration document (as opposed to carrying its Defaults() value).
func (st *Style) IsSet(key string) bool { return st.set[key] }
