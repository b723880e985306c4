package style

import "github.com/russross/blackfriday"

// docs holds a short markdown blurb per recognized configuration key,
// rendered on demand by Describe. Kept deliberately terse; these are
// a subset of the keys applyKey accepts.
var docs = map[string]string{
	"AlignAfterOpenBracket":       "Controls how arguments wrap after an open bracket: `Align`, `DontAlign`, `AlwaysBreak`, or `BlockIndent`.",
	"BraceWrapping":               "Fine-grained control of brace placement, consulted only when `BreakBeforeBraces: Custom`.",
	"ColumnLimit":                 "Maximum line length before the printer breaks; `0` means unlimited.",
	"IncludeBlocks":               "How `#include` blocks are treated: `Merge`, `Preserve`, or `Regroup`.",
	"IncludeCategories":           "Ordered list of `{Regex, Priority, SortPriority}` used to group and sort includes when `IncludeBlocks: Regroup`.",
	"IncludeGuards":                "Number of trailing path components used to derive an `#ifndef` guard macro name.",
	"IndentWidth":                 "Number of columns per indent level.",
	"SortIncludes":                "Whether and how `#include` lines within a block are sorted.",
	"UseTab":                      "Whether indentation uses tabs, spaces, or a mix.",
}

// Describe renders the markdown blurb for a recognized style key to
// HTML via blackfriday, for use by a CLI `--explain KEY` convenience
// flag. Reports false if key is not documented.
func Describe(key string) ([]byte, bool) {
	src, ok := docs[key]
	if !ok {
		return nil, false
	}
	return blackfriday.Run([]byte(src)), true
}
