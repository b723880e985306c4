package style

import (
	"path"
	"sort"
	"strings"

	sanitizedanchorname "github.com/shurcooL/sanitized_anchor_name"
)

// IncludeGuardMacro derives the `#ifndef`/`#define` macro name for
// filePath, taking only its last IncludeGuards path components,
// uppercasing, and collapsing every run of non `[A-Z0-9]` characters
// (the extension's dot included) to a single `_`, so `foo.h` gives
// `FOO_H`. Grounded on cpp-include-guard.c.
//
// The first pass reuses sanitized_anchor_name.Create's
// lowercase-and-dash-collapse shape (the same one blackfriday uses to
// turn a markdown heading into a URL anchor) before this function
// uppercases and swaps dashes for underscores, rather than
// reimplementing that collapsing loop from scratch.
func (st *Style) IncludeGuardMacro(filePath string) string {
	n := st.IncludeGuards
	if n <= 0 {
		n = 1
	}
	parts := strings.Split(filepathToSlash(filePath), "/")
	if len(parts) > n {
		parts = parts[len(parts)-n:]
	}
	joined := strings.Join(parts, "-")
	anchor := sanitizedanchorname.Create(joined)
	var b strings.Builder
	lastUnderscore := false
	for _, r := range anchor {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			lastUnderscore = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// MainHeaderOf reports the basename a source file's "main" header would
// carry for `#include` regrouping purposes: `x/y.c`'s basename is `y`,
// paired against both `x/y.h` and `y.h`. A trailing `_test`/`Test`
// suffix is stripped before pairing, per cpp-include.c.
func MainHeaderOf(sourceFilename string) string {
	base := path.Base(sourceFilename)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.TrimSuffix(base, "_test")
	base = strings.TrimSuffix(base, "Test")
	return base
}

// IsMainHeader reports whether includePath is the main header pairing
// for sourceFilename: its base name without extension equals
// MainHeaderOf(sourceFilename). Directories are not compared, so
// `<any dir>/<main>.h` and a bare `<main>.h` both pair.
func IsMainHeader(includePath, sourceFilename string) bool {
	main := MainHeaderOf(sourceFilename)
	base := path.Base(includePath)
	base = strings.TrimSuffix(base, path.Ext(base))
	return base == main
}

// IncludePriority returns the include-category group and sort priority
// for includePath given sourceFilename (used to special-case the main
// header, which always sorts first, per clang-format's Regroup policy).
func (st *Style) IncludePriority(includePath, sourceFilename string) (group, sortPriority int) {
	if IsMainHeader(includePath, sourceFilename) {
		return 0, 0
	}
	for _, c := range st.IncludeCategories {
		subject := includePath
		if !c.CaseSensitive {
			subject = strings.ToLower(subject)
		}
		pat := c.Regex
		if !c.CaseSensitive {
			// regex itself is compiled verbatim; case-folding is
			// applied to the subject instead of recompiling the
			// pattern with (?i), matching how the merge step stores
			// CaseSensitive as metadata rather than rewriting Regex.
		}
		if pat.MatchString(subject) {
			return c.Priority, c.SortPriority
		}
	}
	return 1, 1
}

// IncludePriorities returns every distinct group priority configured,
// in ascending order.
func (st *Style) IncludePriorities() []int {
	seen := map[int]bool{0: true, 1: true}
	out := []int{0, 1}
	for _, c := range st.IncludeCategories {
		if !seen[c.Priority] {
			seen[c.Priority] = true
			out = append(out, c.Priority)
		}
	}
	sort.Ints(out)
	return out
}
