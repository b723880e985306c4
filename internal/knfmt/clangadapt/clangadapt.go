// Package clangadapt implements component C of the formatter core: a
// post-lex pass linking every `#else`/`#endif` trivia token to its
// previous sibling and `#if` parent, producing the branch topology the
// document evaluator consults to mute unreached cpp branches.
//
// Grounded on the branch-linking walk in
// knfmt's clang.c (original_source/clang.c): when an `#else` and the
// `#endif` that follows it anchor the same main token, the branch
// between them contains no main tokens and is spliced out entirely.
package clangadapt

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// frame tracks one open `#if` while walking the stream.
type frame struct {
	ifTok     *token.Token // the CPP_IF trivia token
	anchor    *token.Token // main token the current branch is attached to
	lastBranch *token.Token // most recently linked sibling (starts as ifTok)
}

// Link walks every main token in stream in order and wires up the
// branch topology across their CPP_IF/CPP_ELSE/CPP_ENDIF prefix
// trivia. Call once, after lexing, before any simplification pass
// runs.
func Link(stream *token.Stream) {
	var stack []*frame

	for _, main := range stream.All() {
		for _, p := range main.Prefixes {
			switch p.Kind {
			case token.CPP_IF, token.CPP_IFNDEF:
				stack = append(stack, &frame{ifTok: p, anchor: main, lastBranch: p})
			case token.CPP_ELSE:
				if len(stack) == 0 {
					continue
				}
				f := stack[len(stack)-1]
				link(f.lastBranch, p)
				if f.anchor == main {
					unlinkEmpty(f.lastBranch, p)
				}
				f.lastBranch = p
				f.anchor = main
			case token.CPP_ENDIF:
				if len(stack) == 0 {
					continue
				}
				f := stack[len(stack)-1]
				link(f.lastBranch, p)
				if f.anchor == main {
					unlinkEmpty(f.lastBranch, p)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	// Purge unbalanced branches left open at EOF.
	for _, f := range stack {
		purge(f.ifTok)
	}
}

func link(prev, next *token.Token) {
	prev.Branch.Next = next
	next.Branch.Prev = prev
	next.Branch.Parent = topOf(prev)
}

func topOf(tk *token.Token) *token.Token {
	for tk.Branch.Prev != nil {
		tk = tk.Branch.Prev
	}
	return tk
}

// unlinkEmpty drops prev from the chain when the branch it introduced
// (ending at next) contained no main tokens: if the else/endif
// anchors the same main token as the top of the branch stack, the
// intermediate branch is empty and is unlinked.
func unlinkEmpty(prev, next *token.Token) {
	if prev.Kind == token.CPP_ELSE {
		before := prev.Branch.Prev
		if before != nil {
			before.Branch.Next = next
			next.Branch.Prev = before
		}
		removeFromOwner(prev)
	}
}

func removeFromOwner(trivia *token.Token) {
	// trivia tokens are only reachable through their owner's
	// Prefixes slice; owners aren't tracked on Token itself, so
	// callers that need hard removal from a specific owner use
	// token.Stream-level helpers. Here we simply mark it discarded so
	// the printer skips it even if still reachable.
	trivia.Flags |= token.FlagDiscard
}

// purge unlinks every sibling reachable from ifTok, for use when EOF
// is reached with the `#if` stack non-empty (malformed or truncated
// input.
func purge(ifTok *token.Token) {
	for tk := ifTok; tk != nil; tk = tk.Branch.Next {
		tk.Flags |= token.FlagDiscard
	}
}
