package simplify

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/style"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// RunCppAlign realigns the trailing `\` line-continuation markers of a
// multi-line macro body so they land in a single column, per
// AlignEscapedNewlines (DontAlign squeezes to one space before `\`;
// Left packs to the longest line's natural width; Right pads out to
// the column limit). Grounded on cpp-align.c's nextline/sense_alignment
// shape; simplified to a direct text rewrite of the trivia token
// rather than routing the line bodies back through the doc/ruler
// pipeline (which the original does so each line's *printed* width,
// not its raw source width, drives the column -- out of reach here
// since this runs as a standalone trivia-text pass, not during
// document production). simplify.Run invokes it on every CPP_DEFINE
// prefix trivia token; a token with fewer than two lines, or with a
// non-final line not ending in `\`, is left unchanged.
func RunCppAlign(tk *token.Token, st *style.Style) {
	if tk.Kind != token.CPP_DEFINE && tk.Kind != token.CPP {
		return
	}
	lines := splitLines(tk.Text)
	if len(lines) < 2 {
		return
	}

	bodies := make([]string, len(lines)-1)
	maxlen := 0
	for i := 0; i < len(lines)-1; i++ {
		trimmed := strings.TrimRight(lines[i], " \t")
		if !strings.HasSuffix(trimmed, "\\") {
			return
		}
		body := strings.TrimRight(strings.TrimSuffix(trimmed, "\\"), " \t")
		bodies[i] = body
		if len(body) > maxlen {
			maxlen = len(body)
		}
	}

	var target int
	switch st.AlignEscapedNewlines {
	case style.EscapedNewlinesDontAlign:
		target = -1 // one space, no shared column
	case style.EscapedNewlinesLeft:
		target = maxlen + 1
	case style.EscapedNewlinesRight:
		limit := st.ColumnLimitOrUnlimited(maxlen + 1)
		if limit < maxlen+1 {
			limit = maxlen + 1
		}
		target = limit
	}

	var buf strings.Builder
	for i, body := range bodies {
		buf.WriteString(body)
		if target < 0 {
			buf.WriteByte(' ')
		} else {
			for n := len(body); n < target; n++ {
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\\\n")
	}
	buf.WriteString(lines[len(lines)-1])
	buf.WriteByte('\n')
	tk.Text = buf.String()
}
