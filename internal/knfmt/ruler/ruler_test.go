package ruler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/ruler"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

func TestRuler_AlignsTabbedColumnToSharedWidth(t *testing.T) {
	a := &token.Token{Kind: token.IDENT, Text: "a"}
	a.Suffixes = []*token.Token{{Kind: token.SPACE, Text: "\t", Flags: token.FlagOptspace}}
	bb := &token.Token{Kind: token.IDENT, Text: "bb"}
	bb.Suffixes = []*token.Token{{Kind: token.SPACE, Text: "\t", Flags: token.FlagOptspace}}

	stream := token.NewStream([]*token.Token{a, bb})
	rl := ruler.New(stream)

	n1 := rl.Insert(a, 1, 1, 0)
	n2 := rl.Insert(bb, 1, 2, 0)
	rl.Exec()

	// Both rows share column 1. maxlen rounds rc.len (2) up to the next
	// multiple of 8: 2 + (8 - 2%8) = 8. Each datum's own indent (maxlen
	// - len) then rounds up to a multiple of 8 in turn, so both land on
	// 8 here despite differing source lengths -- Exec only guarantees
	// every *tab stop* lines up, not that raw column arithmetic does.
	assert.Equal(t, 8, n1.Int)
	assert.Equal(t, 8, n2.Int)
}

func TestRuler_ZeroWidthBeforeSemicolon(t *testing.T) {
	ident := &token.Token{Kind: token.IDENT, Text: "x"}
	ident.Suffixes = []*token.Token{{Kind: token.SPACE, Text: "\t", Flags: token.FlagOptspace}}
	semi := &token.Token{Kind: token.SEMI, Text: ";"}

	stream := token.NewStream([]*token.Token{ident, semi})
	rl := ruler.New(stream)

	n := rl.Insert(ident, 1, 1, 0)
	rl.Exec()

	require.NotNil(t, n)
	assert.Equal(t, 1, n.Int) // NewAlign(1) left as-is; never back-patched
}

func TestRuler_ZeroWidthForDeclKeyword(t *testing.T) {
	kw := &token.Token{Kind: token.STRUCT, Text: "struct"}
	tag := &token.Token{Kind: token.IDENT, Text: "foo"}
	tag.Suffixes = []*token.Token{{Kind: token.SPACE, Text: "\t", Flags: token.FlagOptspace}}
	brace := &token.Token{Kind: token.LBRACE, Text: "{"}

	stream := token.NewStream([]*token.Token{kw, tag, brace})
	rl := ruler.New(stream)

	n := rl.Insert(tag, 1, 3, 0)
	rl.Exec()

	assert.Equal(t, 1, n.Int)
}

func TestRuler_SkipsColumnsWithoutTabs(t *testing.T) {
	a := &token.Token{Kind: token.IDENT, Text: "a"}
	a.Suffixes = []*token.Token{{Kind: token.SPACE, Text: " ", Flags: token.FlagOptspace}}

	stream := token.NewStream([]*token.Token{a})
	rl := ruler.New(stream)

	n := rl.Insert(a, 1, 1, 0)
	rl.Exec()

	assert.Equal(t, 1, n.Int) // untouched NewAlign(1) default: column has no tabbed datum
}
