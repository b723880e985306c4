package clangadapt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/clangadapt"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

func mainTok(kind token.Kind, text string, prefixes ...*token.Token) *token.Token {
	tk := &token.Token{Kind: kind, Text: text}
	tk.Prefixes = prefixes
	return tk
}

func TestLink_IfElseEndifChain(t *testing.T) {
	ifTok := &token.Token{Kind: token.CPP_IF, Text: "#if A"}
	elseTok := &token.Token{Kind: token.CPP_ELSE, Text: "#else"}
	endifTok := &token.Token{Kind: token.CPP_ENDIF, Text: "#endif"}

	a := mainTok(token.IDENT, "a", ifTok)
	b := mainTok(token.IDENT, "b", elseTok)
	c := mainTok(token.IDENT, "c", endifTok)

	stream := token.NewStream([]*token.Token{a, b, c})
	clangadapt.Link(stream)

	require.NotNil(t, ifTok.Branch.Next)
	assert.Same(t, elseTok, ifTok.Branch.Next)
	assert.Same(t, ifTok, elseTok.Branch.Prev)
	assert.Same(t, ifTok, elseTok.Branch.Parent)

	require.NotNil(t, elseTok.Branch.Next)
	assert.Same(t, endifTok, elseTok.Branch.Next)
	assert.Same(t, elseTok, endifTok.Branch.Prev)
	assert.Same(t, ifTok, endifTok.Branch.Parent)
}

func TestLink_EmptyElseBranchIsSpliced(t *testing.T) {
	ifTok := &token.Token{Kind: token.CPP_IF, Text: "#if A"}
	elseTok := &token.Token{Kind: token.CPP_ELSE, Text: "#else"}
	endifTok := &token.Token{Kind: token.CPP_ENDIF, Text: "#endif"}

	// #else and #endif both anchor the same main token `a`: the else
	// branch holds no main tokens and is spliced out of the chain.
	a := mainTok(token.IDENT, "a", ifTok, elseTok, endifTok)

	stream := token.NewStream([]*token.Token{a})
	clangadapt.Link(stream)

	assert.True(t, elseTok.HasFlags(token.FlagDiscard))
	require.NotNil(t, ifTok.Branch.Next)
	assert.Same(t, endifTok, ifTok.Branch.Next)
	assert.Same(t, ifTok, endifTok.Branch.Prev)
}

func TestLink_UnbalancedIfAtEOFIsPurged(t *testing.T) {
	ifTok := &token.Token{Kind: token.CPP_IF, Text: "#if A"}
	a := mainTok(token.IDENT, "a", ifTok)

	stream := token.NewStream([]*token.Token{a})
	clangadapt.Link(stream)

	assert.True(t, ifTok.HasFlags(token.FlagDiscard))
}

func TestLink_NestedIfs(t *testing.T) {
	outerIf := &token.Token{Kind: token.CPP_IF, Text: "#if A"}
	innerIf := &token.Token{Kind: token.CPP_IF, Text: "#if B"}
	innerEndif := &token.Token{Kind: token.CPP_ENDIF, Text: "#endif"}
	outerEndif := &token.Token{Kind: token.CPP_ENDIF, Text: "#endif"}

	a := mainTok(token.IDENT, "a", outerIf, innerIf)
	b := mainTok(token.IDENT, "b", innerEndif)
	c := mainTok(token.IDENT, "c", outerEndif)

	stream := token.NewStream([]*token.Token{a, b, c})
	clangadapt.Link(stream)

	require.NotNil(t, innerIf.Branch.Next)
	assert.Same(t, innerEndif, innerIf.Branch.Next)

	require.NotNil(t, outerIf.Branch.Next)
	assert.Same(t, outerEndif, outerIf.Branch.Next)
}
