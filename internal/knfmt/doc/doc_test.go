package doc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/knfmt/internal/knfmt/doc"
	"github.com/jcorbin/knfmt/internal/knfmt/style"
)

func TestPrint_GroupMungeWhenFits(t *testing.T) {
	st := style.Defaults()
	root := doc.NewGroup(doc.NewConcat(
		doc.NewLiteral("int"),
		doc.NewLine(),
		doc.NewLiteral("x;"),
	))

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "int x;", string(out))
}

func TestPrint_GroupBreaksWhenItDoesNotFit(t *testing.T) {
	st := style.Defaults()
	st.ColumnLimit = 10

	root := doc.NewGroup(doc.NewConcat(
		doc.NewLiteral("aaaaaaaaaa"),
		doc.NewLine(),
		doc.NewLiteral("bbbbbbbbbb"),
	))

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "aaaaaaaaaa\nbbbbbbbbbb", string(out))
}

func TestPrint_HardlineCapsAtTwoConsecutive(t *testing.T) {
	st := style.Defaults()
	root := doc.NewConcat(
		doc.NewLiteral("a"),
		doc.NewHardline(),
		doc.NewHardline(),
		doc.NewHardline(),
		doc.NewLiteral("b"),
	)

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "a\n\nb", string(out))
}

func TestPrint_Indent(t *testing.T) {
	st := style.Defaults()
	root := doc.NewConcat(
		doc.NewLiteral("if (x) {"),
		doc.NewIndent(8, doc.NewConcat(doc.NewHardline(), doc.NewLiteral("y();"))),
		doc.NewHardline(),
		doc.NewLiteral("}"),
	)

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "if (x) {\n\ty();\n}", string(out))
}

func TestPrint_Align(t *testing.T) {
	st := style.Defaults()
	root := doc.NewConcat(
		doc.NewLiteral("x"),
		doc.NewAlign(3),
		doc.NewLiteral("= 1;"),
	)

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "x   = 1;", string(out))
}

func TestPrint_GroupFitsDespiteActiveOptline(t *testing.T) {
	st := style.Defaults()

	// The Group's child has an Optline firing under the enclosing
	// Optional, followed by an unrelated Line. An active Optline
	// should stop the fits probe the way a Hardline does -- assume
	// fits, since whatever follows it starts on its own line
	// regardless -- not force the whole Group, including the
	// unrelated Line after it, to Break.
	root := doc.NewOptional(doc.NewConcat(
		doc.NewLiteral("a"),
		doc.NewGroup(doc.NewConcat(
			doc.NewOptline(),
			doc.NewLiteral("b"),
			doc.NewLine(),
			doc.NewLiteral("c"),
		)),
	))

	out := doc.Print(root, st, nil, nil)
	assert.Equal(t, "a\nb c", string(out))
}

func TestWidth(t *testing.T) {
	st := style.Defaults()
	root := doc.NewConcat(doc.NewLiteral("int"), doc.NewLine(), doc.NewLiteral("x;"))
	assert.Equal(t, len("int x;"), doc.Width(root, st))
}
