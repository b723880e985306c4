package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/lexer"
	"github.com/jcorbin/knfmt/internal/knfmt/simplify"
	"github.com/jcorbin/knfmt/internal/knfmt/style"
	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

func reconstruct(stream *token.Stream) string {
	var out []byte
	for _, tk := range stream.All() {
		for _, p := range tk.Prefixes {
			out = append(out, p.Text...)
		}
		out = append(out, tk.Text...)
		for _, s := range tk.Suffixes {
			out = append(out, s.Text...)
		}
	}
	return string(out)
}

func mustLex(t *testing.T, src string) *lexer.Lexer {
	t.Helper()
	lx, err := lexer.Alloc([]byte(src), lexer.Options{Path: "t.c"})
	require.NoError(t, err)
	return lx
}

func TestRun_Attributes(t *testing.T) {
	lx := mustLex(t, "int __unused__ x;\n")
	simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{Attributes: true})
	assert.Equal(t, "int unused x;\n", reconstruct(lx.Stream()))
}

func TestRun_ImplicitInt(t *testing.T) {
	lx := mustLex(t, "signed x;\n")
	simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{ImplicitInt: true})
	assert.Equal(t, "signed int x;\n", reconstruct(lx.Stream()))
}

func TestRun_Static(t *testing.T) {
	lx := mustLex(t, "const static int x;\n")
	simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{Static: true})
	assert.Equal(t, "static const int x;\n", reconstruct(lx.Stream()))
}

func TestRun_DeclMerge(t *testing.T) {
	lx := mustLex(t, "int a;\nint b;\n")
	simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{DeclMerge: true})
	assert.Equal(t, "int a, b;\n", reconstruct(lx.Stream()))
}

func TestRun_DeclMergeForwardMutualExclusion(t *testing.T) {
	lx := mustLex(t, "int a;\nint b;\n")
	diags := simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{DeclMerge: true, DeclForward: true})
	require.Len(t, diags, 1)
	assert.Equal(t, "int a, b;\n", reconstruct(lx.Stream()))
}

func TestRun_Braces(t *testing.T) {
	lx := mustLex(t, "int a[] = {\n\t1,\n\t2\n};\n")
	simplify.Run(lx, style.Defaults(), "t.c", simplify.Options{Braces: true})
	assert.Contains(t, reconstruct(lx.Stream()), "2,\n")
}

func TestRun_CppIncludeGuard(t *testing.T) {
	lx := mustLex(t, "int foo(void);\n")
	simplify.Run(lx, style.Defaults(), "sub/foo.h", simplify.Options{CppIncludeGuard: true})
	out := reconstruct(lx.Stream())
	assert.Contains(t, out, "#ifndef")
	assert.Contains(t, out, "#define")
	assert.Contains(t, out, "#endif")
}
