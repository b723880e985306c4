package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/format"
	"github.com/jcorbin/knfmt/internal/knfmt/simplify"
)

func TestFormat_NoSimplifyPreservesStructure(t *testing.T) {
	src := "int main(void)\n{\n\treturn 0;\n}\n"
	out, diags, err := format.Format([]byte(src), "t.c", nil, format.Options{})
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, src, string(out))
}

func TestFormat_ImplicitIntSimplify(t *testing.T) {
	src := "signed x;\n"
	out, diags, err := format.Format([]byte(src), "t.c", nil, format.Options{
		Simplify: simplify.Options{ImplicitInt: true},
	})
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "signed int x;\n", string(out))
}

func TestFormat_DeclMergeForwardMutualExclusionDiagnostic(t *testing.T) {
	src := "int a;\nint b;\n"
	_, diags, err := format.Format([]byte(src), "t.c", nil, format.Options{
		Simplify: simplify.Options{DeclMerge: true, DeclForward: true},
	})
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "simplify", diags[0].Stage)
}

func TestFormat_NilStyleMatchesResolvedDefaults(t *testing.T) {
	src := "int a;\n"
	out1, _, err := format.Format([]byte(src), "t.c", nil, format.Options{})
	require.NoError(t, err)

	st, diags := format.ResolveStyle(nil, nil)
	require.Empty(t, diags)

	out2, _, err := format.Format([]byte(src), "t.c", st, format.Options{})
	require.NoError(t, err)
	assert.Equal(t, string(out1), string(out2))
}

func TestFormat_AlignsConsecutiveAssignmentColumn(t *testing.T) {
	src := "a\t= 1;\nbb\t= 2;\n"
	out, diags, err := format.Format([]byte(src), "t.c", nil, format.Options{})
	require.NoError(t, err)
	assert.Empty(t, diags)

	// Both assignments already land on the same tab stop in the
	// source, and ruler-backed alignment preserves that through a
	// real end-to-end Format call, not just a direct cstub unit test.
	assert.Equal(t, "a\t= 1;\nbb\t= 2;\n", string(out))
}

func TestResolveStyle_EmptyConfigIsDefaults(t *testing.T) {
	st, diags := format.ResolveStyle(nil, nil)
	require.Empty(t, diags)
	assert.Equal(t, 80, st.ColumnLimit)
}
