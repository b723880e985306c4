package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/knfmt/internal/knfmt/textio"
)

func TestFindUpwards_FindsInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".clang-format"), []byte("ColumnLimit: 80\n"), 0o644))

	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	path, info, err := textio.FindUpwards(sub, ".clang-format")
	require.NoError(t, err)
	require.NotNil(t, info)

	wantAbs, err := filepath.Abs(filepath.Join(root, ".clang-format"))
	require.NoError(t, err)
	assert.Equal(t, wantAbs, path)
}

func TestFindUpwards_NotFound(t *testing.T) {
	root := t.TempDir()
	_, _, err := textio.FindUpwards(root, ".clang-format")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type recordingWriter struct{ written []byte }

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.written = append(w.written, p...)
	return len(p), nil
}

func TestWriteBuffer_MaybeFlushLineChunks(t *testing.T) {
	var w recordingWriter
	var buf textio.WriteBuffer
	buf.To = &w

	_, _ = buf.WriteString("partial")
	require.NoError(t, buf.MaybeFlush())
	assert.Empty(t, w.written)

	_, _ = buf.WriteString(" line\nmore")
	require.NoError(t, buf.MaybeFlush())
	assert.Equal(t, "partial line\n", string(w.written))
	assert.Equal(t, "more", buf.String())
}

func TestWriteBuffer_Flush(t *testing.T) {
	var w recordingWriter
	var buf textio.WriteBuffer
	buf.To = &w

	_, _ = buf.WriteString("abc")
	require.NoError(t, buf.Flush())
	assert.Equal(t, "abc", string(w.written))
	assert.Equal(t, 0, buf.Len())
}

func TestErrWriter_LatchesFirstError(t *testing.T) {
	ew := &textio.ErrWriter{Writer: &failingWriter{}}
	_, err := ew.Write([]byte("a"))
	require.Error(t, err)

	n, err2 := ew.Write([]byte("b"))
	assert.Equal(t, 0, n)
	assert.Equal(t, err, err2)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assertErr }

var assertErr = assertError("boom")

type assertError string

func (e assertError) Error() string { return string(e) }

func TestPrefixer_PrefixesEveryLine(t *testing.T) {
	var w recordingWriter
	p := textio.PrefixWriter("> ", &w)

	_, err := p.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	assert.Equal(t, "> one\n> two\n", string(w.written))
}

func TestPrefixer_SkipSuppressesNextPrefix(t *testing.T) {
	var w recordingWriter
	p := textio.PrefixWriter("> ", &w)
	p.Skip = true

	_, err := p.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	assert.Equal(t, "one\n> two\n", string(w.written))
}
