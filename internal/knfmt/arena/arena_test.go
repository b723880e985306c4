package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/knfmt/internal/knfmt/arena"
)

func TestArena_InternAndTake(t *testing.T) {
	var a arena.Arena

	foo := a.Intern([]byte("foo"))
	assert.Equal(t, "foo", foo.String())
	assert.Equal(t, 3, foo.Len())

	// Take() covers every byte written since the last Take(), including
	// bytes written via Intern -- Intern never advances the cursor.
	_, _ = a.WriteString("bar")
	tok := a.Take()
	assert.Equal(t, "foobar", tok.String())

	// Take again with nothing new written returns an empty token.
	empty := a.Take()
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "", empty.String())
}

func TestArena_Reset(t *testing.T) {
	var a arena.Arena
	a.Intern([]byte("hello"))
	assert.Equal(t, 5, a.Len())
	a.Reset()
	assert.Equal(t, 0, a.Len())
}

func TestToken_IsZero(t *testing.T) {
	var zero arena.Token
	assert.True(t, zero.IsZero())
	assert.Nil(t, zero.Bytes())

	var a arena.Arena
	tok := a.Intern([]byte("x"))
	assert.False(t, tok.IsZero())
}

func TestBuffer_WriteAndGrow(t *testing.T) {
	b := arena.NewBuffer(0)
	_, _ = b.WriteString("hello ")
	_, _ = b.Write([]byte("world"))
	_ = b.WriteByte('!')
	assert.Equal(t, "hello world!", b.String())
	assert.Equal(t, 12, b.Len())
}

func TestBuffer_TruncateAndTrimTrailing(t *testing.T) {
	b := arena.NewBuffer(0)
	_, _ = b.WriteString("abc   ")
	b.TrimTrailing(func(c byte) bool { return c == ' ' })
	assert.Equal(t, "abc", b.String())

	b.Truncate(1)
	assert.Equal(t, "a", b.String())
}

func TestBuffer_Release(t *testing.T) {
	b := arena.NewBuffer(0)
	_, _ = b.WriteString("abc")
	out := b.Release()
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, 0, b.Len())
}

func TestMap_SetGetDelete(t *testing.T) {
	m := arena.NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMap_GrowPreservesEntries(t *testing.T) {
	m := arena.NewMap[int]()
	for i := 0; i < 100; i++ {
		m.Set(string(rune('a'+i%26))+string(rune(i)), i)
	}
	assert.Equal(t, 100, m.Len())

	count := 0
	m.Range(func(string, int) bool {
		count++
		return true
	})
	assert.Equal(t, 100, count)
}

func TestMap_RangeEarlyStop(t *testing.T) {
	m := arena.NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	seen := 0
	m.Range(func(string, int) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestVector_PushPopLast(t *testing.T) {
	var v arena.Vector[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, *v.Last())

	assert.Equal(t, 3, v.Pop())
	assert.Equal(t, 2, v.Len())

	v.Truncate(0)
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Last())
}

func TestScope_ReleaseRunsCleanupsLIFOAndTruncates(t *testing.T) {
	var a arena.Arena
	a.Intern([]byte("kept"))

	var order []int
	sc := a.Enter()
	a.Intern([]byte("scoped"))
	sc.Defer(func() { order = append(order, 1) })
	sc.Defer(func() { order = append(order, 2) })
	sc.Release()

	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 4, a.Len()) // back to "kept"'s length
}
