package diffchunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/knfmt/internal/knfmt/diffchunk"
)

func TestChunk_Covers(t *testing.T) {
	c := diffchunk.Chunk{Path: "a.c", Begin: 10, End: 20}
	assert.True(t, c.Covers(10))
	assert.True(t, c.Covers(20))
	assert.False(t, c.Covers(9))
	assert.False(t, c.Covers(21))
}

func TestSet_NilIsDisabled(t *testing.T) {
	var s *diffchunk.Set
	assert.False(t, s.Enabled())
	assert.False(t, s.Covers(5))
	assert.False(t, s.CoversRange(1, 100))
	_, ok := s.ChunkFor(5)
	assert.False(t, ok)
	assert.Nil(t, s.All())
}

func TestNewSet_FiltersByPathAndSorts(t *testing.T) {
	s := diffchunk.NewSet("b.c", []diffchunk.Chunk{
		{Path: "a.c", Begin: 1, End: 5},
		{Path: "b.c", Begin: 30, End: 40},
		{Path: "b.c", Begin: 10, End: 20},
	})

	all := s.All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, 10, all[0].Begin)
		assert.Equal(t, 30, all[1].Begin)
	}
	assert.True(t, s.Enabled())
}

func TestSet_CoversAndChunkFor(t *testing.T) {
	s := diffchunk.NewSet("", []diffchunk.Chunk{
		{Begin: 1, End: 5},
		{Begin: 10, End: 20},
	})

	assert.True(t, s.Covers(3))
	assert.False(t, s.Covers(7))

	c, ok := s.ChunkFor(15)
	assert.True(t, ok)
	assert.Equal(t, 10, c.Begin)

	_, ok = s.ChunkFor(7)
	assert.False(t, ok)
}

func TestSet_CoversRangeOverlap(t *testing.T) {
	s := diffchunk.NewSet("", []diffchunk.Chunk{{Begin: 10, End: 20}})

	assert.True(t, s.CoversRange(5, 10))
	assert.True(t, s.CoversRange(15, 25))
	assert.True(t, s.CoversRange(12, 18))
	assert.False(t, s.CoversRange(1, 5))
	assert.False(t, s.CoversRange(21, 30))
}
