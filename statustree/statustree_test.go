package statustree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
)

func TestTree_InsertOrdersByX(t *testing.T) {
	tr := New()
	sweep := point.New(0, 5)

	left := segment.New(point.New(0, 10), point.New(0, 0))
	mid := segment.New(point.New(5, 10), point.New(5, 0))
	right := segment.New(point.New(10, 10), point.New(10, 0))

	tr.Insert(mid, sweep)
	tr.Insert(right, sweep)
	tr.Insert(left, sweep)

	require.Equal(t, 3, tr.Size())

	leftmost := tr.GetLeftmost(sweep)
	require.NotNil(t, leftmost)
	assert.True(t, leftmost.Segment().Eq(left))

	rightmost := tr.GetRightmost(point.New(10, 5))
	require.NotNil(t, rightmost)
	assert.True(t, rightmost.Segment().Eq(right))
}

func TestTree_NeighborWalk(t *testing.T) {
	tr := New()
	sweep := point.New(0, 5)

	a := segment.New(point.New(0, 10), point.New(0, 0))
	b := segment.New(point.New(5, 10), point.New(5, 0))
	c := segment.New(point.New(10, 10), point.New(10, 0))
	tr.Insert(a, sweep)
	tr.Insert(b, sweep)
	tr.Insert(c, sweep)

	first := tr.GetLeftmost(sweep)
	require.NotNil(t, first)
	assert.True(t, first.Segment().Eq(a))

	next := tr.GetNext(first)
	require.NotNil(t, next)
	assert.True(t, next.Segment().Eq(b))

	next = tr.GetNext(next)
	require.NotNil(t, next)
	assert.True(t, next.Segment().Eq(c))

	assert.Nil(t, tr.GetNext(next))

	prev := tr.GetPrevious(next)
	require.NotNil(t, prev)
	assert.True(t, prev.Segment().Eq(b))
}

func TestTree_RemoveByHandleSurvivesSweepMove(t *testing.T) {
	tr := New()
	sweepTop := point.New(0, 10)

	diagonal := segment.New(point.New(0, 10), point.New(10, 0))
	vertical := segment.New(point.New(5, 10), point.New(5, 0))

	node := tr.Insert(diagonal, sweepTop)
	tr.Insert(vertical, sweepTop)
	require.Equal(t, 2, tr.Size())

	sweepMid := point.New(0, 5)
	tr.SetSweep(sweepMid)

	tr.Remove(node)
	assert.Equal(t, 1, tr.Size())

	remaining := tr.GetLeftmost(point.New(5, 5))
	require.NotNil(t, remaining)
	assert.True(t, remaining.Segment().Eq(vertical))
}

func TestTree_GetUpperGetLower(t *testing.T) {
	tr := New()
	sweep := point.New(0, 5)

	left := segment.New(point.New(0, 10), point.New(0, 0))
	right := segment.New(point.New(10, 10), point.New(10, 0))
	tr.Insert(left, sweep)
	tr.Insert(right, sweep)

	upper := tr.GetUpper(point.New(3, 5))
	require.NotNil(t, upper)
	assert.True(t, upper.Segment().Eq(right))

	lower := tr.GetLower(point.New(3, 5))
	require.NotNil(t, lower)
	assert.True(t, lower.Segment().Eq(left))
}

func TestTree_LeftmostRightmostExcludeNonPassingSegments(t *testing.T) {
	tr := New()
	sweep := point.New(5, 5)

	passes := segment.New(point.New(0, 10), point.New(10, 0))
	doesNotPass := segment.New(point.New(0, 20), point.New(10, 15))
	tr.Insert(passes, sweep)
	tr.Insert(doesNotPass, sweep)

	leftmost := tr.GetLeftmost(sweep)
	require.NotNil(t, leftmost)
	assert.True(t, leftmost.Segment().Eq(passes))
}

func TestTree_CheckAcceptsOrderedTree(t *testing.T) {
	tr := New()
	sweep := point.New(0, 5)
	left := segment.New(point.New(0, 10), point.New(0, 0))
	right := segment.New(point.New(10, 10), point.New(10, 0))
	tr.Insert(left, sweep)
	tr.Insert(right, sweep)

	assert.NoError(t, tr.Check(sweep))
}

func TestTree_ClearEmptiesTree(t *testing.T) {
	tr := New()
	sweep := point.New(0, 0)
	tr.Insert(segment.New(point.New(0, 1), point.New(0, -1)), sweep)
	tr.Clear()
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Size())
}
