package segmentlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
)

func TestList_AppendAndAt(t *testing.T) {
	l := New(0)
	s1 := segment.New(point.New(0, 0), point.New(1, 1))
	s2 := segment.New(point.New(1, 0), point.New(0, 1))
	l.Append(s1)
	l.Append(s2)

	require.Equal(t, 2, l.Len())
	assert.True(t, l.At(0).Eq(s1))
	assert.True(t, l.At(1).Eq(s2))
}

func TestList_AppendAll(t *testing.T) {
	a := New(0)
	a.Append(segment.New(point.New(0, 0), point.New(1, 1)))

	b := New(0)
	b.Append(segment.New(point.New(2, 2), point.New(3, 3)))
	b.Append(segment.New(point.New(4, 4), point.New(5, 5)))

	a.AppendAll(b)
	assert.Equal(t, 3, a.Len())
}

func TestList_AppendAllNil(t *testing.T) {
	a := New(0)
	a.Append(segment.New(point.New(0, 0), point.New(1, 1)))
	a.AppendAll(nil)
	assert.Equal(t, 1, a.Len())
}

func TestList_Clear(t *testing.T) {
	l := New(0)
	l.Append(segment.New(point.New(0, 0), point.New(1, 1)))
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestList_ClearReusesBackingArray(t *testing.T) {
	l := New(4)
	l.Append(segment.New(point.New(0, 0), point.New(1, 1)))
	l.Clear()
	l.Append(segment.New(point.New(2, 2), point.New(3, 3)))
	require.Equal(t, 1, l.Len())
	assert.True(t, l.At(0).Eq(segment.New(point.New(2, 2), point.New(3, 3))))
}

func TestList_Snapshot(t *testing.T) {
	l := New(0)
	l.Append(segment.New(point.New(0, 0), point.New(1, 1)))

	snap := l.Snapshot()
	l.Clear()
	l.Append(segment.New(point.New(9, 9), point.New(8, 8)))

	require.Equal(t, 1, snap.Len())
	assert.True(t, snap.At(0).Eq(segment.New(point.New(0, 0), point.New(1, 1))))
}

func TestList_NilSafety(t *testing.T) {
	var l *List
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Segments())
}
