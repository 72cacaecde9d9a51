// Package segmentlist provides SegmentList, an ordered, append-friendly
// collection of borrowed [segment.Segment] references. The event queue uses
// it for each event's upper list, and the sweep driver uses it for the
// three per-event scratch buffers (lower, interior, upper).
package segmentlist

import "github.com/geosweep/sweepline/segment"

// List is an ordered collection of segments. Segments are small value
// types, so "borrowing" a reference is simply copying the value; List
// itself never mutates a Segment it holds.
type List struct {
	segments []segment.Segment
}

// New returns an empty List, optionally pre-sized.
func New(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	return &List{segments: make([]segment.Segment, 0, capacity)}
}

// Append adds s to the end of the list.
func (l *List) Append(s segment.Segment) {
	l.segments = append(l.segments, s)
}

// AppendAll adds every segment in other to the end of the list, in order.
func (l *List) AppendAll(other *List) {
	if other == nil {
		return
	}
	l.segments = append(l.segments, other.segments...)
}

// Len returns the number of segments in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.segments)
}

// At returns the segment at index i.
func (l *List) At(i int) segment.Segment {
	return l.segments[i]
}

// Segments returns the list's contents as a plain slice. The returned
// slice shares storage with l; callers that need to keep it past the next
// mutation of l should copy it.
func (l *List) Segments() []segment.Segment {
	if l == nil {
		return nil
	}
	return l.segments
}

// Clear empties the list without releasing its backing array, so it can be
// reused for the next event.
func (l *List) Clear() {
	l.segments = l.segments[:0]
}

// CopyInto appends src's current contents to the end of dst, leaving src
// untouched. [List.Snapshot] uses it to copy a list into a new one.
func CopyInto(dst *List, src *List) {
	if src == nil {
		return
	}
	dst.segments = append(dst.segments, src.segments...)
}

// Snapshot returns a new List holding a copy of l's current contents,
// independent of subsequent Clear/Append calls on l.
func (l *List) Snapshot() *List {
	out := New(l.Len())
	CopyInto(out, l)
	return out
}
