// Package eventqueue implements the sweep's event queue: a balanced binary
// search tree of event points ordered by [point.Point]'s point order
// (decreasing y, then increasing x), where each event carries the list of
// segments whose canonical upper endpoint is that point.
//
// The queue is backed by github.com/emirpasic/gods' red-black tree, the
// same container the corpus uses for its own event-queue and status-tree
// experiments; its Floor/Ceiling/Left/Right node access give the O(log n)
// insert/take-max/remove the sweep requires without hand-rolling balancing.
package eventqueue

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geosweep/sweepline/options"
	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
	"github.com/geosweep/sweepline/segmentlist"
)

// Event is a single event point together with the segments whose canonical
// upper endpoint is that point (the "upper list").
type Event struct {
	Point point.Point
	Upper *segmentlist.List
}

// Queue is the event queue. The zero value is not usable; construct one
// with [New].
type Queue struct {
	tree *rbt.Tree
	opts options.GeometryOptions
}

func pointComparator(a, b interface{}) int {
	return a.(point.Point).Compare(b.(point.Point))
}

// New creates an empty Queue.
func New(opts ...options.GeometryOptionsFunc) *Queue {
	return &Queue{
		tree: rbt.NewWith(pointComparator),
		opts: options.ApplyGeometryOptions(options.GeometryOptions{}, opts...),
	}
}

func (q *Queue) debugf(function string, line int, format string, args ...any) {
	q.opts.Debugf(function, line, format, args...)
}

// IsEmpty reports whether the queue holds no events.
func (q *Queue) IsEmpty() bool {
	return q.tree.Empty()
}

// Size returns the number of events in the queue.
func (q *Queue) Size() int {
	return q.tree.Size()
}

// InsertPoint returns the event whose point equals p under the current
// tolerance, creating one with an empty upper list if none exists yet.
// Idempotent.
func (q *Queue) InsertPoint(p point.Point) *Event {
	if node := q.tree.GetNode(p); node != nil {
		return node.Value.(*Event)
	}
	ev := &Event{Point: p, Upper: segmentlist.New(0)}
	q.tree.Put(p, ev)
	q.debugf("InsertPoint", 0, "created event at %s", p)
	return ev
}

// InsertSegments orders each segment's endpoints and inserts both as
// events, appending the segment to its upper endpoint's upper list.
// Zero-length segments are inserted once as a single event with no upper
// list entry.
func (q *Queue) InsertSegments(segments []segment.Segment) {
	for _, s := range segments {
		if s.IsDegenerate() {
			a, _ := s.Endpoints()
			q.InsertPoint(a)
			continue
		}
		lower, upper := s.Ordered()
		upperEvent := q.InsertPoint(upper)
		upperEvent.Upper.Append(s)
		q.InsertPoint(lower)
	}
}

// TakeMax detaches and returns the next event of the sweep, the one whose
// point comes first in the point order (greatest y, then smallest x), or nil
// if the queue is empty. Ownership of the event's
// upper list passes to the caller; the queue does not free it.
func (q *Queue) TakeMax() *Event {
	node := q.tree.Left()
	if node == nil {
		return nil
	}
	ev := node.Value.(*Event)
	q.tree.Remove(node.Key)
	return ev
}

// RemovePoint looks up and detaches the event at p, if one exists,
// releasing it and its upper list.
func (q *Queue) RemovePoint(p point.Point) {
	q.tree.Remove(p)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.tree.Clear()
}

// Destroy releases the queue's internal storage. After Destroy, the Queue
// must not be used again.
func (q *Queue) Destroy() {
	q.tree.Clear()
	q.tree = nil
}
