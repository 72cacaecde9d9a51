// Package sweep implements the Bentley-Ottmann sweep driver: it owns an
// event queue, a status tree, and an append-only intersection list, and
// drives them through the six-phase event handling loop that finds every
// intersection among a set of segments in O((n+k) log n).
//
// The single large event-loop found in earlier fast-scan implementations is
// split here into explicit phase methods, and the status structure is
// backed by the tree-based [statustree.Tree] rather than a flat slice, so
// status operations stay O(log n) as segment counts grow.
package sweep

import (
	"cmp"
	"fmt"

	"github.com/google/btree"

	"github.com/geosweep/sweepline/eventqueue"
	"github.com/geosweep/sweepline/options"
	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
	"github.com/geosweep/sweepline/segmentlist"
	"github.com/geosweep/sweepline/statustree"
)

// Record is a single intersection record: the point at which it occurred,
// and every segment the driver found passing through that point at the
// moment the record was created.
type Record struct {
	Point    point.Point
	Segments []segment.Segment
}

func recordLess(a, b Record) bool {
	return a.Point.Less(b.Point)
}

// Driver owns the queue, status tree, output list, and per-event scratch
// buffers for a single scan. A Driver may be reused for multiple scans via
// [Driver.Clear], but a scan only produces correct results starting from
// an empty driver.
type Driver struct {
	queue    *eventqueue.Queue
	status   *statustree.Tree
	records  *btree.BTreeG[Record]
	lower    *segmentlist.List
	interior *segmentlist.List
	upper    *segmentlist.List
	opts     options.GeometryOptions
	check    bool
}

// Create constructs an empty Driver. Passing [options.WithDebugSink] also
// enables periodic status-tree and intersection-list consistency checks.
func Create(opts ...options.GeometryOptionsFunc) *Driver {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: options.DefaultEpsilon}, opts...)
	return &Driver{
		queue:    eventqueue.New(opts...),
		status:   statustree.New(opts...),
		records:  btree.NewG[Record](32, recordLess),
		lower:    segmentlist.New(0),
		interior: segmentlist.New(0),
		upper:    segmentlist.New(0),
		opts:     o,
		check:    o.DebugSink != nil,
	}
}

func (d *Driver) debugf(function string, line int, format string, args ...any) {
	d.opts.Debugf(function, line, format, args...)
}

// Scan runs the full algorithm over segments, populating the driver's
// intersection list. It requires an empty driver (per [Driver.Clear] or a
// fresh [Create]); partial results from a prior scan are not merged with a
// new one.
func (d *Driver) Scan(segments []segment.Segment) error {
	if !d.queue.IsEmpty() || !d.status.IsEmpty() || d.records.Len() != 0 {
		return fmt.Errorf("sweep: Scan requires an empty driver; call Clear first")
	}

	d.queue.InsertSegments(segments)

	for {
		ev := d.queue.TakeMax()
		if ev == nil {
			break
		}
		if err := d.handleEvent(ev); err != nil {
			d.Clear()
			return fmt.Errorf("sweep: scan aborted: %w", err)
		}
	}

	if d.check {
		if err := d.checkInvariants(); err != nil {
			d.Clear()
			return fmt.Errorf("sweep: scan aborted: %w", err)
		}
	}

	return nil
}

// handleEvent implements the six-phase handle-event-point algorithm, (a)-(f).
func (d *Driver) handleEvent(ev *eventqueue.Event) error {
	p := ev.Point
	d.lower.Clear()
	d.interior.Clear()
	d.upper.Clear()

	// (a) Classify segments already in the status tree that pass through p.
	node := d.status.GetLeftmost(p)
	for node != nil {
		seg := node.Segment()
		if !seg.ContainsPoint(p) {
			break
		}
		lowerEndpoint, _ := seg.Ordered()
		if lowerEndpoint.Eq(p) {
			d.lower.Append(seg)
		} else {
			d.interior.Append(seg)
		}
		next := d.status.GetNext(node)
		d.status.Remove(node)
		node = next
	}

	// (b) Collect upper segments.
	d.upper.AppendAll(ev.Upper)

	// (c) Emit a record if two or more segments meet at p, unless the only
	// segments involved are the trailing end of a collinear overlap already
	// recorded at its start (the segments in lower are wholly coincident
	// with those in interior, and no new segment enters via upper).
	total := d.lower.Len() + d.interior.Len() + d.upper.Len()
	if total > 1 && !d.trailingOverlapOnly() {
		segs := make([]segment.Segment, 0, total)
		segs = append(segs, d.lower.Segments()...)
		segs = append(segs, d.interior.Segments()...)
		segs = append(segs, d.upper.Segments()...)
		d.records.ReplaceOrInsert(Record{Point: p, Segments: segs})
		d.debugf("handleEvent", 0, "recorded %d segments at %s", total, p)
	}

	// (d) Re-insert upper then interior segments. For each newly placed
	// segment, its new neighbors prev and next may have had a stale
	// intersection event queued from before this segment separated them;
	// that event can no longer occur, so it is retracted from the queue.
	reinsert := func(seg segment.Segment) error {
		node := d.status.Insert(seg, p)
		prev := d.status.GetPrevious(node)
		next := d.status.GetNext(node)
		if prev != nil && next != nil {
			if err := d.checkAndRemoveIntersection(prev.Segment(), next.Segment(), p); err != nil {
				return err
			}
		}
		return nil
	}
	for _, seg := range d.upper.Segments() {
		if err := reinsert(seg); err != nil {
			return err
		}
	}
	for _, seg := range d.interior.Segments() {
		if err := reinsert(seg); err != nil {
			return err
		}
	}

	// (e) New event probing.
	if d.upper.Len() == 0 && d.interior.Len() == 0 {
		lowerNode := d.status.GetLower(p)
		upperNode := d.status.GetUpper(p)
		if lowerNode != nil && upperNode != nil {
			if err := d.checkAndQueueIntersection(lowerNode.Segment(), upperNode.Segment(), p); err != nil {
				return err
			}
		}
	} else {
		leftmost := d.status.GetLeftmost(p)
		rightmost := d.status.GetRightmost(p)
		if leftmost != nil {
			if leftNeighbor := d.status.GetPrevious(leftmost); leftNeighbor != nil {
				if err := d.checkAndQueueIntersection(leftNeighbor.Segment(), leftmost.Segment(), p); err != nil {
					return err
				}
			}
		}
		if rightmost != nil {
			if rightNeighbor := d.status.GetNext(rightmost); rightNeighbor != nil {
				if err := d.checkAndQueueIntersection(rightmost.Segment(), rightNeighbor.Segment(), p); err != nil {
					return err
				}
			}
		}
	}

	if d.check {
		if err := d.status.Check(p); err != nil {
			return err
		}
	}

	// (f) Clear.
	d.lower.Clear()
	d.interior.Clear()
	d.upper.Clear()
	return nil
}

// intersectionEventPoint intersects a and b and reports the point at which
// that intersection becomes a queue event, if any: Disjoint pairs have
// none, a Coincide overlap events at its lower (later-swept) endpoint, and
// every other tag events at its single point. A point already passed by
// the sweep (strictly less than p) is reported as absent, since it can no
// longer be acted on.
func (d *Driver) intersectionEventPoint(a, b segment.Segment, p point.Point) (point.Point, bool) {
	result := segment.Intersect(a, b, func(o *options.GeometryOptions) { o.Epsilon = d.opts.Epsilon })
	switch result.Tag {
	case segment.Disjoint:
		return point.Point{}, false
	case segment.Coincide:
		lower, _ := result.Overlap.Ordered()
		if lower.Compare(p) >= 0 {
			return lower, true
		}
		return point.Point{}, false
	default:
		if result.Point.Compare(p) >= 0 {
			return result.Point, true
		}
		return point.Point{}, false
	}
}

// checkAndQueueIntersection intersects a and b; if they meet at or below
// the sweep point p, the intersection is inserted as a future queue event.
func (d *Driver) checkAndQueueIntersection(a, b segment.Segment, p point.Point) error {
	if q, ok := d.intersectionEventPoint(a, b, p); ok {
		d.queue.InsertPoint(q)
	}
	return nil
}

// checkAndRemoveIntersection intersects a and b; if they meet at or below
// the sweep point p, that event is retracted from the queue, since a and b
// are no longer adjacent and so can no longer be found to meet there.
func (d *Driver) checkAndRemoveIntersection(a, b segment.Segment, p point.Point) error {
	if q, ok := d.intersectionEventPoint(a, b, p); ok {
		d.queue.RemovePoint(q)
	}
	return nil
}

// trailingOverlapOnly reports whether the current event's classified
// segments represent only the tail end of a collinear overlap: no segment
// newly enters (upper is empty), at least one segment is ending (lower is
// nonempty) while at least one continues (interior is nonempty), and every
// lower/interior pair is a full collinear overlap (Coincide). Such an event
// carries no information beyond what was already recorded when the overlap
// began, so it is not re-emitted.
func (d *Driver) trailingOverlapOnly() bool {
	if d.upper.Len() != 0 || d.lower.Len() == 0 || d.interior.Len() == 0 {
		return false
	}
	for _, lo := range d.lower.Segments() {
		for _, in := range d.interior.Segments() {
			result := segment.Intersect(lo, in, func(o *options.GeometryOptions) { o.Epsilon = d.opts.Epsilon })
			if result.Tag != segment.Coincide {
				return false
			}
		}
	}
	return true
}

// Size returns the number of intersection records in the driver's output
// list.
func (d *Driver) Size() int {
	return d.records.Len()
}

// First returns the first record in the list under point order, or false
// if the list is empty.
func (d *Driver) First() (Record, bool) {
	return d.records.Min()
}

// Next returns the record immediately after r under point order, or false
// if r is the last record.
func (d *Driver) Next(r Record) (Record, bool) {
	var result Record
	found := false
	skippedSelf := false
	d.records.AscendGreaterOrEqual(r, func(item Record) bool {
		if !skippedSelf {
			skippedSelf = true
			if cmp.Compare(item.Point.X(), r.Point.X()) == 0 && cmp.Compare(item.Point.Y(), r.Point.Y()) == 0 {
				return true
			}
		}
		result = item
		found = true
		return false
	})
	return result, found
}

// Clear empties the queue, status tree, scratch buffers, and intersection
// list, leaving the driver ready for a fresh scan.
func (d *Driver) Clear() {
	d.queue.Clear()
	d.status.Clear()
	d.lower.Clear()
	d.interior.Clear()
	d.upper.Clear()
	d.records.Clear(false)
}

// Destroy releases the driver's internal storage. After Destroy, the
// Driver must not be used again.
func (d *Driver) Destroy() {
	d.queue.Destroy()
	d.status.Destroy()
	d.records.Clear(false)
	d.records = nil
}

// checkInvariants checks that the intersection list iterates in strictly
// increasing point order and that the number of records it iterates equals
// its reported length. It does not recount event points; Scan only inserts
// a record at an event where more than one segment met.
func (d *Driver) checkInvariants() error {
	count := 0
	var prev Record
	havePrev := false
	ok := true
	d.records.Ascend(func(item Record) bool {
		count++
		if havePrev && !prev.Point.Less(item.Point) {
			ok = false
			return false
		}
		prev, havePrev = item, true
		return true
	})
	if !ok {
		return fmt.Errorf("sweep: consistency check: intersection list is not strictly ordered")
	}
	if count != d.records.Len() {
		return fmt.Errorf("sweep: consistency check: intersection list length mismatch")
	}
	return nil
}
