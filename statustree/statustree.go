// Package statustree implements the sweep's status tree: the set of
// segments currently crossing the sweep line, ordered by their X position
// at the sweep line and kept correctly ordered as the sweep point moves.
//
// This is the subtlest piece of the sweep: it uses a red-black tree
// (github.com/emirpasic/gods) with a comparator that reads live mutable
// sweep-point state rather than a memoized key, plus hand-rolled
// predecessor/successor walks over the tree's exported Node.Left/Right/
// Parent fields, since gods does not expose a predecessor/successor method
// directly. The comparator is never memoized: every search recomputes each
// segment's X at the current sweep point. Removal through a node handle is a
// search for the handle's segment under that live comparator, so it finds
// the node only while the live order agrees with the tree's structure; the
// node-handle neighbor walks give O(log n) GetNext/GetPrevious.
package statustree

import (
	"cmp"
	"fmt"
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/geosweep/sweepline/numeric"
	"github.com/geosweep/sweepline/options"
	"github.com/geosweep/sweepline/point"
	"github.com/geosweep/sweepline/segment"
)

type entryKind uint8

const (
	entryNormal entryKind = iota
	entryQuery
)

// entry is the key type stored in the underlying red-black tree. A normal
// entry wraps a segment; a query entry is a synthetic key used only to
// probe Floor/Ceiling for a given X value, never stored.
type entry struct {
	kind entryKind
	seg  segment.Segment
	x    float64
}

// Node is an opaque handle to a stored segment. Node.Remove (via
// [Tree.Remove]) and the neighbor walks ([Tree.GetNext], [Tree.GetPrevious])
// all operate on this handle rather than on a segment value, because the
// tree's comparator is sweep-point dependent: a segment's sort key is not
// stable across sweep moves, only its position in the tree's structure is,
// until the driver explicitly removes and reinserts it.
type Node struct {
	inner *rbt.Node
}

// Segment returns the segment stored at this node.
func (n *Node) Segment() segment.Segment {
	return n.inner.Key.(entry).seg
}

// Tree is the status tree. The zero value is not usable; construct one
// with [New].
type Tree struct {
	tree    *rbt.Tree
	sweep   point.Point
	epsilon float64
	opts    options.GeometryOptions
}

// New creates an empty Tree.
func New(opts ...options.GeometryOptionsFunc) *Tree {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: options.DefaultEpsilon}, opts...)
	eps := o.Epsilon
	if eps <= 0 {
		eps = options.DefaultEpsilon
	}
	t := &Tree{epsilon: eps, opts: o}
	t.tree = rbt.NewWith(t.compare)
	return t
}

func (t *Tree) debugf(function string, line int, format string, args ...any) {
	t.opts.Debugf(function, line, format, args...)
}

// SetSweep sets the sweep point the comparator orders segments against.
// The driver calls this immediately before any operation on the tree.
func (t *Tree) SetSweep(p point.Point) {
	t.sweep = p
}

// IsEmpty reports whether the tree holds no segments.
func (t *Tree) IsEmpty() bool {
	return t.tree.Empty()
}

// Size returns the number of segments in the tree.
func (t *Tree) Size() int {
	return t.tree.Size()
}

// Insert sets the comparator's sweep point to sweep, then inserts seg. If
// an equal segment already exists (per the comparator), its stored
// reference is replaced.
func (t *Tree) Insert(seg segment.Segment, sweep point.Point) *Node {
	t.SetSweep(sweep)
	e := entry{kind: entryNormal, seg: seg}
	t.tree.Put(e, nil)
	node := t.tree.GetNode(e)
	t.debugf("Insert", 0, "inserted %s at sweep %s", seg, sweep)
	return &Node{inner: node}
}

// Remove detaches node from the tree by searching for node's segment with
// the comparator at the tree's current sweep point. If that order no longer
// agrees with the tree's structure the search can miss, and the node then
// stays in the tree.
func (t *Tree) Remove(node *Node) {
	if node == nil || node.inner == nil {
		return
	}
	t.tree.Remove(node.inner.Key)
}

// GetNext returns the in-order successor of node, or nil if node is the
// last segment in the tree.
func (t *Tree) GetNext(node *Node) *Node {
	if node == nil {
		return nil
	}
	if succ := successor(node.inner); succ != nil {
		return &Node{inner: succ}
	}
	return nil
}

// GetPrevious returns the in-order predecessor of node, or nil if node is
// the first segment in the tree.
func (t *Tree) GetPrevious(node *Node) *Node {
	if node == nil {
		return nil
	}
	if pred := predecessor(node.inner); pred != nil {
		return &Node{inner: pred}
	}
	return nil
}

func successor(n *rbt.Node) *rbt.Node {
	if n.Right != nil {
		curr := n.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	curr, p := n, n.Parent
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

func predecessor(n *rbt.Node) *rbt.Node {
	if n.Left != nil {
		curr := n.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	curr, p := n, n.Parent
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}

// GetUpper returns the node holding the smallest-keyed segment whose X at
// sweep is >= sweep.X(), or nil if none qualifies.
func (t *Tree) GetUpper(sweep point.Point) *Node {
	t.SetSweep(sweep)
	q := entry{kind: entryQuery, x: sweep.X()}
	node, found := t.tree.Ceiling(q)
	if !found {
		return nil
	}
	return &Node{inner: node}
}

// GetLower returns the node holding the largest-keyed segment whose X at
// sweep is <= sweep.X(), or nil if none qualifies.
func (t *Tree) GetLower(sweep point.Point) *Node {
	t.SetSweep(sweep)
	q := entry{kind: entryQuery, x: sweep.X()}
	node, found := t.tree.Floor(q)
	if !found {
		return nil
	}
	return &Node{inner: node}
}

// GetLeftmost returns the leftmost node whose segment passes through
// sweep, found by calling [Tree.GetLower] and walking predecessors while
// they still pass through sweep, per the sweep's leftmost/rightmost
// enumeration policy.
func (t *Tree) GetLeftmost(sweep point.Point) *Node {
	t.SetSweep(sweep)
	candidate := t.GetLower(sweep)
	if candidate == nil || !candidate.Segment().ContainsPoint(sweep) {
		return nil
	}
	for {
		prev := t.GetPrevious(candidate)
		if prev == nil || !prev.Segment().ContainsPoint(sweep) {
			return candidate
		}
		candidate = prev
	}
}

// GetRightmost is the mirror of [Tree.GetLeftmost].
func (t *Tree) GetRightmost(sweep point.Point) *Node {
	t.SetSweep(sweep)
	candidate := t.GetUpper(sweep)
	if candidate == nil || !candidate.Segment().ContainsPoint(sweep) {
		return nil
	}
	for {
		next := t.GetNext(candidate)
		if next == nil || !next.Segment().ContainsPoint(sweep) {
			return candidate
		}
		candidate = next
	}
}

// Clear empties the tree.
func (t *Tree) Clear() {
	t.tree.Clear()
}

// Destroy releases the tree's internal storage. After Destroy, the Tree
// must not be used again.
func (t *Tree) Destroy() {
	t.tree.Clear()
	t.tree = nil
}

// Check walks the tree in order and verifies that consecutive segments'
// sweep-line X values are monotonically non-decreasing, the status tree's
// core invariant. It is the Go counterpart of the original's periodic
// consistency check, meant to be called only when diagnostics are enabled.
func (t *Tree) Check(sweep point.Point) error {
	t.SetSweep(sweep)
	iter := t.tree.Iterator()
	havePrev := false
	var prevX float64
	var prevSeg segment.Segment
	for iter.Next() {
		e := iter.Key().(entry)
		x, err := e.seg.XAtSweepY(sweep.X(), sweep.Y())
		if err != nil {
			return fmt.Errorf("statustree: consistency check: %w", err)
		}
		if havePrev && numeric.FloatLessThan(x, prevX, t.epsilon) {
			return fmt.Errorf("statustree: consistency check: segment %s (x=%g) out of order after %s (x=%g)",
				e.seg, x, prevSeg, prevX)
		}
		prevX, prevSeg, havePrev = x, e.seg, true
	}
	return nil
}

// compare is the tree's comparator. It never memoizes a segment's position:
// every call recomputes each side's X at the tree's current sweep point, so
// a search is always consistent with where segments actually sit relative
// to the live sweep line, regardless of when each was inserted.
func (t *Tree) compare(a, b interface{}) int {
	A := a.(entry)
	B := b.(entry)

	if A.kind == entryQuery && B.kind == entryQuery {
		return cmp.Compare(A.x, B.x)
	}
	if A.kind == entryQuery {
		bx, _ := B.seg.XAtSweepY(t.sweep.X(), t.sweep.Y())
		return -cmp.Compare(bx, A.x)
	}
	if B.kind == entryQuery {
		ax, _ := A.seg.XAtSweepY(t.sweep.X(), t.sweep.Y())
		return cmp.Compare(ax, B.x)
	}
	return t.compareSegments(A.seg, B.seg)
}

func (t *Tree) compareSegments(a, b segment.Segment) int {
	if a.Eq(b) {
		return 0
	}

	ax, aErr := a.XAtSweepY(t.sweep.X(), t.sweep.Y())
	bx, bErr := b.XAtSweepY(t.sweep.X(), t.sweep.Y())
	if aErr != nil {
		ax = t.sweep.X()
	}
	if bErr != nil {
		bx = t.sweep.X()
	}

	if !numeric.FloatEquals(ax, bx, t.epsilon) {
		return cmp.Compare(ax, bx)
	}

	aHoriz, bHoriz := a.IsHorizontal(), b.IsHorizontal()
	if aHoriz && !bHoriz {
		return 1
	}
	if bHoriz && !aHoriz {
		return -1
	}

	aInv, _ := inverseSlopeOrInf(a)
	bInv, _ := inverseSlopeOrInf(b)
	if aInv != bInv {
		return cmp.Compare(aInv, bInv)
	}

	return compareByEndpoints(a, b)
}

// inverseSlopeOrInf returns dx/dy for the segment, or +Inf for a horizontal
// segment (where dx/dy is undefined but the comparator needs horizontal
// segments to sort after every finite-slope segment on a position tie).
func inverseSlopeOrInf(s segment.Segment) (float64, bool) {
	if inv, ok := s.InverseSlope(); ok {
		return inv, true
	}
	return math.Inf(1), false
}

// compareByEndpoints is the final tie-break, ordering by lower endpoint
// (higher y first, then lower x), then by upper endpoint, giving a stable
// total order for segments the other rules can't distinguish (e.g.
// perfectly collinear overlapping segments).
func compareByEndpoints(a, b segment.Segment) int {
	aLower, aUpper := a.Ordered()
	bLower, bUpper := b.Ordered()
	if c := cmp.Compare(bLower.Y(), aLower.Y()); c != 0 {
		return c
	}
	if c := cmp.Compare(aLower.X(), bLower.X()); c != 0 {
		return c
	}
	if c := cmp.Compare(bUpper.Y(), aUpper.Y()); c != 0 {
		return c
	}
	return cmp.Compare(aUpper.X(), bUpper.X())
}
