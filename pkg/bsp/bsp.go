// Package bsp implements a generic binary space partitioning tree.
//
// The tree never inspects geometry itself. Every classification is
// delegated to the Plane implementation of the stored values, so the same
// tree orders polygons, segments, or anything else that can cut its
// peers by a plane.
package bsp

// CutKind distinguishes the two outcomes of a plane cut.
type CutKind int

const (
	CutSplit   CutKind = iota // value partitioned into front/back pieces
	CutSibling                // value lies in the cutting plane
)

func (k CutKind) String() string {
	switch k {
	case CutSplit:
		return "split"
	case CutSibling:
		return "sibling"
	default:
		return "unknown"
	}
}

// PlaneCut is the result of cutting one value by the plane of another.
// Sibling is set only when Kind is CutSibling; Front and Back only when
// Kind is CutSplit.
type PlaneCut[T any] struct {
	Kind    CutKind
	Sibling T
	Front   []T
	Back    []T
}

// Sibling reports v as lying in the cutting plane.
func Sibling[T any](v T) PlaneCut[T] {
	return PlaneCut[T]{Kind: CutSibling, Sibling: v}
}

// Cut reports a front/back partition.
func Cut[T any](front, back []T) PlaneCut[T] {
	return PlaneCut[T]{Kind: CutSplit, Front: front, Back: back}
}

// IsSibling reports whether the cut value is coplanar with the cutter.
func (c PlaneCut[T]) IsSibling() bool {
	return c.Kind == CutSibling
}

// Plane is implemented by values that can be stored in a Node.
type Plane[T any] interface {
	// Cut classifies other against the receiver's plane, splitting it
	// when it straddles that plane.
	Cut(other T) PlaneCut[T]
	// IsAligned reports whether other faces the same half-space.
	IsAligned(other T) bool
}

// Node is a BSP tree node. The zero value is an empty tree.
// All values of a node are coplanar; the first one defines the plane.
type Node[T Plane[T]] struct {
	values []T
	front  *Node[T]
	back   *Node[T]
}

// New returns an empty tree.
func New[T Plane[T]]() *Node[T] {
	return &Node[T]{}
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.front == nil && n.back == nil
}

// Depth returns the number of levels holding values.
func (n *Node[T]) Depth() int {
	if n == nil || len(n.values) == 0 {
		return 0
	}
	return 1 + max(n.front.Depth(), n.back.Depth())
}

// Len returns the number of values stored in the subtree.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return len(n.values) + n.front.Len() + n.back.Len()
}

// Insert adds v to the tree. v may end up split across several subtrees.
func (n *Node[T]) Insert(v T) {
	if len(n.values) == 0 {
		n.values = append(n.values, v)
		return
	}
	cut := n.values[0].Cut(v)
	if cut.IsSibling() {
		n.values = append(n.values, cut.Sibling)
		return
	}
	insertSide(&n.front, cut.Front)
	insertSide(&n.back, cut.Back)
}

// insertSide inserts values into a child, creating it on first use.
func insertSide[T Plane[T]](side **Node[T], values []T) {
	if len(values) == 0 {
		return
	}
	if *side == nil {
		*side = New[T]()
	}
	for _, v := range values {
		(*side).Insert(v)
	}
}

// Order appends all values of the tree to out, ordered relative to base.
// At every node the subtree on the side base is aligned with is emitted
// first, then the node's own values, then the opposite subtree.
func (n *Node[T]) Order(base T, out *[]T) {
	if len(n.values) == 0 {
		return
	}
	former, latter := n.back, n.front
	if base.IsAligned(n.values[0]) {
		former, latter = n.front, n.back
	}
	if former != nil {
		former.Order(base, out)
	}
	*out = append(*out, n.values...)
	if latter != nil {
		latter.Order(base, out)
	}
}
