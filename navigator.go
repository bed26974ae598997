package kdtree

// Navigator is a read-only cursor over a built tree. It is a plain value:
// moving it never allocates or copies tree data.
type Navigator[T Number, V any] struct {
	tree  *Tree[T, V]
	index int
}

// Navigator returns a cursor positioned at the root.
func (t *Tree[T, V]) Navigator() Navigator[T, V] {
	return Navigator[T, V]{tree: t}
}

// At returns a cursor positioned at array slot i.
func (t *Tree[T, V]) At(i int) Navigator[T, V] {
	return Navigator[T, V]{tree: t, index: i}
}

// Index returns the array slot the cursor points at.
func (n Navigator[T, V]) Index() int { return n.index }

// InRange reports whether the cursor points inside the tree's arrays.
func (n Navigator[T, V]) InRange() bool {
	return n.index >= 0 && n.index < len(n.tree.points)
}

// IsSentinel reports whether the cursor points at padding or outside the
// arrays.
func (n Navigator[T, V]) IsSentinel() bool { return n.tree.IsSentinel(n.index) }

// Point returns the coordinates at the cursor: the real point, the sentinel
// point for padding slots, or nil outside the arrays.
func (n Navigator[T, V]) Point() []T {
	if !n.InRange() {
		return nil
	}
	return n.tree.points[n.index]
}

// Payload returns the payload at the cursor, or the zero V for sentinels.
func (n Navigator[T, V]) Payload() V {
	if !n.InRange() {
		var zero V
		return zero
	}
	return n.tree.payloads[n.index]
}

// Left moves to the left child.
func (n Navigator[T, V]) Left() Navigator[T, V] {
	return Navigator[T, V]{tree: n.tree, index: LeftChildIndex(n.index)}
}

// Right moves to the right child.
func (n Navigator[T, V]) Right() Navigator[T, V] {
	return Navigator[T, V]{tree: n.tree, index: RightChildIndex(n.index)}
}

// Parent moves to the parent. ok is false at the root.
func (n Navigator[T, V]) Parent() (parent Navigator[T, V], ok bool) {
	p := ParentIndex(n.index)
	if p < 0 {
		return n, false
	}
	return Navigator[T, V]{tree: n.tree, index: p}, true
}

// Depth returns the distance from the root.
func (n Navigator[T, V]) Depth() int { return depthOf(n.index) }

// Axis returns the coordinate the node at the cursor splits on.
func (n Navigator[T, V]) Axis() int { return n.Depth() % n.tree.dims }
