package zipper

// Path is the context of a focused subtree: everything in the tree
// outside the cursor, kept in a shape that lets GoUp rebuild the
// enclosing section exactly. A nil *Path means the focus is the whole
// tree (the top of the navigable context).
//
// Sibling lists are stored nearest-first: left[0] is the immediate
// left neighbor of the cursor, right[0] the immediate right neighbor.
// Rebuilding the enclosing section as reverse(left), cursor, right
// reproduces the parent's children exactly as they were before
// descent.
//
// Paths are immutable. The parent link is shared between locations
// derived from one another (lateral movement rebuilds only the
// innermost node), so an ancestor chain is never deep-copied.
type Path[T comparable] struct {
	left   []*Tree[T]
	right  []*Tree[T]
	parent *Path[T]
}

// Left returns the left siblings of the focus, nearest-first. The
// slice is shared; callers must not modify it.
func (p *Path[T]) Left() []*Tree[T] {
	return p.left
}

// Right returns the right siblings of the focus, nearest-first. The
// slice is shared; callers must not modify it.
func (p *Path[T]) Right() []*Tree[T] {
	return p.right
}

// Parent returns the enclosing context, or nil at the top.
func (p *Path[T]) Parent() *Path[T] {
	return p.parent
}

// Equal reports whether two paths are structurally equal: equal
// sibling lists at every level and equal depth. Two nil paths are
// equal.
func (p *Path[T]) Equal(o *Path[T]) bool {
	for p != nil && o != nil {
		if !treesEqual(p.left, o.left) || !treesEqual(p.right, o.right) {
			return false
		}
		p, o = p.parent, o.parent
	}
	return p == o
}

func treesEqual[T comparable](a, b []*Tree[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if !t.Equal(b[i]) {
			return false
		}
	}
	return true
}

// prepend returns a fresh slice with t in front of rest. The input
// slice is left untouched so it stays safe to share with other paths.
func prepend[T comparable](t *Tree[T], rest []*Tree[T]) []*Tree[T] {
	out := make([]*Tree[T], 0, len(rest)+1)
	out = append(out, t)
	return append(out, rest...)
}
