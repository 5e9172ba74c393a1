package zipper

// Location pairs a focused subtree (the cursor) with the path that
// places it within the larger tree. It is the zipper: every movement
// and edit operation takes the receiver by value and returns a fresh
// Location, so earlier locations remain valid and may be kept, reused
// or discarded freely.
//
// Operations that can hit a navigation boundary return (Location,
// bool); false means the move or edit is infeasible from here (no
// such sibling, no children, at the top). Nothing is retried or
// logged on that path — absence is the entire signal.
type Location[T comparable] struct {
	cursor *Tree[T]
	path   *Path[T]
}

// New returns a location focused on tree, wrapping it in a synthetic
// context node whose right-sibling list already holds tree itself.
//
// That wrapping is deliberately asymmetric (left empty, right holding
// the tree), and it has one sharp edge: calling GoUp on a fresh,
// never-navigated location rebuilds a section containing tree twice.
// Navigate down before ascending, or build the location with At.
func New[T comparable](tree *Tree[T]) Location[T] {
	return Location[T]{
		cursor: tree,
		path:   &Path[T]{right: []*Tree[T]{tree}},
	}
}

// At returns a location with an explicit cursor and context. A nil
// path places the cursor at the top of the navigable context.
func At[T comparable](cursor *Tree[T], path *Path[T]) Location[T] {
	return Location[T]{cursor: cursor, path: path}
}

// Cursor returns the focused subtree.
func (l Location[T]) Cursor() *Tree[T] {
	return l.cursor
}

// Path returns the focus context, nil at the top.
func (l Location[T]) Path() *Path[T] {
	return l.path
}

// Equal reports whether two locations focus structurally equal
// cursors within structurally equal contexts.
func (l Location[T]) Equal(o Location[T]) bool {
	return l.cursor.Equal(o.cursor) && l.path.Equal(o.path)
}

// GoLeft moves the focus to the nearest left sibling. It reports
// false at the top or when no left sibling exists.
func (l Location[T]) GoLeft() (Location[T], bool) {
	p := l.path
	if p == nil || len(p.left) == 0 {
		return Location[T]{}, false
	}
	return Location[T]{
		cursor: p.left[0],
		path: &Path[T]{
			left:   p.left[1:],
			right:  prepend(l.cursor, p.right),
			parent: p.parent,
		},
	}, true
}

// GoRight moves the focus to the nearest right sibling. It reports
// false at the top or when no right sibling exists.
func (l Location[T]) GoRight() (Location[T], bool) {
	p := l.path
	if p == nil || len(p.right) == 0 {
		return Location[T]{}, false
	}
	return Location[T]{
		cursor: p.right[0],
		path: &Path[T]{
			left:   prepend(l.cursor, p.left),
			right:  p.right[1:],
			parent: p.parent,
		},
	}, true
}

// GoUp moves the focus to the enclosing section, rebuilding it from
// the sibling lists and the cursor. The rebuilt section's children
// are reverse(left), cursor, right — exactly the children the parent
// had before descent. It reports false at the top.
func (l Location[T]) GoUp() (Location[T], bool) {
	p := l.path
	if p == nil {
		return Location[T]{}, false
	}
	children := make([]*Tree[T], 0, len(p.left)+1+len(p.right))
	for i := len(p.left) - 1; i >= 0; i-- {
		children = append(children, p.left[i])
	}
	children = append(children, l.cursor)
	children = append(children, p.right...)
	return Location[T]{
		cursor: &Tree[T]{children: children},
		path:   p.parent,
	}, true
}

// GoDown moves the focus to the cursor's first child, pushing one
// level of context. It reports false on an item or an empty section.
func (l Location[T]) GoDown() (Location[T], bool) {
	if l.cursor.item || len(l.cursor.children) == 0 {
		return Location[T]{}, false
	}
	kids := l.cursor.children
	return Location[T]{
		cursor: kids[0],
		path: &Path[T]{
			right:  kids[1:],
			parent: l.path,
		},
	}, true
}

// Nth focuses the n'th child of the cursor, counting from zero:
// GoDown followed by n GoRight steps. It reports false on an item, an
// empty section, a negative n, or an n past the last child. Cost is
// O(n); see MemoLocation for repeated lookups against one base.
func (l Location[T]) Nth(n int) (Location[T], bool) {
	if n < 0 {
		return Location[T]{}, false
	}
	loc, ok := l.GoDown()
	if !ok {
		return Location[T]{}, false
	}
	for ; n > 0; n-- {
		loc, ok = loc.GoRight()
		if !ok {
			return Location[T]{}, false
		}
	}
	return loc, true
}

// Change replaces the cursor with tree, leaving the context
// untouched. It always succeeds; the new tree's shape is not
// validated.
func (l Location[T]) Change(tree *Tree[T]) Location[T] {
	return Location[T]{cursor: tree, path: l.path}
}

// InsertLeft inserts tree as the nearest left sibling of the cursor.
// The focus does not move. It reports false at the top, where the
// cursor has no siblings to join.
func (l Location[T]) InsertLeft(tree *Tree[T]) (Location[T], bool) {
	p := l.path
	if p == nil {
		return Location[T]{}, false
	}
	return Location[T]{
		cursor: l.cursor,
		path: &Path[T]{
			left:   prepend(tree, p.left),
			right:  p.right,
			parent: p.parent,
		},
	}, true
}

// InsertRight inserts tree as the nearest right sibling of the
// cursor. The focus does not move. It reports false at the top.
func (l Location[T]) InsertRight(tree *Tree[T]) (Location[T], bool) {
	p := l.path
	if p == nil {
		return Location[T]{}, false
	}
	return Location[T]{
		cursor: l.cursor,
		path: &Path[T]{
			left:   p.left,
			right:  prepend(tree, p.right),
			parent: p.parent,
		},
	}, true
}

// InsertDown splices tree in as the new first child of the cursor and
// focuses it, one level below the call site; the cursor's existing
// children become the new focus's right siblings. It reports false on
// an item.
func (l Location[T]) InsertDown(tree *Tree[T]) (Location[T], bool) {
	if l.cursor.item {
		return Location[T]{}, false
	}
	return Location[T]{
		cursor: tree,
		path: &Path[T]{
			right:  l.cursor.children,
			parent: l.path,
		},
	}, true
}

// Delete removes the cursor from its enclosing section. The focus
// moves to the nearest right sibling if one exists, else to the
// nearest left sibling, else up to the now-empty enclosing section.
// It reports false at the top.
func (l Location[T]) Delete() (Location[T], bool) {
	p := l.path
	if p == nil {
		return Location[T]{}, false
	}
	switch {
	case len(p.right) > 0:
		return Location[T]{
			cursor: p.right[0],
			path: &Path[T]{
				left:   p.left,
				right:  p.right[1:],
				parent: p.parent,
			},
		}, true
	case len(p.left) > 0:
		return Location[T]{
			cursor: p.left[0],
			path: &Path[T]{
				left:   p.left[1:],
				parent: p.parent,
			},
		}, true
	default:
		return Location[T]{
			cursor: Section[T](),
			path:   p.parent,
		}, true
	}
}
