// Package zipper provides cursor-based navigation and localized,
// non-destructive editing over an immutable ordered tree, after
// Huet's zipper. Movement and edit operations are pure: each consumes
// a Location value and produces a new one, sharing all untouched
// structure with its inputs.
package zipper

import (
	"fmt"
	"strings"
)

// Tree is an ordered tree over an opaque element type T. A tree is
// either an item (a leaf holding one value) or a section (an internal
// node holding zero or more ordered children; child order is sibling
// order and is significant).
//
// Trees are immutable once built. A *Tree may be shared freely
// between any number of locations and paths; no operation in this
// package ever modifies one in place.
type Tree[T comparable] struct {
	value    T
	children []*Tree[T]
	item     bool
}

// Item returns a leaf tree holding a single value.
func Item[T comparable](value T) *Tree[T] {
	return &Tree[T]{value: value, item: true}
}

// Section returns an internal tree with the given ordered children.
// The children slice is retained; callers must not modify it or
// append to it after the call.
func Section[T comparable](children ...*Tree[T]) *Tree[T] {
	return &Tree[T]{children: children}
}

// IsItem reports whether the tree is a leaf.
func (t *Tree[T]) IsItem() bool {
	return t.item
}

// IsSection reports whether the tree is an internal node.
func (t *Tree[T]) IsSection() bool {
	return !t.item
}

// Value returns the item's value. The second result is false for
// sections.
func (t *Tree[T]) Value() (T, bool) {
	if !t.item {
		var zero T
		return zero, false
	}
	return t.value, true
}

// Children returns the section's children in sibling order, or nil
// for items. The returned slice is shared; callers must not modify it.
func (t *Tree[T]) Children() []*Tree[T] {
	if t.item {
		return nil
	}
	return t.children
}

// Len returns the number of children. Items have none.
func (t *Tree[T]) Len() int {
	if t.item {
		return 0
	}
	return len(t.children)
}

// Equal reports whether two trees are structurally equal: same
// item/section kind, equal values for items, and pairwise-equal
// children in order for sections. Two nil trees are equal.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.item != o.item {
		return false
	}
	if t.item {
		return t.value == o.value
	}
	if len(t.children) != len(o.children) {
		return false
	}
	for i, c := range t.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree for debugging: items as their value,
// sections as a parenthesized child list.
func (t *Tree[T]) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.item {
		return fmt.Sprintf("%v", t.value)
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range t.children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}
