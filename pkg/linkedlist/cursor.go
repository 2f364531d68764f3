package linkedlist

import (
	"go-linkedlist/util/helpers"

	"github.com/pkg/errors"
)

type direction uint8

const (
	forward direction = iota
	backward
)

// Cursor is a position between two adjacent nodes of a list. It moves in
// both directions and can replace, remove or insert elements in place.
//
// Set and Remove act on the element returned by the last Next or Previous
// call, and only once: Add and Remove reset that eligibility until the next
// traversal step.
type Cursor[T any] struct {
	list  *List[T]
	left  *node[T]
	right *node[T]

	// index of the element the next Next call yields
	index   int
	dir     direction
	mutable bool

	// list generation this cursor last saw
	gen uint64
}

func newCursor[T any](l *List[T], left *node[T], index int) *Cursor[T] {
	return &Cursor[T]{
		list:  l,
		left:  left,
		right: left.next,
		index: index,
		dir:   forward,
		gen:   l.gen,
	}
}

func (c *Cursor[T]) HasNext() bool {
	return c.right != c.list.tail
}

// Next moves the cursor forward and returns the element it passed over.
func (c *Cursor[T]) Next() (val T, err error) {
	if err = c.checkGen("next"); err != nil {
		return val, err
	}
	if !c.HasNext() {
		return val, c.fail("next", errors.Wrap(ErrEndOfSequence, "no next element"))
	}

	c.left = c.right
	c.right = c.right.next

	c.dir = forward
	c.mutable = true
	c.index++
	return c.left.val, nil
}

func (c *Cursor[T]) HasPrevious() bool {
	return c.left != c.list.head
}

// Previous moves the cursor backward and returns the element it passed over.
func (c *Cursor[T]) Previous() (val T, err error) {
	if err = c.checkGen("previous"); err != nil {
		return val, err
	}
	if !c.HasPrevious() {
		return val, c.fail("previous", errors.Wrap(ErrEndOfSequence, "no previous element"))
	}

	c.right = c.left
	c.left = c.left.prev

	c.dir = backward
	c.mutable = true
	c.index--
	return c.right.val, nil
}

// NextIndex returns the index Next would yield, or the list size at the end.
func (c *Cursor[T]) NextIndex() int {
	if !c.HasNext() {
		return c.list.size
	}
	return c.index
}

// PreviousIndex returns the index Previous would yield, or -1 at the start.
func (c *Cursor[T]) PreviousIndex() int {
	if !c.HasPrevious() {
		return -1
	}
	return c.index - 1
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[T]) Set(val T) error {
	if err := c.checkGen("set"); err != nil {
		return err
	}
	if helpers.IsNil(val) {
		return c.fail("set", errors.Wrap(ErrInvalidElement, "nil element"))
	}
	if !c.mutable {
		return c.fail("set", errors.Wrap(ErrIllegalCursorState, "no element to replace"))
	}

	if c.dir == forward {
		c.left.val = val
	} else {
		c.right.val = val
	}
	return nil
}

// Remove unlinks the element last returned by Next or Previous.
func (c *Cursor[T]) Remove() error {
	if err := c.checkGen("remove"); err != nil {
		return err
	}
	if !c.mutable {
		return c.fail("remove", errors.Wrap(ErrIllegalCursorState, "no element to remove"))
	}

	if c.dir == forward {
		prev := c.left.prev
		c.list.unlink(c.left)
		c.left = prev
		c.index--
	} else {
		next := c.right.next
		c.list.unlink(c.right)
		c.right = next
	}

	c.mutable = false
	c.gen = c.list.gen
	return nil
}

// Add inserts val at the cursor position. The cursor ends up after the new
// element: Previous would return it, Next would not.
func (c *Cursor[T]) Add(val T) error {
	if err := c.checkGen("add"); err != nil {
		return err
	}
	if helpers.IsNil(val) {
		return c.fail("add", errors.Wrap(ErrInvalidElement, "nil element"))
	}

	n := newNode(val)
	c.list.link(n, c.left, c.right)
	c.left = n

	c.index++
	c.mutable = false
	c.gen = c.list.gen
	return nil
}

func (c *Cursor[T]) checkGen(op string) error {
	if !c.list.opts.FailFast || c.gen == c.list.gen {
		return nil
	}
	return c.fail(op, errors.Wrapf(
		ErrConcurrentModification,
		"list generation %d, cursor generation %d", c.list.gen, c.gen,
	))
}

func (c *Cursor[T]) fail(op string, err error) error {
	return c.list.fail("cursor."+op, c.index, err)
}
