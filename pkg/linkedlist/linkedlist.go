// Package linkedlist implements a generic doubly linked list bounded by two
// sentinel nodes, with index based access and a bidirectional cursor that
// can modify the list while traversing it.
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"bytes"
	"fmt"

	"go-linkedlist/util/helpers"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// List is a doubly linked list of non-nil values of type T.
// The zero value is not usable, create lists with New.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int

	// gen is bumped on every structural modification
	gen  uint64
	opts Options
}

// New returns an empty list. Nil opts means DefaultOptions.
func New[T any](opts *Options) *List[T] {
	if opts == nil {
		opts = &DefaultOptions
	}

	l := &List[T]{
		head: &node[T]{},
		tail: &node[T]{},
		opts: *opts,
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// FromSlice returns a list holding vals in the same order.
func FromSlice[T any](vals []T, opts *Options) (*List[T], error) {
	l := New[T](opts)
	for i, v := range vals {
		if _, err := l.Append(v); err != nil {
			return nil, errors.Wrapf(err, "failed to append value #%d", i)
		}
	}
	return l, nil
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.head.next == l.tail
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (val T, err error) {
	n, err := l.locate(index)
	if err != nil {
		return val, l.fail("get", index, err)
	}
	return n.val, nil
}

// Add inserts val so that it becomes the element at index, shifting the
// element currently there and all following ones one position later.
// index may be equal to Size.
func (l *List[T]) Add(index int, val T) error {
	if index < 0 || index > l.size {
		return l.fail("add", index, l.outOfRange(index))
	}
	if helpers.IsNil(val) {
		return l.fail("add", index, errors.Wrap(ErrInvalidElement, "nil element"))
	}

	curr := l.tail
	if index < l.size {
		curr, _ = l.locate(index)
	}

	l.link(newNode(val), curr.prev, curr)
	return nil
}

// Append adds val to the end of the list. It always reports true on success.
func (l *List[T]) Append(val T) (bool, error) {
	if err := l.Add(l.size, val); err != nil {
		return false, err
	}
	return true, nil
}

// Set replaces the element at index with val and returns the previous one.
func (l *List[T]) Set(index int, val T) (old T, err error) {
	n, err := l.locate(index)
	if err != nil {
		return old, l.fail("set", index, err)
	}
	if helpers.IsNil(val) {
		return old, l.fail("set", index, errors.Wrap(ErrInvalidElement, "nil element"))
	}

	old, n.val = n.val, val
	return old, nil
}

// Remove unlinks the element at index and returns it.
func (l *List[T]) Remove(index int) (val T, err error) {
	n, err := l.locate(index)
	if err != nil {
		return val, l.fail("remove", index, err)
	}

	val = n.val
	l.unlink(n)
	return val, nil
}

// Clear removes all elements in O(1).
func (l *List[T]) Clear() {
	if l.IsEmpty() {
		return
	}

	// removed nodes keep their links, a cursor still on one walks back
	// out to a sentinel
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
	l.gen++
}

// Front returns the first element.
func (l *List[T]) Front() (val T, err error) {
	if l.IsEmpty() {
		return val, l.fail("front", 0, errors.Wrap(ErrEndOfSequence, "empty list"))
	}
	return l.head.next.val, nil
}

// Back returns the last element.
func (l *List[T]) Back() (val T, err error) {
	if l.IsEmpty() {
		return val, l.fail("back", 0, errors.Wrap(ErrEndOfSequence, "empty list"))
	}
	return l.tail.prev.val, nil
}

// ToSlice returns the elements in list order.
func (l *List[T]) ToSlice() []T {
	vals := make([]T, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}

// Scan calls scanFn for every element, front to back or back to front when
// reverse is set. Scanning stops when scanFn returns true or an error; the
// error is returned as is. scanFn must not modify the list.
func (l *List[T]) Scan(reverse bool, scanFn func(index int, val T) (bool, error)) error {
	var stop bool
	var err error

	if reverse {
		i := l.size - 1
		for n := l.tail.prev; n != l.head; n = n.prev {
			if stop, err = scanFn(i, n.val); err != nil || stop {
				return err
			}
			i--
		}
		return nil
	}

	i := 0
	for n := l.head.next; n != l.tail; n = n.next {
		if stop, err = scanFn(i, n.val); err != nil || stop {
			return err
		}
		i++
	}
	return nil
}

func (l *List[T]) String() string {
	buf := bytes.Buffer{}
	buf.WriteByte('[')
	for n := l.head.next; n != l.tail; n = n.next {
		if n.prev != l.head {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", n.val)
	}
	buf.WriteByte(']')
	return buf.String()
}

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	return newCursor(l, l.head, 0)
}

// CursorAt returns a cursor whose first Next call yields the element at
// index. index may be equal to Size, the cursor is then past the last
// element.
func (l *List[T]) CursorAt(index int) (*Cursor[T], error) {
	if index < 0 || index > l.size {
		return nil, l.fail("cursor", index, l.outOfRange(index))
	}

	left := l.tail.prev
	if index < l.size {
		right, _ := l.locate(index)
		left = right.prev
	}
	return newCursor(l, left, index), nil
}

// locate returns the node at index, walking from the nearer sentinel.
func (l *List[T]) locate(index int) (*node[T], error) {
	if index < 0 || index >= l.size {
		return nil, l.outOfRange(index)
	}

	back := l.size - 1 - index
	fromHead := index <= back

	curr := l.head.next
	if !fromHead {
		curr = l.tail.prev
	}
	for steps := helpers.Min(index, back); steps > 0; steps-- {
		if fromHead {
			curr = curr.next
		} else {
			curr = curr.prev
		}
	}
	return curr, nil
}

// link puts n between prev and curr, which must be adjacent.
func (l *List[T]) link(n, prev, curr *node[T]) {
	prev.next = n
	n.prev = prev
	n.next = curr
	curr.prev = n

	l.size++
	l.gen++
}

// unlink splices n's neighbours together. n keeps its own links so a
// cursor still positioned on it can step back into the chain.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev

	l.size--
	l.gen++
}

func (l *List[T]) outOfRange(index int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
}

// fail logs a rejected operation and returns err unchanged.
func (l *List[T]) fail(op string, index int, err error) error {
	if l.opts.Logger != nil {
		l.opts.Logger.WithFields(logrus.Fields{
			"op":    op,
			"index": index,
			"size":  l.size,
		}).Debug(err)
	}
	return err
}
