package linkedlist

import "errors"

var (
	// ErrIndexOutOfRange is returned by index based operations when the index
	// falls outside the range the operation accepts.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidElement is returned when a nil value is offered as an element.
	ErrInvalidElement = errors.New("invalid element")

	// ErrEndOfSequence is returned by cursor traversal when there is no
	// element in the requested direction.
	ErrEndOfSequence = errors.New("end of sequence")

	// ErrIllegalCursorState is returned by cursor Set/Remove when no element
	// was yielded since the last traversal step, or the last one was already
	// consumed by Add/Remove.
	ErrIllegalCursorState = errors.New("illegal cursor state")

	// ErrConcurrentModification is returned by a cursor when the list was
	// structurally modified by something other than that cursor. Only
	// reported when Options.FailFast is set.
	ErrConcurrentModification = errors.New("concurrent modification")
)
