package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorEmptyList(t *testing.T) {
	l := New[string](nil)
	c := l.Cursor()

	require.False(t, c.HasNext())
	require.False(t, c.HasPrevious())

	_, err := c.Next()
	require.ErrorIs(t, err, ErrEndOfSequence)
	_, err = c.Previous()
	require.ErrorIs(t, err, ErrEndOfSequence)

	require.Equal(t, 0, c.NextIndex())
	require.Equal(t, -1, c.PreviousIndex())

	require.ErrorIs(t, c.Set("x"), ErrIllegalCursorState)
	require.ErrorIs(t, c.Remove(), ErrIllegalCursorState)
}

func TestCursorSetNilCheckedFirst(t *testing.T) {
	l := New[*string](nil)
	c := l.Cursor()

	require.ErrorIs(t, c.Set(nil), ErrInvalidElement)
	require.ErrorIs(t, c.Add(nil), ErrInvalidElement)
	require.Equal(t, 0, l.Size())
}

func TestCursorAddToEmpty(t *testing.T) {
	l := New[string](nil)
	c := l.Cursor()

	require.NoError(t, c.Add("A"))
	require.Equal(t, "A", c.left.val)
	require.Same(t, l.tail, c.right)
	require.Equal(t, 1, l.Size())
	require.Equal(t, 1, c.index)
	require.False(t, c.mutable)
	require.False(t, c.HasNext())
	require.True(t, c.HasPrevious())
	checkLinks(t, l)
}

func TestCursorAddPreviousRemove(t *testing.T) {
	l := New[string](nil)
	c := l.Cursor()

	require.NoError(t, c.Add("A"))
	require.Equal(t, 1, l.Size())

	val, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, "A", val)

	require.NoError(t, c.Remove())
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, c.index)
	require.Equal(t, 0, l.Size())
	require.Same(t, l.head, c.left)
	require.Same(t, l.tail, c.right)
	require.False(t, c.mutable)
	checkLinks(t, l)
}

func TestCursorAddThenRemoveIsIllegal(t *testing.T) {
	l := newStrings(t, "a")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)

	require.NoError(t, c.Add("X"))
	require.ErrorIs(t, c.Remove(), ErrIllegalCursorState)
	require.ErrorIs(t, c.Set("Y"), ErrIllegalCursorState)
	require.Equal(t, []string{"a", "X"}, l.ToSlice())

	val, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, "X", val)
	require.NoError(t, c.Remove())
	require.Equal(t, []string{"a"}, l.ToSlice())
}

func TestCursorAddKeepsNextUnchanged(t *testing.T) {
	l := newStrings(t, "a", "c")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	require.NoError(t, c.Add("b"))

	require.Equal(t, 2, c.NextIndex())
	require.Equal(t, 1, c.PreviousIndex())

	val, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, "c", val)
	require.Equal(t, []string{"a", "b", "c"}, l.ToSlice())
	checkLinks(t, l)
}

func TestCursorFullWalk(t *testing.T) {
	vals := []string{"a", "b", "c", "d", "e"}
	l := newStrings(t, vals...)
	c := l.Cursor()

	var fwd []string
	for c.HasNext() {
		require.Equal(t, len(fwd), c.NextIndex())
		val, err := c.Next()
		require.NoError(t, err)
		fwd = append(fwd, val)
	}
	require.Equal(t, vals, fwd)
	require.Equal(t, l.Size(), c.NextIndex())

	_, err := c.Next()
	require.ErrorIs(t, err, ErrEndOfSequence)

	var bwd []string
	for c.HasPrevious() {
		require.Equal(t, len(vals)-len(bwd)-1, c.PreviousIndex())
		val, err := c.Previous()
		require.NoError(t, err)
		bwd = append(bwd, val)
	}
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, bwd)
	require.Equal(t, -1, c.PreviousIndex())
	require.Equal(t, 0, c.NextIndex())

	_, err = c.Previous()
	require.ErrorIs(t, err, ErrEndOfSequence)
}

func TestCursorSetDirection(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)

	// forward: replaces what Next returned
	require.NoError(t, c.Set("B"))
	require.Equal(t, []string{"a", "B", "c"}, l.ToSlice())

	// still eligible after Set
	require.NoError(t, c.Set("BB"))
	require.Equal(t, []string{"a", "BB", "c"}, l.ToSlice())

	val, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, "BB", val)

	// backward: replaces what Previous returned
	require.NoError(t, c.Set("b"))
	require.Equal(t, []string{"a", "b", "c"}, l.ToSlice())
	require.Equal(t, 3, l.Size())
}

func TestCursorRemoveForward(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	val, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, "b", val)

	require.NoError(t, c.Remove())
	require.Equal(t, []string{"a", "c"}, l.ToSlice())
	require.Equal(t, 2, l.Size())
	require.Equal(t, 1, c.NextIndex())
	require.Equal(t, 0, c.PreviousIndex())
	checkLinks(t, l)

	require.ErrorIs(t, c.Remove(), ErrIllegalCursorState)

	val, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, "c", val)

	val, err = c.Previous()
	require.NoError(t, err)
	require.Equal(t, "c", val)
	val, err = c.Previous()
	require.NoError(t, err)
	require.Equal(t, "a", val)
}

func TestCursorRemoveBackward(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	c, err := l.CursorAt(2)
	require.NoError(t, err)

	val, err := c.Previous()
	require.NoError(t, err)
	require.Equal(t, "b", val)

	require.NoError(t, c.Remove())
	require.Equal(t, []string{"a", "c"}, l.ToSlice())
	require.Equal(t, 1, c.NextIndex())
	require.Equal(t, 0, c.PreviousIndex())
	checkLinks(t, l)

	val, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, "c", val)
}

func TestCursorRemoveAllWhileWalking(t *testing.T) {
	l := newStrings(t, "a", "b", "c", "d")
	c := l.Cursor()

	for c.HasNext() {
		_, err := c.Next()
		require.NoError(t, err)
		require.NoError(t, c.Remove())
		checkLinks(t, l)
	}
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, c.NextIndex())
	require.Equal(t, -1, c.PreviousIndex())
}

func TestCursorAndListShareNodes(t *testing.T) {
	l := newStrings(t, "a", "b")
	c := l.Cursor()

	require.NoError(t, c.Add("x"))
	val, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, "x", val)
	require.Equal(t, 3, l.Size())

	// no fail fast by default: the cursor keeps working after a list call
	require.NoError(t, l.Add(3, "z"))
	var rest []string
	for c.HasNext() {
		val, err := c.Next()
		require.NoError(t, err)
		rest = append(rest, val)
	}
	require.Equal(t, []string{"a", "b", "z"}, rest)
}

func TestCursorFailFast(t *testing.T) {
	l := New[string](&Options{FailFast: true})
	_, err := l.Append("a")
	require.NoError(t, err)

	c := l.Cursor()
	other := l.Cursor()

	// own modifications keep the cursor valid
	require.NoError(t, c.Add("x"))
	val, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, "a", val)
	require.NoError(t, c.Remove())

	// other cursor saw none of that
	_, err = other.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.ErrorIs(t, other.Add("y"), ErrConcurrentModification)

	// Set is not structural
	_, err = c.Previous()
	require.NoError(t, err)
	fresh := l.Cursor()
	require.NoError(t, c.Set("X"))
	_, err = fresh.Next()
	require.NoError(t, err)

	// direct list modification
	require.NoError(t, l.Add(0, "w"))
	_, err = c.Previous()
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.ErrorIs(t, c.Set("q"), ErrConcurrentModification)
	require.ErrorIs(t, c.Remove(), ErrConcurrentModification)

	require.Equal(t, []string{"w", "X"}, l.ToSlice())

	l.Clear()
	_, err = fresh.Next()
	require.ErrorIs(t, err, ErrConcurrentModification)
}

func TestCursorOnRemovedNodeWalksBack(t *testing.T) {
	l := newStrings(t, "a", "b")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	_, err = l.Remove(0)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		val, err := c.Previous()
		require.NoError(t, err)
		require.Equal(t, "a", val)

		_, err = c.Previous()
		require.ErrorIs(t, err, ErrEndOfSequence)
	})
	require.Equal(t, []string{"b"}, l.ToSlice())
	checkLinks(t, l)
}

func TestCursorAfterClearReachesTail(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	c := l.Cursor()

	_, err := c.Next()
	require.NoError(t, err)
	l.Clear()

	require.NotPanics(t, func() {
		for c.HasNext() {
			_, err := c.Next()
			require.NoError(t, err)
		}
		_, err := c.Next()
		require.ErrorIs(t, err, ErrEndOfSequence)
	})
	require.True(t, l.IsEmpty())
	checkLinks(t, l)
}
