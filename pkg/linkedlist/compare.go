package linkedlist

import "golang.org/x/exp/slices"

// IndexOf returns the index of the first element equal to val, or -1.
func IndexOf[T comparable](l *List[T], val T) int {
	found := -1
	// scan callback never fails
	_ = l.Scan(false, func(index int, v T) (bool, error) {
		if v == val {
			found = index
			return true, nil
		}
		return false, nil
	})
	return found
}

// LastIndexOf returns the index of the last element equal to val, or -1.
func LastIndexOf[T comparable](l *List[T], val T) int {
	found := -1
	// scan callback never fails
	_ = l.Scan(true, func(index int, v T) (bool, error) {
		if v == val {
			found = index
			return true, nil
		}
		return false, nil
	})
	return found
}

func Contains[T comparable](l *List[T], val T) bool {
	return IndexOf(l, val) != -1
}

// Equal reports whether both lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return slices.Equal(a.ToSlice(), b.ToSlice())
}
