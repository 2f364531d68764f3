package linkedlist

// node is a single link of the chain. The head and tail sentinels are nodes
// too, but their val is never read.
type node[T any] struct {
	val  T
	next *node[T]
	prev *node[T]
}

func newNode[T any](val T) *node[T] {
	return &node[T]{val: val}
}
