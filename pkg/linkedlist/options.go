package linkedlist

import "github.com/sirupsen/logrus"

// Options represents the configuration options for a list.
type Options struct {
	// Logger receives a debug entry for every rejected operation.
	// Nil disables logging.
	Logger logrus.FieldLogger

	// FailFast makes cursors refuse to work once the list was structurally
	// modified by anything except the cursor itself. Every cursor operation
	// that returns an error then fails with ErrConcurrentModification.
	FailFast bool
}

var DefaultOptions = Options{}
