package containers

import "github.com/zeebo/errs"

var (
	// ErrEmptyContainer is the class of errors returned by Top and Pop on a
	// queue with no elements.
	ErrEmptyContainer = errs.Class("empty container")

	// ErrOutOfBounds is the class of errors returned when a cursor is the
	// end sentinel where a node is required, does not belong to the queue,
	// or when an index falls outside the chain.
	ErrOutOfBounds = errs.Class("out of bounds")
)
