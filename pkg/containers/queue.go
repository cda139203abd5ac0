// Package containers implements a generic singly-linked FIFO queue with
// forward cursors and positional insert/delete.
//
// A Queue is not safe for concurrent use. Callers sharing a Queue between
// goroutines must provide their own mutual exclusion.
package containers

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vitalouivi/oop-exercise-05/internal/logging"
)

type node[T any] struct {
	val  T
	next *node[T]

	// owner is nil once the node has been removed from its queue.
	owner *Queue[T]
}

// Queue is a singly-linked chain of nodes. Push appends at the tail while
// Top and Pop act on the head. A zero value Queue is empty and ready to use.
type Queue[T any] struct {
	head *node[T]
	size int

	log *logging.Logger
}

type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger makes the queue trace its mutations and failures at debug
// level on the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func New[T any](opts ...Option) *Queue[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[T]{
		log: logging.Wrap(o.logger),
	}
}

func (q *Queue[T]) logger() *logging.Logger {
	if q.log == nil {
		q.log = logging.Nop()
	}
	return q.log
}

func (q *Queue[T]) newNode(v T) *node[T] {
	return &node[T]{val: v, owner: q}
}

// Length returns the number of elements in the queue.
func (q *Queue[T]) Length() int {
	return q.size
}

// Push appends v at the tail of the queue.
func (q *Queue[T]) Push(v T) {
	n := q.newNode(v)
	if q.head == nil {
		q.head = n
	} else {
		q.tail().next = n
	}
	q.size++

	q.logger().Debug("push", logging.Int("length", q.size))
}

func (q *Queue[T]) tail() *node[T] {
	cur := q.head
	for cur != nil && cur.next != nil {
		cur = cur.next
	}
	return cur
}

// Top returns a pointer to the value at the head of the queue. Writes
// through the pointer modify the stored element.
func (q *Queue[T]) Top() (*T, error) {
	if q.size == 0 {
		return nil, ErrEmptyContainer.New("queue is empty, it has no top")
	}
	return &q.head.val, nil
}

// Pop removes the head of the queue.
func (q *Queue[T]) Pop() error {
	if q.size == 0 {
		err := ErrEmptyContainer.New("can't pop from empty queue")
		q.logger().Debug("pop failed", logging.Error(err))
		return err
	}

	old := q.head
	q.head = old.next
	q.size--
	old.detach()

	q.logger().Debug("pop", logging.Int("length", q.size))
	return nil
}

func (n *node[T]) detach() {
	n.owner = nil
	n.next = nil
}

// Begin returns a cursor at the head of the queue, or End if it is empty.
func (q *Queue[T]) Begin() Cursor[T] {
	return Cursor[T]{n: q.head}
}

// End returns the end sentinel. It never refers to an element.
func (q *Queue[T]) End() Cursor[T] {
	return Cursor[T]{}
}

// MoveFrom transfers the whole chain of other into q, leaving other empty.
// Any elements q held before are released. Moving a queue into itself does
// nothing.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	if q == other || other == nil {
		return
	}

	q.Clear()
	for cur := other.head; cur != nil; cur = cur.next {
		cur.owner = q
	}
	q.head, q.size = other.head, other.size
	other.head, other.size = nil, 0

	q.logger().Debug("moved chain", logging.Int("length", q.size))
}

// Clone returns a deep copy of q. Values are copied by assignment.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{log: q.log}

	var last *node[T]
	for cur := q.head; cur != nil; cur = cur.next {
		n := c.newNode(cur.val)
		if last == nil {
			c.head = n
		} else {
			last.next = n
		}
		last = n
	}
	c.size = q.size

	return c
}

// Clear removes every element. Outstanding cursors into the queue become
// stale and are rejected by Value and Next.
func (q *Queue[T]) Clear() {
	cur := q.head
	for cur != nil {
		next := cur.next
		cur.detach()
		cur = next
	}
	q.head, q.size = nil, 0
}

// Each calls f with a pointer to every element from head to tail until f
// returns false.
func (q *Queue[T]) Each(f func(*T) bool) {
	for cur := q.head; cur != nil; cur = cur.next {
		if !f(&cur.val) {
			return
		}
	}
}

// Values returns the elements of the queue, head first.
func (q *Queue[T]) Values() []T {
	vals := make([]T, 0, q.size)
	q.Each(func(v *T) bool {
		vals = append(vals, *v)
		return true
	})
	return vals
}

func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	q.Each(func(v *T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, *v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
