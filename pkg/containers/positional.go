package containers

import "github.com/vitalouivi/oop-exercise-05/internal/logging"

// predecessor scans from the head for the node whose successor is target.
// It returns nil when target is not linked into q.
func (q *Queue[T]) predecessor(target *node[T]) *node[T] {
	for cur := q.head; cur != nil; cur = cur.next {
		if cur.next == target {
			return cur
		}
	}
	return nil
}

// cursorAt walks n steps from the head, stopping early at the end sentinel.
func (q *Queue[T]) cursorAt(n int) Cursor[T] {
	c := q.Begin()
	for i := 0; i < n && !c.IsEnd(); i++ {
		c = c.successor()
	}
	return c
}

// DeleteAt removes the element under target. Deleting at Begin is the same
// as Pop. It fails with ErrOutOfBounds if target is End or does not refer
// to an element of q, in which case q is unchanged.
func (q *Queue[T]) DeleteAt(target Cursor[T]) error {
	if target.IsEnd() {
		return q.outOfBounds("delete", ErrOutOfBounds.New("can't delete the end of the queue"))
	}
	if target == q.Begin() {
		return q.Pop()
	}

	prev := q.predecessor(target.n)
	if prev == nil {
		return q.outOfBounds("delete", ErrOutOfBounds.New("cursor does not belong to the queue"))
	}

	prev.next = target.n.next
	target.n.detach()
	q.size--

	q.logger().Debug("delete", logging.Int("length", q.size))
	return nil
}

// DeleteIndex removes the element at position n, counting from zero at the
// head.
func (q *Queue[T]) DeleteIndex(n int) error {
	if n < 0 {
		return q.outOfBounds("delete", ErrOutOfBounds.New("negative index %d", n))
	}
	return q.DeleteAt(q.cursorAt(n))
}

// InsertAt inserts v immediately before the element under target, so that
// the new element takes target's position. Inserting at Begin makes v the
// new head and inserting at End appends v after the tail. It fails with
// ErrOutOfBounds if target does not refer to an element of q.
func (q *Queue[T]) InsertAt(target Cursor[T], v T) error {
	if target == q.Begin() {
		n := q.newNode(v)
		n.next = q.head
		q.head = n
		q.size++

		q.logger().Debug("insert at head", logging.Int("length", q.size))
		return nil
	}

	var prev *node[T]
	if target.IsEnd() {
		prev = q.tail()
	} else {
		prev = q.predecessor(target.n)
	}
	if prev == nil {
		return q.outOfBounds("insert", ErrOutOfBounds.New("cursor does not belong to the queue"))
	}

	n := q.newNode(v)
	n.next = prev.next
	prev.next = n
	q.size++

	q.logger().Debug("insert", logging.Int("length", q.size))
	return nil
}

// InsertIndex inserts v so that it ends up at position n. Valid positions
// run from 0 to Length inclusive; n == Length appends.
func (q *Queue[T]) InsertIndex(n int, v T) error {
	if n < 0 || n > q.size {
		return q.outOfBounds("insert", ErrOutOfBounds.New("index %d outside [0, %d]", n, q.size))
	}
	return q.InsertAt(q.cursorAt(n), v)
}

func (q *Queue[T]) outOfBounds(op string, err error) error {
	q.logger().Debug(op+" failed",
		logging.Int("length", q.size),
		logging.Error(err),
	)
	return err
}
