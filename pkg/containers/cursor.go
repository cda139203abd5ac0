package containers

// Cursor is a forward position in a Queue. It refers to one element, or is
// the end sentinel returned by Queue.End. A Cursor does not keep its element
// in the queue: once the element is removed the cursor is stale, and Value
// and Next report ErrOutOfBounds for it.
//
// Cursors are comparable with ==. Two cursors are equal when they refer to
// the same element or are both the end sentinel.
type Cursor[T any] struct {
	n *node[T]
}

func (c Cursor[T]) IsEnd() bool {
	return c.n == nil
}

func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.n == other.n
}

func (c Cursor[T]) live() error {
	if c.n == nil {
		return ErrOutOfBounds.New("cursor is at the end of the queue")
	}
	if c.n.owner == nil {
		return ErrOutOfBounds.New("cursor refers to a removed element")
	}
	return nil
}

// Value returns a pointer to the element under the cursor.
func (c Cursor[T]) Value() (*T, error) {
	if err := c.live(); err != nil {
		return nil, err
	}
	return &c.n.val, nil
}

// Next advances the cursor to the following element, or to the end sentinel
// after the last one. On error the cursor is left unchanged.
func (c *Cursor[T]) Next() error {
	if err := c.live(); err != nil {
		return err
	}
	c.n = c.n.next
	return nil
}

// PostNext advances the cursor like Next and returns its previous position.
func (c *Cursor[T]) PostNext() (Cursor[T], error) {
	old := *c
	if err := c.Next(); err != nil {
		return old, err
	}
	return old, nil
}

func (c Cursor[T]) successor() Cursor[T] {
	return Cursor[T]{n: c.n.next}
}
