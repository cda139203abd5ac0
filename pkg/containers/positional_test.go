package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalouivi/oop-exercise-05/pkg/containers"
)

func filled(vals ...int) *containers.Queue[int] {
	q := containers.New[int]()
	for _, v := range vals {
		q.Push(v)
	}
	return q
}

func Test_PositionalScenario(t *testing.T) {
	q := filled(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, iterate(t, q))

	require.NoError(t, q.DeleteIndex(1))
	assert.Equal(t, []int{1, 3}, iterate(t, q))
	assert.Equal(t, 2, q.Length())

	require.NoError(t, q.InsertIndex(1, 5))
	assert.Equal(t, []int{1, 5, 3}, iterate(t, q))
	assert.Equal(t, 3, q.Length())

	require.NoError(t, q.Pop())
	top, err := q.Top()
	require.NoError(t, err)
	assert.Equal(t, 5, *top)
}

func Test_DeleteAtBeginIsPop(t *testing.T) {
	for n := 1; n <= 4; n++ {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = i
		}
		popped := filled(vals...)
		deleted := filled(vals...)

		require.NoError(t, popped.Pop())
		require.NoError(t, deleted.DeleteAt(deleted.Begin()))

		assert.Equal(t, popped.Values(), deleted.Values())
		assert.Equal(t, n-1, deleted.Length())
	}
}

func Test_DeleteAtEndShouldGiveError(t *testing.T) {
	q := filled(1, 2)

	err := q.DeleteAt(q.End())
	assert.True(t, containers.ErrOutOfBounds.Has(err))
	assert.Equal(t, []int{1, 2}, q.Values())

	empty := containers.New[int]()
	err = empty.DeleteAt(empty.Begin())
	assert.True(t, containers.ErrOutOfBounds.Has(err))
}

func Test_DeleteAtTail(t *testing.T) {
	q := filled(1, 2, 3)
	it := q.Begin()
	require.NoError(t, it.Next())
	require.NoError(t, it.Next())

	require.NoError(t, q.DeleteAt(it))
	assert.Equal(t, []int{1, 2}, q.Values())

	q.Push(4)
	assert.Equal(t, []int{1, 2, 4}, q.Values())
}

func Test_ForeignCursorShouldGiveError(t *testing.T) {
	q := filled(1, 2, 3)
	other := filled(1, 2, 3)
	it := other.Begin()
	require.NoError(t, it.Next())

	assert.True(t, containers.ErrOutOfBounds.Has(q.DeleteAt(it)))
	assert.True(t, containers.ErrOutOfBounds.Has(q.InsertAt(it, 7)))
	assert.Equal(t, []int{1, 2, 3}, q.Values())
	assert.Equal(t, 3, q.Length())
}

func Test_InsertAtBeginBecomesTop(t *testing.T) {
	for _, q := range []*containers.Queue[int]{filled(), filled(1), filled(1, 2, 3)} {
		length := q.Length()
		require.NoError(t, q.InsertAt(q.Begin(), 42))

		top, err := q.Top()
		require.NoError(t, err)
		assert.Equal(t, 42, *top)
		assert.Equal(t, length+1, q.Length())
	}
}

func Test_InsertAtEndAppends(t *testing.T) {
	q := filled(1, 2)

	require.NoError(t, q.InsertAt(q.End(), 3))
	assert.Equal(t, []int{1, 2, 3}, q.Values())

	require.NoError(t, q.InsertIndex(q.Length(), 4))
	assert.Equal(t, []int{1, 2, 3, 4}, q.Values())
}

func Test_InsertAtMiddleKeepsCursorElement(t *testing.T) {
	q := filled(1, 2, 3)
	it := q.Begin()
	require.NoError(t, it.Next())

	require.NoError(t, q.InsertAt(it, 9))
	assert.Equal(t, []int{1, 9, 2, 3}, q.Values())

	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, *v)
}

func Test_InsertThenDeleteRoundTrip(t *testing.T) {
	base := []int{4, 8, 15, 16, 23}

	for i := 0; i <= len(base); i++ {
		q := filled(base...)

		require.NoError(t, q.InsertIndex(i, 42))
		assert.Equal(t, len(base)+1, q.Length())
		assert.Equal(t, 42, q.Values()[i])

		require.NoError(t, q.DeleteIndex(i))
		assert.Equal(t, base, q.Values())
		assert.Equal(t, len(base), q.Length())
	}
}

func Test_IndexOutOfRangeLeavesQueueUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *containers.Queue[int]) error
	}{
		{"delete at length", func(q *containers.Queue[int]) error { return q.DeleteIndex(3) }},
		{"delete past length", func(q *containers.Queue[int]) error { return q.DeleteIndex(10) }},
		{"delete negative", func(q *containers.Queue[int]) error { return q.DeleteIndex(-1) }},
		{"insert past length", func(q *containers.Queue[int]) error { return q.InsertIndex(4, 0) }},
		{"insert negative", func(q *containers.Queue[int]) error { return q.InsertIndex(-1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := filled(1, 2, 3)

			err := tt.mutate(q)
			assert.True(t, containers.ErrOutOfBounds.Has(err))
			assert.Equal(t, []int{1, 2, 3}, q.Values())
			assert.Equal(t, 3, q.Length())
		})
	}
}

func Test_IndexOnEmptyQueue(t *testing.T) {
	q := containers.New[int]()

	assert.True(t, containers.ErrOutOfBounds.Has(q.DeleteIndex(0)))
	require.NoError(t, q.InsertIndex(0, 1))
	assert.Equal(t, []int{1}, q.Values())
}
