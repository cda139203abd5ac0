package mutex

import (
	"sync"

	"github.com/vitalouivi/oop-exercise-05/pkg/containers"
)

type mutexFifoQueue[T any] struct {
	Store *containers.Queue[T]
	Mutex *sync.Mutex
}

func CreateQueue[T any](opts ...containers.Option) *mutexFifoQueue[T] {
	return &mutexFifoQueue[T]{
		Store: containers.New[T](opts...),
		Mutex: &sync.Mutex{},
	}
}

func (q *mutexFifoQueue[T]) Push(e T) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	q.Store.Push(e)
}

func (q *mutexFifoQueue[T]) Pop() (T, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	var zero T
	top, err := q.Store.Top()
	if err != nil {
		return zero, err
	}

	topElement := *top
	if err := q.Store.Pop(); err != nil {
		return zero, err
	}

	return topElement, nil
}

func (q *mutexFifoQueue[T]) Top() (T, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	var zero T
	top, err := q.Store.Top()
	if err != nil {
		return zero, err
	}

	return *top, nil
}

func (q *mutexFifoQueue[T]) InsertIndex(n int, e T) error {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.InsertIndex(n, e)
}

func (q *mutexFifoQueue[T]) DeleteIndex(n int) error {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.DeleteIndex(n)
}

func (q *mutexFifoQueue[T]) Values() []T {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	return q.Store.Values()
}

func (q *mutexFifoQueue[T]) Length() int {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()
	return q.Store.Length()
}

func (q *mutexFifoQueue[T]) IsEmpty() bool {
	return q.Length() == 0
}
