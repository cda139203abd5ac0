package queue

type FIFOQueue[T any] interface {
	Push(T)
	Pop() (T, error)
	Top() (T, error)
	Length() int
	IsEmpty() bool
	InsertIndex(int, T) error
	DeleteIndex(int) error
	Values() []T
}
