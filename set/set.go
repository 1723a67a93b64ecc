package set

type Set[T any] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	InsertSet(sourceSet Set[T]) (modified bool)
	InsertSlice(sourceSlice []T) (modified bool)
	Len() int
}
