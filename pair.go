package hintmap

type Pair[K, V any] struct {
	Key   K
	Value V
}
