package hintmap

type direction uint8

const (
	forward direction = iota
	backward
)

func getZero[T any]() T {
	var result T
	return result
}
