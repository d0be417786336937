package utils

// Zero returns the zero value of any type.
func Zero[T any]() T {
	var result T
	return result
}
