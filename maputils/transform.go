package maputils

type (
	ValueTransformer[K comparable, V any]    func(K, V) V
	KeyValueTransformer[K comparable, V any] func(K, V) (K, V)
	Predicate[K comparable, V any]           func(K, V) bool
)

// Transform transforms a map by applying a value transformer callback to each map key value pair.
func Transform[K comparable, V any](m map[K]V, vt ValueTransformer[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = vt(k, v)
	}
	return result
}

// TransformWithKeys transforms a map by applying a key value transformer callback
// to each map key value pair.
func TransformWithKeys[K comparable, V any](m map[K]V, kvt KeyValueTransformer[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		tk, tv := kvt(k, v)
		result[tk] = tv
	}
	return result
}

// Filter keeps the pairs for which pred holds.
func Filter[K comparable, V any](m map[K]V, pred Predicate[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		if pred(k, v) {
			result[k] = v
		}
	}
	return result
}
