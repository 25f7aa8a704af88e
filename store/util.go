package store

func Map[In any, Out any](list []In, mapFn func(val In) Out) []Out {
	var newSlice = make([]Out, len(list))
	for i, val := range list {
		newSlice[i] = mapFn(val)
	}

	return newSlice
}

func SliceContains[T comparable](list []T, val T) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}

	return false
}

func firstDuplicate[T comparable](list []T) (T, bool) {
	seen := make(map[T]struct{}, len(list))
	for _, item := range list {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}

	var zero T
	return zero, false
}
