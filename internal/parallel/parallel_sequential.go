//go:build sequential

package parallel

// ParallelFor runs fn(i) sequentially for every i in [0, n), stopping at
// the first error. Same signature as the default build's errgroup-backed
// version, selected at compile time via the "sequential" build tag.
func ParallelFor(n int, fn func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// ParallelMap runs fn sequentially over items, stopping at the first error.
func ParallelMap[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	for i, item := range items {
		r, err := fn(item)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
