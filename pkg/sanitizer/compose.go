package sanitizer

// Compose returns a transform that runs fns left to right.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Fixpoint reruns transform until the value stops changing, at most 64
// times. Every transform here shrinks or normalizes, so a few rounds do.
func Fixpoint[T comparable](v T, transform func(T) T) T {
	for range 64 {
		next := transform(v)
		if next == v {
			break
		}
		v = next
	}
	return v
}
