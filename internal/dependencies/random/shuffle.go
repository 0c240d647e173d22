package random

// Shuffle returns a new slice with the same elements as s in uniformly
// random order, using the Fisher-Yates algorithm. The input is not
// modified; empty and single-element inputs come back as a plain copy.
func Shuffle[T any](r Random, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleInPlace applies a Fisher-Yates shuffle directly to s
func ShuffleInPlace[T any](r Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
