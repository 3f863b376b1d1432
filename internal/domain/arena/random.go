package arena

// Random yields uniformly distributed integers in [lo, hi], both inclusive.
type Random interface {
	IntRange(lo, hi int) int
}
