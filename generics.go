package asn1core

/*
generics.go collects the package's remaining generic helpers built on
golang.org/x/exp/constraints, alongside the INTEGER capability
generics in integer.go: a scalar minimum usable across every ordered
type the corpus throws at length/index arithmetic, instead of one
hand-written minInt/minByte/minRune per caller.
*/

import "golang.org/x/exp/constraints"

// minOf returns the lesser of a and b under T's natural ordering.
func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
