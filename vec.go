package geom

import (
	"cmp"
	"math"

	"github.com/geomkit/geom/elementwise"
)

// compareElements is the shared lexicographic comparison: the first
// differing dimension decides, equal sequences compare equal.
func compareElements[S Number](a, b []S) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// normalize scales the elements in place by the reciprocal of their
// magnitude. It reports false and leaves them unchanged on zero
// magnitude, so callers never divide by zero silently.
func normalize[S Number](elems []S) bool {
	mag := math.Sqrt(float64(elementwise.SumOf[S](elementwise.Product[S](elems, elems))))
	if mag == 0 {
		return false
	}
	for i := range elems {
		elems[i] = S(float64(elems[i]) / mag)
	}
	return true
}
