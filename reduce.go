package geom

import (
	"math"

	"github.com/geomkit/geom/elementwise"
)

// The reductions in this file are generic over any fixed-dimension
// sequence type. Go cannot infer the scalar type through the Array
// union, so direct calls need explicit type arguments, e.g.
// Dot[Vec3[int], int](a, b). The Vec2 and Vec3 methods forward here
// with the arguments spelled out, which is the ergonomic path.

// arrayOperand adapts a fixed-size sequence to the elementwise
// container capability without copying it. Indexing and len are
// defined for every member of the Array union, unlike slicing, which
// needs a single underlying type.
type arrayOperand[V Array[S], S Number] struct{ v V }

func (a arrayOperand[V, S]) At(i int) S { return a.v[i] }
func (a arrayOperand[V, S]) Dims() int  { return len(a.v) }

// Dot returns the dot product of a and b, computed by summing a lazy
// product expression; no intermediate vector is built.
func Dot[V Array[S], S Number](a, b V) S {
	return elementwise.SumOf[S](elementwise.Product[S](arrayOperand[V, S]{a}, arrayOperand[V, S]{b}))
}

// MagnitudeSquared returns the squared magnitude of v.
func MagnitudeSquared[V Array[S], S Number](v V) S {
	return Dot[V, S](v, v)
}

// Magnitude returns the magnitude of v. The result is always floating
// point, also for integer scalar types.
func Magnitude[V Array[S], S Number](v V) float64 {
	return math.Sqrt(float64(MagnitudeSquared[V, S](v)))
}

// DistanceSquared returns the squared Euclidean distance between a and
// b: the squared magnitude of their lazy difference expression.
func DistanceSquared[V Array[S], S Number](a, b V) S {
	d := elementwise.Difference[S](arrayOperand[V, S]{a}, arrayOperand[V, S]{b})
	return elementwise.SumOf[S](elementwise.Product[S](d, d))
}

// Distance returns the Euclidean distance between a and b.
func Distance[V Array[S], S Number](a, b V) float64 {
	return math.Sqrt(float64(DistanceSquared[V, S](a, b)))
}

// ChebyshevDistance returns the largest per-dimension absolute
// difference between a and b.
func ChebyshevDistance[V Array[S], S Number](a, b V) S {
	return elementwise.MaxOf[S](elementwise.AbsDifference[S](arrayOperand[V, S]{a}, arrayOperand[V, S]{b}))
}

// ManhattanDistance returns the sum of per-dimension absolute
// differences between a and b.
func ManhattanDistance[V Array[S], S Number](a, b V) S {
	return elementwise.SumOf[S](elementwise.AbsDifference[S](arrayOperand[V, S]{a}, arrayOperand[V, S]{b}))
}
