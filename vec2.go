package geom

import "github.com/geomkit/geom/elementwise"

// Vec2 is a two-dimensional vector with inline storage. It is an
// ordinary array value: index it, copy it, compare it with ==.
type Vec2[S Number] [2]S

// Vec2UnitX returns {1, 0}.
func Vec2UnitX[S Number]() Vec2[S] { return Vec2[S]{1, 0} }

// Vec2UnitY returns {0, 1}.
func Vec2UnitY[S Number]() Vec2[S] { return Vec2[S]{0, 1} }

// Vec2Unit returns the unit vector along the given axis.
// It panics when axis is not a Vec2 axis.
func Vec2Unit[S Number](axis Axis) Vec2[S] {
	var v Vec2[S]
	v[axis] = 1
	return v
}

// Vec2Repeat returns a vector with every element set to value.
func Vec2Repeat[S Number](value S) Vec2[S] {
	return Vec2[S]{value, value}
}

// Vec2From materializes an elementwise operand of dimension 2 into a
// vector. The operand may be a Vec2, a raw sequence, a scalar (which
// broadcasts), or an expression tree over any of those.
func Vec2From[S Number](op any) Vec2[S] {
	var v Vec2[S]
	elementwise.Fill(v[:], op)
	return v
}

// At returns the element at position i.
func (v Vec2[S]) At(i int) S { return v[i] }

// Dims returns 2.
func (Vec2[S]) Dims() int { return 2 }

// X returns the first element.
func (v Vec2[S]) X() S { return v[0] }

// Y returns the second element.
func (v Vec2[S]) Y() S { return v[1] }

// Assign evaluates an elementwise operand into v and returns v.
func (v *Vec2[S]) Assign(op any) *Vec2[S] {
	elementwise.Fill(v[:], op)
	return v
}

// Neg returns the elementwise negation of v.
func (v Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{-v[0], -v[1]}
}

// Add returns the elementwise sum v + o.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] + o[0], v[1] + o[1]}
}

// Sub returns the elementwise difference v - o.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] - o[0], v[1] - o[1]}
}

// Mul returns v scaled by s.
func (v Vec2[S]) Mul(s S) Vec2[S] {
	return Vec2[S]{v[0] * s, v[1] * s}
}

// Div returns v divided elementwise by s.
func (v Vec2[S]) Div(s S) Vec2[S] {
	return Vec2[S]{v[0] / s, v[1] / s}
}

// Dot returns the dot product of v and o.
func (v Vec2[S]) Dot(o Vec2[S]) S {
	return Dot[Vec2[S], S](v, o)
}

// MagnitudeSquared returns the squared magnitude of v.
func (v Vec2[S]) MagnitudeSquared() S {
	return MagnitudeSquared[Vec2[S], S](v)
}

// Magnitude returns the magnitude of v as a float, also for integer
// scalar types.
func (v Vec2[S]) Magnitude() float64 {
	return Magnitude[Vec2[S], S](v)
}

// DistanceSquared returns the squared Euclidean distance from v to o.
func (v Vec2[S]) DistanceSquared(o Vec2[S]) S {
	return DistanceSquared[Vec2[S], S](v, o)
}

// Distance returns the Euclidean distance from v to o.
func (v Vec2[S]) Distance(o Vec2[S]) float64 {
	return Distance[Vec2[S], S](v, o)
}

// ChebyshevDistance returns the largest per-dimension absolute
// difference between v and o.
func (v Vec2[S]) ChebyshevDistance(o Vec2[S]) S {
	return ChebyshevDistance[Vec2[S], S](v, o)
}

// ManhattanDistance returns the sum of per-dimension absolute
// differences between v and o.
func (v Vec2[S]) ManhattanDistance(o Vec2[S]) S {
	return ManhattanDistance[Vec2[S], S](v, o)
}

// Compare orders vectors lexicographically: the first differing
// dimension decides. It returns -1, 0 or 1.
func (v Vec2[S]) Compare(o Vec2[S]) int {
	return compareElements(v[:], o[:])
}

// Less reports whether v orders strictly before o lexicographically.
func (v Vec2[S]) Less(o Vec2[S]) bool {
	return v.Compare(o) < 0
}

// Normalize scales v in place to unit magnitude.
// It reports false and leaves v unchanged when v has zero magnitude.
func (v *Vec2[S]) Normalize() bool {
	return normalize(v[:])
}
