package geom

import "github.com/geomkit/geom/elementwise"

// Vec3 is a three-dimensional vector with inline storage.
type Vec3[S Number] [3]S

// Vec3UnitX returns {1, 0, 0}.
func Vec3UnitX[S Number]() Vec3[S] { return Vec3[S]{1, 0, 0} }

// Vec3UnitY returns {0, 1, 0}.
func Vec3UnitY[S Number]() Vec3[S] { return Vec3[S]{0, 1, 0} }

// Vec3UnitZ returns {0, 0, 1}.
func Vec3UnitZ[S Number]() Vec3[S] { return Vec3[S]{0, 0, 1} }

// Vec3Unit returns the unit vector along the given axis.
// It panics when axis is not a Vec3 axis.
func Vec3Unit[S Number](axis Axis) Vec3[S] {
	var v Vec3[S]
	v[axis] = 1
	return v
}

// Vec3Repeat returns a vector with every element set to value.
func Vec3Repeat[S Number](value S) Vec3[S] {
	return Vec3[S]{value, value, value}
}

// Vec3From materializes an elementwise operand of dimension 3 into a
// vector.
func Vec3From[S Number](op any) Vec3[S] {
	var v Vec3[S]
	elementwise.Fill(v[:], op)
	return v
}

// At returns the element at position i.
func (v Vec3[S]) At(i int) S { return v[i] }

// Dims returns 3.
func (Vec3[S]) Dims() int { return 3 }

// X returns the first element.
func (v Vec3[S]) X() S { return v[0] }

// Y returns the second element.
func (v Vec3[S]) Y() S { return v[1] }

// Z returns the third element.
func (v Vec3[S]) Z() S { return v[2] }

// Assign evaluates an elementwise operand into v and returns v.
func (v *Vec3[S]) Assign(op any) *Vec3[S] {
	elementwise.Fill(v[:], op)
	return v
}

// Neg returns the elementwise negation of v.
func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{-v[0], -v[1], -v[2]}
}

// Add returns the elementwise sum v + o.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns the elementwise difference v - o.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul returns v scaled by s.
func (v Vec3[S]) Mul(s S) Vec3[S] {
	return Vec3[S]{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns v divided elementwise by s.
func (v Vec3[S]) Div(s S) Vec3[S] {
	return Vec3[S]{v[0] / s, v[1] / s, v[2] / s}
}

// Dot returns the dot product of v and o.
func (v Vec3[S]) Dot(o Vec3[S]) S {
	return Dot[Vec3[S], S](v, o)
}

// MagnitudeSquared returns the squared magnitude of v.
func (v Vec3[S]) MagnitudeSquared() S {
	return MagnitudeSquared[Vec3[S], S](v)
}

// Magnitude returns the magnitude of v as a float, also for integer
// scalar types.
func (v Vec3[S]) Magnitude() float64 {
	return Magnitude[Vec3[S], S](v)
}

// DistanceSquared returns the squared Euclidean distance from v to o.
func (v Vec3[S]) DistanceSquared(o Vec3[S]) S {
	return DistanceSquared[Vec3[S], S](v, o)
}

// Distance returns the Euclidean distance from v to o.
func (v Vec3[S]) Distance(o Vec3[S]) float64 {
	return Distance[Vec3[S], S](v, o)
}

// ChebyshevDistance returns the largest per-dimension absolute
// difference between v and o.
func (v Vec3[S]) ChebyshevDistance(o Vec3[S]) S {
	return ChebyshevDistance[Vec3[S], S](v, o)
}

// ManhattanDistance returns the sum of per-dimension absolute
// differences between v and o.
func (v Vec3[S]) ManhattanDistance(o Vec3[S]) S {
	return ManhattanDistance[Vec3[S], S](v, o)
}

// Compare orders vectors lexicographically: the first differing
// dimension decides. It returns -1, 0 or 1.
func (v Vec3[S]) Compare(o Vec3[S]) int {
	return compareElements(v[:], o[:])
}

// Less reports whether v orders strictly before o lexicographically.
func (v Vec3[S]) Less(o Vec3[S]) bool {
	return v.Compare(o) < 0
}

// Normalize scales v in place to unit magnitude.
// It reports false and leaves v unchanged when v has zero magnitude.
func (v *Vec3[S]) Normalize() bool {
	return normalize(v[:])
}
