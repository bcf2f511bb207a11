// Package geom provides fixed-dimension vectors over generic numeric
// scalars, with geometry reductions built on lazy elementwise
// expressions.
//
// Vectors are plain value types backed by inline arrays: Vec2[S] is a
// [2]S, Vec3[S] is a [3]S. Dimension is part of the type, so mixing
// dimensions in arithmetic or in the binary reductions is a compile
// error, never a runtime one.
//
// # Quick Start
//
//	a := geom.Vec2[int]{-15, 10}
//	b := a.Add(a)                    // {-30, 20}
//	u := geom.Vec2UnitX[int]()       // {1, 0}
//
//	p := geom.Vec3[int]{-3, -4, -5}
//	d := p.Distance(geom.Vec3[int]{3, 4, 5})
//
// # Expressions
//
// Arithmetic can also be assembled lazily via geom/elementwise and
// materialized in one pass:
//
//	e := elementwise.Product[int](a, 5)   // scalar broadcast
//	v := geom.Vec2From[int](e)            // evaluates index by index
//
// The reductions consume vectors and expression trees interchangeably;
// Dot, Distance and the other metrics never build an intermediate
// vector.
//
// # Batch Queries
//
// Min, Max, MinExtent, MaxExtent and Extents scan a slice of vectors
// per dimension. An empty input yields ok == false rather than a
// default-valued vector.
package geom
