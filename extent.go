package geom

// Extent is an axis-aligned bounding pair: the per-dimension minimum
// and maximum corners of a set of vectors. Neither corner has to equal
// any single input vector.
type Extent[V any] struct {
	Min V
	Max V
}

// As in reduce.go, the generic batch functions need explicit type
// arguments for non-Vec array types; the Vec2/Vec3 wrappers below are
// the inference-friendly path.

// Min returns the smallest value at the given axis across vectors.
// It reports false on empty input and panics when axis is out of range
// for the vector type.
func Min[V Array[S], S Number](vectors []V, axis Axis) (S, bool) {
	if len(vectors) == 0 {
		var zero S
		return zero, false
	}
	m := vectors[0][axis]
	for _, v := range vectors[1:] {
		if v[axis] < m {
			m = v[axis]
		}
	}
	return m, true
}

// Max returns the largest value at the given axis across vectors.
// It reports false on empty input and panics when axis is out of range
// for the vector type.
func Max[V Array[S], S Number](vectors []V, axis Axis) (S, bool) {
	if len(vectors) == 0 {
		var zero S
		return zero, false
	}
	m := vectors[0][axis]
	for _, v := range vectors[1:] {
		if v[axis] > m {
			m = v[axis]
		}
	}
	return m, true
}

// MinExtent returns the vector holding, per dimension, the smallest
// value across vectors. It reports false on empty input.
func MinExtent[V Array[S], S Number](vectors []V) (V, bool) {
	var ext V
	if len(vectors) == 0 {
		return ext, false
	}
	ext = vectors[0]
	for _, v := range vectors[1:] {
		for d := 0; d < len(ext); d++ {
			if v[d] < ext[d] {
				ext[d] = v[d]
			}
		}
	}
	return ext, true
}

// MaxExtent returns the vector holding, per dimension, the largest
// value across vectors. It reports false on empty input.
func MaxExtent[V Array[S], S Number](vectors []V) (V, bool) {
	var ext V
	if len(vectors) == 0 {
		return ext, false
	}
	ext = vectors[0]
	for _, v := range vectors[1:] {
		for d := 0; d < len(ext); d++ {
			if v[d] > ext[d] {
				ext[d] = v[d]
			}
		}
	}
	return ext, true
}

// Extents returns both bounding corners of vectors in a single pass.
// It reports false on empty input.
func Extents[V Array[S], S Number](vectors []V) (Extent[V], bool) {
	var ext Extent[V]
	if len(vectors) == 0 {
		return ext, false
	}
	ext.Min = vectors[0]
	ext.Max = vectors[0]
	for _, v := range vectors[1:] {
		for d := 0; d < len(v); d++ {
			if v[d] < ext.Min[d] {
				ext.Min[d] = v[d]
			}
			if v[d] > ext.Max[d] {
				ext.Max[d] = v[d]
			}
		}
	}
	return ext, true
}
