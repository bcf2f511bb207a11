package geom

// Vec2Min returns the smallest value at the given axis across vectors.
// It reports false on empty input.
func Vec2Min[S Number](vectors []Vec2[S], axis Axis) (S, bool) {
	return Min[Vec2[S], S](vectors, axis)
}

// Vec2Max returns the largest value at the given axis across vectors.
// It reports false on empty input.
func Vec2Max[S Number](vectors []Vec2[S], axis Axis) (S, bool) {
	return Max[Vec2[S], S](vectors, axis)
}

// Vec2MinExtent returns the per-dimension minimum corner of vectors.
// It reports false on empty input.
func Vec2MinExtent[S Number](vectors []Vec2[S]) (Vec2[S], bool) {
	return MinExtent[Vec2[S], S](vectors)
}

// Vec2MaxExtent returns the per-dimension maximum corner of vectors.
// It reports false on empty input.
func Vec2MaxExtent[S Number](vectors []Vec2[S]) (Vec2[S], bool) {
	return MaxExtent[Vec2[S], S](vectors)
}

// Vec2Extents returns both bounding corners of vectors in one pass.
// It reports false on empty input.
func Vec2Extents[S Number](vectors []Vec2[S]) (Extent[Vec2[S]], bool) {
	return Extents[Vec2[S], S](vectors)
}

// Vec3Min returns the smallest value at the given axis across vectors.
// It reports false on empty input.
func Vec3Min[S Number](vectors []Vec3[S], axis Axis) (S, bool) {
	return Min[Vec3[S], S](vectors, axis)
}

// Vec3Max returns the largest value at the given axis across vectors.
// It reports false on empty input.
func Vec3Max[S Number](vectors []Vec3[S], axis Axis) (S, bool) {
	return Max[Vec3[S], S](vectors, axis)
}

// Vec3MinExtent returns the per-dimension minimum corner of vectors.
// It reports false on empty input.
func Vec3MinExtent[S Number](vectors []Vec3[S]) (Vec3[S], bool) {
	return MinExtent[Vec3[S], S](vectors)
}

// Vec3MaxExtent returns the per-dimension maximum corner of vectors.
// It reports false on empty input.
func Vec3MaxExtent[S Number](vectors []Vec3[S]) (Vec3[S], bool) {
	return MaxExtent[Vec3[S], S](vectors)
}

// Vec3Extents returns both bounding corners of vectors in one pass.
// It reports false on empty input.
func Vec3Extents[S Number](vectors []Vec3[S]) (Extent[Vec3[S]], bool) {
	return Extents[Vec3[S], S](vectors)
}
