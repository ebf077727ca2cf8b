package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/**
 * @brief a 4x4 matrix, used to represent viewpoint transformations.
 * Elements are stored row-major: element (row, col) lives at Data[row*4+col].
 * Columns 0, 1 and 2 hold the right, up and in basis vectors, column 3 holds
 * the translation (the eye position for a viewpoint transform).
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief The clipping volume of an orthographic projection.
 */
type Frustum struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	Near   float64
	Far    float64
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}
