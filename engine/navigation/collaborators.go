package navigation

import "github.com/spaghettifunk/navigator/engine/math"

// ViewpointData exposes the viewpoint transform a mode navigates from.
type ViewpointData interface {
	// ViewTransform returns a snapshot of the camera-to-world transform.
	ViewTransform() math.Mat4
}

// ViewEnvironment exposes the orthographic clip planes of a viewpoint.
type ViewEnvironment interface {
	ViewFrustum() math.Frustum
	SetOrthoParams(left, right, bottom, top float64)
}

// CollisionManager vetoes viewpoint moves that are obstructed.
type CollisionManager interface {
	// CheckCollision reports whether moving from start to dest is blocked.
	CheckCollision(start, dest math.Mat4) bool
}

// CommandController executes commands against the entity model.
type CommandController interface {
	Execute(cmd Command)
}

// StatusManager is told about every committed viewpoint transform.
type StatusManager interface {
	FireViewMatrixChanged(matrix math.Mat4)
}
