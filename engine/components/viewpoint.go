package components

import (
	"fmt"

	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/math"
)

type Projection uint8

const (
	PROJECTION_PERSPECTIVE Projection = iota
	PROJECTION_ORTHOGRAPHIC
)

func (p Projection) String() string {
	switch p {
	case PROJECTION_ORTHOGRAPHIC:
		return config.ProjectionOrthographic
	default:
		return config.ProjectionPerspective
	}
}

// ParseProjection maps a configuration value to a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case config.ProjectionPerspective:
		return PROJECTION_PERSPECTIVE, nil
	case config.ProjectionOrthographic:
		return PROJECTION_ORTHOGRAPHIC, nil
	}
	return PROJECTION_PERSPECTIVE, fmt.Errorf("unknown projection %q", s)
}

/** @brief The name of the default viewpoint. */
const DEFAULT_VIEWPOINT_NAME string = "default"

/**
 * @brief Represents a point of view into the scene. Ideally,
 * these are created and managed by the viewpoint system.
 */
type Viewpoint struct {
	/** @brief The entity id commands use to address this viewpoint. */
	ID   uint32
	Name string
	/** @brief Selects the Pan-Zoom variant used to navigate the viewpoint. */
	Projection Projection
	/**
	 * @brief The camera-to-world transform. The translation column is the eye.
	 * NOTE: Do not set this directly, use SetViewTransform() instead
	 * so the version is bumped.
	 */
	ViewMatrix math.Mat4
	/** @brief The clipping volume. Left, right, bottom and top are the ortho params. */
	Frustum          math.Frustum
	CenterOfRotation math.Vec3
	/** @brief Incremented on every change, lets observers detect stale copies. */
	Version uint64
}

type ViewpointLookup struct {
	ReferenceCount uint16
	Viewpoint      *Viewpoint
}

func NewViewpoint(id uint32, name string, projection Projection) *Viewpoint {
	vp := &Viewpoint{
		ID:         id,
		Name:       name,
		Projection: projection,
	}
	vp.Reset()
	return vp
}

// Reset puts the viewpoint at the origin with a unit clipping volume.
func (vp *Viewpoint) Reset() {
	vp.ViewMatrix = math.NewMat4Identity()
	vp.Frustum = math.NewFrustum(-1, 1, -1, 1, 0.1, 1000)
	vp.CenterOfRotation = math.NewVec3Zero()
	vp.Version = 0
}

func (vp *Viewpoint) ViewTransform() math.Mat4 {
	return vp.ViewMatrix
}

func (vp *Viewpoint) SetViewTransform(m math.Mat4) {
	vp.ViewMatrix = m
	vp.Version++
}

func (vp *Viewpoint) ViewFrustum() math.Frustum {
	return vp.Frustum
}

func (vp *Viewpoint) SetFrustum(f math.Frustum) {
	vp.Frustum = f
	vp.Version++
}

func (vp *Viewpoint) SetOrthoParams(left, right, bottom, top float64) {
	vp.SetFrustum(vp.Frustum.WithOrthoParams(left, right, bottom, top))
}

func (vp *Viewpoint) GetPosition() math.Vec3 {
	return vp.ViewMatrix.Translation()
}

func (vp *Viewpoint) SetPosition(position math.Vec3) {
	vp.ViewMatrix.SetTranslation(position)
	vp.Version++
}

// GetView returns the world-to-camera matrix used for rendering.
func (vp *Viewpoint) GetView() math.Mat4 {
	return vp.ViewMatrix.Inverse()
}

func (vp *Viewpoint) GetProjection() math.Mat4 {
	if vp.Projection == PROJECTION_ORTHOGRAPHIC {
		return vp.Frustum.ProjectionMatrix()
	}
	return vp.Frustum.PerspectiveMatrix()
}

func (vp *Viewpoint) Forward() math.Vec3 {
	return vp.ViewMatrix.In().MulScalar(-1)
}

func (vp *Viewpoint) Right() math.Vec3 {
	return vp.ViewMatrix.Right()
}

func (vp *Viewpoint) Up() math.Vec3 {
	return vp.ViewMatrix.Up()
}
