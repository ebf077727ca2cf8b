package math

import "github.com/go-gl/mathgl/mgl32"

// FromMGL converts a column-major mathgl matrix into a Mat4.
func FromMGL(src mgl32.Mat4) Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[row*4+col] = src.At(row, col)
		}
	}
	return out
}

// ToMGL converts a Mat4 into a column-major mathgl matrix.
func (mt Mat4) ToMGL() mgl32.Mat4 {
	out := mgl32.Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, mt.Data[row*4+col])
		}
	}
	return out
}

func (v Vec3) toMGL() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// NewMat4ViewpointLookAt builds a viewpoint transform (camera to world) for an
// eye at position looking at target. The result is the inverse of the
// world-to-camera look-at matrix.
func NewMat4ViewpointLookAt(position, target, up Vec3) Mat4 {
	view := mgl32.LookAtV(position.toMGL(), target.toMGL(), up.toMGL())
	return FromMGL(view.Inv())
}

// Inverse returns the inverse transform. A singular matrix yields the zero matrix.
func (mt Mat4) Inverse() Mat4 {
	return FromMGL(mt.ToMGL().Inv())
}

// PerspectiveMatrix builds the perspective projection for this clipping volume.
func (f Frustum) PerspectiveMatrix() Mat4 {
	return FromMGL(mgl32.Frustum(
		float32(f.Left), float32(f.Right),
		float32(f.Bottom), float32(f.Top),
		float32(f.Near), float32(f.Far)))
}
