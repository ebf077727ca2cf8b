package math

// NewFrustum creates a frustum from its six clip planes.
func NewFrustum(left, right, bottom, top, near, far float64) Frustum {
	return Frustum{
		Left:   left,
		Right:  right,
		Bottom: bottom,
		Top:    top,
		Near:   near,
		Far:    far,
	}
}

// NewFrustumFromSlice reads left, right, bottom, top, near and far from s.
// Missing planes are left at zero.
func NewFrustumFromSlice(s []float64) Frustum {
	var planes [6]float64
	copy(planes[:], s)
	return NewFrustum(planes[0], planes[1], planes[2], planes[3], planes[4], planes[5])
}

// Width is the horizontal extent of the clipping volume.
func (f Frustum) Width() float64 {
	return f.Right - f.Left
}

// Height is the vertical extent of the clipping volume.
func (f Frustum) Height() float64 {
	return f.Top - f.Bottom
}

// Scale multiplies the left, right, bottom and top planes by s around the
// origin. The near and far planes are unchanged.
func (f Frustum) Scale(s float64) Frustum {
	f.Left *= s
	f.Right *= s
	f.Bottom *= s
	f.Top *= s
	return f
}

// OrthoParams returns left, right, bottom and top, the values carried by an
// orthographic parameter change.
func (f Frustum) OrthoParams() [4]float64 {
	return [4]float64{f.Left, f.Right, f.Bottom, f.Top}
}

// WithOrthoParams returns a copy with left, right, bottom and top replaced.
func (f Frustum) WithOrthoParams(left, right, bottom, top float64) Frustum {
	f.Left = left
	f.Right = right
	f.Bottom = bottom
	f.Top = top
	return f
}

// Array returns the six planes in left, right, bottom, top, near, far order.
func (f Frustum) Array() [6]float64 {
	return [6]float64{f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far}
}

// ProjectionMatrix builds the orthographic projection for this clipping volume.
func (f Frustum) ProjectionMatrix() Mat4 {
	return NewMat4Orthographic(
		float32(f.Left), float32(f.Right),
		float32(f.Bottom), float32(f.Top),
		float32(f.Near), float32(f.Far))
}
