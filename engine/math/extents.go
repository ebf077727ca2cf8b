package math

// NewExtents3D creates extents from two corners, ordering each axis so Min <= Max.
func NewExtents3D(a, b Vec3) Extents3D {
	return Extents3D{
		Min: Vec3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Max: Vec3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// Expand grows the extents by amount on every side.
func (e Extents3D) Expand(amount float32) Extents3D {
	d := Vec3{amount, amount, amount}
	return Extents3D{Min: e.Min.Sub(d), Max: e.Max.Add(d)}
}

// Contains reports whether p lies inside or on the boundary of the extents.
func (e Extents3D) Contains(p Vec3) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}

// IntersectsSegment reports whether the segment from start to end touches the
// extents, using the slab method.
func (e Extents3D) IntersectsSegment(start, end Vec3) bool {
	dir := end.Sub(start)
	tmin := float32(0)
	tmax := float32(1)

	origin := start.Array()
	delta := dir.Array()
	lo := e.Min.Array()
	hi := e.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if kabs(delta[axis]) < K_FLOAT_EPSILON {
			// Parallel to the slab: reject if outside it.
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return false
			}
			continue
		}
		inv := 1 / delta[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}
