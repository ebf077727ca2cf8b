package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMGLRoundTrip(t *testing.T) {
	mt := NewMat4EulerY(0.4)
	mt.SetTranslation(NewVec3(7, 8, 9))

	gl := mt.ToMGL()
	assert.Equal(t, float32(7), gl.At(0, 3))
	assert.Equal(t, mt, FromMGL(gl))

	assert.Equal(t, FromMGL(mgl32.Translate3D(1, 2, 3)).Translation(), NewVec3(1, 2, 3))
}

func TestViewpointLookAt(t *testing.T) {
	vp := NewMat4ViewpointLookAt(NewVec3(0, 5, 10), NewVec3(0, 5, 0), NewVec3Up())

	assert.True(t, vp.Translation().Compare(NewVec3(0, 5, 10), 1e-4))
	// looking down -Z, so the in vector points +Z
	assert.True(t, vp.In().Compare(NewVec3(0, 0, 1), 1e-4), "in %v", vp.In())
	assert.True(t, vp.Up().Compare(NewVec3(0, 1, 0), 1e-4))
	assert.True(t, vp.Right().Compare(NewVec3(1, 0, 0), 1e-4))
}

func TestInverse(t *testing.T) {
	mt := NewMat4EulerX(0.7)
	mt.SetTranslation(NewVec3(-2, 4, 1))

	assert.True(t, mt.Mul(mt.Inverse()).Compare(NewMat4Identity(), 1e-5))
	assert.True(t, transformPoint(mt.Inverse(), NewVec3(-2, 4, 1)).Compare(NewVec3Zero(), 1e-5))
}

func TestPerspectiveMatrix(t *testing.T) {
	f := NewFrustum(-1, 1, -1, 1, 1, 100)
	p := f.PerspectiveMatrix()

	assert.InDelta(t, 1, p.Data[0], 1e-6)
	assert.InDelta(t, 1, p.Data[5], 1e-6)
	assert.InDelta(t, -1, p.Data[14], 1e-6)
	assert.Zero(t, p.Data[15])
}
